package core

import "github.com/pkg/errors"

var (
	// ErrConfiguration marks invalid dimensions, probabilities, thresholds or
	// coordinates supplied by the host.
	ErrConfiguration = errors.New("configuration error")
	// ErrPrecondition marks calls that need a seeded grid before Reset ran.
	ErrPrecondition = errors.New("precondition violation")
)

// ConfigErrorf wraps ErrConfiguration with a formatted message.
func ConfigErrorf(format string, args ...any) error {
	return errors.Wrapf(ErrConfiguration, format, args...)
}

// PreconditionErrorf wraps ErrPrecondition with a formatted message.
func PreconditionErrorf(format string, args ...any) error {
	return errors.Wrapf(ErrPrecondition, format, args...)
}
