package ui

import (
	"image"
	"math"
	"strconv"

	"majority-ca/internal/core"
)

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 18
	controlsTop    = panelPadding + headerBaseline + 14
)

type controlState struct {
	control  core.ParameterControl
	value    float64
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

func newControlStates(sim core.Sim) []controlState {
	provider, ok := sim.(core.ParameterControlsProvider)
	if !ok {
		return nil
	}
	controls := provider.ParameterControls()
	states := make([]controlState, len(controls))
	for i, ctrl := range controls {
		states[i] = controlState{control: ctrl}
	}
	return states
}

// refresh pulls the current value for the control out of snap.
func (s *controlState) refresh(snap core.ParameterSnapshot) {
	s.hasValue = false
	param, ok := snap.Lookup(s.control.Key)
	if !ok {
		return
	}
	parsed, err := strconv.ParseFloat(param.Value, 64)
	if err != nil {
		return
	}
	s.value = parsed
	s.hasValue = true
}

func (s *controlState) step() float64 {
	step := s.control.Step
	switch {
	case s.control.Type == core.ParamTypeInt:
		step = math.Round(step)
		if step <= 0 {
			step = 1
		}
	case step <= 0:
		step = 0.05
	}
	return step
}

// target returns the clamped value one step in direction and whether it
// differs from the current value.
func (s *controlState) target(direction int) (float64, bool) {
	if !s.hasValue || direction == 0 {
		return s.value, false
	}
	next := s.control.Clamp(s.value + float64(direction)*s.step())
	if s.control.Type == core.ParamTypeInt {
		next = math.Round(next)
	}
	return next, math.Abs(next-s.value) > 1e-9
}

// adjust applies one step through the sim's setters.
func (s *controlState) adjust(sim core.Sim, direction int) bool {
	next, changed := s.target(direction)
	if !changed {
		return false
	}
	var ok bool
	switch s.control.Type {
	case core.ParamTypeInt:
		if setter, has := sim.(core.IntParameterSetter); has {
			ok = setter.SetIntParameter(s.control.Key, int(next))
		}
	case core.ParamTypeFloat:
		if setter, has := sim.(core.FloatParameterSetter); has {
			ok = setter.SetFloatParameter(s.control.Key, next)
		}
	}
	if ok {
		s.value = next
	}
	return ok
}

func (s *controlState) text() string {
	if !s.hasValue {
		return "--"
	}
	if s.control.Type == core.ParamTypeInt {
		return strconv.Itoa(int(s.value))
	}
	return formatFloat(s.control, s.value)
}

func layoutControls(states []controlState, width int) {
	for i := range states {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		states[i].top = top
		states[i].minusRect = minusRect
		states[i].plusRect = plusRect
	}
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}
