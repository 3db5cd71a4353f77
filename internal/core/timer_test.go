package core

import (
	"testing"
	"time"
)

func TestFixedStepPacing(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }

	if !fs.ShouldStep() {
		t.Fatal("first call should step immediately")
	}
	clock = clock.Add(50 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("half a tick should not step")
	}
	clock = clock.Add(50 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("a full tick should step")
	}

	fs.Restart()
	if !fs.ShouldStep() {
		t.Fatal("restart should allow an immediate step")
	}
}

func TestParameterControlClamp(t *testing.T) {
	ctrl := ParameterControl{Min: 0, Max: 9, HasMin: true, HasMax: true}
	if got := ctrl.ClampInt(12); got != 9 {
		t.Fatalf("expected clamp to 9, got %d", got)
	}
	if got := ctrl.ClampInt(-3); got != 0 {
		t.Fatalf("expected clamp to 0, got %d", got)
	}
	if got := ctrl.ClampInt(4.6); got != 5 {
		t.Fatalf("expected rounding to 5, got %d", got)
	}
}
