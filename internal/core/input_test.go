package core

import "testing"

func TestInputFrameOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Set(ActionUp)
	f.Set(ActionLeft)

	got := f.Ordered()
	if len(got) != 2 || got[0] != ActionLeft || got[1] != ActionUp {
		t.Fatalf("Ordered() = %v, expected [Left Up]", got)
	}
	if !f.Has(ActionUp) || f.Has(ActionDown) {
		t.Error("Has() disagrees with Set()")
	}

	f.Clear()
	if f.Has(ActionLeft) || len(f.Ordered()) != 0 {
		t.Error("Clear() should drop every action")
	}
}

func TestZeroInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionUp) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionRestart)
	if !f.Has(ActionRestart) {
		t.Error("Set() on zero frame should work")
	}
}

func TestActionVector(t *testing.T) {
	tests := []struct {
		a      Action
		dx, dy int
		dir    bool
	}{
		{ActionUp, 0, -1, true},
		{ActionDown, 0, 1, true},
		{ActionLeft, -1, 0, true},
		{ActionRight, 1, 0, true},
		{ActionPause, 0, 0, false},
	}

	for _, tc := range tests {
		dx, dy := tc.a.Vector()
		if dx != tc.dx || dy != tc.dy {
			t.Errorf("%s.Vector() = (%d, %d), expected (%d, %d)", tc.a, dx, dy, tc.dx, tc.dy)
		}
		if tc.a.IsDirection() != tc.dir {
			t.Errorf("%s.IsDirection() = %v", tc.a, !tc.dir)
		}
	}
}

func TestFrameMillis(t *testing.T) {
	if got := (RuntimeConfig{TickRate: 50}).FrameMillis(); got != 20 {
		t.Errorf("FrameMillis() = %d, expected 20", got)
	}
	if got := (RuntimeConfig{}).FrameMillis(); got != 16 {
		t.Errorf("FrameMillis() with zero rate = %d, expected 16", got)
	}
}
