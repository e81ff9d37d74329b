package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionUp) {
		t.Error("new frame should be empty")
	}

	f.Set(ActionUp)
	f.Set(ActionStart)
	if !f.Has(ActionUp) || !f.Has(ActionStart) {
		t.Error("Set actions should be reported by Has")
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionUp) {
		t.Error("Clear should remove all actions")
	}
	if !clone.Has(ActionUp) {
		t.Error("Clone should not share storage with the original")
	}
}

func TestZeroInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionLeft) {
		t.Error("zero frame should report nothing")
	}
	f.Set(ActionLeft)
	if !f.Has(ActionLeft) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestActionHeld(t *testing.T) {
	held := []Action{ActionUp, ActionDown, ActionLeft, ActionRight}
	for _, a := range held {
		if !a.Held() {
			t.Errorf("%s should be a held action", a)
		}
	}
	for _, a := range []Action{ActionStart, ActionRestart, ActionPause, ActionQuit} {
		if a.Held() {
			t.Errorf("%s should not be a held action", a)
		}
	}
}
