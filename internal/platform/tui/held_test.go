package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/skyrunner/internal/core"
)

func TestHeldKeysExpire(t *testing.T) {
	h := newHeldKeys(180 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionLeft, t0)

	frame := core.NewInputFrame()
	h.Apply(&frame, t0.Add(100*time.Millisecond))
	if !frame.Has(core.ActionLeft) {
		t.Fatal("left should still be held within the hold window")
	}

	frame = core.NewInputFrame()
	h.Apply(&frame, t0.Add(200*time.Millisecond))
	if frame.Has(core.ActionLeft) {
		t.Error("left should be released after the hold window")
	}
}

func TestHeldKeysRepeatExtends(t *testing.T) {
	h := newHeldKeys(180 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionUp, t0)
	h.Press(core.ActionUp, t0.Add(150*time.Millisecond))

	frame := core.NewInputFrame()
	h.Apply(&frame, t0.Add(300*time.Millisecond))
	if !frame.Has(core.ActionUp) {
		t.Error("auto-repeat should keep the key held")
	}
}

func TestHeldKeysOppositeReleases(t *testing.T) {
	h := newHeldKeys(time.Second)
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionLeft, t0)
	h.Press(core.ActionUp, t0)
	h.Press(core.ActionRight, t0.Add(10*time.Millisecond))

	frame := core.NewInputFrame()
	h.Apply(&frame, t0.Add(20*time.Millisecond))
	if frame.Has(core.ActionLeft) {
		t.Error("pressing right should release left")
	}
	if !frame.Has(core.ActionRight) || !frame.Has(core.ActionUp) {
		t.Error("right and up should both be held")
	}
}

func TestHeldKeysIgnoresCommands(t *testing.T) {
	h := newHeldKeys(time.Second)
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionStart, t0)
	frame := core.NewInputFrame()
	h.Apply(&frame, t0)
	if frame.Has(core.ActionStart) {
		t.Error("commands must not be held")
	}
}

func TestHeldKeysRelease(t *testing.T) {
	h := newHeldKeys(time.Second)
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionDown, t0)
	h.Release()

	frame := core.NewInputFrame()
	h.Apply(&frame, t0)
	if frame.Has(core.ActionDown) {
		t.Error("Release() should drop held keys")
	}
}
