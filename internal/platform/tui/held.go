package tui

import (
	"time"

	"github.com/vovakirdan/skyrunner/internal/core"
)

// heldKeys emulates key-up events, which terminals do not report. A
// direction counts as held until hold has passed since its last press or
// auto-repeat; pressing the opposite direction releases it at once.
type heldKeys struct {
	hold  time.Duration
	until map[core.Action]time.Time
}

var opposites = map[core.Action]core.Action{
	core.ActionUp:    core.ActionDown,
	core.ActionDown:  core.ActionUp,
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
}

func newHeldKeys(hold time.Duration) *heldKeys {
	return &heldKeys{hold: hold, until: make(map[core.Action]time.Time)}
}

// Press records a press or repeat of a held action.
func (h *heldKeys) Press(a core.Action, now time.Time) {
	if !a.Held() {
		return
	}
	delete(h.until, opposites[a])
	h.until[a] = now.Add(h.hold)
}

// Apply sets every still-held action on the frame and forgets expired ones.
func (h *heldKeys) Apply(frame *core.InputFrame, now time.Time) {
	for a, deadline := range h.until {
		if now.After(deadline) {
			delete(h.until, a)
			continue
		}
		frame.Set(a)
	}
}

// Release drops every held action.
func (h *heldKeys) Release() {
	clear(h.until)
}
