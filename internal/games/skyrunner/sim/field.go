package sim

import (
	"math/rand"

	"github.com/vovakirdan/skyrunner/internal/config"
)

// Field is the fixed-size pool of boards scrolling toward the player.
// Boards are spawned one stagger apart and recycle independently, so the
// spacing between them never changes.
type Field struct {
	boards []*Board
}

// NewField spawns cfg.Boards boards at start_z, start_z-stagger, ...
func NewField(cfg config.FieldConfig, hitbox config.ObstacleConfig, rng *rand.Rand) *Field {
	f := &Field{boards: make([]*Board, 0, cfg.Boards)}
	for i := 0; i < cfg.Boards; i++ {
		z := cfg.StartZ - cfg.Stagger*float64(i)
		f.boards = append(f.boards, NewBoard(z, cfg, hitbox, rng))
	}
	return f
}

// Boards returns the boards in spawn order.
func (f *Field) Boards() []*Board {
	if f == nil {
		return nil
	}
	return f.boards
}

// Advance scrolls every board and recycles those past the threshold.
// It returns the number of boards recycled this frame.
func (f *Field) Advance(speed, dt float64) int {
	if f == nil {
		return 0
	}
	recycled := 0
	for _, b := range f.boards {
		b.Advance(speed, dt)
		if b.MaybeRecycle() {
			recycled++
		}
	}
	return recycled
}
