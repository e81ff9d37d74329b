package sim

import (
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/skyrunner/internal/config"
)

func TestNewFieldStagger(t *testing.T) {
	cfg := config.DefaultSkyrunnerConfig()
	f := NewField(cfg.Field, cfg.Obstacle, rand.New(rand.NewSource(1)))

	boards := f.Boards()
	if len(boards) != 3 {
		t.Fatalf("field has %d boards, expected 3", len(boards))
	}
	for i, want := range []float64{-300, -400, -500} {
		if boards[i].Z() != want {
			t.Errorf("board %d at z=%v, expected %v", i, boards[i].Z(), want)
		}
	}
}

func TestFieldKeepsSpacingAcrossRecycles(t *testing.T) {
	cfg := config.DefaultSkyrunnerConfig()
	f := NewField(cfg.Field, cfg.Obstacle, rand.New(rand.NewSource(1)))

	// Large steps exercise several recycles per board.
	recycled := 0
	for i := 0; i < 2000; i++ {
		recycled += f.Advance(90, 0.05)

		boards := f.Boards()
		for a := range boards {
			z := boards[a].Z()
			if z >= cfg.Field.RecycleThreshold {
				t.Fatalf("frame %d: board %d left at z=%v past the threshold", i, a, z)
			}
			for b := a + 1; b < len(boards); b++ {
				gap := boards[a].Z() - boards[b].Z()
				for gap < 0 {
					gap += cfg.Field.RecycleOffset
				}
				if !approxTol(gap, 100, 1e-6) && !approxTol(gap, 200, 1e-6) {
					t.Fatalf("frame %d: boards %d and %d are %v apart", i, a, b, gap)
				}
			}
		}
	}
	if recycled == 0 {
		t.Error("expected boards to recycle")
	}
}

func TestNilFieldIsEmpty(t *testing.T) {
	var f *Field
	if f.Boards() != nil {
		t.Error("nil field should have no boards")
	}
	if f.Advance(80, frame) != 0 {
		t.Error("nil field should not recycle")
	}
}

func TestCollideAcrossBoards(t *testing.T) {
	far := testBoard(-200)
	near := testBoard(0)
	hit := isolate(near, 0, 2, 0.5, 0.5)
	isolate(far, 0, 2, 0, 0)

	if got := Collide([]*Board{far, near}, mgl64.Vec3{0, 0, 0}); got != hit {
		t.Errorf("Collide() = %v, expected the obstacle on the near board", got)
	}
	if got := Collide([]*Board{far}, mgl64.Vec3{0, 0, 0}); got != nil {
		t.Error("boards outside the depth window should never report a hit")
	}
	if got := Collide(nil, mgl64.Vec3{}); got != nil {
		t.Error("no boards, no hit")
	}
}

func approxTol(a, b, tol float64) bool {
	d := a - b
	return d < tol && d > -tol
}
