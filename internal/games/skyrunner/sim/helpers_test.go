package sim

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/skyrunner/internal/config"
)

const frame = 1.0 / 60.0

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func testBoard(z float64) *Board {
	cfg := config.DefaultSkyrunnerConfig()
	return NewBoard(z, cfg.Field, cfg.Obstacle, rand.New(rand.NewSource(7)))
}

// isolate moves every obstacle of b far away from the play area, then puts
// cell i at (x, y) on the board's plane and makes pattern p current.
func isolate(b *Board, p, i int, x, y float64) *Obstacle {
	for j := range b.obstacles {
		b.obstacles[j] = NewObstacle(mgl64.Translate3D(1000+float64(j)*10, 1000, b.z))
	}
	b.pattern = p
	b.obstacles[i] = NewObstacle(mgl64.Translate3D(x, y, b.z))
	return b.obstacles[i]
}
