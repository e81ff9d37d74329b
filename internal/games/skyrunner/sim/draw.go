package sim

import "github.com/go-gl/mathgl/mgl64"

// Shape identifies the kind of geometry a draw call refers to.
type Shape int

const (
	ShapeCube Shape = iota
	ShapeFragment
	ShapePlayer
	ShapeTrail
)

// Material describes how a shape should be shaded.
type Material struct {
	Name        string
	Color       mgl64.Vec4
	Ambient     float64
	Diffusivity float64
	Specularity float64
}

// Materials used by the simulation.
var (
	MaterialObstacle = Material{Name: "obstacle", Color: mgl64.Vec4{0, 1, 0, 1}, Ambient: 1}
	MaterialFragment = Material{Name: "fragment", Color: mgl64.Vec4{1, 0, 0, 1}, Ambient: 0.9, Diffusivity: 0.5, Specularity: 0.9}
	MaterialPlayer   = Material{Name: "suit", Color: mgl64.Vec4{0, 0.28, 0.67, 1}, Ambient: 0.9, Diffusivity: 1, Specularity: 1}
)

// Renderer receives draw calls. Implementations must not retain or modify
// simulation state.
type Renderer interface {
	Draw(view mgl64.Mat4, shape Shape, transform mgl64.Mat4, mat Material)
}

// Draw emits the current frame: live obstacles of every board (or their
// debris), then the player, then the trail while a round is running.
func (s *Simulation) Draw(r Renderer) {
	view := s.View()
	for _, b := range s.field.Boards() {
		for i := 0; i < CellCount; i++ {
			if !b.Enabled(i) {
				continue
			}
			o := b.Obstacle(i)
			if !o.Fractured() {
				r.Draw(view, ShapeCube, o.Transform(), MaterialObstacle)
				continue
			}
			for _, f := range o.fragments {
				r.Draw(view, ShapeFragment, f.Transform(), MaterialFragment)
			}
		}
	}

	r.Draw(view, ShapePlayer, s.player.Transform(), MaterialPlayer)

	if s.round.Phase != PhasePlaying {
		return
	}
	for _, p := range s.trail.Particles() {
		mat := Material{Name: "trail", Color: p.Color(), Ambient: 1}
		r.Draw(view, ShapeTrail, p.Transform(s.player.Pos), mat)
	}
}
