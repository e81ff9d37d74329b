package sim

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/skyrunner/internal/config"
)

// Camera publishes the view transform each frame: a fixed blend between
// the initial look-at camera and one that follows the player in x/y.
type Camera struct {
	initial mgl64.Mat4
	blend   float64
	fov     float64
	near    float64
	far     float64
}

// NewCamera builds the camera from its configured look-at parameters.
func NewCamera(cfg config.CameraConfig) Camera {
	return Camera{
		initial: mgl64.LookAtV(mgl64.Vec3(cfg.Eye), mgl64.Vec3(cfg.Center), mgl64.Vec3(cfg.Up)),
		blend:   cfg.FollowBlend,
		fov:     cfg.FOV,
		near:    cfg.Near,
		far:     cfg.Far,
	}
}

// Initial returns the fixed view matrix.
func (c Camera) Initial() mgl64.Mat4 {
	return c.initial
}

// Follow returns the view matrix of a camera translated along with the
// player in x and y.
func (c Camera) Follow(player mgl64.Vec3) mgl64.Mat4 {
	return c.initial.Mul4(mgl64.Translate3D(-player.X(), -player.Y(), 0))
}

// View returns follow*(1-blend) + initial*blend.
func (c Camera) View(player mgl64.Vec3) mgl64.Mat4 {
	return c.Follow(player).Mul(1 - c.blend).Add(c.initial.Mul(c.blend))
}

// Projection returns a perspective projection for the given aspect ratio.
func (c Camera) Projection(aspect float64) mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(c.fov), aspect, c.near, c.far)
}

// Near returns the near clipping distance.
func (c Camera) Near() float64 {
	return c.near
}
