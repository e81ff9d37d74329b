package sim

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/skyrunner/internal/config"
)

func TestCameraViewAtOriginIsInitial(t *testing.T) {
	c := NewCamera(config.DefaultSkyrunnerConfig().Camera)
	if !c.View(mgl64.Vec3{}).ApproxEqualThreshold(c.Initial(), 1e-12) {
		t.Errorf("View(origin) = %v, expected %v", c.View(mgl64.Vec3{}), c.Initial())
	}
}

func TestCameraBlendExtremes(t *testing.T) {
	cfg := config.DefaultSkyrunnerConfig().Camera
	player := mgl64.Vec3{3, -2, 0}

	cfg.FollowBlend = 1
	fixed := NewCamera(cfg)
	if !fixed.View(player).ApproxEqualThreshold(fixed.Initial(), 1e-12) {
		t.Error("blend 1 should ignore the player")
	}

	cfg.FollowBlend = 0
	follow := NewCamera(cfg)
	if !follow.View(player).ApproxEqualThreshold(follow.Follow(player), 1e-12) {
		t.Error("blend 0 should track the player")
	}
}

func TestCameraFollowCentersPlayer(t *testing.T) {
	c := NewCamera(config.DefaultSkyrunnerConfig().Camera)
	player := mgl64.Vec3{2, 3, 0}

	got := c.Follow(player).Mul4x1(player.Vec4(1))
	want := c.Initial().Mul4x1(mgl64.Vec4{0, 0, 0, 1})
	if !got.ApproxEqualThreshold(want, 1e-9) {
		t.Errorf("followed player maps to %v, expected %v", got, want)
	}
}

func TestCameraBlendIsPartial(t *testing.T) {
	c := NewCamera(config.DefaultSkyrunnerConfig().Camera)
	player := mgl64.Vec3{5, 0, 0}

	// Under the blended view the player lands between the fixed and the
	// fully tracked screen positions.
	fixed := c.Initial().Mul4x1(player.Vec4(1)).X()
	tracked := c.Follow(player).Mul4x1(player.Vec4(1)).X()
	blended := c.View(player).Mul4x1(player.Vec4(1)).X()

	want := tracked*0.4 + fixed*0.6
	if !approx(blended, want) {
		t.Errorf("blended x = %v, expected %v", blended, want)
	}
}
