package config

import (
	_ "embed"
	"math"
)

//go:embed defaults/skyrunner.yaml
var defaultSkyrunnerYAML []byte

// DefaultSkyrunnerConfig returns the hardcoded default configuration.
// It mirrors defaults/skyrunner.yaml and is used when the embed cannot be parsed.
func DefaultSkyrunnerConfig() SkyrunnerConfig {
	return SkyrunnerConfig{
		Player: PlayerConfig{
			Speed:       30,
			TurnSpeed:   3,
			BankLimit:   math.Pi / 4,
			TiltRate:    math.Pi / 12,
			Decay:       5,
			TiltDecay:   4,
			SnapEpsilon: 0.01,
			Bounds: Bounds{
				MinX: -8.5,
				MaxX: 8.5,
				MinY: -6.5,
				MaxY: 12.0,
			},
		},
		Field: FieldConfig{
			Boards:           3,
			StartZ:           -300,
			Stagger:          100,
			RecycleThreshold: 50,
			RecycleOffset:    300,
			DepthWindow:      1,
			GridSpacing:      4,
			GridOriginX:      -8,
			GridOriginY:      11,
			GridRotation:     45,
		},
		Obstacle: ObstacleConfig{
			HalfWidth:  2,
			HalfHeight: 2,
		},
		Fragment: FragmentConfig{
			Spread:        3,
			DriftZ:        -4,
			VelocityScale: 10,
			SpinRate:      math.Pi / 60,
			Width:         1,
			Height:        1,
		},
		Round: RoundConfig{
			StartSpeed: 80,
			Ramp:       2,
			DecayBase:  0.15,
			StopBelow:  1,
			MaxDT:      0.1,
		},
		Camera: CameraConfig{
			Eye:         [3]float64{0, 3, 35},
			Center:      [3]float64{0, 0, 0},
			Up:          [3]float64{0, 1, 0},
			FollowBlend: 0.6,
			FOV:         45,
			Near:        0.1,
			Far:         1000,
		},
		Trail: TrailConfig{
			Particles: 25,
			Spread:    0.3,
			MinSpeed:  -10,
			MaxSpeed:  -5,
			Length:    3.5,
		},
		Input: InputConfig{
			HoldMS: 400,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSkyrunnerYAML
}
