// Package config provides YAML-based game configuration loading, difficulty
// presets and validation for Sky Runner.
package config

// SkyrunnerConfig contains all tunables of the Sky Runner simulation.
type SkyrunnerConfig struct {
	Player   PlayerConfig   `yaml:"player"`
	Field    FieldConfig    `yaml:"field"`
	Obstacle ObstacleConfig `yaml:"obstacle"`
	Fragment FragmentConfig `yaml:"fragment"`
	Round    RoundConfig    `yaml:"round"`
	Camera   CameraConfig   `yaml:"camera"`
	Trail    TrailConfig    `yaml:"trail"`
	Input    InputConfig    `yaml:"input"`
}

// PlayerConfig defines flight parameters for the player.
type PlayerConfig struct {
	Speed       float64 `yaml:"speed"`        // World units per second along x/y
	TurnSpeed   float64 `yaml:"turn_speed"`   // Multiplier on bank/yaw rates
	BankLimit   float64 `yaml:"bank_limit"`   // Max |yaw| and |pitch| in radians
	TiltRate    float64 `yaml:"tilt_rate"`    // Roll rate per unit of turn speed
	Decay       float64 `yaml:"decay"`        // Yaw/pitch ease-back rate
	TiltDecay   float64 `yaml:"tilt_decay"`   // Roll ease-back rate
	SnapEpsilon float64 `yaml:"snap_epsilon"` // Angles below this snap to zero
	Bounds      Bounds  `yaml:"bounds"`
}

// Bounds is the rectangle the player is clamped to.
type Bounds struct {
	MinX float64 `yaml:"min_x"`
	MaxX float64 `yaml:"max_x"`
	MinY float64 `yaml:"min_y"`
	MaxY float64 `yaml:"max_y"`
}

// FieldConfig defines the board pool and its recycling.
type FieldConfig struct {
	Boards           int     `yaml:"boards"`
	StartZ           float64 `yaml:"start_z"`
	Stagger          float64 `yaml:"stagger"`
	RecycleThreshold float64 `yaml:"recycle_threshold"`
	RecycleOffset    float64 `yaml:"recycle_offset"`
	DepthWindow      float64 `yaml:"depth_window"` // |board z| at which collisions are tested
	GridSpacing      float64 `yaml:"grid_spacing"`
	GridOriginX      float64 `yaml:"grid_origin_x"`
	GridOriginY      float64 `yaml:"grid_origin_y"`
	GridRotation     float64 `yaml:"grid_rotation"` // Degrees about the view axis
}

// ObstacleConfig defines the obstacle hit box.
type ObstacleConfig struct {
	HalfWidth  float64 `yaml:"half_width"`
	HalfHeight float64 `yaml:"half_height"`
}

// FragmentConfig defines debris spawned when an obstacle fractures.
type FragmentConfig struct {
	Spread        float64 `yaml:"spread"`         // Outward x/y velocity magnitude
	DriftZ        float64 `yaml:"drift_z"`        // Constant z velocity
	VelocityScale float64 `yaml:"velocity_scale"` // x/y velocity divisor
	SpinRate      float64 `yaml:"spin_rate"`      // Radians per unit of speed*dt
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
}

// RoundConfig defines round pacing.
type RoundConfig struct {
	StartSpeed float64 `yaml:"start_speed"`
	Ramp       float64 `yaml:"ramp"`        // Speed gained per second while playing
	DecayBase  float64 `yaml:"decay_base"`  // speed *= decay_base^dt after a loss
	StopBelow  float64 `yaml:"stop_below"`  // Decaying speed snaps to zero at or below this
	MaxDT      float64 `yaml:"max_dt"`      // Upper bound on a single frame step
}

// CameraConfig defines the published view transform.
type CameraConfig struct {
	Eye         [3]float64 `yaml:"eye"`
	Center      [3]float64 `yaml:"center"`
	Up          [3]float64 `yaml:"up"`
	FollowBlend float64    `yaml:"follow_blend"` // Weight of the fixed camera
	FOV         float64    `yaml:"fov"`          // Vertical field of view in degrees
	Near        float64    `yaml:"near"`
	Far         float64    `yaml:"far"`
}

// TrailConfig defines the speed streaks drawn around the player.
type TrailConfig struct {
	Particles int     `yaml:"particles"`
	Spread    float64 `yaml:"spread"`
	MinSpeed  float64 `yaml:"min_speed"`
	MaxSpeed  float64 `yaml:"max_speed"`
	Length    float64 `yaml:"length"`
}

// InputConfig defines how the terminal host emulates held keys.
type InputConfig struct {
	HoldMS int `yaml:"hold_ms"` // Must outlast the terminal's key repeat delay
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// ApplyPreset modifies the round pacing based on a difficulty preset.
func ApplyPreset(cfg *SkyrunnerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Round.StartSpeed = 60
		cfg.Round.Ramp = 1
	case DifficultyNormal:
		cfg.Round.StartSpeed = 80
		cfg.Round.Ramp = 2
	case DifficultyHard:
		cfg.Round.StartSpeed = 110
		cfg.Round.Ramp = 4
	case DifficultyFixed:
		cfg.Round.Ramp = 0
	}
}
