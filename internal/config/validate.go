package config

import (
	"fmt"
)

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks the invariants the simulation relies on:
//   - boards never overlap after a recycle (recycle_offset >= boards*stagger)
//   - a recycled board lands behind the spawn plane of the field
//   - grid spacing and hit extents are positive
//   - player bounds and pacing parameters are well formed
func (c SkyrunnerConfig) Validate() error {
	f := c.Field
	if f.Boards <= 0 {
		return ValidationError{Code: "FIELD_BOARDS", Message: fmt.Sprintf("boards must be positive, got %d", f.Boards)}
	}
	if f.Stagger <= 0 {
		return ValidationError{Code: "FIELD_STAGGER", Message: fmt.Sprintf("stagger must be positive, got %g", f.Stagger)}
	}
	if depth := float64(f.Boards) * f.Stagger; f.RecycleOffset < depth {
		return ValidationError{
			Code:    "FIELD_RECYCLE",
			Message: fmt.Sprintf("recycle_offset %g is smaller than field depth %g", f.RecycleOffset, depth),
		}
	}
	if f.StartZ >= f.RecycleThreshold {
		return ValidationError{
			Code:    "FIELD_START",
			Message: fmt.Sprintf("start_z %g must be behind recycle_threshold %g", f.StartZ, f.RecycleThreshold),
		}
	}
	if f.DepthWindow <= 0 {
		return ValidationError{Code: "FIELD_WINDOW", Message: "depth_window must be positive"}
	}

	o := c.Obstacle
	if o.HalfWidth <= 0 || o.HalfHeight <= 0 {
		return ValidationError{Code: "OBSTACLE_SIZE", Message: "obstacle half extents must be positive"}
	}
	if f.GridSpacing <= 0 {
		return ValidationError{Code: "FIELD_SPACING", Message: "grid_spacing must be positive"}
	}

	b := c.Player.Bounds
	if b.MinX >= b.MaxX || b.MinY >= b.MaxY {
		return ValidationError{Code: "PLAYER_BOUNDS", Message: "player bounds are empty"}
	}
	if c.Player.SnapEpsilon <= 0 {
		return ValidationError{Code: "PLAYER_EPSILON", Message: "snap_epsilon must be positive"}
	}

	r := c.Round
	if r.DecayBase <= 0 || r.DecayBase >= 1 {
		return ValidationError{Code: "ROUND_DECAY", Message: fmt.Sprintf("decay_base must be in (0, 1), got %g", r.DecayBase)}
	}
	if r.MaxDT <= 0 {
		return ValidationError{Code: "ROUND_DT", Message: "max_dt must be positive"}
	}

	if c.Camera.FollowBlend < 0 || c.Camera.FollowBlend > 1 {
		return ValidationError{Code: "CAMERA_BLEND", Message: fmt.Sprintf("follow_blend must be in [0, 1], got %g", c.Camera.FollowBlend)}
	}
	if c.Trail.Particles < 0 {
		return ValidationError{Code: "TRAIL_PARTICLES", Message: "particles must not be negative"}
	}
	if c.Input.HoldMS <= 0 {
		return ValidationError{Code: "INPUT_HOLD", Message: fmt.Sprintf("hold_ms must be positive, got %d", c.Input.HoldMS)}
	}

	return nil
}
