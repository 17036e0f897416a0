package locomotion

import (
	"errors"
	"fmt"
)

var ErrInvalidTunables = errors.New("locomotion: invalid tunables")

// Tunables is the flat configuration of a controller. Times are in seconds,
// speeds in world units per second.
type Tunables struct {
	Health            int     `yaml:"health"`
	MoveSpeed         float64 `yaml:"move_speed"`
	HasDashAbility    bool    `yaml:"has_dash_ability"`
	DashSpeed         float64 `yaml:"dash_speed"`
	DashDuration      float64 `yaml:"dash_duration"`
	DashCooldown      float64 `yaml:"dash_cooldown"`
	KnockbackDuration float64 `yaml:"knockback_duration"`
	KnockbackDamage   int     `yaml:"knockback_damage"`
	WallProbeDistance float64 `yaml:"wall_probe_distance"`
	InputDeadzone     float64 `yaml:"input_deadzone"`

	// WallMask is the layer mask handed to Body.RayCast by the wall probe.
	// It is resolved from layer names by the prefab loader.
	WallMask uint `yaml:"-"`
}

func DefaultTunables() Tunables {
	return Tunables{
		Health:            50,
		MoveSpeed:         4,
		HasDashAbility:    false,
		DashSpeed:         18,
		DashDuration:      0.075,
		DashCooldown:      0.8,
		KnockbackDuration: 0.15,
		KnockbackDamage:   10,
		WallProbeDistance: 0.21,
		InputDeadzone:     0.4,
	}
}

// Validate reports the first out-of-range field wrapped in ErrInvalidTunables.
func (t Tunables) Validate() error {
	switch {
	case t.Health <= 0:
		return fmt.Errorf("%w: health must be positive, got %d", ErrInvalidTunables, t.Health)
	case t.MoveSpeed < 0:
		return fmt.Errorf("%w: move_speed must not be negative, got %g", ErrInvalidTunables, t.MoveSpeed)
	case t.DashSpeed < 0:
		return fmt.Errorf("%w: dash_speed must not be negative, got %g", ErrInvalidTunables, t.DashSpeed)
	case t.DashDuration <= 0:
		return fmt.Errorf("%w: dash_duration must be positive, got %g", ErrInvalidTunables, t.DashDuration)
	case t.DashCooldown < 0:
		return fmt.Errorf("%w: dash_cooldown must not be negative, got %g", ErrInvalidTunables, t.DashCooldown)
	case t.KnockbackDuration <= 0:
		return fmt.Errorf("%w: knockback_duration must be positive, got %g", ErrInvalidTunables, t.KnockbackDuration)
	case t.KnockbackDamage < 0:
		return fmt.Errorf("%w: knockback_damage must not be negative, got %d", ErrInvalidTunables, t.KnockbackDamage)
	case t.WallProbeDistance < 0:
		return fmt.Errorf("%w: wall_probe_distance must not be negative, got %g", ErrInvalidTunables, t.WallProbeDistance)
	case t.InputDeadzone < 0 || t.InputDeadzone >= 1:
		return fmt.Errorf("%w: input_deadzone must be in [0, 1), got %g", ErrInvalidTunables, t.InputDeadzone)
	}
	return nil
}
