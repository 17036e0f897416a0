package locomotion

import (
	"github.com/jakecoffman/cp"
	"github.com/sirupsen/logrus"
)

// ApplyKnockback starts a hit reaction. direction is used as the velocity for
// the whole knockback window; a fresh call overwrites any knockback or dash in
// flight and clears the animation lock so the hit reaction plays at once.
func (c *Controller) ApplyKnockback(direction cp.Vector) {
	if c.state.Flags.Dead {
		c.log.Debug("locomotion: knockback ignored, character is dead")
		return
	}

	c.audio.PlayOneShot(CueHurt)
	if c.state.Dash.Active {
		c.endDash()
	}

	c.state.Health -= c.tunables.KnockbackDamage
	c.state.AnimLocked = false
	if isZero(direction) {
		// Damage still lands, but a zero impulse would break the
		// direction/remaining pairing.
		c.state.Knockback = Knockback{}
	} else {
		c.state.Knockback = Knockback{Direction: direction, Remaining: c.tunables.KnockbackDuration}
	}

	c.log.WithFields(logrus.Fields{
		"health": c.state.Health,
		"dir_x":  direction.X,
		"dir_y":  direction.Y,
	}).Debug("locomotion: knockback applied")
}

func (c *Controller) knockbackVelocity(dt float64) cp.Vector {
	v := c.state.Knockback.Direction
	c.state.Knockback.Remaining -= dt
	if c.state.Knockback.Remaining <= 0 {
		c.state.Knockback = Knockback{}
	}
	return v
}
