package locomotion

import (
	"github.com/jakecoffman/cp"
	"golang.org/x/image/colornames"
)

// tryStartDash moves Ready -> Dashing. Requests that cannot start are dropped.
func (c *Controller) tryStartDash() {
	s := &c.state
	switch {
	case !c.tunables.HasDashAbility,
		s.Dash.CooldownRemaining > 0,
		s.Dash.Active,
		isZero(s.MoveInput),
		s.Knockback.Active(),
		s.Flags.Dead:
		return
	}

	c.audio.PlayOneShot(CueDash)
	c.tint.SetTint(colornames.Black)
	s.Dash.Active = true
	s.Dash.Direction = normalize(s.MoveInput)
	s.AnimLocked = true
	c.log.WithField("step", c.step).Debug("locomotion: dash started")
}

func (c *Controller) dashVelocity(dt float64) cp.Vector {
	v := c.state.Dash.Direction.Mult(c.tunables.DashSpeed)
	c.state.Dash.Remaining -= dt
	if c.state.Dash.Remaining <= 0 {
		c.endDash()
	}
	return v
}

// endDash moves Dashing -> Cooldown.
func (c *Controller) endDash() {
	c.tint.SetTint(colornames.White)
	c.state.Dash = Dash{
		Remaining:         c.tunables.DashDuration,
		CooldownRemaining: c.tunables.DashCooldown,
	}
	c.state.AnimLocked = false
	c.log.WithField("step", c.step).Debug("locomotion: dash finished")
}

func (c *Controller) tickDashCooldown(dt float64) {
	if c.state.Dash.CooldownRemaining <= 0 {
		return
	}
	c.state.Dash.CooldownRemaining -= dt
	if c.state.Dash.CooldownRemaining < 0 {
		c.state.Dash.CooldownRemaining = 0
	}
}
