package locomotion

// checkDeath moves the character into the terminal Dead state. It waits for
// any knockback in flight so the hit reaction is not cut short.
func (c *Controller) checkDeath() {
	s := &c.state
	if s.Flags.Dead || s.Health > 0 || s.Knockback.Active() {
		return
	}

	if s.Dash.Active {
		c.endDash()
	}
	s.Health = 0
	s.Flags.Dead = true
	s.Flags.Attacking = false
	c.audio.PlayOneShot(CueDeath)
	c.animator.Play(ClipDeath)
	s.AnimLocked = true
	c.log.WithField("step", c.step).Info("locomotion: character died")
}
