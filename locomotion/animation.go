package locomotion

type animationRule struct {
	name    string
	applies func(c *Controller) bool
	// apply requests at most one clip and returns its name, "" for none.
	apply func(c *Controller) string
}

// animationRules is evaluated in order; the first applicable rule wins.
var animationRules = [...]animationRule{
	{
		name:    "hit",
		applies: func(c *Controller) bool { return c.state.Knockback.Active() },
		apply:   func(c *Controller) string { return c.playIfNotCurrent(ClipHit) },
	},
	{
		name:    "attack",
		applies: func(c *Controller) bool { return c.state.Flags.Attacking },
		apply:   (*Controller).playAttack,
	},
	{
		// The lock owner is responsible for the clip currently playing.
		name:    "locked",
		applies: func(c *Controller) bool { return c.state.AnimLocked },
		apply:   func(*Controller) string { return "" },
	},
	{
		name:    "locomotion",
		applies: func(c *Controller) bool { return c.state.CanMove },
		apply:   (*Controller).playLocomotion,
	},
}

func (c *Controller) selectAnimation() (rule, clip string) {
	for _, r := range animationRules {
		if r.applies(c) {
			return r.name, r.apply(c)
		}
	}
	return "", ""
}

func (c *Controller) playAttack() string {
	if !c.state.AnimLocked {
		c.audio.PlayOneShot(CueAttack)
	}
	c.animator.Play(ClipAttack)
	c.state.Flags.Attacking = false
	c.state.AnimLocked = true
	return ClipAttack
}

func (c *Controller) playLocomotion() string {
	c.animator.SetParameter(ParamFaceX, c.state.Facing.X)
	c.animator.SetParameter(ParamFaceY, c.state.Facing.Y)

	if !isZero(c.state.MoveInput) {
		return c.playIfNotCurrent(ClipWalk)
	}
	if c.state.Flags.Carrying {
		return c.playIfNotCurrent(ClipIdleCarry)
	}
	return c.playIfNotCurrent(ClipIdle)
}

func (c *Controller) playIfNotCurrent(clip string) string {
	if !c.animator.IsCurrentClip(clip) {
		c.animator.Play(clip)
	}
	return clip
}

// UnlockAnim is the animation-completion callback: the end of an attack or
// dash clip releases the lock. The death lock is permanent.
func (c *Controller) UnlockAnim() {
	if c.state.Flags.Dead {
		return
	}
	c.state.AnimLocked = false
}
