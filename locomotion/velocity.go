package locomotion

import "github.com/jakecoffman/cp"

// VelocitySource names the rule that produced a step's velocity.
type VelocitySource uint8

const (
	SourceNone VelocitySource = iota
	SourceKnockback
	SourceDash
	SourceLocked
	SourceWalk
)

func (s VelocitySource) String() string {
	switch s {
	case SourceKnockback:
		return "knockback"
	case SourceDash:
		return "dash"
	case SourceLocked:
		return "locked"
	case SourceWalk:
		return "walk"
	}
	return "none"
}

type velocityRule struct {
	source  VelocitySource
	applies func(c *Controller) bool
	resolve func(c *Controller, dt float64) cp.Vector
}

// velocityRules is evaluated in order and the first applicable rule owns the
// step. Resolvers advance their own timers.
var velocityRules = [...]velocityRule{
	{
		source:  SourceKnockback,
		applies: func(c *Controller) bool { return c.state.Knockback.Active() },
		resolve: (*Controller).knockbackVelocity,
	},
	{
		source:  SourceDash,
		applies: func(c *Controller) bool { return c.state.Dash.Active },
		resolve: (*Controller).dashVelocity,
	},
	{
		source:  SourceLocked,
		applies: func(c *Controller) bool { return c.state.AnimLocked },
		resolve: func(*Controller, float64) cp.Vector { return cp.Vector{} },
	},
	{
		source:  SourceWalk,
		applies: func(*Controller) bool { return true },
		resolve: (*Controller).walkVelocity,
	},
}

func (c *Controller) resolveVelocity(dt float64) (cp.Vector, VelocitySource) {
	for _, rule := range velocityRules {
		if rule.applies(c) {
			return rule.resolve(c, dt), rule.source
		}
	}
	return cp.Vector{}, SourceNone
}

func (c *Controller) walkVelocity(float64) cp.Vector {
	if !c.state.CanMove {
		return cp.Vector{}
	}
	move := c.state.MoveInput
	if c.movingIntoWall(move) {
		// Only this step is affected; the stored input stays untouched.
		move = cp.Vector{}
	}
	return move.Mult(c.tunables.MoveSpeed)
}

func (c *Controller) movingIntoWall(dir cp.Vector) bool {
	if c.body == nil || isZero(dir) {
		return false
	}
	return c.body.RayCast(c.body.Position(), dir, c.tunables.WallProbeDistance, c.tunables.WallMask)
}
