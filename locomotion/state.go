package locomotion

import "github.com/jakecoffman/cp"

// Knockback is a timed forced-displacement impulse. Direction is nonzero
// exactly while Remaining is positive.
type Knockback struct {
	Direction cp.Vector
	Remaining float64
}

func (k Knockback) Active() bool {
	return !isZero(k.Direction)
}

// Dash tracks the Ready -> Dashing -> Cooldown cycle. Remaining is reset to
// the configured duration when a dash ends; CooldownRemaining only starts
// counting once it has.
type Dash struct {
	Active            bool
	Direction         cp.Vector
	Remaining         float64
	CooldownRemaining float64
}

type Flags struct {
	Attacking   bool
	Dead        bool
	Interacting bool
	Carrying    bool
}

// State is the character record owned by a Controller.
type State struct {
	Health     int
	Facing     cp.Vector
	MoveInput  cp.Vector
	AnimLocked bool
	CanMove    bool
	MenuOpen   bool
	Knockback  Knockback
	Dash       Dash
	Flags      Flags
}

func newState(t Tunables) State {
	return State{
		Health:  t.Health,
		Facing:  cp.Vector{X: 1, Y: 1},
		CanMove: true,
		Dash:    Dash{Remaining: t.DashDuration},
	}
}
