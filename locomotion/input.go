package locomotion

import "github.com/jakecoffman/cp"

// EventKind identifies a discrete input event.
type EventKind uint8

const (
	EventMove EventKind = iota + 1
	EventAttack
	EventDash
	EventMenuToggle
)

func (k EventKind) String() string {
	switch k {
	case EventMove:
		return "move"
	case EventAttack:
		return "attack"
	case EventDash:
		return "dash"
	case EventMenuToggle:
		return "menu_toggle"
	}
	return "unknown"
}

// Event is delivered by an input source. Move is only meaningful for
// EventMove and carries the raw analog vector, +Y being screen-up.
type Event struct {
	Kind EventKind
	Move cp.Vector
}

func MoveChanged(raw cp.Vector) Event { return Event{Kind: EventMove, Move: raw} }
func AttackPressed() Event            { return Event{Kind: EventAttack} }
func DashPressed() Event              { return Event{Kind: EventDash} }
func MenuToggled() Event              { return Event{Kind: EventMenuToggle} }

// diagonalYScale compresses the vertical axis of diagonal movement to match
// the 2:1 isometric tile ratio.
const diagonalYScale = 0.5

// isoRemap turns screen-cardinal presses onto the visual diagonals of the grid.
var isoRemap = map[cp.Vector]cp.Vector{
	{X: -1, Y: 0}: {X: -1, Y: -1},
	{X: 1, Y: 0}:  {X: 1, Y: 1},
	{X: 0, Y: 1}:  {X: -1, Y: 1},
	{X: 0, Y: -1}: {X: 1, Y: -1},
}

// Normalize converts a raw analog vector into the movement vector consumed by
// the physics step. facing is the remapped direction before foreshortening,
// zero when the input is inside the deadzone.
func Normalize(raw cp.Vector, deadzone float64) (move, facing cp.Vector) {
	v := cp.Vector{X: clampAxis(raw.X, deadzone), Y: clampAxis(raw.Y, deadzone)}
	if iso, ok := isoRemap[v]; ok {
		v = iso
	}
	facing = v

	if v.X != 0 && v.Y != 0 {
		v.Y *= diagonalYScale
	}
	return normalize(v), facing
}

// clampAxis snaps an axis to -1, 0 or 1. NaN falls through to 0.
func clampAxis(a, deadzone float64) float64 {
	switch {
	case a > deadzone:
		return 1
	case a < -deadzone:
		return -1
	}
	return 0
}

// applyMoveInput is the only writer of MoveInput and Facing. The raw vector is
// kept so a gate change can re-run normalization without a new device event.
func (c *Controller) applyMoveInput(raw cp.Vector) {
	c.lastRaw = raw
	if c.state.Flags.Interacting || c.state.MenuOpen {
		c.state.MoveInput = cp.Vector{}
		return
	}

	move, facing := Normalize(raw, c.tunables.InputDeadzone)
	if !isZero(facing) {
		c.state.Facing = facing
	}
	c.state.MoveInput = move
}
