package locomotion

import (
	"github.com/jakecoffman/cp"
	"github.com/sirupsen/logrus"
)

// Lifecycle is the surface an external scheduler drives.
type Lifecycle interface {
	Init(b Bindings)
	Shutdown()
	StepPhysics(dt float64)
	OnInputEvent(ev Event)
}

var _ Lifecycle = (*Controller)(nil)

// StepReport describes what the latest physics step decided.
type StepReport struct {
	Step     uint64
	Velocity cp.Vector
	Source   VelocitySource
	// Written is false when no body was bound and the velocity was dropped.
	Written bool
	Rule    string
	Clip    string
}

// Controller owns the character state and runs the per-step procedures in a
// fixed order: death check, velocity rules (knockback, dash, lock, walk),
// animation selection.
type Controller struct {
	tunables Tunables
	state    State
	log      logrus.FieldLogger

	body     Body
	animator Animator
	audio    Audio
	tint     Tint
	anchor   CarryAnchor

	enabled bool
	lastRaw cp.Vector
	step    uint64
	last    StepReport
}

// New creates a controller with full health. log may be nil.
func New(t Tunables, log logrus.FieldLogger) *Controller {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Controller{
		tunables: t,
		state:    newState(t),
		log:      log,
		animator: nopAnimator{},
		audio:    nopAudio{},
		tint:     nopTint{},
	}
}

// Init binds collaborators and enables the controller. Missing collaborators
// other than the body are replaced with no-ops.
func (c *Controller) Init(b Bindings) {
	c.body = b.Body
	c.anchor = b.CarryAnchor

	c.animator = b.Animator
	if c.animator == nil {
		c.log.Warn("locomotion: no animator bound, animation requests are dropped")
		c.animator = nopAnimator{}
	}
	c.audio = b.Audio
	if c.audio == nil {
		c.log.Warn("locomotion: no audio bound, cues are dropped")
		c.audio = nopAudio{}
	}
	c.tint = b.Tint
	if c.tint == nil {
		c.tint = nopTint{}
	}

	c.animator.SetParameter(ParamFaceX, c.state.Facing.X)
	c.animator.SetParameter(ParamFaceY, c.state.Facing.Y)
	c.enabled = true
}

// Shutdown unbinds collaborators. Steps and input events are ignored until
// the next Init; state is kept.
func (c *Controller) Shutdown() {
	c.enabled = false
	c.body = nil
	c.anchor = nil
	c.animator = nopAnimator{}
	c.audio = nopAudio{}
	c.tint = nopTint{}
}

// StepPhysics runs one fixed simulation step of dt seconds.
func (c *Controller) StepPhysics(dt float64) {
	if !c.enabled {
		return
	}
	if dt < 0 {
		dt = 0
	}
	c.step++

	c.checkDeath()
	c.tickDashCooldown(dt)

	v, source := c.resolveVelocity(dt)
	written := false
	if c.body == nil {
		c.log.WithField("step", c.step).Warn("locomotion: no physics body bound, skipping velocity write")
	} else {
		c.body.SetVelocity(v)
		written = true
	}

	rule, clip := c.selectAnimation()
	c.last = StepReport{
		Step:     c.step,
		Velocity: v,
		Source:   source,
		Written:  written,
		Rule:     rule,
		Clip:     clip,
	}
}

// OnInputEvent consumes one discrete input event. The latest move event wins.
func (c *Controller) OnInputEvent(ev Event) {
	if !c.enabled {
		return
	}

	switch ev.Kind {
	case EventMove:
		c.applyMoveInput(ev.Move)
	case EventAttack:
		c.TriggerAttack()
	case EventDash:
		c.tryStartDash()
	case EventMenuToggle:
		c.SetMenuOpen(!c.state.MenuOpen)
	default:
		c.log.WithField("kind", ev.Kind).Debug("locomotion: unknown input event")
	}
}

// TriggerAttack queues an attack for the next animation selection.
func (c *Controller) TriggerAttack() {
	if c.state.Flags.Dead {
		return
	}
	c.state.Flags.Attacking = true
}

// StartCarry adopts target under the carry anchor at zero local offset.
func (c *Controller) StartCarry(target Transform) {
	if target == nil {
		return
	}
	if c.anchor == nil {
		c.log.Warn("locomotion: no carry anchor bound, ignoring carry")
		return
	}
	c.anchor.Reparent(target, cp.Vector{})
	c.state.Flags.Carrying = true
	c.log.Debug("locomotion: carry started")
}

func (c *Controller) SetInteracting(interacting bool) {
	if c.state.Flags.Interacting == interacting {
		return
	}
	c.state.Flags.Interacting = interacting
	c.applyMoveInput(c.lastRaw)
}

func (c *Controller) SetMenuOpen(open bool) {
	if c.state.MenuOpen == open {
		return
	}
	c.state.MenuOpen = open
	c.applyMoveInput(c.lastRaw)
}

func (c *Controller) SetCanMove(canMove bool) {
	c.state.CanMove = canMove
}

// SetTunables swaps the configuration in place. Health and running timers are
// left alone; the idle dash duration follows the new value.
func (c *Controller) SetTunables(t Tunables) {
	c.tunables = t
	if !c.state.Dash.Active {
		c.state.Dash.Remaining = t.DashDuration
	}
}

func (c *Controller) Tunables() Tunables { return c.tunables }

// Snapshot returns a copy of the character state.
func (c *Controller) Snapshot() State { return c.state }

func (c *Controller) LastStep() StepReport { return c.last }
