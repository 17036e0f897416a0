package locomotion

import (
	"image/color"

	"github.com/jakecoffman/cp"
)

// Clip names requested from the Animator.
const (
	ClipIdle      = "idle"
	ClipIdleCarry = "idle_carry"
	ClipWalk      = "walk"
	ClipAttack    = "attack"
	ClipHit       = "hit"
	ClipDeath     = "death"
)

// Animator parameters carrying the facing direction.
const (
	ParamFaceX = "face_x"
	ParamFaceY = "face_y"
)

// One-shot audio cues.
const (
	CueAttack = "attack"
	CueDash   = "dash"
	CueHurt   = "hurt"
	CueDeath  = "death"
)

// Body is the physics body the controller drives.
type Body interface {
	Position() cp.Vector
	Velocity() cp.Vector
	SetVelocity(v cp.Vector)
	// RayCast reports whether a ray from origin along direction hits a shape
	// on one of the layers in mask within maxDistance.
	RayCast(origin, direction cp.Vector, maxDistance float64, mask uint) bool
}

type Animator interface {
	Play(clip string)
	IsCurrentClip(clip string) bool
	SetParameter(name string, value float64)
}

type Audio interface {
	PlayOneShot(cue string)
}

// Tint is the visual cue shown while dashing.
type Tint interface {
	SetTint(c color.Color)
}

// Transform is a scene object that a carry anchor can adopt.
type Transform interface {
	SetLocalPosition(p cp.Vector)
}

type CarryAnchor interface {
	Reparent(target Transform, offset cp.Vector)
}

// Bindings are the collaborators handed to Controller.Init. Any of them may
// be nil.
type Bindings struct {
	Body        Body
	Animator    Animator
	Audio       Audio
	Tint        Tint
	CarryAnchor CarryAnchor
}

type nopAnimator struct{}

func (nopAnimator) Play(string) {}
func (nopAnimator) IsCurrentClip(string) bool { return false }
func (nopAnimator) SetParameter(string, float64) {}

type nopAudio struct{}

func (nopAudio) PlayOneShot(string) {}

type nopTint struct{}

func (nopTint) SetTint(color.Color) {}
