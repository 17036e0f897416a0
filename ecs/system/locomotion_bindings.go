package system

import (
	"image/color"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/densetsu/ecs"
	"github.com/milk9111/densetsu/ecs/component"
	"github.com/milk9111/densetsu/locomotion"
	"github.com/milk9111/densetsu/logger"
	"github.com/milk9111/densetsu/physics"
	"github.com/sirupsen/logrus"
)

// LocomotionBinder wires a controller to its entity's components the first
// time the entity is ready: once the physics system created its body, or
// right away for entities without one.
type LocomotionBinder struct {
	physics *physics.World
	log     logrus.FieldLogger
}

func NewLocomotionBinder(pw *physics.World, log logrus.FieldLogger) *LocomotionBinder {
	log = logger.Or(log)
	return &LocomotionBinder{physics: pw, log: log}
}

// Ensure binds loco's controller if needed and reports whether it is bound.
func (b *LocomotionBinder) Ensure(w *ecs.World, e ecs.Entity, loco *component.Locomotion) bool {
	if loco == nil || loco.Controller == nil {
		return false
	}
	if loco.Bound {
		return true
	}
	if b == nil {
		return false
	}

	var bindings locomotion.Bindings
	if pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok {
		if pb.Body == nil {
			return false
		}
		if b.physics != nil {
			bindings.Body = b.physics.Bind(pb.Body)
		}
	}
	if ecs.Has(w, e, component.AnimationComponent.Kind()) {
		bindings.Animator = spriteAnimator{w: w, e: e}
	}
	if ecs.Has(w, e, component.AudioComponent.Kind()) {
		bindings.Audio = cueAudio{w: w, e: e}
	}
	if ecs.Has(w, e, component.SpriteComponent.Kind()) {
		bindings.Tint = spriteTint{w: w, e: e}
	}
	if ecs.Has(w, e, component.CarryAnchorComponent.Kind()) {
		bindings.CarryAnchor = carryAnchor{w: w, holder: e, log: b.log}
	}

	loco.Controller.Init(bindings)
	loco.Bound = true
	b.log.WithField("entity", e).Debug("locomotion: controller bound")
	return true
}

// ShutdownLocomotion unbinds every controller in w.
func ShutdownLocomotion(w *ecs.World) {
	ecs.ForEach(w, component.LocomotionComponent.Kind(), func(_ ecs.Entity, loco *component.Locomotion) {
		if loco.Controller != nil && loco.Bound {
			loco.Controller.Shutdown()
			loco.Bound = false
		}
	})
}

// spriteAnimator plays clips on the entity's Animation component.
type spriteAnimator struct {
	w *ecs.World
	e ecs.Entity
}

func (a spriteAnimator) Play(clip string) {
	anim, ok := ecs.Get(a.w, a.e, component.AnimationComponent.Kind())
	if !ok {
		return
	}
	anim.Current = clip
	anim.Frame = 0
	anim.FrameTimer = 0
	anim.Playing = true
}

func (a spriteAnimator) IsCurrentClip(clip string) bool {
	anim, ok := ecs.Get(a.w, a.e, component.AnimationComponent.Kind())
	return ok && anim.Current == clip
}

func (a spriteAnimator) SetParameter(name string, value float64) {
	anim, ok := ecs.Get(a.w, a.e, component.AnimationComponent.Kind())
	if !ok {
		return
	}
	if anim.Params == nil {
		anim.Params = map[string]float64{}
	}
	anim.Params[name] = value
}

// cueAudio queues the named clip on the entity's Audio component.
type cueAudio struct {
	w *ecs.World
	e ecs.Entity
}

func (a cueAudio) PlayOneShot(cue string) {
	au, ok := ecs.Get(a.w, a.e, component.AudioComponent.Kind())
	if !ok {
		return
	}
	for i, name := range au.Names {
		if name == cue && i < len(au.Play) {
			au.Play[i] = true
			return
		}
	}
}

type spriteTint struct {
	w *ecs.World
	e ecs.Entity
}

func (t spriteTint) SetTint(c color.Color) {
	if s, ok := ecs.Get(t.w, t.e, component.SpriteComponent.Kind()); ok {
		s.Tint = c
	}
}

// entityTransform is an entity that can be adopted by a carry anchor. Its
// local position is only meaningful while it is carried.
type entityTransform struct {
	w *ecs.World
	e ecs.Entity
}

func (t entityTransform) SetLocalPosition(p cp.Vector) {
	if c, ok := ecs.Get(t.w, t.e, component.CarriedComponent.Kind()); ok {
		c.LocalX, c.LocalY = p.X, p.Y
	}
}

type carryAnchor struct {
	w      *ecs.World
	holder ecs.Entity
	log    logrus.FieldLogger
}

func (a carryAnchor) Reparent(target locomotion.Transform, offset cp.Vector) {
	t, ok := target.(entityTransform)
	if !ok || !ecs.IsAlive(a.w, t.e) {
		a.log.WithField("entity", a.holder).Warn("locomotion: carry target is not an entity")
		return
	}
	anchor, ok := ecs.Get(a.w, a.holder, component.CarryAnchorComponent.Kind())
	if !ok {
		return
	}
	if err := ecs.Add(a.w, t.e, component.CarriedComponent.Kind(), &component.Carried{Holder: uint64(a.holder)}); err != nil {
		a.log.WithError(err).Warn("locomotion: adopt carried entity")
		return
	}
	anchor.Holding = uint64(t.e)
	target.SetLocalPosition(offset)
}
