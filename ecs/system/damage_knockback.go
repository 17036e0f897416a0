package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/densetsu/ecs"
	"github.com/milk9111/densetsu/ecs/component"
	"github.com/milk9111/densetsu/logger"
	"github.com/sirupsen/logrus"
)

const (
	hitFlashFrames   = 24
	hitFlashInterval = 4
)

// DamageKnockbackSystem consumes DamageKnockback requests and applies them to
// the target's locomotion controller.
type DamageKnockbackSystem struct {
	log logrus.FieldLogger
}

func NewDamageKnockbackSystem(log logrus.FieldLogger) *DamageKnockbackSystem {
	log = logger.Or(log)
	return &DamageKnockbackSystem{log: log}
}

// knockbackDirection is the unit vector from the source to the target.
// Coincident points knock straight down.
func knockbackDirection(sourceX, sourceY, targetX, targetY float64) cp.Vector {
	dx, dy := targetX-sourceX, targetY-sourceY
	l := math.Hypot(dx, dy)
	if l <= 1e-6 {
		return cp.Vector{X: 0, Y: -1}
	}
	return cp.Vector{X: dx / l, Y: dy / l}
}

func (s *DamageKnockbackSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	for _, e := range ecs.Query(w, component.DamageKnockbackRequestComponent.Kind().ID()) {
		req, ok := ecs.Get(w, e, component.DamageKnockbackRequestComponent.Kind())
		if !ok {
			continue
		}
		ecs.Remove(w, e, component.DamageKnockbackRequestComponent.Kind())

		loco, ok := ecs.Get(w, e, component.LocomotionComponent.Kind())
		if !ok || loco.Controller == nil || !loco.Bound {
			continue
		}
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		if loco.Controller.Snapshot().Flags.Dead {
			continue
		}

		dir := knockbackDirection(req.SourceX, req.SourceY, t.X, t.Y).Mult(req.Force)
		loco.Controller.ApplyKnockback(dir)
		_ = ecs.Add(w, e, component.WhiteFlashComponent.Kind(), &component.WhiteFlash{
			Frames:   hitFlashFrames,
			Interval: hitFlashInterval,
		})

		s.log.WithFields(logrus.Fields{
			"entity": e,
			"source": req.SourceEntity,
			"health": loco.Controller.Snapshot().Health,
		}).Debug("damage: knockback applied")
	}
}
