package system

import (
	"github.com/milk9111/densetsu/common"
	"github.com/milk9111/densetsu/ecs"
	"github.com/milk9111/densetsu/ecs/component"
)

// CarrySystem picks up the nearest carryable in reach of an empty carry
// anchor, and moves carried entities with their holder.
type CarrySystem struct {
	binder *LocomotionBinder
}

func NewCarrySystem(binder *LocomotionBinder) *CarrySystem {
	return &CarrySystem{binder: binder}
}

func (s *CarrySystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach3(w, component.CarryAnchorComponent.Kind(), component.LocomotionComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, anchor *component.CarryAnchor, loco *component.Locomotion, t *component.Transform) {
		if anchor.Holding != 0 && ecs.IsAlive(w, ecs.Entity(anchor.Holding)) {
			return
		}
		anchor.Holding = 0
		if !s.binder.Ensure(w, e, loco) {
			return
		}
		state := loco.Controller.Snapshot()
		if state.Flags.Dead || state.Flags.Carrying {
			return
		}
		if target, ok := nearestCarryable(w, t.X, t.Y, anchor.Range); ok {
			loco.Controller.StartCarry(entityTransform{w: w, e: target})
		}
	})

	followHolders(w)
}

// nearestCarryable finds the closest free carryable whose edge is within
// reach of (x, y).
func nearestCarryable(w *ecs.World, x, y, reach float64) (ecs.Entity, bool) {
	var best ecs.Entity
	bestDist := -1.0
	ecs.ForEach2(w, component.CarryableComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, c *component.Carryable, t *component.Transform) {
		if ecs.Has(w, e, component.CarriedComponent.Kind()) {
			return
		}
		limit := reach + c.Radius
		d := common.DistanceSq(x, y, t.X, t.Y)
		if d > limit*limit {
			return
		}
		if bestDist < 0 || d < bestDist {
			best, bestDist = e, d
		}
	})
	return best, bestDist >= 0
}

func followHolders(w *ecs.World) {
	ecs.ForEach2(w, component.CarriedComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, c *component.Carried, t *component.Transform) {
		holder := ecs.Entity(c.Holder)
		ht, ok := ecs.Get(w, holder, component.TransformComponent.Kind())
		if !ok {
			ecs.Remove(w, e, component.CarriedComponent.Kind())
			return
		}
		var ox, oy float64
		if anchor, ok := ecs.Get(w, holder, component.CarryAnchorComponent.Kind()); ok {
			ox, oy = anchor.OffsetX, anchor.OffsetY
		}
		t.X = ht.X + ox + c.LocalX
		t.Y = ht.Y + oy + c.LocalY
	})
}
