package system

import (
	"github.com/milk9111/densetsu/common"
	"github.com/milk9111/densetsu/ecs"
	"github.com/milk9111/densetsu/ecs/component"
)

type HazardSystem struct{}

func NewHazardSystem() *HazardSystem { return &HazardSystem{} }

type hazardHitSource struct {
	bounds common.Rect
	force  float64
	frames int
	entity ecs.Entity
}

func hazardBounds(h *component.Hazard, t *component.Transform) (common.Rect, bool) {
	if h == nil || t == nil || h.Width <= 0 || h.Height <= 0 {
		return common.Rect{}, false
	}
	return common.RectAround(t.X+h.OffsetX, t.Y+h.OffsetY, h.Width, h.Height), true
}

// bodyBounds is the AABB of a physics body: the circle's square for dynamic
// bodies, the box for static ones.
func bodyBounds(t *component.Transform, b *component.PhysicsBody) (common.Rect, bool) {
	if t == nil || b == nil {
		return common.Rect{}, false
	}
	if b.Radius > 0 {
		return common.RectAround(t.X, t.Y, 2*b.Radius, 2*b.Radius), true
	}
	if b.Width > 0 && b.Height > 0 {
		return common.RectAround(t.X, t.Y, b.Width, b.Height), true
	}
	return common.Rect{}, false
}

// Update queues a knockback request for each knockbackable body overlapping
// a hazard, then makes it immune for the hazard's cooldown.
func (s *HazardSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	hazards := make([]hazardHitSource, 0, 8)
	ecs.ForEach2(w, component.HazardComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, h *component.Hazard, t *component.Transform) {
		if b, ok := hazardBounds(h, t); ok {
			hazards = append(hazards, hazardHitSource{bounds: b, force: h.Force, frames: h.CooldownFrames, entity: e})
		}
	})
	if len(hazards) == 0 {
		return
	}

	ecs.ForEach3(w, component.KnockbackableComponent.Kind(), component.TransformComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, _ *component.Knockbackable, t *component.Transform, body *component.PhysicsBody) {
		if ecs.Has(w, e, component.CooldownComponent.Kind()) {
			return
		}
		box, ok := bodyBounds(t, body)
		if !ok {
			return
		}
		for _, hz := range hazards {
			if hz.entity == e || !box.Intersects(hz.bounds) {
				continue
			}
			cx, cy := hz.bounds.Center()
			_ = ecs.Add(w, e, component.DamageKnockbackRequestComponent.Kind(), &component.DamageKnockback{
				SourceX:      cx,
				SourceY:      cy,
				Force:        hz.force,
				SourceEntity: uint64(hz.entity),
			})
			_ = ecs.Add(w, e, component.CooldownComponent.Kind(), &component.Cooldown{Frames: hz.frames})
			return
		}
	})
}
