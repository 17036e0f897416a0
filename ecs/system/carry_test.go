package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/densetsu/ecs"
	"github.com/milk9111/densetsu/ecs/component"
	"github.com/milk9111/densetsu/locomotion"
)

func addCarryable(t *testing.T, r *rig, x, y float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(r.w)
	mustAdd(t, ecs.Add(r.w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}))
	mustAdd(t, ecs.Add(r.w, e, component.CarryableComponent.Kind(), &component.Carryable{Radius: 0.25}))
	return e
}

func addCarrier(t *testing.T, r *rig, tun locomotion.Tunables) (ecs.Entity, *locomotion.Controller) {
	t.Helper()
	e, c := r.addCharacter(t, 0, 0, tun)
	mustAdd(t, ecs.Add(r.w, e, component.CarryAnchorComponent.Kind(), &component.CarryAnchor{OffsetY: 0.55, Range: 0.7}))
	return e, c
}

func TestCarryPicksUpNearestAndFollows(t *testing.T) {
	r := newRig(t)
	holder, c := addCarrier(t, r, locomotion.DefaultTunables())
	farther := addCarryable(t, r, 0.8, 0)
	nearest := addCarryable(t, r, 0, -0.5)
	outOfReach := addCarryable(t, r, 4, 4)

	sys := NewCarrySystem(r.binder)
	sys.Update(r.w)

	if !c.Snapshot().Flags.Carrying {
		t.Fatal("expected the controller to be carrying")
	}
	carried, ok := ecs.Get(r.w, nearest, component.CarriedComponent.Kind())
	if !ok || carried.Holder != uint64(holder) {
		t.Fatalf("expected the nearest carryable to be held by %v, got %+v", holder, carried)
	}
	for _, e := range []ecs.Entity{farther, outOfReach} {
		if ecs.Has(r.w, e, component.CarriedComponent.Kind()) {
			t.Fatalf("expected %v to stay on the ground", e)
		}
	}
	if anchor, _ := ecs.Get(r.w, holder, component.CarryAnchorComponent.Kind()); anchor.Holding != uint64(nearest) {
		t.Fatalf("expected anchor to hold %v, got %d", nearest, anchor.Holding)
	}
	if tr := r.transform(t, nearest); !approx(tr.X, 0) || !approx(tr.Y, 0.55) {
		t.Fatalf("expected carried item at the anchor (0,0.55), got (%g,%g)", tr.X, tr.Y)
	}

	ht := r.transform(t, holder)
	ht.X, ht.Y = 2, -1
	sys.Update(r.w)
	if tr := r.transform(t, nearest); !approx(tr.X, 2) || !approx(tr.Y, -0.45) {
		t.Fatalf("expected carried item to follow to (2,-0.45), got (%g,%g)", tr.X, tr.Y)
	}
	if ecs.Has(r.w, farther, component.CarriedComponent.Kind()) {
		t.Fatal("expected a single carried item")
	}

	ecs.DestroyEntity(r.w, holder)
	sys.Update(r.w)
	if ecs.Has(r.w, nearest, component.CarriedComponent.Kind()) {
		t.Fatal("expected the item to drop when its holder is gone")
	}
}

func TestCarrySkipsDeadHolder(t *testing.T) {
	r := newRig(t)
	tun := locomotion.DefaultTunables()
	tun.Health = tun.KnockbackDamage
	holder, c := addCarrier(t, r, tun)
	item := addCarryable(t, r, 0.3, 0)
	r.bind(t, holder)

	c.ApplyKnockback(cp.Vector{X: 1})
	for i := 0; i < 30; i++ {
		c.StepPhysics(step)
	}
	if !c.Snapshot().Flags.Dead {
		t.Fatal("expected the holder to be dead")
	}

	NewCarrySystem(r.binder).Update(r.w)
	if ecs.Has(r.w, item, component.CarriedComponent.Kind()) {
		t.Fatal("expected a dead holder not to pick anything up")
	}
}
