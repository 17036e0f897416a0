package system

import (
	"math"
	"testing"

	"github.com/milk9111/densetsu/ecs"
	"github.com/milk9111/densetsu/ecs/component"
	"github.com/milk9111/densetsu/locomotion"
	"github.com/milk9111/densetsu/physics"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
)

const step = 1.0 / 60.0

// rig is an ECS world backed by a real Chipmunk space, with no rendering or
// audio.
type rig struct {
	w       *ecs.World
	log     *logrus.Logger
	hook    *logtest.Hook
	physics *PhysicsSystem
	binder  *LocomotionBinder
}

func newRig(t *testing.T) *rig {
	t.Helper()
	log, hook := logtest.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	pw := physics.NewWorld(log)
	return &rig{
		w:       ecs.NewWorld(),
		log:     log,
		hook:    hook,
		physics: NewPhysicsSystem(pw, step, log),
		binder:  NewLocomotionBinder(pw, log),
	}
}

func mustAdd(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("add component: %v", err)
	}
}

// addCharacter creates a knockbackable character with a dynamic body and an
// unbound controller, and syncs its body into the space.
func (r *rig) addCharacter(t *testing.T, x, y float64, tun locomotion.Tunables) (ecs.Entity, *locomotion.Controller) {
	t.Helper()
	e := ecs.CreateEntity(r.w)
	c := locomotion.New(tun, r.log)
	mustAdd(t, ecs.Add(r.w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}))
	mustAdd(t, ecs.Add(r.w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Radius: 0.3, Mass: 1, Layer: physics.LayerPlayer}))
	mustAdd(t, ecs.Add(r.w, e, component.KnockbackableComponent.Kind(), &component.Knockbackable{}))
	mustAdd(t, ecs.Add(r.w, e, component.InputComponent.Kind(), &component.Input{}))
	mustAdd(t, ecs.Add(r.w, e, component.LocomotionComponent.Kind(), &component.Locomotion{Controller: c}))
	r.physics.Sync(r.w)
	return e, c
}

func (r *rig) bind(t *testing.T, e ecs.Entity) {
	t.Helper()
	loco, ok := ecs.Get(r.w, e, component.LocomotionComponent.Kind())
	if !ok || !r.binder.Ensure(r.w, e, loco) {
		t.Fatalf("expected entity %v to bind", e)
	}
}

func (r *rig) transform(t *testing.T, e ecs.Entity) *component.Transform {
	t.Helper()
	tr, ok := ecs.Get(r.w, e, component.TransformComponent.Kind())
	if !ok {
		t.Fatalf("entity %v has no transform", e)
	}
	return tr
}

func (r *rig) countLogs(msg string) int {
	n := 0
	for _, entry := range r.hook.AllEntries() {
		if entry.Message == msg {
			n++
		}
	}
	return n
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
