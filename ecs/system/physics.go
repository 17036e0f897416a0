package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/densetsu/ecs"
	"github.com/milk9111/densetsu/ecs/component"
	"github.com/milk9111/densetsu/logger"
	"github.com/milk9111/densetsu/physics"
	"github.com/sirupsen/logrus"
)

// PhysicsSystem mirrors PhysicsBody components into the Chipmunk space,
// steps it, and copies body positions back into transforms.
type PhysicsSystem struct {
	world *physics.World
	dt    float64
	log   logrus.FieldLogger

	entities map[ecs.Entity]*bodyInfo
}

type bodyInfo struct {
	body   *cp.Body
	shape  *cp.Shape
	static bool
}

func NewPhysicsSystem(world *physics.World, dt float64, log logrus.FieldLogger) *PhysicsSystem {
	log = logger.Or(log)
	if world == nil {
		world = physics.NewWorld(log)
	}
	return &PhysicsSystem{
		world:    world,
		dt:       dt,
		log:      log,
		entities: make(map[ecs.Entity]*bodyInfo),
	}
}

func (ps *PhysicsSystem) World() *physics.World {
	if ps == nil {
		return nil
	}
	return ps.world
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}

	ps.Sync(w)
	ps.world.Step(ps.dt)
	ps.syncTransforms(w)
}

// Sync adds bodies for new PhysicsBody components and drops the bodies of
// destroyed entities. It runs at the start of every Update, and may be called
// once before the first step so controllers can bind right away.
func (ps *PhysicsSystem) Sync(w *ecs.World) {
	for e, info := range ps.entities {
		if ecs.IsAlive(w, e) && ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) {
			continue
		}
		if info.static {
			ps.world.RemoveStatic(info.shape)
		} else {
			ps.world.Remove(info.body)
		}
		delete(ps.entities, e)
	}

	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, pb *component.PhysicsBody, t *component.Transform) {
		if _, ok := ps.entities[e]; ok {
			return
		}
		pos := cp.Vector{X: t.X, Y: t.Y}
		if pb.Static {
			shape := ps.world.AddStaticBox(pos, pb.Width, pb.Height, pb.Layer)
			pb.Body = shape.Body()
			ps.entities[e] = &bodyInfo{body: pb.Body, shape: shape, static: true}
			return
		}
		pb.Body = ps.world.AddCharacter(pos, pb.Radius, pb.Mass)
		ps.entities[e] = &bodyInfo{body: pb.Body}
		ps.log.WithField("entity", e).Debug("physics: body created")
	})
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	for e, info := range ps.entities {
		if info.static {
			continue
		}
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		p := info.body.Position()
		t.X, t.Y = p.X, p.Y
	}
}
