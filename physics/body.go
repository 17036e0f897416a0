package physics

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/densetsu/locomotion"
)

var _ locomotion.Body = (*BodyBinding)(nil)

// BodyBinding exposes a Chipmunk body to the locomotion controller.
type BodyBinding struct {
	world *World
	body  *cp.Body
}

func (b *BodyBinding) Body() *cp.Body { return b.body }

func (b *BodyBinding) Position() cp.Vector { return b.body.Position() }

func (b *BodyBinding) Velocity() cp.Vector { return b.body.Velocity() }

func (b *BodyBinding) SetVelocity(v cp.Vector) { b.body.SetVelocityVector(v) }

func (b *BodyBinding) RayCast(origin, direction cp.Vector, maxDistance float64, mask uint) bool {
	return b.world.RayCast(origin, direction, maxDistance, mask)
}
