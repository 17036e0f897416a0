package physics

import (
	"github.com/jakecoffman/cp"
	"github.com/sirupsen/logrus"
)

// characterGroup keeps queries issued on behalf of a character from hitting
// that character's own shapes.
const characterGroup uint = 1

// World owns the Chipmunk space. The arena is viewed top-down, so there is no
// gravity; bodies only move by the velocity written to them.
type World struct {
	space *cp.Space
	log   logrus.FieldLogger
}

func NewWorld(log logrus.FieldLogger) *World {
	if log == nil {
		log = logrus.StandardLogger()
	}
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{})
	return &World{space: space, log: log}
}

func (w *World) Space() *cp.Space {
	if w == nil {
		return nil
	}
	return w.space
}

// AddStaticBox adds an axis-aligned static box centered on center.
func (w *World) AddStaticBox(center cp.Vector, width, height float64, layer uint) *cp.Shape {
	bb := cp.BB{
		L: center.X - width/2,
		B: center.Y - height/2,
		R: center.X + width/2,
		T: center.Y + height/2,
	}
	shape := cp.NewBox2(w.space.StaticBody, bb, 0)
	shape.SetFriction(0)
	shape.SetElasticity(0)
	shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, layer, cp.ALL_CATEGORIES))
	w.space.AddShape(shape)
	return shape
}

// AddCharacter creates a rotation-locked circular body at pos.
func (w *World) AddCharacter(pos cp.Vector, radius, mass float64) *cp.Body {
	if mass <= 0 {
		mass = 1
	}
	body := cp.NewBody(mass, cp.INFINITY)
	body.SetPosition(pos)
	w.space.AddBody(body)

	shape := cp.NewCircle(body, radius, cp.Vector{})
	shape.SetFriction(0)
	shape.SetElasticity(0)
	shape.SetFilter(cp.NewShapeFilter(characterGroup, LayerPlayer, cp.ALL_CATEGORIES))
	w.space.AddShape(shape)

	w.log.WithFields(logrus.Fields{"x": pos.X, "y": pos.Y, "radius": radius}).Debug("physics: character added")
	return body
}

// Remove detaches body and its shapes from the space.
func (w *World) Remove(body *cp.Body) {
	if w == nil || body == nil {
		return
	}
	body.EachShape(func(s *cp.Shape) {
		w.space.RemoveShape(s)
	})
	w.space.RemoveBody(body)
}

// RemoveStatic detaches a shape added with AddStaticBox.
func (w *World) RemoveStatic(shape *cp.Shape) {
	if w == nil || shape == nil {
		return
	}
	w.space.RemoveShape(shape)
}

func (w *World) Step(dt float64) {
	if w == nil || dt <= 0 {
		return
	}
	w.space.Step(dt)
}

// RayCast reports whether a segment from origin along direction, up to
// maxDistance, touches a shape in mask. A zero mask matches every layer.
func (w *World) RayCast(origin, direction cp.Vector, maxDistance float64, mask uint) bool {
	if w == nil || maxDistance <= 0 {
		return false
	}
	l := direction.Length()
	if l == 0 {
		return false
	}
	if mask == 0 {
		mask = cp.ALL_CATEGORIES
	}
	end := origin.Add(direction.Mult(maxDistance / l))
	filter := cp.NewShapeFilter(characterGroup, cp.ALL_CATEGORIES, mask)
	info := w.space.SegmentQueryFirst(origin, end, 0, filter)
	return info.Shape != nil
}

// Bind adapts body to the locomotion Body interface.
func (w *World) Bind(body *cp.Body) *BodyBinding {
	return &BodyBinding{world: w, body: body}
}
