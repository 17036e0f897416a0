package component

import "github.com/jakecoffman/cp"

// PhysicsBody configures a Chipmunk2D body. Body is filled in by the physics
// system. Static bodies use Width and Height, dynamic ones Radius.
type PhysicsBody struct {
	Body   *cp.Body
	Width  float64
	Height float64
	Radius float64
	Mass   float64
	Static bool
	// Layer is one of the physics.Layer* categories.
	Layer uint
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
