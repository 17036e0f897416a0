package component

import "github.com/milk9111/densetsu/locomotion"

// Locomotion hosts a controller. Bound is set once the locomotion system has
// wired the controller to the entity's other components.
type Locomotion struct {
	Controller *locomotion.Controller
	Bound      bool
	// LastMoveX and LastMoveY are the raw move values last forwarded, so only
	// changes become input events.
	LastMoveX float64
	LastMoveY float64
}

var LocomotionComponent = NewComponent[Locomotion]()
