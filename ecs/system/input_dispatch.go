package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/densetsu/ecs"
	"github.com/milk9111/densetsu/ecs/component"
	"github.com/milk9111/densetsu/locomotion"
)

// dispatchInput turns Input components into controller events and clears
// the one-step edges. A move event is only sent when the raw vector changed
// since the last one.
func dispatchInput(w *ecs.World, binder *LocomotionBinder) {
	if w == nil {
		return
	}
	ecs.ForEach2(w, component.InputComponent.Kind(), component.LocomotionComponent.Kind(), func(e ecs.Entity, input *component.Input, loco *component.Locomotion) {
		if loco.Controller == nil || !binder.Ensure(w, e, loco) {
			return
		}
		c := loco.Controller

		if input.InteractPressed {
			input.Interacting = !input.Interacting
		}
		c.SetInteracting(input.Interacting)

		if input.MenuPressed {
			c.OnInputEvent(locomotion.MenuToggled())
		}
		if input.MoveX != loco.LastMoveX || input.MoveY != loco.LastMoveY {
			loco.LastMoveX, loco.LastMoveY = input.MoveX, input.MoveY
			c.OnInputEvent(locomotion.MoveChanged(cp.Vector{X: input.MoveX, Y: input.MoveY}))
		}
		if input.AttackPressed {
			c.OnInputEvent(locomotion.AttackPressed())
		}
		if input.DashPressed {
			c.OnInputEvent(locomotion.DashPressed())
		}

		input.AttackPressed = false
		input.DashPressed = false
		input.MenuPressed = false
		input.InteractPressed = false
	})
}
