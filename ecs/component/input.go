package component

// Input is the per-step device state for an entity, +Y being screen-up.
// The Pressed fields are edges and are true for a single step.
type Input struct {
	MoveX           float64
	MoveY           float64
	AttackPressed   bool
	DashPressed     bool
	MenuPressed     bool
	InteractPressed bool
	// Interacting holds the interaction gate, e.g. while a dialog is open.
	Interacting bool
}

var InputComponent = NewComponent[Input]()
