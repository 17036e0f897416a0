package component

// Carryable can be picked up by an entity with a CarryAnchor within Radius.
type Carryable struct {
	Radius float64
}

var CarryableComponent = NewComponent[Carryable]()

// Carried follows Holder's anchor at LocalX/LocalY.
type Carried struct {
	Holder uint64
	LocalX float64
	LocalY float64
}

var CarriedComponent = NewComponent[Carried]()

// CarryAnchor is the attachment point for carried objects, relative to the
// holder's Transform.
type CarryAnchor struct {
	OffsetX float64
	OffsetY float64
	Range   float64
	Holding uint64
}

var CarryAnchorComponent = NewComponent[CarryAnchor]()
