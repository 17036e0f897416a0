package component

// Knockbackable marks entities that hazards may hit.
type Knockbackable struct{}

var KnockbackableComponent = NewComponent[Knockbackable]()
