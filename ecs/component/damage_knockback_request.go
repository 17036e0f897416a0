package component

// DamageKnockback is a transient request for the DamageKnockback system to
// knock the entity away from the source point. The system removes it once
// handled.
type DamageKnockback struct {
	SourceX      float64
	SourceY      float64
	Force        float64
	SourceEntity uint64
}

var DamageKnockbackRequestComponent = NewComponent[DamageKnockback]()
