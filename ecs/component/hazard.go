package component

// Hazard hurts knockbackable entities that overlap it. Bounds are in world
// units centered on the Transform.
type Hazard struct {
	Width   float64
	Height  float64
	OffsetX float64
	OffsetY float64
	// Force scales the knockback velocity applied on contact.
	Force float64
	// CooldownFrames is how long a victim is immune after a hit.
	CooldownFrames int
}

var HazardComponent = NewComponent[Hazard]()
