package component

// Cooldown is a frame-based hit immunity marker. The cooldown system removes
// it once Frames reaches zero.
type Cooldown struct {
	Frames int
}

var CooldownComponent = NewComponent[Cooldown]()
