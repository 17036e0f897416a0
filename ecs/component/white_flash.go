package component

// WhiteFlash blinks a sprite white while active. Timing is frame-based.
type WhiteFlash struct {
	// Frames remaining for the whole flash effect
	Frames int
	// Interval in frames between toggles of the white-on state
	Interval int
	Timer    int
	On       bool
}

var WhiteFlashComponent = NewComponent[WhiteFlash]()
