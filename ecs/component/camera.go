package component

type Camera struct {
	Zoom float64
	// Smoothness is the fraction of the remaining distance covered per step.
	// Zero snaps to the target.
	Smoothness float64
}

var CameraComponent = NewComponent[Camera]()
