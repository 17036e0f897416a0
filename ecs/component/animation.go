package component

import (
	"github.com/hajimehoshi/ebiten/v2"
)

type AnimationDef struct {
	Name       string
	Row        int
	ColStart   int // start column (frame 0)
	FrameCount int
	FrameW     int
	FrameH     int
	FPS        float64
	Loop       bool
	// Directional clips use four consecutive rows starting at Row, one per
	// facing quadrant.
	Directional bool
	// UnlockOnEnd releases the locomotion animation lock when the clip
	// finishes.
	UnlockOnEnd bool
}

type Animation struct {
	Sheet      *ebiten.Image
	Defs       map[string]AnimationDef
	Current    string
	Frame      int
	FrameTimer int
	Playing    bool
	// Params holds named float parameters such as the facing direction.
	Params map[string]float64
}

var AnimationComponent = NewComponent[Animation]()
