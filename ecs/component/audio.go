package component

import "github.com/hajimehoshi/ebiten/v2/audio"

// Audio holds one player per named cue. Systems set Play[i] to request a
// one-shot; the audio system consumes the request.
type Audio struct {
	Names   []string
	Players []*audio.Player
	Volume  []float64
	Play    []bool
	Stop    []bool
}

var AudioComponent = NewComponent[Audio]()
