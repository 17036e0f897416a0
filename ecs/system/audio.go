package system

import (
	"github.com/milk9111/densetsu/ecs"
	"github.com/milk9111/densetsu/ecs/component"
)

// AudioSystem starts queued one-shots. A cue already playing restarts.
type AudioSystem struct {
	muted bool
}

func NewAudioSystem() *AudioSystem {
	return &AudioSystem{}
}

// SetMuted drops queued cues while muted.
func (a *AudioSystem) SetMuted(muted bool) { a.muted = muted }

func (a *AudioSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.AudioComponent.Kind(), func(_ ecs.Entity, audioComp *component.Audio) {
		count := min(len(audioComp.Play), len(audioComp.Players), len(audioComp.Volume))

		for i := 0; i < count; i++ {
			if !audioComp.Play[i] {
				continue
			}
			audioComp.Play[i] = false

			player := audioComp.Players[i]
			if player == nil || a.muted {
				continue
			}
			player.SetVolume(audioComp.Volume[i])
			if err := player.Rewind(); err != nil {
				continue
			}
			player.Play()
		}

		for i := 0; i < min(count, len(audioComp.Stop)); i++ {
			if !audioComp.Stop[i] {
				continue
			}
			audioComp.Stop[i] = false

			player := audioComp.Players[i]
			if player != nil && player.IsPlaying() {
				player.Pause()
			}
		}
	})
}
