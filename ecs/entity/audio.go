package entity

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/densetsu/assets"
	"github.com/milk9111/densetsu/ecs/component"
	"github.com/milk9111/densetsu/prefabs"
)

func buildAudioComponent(clips []prefabs.AudioClipSpec) (*component.Audio, error) {
	n := len(clips)
	names := make([]string, 0, n)
	players := make([]*audio.Player, 0, n)
	volume := make([]float64, 0, n)

	for i, clip := range clips {
		if clip.Name == "" {
			return nil, fmt.Errorf("audio clip %d: name is required", i)
		}
		player, err := assets.LoadAudioPlayer(clip.File)
		if err != nil {
			return nil, fmt.Errorf("audio clip %d (%q): %w", i, clip.Name, err)
		}
		if clip.Volume <= 0 {
			clip.Volume = 1
		}
		names = append(names, clip.Name)
		players = append(players, player)
		volume = append(volume, clip.Volume)
	}

	return &component.Audio{
		Names:   names,
		Players: players,
		Volume:  volume,
		Play:    make([]bool, n),
		Stop:    make([]bool, n),
	}, nil
}
