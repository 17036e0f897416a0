package entity

import (
	"fmt"

	"github.com/milk9111/densetsu/ecs"
	"github.com/sirupsen/logrus"
)

const PlayerPrefab = "player.yaml"

func NewPlayer(w *ecs.World, log logrus.FieldLogger) (ecs.Entity, error) {
	return BuildEntity(w, PlayerPrefab, log)
}

func NewPlayerAt(w *ecs.World, x, y float64, log logrus.FieldLogger) (ecs.Entity, error) {
	entity, err := BuildEntity(w, PlayerPrefab, log)
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, entity, x, y); err != nil {
		return 0, fmt.Errorf("player: override transform: %w", err)
	}
	return entity, nil
}
