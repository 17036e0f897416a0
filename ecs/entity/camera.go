package entity

import (
	"fmt"

	"github.com/milk9111/densetsu/ecs"
	"github.com/milk9111/densetsu/ecs/component"
	"github.com/milk9111/densetsu/prefabs"
)

func NewCameraAt(w *ecs.World, x, y float64, spec prefabs.CameraArenaSpec) (ecs.Entity, error) {
	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: add camera tag: %w", err)
	}

	if err := ecs.Add(w, camera, component.TransformComponent.Kind(), &component.Transform{
		X:      x,
		Y:      y,
		ScaleX: 1,
		ScaleY: 1,
	}); err != nil {
		return 0, fmt.Errorf("camera: add transform: %w", err)
	}

	zoom := spec.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	smooth := spec.Smoothness
	if smooth == 0 {
		smooth = 0.15
	}
	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), &component.Camera{
		Zoom:       zoom,
		Smoothness: smooth,
	}); err != nil {
		return 0, fmt.Errorf("camera: add camera component: %w", err)
	}

	return camera, nil
}
