package system

import (
	"github.com/milk9111/densetsu/common"
	"github.com/milk9111/densetsu/ecs"
	"github.com/milk9111/densetsu/ecs/component"
)

// CameraSystem eases the camera toward the player.
type CameraSystem struct {
	camEntity    ecs.Entity
	targetEntity ecs.Entity
}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	if !ecs.IsAlive(w, cs.camEntity) {
		cs.camEntity, _, _ = ecs.First(w, component.CameraComponent.Kind())
	}
	if !ecs.IsAlive(w, cs.targetEntity) {
		cs.targetEntity, _, _ = ecs.First(w, component.PlayerTagComponent.Kind())
	}

	cam, ok := ecs.Get(w, cs.camEntity, component.CameraComponent.Kind())
	if !ok {
		return
	}
	camTransform, ok := ecs.Get(w, cs.camEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}
	target, ok := ecs.Get(w, cs.targetEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}

	k := cam.Smoothness
	if k <= 0 || k > 1 {
		k = 1
	}
	camTransform.X = common.Lerp(camTransform.X, target.X, k)
	camTransform.Y = common.Lerp(camTransform.Y, target.Y, k)
}
