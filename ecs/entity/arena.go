package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/densetsu/assets"
	"github.com/milk9111/densetsu/common"
	"github.com/milk9111/densetsu/ecs"
	"github.com/milk9111/densetsu/ecs/component"
	"github.com/milk9111/densetsu/logger"
	"github.com/milk9111/densetsu/physics"
	"github.com/milk9111/densetsu/prefabs"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/colornames"
)

// Draw order of arena pieces. The player prefab sits on layerActors.
const (
	layerFloor = iota
	layerHazard
	layerActors
)

type Arena struct {
	Player ecs.Entity
	Camera ecs.Entity
}

// BuildArena populates w from spec: border walls, interior walls, hazards,
// carryables, the player at its spawn and a camera on the player.
func BuildArena(w *ecs.World, spec *prefabs.ArenaSpec, log logrus.FieldLogger) (Arena, error) {
	if w == nil || spec == nil {
		return Arena{}, fmt.Errorf("arena: world and spec are required")
	}
	log = logger.Or(log)

	if _, err := newSolid(w, 0, 0, spec.Width, spec.Height, layerFloor, spec.Floor.ColorOr(colornames.Darkslategray)); err != nil {
		return Arena{}, fmt.Errorf("arena: floor: %w", err)
	}

	for i, b := range borderWalls(spec) {
		if err := newWall(w, b, physics.LayerSystemWall); err != nil {
			return Arena{}, fmt.Errorf("arena: border %d: %w", i, err)
		}
	}

	for i, b := range spec.Walls {
		layer := physics.LayerWall
		if b.Layer != "" {
			var err error
			if layer, err = physics.LayerByName(b.Layer); err != nil {
				return Arena{}, fmt.Errorf("arena: wall %d: %w", i, err)
			}
		}
		if err := newWall(w, b, layer); err != nil {
			return Arena{}, fmt.Errorf("arena: wall %d: %w", i, err)
		}
	}

	for i, h := range spec.Hazards {
		if err := newHazard(w, h); err != nil {
			return Arena{}, fmt.Errorf("arena: hazard %d: %w", i, err)
		}
	}

	for i, c := range spec.Carryables {
		if err := newCarryable(w, c); err != nil {
			return Arena{}, fmt.Errorf("arena: carryable %d: %w", i, err)
		}
	}

	player, err := NewPlayerAt(w, spec.PlayerSpawn.X, spec.PlayerSpawn.Y, log)
	if err != nil {
		return Arena{}, fmt.Errorf("arena: player: %w", err)
	}

	camera, err := NewCameraAt(w, spec.PlayerSpawn.X, spec.PlayerSpawn.Y, spec.Camera)
	if err != nil {
		return Arena{}, fmt.Errorf("arena: %w", err)
	}

	log.WithFields(logrus.Fields{
		"walls":      len(spec.Walls),
		"hazards":    len(spec.Hazards),
		"carryables": len(spec.Carryables),
	}).Info("arena: built")

	return Arena{Player: player, Camera: camera}, nil
}

// borderWalls encloses the arena in four system walls of the arena's border
// thickness, placed just outside the playfield.
func borderWalls(spec *prefabs.ArenaSpec) []prefabs.BoxSpec {
	t := spec.Border
	if t <= 0 {
		t = 0.5
	}
	hw, hh := spec.Width/2, spec.Height/2
	edge := &prefabs.YAMLColor{Color: colornames.Dimgray}
	return []prefabs.BoxSpec{
		{X: 0, Y: hh + t/2, Width: spec.Width + 2*t, Height: t, Color: edge},
		{X: 0, Y: -hh - t/2, Width: spec.Width + 2*t, Height: t, Color: edge},
		{X: -hw - t/2, Y: 0, Width: t, Height: spec.Height, Color: edge},
		{X: hw + t/2, Y: 0, Width: t, Height: spec.Height, Color: edge},
	}
}

func newSolid(w *ecs.World, x, y, width, height float64, layer int, c color.Color) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	pw, ph := int(width*common.PixelsPerUnit), int(height*common.PixelsPerUnit)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{
		Image:   assets.Solid(pw, ph, c),
		OriginX: float64(pw) / 2,
		OriginY: float64(ph) / 2,
	}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: layer}); err != nil {
		return 0, err
	}
	return e, nil
}

func newWall(w *ecs.World, b prefabs.BoxSpec, layer uint) error {
	if b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("size must be positive, got %gx%g", b.Width, b.Height)
	}
	e, err := newSolid(w, b.X, b.Y, b.Width, b.Height, layerActors, b.Color.ColorOr(colornames.Gray))
	if err != nil {
		return err
	}
	if err := ecs.Add(w, e, component.WallTagComponent.Kind(), &component.WallTag{}); err != nil {
		return err
	}
	return ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:  b.Width,
		Height: b.Height,
		Static: true,
		Layer:  layer,
	})
}

func newHazard(w *ecs.World, h prefabs.HazardSpec) error {
	if h.Width <= 0 || h.Height <= 0 {
		return fmt.Errorf("size must be positive, got %gx%g", h.Width, h.Height)
	}
	e, err := newSolid(w, h.X, h.Y, h.Width, h.Height, layerHazard, h.Color.ColorOr(colornames.Darkred))
	if err != nil {
		return err
	}
	cooldown := h.CooldownFrames
	if cooldown <= 0 {
		cooldown = 30
	}
	return ecs.Add(w, e, component.HazardComponent.Kind(), &component.Hazard{
		Width:          h.Width,
		Height:         h.Height,
		Force:          h.Force,
		CooldownFrames: cooldown,
	})
}

func newCarryable(w *ecs.World, c prefabs.CarryableSpec) error {
	r := c.Radius
	if r <= 0 {
		r = 0.25
	}
	e, err := newSolid(w, c.X, c.Y, 2*r, 2*r, layerActors, c.Color.ColorOr(colornames.Gold))
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.CarryableComponent.Kind(), &component.Carryable{Radius: r})
}
