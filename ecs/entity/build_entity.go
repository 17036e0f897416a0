package entity

import (
	"fmt"
	"sort"

	"github.com/milk9111/densetsu/assets"
	"github.com/milk9111/densetsu/ecs"
	"github.com/milk9111/densetsu/ecs/component"
	"github.com/milk9111/densetsu/locomotion"
	"github.com/milk9111/densetsu/physics"
	"github.com/milk9111/densetsu/prefabs"
	"github.com/sirupsen/logrus"
)

type buildContext struct {
	PrefabPath string
	Log        logrus.FieldLogger
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"player_tag":    addPlayerTag,
	"camera_tag":    addCameraTag,
	"wall_tag":      addWallTag,
	"input":         addInput,
	"input_script":  addInputScript,
	"transform":     addTransform,
	"sprite":        addSprite,
	"render_layer":  addRenderLayer,
	"camera":        addCamera,
	"animation":     addAnimation,
	"audio":         addAudio,
	"physics_body":  addPhysicsBody,
	"locomotion":    addLocomotion,
	"carry_anchor":  addCarryAnchor,
	"carryable":     addCarryable,
	"hazard":        addHazard,
	"knockbackable": addKnockbackable,
}

// componentBuildOrder lists components whose builders read others; the rest
// are added afterwards in name order.
var componentBuildOrder = []string{
	"player_tag",
	"camera_tag",
	"wall_tag",
	"transform",
	"input",
	"input_script",
	"sprite",
	"render_layer",
	"camera",
	"animation",
	"audio",
	"physics_body",
	"locomotion",
	"carry_anchor",
}

// BuildEntity creates an entity from a prefab's component map. On error the
// partially built entity is destroyed.
func BuildEntity(w *ecs.World, prefabPath string, log logrus.FieldLogger) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: prefabPath, Log: log.WithField("prefab", prefabPath)}

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		remaining[k] = v
	}

	build := func(name string, raw any) error {
		builder, ok := componentRegistry[name]
		if !ok {
			return fmt.Errorf("build entity: %q: no builder for component %q", prefabPath, name)
		}
		if err := builder(w, e, raw, ctx); err != nil {
			return fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
		return nil
	}

	for _, name := range componentBuildOrder {
		raw, ok := remaining[name]
		if !ok {
			continue
		}
		if err := build(name, raw); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, err
		}
		delete(remaining, name)
	}

	names := make([]string, 0, len(remaining))
	for name := range remaining {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := build(name, remaining[name]); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, err
		}
	}

	ctx.Log.WithField("entity", e).Debug("entity: built")
	return e, nil
}

func SetEntityTransform(w *ecs.World, e ecs.Entity, x, y float64) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || t == nil {
		t = &component.Transform{ScaleX: 1, ScaleY: 1}
	}
	t.X = x
	t.Y = y
	return ecs.Add(w, e, component.TransformComponent.Kind(), t)
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
}

func addCameraTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.CameraTagComponent.Kind(), &component.CameraTag{})
}

func addWallTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.WallTagComponent.Kind(), &component.WallTag{})
}

func addInput(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{})
}

func addKnockbackable(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.KnockbackableComponent.Kind(), &component.Knockbackable{})
}

type inputScriptSpec = prefabs.InputScriptComponentSpec

func addInputScript(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[inputScriptSpec](raw)
	if err != nil {
		return fmt.Errorf("decode input script spec: %w", err)
	}
	if spec.Path == "" {
		return fmt.Errorf("input script: path is required")
	}
	return ecs.Add(w, e, component.InputScriptComponent.Kind(), &component.InputScript{Path: spec.Path})
}

type transformSpec = prefabs.TransformComponentSpec

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[transformSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	if spec.ScaleX == 0 {
		spec.ScaleX = 1
	}
	if spec.ScaleY == 0 {
		spec.ScaleY = 1
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:      spec.X,
		Y:      spec.Y,
		ScaleX: spec.ScaleX,
		ScaleY: spec.ScaleY,
	})
}

type spriteSpec = prefabs.SpriteComponentSpec

func addSprite(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[spriteSpec](raw)
	if err != nil {
		return fmt.Errorf("decode sprite spec: %w", err)
	}

	var sprite component.Sprite
	if spec.Image != "" {
		img, err := assets.LoadImage(spec.Image)
		if err != nil {
			return fmt.Errorf("load image %q: %w", spec.Image, err)
		}
		sprite.Image = img
	}

	sprite.UseSource = spec.UseSource
	sprite.OriginX = spec.OriginX
	sprite.OriginY = spec.OriginY

	return ecs.Add(w, e, component.SpriteComponent.Kind(), &sprite)
}

type renderLayerSpec = prefabs.RenderLayerComponentSpec

func addRenderLayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[renderLayerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode render layer spec: %w", err)
	}
	return ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.Index})
}

type cameraSpec = prefabs.CameraComponentSpec

func addCamera(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[cameraSpec](raw)
	if err != nil {
		return fmt.Errorf("decode camera spec: %w", err)
	}
	if spec.Zoom <= 0 {
		spec.Zoom = 1
	}
	if spec.Smoothness == 0 {
		spec.Smoothness = 0.15
	}
	return ecs.Add(w, e, component.CameraComponent.Kind(), &component.Camera{
		Zoom:       spec.Zoom,
		Smoothness: spec.Smoothness,
	})
}

type animationSpec = prefabs.AnimationComponentSpec

func addAnimation(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[animationSpec](raw)
	if err != nil {
		return fmt.Errorf("decode animation spec: %w", err)
	}
	sheet, err := assets.LoadImage(spec.Sheet)
	if err != nil {
		return fmt.Errorf("load animation sheet %q: %w", spec.Sheet, err)
	}

	defs := make(map[string]component.AnimationDef, len(spec.Defs))
	for name, def := range spec.Defs {
		if def.FrameCount <= 0 {
			return fmt.Errorf("animation %q: frame_count must be positive", name)
		}
		defs[name] = component.AnimationDef{
			Name:        name,
			Row:         def.Row,
			ColStart:    def.ColStart,
			FrameCount:  def.FrameCount,
			FrameW:      def.FrameW,
			FrameH:      def.FrameH,
			FPS:         def.FPS,
			Loop:        def.Loop,
			Directional: def.Directional,
			UnlockOnEnd: def.UnlockOnEnd,
		}
	}

	playing := spec.Playing
	if m, ok := raw.(map[string]any); ok {
		if _, has := m["playing"]; !has {
			playing = true
		}
	}

	return ecs.Add(w, e, component.AnimationComponent.Kind(), &component.Animation{
		Sheet:   sheet,
		Defs:    defs,
		Current: spec.Current,
		Playing: playing,
		Params:  map[string]float64{},
	})
}

type audioSpec = prefabs.AudioComponentSpec

func addAudio(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[audioSpec](raw)
	if err != nil {
		return fmt.Errorf("decode audio spec: %w", err)
	}
	if len(spec.Clips) == 0 {
		return nil
	}
	comp, err := buildAudioComponent(spec.Clips)
	if err != nil {
		return fmt.Errorf("build audio component from spec: %w", err)
	}
	return ecs.Add(w, e, component.AudioComponent.Kind(), comp)
}

type physicsBodySpec = prefabs.PhysicsBodyComponentSpec

func addPhysicsBody(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[physicsBodySpec](raw)
	if err != nil {
		return fmt.Errorf("decode physics body spec: %w", err)
	}

	layer := physics.LayerObject
	if spec.Layer != "" {
		layer, err = physics.LayerByName(spec.Layer)
		if err != nil {
			return err
		}
	}

	if spec.Static {
		if spec.Width <= 0 || spec.Height <= 0 {
			return fmt.Errorf("static body needs width and height, got %gx%g", spec.Width, spec.Height)
		}
	} else {
		if spec.Radius <= 0 {
			spec.Radius = 0.3
		}
		if spec.Mass <= 0 {
			spec.Mass = 1
		}
	}

	return ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:  spec.Width,
		Height: spec.Height,
		Radius: spec.Radius,
		Mass:   spec.Mass,
		Static: spec.Static,
		Layer:  layer,
	})
}

func addLocomotion(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	tunables, err := prefabs.DecodeLocomotionSpec(raw)
	if err != nil {
		return err
	}
	log := ctx.Log.WithField("entity", e)
	return ecs.Add(w, e, component.LocomotionComponent.Kind(), &component.Locomotion{
		Controller: locomotion.New(tunables, log),
	})
}

type carryAnchorSpec = prefabs.CarryAnchorComponentSpec

func addCarryAnchor(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[carryAnchorSpec](raw)
	if err != nil {
		return fmt.Errorf("decode carry anchor spec: %w", err)
	}
	if spec.Range <= 0 {
		spec.Range = 0.7
	}
	return ecs.Add(w, e, component.CarryAnchorComponent.Kind(), &component.CarryAnchor{
		OffsetX: spec.OffsetX,
		OffsetY: spec.OffsetY,
		Range:   spec.Range,
	})
}

type carryableSpec = prefabs.CarryableSpec

func addCarryable(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[carryableSpec](raw)
	if err != nil {
		return fmt.Errorf("decode carryable spec: %w", err)
	}
	if spec.Radius <= 0 {
		spec.Radius = 0.25
	}
	return ecs.Add(w, e, component.CarryableComponent.Kind(), &component.Carryable{Radius: spec.Radius})
}

type hazardSpec = prefabs.HazardSpec

func addHazard(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[hazardSpec](raw)
	if err != nil {
		return fmt.Errorf("decode hazard spec: %w", err)
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		return fmt.Errorf("hazard needs width and height, got %gx%g", spec.Width, spec.Height)
	}
	if spec.CooldownFrames <= 0 {
		spec.CooldownFrames = 30
	}
	return ecs.Add(w, e, component.HazardComponent.Kind(), &component.Hazard{
		Width:          spec.Width,
		Height:         spec.Height,
		Force:          spec.Force,
		CooldownFrames: spec.CooldownFrames,
	})
}
