package prefabs

import (
	"fmt"

	"github.com/milk9111/densetsu/locomotion"
	"github.com/milk9111/densetsu/physics"
	"gopkg.in/yaml.v3"
)

type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	return decodeOver(raw, zero)
}

// decodeOver decodes raw on top of base, so keys absent from raw keep the
// values in base.
func decodeOver[T any](raw any, base T) (T, error) {
	if raw == nil {
		return base, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return base, err
	}
	out := base
	if err := yaml.Unmarshal(b, &out); err != nil {
		return base, err
	}
	return out, nil
}

type TransformComponentSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	ScaleX float64 `yaml:"scale_x"`
	ScaleY float64 `yaml:"scale_y"`
}

type SpriteComponentSpec struct {
	Image     string  `yaml:"image"`
	UseSource bool    `yaml:"use_source"`
	OriginX   float64 `yaml:"origin_x"`
	OriginY   float64 `yaml:"origin_y"`
}

type RenderLayerComponentSpec struct {
	Index int `yaml:"index"`
}

type CameraComponentSpec struct {
	Zoom       float64 `yaml:"zoom"`
	Smoothness float64 `yaml:"smoothness"`
}

type AnimationDefComponentSpec struct {
	Row         int     `yaml:"row"`
	ColStart    int     `yaml:"col_start"`
	FrameCount  int     `yaml:"frame_count"`
	FrameW      int     `yaml:"frame_w"`
	FrameH      int     `yaml:"frame_h"`
	FPS         float64 `yaml:"fps"`
	Loop        bool    `yaml:"loop"`
	Directional bool    `yaml:"directional"`
	UnlockOnEnd bool    `yaml:"unlock_on_end"`
}

type AnimationComponentSpec struct {
	Sheet   string                               `yaml:"sheet"`
	Defs    map[string]AnimationDefComponentSpec `yaml:"defs"`
	Current string                               `yaml:"current"`
	Playing bool                                 `yaml:"playing"`
}

type AudioClipSpec struct {
	Name   string  `yaml:"name"`
	File   string  `yaml:"file"`
	Volume float64 `yaml:"volume"`
}

type AudioComponentSpec struct {
	Clips []AudioClipSpec `yaml:"clips"`
}

type PhysicsBodyComponentSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Radius float64 `yaml:"radius"`
	Mass   float64 `yaml:"mass"`
	Static bool    `yaml:"static"`
	Layer  string  `yaml:"layer"`
}

type CarryAnchorComponentSpec struct {
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
	Range   float64 `yaml:"range"`
}

type InputScriptComponentSpec struct {
	Path string `yaml:"path"`
}

// LocomotionComponentSpec is the controller's tunables plus the names of the
// layers its wall probe tests against.
type LocomotionComponentSpec struct {
	locomotion.Tunables `yaml:",inline"`
	WallLayers          []string `yaml:"wall_layers"`
}

// DecodeLocomotionSpec decodes raw over the default tunables, resolves the
// wall mask and validates the result.
func DecodeLocomotionSpec(raw any) (locomotion.Tunables, error) {
	spec, err := decodeOver(raw, LocomotionComponentSpec{Tunables: locomotion.DefaultTunables()})
	if err != nil {
		return locomotion.Tunables{}, err
	}

	t := spec.Tunables
	if len(spec.WallLayers) == 0 {
		t.WallMask = physics.WallProbeMask
	} else {
		mask, err := physics.LayerMask(spec.WallLayers...)
		if err != nil {
			return locomotion.Tunables{}, err
		}
		t.WallMask = mask
	}

	if err := t.Validate(); err != nil {
		return locomotion.Tunables{}, err
	}
	return t, nil
}

// LoadTunables reads the locomotion component of an entity spec.
func LoadTunables(filename string) (locomotion.Tunables, error) {
	spec, err := LoadEntityBuildSpec(filename)
	if err != nil {
		return locomotion.Tunables{}, err
	}
	raw, ok := spec.Components["locomotion"]
	if !ok {
		return locomotion.Tunables{}, fmt.Errorf("prefabs: %s: no locomotion component", filename)
	}
	t, err := DecodeLocomotionSpec(raw)
	if err != nil {
		return locomotion.Tunables{}, fmt.Errorf("prefabs: %s: %w", filename, err)
	}
	return t, nil
}
