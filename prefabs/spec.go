package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// ArenaSpec lays out the playfield. Positions and sizes are world units,
// boxes are centered on their position.
type ArenaSpec struct {
	Name        string          `yaml:"name"`
	Width       float64         `yaml:"width"`
	Height      float64         `yaml:"height"`
	Border      float64         `yaml:"border"`
	Floor       *YAMLColor      `yaml:"floor"`
	PlayerSpawn PointSpec       `yaml:"player_spawn"`
	Walls       []BoxSpec       `yaml:"walls"`
	Hazards     []HazardSpec    `yaml:"hazards"`
	Carryables  []CarryableSpec `yaml:"carryables"`
	Camera      CameraArenaSpec `yaml:"camera"`
}

type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type BoxSpec struct {
	X      float64    `yaml:"x"`
	Y      float64    `yaml:"y"`
	Width  float64    `yaml:"width"`
	Height float64    `yaml:"height"`
	Layer  string     `yaml:"layer"`
	Color  *YAMLColor `yaml:"color"`
}

type HazardSpec struct {
	X              float64    `yaml:"x"`
	Y              float64    `yaml:"y"`
	Width          float64    `yaml:"width"`
	Height         float64    `yaml:"height"`
	Force          float64    `yaml:"force"`
	CooldownFrames int        `yaml:"cooldown_frames"`
	Color          *YAMLColor `yaml:"color"`
}

type CarryableSpec struct {
	X      float64    `yaml:"x"`
	Y      float64    `yaml:"y"`
	Radius float64    `yaml:"radius"`
	Color  *YAMLColor `yaml:"color"`
}

type CameraArenaSpec struct {
	Zoom       float64 `yaml:"zoom"`
	Smoothness float64 `yaml:"smoothness"`
}

func LoadArenaSpec() (*ArenaSpec, error) {
	spec, err := LoadSpec[ArenaSpec]("arena.yaml")
	if err != nil {
		return nil, err
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		return nil, fmt.Errorf("prefabs: arena.yaml: size must be positive, got %gx%g", spec.Width, spec.Height)
	}
	return &spec, nil
}

// ColorOr returns the decoded color, or fallback when c is nil.
func (c *YAMLColor) ColorOr(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
