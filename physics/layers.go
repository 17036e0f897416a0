package physics

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Collision categories. Each shape belongs to exactly one.
const (
	LayerPlayer uint = 1 << iota
	LayerSystemWall
	LayerWall
	LayerObject
	LayerHazard
	LayerCarryable
)

var ErrUnknownLayer = errors.New("physics: unknown layer")

var layerNames = map[string]uint{
	"player":      LayerPlayer,
	"system_wall": LayerSystemWall,
	"wall":        LayerWall,
	"object":      LayerObject,
	"hazard":      LayerHazard,
	"carryable":   LayerCarryable,
}

// WallProbeMask is what the movement wall probe collides with by default.
const WallProbeMask = LayerSystemWall | LayerWall | LayerObject

// LayerByName resolves a single layer name, case-insensitively.
func LayerByName(name string) (uint, error) {
	l, ok := layerNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: %q (known: %s)", ErrUnknownLayer, name, strings.Join(LayerNames(), ", "))
	}
	return l, nil
}

// LayerMask ORs the named layers together. No names yields zero.
func LayerMask(names ...string) (uint, error) {
	var mask uint
	for _, n := range names {
		l, err := LayerByName(n)
		if err != nil {
			return 0, err
		}
		mask |= l
	}
	return mask, nil
}

func LayerNames() []string {
	out := make([]string, 0, len(layerNames))
	for n := range layerNames {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
