package common

import "math"

// Screen layout in pixels. The world is in physics units, PixelsPerUnit
// pixels each.
const (
	BaseWidth     = 640
	BaseHeight    = 360
	PixelsPerUnit = 32.0
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Rect is an axis-aligned box in world units, +Y up.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// RectAround returns the w x h rect centered on (cx, cy).
func RectAround(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, Width: w, Height: h}
}

func (r Rect) Center() (float64, float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Intersects reports overlap with positive area; touching edges do not count.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.Width && o.X < r.X+r.Width &&
		r.Y < o.Y+o.Height && o.Y < r.Y+r.Height
}

// DistanceSq is the squared distance between two points.
func DistanceSq(ax, ay, bx, by float64) float64 {
	dx, dy := bx-ax, by-ay
	return dx*dx + dy*dy
}

func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
