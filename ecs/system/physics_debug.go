package system

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/densetsu/ecs"
	"github.com/milk9111/densetsu/ecs/component"
	"github.com/milk9111/densetsu/locomotion"
)

const (
	debugCircleSegments = 24
	debugDotSize        = 0.1
)

// DrawPhysicsDebug outlines every shape in space, plus hazard bounds and the
// player's wall probe.
func DrawPhysicsDebug(space *cp.Space, w *ecs.World, screen *ebiten.Image) {
	if space == nil || w == nil || screen == nil {
		return
	}

	camX, camY, zoom := debugCameraTransform(w)
	drawer := &physicsDebugDrawer{
		screen: screen,
		camX:   camX,
		camY:   camY,
		zoom:   zoom,
	}
	cp.DrawSpace(space, drawer)

	hazardColor := cp.FColor{R: 1, G: 0.1, B: 0.1, A: 0.8}
	ecs.ForEach2(w, component.HazardComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, h *component.Hazard, t *component.Transform) {
		b, ok := hazardBounds(h, t)
		if !ok {
			return
		}
		drawer.drawPolygon([]cp.Vector{
			{X: b.X, Y: b.Y},
			{X: b.X + b.Width, Y: b.Y},
			{X: b.X + b.Width, Y: b.Y + b.Height},
			{X: b.X, Y: b.Y + b.Height},
		}, hazardColor)
	})

	probeColor := cp.FColor{R: 1, G: 1, B: 0.2, A: 0.9}
	ecs.ForEach2(w, component.LocomotionComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, loco *component.Locomotion, t *component.Transform) {
		if loco.Controller == nil {
			return
		}
		move := loco.Controller.Snapshot().MoveInput
		if move.X == 0 && move.Y == 0 {
			return
		}
		origin := cp.Vector{X: t.X, Y: t.Y}
		dist := loco.Controller.Tunables().WallProbeDistance
		drawer.drawLine(origin, origin.Add(move.Normalize().Mult(dist)), probeColor)
	})
}

// DrawLocomotionDebug prints the player controller's state.
func DrawLocomotionDebug(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	player, _, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	loco, ok := ecs.Get(w, player, component.LocomotionComponent.Kind())
	if !ok || loco.Controller == nil {
		return
	}
	ebitenutil.DebugPrintAt(screen, locomotionDebugText(loco.Controller.Snapshot(), loco.Controller.LastStep()), 10, 10)
}

func locomotionDebugText(s locomotion.State, last locomotion.StepReport) string {
	return fmt.Sprintf(
		"Health: %d\nFacing: (%.0f,%.0f)\nMove: (%.2f,%.2f)\nVelocity: %s (%.2f,%.2f)\nAnim: %s %q locked=%v\nDash: active=%v cooldown=%.2f\nKnockback: %.2f\nDead=%v Carrying=%v Menu=%v Interacting=%v",
		s.Health,
		s.Facing.X, s.Facing.Y,
		s.MoveInput.X, s.MoveInput.Y,
		last.Source, last.Velocity.X, last.Velocity.Y,
		last.Rule, last.Clip, s.AnimLocked,
		s.Dash.Active, s.Dash.CooldownRemaining,
		s.Knockback.Remaining,
		s.Flags.Dead, s.Flags.Carrying, s.MenuOpen, s.Flags.Interacting,
	)
}

type physicsDebugDrawer struct {
	screen *ebiten.Image
	camX   float64
	camY   float64
	zoom   float64
}

func (d *physicsDebugDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	if radius <= 0 {
		return
	}
	d.drawCircle(pos, radius, outline)
	end := cp.Vector{X: pos.X + math.Cos(angle)*radius, Y: pos.Y + math.Sin(angle)*radius}
	d.drawLine(pos, end, outline)
}

func (d *physicsDebugDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, fill)
}

func (d *physicsDebugDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, outline)
	if radius > 0 {
		d.drawCircle(a, radius, outline)
		d.drawCircle(b, radius, outline)
	}
}

func (d *physicsDebugDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if count <= 0 {
		return
	}
	d.drawPolygon(verts[:count], outline)
}

func (d *physicsDebugDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	half := debugDotSize / 2
	d.drawLine(cp.Vector{X: pos.X - half, Y: pos.Y}, cp.Vector{X: pos.X + half, Y: pos.Y}, fill)
	d.drawLine(cp.Vector{X: pos.X, Y: pos.Y - half}, cp.Vector{X: pos.X, Y: pos.Y + half}, fill)
}

func (d *physicsDebugDrawer) Flags() uint {
	return cp.DRAW_SHAPES
}

func (d *physicsDebugDrawer) OutlineColor() cp.FColor {
	return cp.FColor{R: 0.2, G: 1, B: 0.2, A: 0.9}
}

func (d *physicsDebugDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	return cp.FColor{R: 0.1, G: 0.6, B: 0.1, A: 0.5}
}

func (d *physicsDebugDrawer) ConstraintColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.5, B: 0.1, A: 0.9}
}

func (d *physicsDebugDrawer) CollisionPointColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.2, B: 0.2, A: 0.9}
}

func (d *physicsDebugDrawer) Data() interface{} {
	return nil
}

func (d *physicsDebugDrawer) drawLine(a, b cp.Vector, c cp.FColor) {
	x1, y1 := d.toScreen(a)
	x2, y2 := d.toScreen(b)
	vector.StrokeLine(d.screen, float32(x1), float32(y1), float32(x2), float32(y2), 1, toNRGBA(c), false)
}

func (d *physicsDebugDrawer) drawPolygon(verts []cp.Vector, c cp.FColor) {
	for i := 0; i < len(verts); i++ {
		d.drawLine(verts[i], verts[(i+1)%len(verts)], c)
	}
}

func (d *physicsDebugDrawer) drawCircle(center cp.Vector, radius float64, c cp.FColor) {
	if radius <= 0 {
		return
	}
	points := make([]cp.Vector, 0, debugCircleSegments)
	for i := 0; i < debugCircleSegments; i++ {
		t := (2 * math.Pi) * (float64(i) / float64(debugCircleSegments))
		points = append(points, cp.Vector{X: center.X + math.Cos(t)*radius, Y: center.Y + math.Sin(t)*radius})
	}
	d.drawPolygon(points, c)
}

func (d *physicsDebugDrawer) toScreen(v cp.Vector) (float64, float64) {
	b := d.screen.Bounds()
	return worldToScreen(v.X, v.Y, d.camX, d.camY, d.zoom, b.Dx(), b.Dy())
}

func toNRGBA(c cp.FColor) color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func debugCameraTransform(w *ecs.World) (float64, float64, float64) {
	camX, camY := 0.0, 0.0
	zoom := 1.0
	camEntity, camComp, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok {
		return camX, camY, zoom
	}
	if camTransform, ok := ecs.Get(w, camEntity, component.TransformComponent.Kind()); ok {
		camX = camTransform.X
		camY = camTransform.Y
	}
	if camComp.Zoom > 0 {
		zoom = camComp.Zoom
	}
	return camX, camY, zoom
}
