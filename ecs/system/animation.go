package system

import (
	"image"

	"github.com/milk9111/densetsu/ecs"
	"github.com/milk9111/densetsu/ecs/component"
	"github.com/milk9111/densetsu/locomotion"
)

type AnimationSystem struct {
	tps int
}

func NewAnimationSystem(tps int) *AnimationSystem {
	if tps <= 0 {
		tps = 60
	}
	return &AnimationSystem{tps: tps}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	ecs.ForEach2(w, component.AnimationComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, anim *component.Animation, sprite *component.Sprite) {
		if anim.Sheet == nil {
			return
		}
		def, ok := anim.Defs[anim.Current]
		if !ok || def.FrameCount <= 0 {
			return
		}

		if anim.Playing && advanceFrame(anim, def, a.tps) && def.UnlockOnEnd {
			if loco, ok := ecs.Get(w, e, component.LocomotionComponent.Kind()); ok && loco.Controller != nil {
				loco.Controller.UnlockAnim()
			}
		}

		sprite.Source = frameRect(def, anim.Frame, facingQuadrant(anim.Params))
		sprite.UseSource = true
		sprite.Image = anim.Sheet
	})
}

// advanceFrame moves anim one tick forward and reports whether a non-looping
// clip just reached its last frame.
func advanceFrame(anim *component.Animation, def component.AnimationDef, tps int) bool {
	ticksPerFrame := 1
	if def.FPS > 0 {
		ticksPerFrame = int(float64(tps) / def.FPS)
	}
	if ticksPerFrame < 1 {
		ticksPerFrame = 1
	}

	anim.FrameTimer++
	if anim.FrameTimer < ticksPerFrame {
		return false
	}
	anim.FrameTimer = 0
	anim.Frame++
	if anim.Frame < def.FrameCount {
		return false
	}
	if def.Loop {
		anim.Frame = 0
		return false
	}
	anim.Frame = def.FrameCount - 1
	anim.Playing = false
	return true
}

// facingQuadrant maps the facing parameters to a sheet row offset:
// 0 (+x,+y), 1 (-x,+y), 2 (-x,-y), 3 (+x,-y).
func facingQuadrant(params map[string]float64) int {
	fx, fy := 1.0, 1.0
	if v, ok := params[locomotion.ParamFaceX]; ok {
		fx = v
	}
	if v, ok := params[locomotion.ParamFaceY]; ok {
		fy = v
	}
	switch {
	case fx >= 0 && fy >= 0:
		return 0
	case fx < 0 && fy >= 0:
		return 1
	case fx < 0:
		return 2
	default:
		return 3
	}
}

func frameRect(def component.AnimationDef, frame, quadrant int) image.Rectangle {
	row := def.Row
	if def.Directional {
		row += quadrant
	}
	x := (def.ColStart + frame) * def.FrameW
	y := row * def.FrameH
	return image.Rect(x, y, x+def.FrameW, y+def.FrameH)
}
