package system

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/densetsu/common"
	"github.com/milk9111/densetsu/ecs"
	"github.com/milk9111/densetsu/ecs/component"
)

// RenderSystem draws sprites in world units through the camera. World +Y is
// screen-up.
type RenderSystem struct {
	camEntity ecs.Entity
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

type drawItem struct {
	e     ecs.Entity
	layer int
	depth float64
}

// worldToScreen maps a world point to screen pixels for a camera centered on
// (camX, camY).
func worldToScreen(x, y, camX, camY, zoom float64, sw, sh int) (float64, float64) {
	ppu := common.PixelsPerUnit * zoom
	return (x-camX)*ppu + float64(sw)/2, -(y-camY)*ppu + float64(sh)/2
}

// drawOrder sorts by layer, then back to front: higher Y is farther away.
// Carried entities sort just in front of their holder.
func drawOrder(w *ecs.World, entities []ecs.Entity) []drawItem {
	items := make([]drawItem, 0, len(entities))
	for _, e := range entities {
		it := drawItem{e: e}
		if layer, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
			it.layer = layer.Index
		}
		if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			it.depth = t.Y
		}
		if c, ok := ecs.Get(w, e, component.CarriedComponent.Kind()); ok {
			if ht, ok := ecs.Get(w, ecs.Entity(c.Holder), component.TransformComponent.Kind()); ok {
				it.depth = ht.Y - 1e-3
			}
		}
		items = append(items, it)
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].layer != items[j].layer {
			return items[i].layer < items[j].layer
		}
		if items[i].depth != items[j].depth {
			return items[i].depth > items[j].depth
		}
		return items[i].e < items[j].e
	})
	return items
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	if !ecs.IsAlive(w, r.camEntity) {
		r.camEntity, _, _ = ecs.First(w, component.CameraComponent.Kind())
	}

	camX, camY := 0.0, 0.0
	zoom := 1.0
	if camTransform, ok := ecs.Get(w, r.camEntity, component.TransformComponent.Kind()); ok {
		camX = camTransform.X
		camY = camTransform.Y
	}
	if camComp, ok := ecs.Get(w, r.camEntity, component.CameraComponent.Kind()); ok && camComp.Zoom > 0 {
		zoom = camComp.Zoom
	}

	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	entities := ecs.Query(w, component.TransformComponent.Kind().ID(), component.SpriteComponent.Kind().ID())
	for _, it := range drawOrder(w, entities) {
		t, _ := ecs.Get(w, it.e, component.TransformComponent.Kind())
		s, ok := ecs.Get(w, it.e, component.SpriteComponent.Kind())
		if !ok || s.Image == nil {
			continue
		}

		img := s.Image
		if s.UseSource {
			if sub, ok := s.Image.SubImage(s.Source).(*ebiten.Image); ok {
				img = sub
			}
		}

		sx, sy := t.ScaleX, t.ScaleY
		if sx == 0 {
			sx = 1
		}
		if sy == 0 {
			sy = 1
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-s.OriginX, -s.OriginY)
		op.GeoM.Scale(sx*zoom, sy*zoom)
		px, py := worldToScreen(t.X, t.Y, camX, camY, zoom, sw, sh)
		op.GeoM.Translate(px, py)

		if s.Tint != nil {
			op.ColorScale.ScaleWithColor(s.Tint)
		}
		if wf, ok := ecs.Get(w, it.e, component.WhiteFlashComponent.Kind()); ok && wf.On {
			// Push toward white regardless of tint.
			op.ColorScale.Reset()
			op.ColorScale.Scale(4, 4, 4, 1)
		}

		screen.DrawImage(img, op)
	}
}

// DrawBackdrop clears the screen behind the arena.
func DrawBackdrop(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0x14, G: 0x16, B: 0x1d, A: 0xff})
}
