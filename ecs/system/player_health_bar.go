package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/densetsu/ecs"
	"github.com/milk9111/densetsu/ecs/component"
	"golang.org/x/image/colornames"
)

const (
	healthBarPaddingX = 12.0
	healthBarPaddingY = 12.0
	healthCellW       = 14.0
	healthCellH       = 8.0
	healthCellSpacing = 3.0
)

// healthCells splits health into one cell per hit. A partly spent cell still
// counts as filled.
func healthCells(current, max, perHit int) (filled, total int) {
	if max <= 0 {
		return 0, 0
	}
	if perHit <= 0 {
		perHit = max
	}
	total = (max + perHit - 1) / perHit
	if current <= 0 {
		return 0, total
	}
	if current > max {
		current = max
	}
	return (current + perHit - 1) / perHit, total
}

// DrawPlayerHealthBar draws the player's remaining hits in the top-right
// corner of the screen.
func DrawPlayerHealthBar(w *ecs.World, screen *ebiten.Image) {
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

	tun := loco.Controller.Tunables()
	filled, total := healthCells(loco.Controller.Snapshot().Health, tun.Health, tun.KnockbackDamage)
	left := float64(screen.Bounds().Dx()) - healthBarPaddingX - float64(total)*(healthCellW+healthCellSpacing) + healthCellSpacing
	for i := 0; i < total; i++ {
		x := float32(left + float64(i)*(healthCellW+healthCellSpacing))
		y := float32(healthBarPaddingY)
		if i < filled {
			vector.FillRect(screen, x, y, healthCellW, healthCellH, colornames.Crimson, false)
		}
		vector.StrokeRect(screen, x, y, healthCellW, healthCellH, 1, colornames.White, false)
	}
}
