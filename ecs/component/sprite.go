package component

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

type Sprite struct {
	Image     *ebiten.Image
	Source    image.Rectangle
	UseSource bool
	OriginX   float64
	OriginY   float64
	// Tint multiplies the drawn pixels. Nil draws the image as is.
	Tint color.Color
}

var SpriteComponent = NewComponent[Sprite]()
