package component

import "image/color"

// Sprite is a flat colored rectangle. FacingLeft mirrors it horizontally.
type Sprite struct {
	Width      float64
	Height     float64
	Color      color.NRGBA
	FacingLeft bool
}

var SpriteComponent = NewComponent[Sprite]("sprite")
