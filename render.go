package main

import (
	"fmt"
	"image/color"

	"github.com/CatPunch007/LittleWitch/common"
	"github.com/CatPunch007/LittleWitch/ecs"
	"github.com/CatPunch007/LittleWitch/ecs/component"
	"github.com/CatPunch007/LittleWitch/ecs/entity"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	backgroundColor = color.NRGBA{R: 0x16, G: 0x16, B: 0x22, A: 0xff}
	facingColor     = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	probeHitColor   = color.NRGBA{R: 0x40, G: 0xff, B: 0x40, A: 0xff}
	probeMissColor  = color.NRGBA{R: 0xff, G: 0x40, B: 0x40, A: 0xff}
)

// worldToScreen maps Y-up world units to Y-down screen pixels.
func worldToScreen(x, y float64) (float32, float32) {
	return float32(x * common.PixelsPerUnit), float32(common.BaseHeight - y*common.PixelsPerUnit)
}

func drawWorld(w *ecs.World, screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	ecs.ForEach2(w, component.SpriteComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, sprite *component.Sprite, t *component.Transform) {
		left, top := worldToScreen(t.X-sprite.Width/2, t.Y+sprite.Height/2)
		wdt := float32(sprite.Width * common.PixelsPerUnit)
		hgt := float32(sprite.Height * common.PixelsPerUnit)
		vector.DrawFilledRect(screen, left, top, wdt, hgt, sprite.Color, false)

		if !ecs.Has(w, e, component.PlayerTagComponent.Kind()) {
			return
		}
		// Eye on the facing side.
		eye := float32(4)
		x := left + wdt - 2*eye
		if sprite.FacingLeft {
			x = left + eye
		}
		vector.DrawFilledRect(screen, x, top+hgt/4, eye, eye, facingColor, false)
	})
}

func drawGroundProbes(w *ecs.World, screen *ebiten.Image) {
	ecs.ForEach(w, component.GroundProbeComponent.Kind(), func(e ecs.Entity, probe *component.GroundProbe) {
		if probe.Length <= 0 {
			return
		}
		clr := probeMissColor
		if probe.Grounded {
			clr = probeHitColor
		}
		x0, y0 := worldToScreen(probe.OriginX, probe.OriginY)
		x1, y1 := worldToScreen(probe.OriginX, probe.OriginY-probe.Length)
		vector.StrokeLine(screen, x0, y0, x1, y1, 2, clr, false)
	})
}

func drawHUD(w *ecs.World, screen *ebiten.Image, mode string) {
	text := fmt.Sprintf("TPS: %.1f  FPS: %.1f  mode: %s", ebiten.ActualTPS(), ebiten.ActualFPS(), mode)

	if player, ok := entity.FindPlayer(w); ok {
		if m, ok := ecs.Get(w, player, component.MoverComponent.Kind()); ok {
			rep := m.Last
			text += fmt.Sprintf("\nvel: (%.2f, %.2f)  grounded: %v  facing: %s", rep.Velocity.X, rep.Velocity.Y, rep.Grounded, rep.Facing)
			if m.Config.DashEnabled {
				text += fmt.Sprintf("\ndash: %s", rep.Phase)
			}
		}
	}

	ebitenutil.DebugPrintAt(screen, text, 10, 10)
}
