package main

import (
	"fmt"
	"image/color"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/text"
	"github.com/pkg/errors"
	"golang.org/x/image/font"

	"github.com/jtestard/go-pong/pong"
)

const (
	fontSize      = 12
	smallFontSize = fontSize / 2
	dpi           = 72
)

// screenRenderer draws court entities on an ebiten image. Entities are
// positioned by their center; ebiten wants the top-left corner.
type screenRenderer struct {
	dst *ebiten.Image
	clr color.Color
}

func (r *screenRenderer) SetColor(clr color.Color) {
	r.clr = clr
}

func (r *screenRenderer) FillRect(cx, cy, width, height float64) {
	ebitenutil.DrawRect(r.dst, cx-width/2, cy-height/2, width, height, r.clr)
}

type hud struct {
	arcade      font.Face
	smallArcade font.Face
}

func newHUD() (*hud, error) {
	tt, err := truetype.Parse(fonts.ArcadeN_ttf)
	if err != nil {
		return nil, errors.Wrap(err, "parse arcade font")
	}
	face := func(size float64) font.Face {
		return truetype.NewFace(tt, &truetype.Options{
			Size:    size,
			DPI:     dpi,
			Hinting: font.HintingFull,
		})
	}
	return &hud{arcade: face(fontSize), smallArcade: face(smallFontSize)}, nil
}

// center returns the center position on screen
func center(screen *ebiten.Image) pong.Position {
	w, h := screen.Size()
	return pong.Position{X: float64(w / 2), Y: float64(h / 2)}
}

func (h *hud) drawCaption(state pong.GameState, screen *ebiten.Image) {
	var lines []string
	switch state {
	case pong.StartState:
		lines = []string{"PONG", "", "UP/DOWN  W/S", "SPACE TO START"}
	case pong.PauseState:
		lines = []string{"PAUSED", "", "P TO RESUME  R TO RESET"}
	default:
		return
	}

	c := center(screen)
	y := int(c.Y) - len(lines)*fontSize
	for _, l := range lines {
		x := int(c.X) - len(l)*fontSize/2
		text.Draw(screen, l, h.arcade, x, y, pong.ObjColor)
		y += fontSize * 2
	}
}

func (h *hud) drawRally(rally int, screen *ebiten.Image) {
	msg := fmt.Sprintf("RALLY %d", rally)
	w, _ := screen.Size()
	text.Draw(screen, msg, h.smallArcade, w/2-len(msg)*smallFontSize/2, 3*fontSize, pong.ObjColor)
}
