package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"backrooms/engine"
	"backrooms/state"
)

const bannerFontSize = 36

var bannerColors = map[state.Screen]color.Color{
	state.StartScreen: color.White,
	state.Won:         engine.Hex(0x7F5A1B),
	state.Lost:        color.White,
}

// Overlay is the centered banner shown on every screen but Playing.
type Overlay struct {
	face    font.Face
	ui      *ebitenui.UI
	visible bool
}

func NewOverlay() (*Overlay, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &Overlay{
		face: truetype.NewFace(f, &truetype.Options{
			Size:    bannerFontSize,
			DPI:     72,
			Hinting: font.HintingFull,
		}),
	}, nil
}

// Show rebuilds the banner for s. An empty label hides the overlay.
func (o *Overlay) Show(s state.Screen, label string) {
	if label == "" {
		o.visible = false
		return
	}
	c, ok := bannerColors[s]
	if !ok {
		c = color.White
	}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(widget.NewText(
		widget.TextOpts.Text(label, o.face, c),
		widget.TextOpts.Position(widget.TextPositionCenter, widget.TextPositionCenter),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionCenter,
			VerticalPosition:   widget.AnchorLayoutPositionCenter,
		})),
	))

	o.ui = &ebitenui.UI{Container: root}
	o.visible = true
}

func (o *Overlay) Update() {
	if o.visible {
		o.ui.Update()
	}
}

func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.visible {
		o.ui.Draw(screen)
	}
}
