//go:build ebiten

package ui

import (
	"image/color"

	"majority-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var overlayText = color.RGBA{R: 255, G: 210, B: 90, A: 255}

// Overlay prints generation and population stats over the grid.
type Overlay struct {
	sim     core.Sim
	visible bool
	shade   *ebiten.Image
}

// NewOverlay constructs an overlay for sim; it starts visible.
func NewOverlay(sim core.Sim) *Overlay {
	o := &Overlay{sim: sim, visible: true}
	o.shade = ebiten.NewImage(1, 1)
	o.shade.Fill(color.RGBA{A: 160})
	return o
}

// Update toggles visibility on I.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		o.visible = !o.visible
	}
}

// Draw paints the stats box in the top-left corner.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.visible {
		return
	}
	lines := statsLines(o.sim)
	if len(lines) == 0 {
		return
	}
	face := basicfont.Face7x13
	width := 0
	for _, l := range lines {
		if w := text.BoundString(face, l).Dx(); w > width {
			width = w
		}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(width+panelPadding), float64(len(lines)*infoSpacing+panelPadding/2))
	screen.DrawImage(o.shade, op)

	y := infoSpacing - 4
	for _, l := range lines {
		text.Draw(screen, l, face, panelPadding/2, y, overlayText)
		y += infoSpacing
	}
}
