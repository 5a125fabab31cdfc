// Package gui shows a rendered figure in a desktop window.
package gui

import (
	"errors"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Viewer displays a static image until the window is closed or Esc/Q is pressed.
type Viewer struct {
	src   image.Image
	frame *ebiten.Image
}

func NewViewer(img image.Image) *Viewer {
	return &Viewer{src: img}
}

func (v *Viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	// textures can only be created once the game loop runs
	if v.frame == nil {
		v.frame = ebiten.NewImageFromImage(v.src)
	}
	screen.DrawImage(v.frame, nil)
}

func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	b := v.src.Bounds()
	return b.Dx(), b.Dy()
}

// Show opens a window sized to img and blocks until it is closed.
func Show(img image.Image, title string) error {
	b := img.Bounds()
	ebiten.SetWindowSize(b.Dx(), b.Dy())
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(30)

	if err := ebiten.RunGame(NewViewer(img)); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
