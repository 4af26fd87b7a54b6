//go:build cgo

package host

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"time"

	"github.com/gogpu/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gogpu/panzoom"
	"github.com/gogpu/panzoom/minimap"
	"github.com/gogpu/panzoom/render"
)

// RunWindow opens a desktop window showing the editor and blocks until it
// closes. proj may be nil.
func RunWindow(d *Driver, proj *minimap.Projector, r *render.Renderer, cfg panzoom.Config) error {
	if d == nil || r == nil {
		return errors.New("run window: nil driver or renderer")
	}
	g := &windowGame{d: d, proj: proj, r: r}
	ebiten.SetWindowTitle("panzoom " + panzoom.Version)
	ebiten.SetWindowSize(int(cfg.ViewportWidth), int(cfg.ViewportHeight))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}

type windowGame struct {
	d    *Driver
	proj *minimap.Projector
	r    *render.Renderer

	img   *image.RGBA
	frame *ebiten.Image
	err   error
}

func (g *windowGame) Update() error {
	if g.err != nil {
		return g.err
	}
	mx, my := ebiten.CursorPosition()
	_, wy := ebiten.Wheel()
	g.d.Step(Input{
		Now:        time.Now(),
		Cursor:     panzoom.Pt(float64(mx), float64(my)),
		Pressed:    ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		WheelY:     wy,
		ToggleMode: inpututil.IsKeyJustPressed(ebiten.KeyC),
		Recenter:   inpututil.IsKeyJustPressed(ebiten.KeyHome),
		Cancel:     inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	})
	return nil
}

func (g *windowGame) Draw(screen *ebiten.Image) {
	f := render.Capture(g.d.Editor(), g.proj)
	if f.Width <= 0 || f.Height <= 0 {
		return
	}

	dc := gg.NewContext(f.Width, f.Height)
	defer dc.Close()
	if err := g.r.Draw(dc, f); err != nil {
		g.err = fmt.Errorf("draw frame: %w", err)
		return
	}

	if g.img == nil || g.img.Bounds().Dx() != f.Width || g.img.Bounds().Dy() != f.Height {
		g.img = image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
		if g.frame != nil {
			g.frame.Deallocate()
		}
		g.frame = ebiten.NewImage(f.Width, f.Height)
	}
	draw.Draw(g.img, g.img.Bounds(), dc.Image(), image.Point{}, draw.Src)

	g.frame.WritePixels(g.img.Pix)
	screen.DrawImage(g.frame, nil)
}

func (g *windowGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.d.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
