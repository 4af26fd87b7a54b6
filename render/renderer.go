// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render paints a panzoom Frame with gg.
//
// World-space content (canvas bounds, rectangles, the draft) is drawn under
// the frame's Transform, so a rectangle at world (x, y) lands at
// x*scale+tx, y*scale+ty on screen. The overview panel and the HUD are
// drawn in screen space on top.
//
// Usage:
//
//	r, err := render.New()
//	if err != nil {
//		return err
//	}
//	defer r.Close()
//
//	dc := gg.NewContext(f.Width, f.Height)
//	defer dc.Close()
//	if err := r.Draw(dc, f); err != nil {
//		return err
//	}
package render

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/message"

	"github.com/gogpu/panzoom"
)

// Renderer draws frames. It holds the HUD font and is not safe for
// concurrent use.
type Renderer struct {
	source  *text.FontSource
	face    text.Face
	palette Palette
	printer *message.Printer
	hud     bool
}

// New creates a renderer with the Go Regular font loaded.
func New(opts ...Option) (*Renderer, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	source, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("load hud font: %w", err)
	}
	return &Renderer{
		source:  source,
		face:    source.Face(o.fontSize),
		palette: o.palette,
		printer: message.NewPrinter(o.lang),
		hud:     o.hud,
	}, nil
}

// Close releases the font source.
func (r *Renderer) Close() error {
	if r.source == nil {
		return nil
	}
	err := r.source.Close()
	r.source = nil
	return err
}

// Palette returns the colors in use.
func (r *Renderer) Palette() Palette { return r.palette }

// HUD formats the status line for f.
func (r *Renderer) HUD(f Frame) string {
	zoom := int(math.Round(f.Transform.Scale * 100))
	return r.printer.Sprintf("%s mode | zoom %d%% | %d rectangles",
		f.Mode, zoom, len(f.Rectangles))
}

// Draw paints f onto dc.
func (r *Renderer) Draw(dc *gg.Context, f Frame) error {
	p := r.palette
	var errs []error

	dc.ClearWithColor(gg.FromColor(p.Background))

	scale := f.Transform.Scale
	if scale <= 0 {
		scale = 1
	}
	dc.Push()
	dc.Transform(f.Transform.Matrix())
	errs = append(errs,
		fillRect(dc, f.Canvas, p.Canvas),
		strokeRect(dc, f.Canvas, p.CanvasBorder, 1/scale),
	)
	for _, rc := range f.Rectangles {
		errs = append(errs,
			fillRect(dc, rc, p.Rectangle),
			strokeRect(dc, rc, p.RectangleBorder, 1/scale),
		)
	}
	if f.Drawing {
		errs = append(errs, strokeRect(dc, f.Draft, p.Draft, 2/scale))
	}
	dc.Pop()

	if !f.Panel.IsEmpty() {
		errs = append(errs, fillRect(dc, f.Panel, p.Panel))
		for _, rc := range f.Proxies {
			errs = append(errs, fillRect(dc, rc, p.Proxy))
		}
		errs = append(errs,
			strokeRect(dc, f.Indicator, p.Indicator, 2),
			strokeRect(dc, f.Panel, p.PanelBorder, 1),
		)
	}

	if r.hud && r.face != nil {
		dc.SetFont(r.face)
		dc.SetColor(p.Text)
		dc.DrawString(r.HUD(f), 12, 12+r.face.Size())
	}
	return errors.Join(errs...)
}

// RenderPNG draws f on a fresh context of f's size and encodes it as PNG.
func (r *Renderer) RenderPNG(w io.Writer, f Frame) error {
	if f.Width <= 0 || f.Height <= 0 {
		return fmt.Errorf("render png: invalid frame size %dx%d", f.Width, f.Height)
	}
	dc := gg.NewContext(f.Width, f.Height)
	defer dc.Close()

	if err := r.Draw(dc, f); err != nil {
		return fmt.Errorf("render png: %w", err)
	}
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("render png: %w", err)
	}
	panzoom.Logger().Debug("frame encoded", "width", f.Width, "height", f.Height)
	return nil
}

func fillRect(dc *gg.Context, r panzoom.Rect, c color.Color) error {
	if r.IsEmpty() {
		return nil
	}
	dc.DrawRectangle(r.Left, r.Top, r.Width, r.Height)
	dc.SetColor(c)
	return dc.Fill()
}

func strokeRect(dc *gg.Context, r panzoom.Rect, c color.Color, width float64) error {
	if r.IsEmpty() {
		return nil
	}
	dc.DrawRectangle(r.Left, r.Top, r.Width, r.Height)
	dc.SetColor(c)
	dc.SetLineWidth(width)
	return dc.Stroke()
}
