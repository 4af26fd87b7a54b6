// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image/color"

	"golang.org/x/image/colornames"
	"golang.org/x/text/language"
)

// Palette holds the colors used for each element of a frame.
type Palette struct {
	Background      color.Color
	Canvas          color.Color
	CanvasBorder    color.Color
	Rectangle       color.Color
	RectangleBorder color.Color
	Draft           color.Color
	Panel           color.Color
	PanelBorder     color.Color
	Proxy           color.Color
	Indicator       color.Color
	Text            color.Color
}

// DefaultPalette returns the stock colors.
func DefaultPalette() Palette {
	return Palette{
		Background:      colornames.Darkslategray,
		Canvas:          colornames.Whitesmoke,
		CanvasBorder:    colornames.Gray,
		Rectangle:       colornames.Steelblue,
		RectangleBorder: colornames.Navy,
		Draft:           colornames.Orangered,
		Panel:           colornames.Lightgray,
		PanelBorder:     colornames.Black,
		Proxy:           colornames.Royalblue,
		Indicator:       colornames.Crimson,
		Text:            colornames.White,
	}
}

type options struct {
	palette  Palette
	fontSize float64
	lang     language.Tag
	hud      bool
}

func defaultOptions() options {
	return options{
		palette:  DefaultPalette(),
		fontSize: 14,
		lang:     language.English,
		hud:      true,
	}
}

// Option configures a Renderer.
type Option func(*options)

// WithPalette overrides the stock colors.
func WithPalette(p Palette) Option {
	return func(o *options) {
		o.palette = p
	}
}

// WithFontSize sets the HUD font size in points. Non-positive sizes are
// ignored.
func WithFontSize(size float64) Option {
	return func(o *options) {
		if size > 0 {
			o.fontSize = size
		}
	}
}

// WithLanguage selects the locale used to format HUD numbers.
func WithLanguage(tag language.Tag) Option {
	return func(o *options) {
		o.lang = tag
	}
}

// WithoutHUD disables the status line.
func WithoutHUD() Option {
	return func(o *options) {
		o.hud = false
	}
}
