// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/panzoom"
	"github.com/gogpu/panzoom/editor"
	"github.com/gogpu/panzoom/minimap"
)

// Frame is an immutable snapshot of everything the renderer paints.
// World-space fields are drawn under Transform; screen-space fields are
// drawn as is.
type Frame struct {
	Width, Height int

	Transform panzoom.Transform

	// World space.
	Canvas     panzoom.Rect
	Rectangles []panzoom.Rect
	Draft      panzoom.Rect
	Drawing    bool

	// Screen space. An empty Panel means there is no overview.
	Panel     panzoom.Rect
	Proxies   []panzoom.Rect
	Indicator panzoom.Rect

	Mode string
}

// Capture snapshots the editor and, when proj is non-nil, its overview.
func Capture(ed *editor.Editor, proj *minimap.Projector) Frame {
	ctrl := ed.Controller()
	vp := ctrl.ViewportSize()
	f := Frame{
		Width:     int(vp.X),
		Height:    int(vp.Y),
		Transform: ctrl.Transform(),
		Canvas:    ctrl.Config().CanvasBounds(),
		Mode:      ed.Mode().String(),
	}
	for _, r := range ed.Board().All() {
		f.Rectangles = append(f.Rectangles, r.Bounds())
	}
	f.Draft, f.Drawing = ed.Draft()

	if proj != nil {
		f.Panel = proj.Panel()
		for _, px := range proj.Proxies() {
			f.Proxies = append(f.Proxies, proj.ToScreen(px.Rect()))
		}
		f.Indicator = proj.ToScreen(proj.Indicator().Rect())
	}
	return f
}
