// Package panzoom provides the viewport model for an infinite-canvas editor.
//
// # Overview
//
// A Controller owns the affine transform that maps a large logical canvas
// (the world) onto a smaller screen viewport:
//
//	screen = world*scale + translate
//
// It pans, zooms around a fixed screen point, and notifies observers after
// every change. Sub-packages build the editor on top of it:
//   - board: the rectangle store, with hit-testing and clamped moves
//   - minimap: the overview panel, kept in sync with rectangles and viewport
//   - editor: the pointer gesture state machine
//   - render: paints a frame with gg
//
// # Quick Start
//
//	ctrl, err := panzoom.NewController(panzoom.DefaultConfig())
//	if err != nil {
//		return err
//	}
//	sub := ctrl.Subscribe(func(t panzoom.Transform) {
//		fmt.Println("viewport:", t)
//	})
//	defer sub.Remove()
//
//	ctrl.Wheel(panzoom.Pt(100, 100), -1) // zoom in around (100, 100)
//
// # Coordinate System
//
// Both spaces use standard screen coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// World coordinates are not bounded by the canvas size; panning and zooming
// may show area outside it.
//
// # Logging
//
// The package is silent by default. Call SetLogger to route its debug and
// warning output to an slog.Logger.
package panzoom

// Version information
const (
	// Version is the current version of the module
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
