// Package host connects the editor to a desktop window.
//
// Window-system input is sampled once per tick into an Input snapshot and
// fed to a Driver, which turns button edges, cursor motion, wheel steps and
// key presses into editor calls. Only window.go depends on ebiten; the
// Driver runs anywhere, which keeps it testable.
package host

import (
	"log/slog"
	"time"

	"github.com/gogpu/panzoom"
	"github.com/gogpu/panzoom/editor"
	"github.com/gogpu/panzoom/minimap"
)

// Input is the state of the pointer and keyboard for one tick.
type Input struct {
	Now    time.Time
	Cursor panzoom.Point
	// Pressed is the primary button state.
	Pressed bool
	// WheelY is the vertical wheel offset; positive scrolls up.
	WheelY float64

	ToggleMode bool
	Recenter   bool
	Cancel     bool
}

// Driver replays per-tick input onto an editor.
type Driver struct {
	ed     *editor.Editor
	proj   *minimap.Projector
	clicks *ClickTracker

	pressed bool
	cursor  panzoom.Point
}

// NewDriver creates a driver for ed. proj may be nil when there is no
// overview; otherwise its deferred refresh is polled every tick.
// Double-click thresholds come from the controller's configuration.
func NewDriver(ed *editor.Editor, proj *minimap.Projector) *Driver {
	return &Driver{
		ed:     ed,
		proj:   proj,
		clicks: NewClickTracker(ed.Controller().Config()),
	}
}

// Editor returns the driven editor.
func (d *Driver) Editor() *editor.Editor { return d.ed }

// Resize forwards a window size change to the controller.
func (d *Driver) Resize(w, h int) {
	ctrl := d.ed.Controller()
	if vp := ctrl.ViewportSize(); vp.X == float64(w) && vp.Y == float64(h) {
		return
	}
	ctrl.SetViewportSize(float64(w), float64(h))
	panzoom.Logger().Debug("viewport resized", slog.Int("width", w), slog.Int("height", h))
}

// Step applies one tick of input.
func (d *Driver) Step(in Input) {
	if d.proj != nil {
		d.proj.Poll(in.Now)
	}

	if in.ToggleMode {
		d.ed.ToggleMode()
	}
	if in.Recenter {
		d.ed.Controller().Center()
	}
	if in.Cancel {
		d.ed.Cancel()
	}

	// Screen wheel offsets point the other way from DOM-style deltaY.
	if in.WheelY != 0 {
		d.ed.Wheel(in.Cursor, -in.WheelY)
	}

	switch {
	case in.Pressed && !d.pressed:
		d.ed.PointerDown(in.Cursor)
	case in.Pressed && d.pressed:
		if in.Cursor != d.cursor {
			d.ed.PointerMove(in.Cursor)
		}
	case !in.Pressed && d.pressed:
		d.ed.PointerUp(in.Cursor)
		if d.clicks.Click(in.Cursor, in.Now) {
			d.ed.DoubleClick(in.Cursor)
		}
	}
	d.pressed = in.Pressed
	d.cursor = in.Cursor
}
