// Package editor turns pointer input into canvas edits.
//
// An Editor routes pointer down/move/up events to exactly one gesture at a
// time: panning the viewport, drawing a rectangle, moving a rectangle, or
// dragging (or clicking) the overview panel. Which canvas gesture starts
// is decided by the current Mode. All points passed in are screen space.
package editor

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/panzoom"
	"github.com/gogpu/panzoom/board"
	"github.com/gogpu/panzoom/minimap"
)

// Overview is the overview panel as seen by the editor. *minimap.Projector
// implements it.
type Overview interface {
	CreateProxy(r *panzoom.Rectangle) panzoom.ID
	UpdateProxy(r *panzoom.Rectangle) bool
	UpdateAll(rects []*panzoom.Rectangle)
	HitTest(p panzoom.Point) minimap.Target
	HandleClick(p panzoom.Point, target minimap.Target) bool
	MovePanel(delta panzoom.Point)
}

var _ Overview = (*minimap.Projector)(nil)

// Editor owns the mode flag and the gesture state machine.
// It is not safe for concurrent use.
type Editor struct {
	ctrl     *panzoom.Controller
	board    *board.Board
	overview Overview
	deadZone float64

	mode  Mode
	state State

	// StateDrawing
	anchor panzoom.Point // world
	draft  panzoom.Rect  // world

	// StateDraggingRectangle
	dragID panzoom.ID

	// StateDraggingRectangle and StateDraggingOverview
	last panzoom.Point // screen

	// StateDraggingOverview
	down   panzoom.Point // screen
	target minimap.Target
	moved  bool
}

// Option configures an Editor.
type Option func(*Editor)

// WithBoard uses b instead of a fresh board bounded by the canvas.
func WithBoard(b *board.Board) Option {
	return func(e *Editor) {
		e.board = b
	}
}

// WithOverview connects the overview panel. Without one, proxy
// registration degrades to a logged warning.
func WithOverview(o Overview) Option {
	return func(e *Editor) {
		e.overview = o
	}
}

// New creates an editor in ModePan driving ctrl.
func New(ctrl *panzoom.Controller, opts ...Option) (*Editor, error) {
	if ctrl == nil {
		return nil, fmt.Errorf("new editor: %w", panzoom.ErrNilController)
	}
	cfg := ctrl.Config()
	e := &Editor{
		ctrl:     ctrl,
		deadZone: cfg.DragDeadZone,
		mode:     ModePan,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.board == nil {
		e.board = board.New(board.WithBounds(cfg.CanvasBounds()))
	}
	e.ctrl.SetOptions(panzoom.Options{DisablePan: false})
	return e, nil
}

// Controller returns the viewport controller.
func (e *Editor) Controller() *panzoom.Controller { return e.ctrl }

// Board returns the rectangle store.
func (e *Editor) Board() *board.Board { return e.board }

// Mode returns the current mode.
func (e *Editor) Mode() Mode { return e.mode }

// State returns the gesture in progress.
func (e *Editor) State() State { return e.state }

// Draft returns the rectangle being drawn, in world space.
func (e *Editor) Draft() (panzoom.Rect, bool) {
	return e.draft, e.state == StateDrawing
}

// ToggleMode switches between ModePan and ModeCreate.
func (e *Editor) ToggleMode() {
	if e.mode == ModePan {
		e.SetMode(ModeCreate)
	} else {
		e.SetMode(ModePan)
	}
}

// SetMode switches mode. Create mode disables drag-panning on the
// controller and makes every rectangle draggable; pan mode reverses both.
// A pan drag in progress ends when switching to create mode; other
// gestures are left to finish.
func (e *Editor) SetMode(m Mode) {
	if m == e.mode {
		return
	}
	e.mode = m
	create := m == ModeCreate
	if create && e.state == StatePanning {
		e.ctrl.EndDrag()
		e.setState(StateIdle)
	}
	e.ctrl.SetOptions(panzoom.Options{DisablePan: create})
	e.board.SetDraggable(create)
	panzoom.Logger().Debug("mode switched", slog.String("mode", m.String()))
}

func (e *Editor) setState(s State) {
	if s == e.state {
		return
	}
	panzoom.Logger().Debug("gesture state",
		slog.String("from", e.state.String()),
		slog.String("to", s.String()))
	e.state = s
}

// PointerDown starts a gesture at screen point p. It is ignored while
// another gesture is in progress.
func (e *Editor) PointerDown(p panzoom.Point) {
	if e.state != StateIdle {
		return
	}

	if e.overview != nil {
		if target := e.overview.HitTest(p); target != minimap.TargetOutside {
			e.down, e.last = p, p
			e.target = target
			e.moved = false
			e.setState(StateDraggingOverview)
			return
		}
	}

	switch e.mode {
	case ModeCreate:
		w := e.ctrl.Transform().ScreenToWorld(p)
		if r, ok := e.board.HitTest(w); ok {
			// Pressing on a rectangle never starts a new one.
			if e.board.Draggable(r.ID) {
				e.dragID = r.ID
				e.last = p
				e.setState(StateDraggingRectangle)
			}
			return
		}
		e.anchor = w
		e.draft = panzoom.NewRect(w.X, w.Y, 0, 0)
		e.setState(StateDrawing)
	case ModePan:
		if e.ctrl.BeginDrag(p) {
			e.setState(StatePanning)
		}
	}
}

// PointerMove advances the gesture in progress.
func (e *Editor) PointerMove(p panzoom.Point) {
	switch e.state {
	case StatePanning:
		e.ctrl.Drag(p)
	case StateDrawing:
		e.draft = panzoom.NewRectFromPoints(e.anchor, e.ctrl.Transform().ScreenToWorld(p))
	case StateDraggingRectangle:
		delta := p.Sub(e.last).Div(e.ctrl.Transform().Scale)
		e.last = p
		if r, ok := e.board.Move(e.dragID, delta); ok {
			e.updateProxy(r)
		}
	case StateDraggingOverview:
		if !e.moved && p.Distance(e.down) < e.deadZone {
			return
		}
		e.moved = true
		e.overview.MovePanel(p.Sub(e.last))
		e.last = p
	}
}

// PointerUp finishes the gesture in progress at screen point p.
func (e *Editor) PointerUp(p panzoom.Point) {
	switch e.state {
	case StatePanning:
		e.ctrl.EndDrag()
	case StateDrawing:
		e.draft = panzoom.NewRectFromPoints(e.anchor, e.ctrl.Transform().ScreenToWorld(p))
		e.commit()
	case StateDraggingRectangle:
		e.PointerMove(p)
		e.dragID = ""
	case StateDraggingOverview:
		if !e.moved {
			e.overview.HandleClick(p, e.target)
		}
	}
	e.setState(StateIdle)
}

// Cancel abandons the gesture in progress. A rectangle being drawn is
// discarded; moves already applied stay.
func (e *Editor) Cancel() {
	switch e.state {
	case StatePanning:
		e.ctrl.EndDrag()
	case StateDrawing:
		e.draft = panzoom.Rect{}
	}
	e.dragID = ""
	e.setState(StateIdle)
}

// Wheel zooms one step around screen point p.
func (e *Editor) Wheel(p panzoom.Point, deltaY float64) {
	e.ctrl.Wheel(p, deltaY)
}

// DoubleClick zooms in around screen point p. Double-clicks on the
// overview panel are ignored.
func (e *Editor) DoubleClick(p panzoom.Point) {
	if e.overview != nil && e.overview.HitTest(p) != minimap.TargetOutside {
		return
	}
	e.ctrl.DoubleClick(p)
}

func (e *Editor) commit() {
	draft := e.draft
	e.draft = panzoom.Rect{}
	if draft.IsEmpty() {
		panzoom.Logger().Debug("draft discarded",
			slog.Float64("width", draft.Width),
			slog.Float64("height", draft.Height))
		return
	}
	r := panzoom.NewRectangle(draft)
	// The board stamps the id; the proxy is only created once the
	// rectangle is committed so the two sets never diverge.
	if _, err := e.board.Add(r, e.mode == ModeCreate); err != nil {
		panzoom.Logger().Error("commit rectangle", slog.Any("error", err))
		return
	}
	e.createProxy(r)
}

func (e *Editor) createProxy(r *panzoom.Rectangle) {
	if e.overview == nil {
		panzoom.Logger().Warn("overview projector not initialized")
		return
	}
	e.overview.CreateProxy(r)
}

func (e *Editor) updateProxy(r *panzoom.Rectangle) {
	if e.overview == nil {
		panzoom.Logger().Warn("overview projector not initialized")
		return
	}
	e.overview.UpdateProxy(r)
}

// SyncOverview recomputes every overview proxy from the board.
func (e *Editor) SyncOverview() {
	if e.overview == nil {
		panzoom.Logger().Warn("overview projector not initialized")
		return
	}
	e.overview.UpdateAll(e.board.All())
}
