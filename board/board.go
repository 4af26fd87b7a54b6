// Package board stores the rectangles committed on the canvas.
//
// Rectangles keep their insertion order, which is also their paint order:
// the last one added is drawn on top and wins hit tests. Each rectangle
// carries a draggable flag mirroring the editor mode at the time it was
// last toggled.
package board

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/gogpu/panzoom"
)

// ErrDuplicateID is returned by Add for an identifier already on the board.
var ErrDuplicateID = errors.New("board: duplicate rectangle id")

type entry struct {
	rect      *panzoom.Rectangle
	draggable bool
}

// Board is an ordered, id-indexed collection of rectangles.
// It is not safe for concurrent use.
type Board struct {
	entries []entry
	index   map[panzoom.ID]int
	bounds  *panzoom.Rect
	newID   panzoom.IDGenerator
}

// Option configures a Board.
type Option func(*Board)

// WithBounds restricts rectangle moves to bounds (world space).
func WithBounds(bounds panzoom.Rect) Option {
	return func(b *Board) {
		b.bounds = &bounds
	}
}

// WithIDGenerator replaces the random identifier source.
func WithIDGenerator(gen panzoom.IDGenerator) Option {
	return func(b *Board) {
		b.newID = gen
	}
}

// New creates an empty board.
func New(opts ...Option) *Board {
	b := &Board{
		index: make(map[panzoom.ID]int),
		newID: panzoom.NewID,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Add appends r. A rectangle without an identifier gets a fresh one.
func (b *Board) Add(r *panzoom.Rectangle, draggable bool) (panzoom.ID, error) {
	if r.ID == "" {
		r.ID = b.newID()
	}
	if _, ok := b.index[r.ID]; ok {
		return "", fmt.Errorf("%w: %s", ErrDuplicateID, r.ID)
	}
	b.index[r.ID] = len(b.entries)
	b.entries = append(b.entries, entry{rect: r, draggable: draggable})
	panzoom.Logger().Debug("rectangle added",
		slog.String("id", string(r.ID)),
		slog.Float64("left", r.Left),
		slog.Float64("top", r.Top),
		slog.Float64("width", r.Width),
		slog.Float64("height", r.Height))
	return r.ID, nil
}

// Get returns the rectangle with the given id.
func (b *Board) Get(id panzoom.ID) (*panzoom.Rectangle, bool) {
	i, ok := b.index[id]
	if !ok {
		return nil, false
	}
	return b.entries[i].rect, true
}

// Len returns the number of rectangles.
func (b *Board) Len() int {
	return len(b.entries)
}

// All returns the rectangles in paint order. The slice is a copy; the
// rectangles are shared.
func (b *Board) All() []*panzoom.Rectangle {
	out := make([]*panzoom.Rectangle, len(b.entries))
	for i, e := range b.entries {
		out[i] = e.rect
	}
	return out
}

// HitTest returns the topmost rectangle containing world point p.
func (b *Board) HitTest(p panzoom.Point) (*panzoom.Rectangle, bool) {
	for _, e := range slices.Backward(b.entries) {
		if e.rect.Contains(p) {
			return e.rect, true
		}
	}
	return nil, false
}

// SetDraggable sets the draggable flag on every rectangle.
func (b *Board) SetDraggable(enabled bool) {
	for i := range b.entries {
		b.entries[i].draggable = enabled
	}
}

// Draggable reports whether the rectangle with the given id may be moved.
func (b *Board) Draggable(id panzoom.ID) bool {
	i, ok := b.index[id]
	return ok && b.entries[i].draggable
}

// Move shifts the rectangle by delta world units, keeping it inside the
// board bounds when they are set. It returns the moved rectangle.
func (b *Board) Move(id panzoom.ID, delta panzoom.Point) (*panzoom.Rectangle, bool) {
	r, ok := b.Get(id)
	if !ok {
		return nil, false
	}
	next := r.Bounds().Translate(delta)
	if b.bounds != nil {
		next = next.ClampInside(*b.bounds)
	}
	r.MoveTo(next.Origin())
	return r, true
}
