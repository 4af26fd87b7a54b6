package panzoom

import (
	"strconv"

	"github.com/google/uuid"
)

// ID identifies a Rectangle and links it to its overview proxy.
type ID string

// NewID returns a fresh random identifier.
func NewID() ID {
	return ID(uuid.NewString())
}

// IDGenerator produces identifiers. Components accept one so tests can
// use deterministic ids.
type IDGenerator func() ID

// SequentialIDs returns a generator yielding "<prefix>1", "<prefix>2", ...
func SequentialIDs(prefix string) IDGenerator {
	var n int
	return func() ID {
		n++
		return ID(prefix + strconv.Itoa(n))
	}
}

// Rectangle is a user-drawn shape in world units. After creation only its
// position changes.
type Rectangle struct {
	ID ID
	Rect
}

// NewRectangle returns a rectangle without an identifier; one is stamped
// when it is registered with the overview or the board.
func NewRectangle(r Rect) *Rectangle {
	return &Rectangle{Rect: r}
}

// Bounds returns the rectangle geometry.
func (r *Rectangle) Bounds() Rect {
	return r.Rect
}

// MoveTo sets the top-left corner.
func (r *Rectangle) MoveTo(p Point) {
	r.Left = p.X
	r.Top = p.Y
}
