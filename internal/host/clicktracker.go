package host

import (
	"time"

	"github.com/gogpu/panzoom"
)

// ClickTracker turns a stream of clicks into double-clicks. Two clicks
// form a double-click when the second follows the first within Interval
// and lands within Slop pixels of it.
type ClickTracker struct {
	Interval time.Duration
	Slop     float64

	armed bool
	at    time.Time
	pos   panzoom.Point
}

// NewClickTracker returns a tracker using the double-click thresholds
// from cfg.
func NewClickTracker(cfg panzoom.Config) *ClickTracker {
	return &ClickTracker{
		Interval: cfg.DoubleClickInterval,
		Slop:     cfg.DoubleClickSlop,
	}
}

// Click records a click at p and reports whether it completes a
// double-click. A completed pair is consumed, so a third quick click
// starts a new pair.
func (c *ClickTracker) Click(p panzoom.Point, now time.Time) bool {
	if c.armed && now.Sub(c.at) <= c.Interval && p.Distance(c.pos) <= c.Slop {
		c.armed = false
		return true
	}
	c.armed = true
	c.at = now
	c.pos = p
	return false
}

// Reset forgets any pending first click.
func (c *ClickTracker) Reset() {
	c.armed = false
}
