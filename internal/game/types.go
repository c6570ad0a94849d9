package game

import (
	"strings"
	"time"
)

// View selects how the world is drawn.
type View int

const (
	ViewFirstPerson View = iota
	ViewTopDown
)

// ParseView maps "2d", in any case, to the top-down view. Anything else is
// first person.
func ParseView(s string) View {
	if strings.ToLower(s) == "2d" {
		return ViewTopDown
	}
	return ViewFirstPerson
}

func (v View) String() string {
	if v == ViewTopDown {
		return "2d"
	}
	return "3d"
}

// Toggle returns the other view.
func (v View) Toggle() View {
	if v == ViewTopDown {
		return ViewFirstPerson
	}
	return ViewTopDown
}

// Message represents an on-screen message that fades over time.
type Message struct {
	Text     string
	TimeLeft float64 // Seconds remaining
	MaxTime  float64 // Initial duration
}

// FrameClock measures the real time between ticks on the monotonic clock.
type FrameClock struct {
	now  func() time.Time
	last time.Time
}

// NewFrameClock returns a clock reading time.Now.
func NewFrameClock() *FrameClock {
	return &FrameClock{now: time.Now}
}

// Tick returns the seconds since the previous Tick, or 0 on the first call.
func (c *FrameClock) Tick() float64 {
	t := c.now()
	if c.last.IsZero() {
		c.last = t
		return 0
	}
	dt := t.Sub(c.last).Seconds()
	c.last = t
	return dt
}
