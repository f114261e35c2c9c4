// Package entry turns the first scroll, key press or swipe on the landing view
// into a single delayed navigation.
package entry

import (
	"sync"
	"time"

	"github.com/dev-760/portfolio-v2/internal/view"
)

const (
	// DefaultDelay matches the page fade-out duration.
	DefaultDelay = 600 * time.Millisecond
	// SwipeThreshold is the minimum upward travel for a swipe to count.
	SwipeThreshold = 50
)

// State is the controller state.
type State int

const (
	Idle State = iota
	Triggered
)

// Qualifies reports whether ev is an entry gesture on its own. Touch gestures
// need both ends and are checked with Swipe.
func Qualifies(ev view.Event) bool {
	switch ev.Kind {
	case view.Wheel:
		return ev.DY > 0
	case view.KeyDown:
		switch view.NormalizeKey(ev.Key) {
		case view.KeyArrowDown, view.KeyEnter, view.KeySpace:
			return true
		}
	}
	return false
}

// Swipe reports whether a touch moving from startY to endY is an upward swipe
// past the threshold.
func Swipe(startY, endY float64) bool {
	return startY-endY > SwipeThreshold
}

// Controller is the one-shot gate of one mounted landing view.
type Controller struct {
	doc      *view.Document
	delay    time.Duration
	navigate func()

	mu      sync.Mutex
	state   State
	timer   view.Timer
	mounted bool
	offs    []func()
}

// New returns an idle controller. navigate runs once, delay after the first
// qualifying input, unless the view unmounts first.
func New(doc *view.Document, delay time.Duration, navigate func()) *Controller {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Controller{doc: doc, delay: delay, navigate: navigate, mounted: true}
}

// State returns the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Trigger moves Idle to Triggered and schedules the navigation. Later calls
// are ignored and report false.
func (c *Controller) Trigger() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == Triggered || !c.mounted {
		return false
	}
	c.state = Triggered
	c.timer = c.doc.AfterFunc(c.delay, c.fire)
	return true
}

func (c *Controller) fire() {
	c.mu.Lock()
	if !c.mounted || c.timer == nil {
		c.mu.Unlock()
		return
	}
	c.timer = nil
	c.mu.Unlock()
	c.navigate()
}

// Handle triggers on a qualifying event.
func (c *Controller) Handle(ev view.Event) bool {
	if !Qualifies(ev) {
		return false
	}
	return c.Trigger()
}

// Mount registers the wheel, key and touch listeners. The returned func is
// Unmount.
func (c *Controller) Mount() func() {
	var startY float64
	var touching bool
	offs := []func(){
		c.doc.Listen(view.Wheel, func(ev *view.Event) { c.Handle(*ev) }),
		c.doc.Listen(view.KeyDown, func(ev *view.Event) { c.Handle(*ev) }),
		c.doc.Listen(view.TouchStart, func(ev *view.Event) {
			startY, touching = ev.Y, true
		}),
		c.doc.Listen(view.TouchEnd, func(ev *view.Event) {
			if touching && Swipe(startY, ev.Y) {
				c.Trigger()
			}
			touching = false
		}),
	}
	c.mu.Lock()
	c.offs = append(c.offs, offs...)
	c.mu.Unlock()
	return c.Unmount
}

// Unmount removes the listeners and clears a pending timer so the navigation
// never runs against a torn-down view.
func (c *Controller) Unmount() {
	c.mu.Lock()
	c.mounted = false
	timer := c.timer
	c.timer = nil
	offs := c.offs
	c.offs = nil
	c.mu.Unlock()
	if timer != nil {
		timer.Stop()
	}
	for _, off := range offs {
		off()
	}
}
