// Package overlay implements the fullscreen image overlay of the detail view.
package overlay

import (
	"sync"

	"github.com/dev-760/portfolio-v2/internal/view"
)

// State is the overlay state.
type State int

const (
	Closed State = iota
	Open
)

func (s State) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// Suspender is the part of the gallery navigator the overlay takes input
// from while it covers the view.
type Suspender interface {
	Suspend() func()
}

// Controller owns the overlay state of one mounted detail view. While open it
// holds a navigator suspension (keys, pointer and swipe), a scroll lock and an
// Escape listener; every exit path releases each of them exactly once.
type Controller struct {
	doc *view.Document
	nav Suspender

	mu       sync.Mutex
	state    State
	releases []func()
	offOpen  []func()
}

// New returns a closed controller bound to doc. nav may be nil when no
// navigator is mounted.
func New(doc *view.Document, nav Suspender) *Controller {
	return &Controller{doc: doc, nav: nav}
}

// State returns the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// IsOpen is shorthand for State() == Open.
func (c *Controller) IsOpen() bool { return c.State() == Open }

// Open shows the overlay. It reports false if it was already open.
func (c *Controller) Open() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == Open {
		return false
	}
	c.state = Open
	if c.nav != nil {
		c.releases = append(c.releases, c.nav.Suspend())
	}
	c.releases = append(c.releases,
		c.doc.LockScroll(),
		c.doc.Listen(view.KeyDown, func(ev *view.Event) {
			if view.NormalizeKey(ev.Key) == view.KeyEscape {
				c.Close()
			}
		}),
		c.doc.Listen(view.Click, c.onClick),
	)
	return true
}

func (c *Controller) onClick(ev *view.Event) {
	switch ev.Target {
	case view.TargetImage:
		ev.StopPropagation()
	case view.TargetClose, view.TargetBackdrop:
		c.Close()
		ev.StopPropagation()
	}
}

// Close hides the overlay and releases what Open acquired. It reports false if
// the overlay was already closed.
func (c *Controller) Close() bool {
	c.mu.Lock()
	if c.state == Closed {
		c.mu.Unlock()
		return false
	}
	c.state = Closed
	releases := c.releases
	c.releases = nil
	c.mu.Unlock()
	for i := len(releases) - 1; i >= 0; i-- {
		releases[i]()
	}
	return true
}

// Mount registers the open triggers (double-click on the image and the
// fullscreen control). The returned func unmounts the controller, closing it
// if needed.
func (c *Controller) Mount() func() {
	c.mu.Lock()
	c.offOpen = []func(){
		c.doc.Listen(view.DoubleClick, func(ev *view.Event) {
			if ev.Target == view.TargetImage {
				c.Open()
			}
		}),
		c.doc.Listen(view.Click, func(ev *view.Event) {
			if ev.Target == view.TargetFullscreen {
				c.Open()
			}
		}),
	}
	c.mu.Unlock()
	return c.Unmount
}

// Unmount releases every registration whether or not the overlay is open.
func (c *Controller) Unmount() {
	c.Close()
	c.mu.Lock()
	offs := c.offOpen
	c.offOpen = nil
	c.mu.Unlock()
	for _, off := range offs {
		off()
	}
}
