// Package gallery implements previous/next traversal over an ordered list of
// artworks, in paged (book) or continuous (scroll) presentation.
package gallery

import (
	"strings"
	"sync"
	"time"

	"github.com/dev-760/portfolio-v2/internal/catalog"
	"github.com/dev-760/portfolio-v2/internal/i18n"
	"github.com/dev-760/portfolio-v2/internal/view"
)

// Mode selects the presentation.
type Mode string

const (
	// ModePaged shows one artwork at a time.
	ModePaged Mode = "book"
	// ModeContinuous shows every artwork in scroll order.
	ModeContinuous Mode = "scroll"
)

// ParseMode returns the mode for raw, defaulting to ModePaged.
func ParseMode(raw string) Mode {
	if Mode(strings.ToLower(strings.TrimSpace(raw))) == ModeContinuous {
		return ModeContinuous
	}
	return ModePaged
}

const (
	// DefaultTransition is how long a paged step locks out further steps.
	DefaultTransition = 400 * time.Millisecond
	// RevealThreshold is the intersection ratio at which a continuous-mode
	// item becomes visible.
	RevealThreshold = 0.2
)

// Option configures a Navigator.
type Option func(*Navigator)

// WithDirection sets the reading direction used to remap left/right inputs.
func WithDirection(d i18n.Direction) Option {
	return func(n *Navigator) { n.dir = d }
}

// WithMode sets the presentation mode.
func WithMode(m Mode) Option {
	return func(n *Navigator) { n.mode = m }
}

// WithClock sets the clock used by the transition lock.
func WithClock(c view.Clock) Option {
	return func(n *Navigator) { n.clock = c }
}

// WithTransition overrides the paged transition duration. Zero disables the lock.
func WithTransition(d time.Duration) Option {
	return func(n *Navigator) { n.transition = d }
}

// Navigator is the position state machine for one mounted gallery view.
// Position is always within [0, Len()-1] when the sequence is non-empty.
type Navigator struct {
	mu          sync.Mutex
	items       []catalog.Artwork
	pos         int
	dir         i18n.Direction
	mode        Mode
	clock       view.Clock
	transition  time.Duration
	lockedUntil time.Time
	suspended   int
	halted      int
	visible     []bool
}

// New builds a navigator over items positioned on the first one.
func New(items []catalog.Artwork, opts ...Option) *Navigator {
	n := &Navigator{
		items:      items,
		dir:        i18n.LTR,
		mode:       ModePaged,
		clock:      view.SystemClock{},
		transition: DefaultTransition,
	}
	for _, opt := range opts {
		opt(n)
	}
	n.visible = make([]bool, len(items))
	return n
}

func (n *Navigator) Len() int                  { return len(n.items) }
func (n *Navigator) Mode() Mode                { return n.mode }
func (n *Navigator) Direction() i18n.Direction { return n.dir }

// Items returns the sequence being browsed.
func (n *Navigator) Items() []catalog.Artwork { return n.items }

// Position returns the current index.
func (n *Navigator) Position() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.pos
}

// Current returns the artwork at the current position; false when empty.
func (n *Navigator) Current() (catalog.Artwork, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.at(n.pos)
}

// Previous returns the artwork before the current one, if any.
func (n *Navigator) Previous() (catalog.Artwork, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.at(n.pos - 1)
}

// Next returns the artwork after the current one, if any.
func (n *Navigator) Next() (catalog.Artwork, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.at(n.pos + 1)
}

func (n *Navigator) at(i int) (catalog.Artwork, bool) {
	if i < 0 || i >= len(n.items) {
		return catalog.Artwork{}, false
	}
	return n.items[i], true
}

// Select moves to the artwork with id. An unknown id leaves the position
// unchanged and reports false.
func (n *Navigator) Select(id string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	for i, a := range n.items {
		if a.ID == id {
			n.pos = i
			return true
		}
	}
	return false
}

// Seek moves to index i without taking the transition lock. Out of range
// indexes are rejected.
func (n *Navigator) Seek(i int) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	if i < 0 || i >= len(n.items) {
		return false
	}
	n.pos = i
	return true
}

// StepPrevious moves one item back. It reports whether the position changed.
func (n *Navigator) StepPrevious() bool { return n.step(-1) }

// StepNext moves one item forward. It reports whether the position changed.
func (n *Navigator) StepNext() bool { return n.step(1) }

// StepLeft handles the left affordance: previous in LTR, next in RTL.
func (n *Navigator) StepLeft() bool {
	if n.dir == i18n.RTL {
		return n.StepNext()
	}
	return n.StepPrevious()
}

// StepRight handles the right affordance: next in LTR, previous in RTL.
func (n *Navigator) StepRight() bool {
	if n.dir == i18n.RTL {
		return n.StepPrevious()
	}
	return n.StepNext()
}

func (n *Navigator) step(delta int) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.mode == ModePaged && n.clock.Now().Before(n.lockedUntil) {
		return false
	}
	next := n.pos + delta
	if next < 0 || next >= len(n.items) {
		return false
	}
	n.pos = next
	if n.mode == ModePaged && n.transition > 0 {
		n.lockedUntil = n.clock.Now().Add(n.transition)
	}
	return true
}

// Peek returns the index action a would move to, without moving or taking
// the transition lock. It reports false when the action is a no-op at the
// current position.
func (n *Navigator) Peek(a Action) (int, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	delta := 0
	switch a {
	case ActionPrevious:
		delta = -1
	case ActionNext:
		delta = 1
	case ActionLeft:
		delta = -1
		if n.dir == i18n.RTL {
			delta = 1
		}
	case ActionRight:
		delta = 1
		if n.dir == i18n.RTL {
			delta = -1
		}
	}
	target := n.pos + delta
	if delta == 0 || target < 0 || target >= len(n.items) {
		return n.pos, false
	}
	return target, true
}

// Locked reports whether a paged transition is in flight.
func (n *Navigator) Locked() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.mode == ModePaged && n.clock.Now().Before(n.lockedUntil)
}

// Apply performs an action after direction remapping.
func (n *Navigator) Apply(a Action) bool {
	switch a {
	case ActionPrevious:
		return n.StepPrevious()
	case ActionNext:
		return n.StepNext()
	case ActionLeft:
		return n.StepLeft()
	case ActionRight:
		return n.StepRight()
	}
	return false
}

// Handle resolves and applies a single input. Arrow keys are ignored while
// keyboard handling is suspended; every input is ignored while stepping is
// suspended.
func (n *Navigator) Handle(in Input) bool {
	n.mu.Lock()
	blocked := n.halted > 0 || (in.Kind == InputKey && n.suspended > 0)
	n.mu.Unlock()
	if blocked {
		return false
	}
	return n.Apply(Resolve(in))
}

// SuspendKeys disables arrow-key stepping until the returned func runs. The
// release func is idempotent.
func (n *Navigator) SuspendKeys() func() {
	return n.hold(&n.suspended)
}

// Suspend disables stepping from every input source (keys, pointer, swipe)
// until the returned func runs. Direct Step calls are unaffected. The release
// func is idempotent.
func (n *Navigator) Suspend() func() {
	return n.hold(&n.halted)
}

func (n *Navigator) hold(counter *int) func() {
	n.mu.Lock()
	*counter++
	n.mu.Unlock()
	var once sync.Once
	return func() {
		once.Do(func() {
			n.mu.Lock()
			*counter--
			n.mu.Unlock()
		})
	}
}

// KeysSuspended reports whether arrow keys are currently ignored.
func (n *Navigator) KeysSuspended() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.suspended > 0 || n.halted > 0
}

// Suspended reports whether every input source is currently ignored.
func (n *Navigator) Suspended() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.halted > 0
}

// Reveal records the intersection ratio of item i in continuous mode and
// reports whether the item is visible. Items stay visible once revealed.
func (n *Navigator) Reveal(i int, ratio float64) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	if i < 0 || i >= len(n.visible) {
		return false
	}
	if ratio >= RevealThreshold {
		n.visible[i] = true
	}
	return n.visible[i]
}

// Visible reports whether item i has been revealed.
func (n *Navigator) Visible(i int) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return i >= 0 && i < len(n.visible) && n.visible[i]
}

// Mount wires keyboard, click and touch listeners on doc. The returned func
// removes all of them.
func (n *Navigator) Mount(doc *view.Document) func() {
	var startX, startY float64
	var touching bool
	offs := []func(){
		doc.Listen(view.KeyDown, func(ev *view.Event) {
			n.Handle(Input{Kind: InputKey, Key: ev.Key})
		}),
		doc.Listen(view.Click, func(ev *view.Event) {
			n.Handle(Input{Kind: InputClick, Target: ev.Target})
		}),
		doc.Listen(view.TouchStart, func(ev *view.Event) {
			startX, startY, touching = ev.X, ev.Y, true
		}),
		doc.Listen(view.TouchEnd, func(ev *view.Event) {
			if !touching {
				return
			}
			touching = false
			n.Handle(Input{Kind: InputSwipe, DX: ev.X - startX, DY: ev.Y - startY})
		}),
	}
	var once sync.Once
	return func() {
		once.Do(func() {
			for _, off := range offs {
				off()
			}
		})
	}
}
