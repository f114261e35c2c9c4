// Package view models the input sources a rendered view shares with the rest
// of the page: keyboard, pointer, wheel and touch listeners, the scroll lock,
// and timers. Every registration returns a release func and Close releases
// whatever is still held.
package view

import (
	"sync"
	"time"
)

// Listener receives events of the kind it was registered for.
type Listener func(*Event)

type registration struct {
	id int
	fn Listener
}

// Document is the event host of one mounted view.
type Document struct {
	clock Clock

	mu         sync.Mutex
	nextID     int
	listeners  map[Kind][]registration
	scrollLock int
	timers     map[int]Timer
	closed     bool
}

// NewDocument returns an event host using clock for timers. A nil clock uses
// the system clock.
func NewDocument(clock Clock) *Document {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Document{
		clock:     clock,
		listeners: map[Kind][]registration{},
		timers:    map[int]Timer{},
	}
}

// Clock returns the clock backing the document.
func (d *Document) Clock() Clock { return d.clock }

// Now is shorthand for d.Clock().Now().
func (d *Document) Now() time.Time { return d.clock.Now() }

// Listen registers fn for kind. The returned func removes it; calling it more
// than once is harmless.
func (d *Document) Listen(kind Kind, fn Listener) func() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return func() {}
	}
	d.nextID++
	id := d.nextID
	d.listeners[kind] = append(d.listeners[kind], registration{id: id, fn: fn})
	return func() { d.remove(kind, id) }
}

func (d *Document) remove(kind Kind, id int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	regs := d.listeners[kind]
	for i, r := range regs {
		if r.id == id {
			d.listeners[kind] = append(regs[:i:i], regs[i+1:]...)
			return
		}
	}
}

// Listeners returns the number of registered listeners for kind.
func (d *Document) Listeners(kind Kind) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.listeners[kind])
}

// Dispatch delivers ev to the listeners of its kind in registration order,
// stopping early if one of them calls StopPropagation. Listeners added or
// removed during delivery take effect on the next dispatch.
func (d *Document) Dispatch(ev *Event) {
	d.mu.Lock()
	regs := append([]registration(nil), d.listeners[ev.Kind]...)
	d.mu.Unlock()
	for _, r := range regs {
		if ev.stopped {
			return
		}
		r.fn(ev)
	}
}

// LockScroll suppresses background scrolling until the returned func runs.
// Locks are counted; the release func is idempotent.
func (d *Document) LockScroll() func() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return func() {}
	}
	d.scrollLock++
	var once sync.Once
	return func() {
		once.Do(func() {
			d.mu.Lock()
			defer d.mu.Unlock()
			if d.scrollLock > 0 {
				d.scrollLock--
			}
		})
	}
}

// ScrollLocked reports whether any scroll lock is held.
func (d *Document) ScrollLocked() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.scrollLock > 0
}

// AfterFunc schedules fn after delay. The timer is stopped by Close if it has
// not fired yet.
func (d *Document) AfterFunc(delay time.Duration, fn func()) Timer {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return stoppedTimer{}
	}
	d.nextID++
	id := d.nextID
	t := d.clock.AfterFunc(delay, func() {
		d.mu.Lock()
		delete(d.timers, id)
		d.mu.Unlock()
		fn()
	})
	d.timers[id] = t
	return trackedTimer{doc: d, id: id, t: t}
}

// Close removes every listener, stops pending timers and drops scroll locks.
func (d *Document) Close() {
	d.mu.Lock()
	timers := d.timers
	d.timers = map[int]Timer{}
	d.listeners = map[Kind][]registration{}
	d.scrollLock = 0
	d.closed = true
	d.mu.Unlock()
	for _, t := range timers {
		t.Stop()
	}
}

type trackedTimer struct {
	doc *Document
	id  int
	t   Timer
}

func (t trackedTimer) Stop() bool {
	t.doc.mu.Lock()
	delete(t.doc.timers, t.id)
	t.doc.mu.Unlock()
	return t.t.Stop()
}

type stoppedTimer struct{}

func (stoppedTimer) Stop() bool { return false }
