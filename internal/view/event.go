package view

import "strings"

// Kind identifies an input source.
type Kind string

const (
	KeyDown     Kind = "keydown"
	Click       Kind = "click"
	DoubleClick Kind = "dblclick"
	Wheel       Kind = "wheel"
	TouchStart  Kind = "touchstart"
	TouchEnd    Kind = "touchend"
)

// Keyboard key values, as reported by KeyboardEvent.key.
const (
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeyEnter      = "Enter"
	KeySpace      = " "
	KeyEscape     = "Escape"
)

// Click targets rendered by the gallery and overlay views.
const (
	TargetLeft       = "left"
	TargetRight      = "right"
	TargetPrevious   = "previous"
	TargetNext       = "next"
	TargetImage      = "image"
	TargetBackdrop   = "backdrop"
	TargetClose      = "close"
	TargetFullscreen = "fullscreen"
)

// Event is a single input delivered through a Document.
type Event struct {
	Kind   Kind
	Key    string
	Target string
	// X and Y carry the touch point for touch events.
	X, Y float64
	// DX and DY carry the wheel delta.
	DX, DY float64

	stopped bool
}

// StopPropagation prevents listeners registered after the current one from
// seeing the event.
func (e *Event) StopPropagation() { e.stopped = true }

// Stopped reports whether a listener called StopPropagation.
func (e *Event) Stopped() bool { return e.stopped }

// NormalizeKey maps the aliases some browsers and query strings use onto the
// canonical key values above.
func NormalizeKey(raw string) string {
	switch strings.ToLower(raw) {
	case "left", "arrowleft":
		return KeyArrowLeft
	case "right", "arrowright":
		return KeyArrowRight
	case "up", "arrowup":
		return KeyArrowUp
	case "down", "arrowdown":
		return KeyArrowDown
	case "enter":
		return KeyEnter
	case " ", "space", "spacebar":
		return KeySpace
	case "esc", "escape":
		return KeyEscape
	}
	return raw
}
