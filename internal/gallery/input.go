package gallery

import (
	"math"

	"github.com/dev-760/portfolio-v2/internal/view"
)

// SwipeThreshold is the minimum horizontal travel, in CSS pixels, for a touch
// gesture to count as a swipe.
const SwipeThreshold = 50

// Action is what an input asks the navigator to do.
type Action int

const (
	ActionNone Action = iota
	// ActionPrevious and ActionNext are the labelled controls; they mean the
	// same thing in every direction.
	ActionPrevious
	ActionNext
	// ActionLeft and ActionRight are physical affordances and are swapped
	// under right-to-left direction.
	ActionLeft
	ActionRight
)

// InputKind is the input source an Input came from.
type InputKind string

const (
	InputKey   InputKind = "key"
	InputClick InputKind = "click"
	InputSwipe InputKind = "swipe"
	InputWheel InputKind = "wheel"
)

// Input is a single resolved gesture. For swipes DX and DY are the end point
// minus the start point.
type Input struct {
	Kind   InputKind
	Key    string
	Target string
	DX, DY float64
}

// Resolve maps an input to an action without looking at direction. Wheel
// input never moves the gallery.
func Resolve(in Input) Action {
	switch in.Kind {
	case InputKey:
		switch view.NormalizeKey(in.Key) {
		case view.KeyArrowLeft:
			return ActionLeft
		case view.KeyArrowRight:
			return ActionRight
		}
	case InputClick:
		switch in.Target {
		case view.TargetLeft:
			return ActionLeft
		case view.TargetRight:
			return ActionRight
		case view.TargetPrevious:
			return ActionPrevious
		case view.TargetNext:
			return ActionNext
		}
	case InputSwipe:
		if math.Abs(in.DX) <= SwipeThreshold || math.Abs(in.DX) <= math.Abs(in.DY) {
			return ActionNone
		}
		// dragging the current image to the left pulls in the one on the right
		if in.DX < 0 {
			return ActionRight
		}
		return ActionLeft
	}
	return ActionNone
}
