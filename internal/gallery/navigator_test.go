package gallery

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dev-760/portfolio-v2/internal/catalog"
	"github.com/dev-760/portfolio-v2/internal/i18n"
	"github.com/dev-760/portfolio-v2/internal/view"
)

func seq(n int) []catalog.Artwork {
	out := make([]catalog.Artwork, n)
	for i := range out {
		out[i] = catalog.Artwork{ID: fmt.Sprintf("art-%d", i)}
	}
	return out
}

// unlocked returns a navigator without the paged transition lock.
func unlocked(n int, opts ...Option) *Navigator {
	return New(seq(n), append([]Option{WithTransition(0)}, opts...)...)
}

func TestStepNextClampsAtEnd(t *testing.T) {
	for n := 1; n <= 5; n++ {
		for start := 0; start < n; start++ {
			nav := unlocked(n)
			require.True(t, nav.Seek(start))
			for i := 0; i < n+3; i++ {
				nav.StepNext()
			}
			require.Equal(t, n-1, nav.Position())
			require.False(t, nav.StepNext())
			require.Equal(t, n-1, nav.Position())
		}
	}
}

func TestStepPreviousClampsAtStart(t *testing.T) {
	for n := 1; n <= 5; n++ {
		for start := 0; start < n; start++ {
			nav := unlocked(n)
			require.True(t, nav.Seek(start))
			for i := 0; i < n+3; i++ {
				nav.StepPrevious()
			}
			require.Zero(t, nav.Position())
			require.False(t, nav.StepPrevious())
		}
	}
}

func TestRTLSwapsLeftAndRight(t *testing.T) {
	inputs := []struct {
		left, right Input
	}{
		{Input{Kind: InputKey, Key: view.KeyArrowLeft}, Input{Kind: InputKey, Key: view.KeyArrowRight}},
		{Input{Kind: InputClick, Target: view.TargetLeft}, Input{Kind: InputClick, Target: view.TargetRight}},
		{Input{Kind: InputSwipe, DX: 80}, Input{Kind: InputSwipe, DX: -80}},
	}
	for _, in := range inputs {
		for start := 0; start < 4; start++ {
			rtl := unlocked(4, WithDirection(i18n.RTL))
			ltr := unlocked(4, WithDirection(i18n.LTR))
			rtl.Seek(start)
			ltr.Seek(start)
			rtl.Handle(in.left)
			ltr.Handle(in.right)
			require.Equal(t, ltr.Position(), rtl.Position(), "start=%d input=%+v", start, in.left)
		}
	}
}

func TestLabelledActionsIgnoreDirection(t *testing.T) {
	for _, dir := range []i18n.Direction{i18n.LTR, i18n.RTL} {
		nav := unlocked(3, WithDirection(dir))
		require.True(t, nav.Handle(Input{Kind: InputClick, Target: view.TargetNext}))
		require.Equal(t, 1, nav.Position())
		require.True(t, nav.Handle(Input{Kind: InputClick, Target: view.TargetPrevious}))
		require.Zero(t, nav.Position())
	}
}

func TestSwipeThreshold(t *testing.T) {
	nav := unlocked(3)
	require.False(t, nav.Handle(Input{Kind: InputSwipe, DX: -SwipeThreshold}))
	require.False(t, nav.Handle(Input{Kind: InputSwipe, DX: -60, DY: 90}))
	require.True(t, nav.Handle(Input{Kind: InputSwipe, DX: -51}))
	require.Equal(t, 1, nav.Position())
}

func TestWheelDoesNotMoveGallery(t *testing.T) {
	nav := unlocked(3)
	require.False(t, nav.Handle(Input{Kind: InputWheel, DY: 120}))
	require.Zero(t, nav.Position())
}

func TestSeriesSequenceIsStrict(t *testing.T) {
	c, err := catalog.Load("../../content")
	require.NoError(t, err)
	items, s, ok := c.Sequence("passages")
	require.True(t, ok)

	nav := New(items, WithTransition(0))
	last := items[len(items)-1].ID
	require.True(t, nav.Select(last))
	require.False(t, nav.StepNext())
	cur, _ := nav.Current()
	require.Equal(t, last, cur.ID)
	_, hasNext := nav.Next()
	require.False(t, hasNext)

	// the unscoped catalog continues after the series' last item
	all := c.Artworks()
	idx := -1
	for i, a := range all {
		if a.ID == last {
			idx = i
		}
	}
	require.Less(t, idx, len(all)-1)
	for _, a := range nav.Items() {
		require.Equal(t, s.Slug, a.Series)
	}
}

func TestTransitionLockDropsSteps(t *testing.T) {
	clock := view.NewManualClock(time.Unix(0, 0))
	nav := New(seq(5), WithClock(clock))

	require.True(t, nav.StepNext())
	require.True(t, nav.Locked())
	require.False(t, nav.StepNext())
	require.False(t, nav.StepNext())
	require.Equal(t, 1, nav.Position())

	clock.Advance(DefaultTransition)
	require.False(t, nav.Locked())
	require.True(t, nav.StepNext())
	require.Equal(t, 2, nav.Position())
}

func TestContinuousModeHasNoLock(t *testing.T) {
	clock := view.NewManualClock(time.Unix(0, 0))
	nav := New(seq(3), WithClock(clock), WithMode(ModeContinuous))
	require.True(t, nav.StepNext())
	require.True(t, nav.StepNext())
	require.False(t, nav.Locked())
}

func TestRevealDoesNotMovePosition(t *testing.T) {
	nav := New(seq(4), WithMode(ModeContinuous))
	require.False(t, nav.Reveal(2, 0.1))
	require.True(t, nav.Reveal(2, RevealThreshold))
	require.True(t, nav.Reveal(2, 0))
	require.True(t, nav.Visible(2))
	require.False(t, nav.Visible(1))
	require.False(t, nav.Reveal(9, 1))
	require.Zero(t, nav.Position())
}

func TestEmptySequence(t *testing.T) {
	nav := New(nil)
	_, ok := nav.Current()
	require.False(t, ok)
	require.False(t, nav.StepNext())
	require.False(t, nav.StepPrevious())
	require.False(t, nav.Select("anything"))
	require.Zero(t, nav.Position())
}

func TestSelectUnknownKeepsPosition(t *testing.T) {
	nav := unlocked(3)
	require.True(t, nav.Select("art-2"))
	require.False(t, nav.Select("missing"))
	require.Equal(t, 2, nav.Position())
}

func TestSuspendKeys(t *testing.T) {
	nav := unlocked(3)
	release := nav.SuspendKeys()
	require.False(t, nav.Handle(Input{Kind: InputKey, Key: view.KeyArrowRight}))
	// pointer input still works
	require.True(t, nav.Handle(Input{Kind: InputClick, Target: view.TargetNext}))
	release()
	release()
	require.False(t, nav.KeysSuspended())
	require.True(t, nav.Handle(Input{Kind: InputKey, Key: view.KeyArrowRight}))
	require.Equal(t, 2, nav.Position())
}

func TestSuspendBlocksEveryInput(t *testing.T) {
	nav := unlocked(3)
	release := nav.Suspend()
	require.True(t, nav.Suspended())
	require.True(t, nav.KeysSuspended())

	require.False(t, nav.Handle(Input{Kind: InputKey, Key: view.KeyArrowRight}))
	require.False(t, nav.Handle(Input{Kind: InputClick, Target: view.TargetNext}))
	require.False(t, nav.Handle(Input{Kind: InputClick, Target: view.TargetRight}))
	require.False(t, nav.Handle(Input{Kind: InputSwipe, DX: -200, DY: 5}))
	require.Equal(t, 0, nav.Position())

	release()
	release()
	require.False(t, nav.Suspended())
	require.True(t, nav.Handle(Input{Kind: InputClick, Target: view.TargetNext}))
	require.Equal(t, 1, nav.Position())
}

func TestMountRoutesDocumentEvents(t *testing.T) {
	doc := view.NewDocument(nil)
	nav := unlocked(4)
	unmount := nav.Mount(doc)

	doc.Dispatch(&view.Event{Kind: view.KeyDown, Key: view.KeyArrowRight})
	doc.Dispatch(&view.Event{Kind: view.TouchStart, X: 200, Y: 10})
	doc.Dispatch(&view.Event{Kind: view.TouchEnd, X: 100, Y: 20})
	require.Equal(t, 2, nav.Position())

	unmount()
	require.Zero(t, doc.Listeners(view.KeyDown))
	require.Zero(t, doc.Listeners(view.TouchEnd))
	doc.Dispatch(&view.Event{Kind: view.KeyDown, Key: view.KeyArrowRight})
	require.Equal(t, 2, nav.Position())
}

func TestParseMode(t *testing.T) {
	require.Equal(t, ModePaged, ParseMode(""))
	require.Equal(t, ModePaged, ParseMode("weird"))
	require.Equal(t, ModeContinuous, ParseMode("Scroll"))
}

func TestPeekMatchesApplyWithoutMoving(t *testing.T) {
	for _, dir := range []i18n.Direction{i18n.LTR, i18n.RTL} {
		for _, a := range []Action{ActionPrevious, ActionNext, ActionLeft, ActionRight} {
			for start := 0; start < 3; start++ {
				nav := unlocked(3, WithDirection(dir))
				nav.Seek(start)
				target, ok := nav.Peek(a)
				require.Equal(t, start, nav.Position())
				moved := nav.Apply(a)
				require.Equal(t, ok, moved)
				require.Equal(t, target, nav.Position())
			}
		}
	}
	_, ok := New(nil).Peek(ActionNext)
	require.False(t, ok)
}
