package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDispatchOrderAndStopPropagation(t *testing.T) {
	doc := NewDocument(nil)
	var got []string
	doc.Listen(Click, func(ev *Event) {
		got = append(got, "first")
		if ev.Target == TargetImage {
			ev.StopPropagation()
		}
	})
	doc.Listen(Click, func(*Event) { got = append(got, "second") })

	doc.Dispatch(&Event{Kind: Click, Target: TargetBackdrop})
	require.Equal(t, []string{"first", "second"}, got)

	got = nil
	ev := &Event{Kind: Click, Target: TargetImage}
	doc.Dispatch(ev)
	require.Equal(t, []string{"first"}, got)
	require.True(t, ev.Stopped())
}

func TestListenReleaseIsIdempotent(t *testing.T) {
	doc := NewDocument(nil)
	calls := 0
	off := doc.Listen(KeyDown, func(*Event) { calls++ })
	keep := doc.Listen(KeyDown, func(*Event) {})
	off()
	off()
	require.Equal(t, 1, doc.Listeners(KeyDown))
	doc.Dispatch(&Event{Kind: KeyDown, Key: KeyEscape})
	require.Zero(t, calls)
	keep()
	require.Zero(t, doc.Listeners(KeyDown))
}

func TestScrollLockIsCounted(t *testing.T) {
	doc := NewDocument(nil)
	a := doc.LockScroll()
	b := doc.LockScroll()
	require.True(t, doc.ScrollLocked())
	a()
	a()
	require.True(t, doc.ScrollLocked())
	b()
	require.False(t, doc.ScrollLocked())
}

func TestCloseTearsDownEverything(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))
	doc := NewDocument(clock)
	fired := false
	doc.Listen(Wheel, func(*Event) {})
	doc.LockScroll()
	doc.AfterFunc(time.Second, func() { fired = true })
	require.Equal(t, 1, clock.Pending())

	doc.Close()
	require.Zero(t, doc.Listeners(Wheel))
	require.False(t, doc.ScrollLocked())
	require.Zero(t, clock.Pending())

	clock.Advance(2 * time.Second)
	require.False(t, fired)

	// registrations after Close are inert
	doc.Listen(Wheel, func(*Event) {})
	require.Zero(t, doc.Listeners(Wheel))
}

func TestManualClockFiresInDeadlineOrder(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))
	var order []int
	clock.AfterFunc(300*time.Millisecond, func() { order = append(order, 3) })
	clock.AfterFunc(100*time.Millisecond, func() { order = append(order, 1) })
	stop := clock.AfterFunc(200*time.Millisecond, func() { order = append(order, 2) })
	require.True(t, stop.Stop())
	require.False(t, stop.Stop())

	clock.Advance(150 * time.Millisecond)
	require.Equal(t, []int{1}, order)
	clock.Advance(time.Second)
	require.Equal(t, []int{1, 3}, order)
	require.Equal(t, time.Unix(0, 0).Add(1150*time.Millisecond), clock.Now())
}

func TestNormalizeKey(t *testing.T) {
	require.Equal(t, KeyArrowLeft, NormalizeKey("left"))
	require.Equal(t, KeySpace, NormalizeKey("Space"))
	require.Equal(t, KeyEscape, NormalizeKey("Esc"))
	require.Equal(t, "q", NormalizeKey("q"))
}
