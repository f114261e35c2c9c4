package overlay

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dev-760/portfolio-v2/internal/catalog"
	"github.com/dev-760/portfolio-v2/internal/gallery"
	"github.com/dev-760/portfolio-v2/internal/view"
)

func mounted(t *testing.T) (*view.Document, *gallery.Navigator, *Controller) {
	t.Helper()
	items := make([]catalog.Artwork, 4)
	for i := range items {
		items[i].ID = fmt.Sprintf("a%d", i)
	}
	doc := view.NewDocument(nil)
	nav := gallery.New(items, gallery.WithTransition(0))
	t.Cleanup(nav.Mount(doc))
	ctl := New(doc, nav)
	t.Cleanup(ctl.Mount())
	return doc, nav, ctl
}

func arrowRight(doc *view.Document) {
	doc.Dispatch(&view.Event{Kind: view.KeyDown, Key: view.KeyArrowRight})
}

func TestOverlaySuppressesArrowKeysUntilClosed(t *testing.T) {
	doc, nav, ctl := mounted(t)

	arrowRight(doc)
	require.Equal(t, 1, nav.Position())

	require.True(t, ctl.Open())
	require.True(t, doc.ScrollLocked())
	arrowRight(doc)
	arrowRight(doc)
	require.Equal(t, 1, nav.Position())

	doc.Dispatch(&view.Event{Kind: view.KeyDown, Key: view.KeyEscape})
	require.Equal(t, Closed, ctl.State())
	require.False(t, doc.ScrollLocked())
	arrowRight(doc)
	require.Equal(t, 2, nav.Position())
}

func TestOverlaySuppressesPointerAndSwipe(t *testing.T) {
	doc, nav, ctl := mounted(t)
	ctl.Open()

	doc.Dispatch(&view.Event{Kind: view.Click, Target: view.TargetNext})
	doc.Dispatch(&view.Event{Kind: view.Click, Target: view.TargetRight})
	doc.Dispatch(&view.Event{Kind: view.TouchStart, X: 300, Y: 10})
	doc.Dispatch(&view.Event{Kind: view.TouchEnd, X: 100, Y: 20})
	require.Equal(t, 0, nav.Position())
	require.True(t, ctl.IsOpen())

	doc.Dispatch(&view.Event{Kind: view.Click, Target: view.TargetBackdrop})
	doc.Dispatch(&view.Event{Kind: view.Click, Target: view.TargetNext})
	require.Equal(t, 1, nav.Position())
}

func TestOpenTriggers(t *testing.T) {
	doc, _, ctl := mounted(t)

	doc.Dispatch(&view.Event{Kind: view.DoubleClick, Target: view.TargetImage})
	require.True(t, ctl.IsOpen())
	require.False(t, ctl.Open())
	ctl.Close()

	doc.Dispatch(&view.Event{Kind: view.Click, Target: view.TargetFullscreen})
	require.True(t, ctl.IsOpen())
}

func TestImageClickDoesNotClose(t *testing.T) {
	doc, _, ctl := mounted(t)
	ctl.Open()

	ev := &view.Event{Kind: view.Click, Target: view.TargetImage}
	doc.Dispatch(ev)
	require.True(t, ctl.IsOpen())
	require.True(t, ev.Stopped())

	doc.Dispatch(&view.Event{Kind: view.Click, Target: view.TargetBackdrop})
	require.False(t, ctl.IsOpen())

	ctl.Open()
	doc.Dispatch(&view.Event{Kind: view.Click, Target: view.TargetClose})
	require.False(t, ctl.IsOpen())
}

func TestEscapeListenerOnlyWhileOpen(t *testing.T) {
	doc := view.NewDocument(nil)
	ctl := New(doc, nil)
	require.Zero(t, doc.Listeners(view.KeyDown))
	ctl.Open()
	require.Equal(t, 1, doc.Listeners(view.KeyDown))
	ctl.Close()
	require.Zero(t, doc.Listeners(view.KeyDown))
	require.False(t, ctl.Close())
}

func TestUnmountReleasesEverything(t *testing.T) {
	doc, nav, ctl := mounted(t)
	ctl.Open()
	require.True(t, nav.Suspended())

	ctl.Unmount()
	require.False(t, nav.Suspended())
	require.False(t, doc.ScrollLocked())
	require.Zero(t, doc.Listeners(view.DoubleClick))

	// a second unmount must not release twice
	ctl.Unmount()
	other := nav.Suspend()
	require.True(t, nav.Suspended())
	other()
}

func TestStateString(t *testing.T) {
	require.Equal(t, "open", Open.String())
	require.Equal(t, "closed", Closed.String())
}
