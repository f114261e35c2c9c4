package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dev-760/portfolio-v2/internal/view"
)

func TestParseInputs(t *testing.T) {
	events := parseInputs([]string{
		"key:right",
		"key:Space",
		"click:Next",
		"dblclick:image",
		"wheel:12.5",
		"swipe:300:100:200:110",
		"wheel:abc",
		"swipe:1:2:3",
		"hover:image",
		"key:",
	})
	require.Len(t, events, 7)
	require.Equal(t, view.Event{Kind: view.KeyDown, Key: view.KeyArrowRight}, *events[0])
	require.Equal(t, view.KeySpace, events[1].Key)
	require.Equal(t, view.Event{Kind: view.Click, Target: view.TargetNext}, *events[2])
	require.Equal(t, view.DoubleClick, events[3].Kind)
	require.Equal(t, 12.5, events[4].DY)
	require.Equal(t, view.Event{Kind: view.TouchStart, X: 300, Y: 100}, *events[5])
	require.Equal(t, view.Event{Kind: view.TouchEnd, X: 200, Y: 110}, *events[6])
}

func TestParseInputsIsBounded(t *testing.T) {
	raw := make([]string, maxInputs+5)
	for i := range raw {
		raw[i] = "key:ArrowRight"
	}
	require.Len(t, parseInputs(raw), maxInputs)
}

func TestParsePage(t *testing.T) {
	require.Equal(t, 0, parsePage("", 4))
	require.Equal(t, 0, parsePage("0", 4))
	require.Equal(t, 2, parsePage("3", 4))
	require.Equal(t, 3, parsePage("9", 4))
	require.Equal(t, 0, parsePage("3", 0))
}
