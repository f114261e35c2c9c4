package main

import (
	"strconv"
	"strings"

	"github.com/dev-760/portfolio-v2/internal/view"
)

// maxInputs bounds how many events one request may replay.
const maxInputs = 10

// parseInputs decodes the input query values the client script forwards.
// Each value is one gesture:
//
//	key:ArrowRight
//	click:next | dblclick:image
//	wheel:<dy>
//	swipe:<x0>:<y0>:<x1>:<y1>
//
// Malformed values are skipped.
func parseInputs(values []string) []*view.Event {
	var out []*view.Event
	for _, raw := range values {
		if len(out) >= maxInputs {
			break
		}
		kind, arg, _ := strings.Cut(strings.TrimSpace(raw), ":")
		switch strings.ToLower(kind) {
		case "key":
			if arg != "" {
				out = append(out, &view.Event{Kind: view.KeyDown, Key: view.NormalizeKey(arg)})
			}
		case "click":
			if arg != "" {
				out = append(out, &view.Event{Kind: view.Click, Target: strings.ToLower(arg)})
			}
		case "dblclick":
			if arg != "" {
				out = append(out, &view.Event{Kind: view.DoubleClick, Target: strings.ToLower(arg)})
			}
		case "wheel":
			if dy, err := strconv.ParseFloat(arg, 64); err == nil {
				out = append(out, &view.Event{Kind: view.Wheel, DY: dy})
			}
		case "swipe":
			pts, ok := parseFloats(arg, 4)
			if !ok {
				continue
			}
			out = append(out,
				&view.Event{Kind: view.TouchStart, X: pts[0], Y: pts[1]},
				&view.Event{Kind: view.TouchEnd, X: pts[2], Y: pts[3]},
			)
		}
	}
	return out
}

func parseFloats(s string, n int) ([]float64, bool) {
	parts := strings.Split(s, ":")
	if len(parts) != n {
		return nil, false
	}
	out := make([]float64, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}
