package screen

import (
	"fmt"
	"strings"

	"screen-topology/src/geometry"
)

// Convention names the native axis model of a provider.
type Convention int

const (
	// TopLeft platforms already match the unified convention.
	TopLeft Convention = iota
	// BottomLeft platforms put the origin at the bottom-left of the primary
	// display with Y increasing upward.
	BottomLeft
)

func (c Convention) String() string {
	switch c {
	case TopLeft:
		return "top-left"
	case BottomLeft:
		return "bottom-left"
	default:
		return fmt.Sprintf("Convention(%d)", int(c))
	}
}

// ParseConvention accepts "top-left" and "bottom-left" (case-insensitive).
func ParseConvention(s string) (Convention, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "top-left", "topleft":
		return TopLeft, nil
	case "bottom-left", "bottomleft":
		return BottomLeft, nil
	default:
		return TopLeft, fmt.Errorf("unknown coordinate convention %q", s)
	}
}

// Rect maps a native rectangle into unified coordinates. maxY is ignored for
// TopLeft.
func (c Convention) Rect(r geometry.Rect, maxY float64) geometry.Rect {
	if c == BottomLeft {
		return FlipRect(r, maxY)
	}
	return r
}

// VirtualDesktopBound is the flip axis: the highest top edge (native Y1) over
// every record that was queried successfully.
func VirtualDesktopBound(raws []RawMonitor) float64 {
	var total geometry.Rect
	seen := false
	for _, raw := range raws {
		if raw.Err != nil {
			continue
		}
		if !seen {
			total, seen = raw.Frame, true
			continue
		}
		total = total.Union(raw.Frame)
	}
	return total.Y1
}

// FlipRect moves a bottom-left-origin rectangle below the flip axis maxY,
// using the rectangle's own height so vertically stacked monitors keep their
// relative placement.
func FlipRect(r geometry.Rect, maxY float64) geometry.Rect {
	h := r.Height()
	return geometry.NewRect(
		r.X0,
		(maxY-r.Y0)-h,
		r.X1,
		(maxY-r.Y1)+h,
	)
}

// Normalize runs both passes: the flip axis is computed over the whole set
// before any rectangle is flipped.
func Normalize(raws []RawMonitor, c Convention) []Monitor {
	var maxY float64
	if c == BottomLeft {
		maxY = VirtualDesktopBound(raws)
	}
	return NormalizeWithBound(raws, c, maxY)
}

// NormalizeWithBound converts every record against an already known flip axis
// and elects the primary monitor.
func NormalizeWithBound(raws []RawMonitor, c Convention, maxY float64) []Monitor {
	if len(raws) == 0 {
		return nil
	}
	primary := electPrimary(raws)
	out := make([]Monitor, len(raws))
	for i, raw := range raws {
		out[i] = toMonitor(raw, c, maxY, i == primary)
	}
	return out
}

func toMonitor(raw RawMonitor, c Convention, maxY float64, primary bool) Monitor {
	if raw.Err != nil {
		return NewMonitor(primary, geometry.ZeroRect, geometry.ZeroRect)
	}
	full := c.Rect(raw.Frame, maxY)
	work := full
	if raw.HasWork {
		work = c.Rect(raw.Work, maxY)
	}
	return NewMonitor(primary, full, work)
}

// electPrimary picks the first explicitly flagged record, else the first
// record that was queried successfully, else slot 0.
func electPrimary(raws []RawMonitor) int {
	firstOK := -1
	for i, raw := range raws {
		if raw.Err != nil {
			continue
		}
		if raw.Primary {
			return i
		}
		if firstOK < 0 {
			firstOK = i
		}
	}
	if firstOK < 0 {
		return 0
	}
	return firstOK
}

// PointerFlip selects how a bottom-left pointer position is flipped.
type PointerFlip int

const (
	// FlipFromMonitor measures the native Y against the containing monitor's
	// flipped top edge: y = monitor.Y1 - y.
	FlipFromMonitor PointerFlip = iota
	// FlipFromDesktop measures the native Y against the global flip axis:
	// y = maxY - y.
	FlipFromDesktop
)

func (f PointerFlip) String() string {
	if f == FlipFromDesktop {
		return "desktop"
	}
	return "monitor"
}

// ParsePointerFlip accepts "monitor" (default) and "desktop".
func ParsePointerFlip(s string) (PointerFlip, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "monitor":
		return FlipFromMonitor, nil
	case "desktop":
		return FlipFromDesktop, nil
	default:
		return FlipFromMonitor, fmt.Errorf("unknown pointer flip mode %q", s)
	}
}

// FlipPoint converts a bottom-left pointer position using the containing
// monitor's unified rectangle or the flip axis, depending on f.
func (f PointerFlip) FlipPoint(p geometry.Point, m Monitor, maxY float64) geometry.Point {
	if f == FlipFromDesktop {
		return geometry.Point{X: p.X, Y: maxY - p.Y}
	}
	return geometry.Point{X: p.X, Y: m.FullArea().Y1 - p.Y}
}
