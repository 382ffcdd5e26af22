// Package screen reconciles the native monitor models of each platform into a
// single snapshot of Monitor values with top-left origin and Y pointing down.
//
// Every call is a fresh snapshot. Nothing is cached and nothing here returns an
// error to the caller: failed native queries degrade to empty results or zero
// placeholders and leave a line in the log.
package screen

import (
	"fmt"

	"screen-topology/src/geometry"
)

// Monitor is an immutable description of one display in unified coordinates.
type Monitor struct {
	primary  bool
	fullArea geometry.Rect
	workArea geometry.Rect
}

// NewMonitor builds a Monitor. The work area is not required to lie inside the
// full area; platforms report them independently.
func NewMonitor(primary bool, fullArea, workArea geometry.Rect) Monitor {
	return Monitor{primary: primary, fullArea: fullArea, workArea: workArea}
}

func (m Monitor) IsPrimary() bool { return m.primary }

// FullArea is the complete addressable rectangle of the monitor.
func (m Monitor) FullArea() geometry.Rect { return m.fullArea }

// WorkArea excludes OS reserved regions such as menu bars, docks and taskbars.
func (m Monitor) WorkArea() geometry.Rect { return m.workArea }

func (m Monitor) String() string {
	kind := "secondary"
	if m.primary {
		kind = "primary"
	}
	return fmt.Sprintf("%s full=%v work=%v", kind, m.fullArea, m.workArea)
}

// FindContaining returns the index of the first monitor whose full area
// contains p, or -1.
func FindContaining(monitors []Monitor, p geometry.Point) int {
	for i, m := range monitors {
		if m.fullArea.Contains(p) {
			return i
		}
	}
	return -1
}

// DisplayRect is the bounding box of every monitor's full area.
func DisplayRect(monitors []Monitor) geometry.Rect {
	if len(monitors) == 0 {
		return geometry.ZeroRect
	}
	r := monitors[0].fullArea
	for _, m := range monitors[1:] {
		r = r.Union(m.fullArea)
	}
	return r
}
