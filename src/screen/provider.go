package screen

import (
	"errors"

	"screen-topology/src/geometry"
)

// ErrNoMonitor is returned by a PointLocator when no monitor is under the point.
var ErrNoMonitor = errors.New("no monitor at point")

// RawMonitor is one native record, in the provider's own axis convention.
type RawMonitor struct {
	Frame geometry.Rect
	// Work is only meaningful when HasWork is set.
	Work    geometry.Rect
	HasWork bool
	// Primary is the platform's explicit primary flag. Platforms without one
	// leave it false for every record.
	Primary bool
	// Err records a failed per-monitor info query. The slot is kept so the
	// snapshot lines up with native enumeration order.
	Err error
}

// Provider is the seam to the native windowing subsystem. Implementations must
// return a fully materialised list in native enumeration order.
type Provider interface {
	Convention() Convention
	EnumerateMonitors() ([]RawMonitor, error)
	QueryPointer() (geometry.Point, error)
}

// PointLocator is implemented by providers that can answer "the monitor at P"
// directly.
type PointLocator interface {
	MonitorAtPoint(p geometry.Point) (RawMonitor, error)
}

// Logger is the diagnostic sink used on degraded paths.
type Logger interface {
	Printf(format string, v ...any)
}

type discardLogger struct{}

func (discardLogger) Printf(string, ...any) {}
