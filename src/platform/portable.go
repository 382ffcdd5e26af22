//go:build cgo && (windows || darwin)

package platform

import (
	"github.com/go-vgo/robotgo"
	"github.com/kbinani/screenshot"

	"screen-topology/src/geometry"
	"screen-topology/src/screen"
)

func init() {
	register(BackendPortable, func(Options) (screen.Provider, error) { return Portable{}, nil })
}

// Portable combines the capture library's display bounds with robotgo's
// pointer location. Both report top-left coordinates relative to the primary
// display. Display 0 is the primary one, so no explicit flag is set.
type Portable struct{}

func (Portable) Convention() screen.Convention { return screen.TopLeft }

func (Portable) EnumerateMonitors() ([]screen.RawMonitor, error) {
	n := screenshot.NumActiveDisplays()
	if n <= 0 {
		return nil, ErrNoDisplays
	}
	raws := make([]screen.RawMonitor, n)
	for i := 0; i < n; i++ {
		raws[i] = screen.RawMonitor{Frame: geometry.FromImageRect(screenshot.GetDisplayBounds(i))}
	}
	return raws, nil
}

func (Portable) QueryPointer() (geometry.Point, error) {
	x, y := robotgo.Location()
	return geometry.Point{X: float64(x), Y: float64(y)}, nil
}
