//go:build linux || freebsd || netbsd || openbsd || dragonfly

package platform

import (
	"fmt"

	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"

	"screen-topology/src/geometry"
	"screen-topology/src/screen"
)

func init() {
	register(BackendX11, func(o Options) (screen.Provider, error) { return X11{Display: o.Display}, nil })
}

// X11 enumerates active RandR CRTCs. A fresh connection is opened for every
// call and closed before returning.
type X11 struct {
	// Display is the X display name; empty means $DISPLAY.
	Display string
}

func (X11) Convention() screen.Convention { return screen.TopLeft }

func (x X11) connect() (*xgbutil.XUtil, error) {
	var (
		xu  *xgbutil.XUtil
		err error
	)
	if x.Display != "" {
		xu, err = xgbutil.NewConnDisplay(x.Display)
	} else {
		xu, err = xgbutil.NewConn()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X server: %w", err)
	}
	return xu, nil
}

func (x X11) EnumerateMonitors() ([]screen.RawMonitor, error) {
	xu, err := x.connect()
	if err != nil {
		return nil, err
	}
	defer xu.Conn().Close()

	conn := xu.Conn()
	if err := randr.Init(conn); err != nil {
		return nil, fmt.Errorf("randr init failed: %w", err)
	}
	root := xu.RootWin()

	resources, err := randr.GetScreenResourcesCurrent(conn, root).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get screen resources: %w", err)
	}

	var primary randr.Output
	if reply, err := randr.GetOutputPrimary(conn, root).Reply(); err == nil {
		primary = reply.Output
	}
	desktop, haveWork := currentWorkarea(xu)

	raws := make([]screen.RawMonitor, 0, len(resources.Crtcs))
	for _, crtc := range resources.Crtcs {
		info, err := randr.GetCrtcInfo(conn, crtc, resources.ConfigTimestamp).Reply()
		if err != nil {
			raws = append(raws, screen.RawMonitor{Err: fmt.Errorf("failed to get crtc %d info: %w", crtc, err)})
			continue
		}
		// Skip disabled CRTCs
		if info.Width == 0 || info.Height == 0 || len(info.Outputs) == 0 {
			continue
		}

		raw := screen.RawMonitor{
			Frame:   geometry.FromOriginSize(float64(info.X), float64(info.Y), float64(info.Width), float64(info.Height)),
			Primary: primary != 0 && hasOutput(info.Outputs, primary),
		}
		if haveWork {
			raw.Work, raw.HasWork = clipWorkArea(raw.Frame, desktop)
		}
		raws = append(raws, raw)
	}
	return raws, nil
}

func (x X11) QueryPointer() (geometry.Point, error) {
	xu, err := x.connect()
	if err != nil {
		return geometry.Point{}, err
	}
	defer xu.Conn().Close()

	reply, err := xproto.QueryPointer(xu.Conn(), xu.RootWin()).Reply()
	if err != nil {
		return geometry.Point{}, fmt.Errorf("failed to query pointer: %w", err)
	}
	return geometry.Point{X: float64(reply.RootX), Y: float64(reply.RootY)}, nil
}

// currentWorkarea reads _NET_WORKAREA for the current desktop. The property
// spans the whole root window, not a single monitor.
func currentWorkarea(xu *xgbutil.XUtil) (geometry.Rect, bool) {
	areas, err := ewmh.WorkareaGet(xu)
	if err != nil || len(areas) == 0 {
		return geometry.Rect{}, false
	}
	desk, err := ewmh.CurrentDesktopGet(xu)
	if err != nil || int(desk) >= len(areas) {
		desk = 0
	}
	wa := areas[desk]
	return geometry.FromOriginSize(float64(wa.X), float64(wa.Y), float64(wa.Width), float64(wa.Height)), true
}

// clipWorkArea restricts the desktop work area to one monitor. When they do
// not overlap the monitor reports no work area of its own.
func clipWorkArea(frame, desktop geometry.Rect) (geometry.Rect, bool) {
	clipped := frame.Intersect(desktop)
	if clipped.Empty() {
		return geometry.Rect{}, false
	}
	return clipped, true
}

func hasOutput(outputs []randr.Output, want randr.Output) bool {
	for _, o := range outputs {
		if o == want {
			return true
		}
	}
	return false
}
