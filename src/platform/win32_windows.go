//go:build windows

package platform

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"

	"screen-topology/src/geometry"
	"screen-topology/src/screen"
)

const monitorDefaultToNull = 0

var (
	user32                  = windows.NewLazySystemDLL("user32.dll")
	procEnumDisplayMonitors = user32.NewProc("EnumDisplayMonitors")
	procMonitorFromPoint    = user32.NewProc("MonitorFromPoint")
)

// The enumeration callback is created once: Windows callbacks are a finite
// resource and are never released.
var (
	enumMu      sync.Mutex
	enumHandles []win.HMONITOR
	enumProc    = windows.NewCallback(func(h win.HMONITOR, _ win.HDC, _ *win.RECT, _ uintptr) uintptr {
		enumHandles = append(enumHandles, h)
		return 1
	})
)

func init() {
	register(BackendWin32, func(Options) (screen.Provider, error) { return Win32{}, nil })
}

// Win32 reads monitors through EnumDisplayMonitors and GetMonitorInfoW.
// Coordinates are virtual-screen pixels with a top-left origin.
type Win32 struct{}

func (Win32) Convention() screen.Convention { return screen.TopLeft }

func (Win32) EnumerateMonitors() ([]screen.RawMonitor, error) {
	handles, err := enumDisplayMonitors()
	if err != nil {
		return nil, err
	}
	raws := make([]screen.RawMonitor, len(handles))
	for i, h := range handles {
		raws[i] = monitorInfo(h)
	}
	return raws, nil
}

func (Win32) QueryPointer() (geometry.Point, error) {
	var pt win.POINT
	if !win.GetCursorPos(&pt) {
		return geometry.Point{}, fmt.Errorf("GetCursorPos failed: %w", windows.GetLastError())
	}
	return geometry.Point{X: float64(pt.X), Y: float64(pt.Y)}, nil
}

// MonitorAtPoint asks MonitorFromPoint without a default, so a point outside
// every monitor reports screen.ErrNoMonitor.
func (Win32) MonitorAtPoint(p geometry.Point) (screen.RawMonitor, error) {
	h := monitorFromPoint(win.POINT{X: int32(p.X), Y: int32(p.Y)})
	if h == 0 {
		return screen.RawMonitor{}, screen.ErrNoMonitor
	}
	return monitorInfo(h), nil
}

func enumDisplayMonitors() ([]win.HMONITOR, error) {
	enumMu.Lock()
	defer enumMu.Unlock()

	enumHandles = nil
	ret, _, err := procEnumDisplayMonitors.Call(0, 0, enumProc, 0)
	handles := enumHandles
	enumHandles = nil
	if ret == 0 {
		return nil, fmt.Errorf("EnumDisplayMonitors failed: %w", err)
	}
	return handles, nil
}

func monitorInfo(h win.HMONITOR) screen.RawMonitor {
	var mi win.MONITORINFO
	mi.CbSize = uint32(unsafe.Sizeof(mi))
	if !win.GetMonitorInfo(h, &mi) {
		return screen.RawMonitor{Err: fmt.Errorf("GetMonitorInfoW failed for monitor %#x: %w", uintptr(h), windows.GetLastError())}
	}
	return screen.RawMonitor{
		Frame:   rectFromRECT(mi.RcMonitor),
		Work:    rectFromRECT(mi.RcWork),
		HasWork: true,
		Primary: mi.DwFlags&win.MONITORINFOF_PRIMARY != 0,
	}
}

// monitorFromPoint passes POINT by value: packed into one register on 64-bit,
// as two arguments on 32-bit.
func monitorFromPoint(pt win.POINT) win.HMONITOR {
	var r uintptr
	if unsafe.Sizeof(uintptr(0)) == 8 {
		packed := uint64(uint32(pt.X)) | uint64(uint32(pt.Y))<<32
		r, _, _ = procMonitorFromPoint.Call(uintptr(packed), monitorDefaultToNull)
	} else {
		r, _, _ = procMonitorFromPoint.Call(uintptr(pt.X), uintptr(pt.Y), monitorDefaultToNull)
	}
	return win.HMONITOR(r)
}

func rectFromRECT(r win.RECT) geometry.Rect {
	return geometry.NewRect(float64(r.Left), float64(r.Top), float64(r.Right), float64(r.Bottom))
}
