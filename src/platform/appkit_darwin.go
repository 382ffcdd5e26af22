//go:build darwin && cgo

package platform

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework AppKit
#import <AppKit/AppKit.h>

typedef struct {
	double x, y, w, h;
	double vx, vy, vw, vh;
} topoScreen;

static int topoScreenCount(void) {
	@autoreleasepool {
		return (int)[[NSScreen screens] count];
	}
}

static int topoScreens(topoScreen *out, int max) {
	@autoreleasepool {
		NSArray<NSScreen *> *screens = [NSScreen screens];
		int n = (int)[screens count];
		if (n > max) {
			n = max;
		}
		for (int i = 0; i < n; i++) {
			NSScreen *s = [screens objectAtIndex:i];
			NSRect f = [s frame];
			NSRect v = [s visibleFrame];
			out[i].x = f.origin.x;
			out[i].y = f.origin.y;
			out[i].w = f.size.width;
			out[i].h = f.size.height;
			out[i].vx = v.origin.x;
			out[i].vy = v.origin.y;
			out[i].vw = v.size.width;
			out[i].vh = v.size.height;
		}
		return n;
	}
}

static void topoMouseLocation(double *x, double *y) {
	@autoreleasepool {
		NSPoint p = [NSEvent mouseLocation];
		*x = p.x;
		*y = p.y;
	}
}
*/
import "C"

import (
	"screen-topology/src/geometry"
	"screen-topology/src/screen"
)

func init() {
	register(BackendAppKit, func(Options) (screen.Provider, error) { return AppKit{}, nil })
}

// AppKit reads NSScreen frames. Coordinates have their origin at the
// bottom-left of the main screen with Y pointing up, and screens[0] is the
// main screen; there is no separate primary flag.
type AppKit struct{}

func (AppKit) Convention() screen.Convention { return screen.BottomLeft }

func (AppKit) EnumerateMonitors() ([]screen.RawMonitor, error) {
	n := int(C.topoScreenCount())
	if n <= 0 {
		return nil, ErrNoDisplays
	}
	buf := make([]C.topoScreen, n)
	n = int(C.topoScreens(&buf[0], C.int(n)))

	raws := make([]screen.RawMonitor, 0, n)
	for _, s := range buf[:n] {
		raws = append(raws, screen.RawMonitor{
			Frame:   geometry.FromOriginSize(float64(s.x), float64(s.y), float64(s.w), float64(s.h)),
			Work:    geometry.FromOriginSize(float64(s.vx), float64(s.vy), float64(s.vw), float64(s.vh)),
			HasWork: true,
		})
	}
	return raws, nil
}

func (AppKit) QueryPointer() (geometry.Point, error) {
	var x, y C.double
	C.topoMouseLocation(&x, &y)
	return geometry.Point{X: float64(x), Y: float64(y)}, nil
}
