package screen

import (
	"fmt"
	"sync"

	"screen-topology/src/geometry"
)

type fakeProvider struct {
	conv     Convention
	raws     []RawMonitor
	enumErr  error
	pointer  geometry.Point
	ptrErr   error
	panicOn  string
	enumHits int
}

func (f *fakeProvider) Convention() Convention { return f.conv }

func (f *fakeProvider) EnumerateMonitors() ([]RawMonitor, error) {
	f.enumHits++
	if f.panicOn == "enumerate" {
		panic("display server went away")
	}
	if f.enumErr != nil {
		return nil, f.enumErr
	}
	out := make([]RawMonitor, len(f.raws))
	copy(out, f.raws)
	return out, nil
}

func (f *fakeProvider) QueryPointer() (geometry.Point, error) {
	if f.panicOn == "pointer" {
		panic("pointer device went away")
	}
	return f.pointer, f.ptrErr
}

type fakeLocator struct {
	*fakeProvider
	at    RawMonitor
	atErr error
	asked []geometry.Point
}

func (f *fakeLocator) MonitorAtPoint(p geometry.Point) (RawMonitor, error) {
	f.asked = append(f.asked, p)
	return f.at, f.atErr
}

type recordLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *recordLogger) Printf(format string, v ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, fmt.Sprintf(format, v...))
}

func (l *recordLogger) count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.lines)
}

func frame(x0, y0, x1, y1 float64) RawMonitor {
	return RawMonitor{Frame: geometry.NewRect(x0, y0, x1, y1)}
}
