package screen

import (
	"fmt"

	"screen-topology/src/geometry"
)

// Resolver finds the pointer position and the monitor beneath it.
type Resolver struct {
	registry *Registry
	flip     PointerFlip
	logger   Logger
}

// NewResolver returns a Resolver that enumerates through reg.
func NewResolver(reg *Registry, opts ...Option) *Resolver {
	o := buildOptions(opts)
	if reg == nil {
		reg = NewRegistry(nil, opts...)
	}
	return &Resolver{registry: reg, flip: o.flip, logger: o.logger}
}

// PointerPosition returns the pointer in unified coordinates and the monitor
// containing it. When the platform cannot answer, or no monitor contains the
// point, it returns the zero point and a zero, non-primary Monitor.
func (r *Resolver) PointerPosition() (geometry.Point, Monitor) {
	provider := r.registry.provider
	if provider == nil {
		r.logger.Printf("screen: failed to query pointer: %v", errNoProvider)
		return geometry.Point{}, Monitor{}
	}

	raw, err := r.queryPointer(provider)
	if err != nil {
		r.logger.Printf("screen: failed to query pointer: %v", err)
		return geometry.Point{}, Monitor{}
	}

	if locator, ok := provider.(PointLocator); ok {
		return r.locate(provider, locator, raw)
	}
	return r.scan(raw)
}

func (r *Resolver) locate(provider Provider, locator PointLocator, raw geometry.Point) (geometry.Point, Monitor) {
	rm, err := r.monitorAtPoint(locator, raw)
	if err != nil {
		r.logger.Printf("screen: failed to get monitor at %v: %v", raw, err)
		return geometry.Point{}, Monitor{}
	}
	if rm.Err != nil {
		r.logger.Printf("screen: failed to get monitor info at %v: %v", raw, rm.Err)
		return geometry.Point{}, Monitor{}
	}

	conv := provider.Convention()
	if conv == TopLeft {
		return raw, toMonitor(rm, TopLeft, 0, rm.Primary)
	}

	// The flip axis is a property of the whole set, so a bottom-left locator
	// still needs an enumeration pass.
	snap := r.registry.snapshot()
	m := toMonitor(rm, conv, snap.maxY, rm.Primary)
	return r.flip.FlipPoint(raw, m, snap.maxY), m
}

func (r *Resolver) scan(raw geometry.Point) (geometry.Point, Monitor) {
	snap := r.registry.snapshot()

	if snap.convention == TopLeft {
		for i, m := range snap.monitors {
			if snap.raws[i].Err != nil {
				continue
			}
			if m.FullArea().Contains(raw) {
				return raw, m
			}
		}
	} else {
		// Containment is tested in native space; the point is flipped only
		// once its monitor is known.
		for i, rm := range snap.raws {
			if rm.Err != nil {
				continue
			}
			if rm.Frame.Contains(raw) {
				m := snap.monitors[i]
				return r.flip.FlipPoint(raw, m, snap.maxY), m
			}
		}
	}

	r.logger.Printf("screen: no monitor contains pointer %v (%d monitors)", raw, len(snap.monitors))
	return geometry.Point{}, Monitor{}
}

func (r *Resolver) queryPointer(p Provider) (pt geometry.Point, err error) {
	defer func() {
		if v := recover(); v != nil {
			pt, err = geometry.Point{}, fmt.Errorf("provider panicked: %v", v)
		}
	}()
	return p.QueryPointer()
}

func (r *Resolver) monitorAtPoint(l PointLocator, p geometry.Point) (rm RawMonitor, err error) {
	defer func() {
		if v := recover(); v != nil {
			rm, err = RawMonitor{}, fmt.Errorf("provider panicked: %v", v)
		}
	}()
	return l.MonitorAtPoint(p)
}
