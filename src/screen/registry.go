package screen

import (
	"errors"
	"fmt"
	"log"

	"screen-topology/src/geometry"
)

var errNoProvider = errors.New("no screen provider configured")

// Option configures a Registry or Resolver.
type Option func(*options)

type options struct {
	logger Logger
	flip   PointerFlip
}

// WithLogger sets the diagnostic sink. A nil logger suppresses diagnostics.
func WithLogger(l Logger) Option {
	return func(o *options) {
		if l == nil {
			o.logger = discardLogger{}
			return
		}
		o.logger = l
	}
}

// WithPointerFlip selects the bottom-left pointer flip rule.
func WithPointerFlip(f PointerFlip) Option {
	return func(o *options) { o.flip = f }
}

func buildOptions(opts []Option) options {
	o := options{logger: log.Default(), flip: FlipFromMonitor}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Registry builds monitor snapshots from a Provider.
type Registry struct {
	provider Provider
	logger   Logger
}

// NewRegistry returns a Registry backed by p.
func NewRegistry(p Provider, opts ...Option) *Registry {
	o := buildOptions(opts)
	return &Registry{provider: p, logger: o.logger}
}

// snapshot is one enumeration pass: the native records, their normalized
// monitors at the same indexes, and the flip axis used.
type snapshot struct {
	convention Convention
	raws       []RawMonitor
	monitors   []Monitor
	maxY       float64
}

// ListMonitors enumerates monitors in platform order. It never fails: an
// enumeration error yields an empty result.
func (r *Registry) ListMonitors() []Monitor {
	return r.snapshot().monitors
}

// DisplayRect is the union of every monitor's full area.
func (r *Registry) DisplayRect() geometry.Rect {
	return DisplayRect(r.ListMonitors())
}

func (r *Registry) snapshot() snapshot {
	if r.provider == nil {
		r.logger.Printf("screen: failed to enumerate monitors: %v", errNoProvider)
		return snapshot{}
	}
	conv := r.provider.Convention()
	raws, err := r.enumerate()
	if err != nil {
		r.logger.Printf("screen: failed to enumerate monitors: %v", err)
		return snapshot{convention: conv}
	}
	for i, raw := range raws {
		if raw.Err != nil {
			r.logger.Printf("screen: failed to get monitor info for slot %d: %v", i, raw.Err)
		}
	}
	var maxY float64
	if conv == BottomLeft {
		maxY = VirtualDesktopBound(raws)
	}
	return snapshot{
		convention: conv,
		raws:       raws,
		monitors:   NormalizeWithBound(raws, conv, maxY),
		maxY:       maxY,
	}
}

func (r *Registry) enumerate() (raws []RawMonitor, err error) {
	defer func() {
		if p := recover(); p != nil {
			raws, err = nil, fmt.Errorf("provider panicked: %v", p)
		}
	}()
	return r.provider.EnumerateMonitors()
}
