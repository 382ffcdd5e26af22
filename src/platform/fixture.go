package platform

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"screen-topology/src/geometry"
	"screen-topology/src/screen"
)

var (
	errFixtureEnumeration = errors.New("fixture: enumeration failure requested")
	errFixturePointer     = errors.New("fixture: pointer failure requested")
	errFixtureMonitor     = errors.New("fixture: monitor info failure requested")
)

type fixtureRect struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

func (r fixtureRect) rect() geometry.Rect {
	return geometry.FromOriginSize(r.X, r.Y, r.Width, r.Height)
}

type fixtureMonitor struct {
	Frame   fixtureRect  `yaml:"frame"`
	Work    *fixtureRect `yaml:"work"`
	Primary bool         `yaml:"primary"`
	Fail    bool         `yaml:"fail"`
}

type fixtureFile struct {
	Convention      string           `yaml:"convention"`
	FailEnumeration bool             `yaml:"fail_enumeration"`
	FailPointer     bool             `yaml:"fail_pointer"`
	MonitorAtPoint  bool             `yaml:"monitor_at_point"`
	Pointer         geometry.Point   `yaml:"pointer"`
	Monitors        []fixtureMonitor `yaml:"monitors"`
}

// Fixture replays a layout described in a YAML file. It stands in for the
// native subsystem in tests and on headless machines.
type Fixture struct {
	convention  screen.Convention
	monitors    []screen.RawMonitor
	pointer     geometry.Point
	failEnum    bool
	failPointer bool
}

// LocatingFixture is a Fixture that also answers monitor-at-point queries,
// like platforms with a native lookup.
type LocatingFixture struct {
	*Fixture
}

// LoadFixture reads a fixture layout from path.
func LoadFixture(path string) (screen.Provider, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture %s: %w", path, err)
	}
	return ParseFixture(data)
}

// ParseFixture decodes a YAML layout. The result is a *LocatingFixture when
// the layout sets monitor_at_point.
func ParseFixture(data []byte) (screen.Provider, error) {
	var ff fixtureFile
	if err := yaml.Unmarshal(data, &ff); err != nil {
		return nil, fmt.Errorf("failed to parse fixture: %w", err)
	}
	conv, err := screen.ParseConvention(ff.Convention)
	if err != nil {
		return nil, fmt.Errorf("failed to parse fixture: %w", err)
	}

	f := &Fixture{
		convention:  conv,
		pointer:     ff.Pointer,
		failEnum:    ff.FailEnumeration,
		failPointer: ff.FailPointer,
	}
	for _, m := range ff.Monitors {
		if m.Fail {
			f.monitors = append(f.monitors, screen.RawMonitor{Err: errFixtureMonitor})
			continue
		}
		raw := screen.RawMonitor{Frame: m.Frame.rect(), Primary: m.Primary}
		if m.Work != nil {
			raw.Work, raw.HasWork = m.Work.rect(), true
		}
		f.monitors = append(f.monitors, raw)
	}

	if ff.MonitorAtPoint {
		return &LocatingFixture{Fixture: f}, nil
	}
	return f, nil
}

func (f *Fixture) Convention() screen.Convention { return f.convention }

func (f *Fixture) EnumerateMonitors() ([]screen.RawMonitor, error) {
	if f.failEnum {
		return nil, errFixtureEnumeration
	}
	out := make([]screen.RawMonitor, len(f.monitors))
	copy(out, f.monitors)
	return out, nil
}

func (f *Fixture) QueryPointer() (geometry.Point, error) {
	if f.failPointer {
		return geometry.Point{}, errFixturePointer
	}
	return f.pointer, nil
}

// MonitorAtPoint returns the first monitor whose native frame contains p.
func (f *LocatingFixture) MonitorAtPoint(p geometry.Point) (screen.RawMonitor, error) {
	if f.failEnum {
		return screen.RawMonitor{}, errFixtureEnumeration
	}
	for _, m := range f.monitors {
		if m.Err == nil && m.Frame.Contains(p) {
			return m, nil
		}
	}
	return screen.RawMonitor{}, screen.ErrNoMonitor
}
