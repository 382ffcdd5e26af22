// Package platform supplies the native screen.Provider implementations. Each
// backend registers itself from a build-tagged file, so only the backends the
// current GOOS (and cgo setting) can build are available.
package platform

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"screen-topology/src/screen"
)

const (
	BackendAuto     = "auto"
	BackendWin32    = "win32"
	BackendAppKit   = "appkit"
	BackendX11      = "x11"
	BackendPortable = "portable"
	BackendFixture  = "fixture"
)

var (
	// ErrUnknownBackend is returned for names that are not registered on this
	// platform.
	ErrUnknownBackend = errors.New("unknown screen backend")
	// ErrNoDisplays is returned by enumeration when the platform reports zero
	// active displays.
	ErrNoDisplays = errors.New("no active displays found")
)

// Options carries backend specific settings.
type Options struct {
	// FixturePath is the YAML layout read by the fixture backend.
	FixturePath string
	// Display overrides $DISPLAY for the x11 backend.
	Display string
}

type factory func(Options) (screen.Provider, error)

var backends = map[string]factory{}

func register(name string, f factory) {
	backends[name] = f
}

func init() {
	register(BackendFixture, func(o Options) (screen.Provider, error) {
		if o.FixturePath == "" {
			return nil, fmt.Errorf("fixture backend requires a layout file")
		}
		return LoadFixture(o.FixturePath)
	})
}

// New returns the provider registered under name. An empty name or "auto"
// selects the native backend for the running platform.
func New(name string, opts Options) (screen.Provider, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == BackendAuto {
		name = defaultBackend
	}
	f, ok := backends[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknownBackend, name, strings.Join(Available(), ", "))
	}
	return f(opts)
}

// Available lists the registered backend names in sorted order.
func Available() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
