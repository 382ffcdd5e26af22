package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"screen-topology/src/config"
	"screen-topology/src/geometry"
	"screen-topology/src/logutil"
	"screen-topology/src/platform"
	"screen-topology/src/screen"
)

type cliOptions struct {
	jsonOutput  bool
	verbose     bool
	backend     string
	fixturePath string
	pointerFlip string
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	return runWithArgs(normalizeLegacyArgs(os.Args), os.Stdout)
}

func runWithArgs(args []string, out io.Writer) error {
	if len(args) == 0 {
		args = []string{"screens"}
	}

	opts := &cliOptions{}
	cmd := newRootCmd(opts)
	cmd.SetOut(out)
	cmd.SetArgs(args[1:])
	return cmd.Execute()
}

func newRootCmd(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "screens",
		Short:         "Inspect monitor layout and pointer position",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.BoolVar(&opts.jsonOutput, "json", false, "Output results as JSON")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose output to stderr")
	flags.StringVar(&opts.backend, "backend", "", "Screen backend ("+strings.Join(platform.Available(), ", ")+", auto)")
	flags.StringVar(&opts.fixturePath, "fixture", "", "Layout file for the fixture backend")
	flags.StringVar(&opts.pointerFlip, "pointer-flip", "", "Pointer flip rule on bottom-left platforms (monitor, desktop)")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List monitors in platform order",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				s, err := openSession(*opts)
				if err != nil {
					return err
				}
				return writeMonitors(cmd.OutOrStdout(), s.registry.ListMonitors(), opts.jsonOutput)
			},
		},
		&cobra.Command{
			Use:   "pointer",
			Short: "Show the pointer position and the monitor under it",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				s, err := openSession(*opts)
				if err != nil {
					return err
				}
				pt, m := s.resolver.PointerPosition()
				return writePointer(cmd.OutOrStdout(), pt, m, opts.jsonOutput)
			},
		},
		&cobra.Command{
			Use:   "bounds",
			Short: "Show the rectangle enclosing every monitor",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				s, err := openSession(*opts)
				if err != nil {
					return err
				}
				return writeBounds(cmd.OutOrStdout(), s.registry.DisplayRect(), opts.jsonOutput)
			},
		},
	)

	return cmd
}

type session struct {
	registry *screen.Registry
	resolver *screen.Resolver
}

func openSession(opts cliOptions) (*session, error) {
	cfg, err := config.LoadWithOptions(config.LoadOptions{
		BackendOverride:     opts.backend,
		FixtureOverride:     opts.fixturePath,
		PointerFlipOverride: opts.pointerFlip,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	// Configure logging BEFORE touching the native subsystem.
	if opts.verbose {
		logutil.SetupVerbose()
		fmt.Fprintf(os.Stderr, "[verbose] Backend=%s PointerFlip=%s\n", cfg.Backend, cfg.PointerFlip)
		if cfg.EnvPath != "" {
			fmt.Fprintf(os.Stderr, "[verbose] Loaded %s\n", cfg.EnvPath)
		}
	} else {
		logutil.Setup(cfg.EnableFileLogging)
	}

	flip, err := screen.ParsePointerFlip(cfg.PointerFlip)
	if err != nil {
		return nil, err
	}

	provider, err := platform.New(cfg.Backend, platform.Options{FixturePath: cfg.FixturePath})
	if err != nil {
		return nil, fmt.Errorf("failed to open screen backend: %w", err)
	}

	logger := log.Default()
	reg := screen.NewRegistry(provider, screen.WithLogger(logger))
	return &session{
		registry: reg,
		resolver: screen.NewResolver(reg, screen.WithLogger(logger), screen.WithPointerFlip(flip)),
	}, nil
}

// normalizeLegacyArgs maps single-dash long flags (-json) to their GNU form.
func normalizeLegacyArgs(args []string) []string {
	if len(args) == 0 {
		return args
	}

	normalized := make([]string, len(args))
	copy(normalized, args)

	long := []string{"json", "verbose", "backend", "fixture", "pointer-flip"}
	for i := 1; i < len(normalized); i++ {
		arg := normalized[i]
		for _, name := range long {
			switch {
			case arg == "-"+name:
				normalized[i] = "--" + name
			case strings.HasPrefix(arg, "-"+name+"="):
				normalized[i] = "-" + arg
			}
		}
	}

	return normalized
}

type rectJSON struct {
	X0 float64 `json:"x0"`
	Y0 float64 `json:"y0"`
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
}

type monitorJSON struct {
	Primary  bool     `json:"primary"`
	FullArea rectJSON `json:"full_area"`
	WorkArea rectJSON `json:"work_area"`
}

type listedMonitorJSON struct {
	Index int `json:"index"`
	monitorJSON
}

type pointerJSON struct {
	X       float64     `json:"x"`
	Y       float64     `json:"y"`
	Monitor monitorJSON `json:"monitor"`
}

type boundsJSON struct {
	rectJSON
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func toRectJSON(r geometry.Rect) rectJSON {
	return rectJSON{X0: r.X0, Y0: r.Y0, X1: r.X1, Y1: r.Y1}
}

func toMonitorJSON(m screen.Monitor) monitorJSON {
	return monitorJSON{Primary: m.IsPrimary(), FullArea: toRectJSON(m.FullArea()), WorkArea: toRectJSON(m.WorkArea())}
}

func writeMonitors(out io.Writer, monitors []screen.Monitor, jsonOutput bool) error {
	if jsonOutput {
		list := make([]listedMonitorJSON, len(monitors))
		for i, m := range monitors {
			list[i] = listedMonitorJSON{Index: i, monitorJSON: toMonitorJSON(m)}
		}
		return encodeJSON(out, list)
	}

	if len(monitors) == 0 {
		fmt.Fprintln(out, "no monitors")
		return nil
	}
	for i, m := range monitors {
		fmt.Fprintf(out, "#%d %v\n", i, m)
	}
	return nil
}

func writePointer(out io.Writer, pt geometry.Point, m screen.Monitor, jsonOutput bool) error {
	if jsonOutput {
		return encodeJSON(out, pointerJSON{X: pt.X, Y: pt.Y, Monitor: toMonitorJSON(m)})
	}
	fmt.Fprintf(out, "%v on %v\n", pt, m)
	return nil
}

func writeBounds(out io.Writer, r geometry.Rect, jsonOutput bool) error {
	if jsonOutput {
		return encodeJSON(out, boundsJSON{rectJSON: toRectJSON(r), Width: r.Width(), Height: r.Height()})
	}
	fmt.Fprintf(out, "%v %gx%g\n", r, r.Width(), r.Height())
	return nil
}

func encodeJSON(out io.Writer, v any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON output: %w", err)
	}
	return nil
}
