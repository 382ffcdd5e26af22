package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

const (
	BackendEnvVar     = "SCREEN_BACKEND"
	FixtureEnvVar     = "SCREEN_FIXTURE"
	PointerFlipEnvVar = "POINTER_FLIP"
	ConfigPathEnvVar  = "SCREEN_TOPOLOGY"

	DefaultBackend     = "auto"
	PointerFlipMonitor = "monitor"
	PointerFlipDesktop = "desktop"
)

// LoadOptions carries command line overrides. Non-empty values win over the
// environment and the .env file.
type LoadOptions struct {
	BackendOverride     string
	FixtureOverride     string
	PointerFlipOverride string
}

type Config struct {
	Backend           string
	FixturePath       string
	PointerFlip       string
	EnableFileLogging bool
	EnvPath           string
}

func Load() (*Config, error) {
	return LoadWithOptions(LoadOptions{})
}

func LoadWithOptions(opts LoadOptions) (*Config, error) {
	// Load configuration from sources in priority order:
	// 1) .env in the application (executable) directory
	// 2) If not found, use SCREEN_TOPOLOGY env var as a path to a config file
	// Variables already present in the environment are not overwritten.
	envPath := resolveEnvPath()
	if envPath != "" {
		_ = godotenv.Load(envPath)
	}

	cfg := &Config{
		Backend:           firstNonEmpty(opts.BackendOverride, os.Getenv(BackendEnvVar), DefaultBackend),
		FixturePath:       firstNonEmpty(opts.FixtureOverride, os.Getenv(FixtureEnvVar)),
		PointerFlip:       resolvePointerFlip(firstNonEmpty(opts.PointerFlipOverride, os.Getenv(PointerFlipEnvVar))),
		EnableFileLogging: strings.ToLower(os.Getenv("ENABLE_FILE_LOGGING")) == "true",
		EnvPath:           envPath,
	}
	cfg.Backend = strings.ToLower(cfg.Backend)

	return cfg, nil
}

func resolveEnvPath() string {
	execPath, err := os.Executable()
	if err == nil {
		exeEnv := filepath.Join(filepath.Dir(execPath), ".env")
		if _, err := os.Stat(exeEnv); err == nil {
			return exeEnv
		}
	}

	if alt := os.Getenv(ConfigPathEnvVar); alt != "" {
		if _, err := os.Stat(alt); err == nil {
			return alt
		}
	}

	return ""
}

func resolvePointerFlip(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case PointerFlipDesktop:
		return PointerFlipDesktop
	default:
		return PointerFlipMonitor
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
