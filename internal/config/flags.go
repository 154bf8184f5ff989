package config

import (
	"flag"
	"fmt"
)

// seedFromConfig is the -seed default: keep whatever the config says.
const seedFromConfig = -1

// Flags are the command-line options shared by every sonar command.
type Flags struct {
	ConfigPath string
	Seed       int64
	LogLevel   string
	WebAddr    string
	Audio      bool
}

// RegisterFlags binds the shared options to fs.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.ConfigPath, "config", "", "YAML session config (defaults when empty)")
	fs.Int64Var(&f.Seed, "seed", seedFromConfig, "scene seed; 0 seeds from the clock, -1 keeps the config value")
	fs.StringVar(&f.LogLevel, "log-level", "", "debug, info, warn or error (overrides the config)")
	fs.StringVar(&f.WebAddr, "web", "", "serve telemetry on this address, e.g. :8080")
	fs.BoolVar(&f.Audio, "audio", false, "play ping and echo tones")
	return f
}

// Resolve loads the config file, or the defaults, and applies the flags on top.
func (f *Flags) Resolve() (*Config, error) {
	cfg := Default()
	if f.ConfigPath != "" {
		loaded, err := Load(f.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("config %s: %w", f.ConfigPath, err)
		}
		cfg = loaded
	}
	if f.Seed != seedFromConfig {
		cfg.Scene.Seed = f.Seed
	}
	if f.LogLevel != "" {
		cfg.Log.Level = f.LogLevel
	}
	if f.WebAddr != "" {
		cfg.Web.Enabled = true
		cfg.Web.Addr = f.WebAddr
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
