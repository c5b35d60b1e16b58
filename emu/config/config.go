// Package config handles emulator configuration and logger setup.
package config

import (
	"errors"
	"fmt"

	"github.com/retroenv/retrogolib/log"
	"github.com/spf13/viper"
)

// Viper keys, also used as flag names.
const (
	KeyIPS      = "ips"
	KeyRefresh  = "refresh"
	KeyScale    = "scale"
	KeyFrontend = "frontend"
	KeyMute     = "mute"
	KeyDebug    = "debug"
	KeyQuiet    = "quiet"
)

const (
	FrontendWindow = "window"
	FrontendTerm   = "term"
)

var ErrInvalid = errors.New("invalid configuration")

// Config holds the host loop and frontend settings.
type Config struct {
	IPS      int    // instructions per second
	Refresh  int    // frames per second
	Scale    int    // window pixels per CHIP-8 pixel
	Frontend string // window or term
	Mute     bool
	Debug    bool
	Quiet    bool
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		IPS:      700,
		Refresh:  60,
		Scale:    10,
		Frontend: FrontendWindow,
	}
}

// SetDefaults registers the default values in v.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault(KeyIPS, d.IPS)
	v.SetDefault(KeyRefresh, d.Refresh)
	v.SetDefault(KeyScale, d.Scale)
	v.SetDefault(KeyFrontend, d.Frontend)
	v.SetDefault(KeyMute, d.Mute)
	v.SetDefault(KeyDebug, d.Debug)
	v.SetDefault(KeyQuiet, d.Quiet)
}

// Load reads and validates the configuration from v.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		IPS:      v.GetInt(KeyIPS),
		Refresh:  v.GetInt(KeyRefresh),
		Scale:    v.GetInt(KeyScale),
		Frontend: v.GetString(KeyFrontend),
		Mute:     v.GetBool(KeyMute),
		Debug:    v.GetBool(KeyDebug),
		Quiet:    v.GetBool(KeyQuiet),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that all settings are in range.
func (c Config) Validate() error {
	switch {
	case c.IPS <= 0:
		return fmt.Errorf("%w: ips must be positive, got %d", ErrInvalid, c.IPS)
	case c.Refresh < 1 || c.Refresh > 1000:
		return fmt.Errorf("%w: refresh must be in 1..1000, got %d", ErrInvalid, c.Refresh)
	case c.Scale < 1 || c.Scale > 32:
		return fmt.Errorf("%w: scale must be in 1..32, got %d", ErrInvalid, c.Scale)
	case c.Frontend != FrontendWindow && c.Frontend != FrontendTerm:
		return fmt.Errorf("%w: unsupported frontend '%s'", ErrInvalid, c.Frontend)
	}
	return nil
}

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}
