package config

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/spf13/viper"
)

func TestLoad_Defaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg, err := Load(v)
	assert.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_Overrides(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set(KeyIPS, 1000)
	v.Set(KeyFrontend, FrontendTerm)
	v.Set(KeyMute, true)

	cfg, err := Load(v)
	assert.NoError(t, err)
	assert.Equal(t, 1000, cfg.IPS)
	assert.Equal(t, FrontendTerm, cfg.Frontend)
	assert.True(t, cfg.Mute)
	assert.Equal(t, 60, cfg.Refresh)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		valid  bool
	}{
		{"defaults", func(*Config) {}, true},
		{"zero ips", func(c *Config) { c.IPS = 0 }, false},
		{"zero refresh", func(c *Config) { c.Refresh = 0 }, false},
		{"refresh too high", func(c *Config) { c.Refresh = 1001 }, false},
		{"zero scale", func(c *Config) { c.Scale = 0 }, false},
		{"scale too high", func(c *Config) { c.Scale = 33 }, false},
		{"terminal frontend", func(c *Config) { c.Frontend = FrontendTerm }, true},
		{"unknown frontend", func(c *Config) { c.Frontend = "sdl" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)

			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.Is(err, ErrInvalid))
			}
		})
	}
}

func TestCreateLogger(t *testing.T) {
	assert.NotNil(t, CreateLogger(false, false))
	assert.NotNil(t, CreateLogger(true, false))
	assert.NotNil(t, CreateLogger(false, true))
}
