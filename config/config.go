// Package config loads the host-side panel settings: geometry, the
// anchor palette fed into pill instances, and animation timings. The
// rendering core never reads configuration itself; the host resolves
// settings into frame state and instance records.
package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/CodedNil/cantus"
	"github.com/pelletier/go-toml/v2"
)

// Config is the full panel configuration.
type Config struct {
	Panel     Panel     `toml:"panel"`
	Theme     Theme     `toml:"theme"`
	Animation Animation `toml:"animation"`
}

// Panel controls geometry.
type Panel struct {
	// Width and Height of the output surface in logical pixels.
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`

	// StartY and PanelHeight give the vertical extent of the pill
	// strip within the surface.
	StartY      float64 `toml:"start_y"`
	PanelHeight float64 `toml:"panel_height"`

	// Scale is the UI scale factor.
	Scale float64 `toml:"scale"`
}

// Theme holds colors as hex strings ("RRGGBB" or "RRGGBBAA").
type Theme struct {
	// Anchors are the four turbulence anchor colors.
	Anchors [4]string `toml:"anchors"`

	// Accent tints the playhead's volume region.
	Accent string `toml:"accent"`

	// TextColor tints glyphs.
	TextColor string `toml:"text_color"`
}

// Animation holds timing constants in seconds.
type Animation struct {
	// ToggleDuration is how long an icon wipe takes.
	ToggleDuration float64 `toml:"toggle_duration"`

	// ParticleDuration is the lifetime of seek-burst particles.
	ParticleDuration float64 `toml:"particle_duration"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Panel: Panel{
			Width:       1000,
			Height:      90,
			StartY:      5,
			PanelHeight: 80,
			Scale:       1,
		},
		Theme: Theme{
			Anchors:   [4]string{"2A4858", "2F6B4F", "54442B", "1E2D50"},
			Accent:    "4CC78F",
			TextColor: "F0F0F0",
		},
		Animation: Animation{
			ToggleDuration:   0.25,
			ParticleDuration: 0.8,
		},
	}
}

// Error reports an invalid configuration field.
type Error struct {
	Field  string
	Reason string
}

func (e *Error) Error() string {
	return "config: invalid " + e.Field + ": " + e.Reason
}

// Validate checks ranges the renderer depends on.
func (c *Config) Validate() error {
	if c.Panel.Width <= 0 || c.Panel.Height <= 0 {
		return &Error{Field: "panel", Reason: "width and height must be positive"}
	}
	if c.Panel.PanelHeight <= 0 {
		return &Error{Field: "panel.panel_height", Reason: "must be positive"}
	}
	if c.Panel.StartY < 0 || c.Panel.StartY+c.Panel.PanelHeight > c.Panel.Height {
		return &Error{Field: "panel.start_y", Reason: "panel extent must fit inside the surface"}
	}
	if c.Panel.Scale <= 0 {
		return &Error{Field: "panel.scale", Reason: "must be positive"}
	}
	if c.Animation.ToggleDuration <= 0 {
		return &Error{Field: "animation.toggle_duration", Reason: "must be positive"}
	}
	if c.Animation.ParticleDuration <= 0 {
		return &Error{Field: "animation.particle_duration", Reason: "must be positive"}
	}
	return nil
}

// Load reads and validates a TOML config file. Unknown keys are an
// error so typos surface immediately.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return cfg, fmt.Errorf("config: reading %s: %w", path, err)
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	cantus.Logger().Info("config loaded", "path", path)
	return cfg, nil
}

// AnchorColors resolves the theme's anchor hex strings to packed
// instance colors.
func (t *Theme) AnchorColors() [4]cantus.PackedColor {
	var out [4]cantus.PackedColor
	for i, hex := range t.Anchors {
		out[i] = cantus.Pack(cantus.Hex(hex))
	}
	return out
}
