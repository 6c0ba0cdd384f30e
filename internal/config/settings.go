package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/pendulum-clock/internal/logging"
)

// Config holds the runtime knobs. Layout stays fixed; see the constants above.
type Config struct {
	// SoundFile is the tick asset (.wav, .mp3 or .flac). An explicit empty
	// value plays the synthesized click instead.
	SoundFile   string
	Muted       bool
	Volume      float64
	LogLevel    string
	LogJSON     bool
	Title       string
	Background  string
	ShowReadout bool
	// FrameInterval is the period between kinematic updates.
	FrameInterval time.Duration
}

// fileConfig mirrors Config in HCL. Pointers tell unset attributes apart
// from zero values.
type fileConfig struct {
	SoundFile       *string  `hcl:"sound_file,optional"`
	Muted           *bool    `hcl:"muted,optional"`
	Volume          *float64 `hcl:"volume,optional"`
	LogLevel        *string  `hcl:"log_level,optional"`
	LogJSON         *bool    `hcl:"log_json,optional"`
	WindowTitle     *string  `hcl:"window_title,optional"`
	Background      *string  `hcl:"background,optional"`
	ShowReadout     *bool    `hcl:"show_readout,optional"`
	FrameIntervalMS *int     `hcl:"frame_interval_ms,optional"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		SoundFile:     DefaultSoundFile,
		Volume:        DefaultVolume,
		LogLevel:      "info",
		Title:         WindowTitle,
		Background:    DefaultBackground,
		ShowReadout:   true,
		FrameInterval: time.Second / TicksPerSecond,
	}
}

// Load reads an HCL file on top of Default and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(path, data)
}

// Parse decodes HCL source on top of Default. filename must end in .hcl;
// it is used for diagnostics.
func Parse(filename string, data []byte) (Config, error) {
	var fc fileConfig
	if err := hclsimple.Decode(filename, data, nil, &fc); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg := Default()
	if fc.SoundFile != nil {
		cfg.SoundFile = *fc.SoundFile
	}
	if fc.Muted != nil {
		cfg.Muted = *fc.Muted
	}
	if fc.Volume != nil {
		cfg.Volume = *fc.Volume
	}
	if fc.LogLevel != nil {
		cfg.LogLevel = *fc.LogLevel
	}
	if fc.LogJSON != nil {
		cfg.LogJSON = *fc.LogJSON
	}
	if fc.WindowTitle != nil {
		cfg.Title = *fc.WindowTitle
	}
	if fc.Background != nil {
		cfg.Background = *fc.Background
	}
	if fc.ShowReadout != nil {
		cfg.ShowReadout = *fc.ShowReadout
	}
	if fc.FrameIntervalMS != nil {
		cfg.FrameInterval = time.Duration(*fc.FrameIntervalMS) * time.Millisecond
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error
	if !(c.Volume >= 0 && c.Volume <= 1) {
		errs = append(errs, fmt.Errorf("volume must be within [0, 1], got %g", c.Volume))
	}
	if c.FrameInterval <= 0 {
		errs = append(errs, fmt.Errorf("frame interval must be positive, got %s", c.FrameInterval))
	}
	if _, err := ParseColor(c.Background); err != nil {
		errs = append(errs, fmt.Errorf("background: %w", err))
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// BackgroundColor returns the parsed background, falling back to the default
// for an invalid value.
func (c Config) BackgroundColor() color.Color {
	clr, err := ParseColor(c.Background)
	if err != nil {
		return MustColor(DefaultBackground)
	}
	return clr
}

// ParseColor parses a "#rrggbb" string into an opaque color.
func ParseColor(hex string) (color.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return nil, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// MustColor is ParseColor for the compiled-in palette.
func MustColor(hex string) color.Color {
	c, err := ParseColor(hex)
	if err != nil {
		panic(err)
	}
	return c
}
