// Package config loads termcanvas settings from a TOML file.
//
// Only the subset of TOML the settings need is understood: comments,
// bare [section] headers, and key = value pairs with string, integer,
// float and boolean values.
package config

import (
	"fmt"
	"os"
)

// Config selects the display driver and its options.
type Config struct {
	// Driver is the backend name: "tcell", "ansi" or "mem".
	Driver string

	// ColorMode is "auto", "256" or "truecolor". Only the ansi driver
	// renders colors itself; others ignore this.
	ColorMode string

	// CursorVisible sets the initial hardware cursor visibility.
	CursorVisible bool

	// AudibleBell routes Beep through a software speaker tone in
	// addition to the driver's native bell.
	AudibleBell bool

	// BellFreqHz is the software bell tone frequency.
	BellFreqHz int

	// Cols, Rows fix the framebuffer size for the mem driver.
	Cols int
	Rows int
}

// Default returns the baseline configuration: tcell driver, detected
// colors, visible cursor, native bell only.
func Default() Config {
	return Config{
		Driver:        "tcell",
		ColorMode:     "auto",
		CursorVisible: true,
		BellFreqHz:    880,
	}
}

// Load reads and parses a TOML config file, layered over Default.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes TOML bytes into a Config, layered over Default.
// Unknown keys are rejected so typos surface at startup.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	values, err := parseTOML(data)
	if err != nil {
		return cfg, err
	}

	for key, v := range values {
		switch key {
		case "driver", "display.driver":
			if err := v.str(&cfg.Driver); err != nil {
				return cfg, keyErr(key, err)
			}
		case "color_mode", "display.color_mode":
			if err := v.str(&cfg.ColorMode); err != nil {
				return cfg, keyErr(key, err)
			}
		case "cursor_visible", "display.cursor_visible":
			if err := v.boolean(&cfg.CursorVisible); err != nil {
				return cfg, keyErr(key, err)
			}
		case "audible_bell", "bell.audible":
			if err := v.boolean(&cfg.AudibleBell); err != nil {
				return cfg, keyErr(key, err)
			}
		case "bell_freq_hz", "bell.freq_hz":
			if err := v.integer(&cfg.BellFreqHz); err != nil {
				return cfg, keyErr(key, err)
			}
		case "cols", "display.cols":
			if err := v.integer(&cfg.Cols); err != nil {
				return cfg, keyErr(key, err)
			}
		case "rows", "display.rows":
			if err := v.integer(&cfg.Rows); err != nil {
				return cfg, keyErr(key, err)
			}
		default:
			return cfg, fmt.Errorf("config: unknown key %q (line %d)", key, v.line)
		}
	}

	switch cfg.Driver {
	case "tcell", "ansi", "mem":
	default:
		return cfg, fmt.Errorf("config: unknown driver %q", cfg.Driver)
	}
	switch cfg.ColorMode {
	case "auto", "256", "truecolor":
	default:
		return cfg, fmt.Errorf("config: unknown color_mode %q", cfg.ColorMode)
	}

	return cfg, nil
}

func keyErr(key string, err error) error {
	return fmt.Errorf("config: key %q: %w", key, err)
}
