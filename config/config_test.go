package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse_FlatKeys(t *testing.T) {
	cfg, err := Parse([]byte(`
# display setup
driver = "mem"
color_mode = "256"
cursor_visible = false
audible_bell = true
bell_freq_hz = 440
cols = 120
rows = 40
`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Driver != "mem" {
		t.Errorf("Driver = %q, want mem", cfg.Driver)
	}
	if cfg.ColorMode != "256" {
		t.Errorf("ColorMode = %q, want 256", cfg.ColorMode)
	}
	if cfg.CursorVisible {
		t.Error("CursorVisible should be false")
	}
	if !cfg.AudibleBell {
		t.Error("AudibleBell should be true")
	}
	if cfg.BellFreqHz != 440 {
		t.Errorf("BellFreqHz = %d, want 440", cfg.BellFreqHz)
	}
	if cfg.Cols != 120 || cfg.Rows != 40 {
		t.Errorf("size = %dx%d, want 120x40", cfg.Cols, cfg.Rows)
	}
}

func TestParse_Sections(t *testing.T) {
	cfg, err := Parse([]byte(`
[display]
driver = "ansi"
color_mode = "truecolor"

[bell]
audible = true
freq_hz = 660
`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Driver != "ansi" || cfg.ColorMode != "truecolor" {
		t.Errorf("display section not applied: %+v", cfg)
	}
	if !cfg.AudibleBell || cfg.BellFreqHz != 660 {
		t.Errorf("bell section not applied: %+v", cfg)
	}
}

func TestParse_DefaultsPreserved(t *testing.T) {
	cfg, err := Parse([]byte(`driver = "mem"`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	def := Default()
	if cfg.ColorMode != def.ColorMode {
		t.Errorf("ColorMode = %q, want default %q", cfg.ColorMode, def.ColorMode)
	}
	if cfg.CursorVisible != def.CursorVisible {
		t.Error("CursorVisible default lost")
	}
	if cfg.BellFreqHz != def.BellFreqHz {
		t.Errorf("BellFreqHz = %d, want default %d", cfg.BellFreqHz, def.BellFreqHz)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"unknown key", `wibble = 3`, "unknown key"},
		{"unknown driver", `driver = "sdl"`, "unknown driver"},
		{"unknown color mode", `color_mode = "16"`, "unknown color_mode"},
		{"type mismatch", `cols = "many"`, "expected integer"},
		{"bool mismatch", `audible_bell = "yes"`, "expected bool"},
		{"string mismatch", `driver = mem`, "expected string"},
		{"missing value", `driver =`, "key = value"},
		{"malformed section", `[display`, "section"},
		{"duplicate key", "cols = 1\ncols = 2", "duplicate"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.in))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestParse_CommentsAndQuotedHash(t *testing.T) {
	cfg, err := Parse([]byte(`
driver = "mem" # trailing comment
color_mode = "256"
`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Driver != "mem" {
		t.Errorf("Driver = %q, want mem", cfg.Driver)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "termcanvas.toml")
	if err := os.WriteFile(path, []byte(`driver = "mem"`), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Driver != "mem" {
		t.Errorf("Driver = %q, want mem", cfg.Driver)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Load of missing file should fail")
	}
}
