package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("Load = %#v, want %#v", cfg, Default())
	}
}

func TestLoad_DefaultPathUnderHome(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Title != defaultTitle {
		t.Fatalf("Title = %q, want %q", cfg.Title, defaultTitle)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := writeConfig(t, `
title = "  Demo  "
width = 120
height = 40
clear_color = " #1e1f29 "
fps = 60

[overlay]
width = 100
height = 30
row_height = 2
heartbeat = 0
seed_file = "  ~/logs/app.log  "
seed_lines = 50
follow_seconds = 3
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Title != "Demo" {
		t.Fatalf("Title = %q, want Demo", cfg.Title)
	}
	if cfg.Width != 120 || cfg.Height != 40 {
		t.Fatalf("size = %dx%d, want 120x40", cfg.Width, cfg.Height)
	}
	if cfg.ClearColor != "#1E1F29" {
		t.Fatalf("ClearColor = %q, want #1E1F29", cfg.ClearColor)
	}
	if cfg.FPS != 60 {
		t.Fatalf("FPS = %d, want 60", cfg.FPS)
	}
	want := OverlayConfig{
		Width:     100,
		Height:    30,
		RowHeight: 2,
		Heartbeat: 0,
		SeedFile:  filepath.Join(home, "logs/app.log"),
		SeedLines: 50,
		Follow:    3,
	}
	if cfg.Overlay != want {
		t.Fatalf("Overlay = %#v, want %#v", cfg.Overlay, want)
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := writeConfig(t, `
title = "   "
width = -1
clear_color = ""

[overlay]
width = 0
height = -4
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("Load = %#v, want %#v", cfg, Default())
	}
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"invalid toml", `title = [`, "parse config"},
		{"bad colour", `clear_color = "blue"`, "clear_color"},
		{"short colour", `clear_color = "#00F"`, "clear_color"},
		{"zero fps", `fps = 0`, "fps"},
		{"huge fps", `fps = 1000`, "fps"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if err == nil {
				t.Fatalf("Load returned nil error, want failure")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("Load error = %q, want it to mention %q", err.Error(), tt.want)
			}
		})
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}

func TestValidHexColor(t *testing.T) {
	for _, c := range []string{"#000000", "#abcdef", "#ABCDEF", "#0a1B2c"} {
		if !validHexColor(c) {
			t.Fatalf("validHexColor(%q) = false, want true", c)
		}
	}
	for _, c := range []string{"", "000000", "#00000", "#0000000", "#00000g"} {
		if validHexColor(c) {
			t.Fatalf("validHexColor(%q) = true, want false", c)
		}
	}
}
