package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the settings shared by the frame-loop skeletons.
type Config struct {
	Title      string
	Width      int // windowed size in cells
	Height     int // windowed size in lines
	ClearColor string
	FPS        int
	Overlay    OverlayConfig
}

// OverlayConfig configures the log overlay window.
type OverlayConfig struct {
	Width     int
	Height    int
	RowHeight int
	Heartbeat int // frames between heartbeat records; zero disables
	SeedFile  string
	SeedLines int
	Follow    int // seconds between polls of SeedFile for new lines; zero disables
}

const (
	defaultConfigPath = "~/.config/overlay/config.toml"
	defaultTitle      = "My App"
	defaultWidth      = 80
	defaultHeight     = 24
	defaultClearColor = "#0000FF"
	defaultFPS        = 30
	maxFPS            = 120

	defaultOverlayWidth  = 72
	defaultOverlayHeight = 16
	defaultRowHeight     = 1
	defaultHeartbeat     = 300
	defaultSeedLines     = 500
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Title:      defaultTitle,
		Width:      defaultWidth,
		Height:     defaultHeight,
		ClearColor: defaultClearColor,
		FPS:        defaultFPS,
		Overlay: OverlayConfig{
			Width:     defaultOverlayWidth,
			Height:    defaultOverlayHeight,
			RowHeight: defaultRowHeight,
			Heartbeat: defaultHeartbeat,
			SeedLines: defaultSeedLines,
		},
	}
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Title      string `toml:"title"`
		Width      int    `toml:"width"`
		Height     int    `toml:"height"`
		ClearColor string `toml:"clear_color"`
		FPS        *int   `toml:"fps"`
		Overlay    struct {
			Width     int    `toml:"width"`
			Height    int    `toml:"height"`
			RowHeight int    `toml:"row_height"`
			Heartbeat *int   `toml:"heartbeat"`
			SeedFile  string `toml:"seed_file"`
			SeedLines int    `toml:"seed_lines"`
			Follow    int    `toml:"follow_seconds"`
		} `toml:"overlay"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if title := strings.TrimSpace(raw.Title); title != "" {
		cfg.Title = title
	}

	if raw.Width > 0 {
		cfg.Width = raw.Width
	}
	if raw.Height > 0 {
		cfg.Height = raw.Height
	}

	if color := strings.TrimSpace(raw.ClearColor); color != "" {
		if !validHexColor(color) {
			return Config{}, fmt.Errorf("parse config: clear_color %q is not #RRGGBB", color)
		}
		cfg.ClearColor = strings.ToUpper(color)
	}

	if raw.FPS != nil {
		if *raw.FPS <= 0 || *raw.FPS > maxFPS {
			return Config{}, fmt.Errorf("parse config: fps %d out of range 1-%d", *raw.FPS, maxFPS)
		}
		cfg.FPS = *raw.FPS
	}

	if raw.Overlay.Width > 0 {
		cfg.Overlay.Width = raw.Overlay.Width
	}
	if raw.Overlay.Height > 0 {
		cfg.Overlay.Height = raw.Overlay.Height
	}
	if raw.Overlay.RowHeight > 0 {
		cfg.Overlay.RowHeight = raw.Overlay.RowHeight
	}
	if raw.Overlay.Heartbeat != nil {
		cfg.Overlay.Heartbeat = max(*raw.Overlay.Heartbeat, 0)
	}
	if raw.Overlay.SeedLines > 0 {
		cfg.Overlay.SeedLines = raw.Overlay.SeedLines
	}
	if seed := strings.TrimSpace(raw.Overlay.SeedFile); seed != "" {
		cfg.Overlay.SeedFile = mustExpand(seed)
	}
	if raw.Overlay.Follow > 0 {
		cfg.Overlay.Follow = raw.Overlay.Follow
	}

	return cfg, nil
}

func validHexColor(s string) bool {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || len(hex) != 6 {
		return false
	}
	for _, r := range hex {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
