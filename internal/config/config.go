package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Window defaults.
const (
	WindowWidth  = 1200
	WindowHeight = 800
	WindowTitle  = "Bus Cabin 3D"
)

// Off-screen route display. Fixed size, never follows window resizes.
const (
	OffscreenWidth  = 800
	OffscreenHeight = 600
)

// Route simulation.
const (
	NumStations        = 10
	StationWaitSeconds = 10.0
	TravelTimeSeconds  = 5.0
	MaxPassengers      = 50
	MaxFrameDelta      = 0.1 // seconds; longer frames are clamped
)

// Route layout (normalized scene space).
const (
	RouteSemiAxisA        = 0.8
	RouteSemiAxisB        = 0.5
	CurvePointsPerSegment = 5
	WiggleRange           = 0.08
)

// Sprite placement on the route display.
const (
	BusScale         = 0.25
	StationScale     = 0.15
	StatusIconX      = 0.75
	StatusIconY      = 0.85
	StatusIconScale  = 0.2
	InspectIconX     = -0.75
	InspectIconY     = 0.85
	InspectIconScale = 0.3
	PathLineWidth    = 10.0 // pixels on the off-screen target
)

// Driver camera.
const (
	EyeHeight        = 1.5
	InitialYaw       = -90.0 // degrees; faces the windshield
	MouseSensitivity = 0.1
	MinYaw           = -180.0
	MaxYaw           = 0.0
	MinPitch         = -89.0
	MaxPitch         = 89.0
	FieldOfView      = 45.0
	NearPlane        = 0.1
	FarPlane         = 100.0
)

// Config holds the runtime-tunable settings. Everything else is a constant.
type Config struct {
	Window      WindowConfig `yaml:"window"`
	ResourceDir string       `yaml:"resource_dir" validate:"required"`
	ShaderDir   string       `yaml:"shader_dir" validate:"required"`
	LogLevel    string       `yaml:"log_level" validate:"oneof=debug info warn error"`
	Seed        uint64       `yaml:"seed"`
	Audio       AudioConfig  `yaml:"audio"`
}

type WindowConfig struct {
	Width  int  `yaml:"width" validate:"gt=0"`
	Height int  `yaml:"height" validate:"gt=0"`
	VSync  bool `yaml:"vsync"`
}

type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume" validate:"gte=0,lte=1"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:  WindowWidth,
			Height: WindowHeight,
			VSync:  true,
		},
		ResourceDir: "res",
		ShaderDir:   "shaders",
		LogLevel:    "info",
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.6,
		},
	}
}

// Load builds the configuration from defaults, an optional YAML file and
// BUSVIEW_* environment variables (a .env file is honoured if present).
// An empty path or a missing file leaves the defaults in place.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
		default:
			return Config{}, fmt.Errorf("read %s: %w", path, err)
		}
	}

	// Load .env into environment (ignore if missing)
	_ = godotenv.Load()
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("BUSVIEW_RESOURCE_DIR"); v != "" {
		cfg.ResourceDir = v
	}
	if v := os.Getenv("BUSVIEW_SHADER_DIR"); v != "" {
		cfg.ShaderDir = v
	}
	if v := os.Getenv("BUSVIEW_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("BUSVIEW_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid BUSVIEW_SEED: %q", v)
		}
		cfg.Seed = seed
	}
	if v := os.Getenv("BUSVIEW_WINDOW_WIDTH"); v != "" {
		w, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid BUSVIEW_WINDOW_WIDTH: %q", v)
		}
		cfg.Window.Width = w
	}
	if v := os.Getenv("BUSVIEW_WINDOW_HEIGHT"); v != "" {
		h, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid BUSVIEW_WINDOW_HEIGHT: %q", v)
		}
		cfg.Window.Height = h
	}
	if v := os.Getenv("BUSVIEW_VSYNC"); v != "" {
		cfg.Window.VSync = parseBool(v)
	}
	if v := os.Getenv("BUSVIEW_AUDIO"); v != "" {
		cfg.Audio.Enabled = parseBool(v)
	}
	if v := os.Getenv("BUSVIEW_VOLUME"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid BUSVIEW_VOLUME: %q", v)
		}
		cfg.Audio.Volume = f
	}
	return nil
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "t", "yes", "y", "on":
		return true
	}
	return false
}
