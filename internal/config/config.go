package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"time"

	"flycam/internal/input"
	"flycam/internal/logging"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// maxGridDivisions bounds the ground grid; each division records two lines per frame.
const maxGridDivisions = 1000

// Config holds all application configuration values
type Config struct {
	Display  DisplayConfig  `yaml:"display"`
	Movement MovementConfig `yaml:"movement"`
	Keys     KeysConfig     `yaml:"keys"`
	Gizmo    GizmoConfig    `yaml:"gizmo"`
	Camera   CameraConfig   `yaml:"camera"`
	Entities []EntityConfig `yaml:"entities"`
	Logging  logging.Config `yaml:"logging"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`
	WindowTitle  string `yaml:"window_title"`
	Resizable    bool   `yaml:"resizable"`
	TPS          int    `yaml:"tps"`
	ShowHUD      bool   `yaml:"show_hud"`
}

type MovementConfig struct {
	Speed             float64 `yaml:"speed"`
	NormalizeDiagonal bool    `yaml:"normalize_diagonal"`
	MaxDeltaMs        int     `yaml:"max_delta_ms"`
}

// KeysConfig lists key names per direction, e.g. forward: [W, ArrowUp].
type KeysConfig struct {
	Forward []string `yaml:"forward"`
	Back    []string `yaml:"back"`
	Left    []string `yaml:"left"`
	Right   []string `yaml:"right"`
	Up      []string `yaml:"up"`
	Down    []string `yaml:"down"`
}

type GizmoConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Color      [3]int  `yaml:"color"`
	AxisLength float64 `yaml:"axis_length"`
	GridHalf   float64 `yaml:"grid_half"`
	GridStep   float64 `yaml:"grid_step"`
	GridColor  [3]int  `yaml:"grid_color"`
}

type CameraConfig struct {
	Eye        [3]float64 `yaml:"eye"`
	Target     [3]float64 `yaml:"target"`
	FovDegrees float64    `yaml:"fov_degrees"`
	Near       float64    `yaml:"near"`
	Far        float64    `yaml:"far"`
}

// EntityConfig describes an entity spawned at startup.
type EntityConfig struct {
	Name       string     `yaml:"name"`
	Position   [3]float64 `yaml:"position"`
	YawDegrees float64    `yaml:"yaw_degrees"`
	Controlled bool       `yaml:"controlled"`
}

// DefaultConfig returns the built-in configuration. LoadConfig decodes
// files over it, so any key a file omits keeps its default.
func DefaultConfig() *Config {
	return &Config{
		Display: DisplayConfig{
			ScreenWidth:  1024,
			ScreenHeight: 768,
			WindowTitle:  "flycam",
			Resizable:    true,
			TPS:          60,
			ShowHUD:      true,
		},
		Movement: MovementConfig{
			Speed:      4.0,
			MaxDeltaMs: 250,
		},
		Keys: KeysConfig{
			Forward: []string{"W", "ArrowUp"},
			Back:    []string{"S", "ArrowDown"},
			Left:    []string{"A", "ArrowLeft"},
			Right:   []string{"D", "ArrowRight"},
			Up:      []string{"Space"},
			Down:    []string{"ShiftLeft"},
		},
		Gizmo: GizmoConfig{
			Enabled:    true,
			Color:      [3]int{128, 128, 128},
			AxisLength: 0.5,
			GridHalf:   10,
			GridStep:   1,
			GridColor:  [3]int{50, 60, 50},
		},
		Camera: CameraConfig{
			Eye:        [3]float64{0, 8, 12},
			Target:     [3]float64{0, 0, 0},
			FovDegrees: 60,
			Near:       0.1,
			Far:        200,
		},
		Entities: []EntityConfig{
			{Name: "player", Position: [3]float64{0, 0.5, 0}, Controlled: true},
		},
		Logging: logging.DefaultConfig(),
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", filename, err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// MustLoadConfig loads the configuration and panics on error
func MustLoadConfig(filename string) *Config {
	config, err := LoadConfig(filename)
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}
	return config
}

// Validate checks value ranges and that every key name is known.
func (c *Config) Validate() error {
	if c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0 {
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalidConfig, c.Display.ScreenWidth, c.Display.ScreenHeight)
	}
	if c.Display.TPS <= 0 {
		return fmt.Errorf("%w: tps must be positive, got %d", ErrInvalidConfig, c.Display.TPS)
	}
	if c.Movement.Speed <= 0 {
		return fmt.Errorf("%w: movement speed must be positive, got %v", ErrInvalidConfig, c.Movement.Speed)
	}
	if c.Movement.MaxDeltaMs < 0 {
		return fmt.Errorf("%w: max_delta_ms must not be negative", ErrInvalidConfig)
	}
	if _, err := c.Keys.Bindings(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := validateRGB("gizmo.color", c.Gizmo.Color); err != nil {
		return err
	}
	if err := validateRGB("gizmo.grid_color", c.Gizmo.GridColor); err != nil {
		return err
	}
	if c.Gizmo.AxisLength < 0 {
		return fmt.Errorf("%w: gizmo.axis_length must not be negative, got %v", ErrInvalidConfig, c.Gizmo.AxisLength)
	}
	if c.Gizmo.GridHalf < 0 {
		return fmt.Errorf("%w: gizmo.grid_half must not be negative, got %v", ErrInvalidConfig, c.Gizmo.GridHalf)
	}
	if c.Gizmo.GridHalf > 0 {
		if c.Gizmo.GridStep <= 0 {
			return fmt.Errorf("%w: gizmo.grid_step must be positive, got %v", ErrInvalidConfig, c.Gizmo.GridStep)
		}
		if 2*c.Gizmo.GridHalf/c.Gizmo.GridStep > maxGridDivisions {
			return fmt.Errorf("%w: gizmo grid of %v/%v exceeds %d divisions", ErrInvalidConfig, c.Gizmo.GridHalf, c.Gizmo.GridStep, maxGridDivisions)
		}
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("%w: camera clip range %v..%v", ErrInvalidConfig, c.Camera.Near, c.Camera.Far)
	}
	if c.GetCameraEye().Sub(c.GetCameraTarget()).Len() < 1e-9 {
		return fmt.Errorf("%w: camera eye and target coincide", ErrInvalidConfig)
	}
	if c.Camera.FovDegrees <= 0 || c.Camera.FovDegrees >= 180 {
		return fmt.Errorf("%w: camera fov %v", ErrInvalidConfig, c.Camera.FovDegrees)
	}
	return nil
}

func validateRGB(field string, rgb [3]int) error {
	for _, v := range rgb {
		if v < 0 || v > 255 {
			return fmt.Errorf("%w: %s channel %d out of range", ErrInvalidConfig, field, v)
		}
	}
	return nil
}

// Bindings parses the key names into input bindings. Every direction
// needs at least one key.
func (k KeysConfig) Bindings() (input.Bindings, error) {
	var b input.Bindings
	var err error
	if b.Forward, err = parseDirection("forward", k.Forward); err != nil {
		return b, err
	}
	if b.Back, err = parseDirection("back", k.Back); err != nil {
		return b, err
	}
	if b.Left, err = parseDirection("left", k.Left); err != nil {
		return b, err
	}
	if b.Right, err = parseDirection("right", k.Right); err != nil {
		return b, err
	}
	if b.Up, err = parseDirection("up", k.Up); err != nil {
		return b, err
	}
	if b.Down, err = parseDirection("down", k.Down); err != nil {
		return b, err
	}
	return b, nil
}

func parseDirection(direction string, names []string) ([]ebiten.Key, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("no keys bound to %s", direction)
	}
	keys, err := input.ParseKeys(names)
	if err != nil {
		return nil, fmt.Errorf("keys.%s: %w", direction, err)
	}
	return keys, nil
}

// Helper functions for easy access to commonly used values
func (c *Config) GetScreenWidth() int {
	return c.Display.ScreenWidth
}

func (c *Config) GetScreenHeight() int {
	return c.Display.ScreenHeight
}

func (c *Config) GetMoveSpeed() float64 {
	return c.Movement.Speed
}

// GetMaxDelta is the longest frame the clock reports; zero disables clamping.
func (c *Config) GetMaxDelta() time.Duration {
	return time.Duration(c.Movement.MaxDeltaMs) * time.Millisecond
}

// GetFrameDuration is the nominal tick length at the configured TPS.
func (c *Config) GetFrameDuration() time.Duration {
	return time.Second / time.Duration(c.Display.TPS)
}

func (c *Config) GetGizmoColor() color.RGBA {
	return rgba(c.Gizmo.Color)
}

func (c *Config) GetGridColor() color.RGBA {
	return rgba(c.Gizmo.GridColor)
}

func (c *Config) GetCameraEye() mgl64.Vec3 {
	return mgl64.Vec3(c.Camera.Eye)
}

func (c *Config) GetCameraTarget() mgl64.Vec3 {
	return mgl64.Vec3(c.Camera.Target)
}

func (c *Config) GetCameraFOV() float64 {
	return mgl64.DegToRad(c.Camera.FovDegrees)
}

func rgba(rgb [3]int) color.RGBA {
	return color.RGBA{uint8(rgb[0]), uint8(rgb[1]), uint8(rgb[2]), 255}
}
