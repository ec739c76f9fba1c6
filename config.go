package softrender

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

// WorldTransform places the single model in the world. Angles are radians.
type WorldTransform struct {
	RotationZ   float32    `toml:"rotation_z" yaml:"rotation_z"`
	RotationX   float32    `toml:"rotation_x" yaml:"rotation_x"`
	SpinRate    float32    `toml:"spin_rate" yaml:"spin_rate"` // radians per second
	Translation [3]float32 `toml:"translation" yaml:"translation"`
}

// Config holds the startup settings for a renderer host.
type Config struct {
	Width  int     `toml:"width" yaml:"width"`
	Height int     `toml:"height" yaml:"height"`
	FOV    float32 `toml:"fov" yaml:"fov"`
	Near   float32 `toml:"near" yaml:"near"`
	Far    float32 `toml:"far" yaml:"far"`

	TargetFPS        int        `toml:"target_fps" yaml:"target_fps"`
	MoveSpeed        float32    `toml:"move_speed" yaml:"move_speed"`
	TurnSpeed        float32    `toml:"turn_speed" yaml:"turn_speed"`
	MouseSensitivity float32    `toml:"mouse_sensitivity" yaml:"mouse_sensitivity"`
	WorldUp          [3]float32 `toml:"world_up" yaml:"world_up"`

	// MeshPath is an OBJ file. Empty uses the built-in cube.
	MeshPath   string         `toml:"mesh" yaml:"mesh"`
	World      WorldTransform `toml:"world" yaml:"world"`
	Background [3]uint8       `toml:"background" yaml:"background"`
}

func DefaultConfig() Config {
	return Config{
		Width:            1200,
		Height:           700,
		FOV:              90,
		Near:             0.1,
		Far:              1000,
		TargetFPS:        60,
		MoveSpeed:        2,
		TurnSpeed:        1,
		MouseSensitivity: 1.0 / 100,
		WorldUp:          [3]float32{0, 1, 0},
		World: WorldTransform{
			Translation: [3]float32{0, -2, 4},
		},
	}
}

// LoadConfig reads a TOML or YAML file, chosen by extension, over the
// defaults. Fields the file leaves out keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return Config{}, fmt.Errorf("config: %s: unsupported extension %q", path, filepath.Ext(path))
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Width     int
	Height    int
	FOV       float64
	TargetFPS int
	MeshPath  string
}

// Resolve applies non-zero flags over c and validates the result.
func (c *Config) Resolve(flags Flags) error {
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.FOV > 0 {
		c.FOV = float32(flags.FOV)
	}
	if flags.TargetFPS > 0 {
		c.TargetFPS = flags.TargetFPS
	}
	if flags.MeshPath != "" {
		c.MeshPath = flags.MeshPath
	}
	if c.WorldUp == [3]float32{} {
		c.WorldUp = [3]float32{0, 1, 0}
	}
	return c.Validate()
}

func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: resolution %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.Near <= 0:
		return fmt.Errorf("%w: near plane %g must be positive", ErrInvalidConfig, c.Near)
	case c.Far <= c.Near:
		return fmt.Errorf("%w: far plane %g must be beyond near plane %g", ErrInvalidConfig, c.Far, c.Near)
	case c.FOV <= 0 || c.FOV >= 180:
		return fmt.Errorf("%w: fov %g must be between 0 and 180 degrees", ErrInvalidConfig, c.FOV)
	}
	return nil
}

func (c *Config) Pipeline() PipelineConfig {
	return PipelineConfig{
		Width:  c.Width,
		Height: c.Height,
		FOV:    c.FOV,
		Near:   c.Near,
		Far:    c.Far,
	}
}

func (c *Config) Up() Vec3 {
	return Vec3{c.WorldUp[0], c.WorldUp[1], c.WorldUp[2]}
}

func (c *Config) BackgroundColor() color.RGBA {
	return color.RGBA{R: c.Background[0], G: c.Background[1], B: c.Background[2], A: 255}
}

// LoadMesh loads MeshPath, or the built-in cube when it is empty.
func (c *Config) LoadMesh() (*Mesh, error) {
	if c.MeshPath == "" {
		return DefaultMesh(), nil
	}
	return LoadMeshFromFile(c.MeshPath)
}
