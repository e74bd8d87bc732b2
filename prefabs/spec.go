package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"github.com/CatPunch007/LittleWitch/mover"
	"gopkg.in/yaml.v3"
)

const (
	PlayerSpecFile = "player.yaml"
	LevelSpecFile  = "level.yaml"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	spec, err := DecodeSpec[T](data)
	if err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

func DecodeSpec[T any](data []byte) (T, error) {
	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		var zero T
		return zero, err
	}
	return spec, nil
}

type PlayerSpec struct {
	Name              string        `yaml:"name"`
	MoveSpeed         float64       `yaml:"move_speed"`
	JumpForce         float64       `yaml:"jump_force"`
	GroundProbeLength float64       `yaml:"ground_probe_length"`
	GravityScale      float64       `yaml:"gravity_scale"`
	Dash              DashSpec      `yaml:"dash"`
	Transform         TransformSpec `yaml:"transform"`
	Collider          ColliderSpec  `yaml:"collider"`
	Sprite            SpriteSpec    `yaml:"sprite"`
}

type DashSpec struct {
	Enabled      bool          `yaml:"enabled"`
	Speed        float64       `yaml:"speed"`
	Duration     time.Duration `yaml:"duration"`
	Cooldown     time.Duration `yaml:"cooldown"`
	GravityScale float64       `yaml:"gravity_scale"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec](PlayerSpecFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// MoverConfig converts the prefab into controller tuning. basic disables the
// dash regardless of the prefab.
func (s *PlayerSpec) MoverConfig(basic bool) mover.Config {
	return mover.Config{
		MoveSpeed:         s.MoveSpeed,
		JumpForce:         s.JumpForce,
		GroundProbeLength: s.GroundProbeLength,
		BaseGravityScale:  s.GravityScale,
		DashEnabled:       s.Dash.Enabled && !basic,
		DashSpeed:         s.Dash.Speed,
		DashDuration:      s.Dash.Duration,
		DashCooldown:      s.Dash.Cooldown,
		DashGravityScale:  s.Dash.GravityScale,
	}
}

type LevelSpec struct {
	Name      string         `yaml:"name"`
	Gravity   float64        `yaml:"gravity"`
	Width     float64        `yaml:"width"`
	Height    float64        `yaml:"height"`
	Spawn     TransformSpec  `yaml:"spawn"`
	Platforms []PlatformSpec `yaml:"platforms"`
}

type PlatformSpec struct {
	X        float64    `yaml:"x"`
	Y        float64    `yaml:"y"`
	Width    float64    `yaml:"width"`
	Height   float64    `yaml:"height"`
	Friction float64    `yaml:"friction"`
	Color    *YAMLColor `yaml:"color"`
}

func LoadLevelSpec() (*LevelSpec, error) {
	spec, err := LoadSpec[LevelSpec](LevelSpecFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type TransformSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type ColliderSpec struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Mass     float64 `yaml:"mass"`
	Friction float64 `yaml:"friction"`
}

type SpriteSpec struct {
	Width  float64    `yaml:"width"`
	Height float64    `yaml:"height"`
	Color  *YAMLColor `yaml:"color"`
}

type YAMLColor struct {
	color.Color
}

// NRGBA returns the color, or fallback when unset.
func (c *YAMLColor) NRGBA(fallback color.NRGBA) color.NRGBA {
	if c == nil || c.Color == nil {
		return fallback
	}
	return color.NRGBAModel.Convert(c.Color).(color.NRGBA)
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
