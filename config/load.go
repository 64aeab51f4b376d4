package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings aggregates every configuration instance for file round trips.
type Settings struct {
	Player  PlayerConfig  `yaml:"player"`
	Camera  CameraConfig  `yaml:"camera"`
	Blast   BlastConfig   `yaml:"blast"`
	Prop    PropConfig    `yaml:"prop"`
	Physics PhysicsConfig `yaml:"physics"`
	Window  WindowConfig  `yaml:"window"`
	Debug   DebugConfig   `yaml:"debug"`
}

// Current returns a copy of the active configuration.
func Current() Settings {
	return Settings{
		Player:  Player,
		Camera:  Camera,
		Blast:   Blast,
		Prop:    Prop,
		Physics: Physics,
		Window:  Window,
		Debug:   Debug,
	}
}

// Apply makes s the active configuration.
func (s Settings) Apply() {
	Player = s.Player
	Camera = s.Camera
	Blast = s.Blast
	Prop = s.Prop
	Physics = s.Physics
	Window = s.Window
	Debug = s.Debug
}

// Validate reports values the simulation cannot run with.
func (s Settings) Validate() error {
	var errs []error
	if s.Player.Radius <= 0 {
		errs = append(errs, errors.New("player.radius must be positive"))
	}
	if s.Player.Mass <= 0 {
		errs = append(errs, errors.New("player.mass must be positive"))
	}
	if s.Player.MaxPitch <= 0 || s.Player.MaxPitch > 90 {
		errs = append(errs, errors.New("player.max_pitch must be in (0, 90]"))
	}
	if s.Player.MaxHorizontalSpeed < 0 {
		errs = append(errs, errors.New("player.max_horizontal_speed must not be negative"))
	}
	if s.Camera.Offset < 0.25 || s.Camera.Offset > 0.5 {
		errs = append(errs, errors.New("camera.offset must be in [0.25, 0.5]"))
	}
	if s.Blast.Duration <= 0 {
		errs = append(errs, errors.New("blast.duration must be positive"))
	}
	if s.Blast.Radius <= 0 {
		errs = append(errs, errors.New("blast.radius must be positive"))
	}
	if s.Prop.Radius <= 0 || s.Prop.Mass <= 0 {
		errs = append(errs, errors.New("prop.radius and prop.mass must be positive"))
	}
	if s.Physics.FixedStep <= 0 {
		errs = append(errs, errors.New("physics.fixed_step must be positive"))
	}
	if s.Physics.MaxSubsteps < 1 {
		errs = append(errs, errors.New("physics.max_substeps must be at least 1"))
	}
	if s.Physics.Bounds <= 0 || s.Physics.CellSize <= 0 {
		errs = append(errs, errors.New("physics.bounds and physics.cell_size must be positive"))
	}
	if s.Window.TPS <= 0 {
		errs = append(errs, errors.New("window.tps must be positive"))
	}
	return errors.Join(errs...)
}

// Load reads the provided configuration files in order on top of the active
// configuration, validates the result and applies it. With no paths the
// active configuration is validated and kept.
func Load(paths ...string) (Settings, error) {
	settings := Current()

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return Settings{}, fmt.Errorf("could not read config file %s: %w", path, err)
		}

		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(&settings); err != nil && !errors.Is(err, io.EOF) {
			return Settings{}, fmt.Errorf("could not merge config file %s: %w", path, err)
		}
	}

	if err := settings.Validate(); err != nil {
		return Settings{}, fmt.Errorf("config is not valid: %w", err)
	}

	settings.Apply()
	return settings, nil
}

// Marshal renders s as YAML.
func (s Settings) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(s); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
