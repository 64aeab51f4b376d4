package headless

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/automoto/rocketbox/components"
	cfg "github.com/automoto/rocketbox/config"
	"gopkg.in/yaml.v3"
)

// ErrEmptyScript is returned for a scenario with no frames.
var ErrEmptyScript = errors.New("scenario has no frames")

// ScriptStep is one entry of a YAML scenario.
type ScriptStep struct {
	Frames int        `yaml:"frames"`
	Hold   []string   `yaml:"hold,omitempty,flow"`
	Press  []string   `yaml:"press,omitempty,flow"` // held for the first frame only
	Mouse  [2]float32 `yaml:"mouse,omitempty,flow"` // per frame
}

type scriptFile struct {
	Dt    float32      `yaml:"dt"`
	Steps []ScriptStep `yaml:"steps"`
}

type compiledStep struct {
	frames int
	hold   [cfg.ActionCount]bool
	press  [cfg.ActionCount]bool
	mouseX float32
	mouseY float32
}

// Script replays a scenario as an input source. Once the scenario is over it
// keeps returning idle samples.
type Script struct {
	dt    float32
	steps []compiledStep
	total int

	step  int
	frame int
}

// LoadScript reads a scenario file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read scenario %s: %w", path, err)
	}
	s, err := ParseScript(data)
	if err != nil {
		return nil, fmt.Errorf("could not parse scenario %s: %w", path, err)
	}
	return s, nil
}

// ParseScript decodes a YAML scenario. A missing dt defaults to one window
// tick.
func ParseScript(data []byte) (*Script, error) {
	var file scriptFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return NewScript(file.Dt, file.Steps)
}

// NewScript compiles steps, validating action names.
func NewScript(dt float32, steps []ScriptStep) (*Script, error) {
	if dt <= 0 {
		dt = 1 / float32(cfg.Window.TPS)
	}

	s := &Script{dt: dt}
	for i, step := range steps {
		if step.Frames < 1 {
			return nil, fmt.Errorf("step %d: frames must be at least 1", i)
		}
		c := compiledStep{frames: step.Frames, mouseX: step.Mouse[0], mouseY: step.Mouse[1]}
		if err := markActions(&c.hold, step.Hold); err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		if err := markActions(&c.press, step.Press); err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		s.steps = append(s.steps, c)
		s.total += step.Frames
	}
	if s.total == 0 {
		return nil, ErrEmptyScript
	}
	return s, nil
}

func markActions(dst *[cfg.ActionCount]bool, names []string) error {
	for _, name := range names {
		id, err := cfg.ParseAction(name)
		if err != nil {
			return err
		}
		dst[id] = true
	}
	return nil
}

// Len is the number of scripted frames.
func (s *Script) Len() int {
	return s.total
}

// Done reports whether every scripted frame has been sampled.
func (s *Script) Done() bool {
	return s.step >= len(s.steps)
}

func (s *Script) Sample() components.InputSample {
	sample := components.InputSample{Dt: s.dt}
	if s.Done() {
		return sample
	}

	step := s.steps[s.step]
	sample.Held = step.hold
	if s.frame == 0 {
		for i, pressed := range step.press {
			if pressed {
				sample.Held[i] = true
			}
		}
	}
	sample.MouseDX = step.mouseX
	sample.MouseDY = step.mouseY

	s.frame++
	if s.frame >= step.frames {
		s.step++
		s.frame = 0
	}
	return sample
}
