// Package storyboard loads declarative scene scripts from YAML and
// plays them onto a motion.Scene.
//
// A storyboard lists the objects to create and a sequence of steps;
// each step either waits or plays a batch of animation actions. The
// format is deliberately small: anything a storyboard can express maps
// one-to-one onto the Scene and Object APIs.
package storyboard

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/motionkit/motion"
)

// Storyboard is the top-level script.
type Storyboard struct {
	Version int          `yaml:"version"`
	Objects []ObjectSpec `yaml:"objects"`
	Steps   []Step       `yaml:"steps"`
}

// ObjectSpec declares one object by name.
type ObjectSpec struct {
	Name  string `yaml:"name"`
	Shape string `yaml:"shape"` // circle, rectangle, line, text

	At     []float64 `yaml:"at"`
	Radius float64   `yaml:"radius"`
	Width  float64   `yaml:"width"`
	Height float64   `yaml:"height"`
	From   []float64 `yaml:"from"`
	To     []float64 `yaml:"to"`
	Text   string    `yaml:"text"`

	FontSize     float64 `yaml:"fontSize"`
	Color        string  `yaml:"color"`
	Fill         string  `yaml:"fill"`
	Stroke       string  `yaml:"stroke"`
	StrokeWeight float64 `yaml:"strokeWeight"`
}

// Step is one beat of the script: a wait, a play batch, or both. When
// both are present the play happens first.
type Step struct {
	Wait float64 `yaml:"wait"`
	Play *Play   `yaml:"play"`
}

// Play is a batch of actions scheduled together, sharing timing.
type Play struct {
	Duration float64  `yaml:"duration"`
	Ease     string   `yaml:"ease"`
	Lag      float64  `yaml:"lag"`
	Actions  []Action `yaml:"actions"`
}

// Action is one animation request against a named object.
type Action struct {
	Target string `yaml:"target"`
	Do     string `yaml:"do"`

	To     []float64 `yaml:"to"`
	By     []float64 `yaml:"by"`
	Edge   string    `yaml:"edge"`
	Factor float64   `yaml:"factor"`
	Angle  float64   `yaml:"angle"`
	Delta  float64   `yaml:"delta"`
	Value  float64   `yaml:"value"`
	Color  string    `yaml:"color"`
	Size   []float64 `yaml:"size"`
	Into   string    `yaml:"into"`
}

// Load reads and parses a storyboard file.
func Load(path string) (*Storyboard, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("storyboard: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse parses YAML storyboard data and validates it.
func Parse(data []byte) (*Storyboard, error) {
	var sb Storyboard
	if err := yaml.Unmarshal(data, &sb); err != nil {
		return nil, fmt.Errorf("storyboard: parse: %w", err)
	}
	if err := sb.Validate(); err != nil {
		return nil, err
	}
	return &sb, nil
}

// Validate checks names, shapes, easings and action references without
// touching a scene.
func (sb *Storyboard) Validate() error {
	names := make(map[string]bool, len(sb.Objects))
	for i, obj := range sb.Objects {
		if obj.Name == "" {
			return fmt.Errorf("storyboard: object %d has no name", i)
		}
		if names[obj.Name] {
			return fmt.Errorf("storyboard: duplicate object %q", obj.Name)
		}
		names[obj.Name] = true
		switch obj.Shape {
		case "circle", "rectangle", "line", "text":
		default:
			return fmt.Errorf("storyboard: object %q has unknown shape %q", obj.Name, obj.Shape)
		}
	}
	for i, step := range sb.Steps {
		if step.Play == nil {
			continue
		}
		if step.Play.Ease != "" {
			if _, ok := motion.EaseByName(step.Play.Ease); !ok {
				return fmt.Errorf("storyboard: step %d: unknown ease %q", i, step.Play.Ease)
			}
		}
		for _, act := range step.Play.Actions {
			if !names[act.Target] {
				return fmt.Errorf("storyboard: step %d: unknown target %q", i, act.Target)
			}
			if act.Into != "" && !names[act.Into] {
				return fmt.Errorf("storyboard: step %d: unknown morph target %q", i, act.Into)
			}
			if err := validateOp(act); err != nil {
				return fmt.Errorf("storyboard: step %d: %w", i, err)
			}
		}
	}
	return nil
}
