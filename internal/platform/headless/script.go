// Package headless plays scripted input against a device with a synthetic
// clock. Nothing is drawn to a real panel; the final frame is returned.
package headless

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/pocket-console/internal/core"
)

// ErrBadScript wraps every script validation failure.
var ErrBadScript = errors.New("headless: bad script")

// Script is a sequence of input steps.
type Script struct {
	Steps []Step `yaml:"steps"`
}

// Step holds a set of lines for a number of ticks. Lines not named are
// released, and the stick is centered unless X or Y say otherwise.
type Step struct {
	Hold  []string `yaml:"hold,omitempty"`  // Button names
	X     string   `yaml:"x,omitempty"`     // left, right
	Y     string   `yaml:"y,omitempty"`     // up, down
	Ticks int      `yaml:"ticks,omitempty"` // Defaults to 1
}

// ParseScript decodes and validates a YAML script.
func ParseScript(data []byte) (Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Script{}, fmt.Errorf("headless: parse script: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Script{}, err
	}
	return s, nil
}

// LoadScript reads a script file.
func LoadScript(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("headless: read script: %w", err)
	}
	return ParseScript(data)
}

// Validate checks every step.
func (s Script) Validate() error {
	for i, st := range s.Steps {
		if st.Ticks < 0 {
			return fmt.Errorf("%w: step %d: negative ticks", ErrBadScript, i)
		}
		if _, err := st.buttons(); err != nil {
			return fmt.Errorf("%w: step %d: %w", ErrBadScript, i, err)
		}
		if _, err := zone(st.X, "left", "right"); err != nil {
			return fmt.Errorf("%w: step %d: x: %w", ErrBadScript, i, err)
		}
		if _, err := zone(st.Y, "up", "down"); err != nil {
			return fmt.Errorf("%w: step %d: y: %w", ErrBadScript, i, err)
		}
	}
	return nil
}

// TotalTicks returns how many ticks the script runs.
func (s Script) TotalTicks() int {
	n := 0
	for _, st := range s.Steps {
		n += st.ticks()
	}
	return n
}

func (st Step) ticks() int {
	if st.Ticks == 0 {
		return 1
	}
	return st.Ticks
}

func (st Step) buttons() ([]core.Button, error) {
	bs := make([]core.Button, 0, len(st.Hold))
	for _, name := range st.Hold {
		b, ok := core.ParseButton(name)
		if !ok {
			return nil, fmt.Errorf("unknown button %q", name)
		}
		bs = append(bs, b)
	}
	return bs, nil
}

func zone(v, low, high string) (core.Direction, error) {
	switch strings.ToLower(v) {
	case "", "center":
		return core.DirNeutral, nil
	case low:
		return core.DirLow, nil
	case high:
		return core.DirHigh, nil
	default:
		return core.DirNeutral, fmt.Errorf("unknown direction %q", v)
	}
}
