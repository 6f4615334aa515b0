// Package fixture loads the YAML program fixtures shared by the engine tests.
package fixture

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/itsmostafa/minipy/internal/interp"
	"github.com/itsmostafa/minipy/internal/lexer"
)

// Program is one fixture: a source text with its expected output and,
// optionally, the name of the fatal error it ends with. MaxSteps runs the
// program under a step limit.
type Program struct {
	Name     string `yaml:"name"`
	Source   string `yaml:"source"`
	MaxSteps int    `yaml:"max_steps,omitempty"`
	Output   string `yaml:"output"`
	Error    string `yaml:"error,omitempty"`
}

var errorKinds = map[string]error{
	"unexpected_token": interp.ErrUnexpectedToken,
	"missing_operand":  interp.ErrMissingOperand,
	"division_by_zero": interp.ErrDivisionByZero,
	"modulo_by_zero":   interp.ErrModuloByZero,
	"number_range":     interp.ErrNumberRange,
	"step_limit":       interp.ErrStepLimit,
	"unexpected_char":  lexer.ErrUnexpectedChar,
}

// WantErr returns the sentinel named by p.Error, or nil when p runs cleanly.
func (p Program) WantErr() (error, error) {
	if p.Error == "" {
		return nil, nil
	}
	err, ok := errorKinds[p.Error]
	if !ok {
		return nil, fmt.Errorf("fixture %q: unknown error kind %q", p.Name, p.Error)
	}
	return err, nil
}

// Load reads a fixture file.
func Load(path string) ([]Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixtures: %w", err)
	}

	var programs []Program
	if err := yaml.Unmarshal(data, &programs); err != nil {
		return nil, fmt.Errorf("failed to parse fixtures %s: %w", path, err)
	}
	if len(programs) == 0 {
		return nil, errors.New("fixture file has no programs")
	}
	for _, p := range programs {
		if _, err := p.WantErr(); err != nil {
			return nil, err
		}
	}
	return programs, nil
}
