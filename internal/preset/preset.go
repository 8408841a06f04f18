// Package preset holds named range configurations for perceptron inputs.
package preset

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"perceptron/internal/perceptron"
)

const Arithmetic = "arithmetic"

var ErrUnknownOperator = errors.New("unknown operator")

// Preset fixes the input count and the remap applied after inputs are collected.
type Preset struct {
	Name         string
	Inputs       int
	InputRanges  []perceptron.RangeSpec
	OutputRanges []perceptron.RangeSpec
}

var (
	operandRange  = perceptron.RangeSpec{Min: 0, Max: 100}
	operandTarget = perceptron.RangeSpec{Min: 0, Max: 1}
	// Character codes of '+' and '-' mapped onto +1 and -1.
	operatorRange  = perceptron.RangeSpec{Min: '+', Max: '-'}
	operatorTarget = perceptron.RangeSpec{Min: 1, Max: -1}
)

var builtins = map[string]Preset{
	Arithmetic: {
		Name:         Arithmetic,
		Inputs:       3,
		InputRanges:  []perceptron.RangeSpec{operandRange, operatorRange, operandRange},
		OutputRanges: []perceptron.RangeSpec{operandTarget, operatorTarget, operandTarget},
	},
}

// Lookup returns the preset registered under name after normalization.
func Lookup(name string) (Preset, bool) {
	p, ok := builtins[Normalize(name)]
	if !ok {
		return Preset{}, false
	}
	p.InputRanges = append([]perceptron.RangeSpec(nil), p.InputRanges...)
	p.OutputRanges = append([]perceptron.RangeSpec(nil), p.OutputRanges...)
	return p, true
}

func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply remaps the shell inputs with the preset ranges.
func (p Preset) Apply(s *perceptron.Shell) error {
	return s.MapInputs(p.InputRanges, p.OutputRanges)
}

// OperatorCode returns the character code used as the operator input.
func OperatorCode(op string) (float64, error) {
	switch strings.TrimSpace(op) {
	case "+", "plus", "add":
		return '+', nil
	case "-", "minus", "sub":
		return '-', nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownOperator, op)
	}
}

// Normalize canonicalizes preset names and aliases.
func Normalize(name string) string {
	normalized := strings.TrimSpace(strings.ToLower(name))
	normalized = strings.ReplaceAll(normalized, "_", "-")
	normalized = strings.ReplaceAll(normalized, " ", "-")
	normalized = strings.Trim(normalized, "-")
	switch strings.ReplaceAll(normalized, "-", "") {
	case "arithmetic", "addsub", "additionsubtraction", "twodigit":
		return Arithmetic
	}
	return normalized
}
