package perceptron

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"
)

// Shell holds the inputs and weights of a single-layer perceptron. Both
// vectors have the length fixed at construction.
type Shell struct {
	inputs  []float64
	weights []float64
	strict  bool
}

// WeightOrigin reports which construction path produced the weights.
type WeightOrigin int

const (
	OriginRandom WeightOrigin = iota
	OriginSource
	OriginFallbackMissing
	OriginFallbackCount
)

func (o WeightOrigin) String() string {
	switch o {
	case OriginRandom:
		return "random"
	case OriginSource:
		return "source"
	case OriginFallbackMissing:
		return "fallback-missing"
	case OriginFallbackCount:
		return "fallback-count"
	default:
		return "unknown"
	}
}

// Fallback reports whether the source was skipped in favour of random weights.
func (o WeightOrigin) Fallback() bool {
	return o == OriginFallbackMissing || o == OriginFallbackCount
}

// New builds a shell with n zero inputs and n weights drawn uniformly from [0, 1).
func New(n int, rng *rand.Rand) (*Shell, error) {
	s, err := newShell(n)
	if err != nil {
		return nil, err
	}
	s.randomizeWeights(ensureRNG(rng))
	return s, nil
}

// NewFromSource builds a shell whose weights come from the first line of src.
// An unavailable source or a line holding the wrong number of weights falls
// back to random weights; a token that is not a number is an error.
func NewFromSource(ctx context.Context, n int, src WeightSource, rng *rand.Rand) (*Shell, WeightOrigin, error) {
	s, err := newShell(n)
	if err != nil {
		return nil, OriginRandom, err
	}
	if src == nil {
		s.randomizeWeights(ensureRNG(rng))
		return s, OriginFallbackMissing, nil
	}

	line, ok, err := src.WeightLine(ctx)
	if err != nil {
		return nil, OriginRandom, err
	}
	if !ok {
		s.randomizeWeights(ensureRNG(rng))
		return s, OriginFallbackMissing, nil
	}

	weights, err := ParseWeightLine(line)
	if err != nil {
		return nil, OriginRandom, err
	}
	if len(weights) != n {
		s.randomizeWeights(ensureRNG(rng))
		return s, OriginFallbackCount, nil
	}
	copy(s.weights, weights)
	return s, OriginSource, nil
}

// NewFromFile is NewFromSource over a weight file on disk.
func NewFromFile(ctx context.Context, n int, path string, rng *rand.Rand) (*Shell, WeightOrigin, error) {
	return NewFromSource(ctx, n, FileSource(path), rng)
}

func newShell(n int) (*Shell, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}
	return &Shell{
		inputs:  make([]float64, n),
		weights: make([]float64, n),
	}, nil
}

func (s *Shell) randomizeWeights(rng *rand.Rand) {
	for i := range s.weights {
		s.weights[i] = rng.Float64()
	}
}

func ensureRNG(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

func (s *Shell) Len() int {
	return len(s.inputs)
}

func (s *Shell) Inputs() []float64 {
	return append([]float64(nil), s.inputs...)
}

func (s *Shell) Weights() []float64 {
	return append([]float64(nil), s.weights...)
}

// SetStrict switches length and range precondition failures from silent
// no-ops to returned errors.
func (s *Shell) SetStrict(strict bool) {
	s.strict = strict
}

func (s *Shell) Strict() bool {
	return s.strict
}

// CollectInputs replaces the inputs with values. A call with the wrong number
// of values leaves the inputs untouched and only reports an error in strict
// mode.
func (s *Shell) CollectInputs(values ...float64) error {
	if len(values) != len(s.inputs) {
		return s.reject(fmt.Errorf("%w: got %d inputs, want %d", ErrLengthMismatch, len(values), len(s.inputs)))
	}
	copy(s.inputs, values)
	return nil
}

// MapInputs remaps every input from inputRanges[i] to newRanges[i].
func (s *Shell) MapInputs(inputRanges, newRanges []RangeSpec) error {
	n := len(s.inputs)
	if len(inputRanges) != n || len(newRanges) != n {
		return s.reject(fmt.Errorf("%w: got %d source and %d target ranges, want %d",
			ErrLengthMismatch, len(inputRanges), len(newRanges), n))
	}
	if s.strict {
		for i, r := range inputRanges {
			if r.Degenerate() {
				return fmt.Errorf("%w: input %d has min == max == %v", ErrDegenerateRange, i, r.Min)
			}
		}
	}
	for i := range s.inputs {
		s.inputs[i] = inputRanges[i].RemapTo(newRanges[i], s.inputs[i])
	}
	return nil
}

// MapInputPairs is MapInputs over raw [min, max] pairs.
func (s *Shell) MapInputPairs(inputRanges, newRanges [][]float64) error {
	src, err := RangesFromPairs(inputRanges)
	if err != nil {
		return s.reject(err)
	}
	dst, err := RangesFromPairs(newRanges)
	if err != nil {
		return s.reject(err)
	}
	return s.MapInputs(src, dst)
}

func (s *Shell) reject(err error) error {
	if s.strict {
		return err
	}
	return nil
}

// String renders the input count followed by both vectors.
func (s *Shell) String() string {
	var b strings.Builder
	b.WriteString("perceptron n=")
	b.WriteString(strconv.Itoa(len(s.inputs)))
	b.WriteString(" inputs=")
	writeVector(&b, s.inputs)
	b.WriteString(" weights=")
	writeVector(&b, s.weights)
	return b.String()
}

func writeVector(b *strings.Builder, values []float64) {
	b.WriteByte('[')
	for i, v := range values {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(formatFloat(v))
	}
	b.WriteByte(']')
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
