package perceptron

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// WeightSource yields the flat weight line a shell is initialized from.
// ok is false when the source is absent or cannot be read.
type WeightSource interface {
	WeightLine(ctx context.Context) (line string, ok bool, err error)
}

// FileSource reads the first line of a weight file.
type FileSource string

func (p FileSource) WeightLine(_ context.Context) (string, bool, error) {
	f, err := os.Open(string(p))
	if err != nil {
		return "", false, nil
	}
	defer f.Close()

	line, ok := readFirstLine(f)
	return line, ok, nil
}

// LineSource is an in-memory weight line.
type LineSource string

func (l LineSource) WeightLine(_ context.Context) (string, bool, error) {
	return string(l), true, nil
}

func readFirstLine(r io.Reader) (string, bool) {
	reader := bufio.NewReader(r)
	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", false
	}
	if err == io.EOF && line == "" {
		return "", false
	}
	return strings.TrimRight(line, "\r\n"), true
}

// ParseWeightLine splits line on whitespace and parses each token as a float.
func ParseWeightLine(line string) ([]float64, error) {
	tokens := strings.Fields(line)
	weights := make([]float64, 0, len(tokens))
	for i, token := range tokens {
		v, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: token %d %q", ErrMalformedToken, i, token)
		}
		weights = append(weights, v)
	}
	return weights, nil
}

// FormatWeightLine renders weights in the flat weight-file format.
func FormatWeightLine(weights []float64) string {
	parts := make([]string, len(weights))
	for i, w := range weights {
		parts[i] = formatFloat(w)
	}
	return strings.Join(parts, " ")
}

// WriteWeights writes the current weights as a one-line weight file.
func (s *Shell) WriteWeights(w io.Writer) error {
	_, err := io.WriteString(w, FormatWeightLine(s.weights)+"\n")
	return err
}
