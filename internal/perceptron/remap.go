package perceptron

import "fmt"

// RangeSpec is a closed numeric interval used as a remap endpoint.
type RangeSpec struct {
	Min float64
	Max float64
}

func (r RangeSpec) Degenerate() bool {
	return r.Min == r.Max
}

// RemapTo maps value from r onto dst.
func (r RangeSpec) RemapTo(dst RangeSpec, value float64) float64 {
	return RemapLinear(value, r.Min, r.Max, dst.Min, dst.Max)
}

// Inverse returns the ranges that undo a remap from r to dst.
func (r RangeSpec) Inverse(dst RangeSpec) (RangeSpec, RangeSpec) {
	return dst, r
}

// RemapLinear is the unclamped affine map taking [srcMin, srcMax] onto
// [dstMin, dstMax]. Values outside the source range land outside the target
// range. srcMin == srcMax divides by zero and yields Inf or NaN.
func RemapLinear(value, srcMin, srcMax, dstMin, dstMax float64) float64 {
	return dstMin + ((dstMax-dstMin)/(srcMax-srcMin))*(value-srcMin)
}

// RangesFromPairs converts [min, max] pairs into ranges.
func RangesFromPairs(pairs [][]float64) ([]RangeSpec, error) {
	out := make([]RangeSpec, 0, len(pairs))
	for i, pair := range pairs {
		if len(pair) != 2 {
			return nil, fmt.Errorf("%w: range %d has %d values", ErrMalformedRange, i, len(pair))
		}
		out = append(out, RangeSpec{Min: pair[0], Max: pair[1]})
	}
	return out, nil
}
