package pitch

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// Octave is the number of semitones before pitch classes repeat.
const Octave = 12

// Pitch folds a single value into the pitch-class range [0,12) by
// repeated octave shifts.
func Pitch[A constraints.Integer](value A) A {
	for value < 0 {
		value += Octave
	}
	for value >= Octave {
		value -= Octave
	}
	return value
}

// Flatten folds every element into [0,12) element-wise. The result is
// always a slice of the same length, even for a single element; Pitch
// is the scalar entry point.
func Flatten[A constraints.Integer](values []A) []A {
	res := make([]A, len(values))
	for i, v := range values {
		res[i] = Pitch(v)
	}
	return res
}

// Intervals returns the successive ascending distances between
// consecutive values. The distance is always non-negative: a numeric
// drop from one value to the next wraps around the octave.
func Intervals[A constraints.Integer](values []A) []A {
	if len(values) < 2 {
		return nil
	}
	res := make([]A, 0, len(values)-1)
	for i, next := range values[1:] {
		res = append(res, Pitch(next-values[i]))
	}
	return res
}

// Invert rotates values left by inversion positions, re-closing the
// sequence. Negative inversions rotate right.
func Invert[A constraints.Integer](values []A, inversion int) ([]A, error) {
	size := len(values)
	if inversion > size-1 || -inversion > size-1 {
		return nil, fmt.Errorf("inversion %v out of range for %v values", inversion, size)
	}
	offset := inversion
	if offset < 0 {
		offset += size
	}
	res := make([]A, 0, size)
	res = append(res, values[offset:]...)
	res = append(res, values[:offset]...)
	return res, nil
}

// Combine applies op element-wise over two sequences of compatible
// length: equal lengths, or either side a single value broadcast over
// the other. The result is not folded; callers flatten when they need
// pitch classes.
func Combine[A constraints.Integer](a, b []A, op func(A, A) A) ([]A, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, fmt.Errorf("cannot combine empty sequences")
	}
	if len(a) != len(b) && len(a) != 1 && len(b) != 1 {
		return nil, fmt.Errorf("cannot combine %v values with %v values", len(a), len(b))
	}
	size := len(a)
	if len(b) > size {
		size = len(b)
	}
	res := make([]A, size)
	for i := 0; i < size; i++ {
		res[i] = op(a[i%len(a)], b[i%len(b)])
	}
	return res, nil
}

// Key renders an interval sequence as a stable string for table
// lookups, e.g. (4,3) -> "4-3".
func Key[A constraints.Integer](values []A) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%v", v)
	}
	return strings.Join(parts, "-")
}
