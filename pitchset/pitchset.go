package pitchset

import (
	"fmt"

	"github.com/realscript/realscript/constants"
	"github.com/realscript/realscript/pitch"
)

// A PitchSet is an ordered collection of pitch classes. Chords, scales
// and melodies are all PitchSets. Every field is derived once at
// construction; arithmetic over sets returns fresh values and never
// mutates the operands.
type PitchSet struct {
	// Values are the pitch classes, each folded into [0,12).
	Values []int
	// IntervalValues are the successive ascending distances between
	// consecutive values.
	IntervalValues []int
	// StructureValues are the cumulative distances of every value
	// from the tonic, 0-prefixed.
	StructureValues []int

	Tonic     string
	Notes     []string
	Intervals []string
	Name      string
	Third     string
}

// New builds a PitchSet from an ordered sequence of pitch values.
// Values arbitrarily far outside [0,12) are folded back in.
func New(values []int) (PitchSet, error) {
	if len(values) == 0 {
		return PitchSet{}, fmt.Errorf("a PitchSet needs at least one value")
	}

	var s PitchSet
	s.Values = pitch.Flatten(values)
	s.IntervalValues = pitch.Intervals(s.Values)
	s.StructureValues = initStructure(s.IntervalValues)

	s.Tonic = constants.Notes[s.Values[0]]
	s.Notes = make([]string, len(s.Values))
	for i, v := range s.Values {
		s.Notes[i] = constants.Notes[v]
	}
	s.Intervals = make([]string, len(s.IntervalValues))
	for i, v := range s.IntervalValues {
		s.Intervals[i] = constants.Intervals[v]
	}
	s.Name = initName(s.Tonic, s.IntervalValues, s.Notes)
	s.Third = initThird(s.StructureValues)
	return s, nil
}

// FromPitch builds a one-note PitchSet.
func FromPitch(value int) PitchSet {
	s, _ := New([]int{value}) // a one-element input cannot fail
	return s
}

// FromSet builds a PitchSet from another set's values.
func FromSet(other PitchSet) PitchSet {
	s, _ := New(other.Values)
	return s
}

func initStructure(intervals []int) []int {
	res := make([]int, len(intervals)+1)
	for i, interval := range intervals {
		res[i+1] = res[i] + interval
	}
	return res
}

func initName(tonic string, intervals []int, notes []string) string {
	if quality, ok := constants.QualityNames[pitch.Key(intervals)]; ok {
		return tonic + quality
	}
	return fmt.Sprintf("Unknown set: %v", notes)
}

// initThird classifies the set by its third. A minor third anywhere in
// the structure wins over a major third; a set with neither is
// suspended.
func initThird(structure []int) string {
	for _, v := range structure {
		if v == 3 {
			return "minor"
		}
	}
	for _, v := range structure {
		if v == 4 {
			return "major"
		}
	}
	return "suspended"
}

func (s PitchSet) Len() int {
	return len(s.Values)
}

func (s PitchSet) String() string {
	return s.Name
}

// Add returns the element-wise modular sum of the two sets.
func (s PitchSet) Add(other PitchSet) (PitchSet, error) {
	return s.combine(other.Values, func(a, b int) int { return a + b })
}

// Sub returns the element-wise modular difference of the two sets.
// Subtraction is true modular subtraction: a.Sub(b) and b.Sub(a) are
// generally different sets.
func (s PitchSet) Sub(other PitchSet) (PitchSet, error) {
	return s.combine(other.Values, func(a, b int) int { return a - b })
}

// AddPitch transposes every value up by n semitones.
func (s PitchSet) AddPitch(n int) PitchSet {
	res, _ := s.Add(FromPitch(n)) // scalar broadcast is always compatible
	return res
}

// SubPitch transposes every value down by n semitones.
func (s PitchSet) SubPitch(n int) PitchSet {
	res, _ := s.Sub(FromPitch(n))
	return res
}

func (s PitchSet) combine(values []int, op func(int, int) int) (PitchSet, error) {
	combined, err := pitch.Combine(s.Values, values, op)
	if err != nil {
		return PitchSet{}, err
	}
	return New(combined)
}

// Invert returns the inversion of the set: the note order rotated left
// by the given number of positions.
func (s PitchSet) Invert(inversion int) (PitchSet, error) {
	values, err := pitch.Invert(s.Values, inversion)
	if err != nil {
		return PitchSet{}, err
	}
	return New(values)
}
