package tonality

import (
	"fmt"

	"github.com/realscript/realscript/constants"
	"github.com/realscript/realscript/pitch"
	"github.com/realscript/realscript/pitchset"
)

// DefaultChordSize is the number of notes stacked by Chord and Chords
// when the caller passes a size of 0 or less.
const DefaultChordSize = 4

// A Tonality is a scale anchored to a tonic, scale type and mode.
// Everything is computed at construction and immutable afterwards.
type Tonality struct {
	Tonic     string
	ScaleType string
	Mode      string

	// Cromatic is the chromatic scale rotated to start at the tonic.
	Cromatic pitchset.PitchSet
	// Scale is the selected mode of the selected scale type,
	// transposed to start at the tonic.
	Scale pitchset.PitchSet
}

// New builds a Tonality. An empty scaleType defaults to "diatonic",
// an empty mode to "I".
func New(tonic, scaleType, mode string) (*Tonality, error) {
	if scaleType == "" {
		scaleType = "diatonic"
	}
	if mode == "" {
		mode = "I"
	}

	tonicValue, ok := constants.NoteValues[tonic]
	if !ok {
		return nil, fmt.Errorf("unknown tonic: %v", tonic)
	}
	template, ok := constants.BaseScales[scaleType]
	if !ok {
		return nil, fmt.Errorf("unknown scale type: %v", scaleType)
	}
	modeValue, ok := constants.DegreeValues[mode]
	if !ok {
		return nil, fmt.Errorf("unknown mode: %v", mode)
	}
	if modeValue+1 > len(template) {
		return nil, fmt.Errorf(
			"the %v scale only has %v degrees but the %v was requested",
			scaleType, len(template), mode)
	}

	cromaticValues, err := pitch.Invert(constants.BaseScales["cromatic"], tonicValue)
	if err != nil {
		return nil, err
	}
	cromatic, err := pitchset.New(cromaticValues)
	if err != nil {
		return nil, err
	}
	scale, err := initScale(tonicValue, template, modeValue)
	if err != nil {
		return nil, err
	}

	return &Tonality{
		Tonic:     tonic,
		ScaleType: scaleType,
		Mode:      mode,
		Cromatic:  cromatic,
		Scale:     scale,
	}, nil
}

// initScale rotates the base template to the requested mode and lays
// the resulting interval pattern onto the tonic.
func initScale(tonicValue int, template []int, modeValue int) (pitchset.PitchSet, error) {
	size := len(template)
	values := make([]int, 1, size)
	values[0] = tonicValue
	for i := 0; i < size-1; i++ {
		prev := template[(i+modeValue)%size]
		next := template[(i+modeValue+1)%size]
		values = append(values, values[i]+pitch.Pitch(next-prev))
	}
	return pitchset.New(values)
}

func (t *Tonality) String() string {
	return t.Scale.Name
}

// Chord stacks every other scale note starting at the given degree
// (a numeral from I up to the scale's last degree) and truncates the
// stack to size notes.
func (t *Tonality) Chord(degree string, size int) (pitchset.PitchSet, error) {
	value, ok := constants.DegreeValues[degree]
	if !ok {
		return pitchset.PitchSet{}, fmt.Errorf("invalid degree: %v", degree)
	}
	return t.chord(value, size, degree)
}

// ChordAt is Chord for a 1-based ordinal degree.
func (t *Tonality) ChordAt(degree, size int) (pitchset.PitchSet, error) {
	return t.chord(degree-1, size, degree)
}

// Chords returns one stacked chord per requested degree, in request
// order.
func (t *Tonality) Chords(degrees []string, size int) ([]pitchset.PitchSet, error) {
	res := make([]pitchset.PitchSet, 0, len(degrees))
	for _, degree := range degrees {
		c, err := t.Chord(degree, size)
		if err != nil {
			return nil, err
		}
		res = append(res, c)
	}
	return res, nil
}

func (t *Tonality) chord(index, size int, degree any) (pitchset.PitchSet, error) {
	if index < 0 || index >= t.Scale.Len() {
		return pitchset.PitchSet{}, fmt.Errorf(
			"invalid degree %v for a %v-note scale", degree, t.Scale.Len())
	}
	if size <= 0 {
		size = DefaultChordSize
	}

	// Three octaves of the scale so that stacking past the octave
	// boundary needs no wraparound arithmetic.
	repeated := make([]int, 0, t.Scale.Len()*3)
	for i := 0; i < 3; i++ {
		repeated = append(repeated, t.Scale.Values...)
	}

	var values []int
	for i := index; i < index+14 && i < len(repeated); i += 2 {
		values = append(values, repeated[i])
	}
	if len(values) > size {
		values = values[:size]
	}
	return pitchset.New(values)
}
