package constants

import (
	"os"

	"github.com/realscript/realscript/pitch"
)

func GetServeAddr() string {
	addr := os.Getenv("SERVE_ADDR")
	if addr != "" {
		return addr
	}
	return ":8080"
}

// Notes are the twelve pitch-class spellings, flats preferred.
var Notes = []string{"C", "Db", "D", "Eb", "E", "F", "F#", "G", "Ab", "A", "Bb", "B"}

// Intervals name the semitone distances 0 through 12.
var Intervals = []string{"P1", "m2", "M2", "m3", "M3", "P4", "TT", "P5", "m6", "M6", "m7", "M7", "P8"}

// Degrees are the scale-degree numerals, zero-based index order.
var Degrees = []string{"I", "II", "III", "IV", "V", "VI", "VII", "VIII"}

// BaseScales maps a scale type to its semitone offsets from an
// implicit tonic 0. "cromatic" keeps the original project's spelling.
var BaseScales = map[string][]int{
	"cromatic":         {0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
	"diatonic":         {0, 2, 4, 5, 7, 9, 11},
	"melodic minor":    {0, 2, 3, 5, 7, 9, 11},
	"harmonic minor":   {0, 2, 3, 5, 7, 8, 11},
	"major pentatonic": {0, 2, 4, 7, 9},
}

// QualityIntervals maps a chord or scale quality to its successive
// interval steps. Scale qualities carry a leading space so that
// tonic + quality reads naturally ("C" + " ionian").
var QualityIntervals = map[string][]int{

	// Triads
	"":    {4, 3},
	"m":   {3, 4},
	"dim": {3, 3, 3},

	// 7th chords
	"maj7":     {4, 3, 4},
	"m7":       {3, 4, 3},
	"7":        {4, 3, 3},
	"m7b5":     {3, 3, 4},
	"m7(maj7)": {3, 4, 4},
	"maj7(#5)": {4, 4, 3},

	// Scales
	" cromatic":         {1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	" ionian":           {2, 2, 1, 2, 2, 2},
	" dorian":           {2, 1, 2, 2, 2, 1},
	" phrygian":         {1, 2, 2, 2, 1, 2},
	" lydian":           {2, 2, 2, 1, 2, 2},
	" mixolydian":       {2, 2, 1, 2, 2, 1},
	" aeolian":          {2, 1, 2, 2, 1, 2},
	" locrian":          {1, 2, 2, 1, 2, 2},
	" harmonic minor":   {2, 1, 2, 2, 1, 3},
	" melodic minor":    {2, 1, 2, 2, 2, 2},
	" major pentatonic": {2, 2, 3, 2},
}

// NoteValues, DegreeValues and QualityNames are reverse lookups built
// once at startup and never written again.
var (
	NoteValues   = make(map[string]int)
	DegreeValues = make(map[string]int)
	QualityNames = make(map[string]string)
)

func init() {
	for value, note := range Notes {
		NoteValues[note] = value
	}
	for value, degree := range Degrees {
		DegreeValues[degree] = value
	}
	for quality, intervals := range QualityIntervals {
		QualityNames[pitch.Key(intervals)] = quality
	}
}
