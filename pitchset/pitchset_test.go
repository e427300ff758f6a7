package pitchset

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRejectsEmptyInput(t *testing.T) {
	_, err := New([]int{})
	assert.Error(t, err)
}

func TestNormalizesValues(t *testing.T) {
	assert := assert.New(t)
	s, err := New([]int{12, 16, 19})
	assert.NoError(err)
	assert.Equal([]int{0, 4, 7}, s.Values)
	assert.Equal([]int{4, 3}, s.IntervalValues)
	assert.Equal([]int{0, 4, 7}, s.StructureValues)
}

func TestOctaveEquivalence(t *testing.T) {
	assert := assert.New(t)
	base, err := New([]int{0, 4, 7})
	assert.NoError(err)
	shifted, err := New([]int{24, 28, 31})
	assert.NoError(err)
	assert.Equal(base, shifted)
}

func TestNaming(t *testing.T) {
	cases := []struct {
		values []int
		name   string
	}{
		{[]int{0, 4, 7}, "C"},
		{[]int{0, 3, 7}, "Cm"},
		{[]int{0, 4, 7, 11}, "Cmaj7"},
		{[]int{9, 0, 4, 7}, "Am7"},
		{[]int{7, 11, 2, 5}, "G7"},
		{[]int{2, 5, 8, 11}, "Ddim"},
		{[]int{0, 2, 4, 5, 7, 9, 11}, "C ionian"},
		{[]int{9, 11, 0, 2, 4, 5, 7}, "A aeolian"},
		{[]int{0, 2, 4, 7, 9}, "C major pentatonic"},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("names %v as %v", c.values, c.name), func(t *testing.T) {
			s, err := New(c.values)
			assert.NoError(t, err)
			assert.Equal(t, c.name, s.Name)
		})
	}
}

func TestUnknownShapeFallsBackToUnknownName(t *testing.T) {
	assert := assert.New(t)
	s, err := New([]int{0, 1, 6})
	assert.NoError(err)
	assert.Equal("Unknown set: [C Db F#]", s.Name)
	assert.Equal("C", s.Tonic)
}

func TestThirdClassification(t *testing.T) {
	assert := assert.New(t)

	minor, _ := New([]int{0, 3, 7})
	assert.Equal("minor", minor.Third)

	major, _ := New([]int{0, 4, 7})
	assert.Equal("major", major.Third)

	sus, _ := New([]int{0, 2, 7})
	assert.Equal("suspended", sus.Third)

	// a minor third wins even when a major third is also present
	both, _ := New([]int{0, 3, 4, 7})
	assert.Equal("minor", both.Third)
}

func TestSingleNoteSet(t *testing.T) {
	assert := assert.New(t)
	s := FromPitch(21)
	assert.Equal([]int{9}, s.Values)
	assert.Equal("A", s.Tonic)
	assert.Equal("Unknown set: [A]", s.Name)
	assert.Equal("suspended", s.Third)
}

func TestFromSetCopies(t *testing.T) {
	assert := assert.New(t)
	original, _ := New([]int{0, 4, 7})
	clone := FromSet(original)
	assert.Equal(original, clone)

	clone.Values[0] = 5
	assert.Equal(0, original.Values[0])
}

func TestAddDoesNotMutateOperands(t *testing.T) {
	assert := assert.New(t)
	a, _ := New([]int{0, 4, 7})
	b, _ := New([]int{1, 1, 1})

	sum, err := a.Add(b)
	assert.NoError(err)
	assert.Equal([]int{1, 5, 8}, sum.Values)
	assert.Equal([]int{0, 4, 7}, a.Values)
	assert.Equal([]int{1, 1, 1}, b.Values)
}

func TestSubIsNotReversedAdd(t *testing.T) {
	assert := assert.New(t)
	a, _ := New([]int{0, 4, 7})
	b, _ := New([]int{3, 3, 3})

	diff, err := a.Sub(b)
	assert.NoError(err)
	assert.Equal([]int{9, 1, 4}, diff.Values)

	reversed, err := b.Sub(a)
	assert.NoError(err)
	assert.NotEqual(diff.Values, reversed.Values)
}

func TestTransposeRoundTrips(t *testing.T) {
	assert := assert.New(t)
	cMajor, _ := New([]int{0, 2, 4, 5, 7, 9, 11})

	// up a fifth and up a fourth is a whole octave
	upFifth := cMajor.AddPitch(7)
	assert.Equal("G ionian", upFifth.Name)
	assert.Equal(cMajor, upFifth.AddPitch(5))

	// and straight back down restores it too
	assert.Equal(cMajor, upFifth.SubPitch(7))
}

func TestAddIncompatibleLengths(t *testing.T) {
	a, _ := New([]int{0, 4})
	b, _ := New([]int{0, 4, 7})
	_, err := a.Add(b)
	assert.Error(t, err)
}

func TestInvertRoundTrip(t *testing.T) {
	assert := assert.New(t)
	s, _ := New([]int{0, 4, 7, 11})

	first, err := s.Invert(1)
	assert.NoError(err)
	assert.Equal([]int{4, 7, 11, 0}, first.Values)

	restored, err := first.Invert(-1)
	assert.NoError(err)
	assert.Equal(s.Values, restored.Values)
}

func TestInvertOutOfRange(t *testing.T) {
	s, _ := New([]int{0, 4, 7})
	_, err := s.Invert(4)
	assert.Error(t, err)
}
