package midi

import (
	"errors"
	"fmt"
	"os"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/realscript/realscript/pitchset"
)

const (
	middleC  = 60
	velocity = 90
	tempoBPM = 120
)

// Keys maps the set's pitch classes onto midi keys in the octave
// starting at middle C.
func Keys(set pitchset.PitchSet) []uint8 {
	keys := make([]uint8, 0, set.Len())
	for _, v := range set.Values {
		keys = append(keys, uint8(middleC+v))
	}
	return keys
}

// Render builds a single-track midi file playing the set, either as a
// block chord held for a whole note or as an ascending arpeggio of
// quarter notes.
func Render(set pitchset.PitchSet, arpeggio bool) *smf.SMF {
	var res smf.SMF
	ticks := smf.MetricTicks(960)
	res.TimeFormat = ticks
	quarter := ticks.Ticks4th()

	var track smf.Track
	track.Add(0, smf.MetaTrackSequenceName(set.Name))
	track.Add(0, smf.MetaTempo(tempoBPM))

	keys := Keys(set)
	if arpeggio {
		for _, key := range keys {
			track.Add(0, midi.NoteOn(0, key, velocity))
			track.Add(quarter, midi.NoteOff(0, key))
		}
	} else {
		for _, key := range keys {
			track.Add(0, midi.NoteOn(0, key, velocity))
		}
		for i, key := range keys {
			var delta uint32
			if i == 0 {
				delta = 4 * quarter
			}
			track.Add(delta, midi.NoteOff(0, key))
		}
	}
	track.Close(0)

	res.Tracks = append(res.Tracks, track)
	return &res
}

// WriteFile renders the set and writes it to filepath.
func WriteFile(filepath string, set pitchset.PitchSet, arpeggio bool) error {
	f, err := os.Create(filepath)
	if err != nil {
		errText := fmt.Sprintf("Error creating midi file... %s", err.Error())
		return errors.New(errText)
	}
	defer f.Close()

	if _, err := Render(set, arpeggio).WriteTo(f); err != nil {
		errText := fmt.Sprintf("Error writing midi file... %s", err.Error())
		return errors.New(errText)
	}
	return nil
}
