package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/realscript/realscript/midi"
	"github.com/realscript/realscript/pitchset"
	"github.com/realscript/realscript/tonality"
)

var exportScaleType string
var exportMode string
var exportSize int
var exportOut string
var exportArpeggio bool

func init() {
	exportCmd.Flags().StringVar(&exportScaleType, "type", "", "base scale type (default diatonic)")
	exportCmd.Flags().StringVar(&exportMode, "mode", "", "mode degree (default I)")
	exportCmd.Flags().IntVar(&exportSize, "size", tonality.DefaultChordSize, "notes per chord")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output filename (default a fresh uuid)")
	exportCmd.Flags().BoolVar(&exportArpeggio, "arpeggio", false, "play notes one at a time")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <tonic> [degree]",
	Short: "Writes a scale or chord to a midi file",
	Long:  `Writes a scale or chord to a midi file`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 && len(args) != 2 {
			panic("Need a tonic and optionally 1 degree...")
		}
		t, err := tonality.New(args[0], exportScaleType, exportMode)
		if err != nil {
			panic("Could not build tonality: " + err.Error())
		}

		var set pitchset.PitchSet
		if len(args) == 2 {
			set, err = t.Chord(args[1], exportSize)
			if err != nil {
				panic("Could not build chord: " + err.Error())
			}
		} else {
			set = t.Scale
		}

		out := exportOut
		if out == "" {
			out = uuid.New().String() + ".mid"
		}
		if err := midi.WriteFile(out, set, exportArpeggio); err != nil {
			panic("Could not export midi file: " + err.Error())
		}
		fmt.Printf("Wrote %v to %v\n", set.Name, out)
	},
}
