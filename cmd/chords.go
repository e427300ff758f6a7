package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/realscript/realscript/tonality"
)

var chordsScaleType string
var chordsMode string
var chordsSize int

func init() {
	chordsCmd.Flags().StringVar(&chordsScaleType, "type", "", "base scale type (default diatonic)")
	chordsCmd.Flags().StringVar(&chordsMode, "mode", "", "mode degree (default I)")
	chordsCmd.Flags().IntVar(&chordsSize, "size", tonality.DefaultChordSize, "notes per chord")
	rootCmd.AddCommand(chordsCmd)
}

var chordsCmd = &cobra.Command{
	Use:   "chords <tonic> <degree>...",
	Short: "Prints diatonic chords of a tonality",
	Long:  `Prints diatonic chords of a tonality`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 2 {
			panic("Need a tonic and at least 1 degree...")
		}
		t, err := tonality.New(args[0], chordsScaleType, chordsMode)
		if err != nil {
			panic("Could not build tonality: " + err.Error())
		}
		chords, err := t.Chords(args[1:], chordsSize)
		if err != nil {
			panic("Could not build chords: " + err.Error())
		}
		for i, c := range chords {
			fmt.Printf("%v: %v (%v)\n", args[i+1], c.Name, strings.Join(c.Notes, " "))
		}
	},
}
