package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/realscript/realscript/tonality"
)

var scaleType string
var scaleMode string

func init() {
	scaleCmd.Flags().StringVar(&scaleType, "type", "", "base scale type (default diatonic)")
	scaleCmd.Flags().StringVar(&scaleMode, "mode", "", "mode degree (default I)")
	rootCmd.AddCommand(scaleCmd)
}

var scaleCmd = &cobra.Command{
	Use:   "scale <tonic>",
	Short: "Prints the scale of a tonality",
	Long:  `Prints the scale of a tonality`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		t, err := tonality.New(args[0], scaleType, scaleMode)
		if err != nil {
			panic("Could not build tonality: " + err.Error())
		}
		fmt.Printf("%v: %v\n", t.Scale.Name, strings.Join(t.Scale.Notes, " "))
	},
}
