package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "realscript",
	Short: "Tonal arithmetic toolkit",
	Long:  `Models notes, intervals, scales and chords as arithmetic over pitch classes.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
