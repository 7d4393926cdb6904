package cmd

import (
	"github.com/OpenTraceLab/OpenTraceResistor/internal/tui"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the two-tab terminal UI: compose a band sequence and read its
specs live, or type specs and get the band sequence back.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run()
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
