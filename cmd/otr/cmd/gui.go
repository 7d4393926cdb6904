package cmd

import (
	"github.com/OpenTraceLab/OpenTraceResistor/internal/gui"
	"github.com/spf13/cobra"
)

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Launch the desktop band editor",
	Long: `Launch the Gio desktop band editor: a drawn resistor with keyboard
band selection and a color dropdown for the selected band.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return gui.Run()
	},
}

func init() {
	rootCmd.AddCommand(guiCmd)
}
