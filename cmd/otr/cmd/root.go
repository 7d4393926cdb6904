package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "otr",
	Short: "OpenTraceResistor - resistor color band tools",
	Long: `OpenTraceResistor (otr) translates between IEC 60062 color bands and
resistance specs:
  - decode a band sequence into resistance, tolerance and TCR
  - determine the band sequence for a target value
  - band-code every resistor symbol in a KiCad schematic

Examples:
  otr decode yellow violet red gold      # 4.7k ±5%
  otr code 4k7 --tolerance 5             # bands for 4700 ohm
  otr chart --bands 5                    # color reference chart
  otr sch board.kicad_sch                # scan a schematic
  otr tui                                # interactive terminal UI
  otr gui                                # desktop band editor`,
	Version: "0.3.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// formatFloat renders a value in plain decimal notation with the
// shortest digits, never an exponent.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
