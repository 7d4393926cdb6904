package cmd

import (
	"fmt"
	"strings"

	"github.com/OpenTraceLab/OpenTraceResistor/pkg/resistor"
	"github.com/spf13/cobra"
)

var chartBands int

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Print the color code reference chart",
	Long: `Print the reference chart for a band layout: which colors each band
accepts and what they contribute.

Examples:
  otr chart
  otr chart --bands 6`,
	Args: cobra.NoArgs,
	RunE: runChart,
}

func init() {
	rootCmd.AddCommand(chartCmd)

	chartCmd.Flags().IntVar(&chartBands, "bands", 4, "band count (3, 4, 5 or 6)")
}

func runChart(cmd *cobra.Command, args []string) error {
	if chartBands < 3 || chartBands > 6 {
		return fmt.Errorf("invalid band count %d: the chart covers 3, 4, 5 and 6 bands", chartBands)
	}

	fmt.Printf("%d-band color code\n\n", chartBands)

	header := fmt.Sprintf("%-8s", "Color")
	for pos := 0; pos < chartBands; pos++ {
		header += fmt.Sprintf(" %-10s", resistor.BandRole(chartBands, pos))
	}
	fmt.Println(header)
	fmt.Println(strings.Repeat("─", len(header)))

	for _, c := range resistor.Palette() {
		row := fmt.Sprintf("%-8s", c)
		for pos := 0; pos < chartBands; pos++ {
			cell := ""
			if colorAllowed(chartBands, pos, c) {
				cell = strings.TrimSpace(resistor.BandValue(chartBands, pos, c))
			}
			row += fmt.Sprintf(" %-10s", cell)
		}
		fmt.Println(row)
	}

	fmt.Println("\nA single black band is the zero-ohm link.")
	return nil
}

func colorAllowed(count, position int, c resistor.Color) bool {
	for _, v := range resistor.ValidColors(count, position) {
		if v == c {
			return true
		}
	}
	return false
}
