package cmd

import (
	"fmt"
	"strconv"

	"github.com/OpenTraceLab/OpenTraceResistor/pkg/resistor"
	"github.com/OpenTraceLab/OpenTraceResistor/pkg/rkm"
	"github.com/spf13/cobra"
)

var (
	codeTolerance float64
	codeTCR       uint32
)

var codeCmd = &cobra.Command{
	Use:   "code <value>",
	Short: "Determine the band sequence for a resistance",
	Long: `Determine the color bands encoding a resistance value.

The value accepts plain decimal ("4700", "0.25") or RKM notation
("4k7", "0R25"). Without --tolerance the result is the 3-band layout;
with --tolerance 4 or 5 bands, whichever fits the digits; with --tcr
the full 6-band layout.

Examples:
  otr code 470
  otr code 4k7 --tolerance 5
  otr code 1M --tolerance 0.5 --tcr 25`,
	Args: cobra.ExactArgs(1),
	RunE: runCode,
}

func init() {
	rootCmd.AddCommand(codeCmd)

	codeCmd.Flags().Float64Var(&codeTolerance, "tolerance", 0, "tolerance in percent (e.g. 5, 0.25)")
	codeCmd.Flags().Uint32Var(&codeTCR, "tcr", 0, "temperature coefficient in ppm/K")
}

func runCode(cmd *cobra.Command, args []string) error {
	ohms, err := parseValue(args[0])
	if err != nil {
		return err
	}

	var tolerance *float64
	if cmd.Flags().Changed("tolerance") {
		tolerance = &codeTolerance
	}
	var tcr *uint32
	if cmd.Flags().Changed("tcr") {
		tcr = &codeTCR
	}

	r, err := resistor.Determine(ohms, tolerance, tcr)
	if err != nil {
		return err
	}
	specs := r.Specs()

	fmt.Printf("Bands:      %s\n", r)
	fmt.Printf("Resistance: %sΩ (%s)\n", formatFloat(specs.Ohms), rkm.FormatRKM(specs.Ohms))
	fmt.Printf("Tolerance:  ±%s%%\n", formatFloat(specs.Tolerance*100))
	if specs.TCR != nil {
		fmt.Printf("TCR:        %d ppm/K\n", *specs.TCR)
	}
	return nil
}

// parseValue reads a resistance given as a plain float or an RKM code.
func parseValue(s string) (float64, error) {
	if ohms, err := strconv.ParseFloat(s, 64); err == nil {
		return ohms, nil
	}
	ohms, err := rkm.Parse(s)
	if err != nil {
		return 0, fmt.Errorf("invalid resistance %q: %w", s, err)
	}
	return ohms, nil
}
