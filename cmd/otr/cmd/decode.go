package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/OpenTraceLab/OpenTraceResistor/pkg/resistor"
	"github.com/OpenTraceLab/OpenTraceResistor/pkg/rkm"
	"github.com/spf13/cobra"
)

var decodeJSON bool

var decodeCmd = &cobra.Command{
	Use:   "decode <color> <color> ...",
	Short: "Decode a band sequence into resistance specs",
	Long: `Decode a sequence of band colors into resistance, tolerance and TCR.

Accepts 1 (the zero-ohm link), 3, 4, 5 or 6 colors, case-insensitive,
"gray" and "grey" both work.

Examples:
  otr decode yellow violet red gold
  otr decode brown black black black brown black
  otr decode --json green blue black gold silver violet`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDecode,
}

func init() {
	rootCmd.AddCommand(decodeCmd)

	decodeCmd.Flags().BoolVar(&decodeJSON, "json", false, "machine-readable output")
}

func runDecode(cmd *cobra.Command, args []string) error {
	colors := make([]resistor.Color, 0, len(args))
	for _, name := range args {
		c, err := resistor.ParseColor(name)
		if err != nil {
			return err
		}
		colors = append(colors, c)
	}

	r, err := resistor.New(colors)
	if err != nil {
		return err
	}
	specs := r.Specs()

	if decodeJSON {
		return printDecodeJSON(r, specs)
	}

	fmt.Printf("Bands:      %s\n", r)
	fmt.Printf("Resistance: %sΩ (%s)\n", formatFloat(specs.Ohms), rkm.FormatRKM(specs.Ohms))
	fmt.Printf("Tolerance:  ±%s%%\n", formatFloat(specs.Tolerance*100))
	fmt.Printf("Range:      %sΩ to %sΩ\n", formatFloat(specs.MinOhms), formatFloat(specs.MaxOhms))
	if specs.TCR != nil {
		fmt.Printf("TCR:        %d ppm/K\n", *specs.TCR)
	}
	return nil
}

type decodeOutput struct {
	Bands     []string `json:"bands"`
	Ohms      float64  `json:"ohms"`
	RKM       string   `json:"rkm"`
	Tolerance float64  `json:"tolerance_percent"`
	MinOhms   float64  `json:"min_ohms"`
	MaxOhms   float64  `json:"max_ohms"`
	TCR       *uint32  `json:"tcr_ppm_per_k,omitempty"`
}

func printDecodeJSON(r resistor.Resistor, specs resistor.Specs) error {
	out := decodeOutput{
		Bands:     bandNames(r),
		Ohms:      specs.Ohms,
		RKM:       rkm.FormatRKM(specs.Ohms),
		Tolerance: specs.Tolerance * 100,
		MinOhms:   specs.MinOhms,
		MaxOhms:   specs.MaxOhms,
		TCR:       specs.TCR,
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func bandNames(r resistor.Resistor) []string {
	names := make([]string, 0, r.BandCount())
	for _, c := range r.Bands() {
		names = append(names, c.String())
	}
	return names
}
