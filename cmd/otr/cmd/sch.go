package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/OpenTraceLab/OpenTraceResistor/pkg/kicad/schematic"
	"github.com/OpenTraceLab/OpenTraceResistor/pkg/rkm"
	"github.com/spf13/cobra"
)

var schAll bool

var schCmd = &cobra.Command{
	Use:   "sch <schematic.kicad_sch>",
	Short: "Band-code the resistors in a KiCad schematic",
	Long: `Scan a KiCad schematic (.kicad_sch), find the resistor symbols and
translate each value field into its color bands.

Symbols marked do-not-populate are skipped unless --all is given.
Values that cannot be band-coded (three significant digits too many,
out-of-range multiplier) are listed with the reason instead of being
dropped.

Examples:
  otr sch board.kicad_sch
  otr sch --all board.kicad_sch`,
	Args: cobra.ExactArgs(1),
	RunE: runSch,
}

func init() {
	rootCmd.AddCommand(schCmd)

	schCmd.Flags().BoolVar(&schAll, "all", false, "include do-not-populate symbols")
}

func runSch(cmd *cobra.Command, args []string) error {
	filename := args[0]

	if verbose {
		fmt.Printf("Parsing schematic: %s\n\n", filename)
	}

	sch, err := schematic.ParseFile(filename)
	if err != nil {
		return fmt.Errorf("error parsing schematic: %w", err)
	}

	fmt.Printf("Schematic: %s\n", filename)
	fmt.Printf("Version: %d\n", sch.Version)
	if sch.TitleBlock.Title != "" {
		fmt.Printf("Title: %s\n", sch.TitleBlock.Title)
	}

	var rows []schematic.ResistorRef
	skipped := 0
	for _, ref := range sch.Resistors() {
		if ref.DNP && !schAll {
			skipped++
			continue
		}
		rows = append(rows, ref)
	}

	fmt.Printf("Resistors: %d", len(rows))
	if skipped > 0 {
		fmt.Printf(" (%d DNP skipped, use --all to include)", skipped)
	}
	fmt.Println()

	if len(rows) == 0 {
		return nil
	}
	fmt.Println()

	sort.Slice(rows, func(i, j int) bool { return rows[i].Reference < rows[j].Reference })

	fmt.Printf("%-8s %-10s %-12s %s\n", "Ref", "Value", "Resistance", "Bands")
	fmt.Println(strings.Repeat("─", 56))
	for _, ref := range rows {
		if ref.Err != nil {
			fmt.Printf("%-8s %-10s %v\n", ref.Reference, ref.Value, ref.Err)
			continue
		}
		dnp := ""
		if ref.DNP {
			dnp = " (DNP)"
		}
		fmt.Printf("%-8s %-10s %-12s %s%s\n",
			ref.Reference, ref.Value, rkm.Format(ref.Ohms)+"Ω", ref.Code, dnp)
	}
	return nil
}
