package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// runCLI executes the root command with args and returns the captured
// stdout. Flag state is reset first so tests do not leak into each
// other.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	decodeJSON = false
	chartBands = 4
	schAll = false
	codeTolerance = 0
	codeTCR = 0
	codeCmd.Flags().Lookup("tolerance").Changed = false
	codeCmd.Flags().Lookup("tcr").Changed = false

	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w

	// Read in background to prevent the pipe buffer from blocking
	var buf bytes.Buffer
	done := make(chan struct{})
	go func() {
		buf.ReadFrom(r)
		close(done)
	}()

	rootCmd.SetArgs(args)
	execErr := rootCmd.Execute()

	w.Close()
	os.Stdout = old
	<-done

	return buf.String(), execErr
}

func TestDecodeE2E(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		wantErr     bool
		wantContain []string
	}{
		{
			name: "four band",
			args: []string{"decode", "yellow", "violet", "red", "gold"},
			wantContain: []string{
				"yellow-violet-red-gold",
				"4700\u03a9 (4k7)",
				"\u00b15%",
				"4465",
				"4935",
			},
		},
		{
			name: "zero ohm link",
			args: []string{"decode", "black"},
			wantContain: []string{
				"0\u03a9 (0R)",
				"\u00b120%",
			},
		},
		{
			name: "six band json",
			args: []string{"decode", "--json", "green", "blue", "black", "gold", "silver", "violet"},
			wantContain: []string{
				`"ohms": 56`,
				`"rkm": "56R"`,
				`"tolerance_percent": 10`,
				`"tcr_ppm_per_k": 5`,
			},
		},
		{
			name:    "unknown color",
			args:    []string{"decode", "mauve"},
			wantErr: true,
		},
		{
			name:    "bad band count",
			args:    []string{"decode", "black", "black"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := runCLI(t, tt.args...)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, output:\n%s", output)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v\noutput:\n%s", err, output)
			}
			for _, want := range tt.wantContain {
				if !strings.Contains(output, want) {
					t.Errorf("output lacks %q:\n%s", want, output)
				}
			}
		})
	}
}

func TestCodeE2E(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		wantErr     bool
		wantContain []string
	}{
		{
			name: "plain value three band",
			args: []string{"code", "470"},
			wantContain: []string{
				"yellow-violet-brown",
				"470\u03a9 (470R)",
				"\u00b120%",
			},
		},
		{
			name: "rkm value with tolerance",
			args: []string{"code", "4k7", "--tolerance", "5"},
			wantContain: []string{
				"yellow-violet-red-gold",
				"4700\u03a9 (4k7)",
				"\u00b15%",
			},
		},
		{
			name: "six band",
			args: []string{"code", "1M", "--tolerance", "0.5", "--tcr", "25"},
			wantContain: []string{
				"brown-black-black-yellow-green-yellow",
				"(1M)",
				"\u00b10.5%",
				"25 ppm/K",
			},
		},
		{
			name:    "unparseable value",
			args:    []string{"code", "abc"},
			wantErr: true,
		},
		{
			name:    "three digits without tolerance",
			args:    []string{"code", "123"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := runCLI(t, tt.args...)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, output:\n%s", output)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v\noutput:\n%s", err, output)
			}
			for _, want := range tt.wantContain {
				if !strings.Contains(output, want) {
					t.Errorf("output lacks %q:\n%s", want, output)
				}
			}
		})
	}
}

func TestChartE2E(t *testing.T) {
	output, err := runCLI(t, "chart")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"4-band color code", "Digit 1", "Multiplier", "Tolerance", "zero-ohm link"} {
		if !strings.Contains(output, want) {
			t.Errorf("output lacks %q:\n%s", want, output)
		}
	}

	output, err = runCLI(t, "chart", "--bands", "6")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"6-band color code", "TCR", "250", "10^9"} {
		if !strings.Contains(output, want) {
			t.Errorf("output lacks %q:\n%s", want, output)
		}
	}

	if _, err = runCLI(t, "chart", "--bands", "7"); err == nil {
		t.Error("expected error for 7 bands")
	}
}

const schFixture = `(kicad_sch
	(version 20231120)
	(generator "eeschema")
	(uuid e2e-uuid)
	(paper "A4")
	(title_block (title "Band codes"))
	(symbol (lib_id "Device:R")
		(at 100 50 0)
		(unit 1)
		(property "Reference" "R1" (at 0 0 0))
		(property "Value" "4k7" (at 0 0 0))
		(property "Tolerance" "5%" (at 0 0 0))
	)
	(symbol (lib_id "Device:R")
		(at 120 50 0)
		(unit 1)
		(dnp yes)
		(property "Reference" "R2" (at 0 0 0))
		(property "Value" "10k" (at 0 0 0))
	)
	(symbol (lib_id "Device:R")
		(at 140 50 0)
		(unit 1)
		(property "Reference" "R3" (at 0 0 0))
		(property "Value" "4k99" (at 0 0 0))
	)
)`

func TestSchE2E(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.kicad_sch")
	if err := os.WriteFile(path, []byte(schFixture), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	output, err := runCLI(t, "sch", path)
	if err != nil {
		t.Fatalf("unexpected error: %v\noutput:\n%s", err, output)
	}
	for _, want := range []string{
		"Title: Band codes",
		"Resistors: 2 (1 DNP skipped",
		"yellow-violet-red-gold",
		"missing tolerance",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output lacks %q:\n%s", want, output)
		}
	}
	if strings.Contains(output, "R2") {
		t.Errorf("DNP symbol listed without --all:\n%s", output)
	}

	output, err = runCLI(t, "sch", "--all", path)
	if err != nil {
		t.Fatalf("unexpected error: %v\noutput:\n%s", err, output)
	}
	for _, want := range []string{"Resistors: 3", "brown-black-orange", "(DNP)"} {
		if !strings.Contains(output, want) {
			t.Errorf("output lacks %q:\n%s", want, output)
		}
	}

	if _, err = runCLI(t, "sch", filepath.Join(t.TempDir(), "missing.kicad_sch")); err == nil {
		t.Error("expected error for a missing file")
	}
}
