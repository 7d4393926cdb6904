package resistor

import "testing"

func TestBandRole(t *testing.T) {
	cases := []struct {
		count, position int
		want            string
	}{
		{3, 0, "Digit 1"},
		{3, 1, "Digit 2"},
		{3, 2, "Multiplier"},
		{4, 2, "Multiplier"},
		{4, 3, "Tolerance"},
		{5, 2, "Digit 3"},
		{5, 3, "Multiplier"},
		{5, 4, "Tolerance"},
		{6, 4, "Tolerance"},
		{6, 5, "TCR"},
		{1, 0, ""},
		{3, 5, ""},
		{4, -1, ""},
	}
	for _, tc := range cases {
		if got := BandRole(tc.count, tc.position); got != tc.want {
			t.Fatalf("BandRole(%d, %d) = %q, want %q", tc.count, tc.position, got, tc.want)
		}
	}
}

func TestBandValue(t *testing.T) {
	cases := []struct {
		count, position int
		color           Color
		want            string
	}{
		{4, 0, Yellow, "4"},
		{4, 0, Black, " "}, // leading zero is blank
		{4, 1, Black, "0"},
		{4, 1, Gold, " "},
		{4, 2, Brown, "10^1"},
		{4, 2, Silver, "10^-2"},
		{4, 3, Gold, "   5"},
		{4, 3, Silver, "  10"},
		{4, 3, Orange, "0.05"},
		{4, 3, Green, " 0.5"},
		{4, 3, Black, "    "},
		{6, 5, Black, "250"},
		{6, 5, Grey, "  1"},
		{6, 5, White, "   "},
		{1, 0, Black, ""},
	}
	for _, tc := range cases {
		if got := BandValue(tc.count, tc.position, tc.color); got != tc.want {
			t.Fatalf("BandValue(%d, %d, %s) = %q, want %q", tc.count, tc.position, tc.color, got, tc.want)
		}
	}
}
