package resistor

import (
	"reflect"
	"testing"
)

func TestValidColorsCells(t *testing.T) {
	cases := []struct {
		count, position int
		want            []Color
	}{
		{1, 0, []Color{Black}},
		{3, 0, []Color{Brown, Red, Orange, Yellow, Green, Blue, Violet, Grey, White}},
		{3, 1, []Color{Black, Brown, Red, Orange, Yellow, Green, Blue, Violet, Grey, White}},
		{3, 2, Palette()},
		{4, 3, []Color{Brown, Red, Orange, Yellow, Green, Blue, Violet, Grey, Gold, Silver}},
		{5, 2, []Color{Black, Brown, Red, Orange, Yellow, Green, Blue, Violet, Grey, White}},
		{5, 3, Palette()},
		{6, 4, []Color{Brown, Red, Orange, Yellow, Green, Blue, Violet, Grey, Gold, Silver}},
		{6, 5, []Color{Black, Brown, Red, Orange, Yellow, Green, Blue, Violet, Grey}},
	}
	for _, tc := range cases {
		got := ValidColors(tc.count, tc.position)
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("ValidColors(%d, %d) = %v, want %v", tc.count, tc.position, got, tc.want)
		}
	}
}

func TestValidColorsOutOfRange(t *testing.T) {
	for _, tc := range []struct{ count, position int }{
		{0, 0}, {2, 0}, {7, 0}, {3, 3}, {3, -1}, {6, 6},
	} {
		if got := ValidColors(tc.count, tc.position); len(got) != 0 {
			t.Fatalf("ValidColors(%d, %d) = %v, want empty", tc.count, tc.position, got)
		}
	}
}

// Every color ValidColors lists must be accepted as a replacement at
// that position, and every other color rejected.
func TestValidColorsMatchConstruction(t *testing.T) {
	bases := map[int][]Color{
		1: {Black},
		3: {Brown, Black, Black},
		4: {Brown, Black, Black, Brown},
		5: {Brown, Black, Black, Black, Brown},
		6: {Brown, Black, Black, Black, Brown, Black},
	}
	for count, bands := range bases {
		base, err := New(bands)
		if err != nil {
			t.Fatalf("New(%v) returned error: %v", bands, err)
		}
		for position := 0; position < count; position++ {
			valid := make(map[Color]bool)
			for _, c := range ValidColors(count, position) {
				valid[c] = true
			}
			for _, c := range Palette() {
				_, err := base.WithColor(c, position)
				if valid[c] && err != nil {
					t.Fatalf("WithColor(%s, %d) on %d bands rejected a valid color: %v", c, position, count, err)
				}
				if !valid[c] && err == nil {
					t.Fatalf("WithColor(%s, %d) on %d bands accepted an invalid color", c, position, count)
				}
			}
		}
	}
}
