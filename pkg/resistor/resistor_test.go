package resistor

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestNewValidCodes(t *testing.T) {
	cases := [][]Color{
		{Black},
		{Blue, Brown, Pink},
		{Blue, Brown, Pink, Silver},
		{Blue, Brown, White, Silver, Silver},
		{Blue, Brown, White, Silver, Silver, Black},
	}
	for _, bands := range cases {
		r, err := New(bands)
		if err != nil {
			t.Fatalf("New(%v) returned error: %v", bands, err)
		}
		if r.BandCount() != len(bands) {
			t.Fatalf("BandCount() = %d, want %d", r.BandCount(), len(bands))
		}
		if got := r.Bands(); !reflect.DeepEqual(got, bands) {
			t.Fatalf("Bands() = %v, want %v", got, bands)
		}
	}
}

func TestNewInvalidBandCount(t *testing.T) {
	for _, bands := range [][]Color{
		{},
		{Gold, Grey},
		{Brown, Black, Black, Brown, Gold, Red, Black},
	} {
		_, err := New(bands)
		if !errors.Is(err, ErrInvalidBandCount) {
			t.Fatalf("New(%v) = %v, want ErrInvalidBandCount", bands, err)
		}
	}
}

func TestNewInvalidBandColor(t *testing.T) {
	cases := []struct {
		bands []Color
		pos   string
	}{
		{[]Color{Blue}, "band 1"},
		{[]Color{Black, Brown, Pink}, "band 1"},
		{[]Color{Gold, Brown, Pink}, "band 1"},
		{[]Color{Blue, Gold, Pink}, "band 2"},
		{[]Color{Blue, Brown, Pink, Black}, "band 4"},
		{[]Color{Blue, Brown, Pink, Black, Black}, "band 3"},
		{[]Color{Blue, Brown, Grey, Black, Silver, White}, "band 6"},
	}
	for _, tc := range cases {
		_, err := New(tc.bands)
		if !errors.Is(err, ErrInvalidBandColor) {
			t.Fatalf("New(%v) = %v, want ErrInvalidBandColor", tc.bands, err)
		}
		if !strings.Contains(err.Error(), tc.pos) {
			t.Fatalf("New(%v) error %q does not name %s", tc.bands, err, tc.pos)
		}
	}
}

func TestBandsReturnsCopy(t *testing.T) {
	r, err := New([]Color{Yellow, Violet, Brown, Gold})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	bands := r.Bands()
	bands[0] = White
	if got := r.Bands()[0]; got != Yellow {
		t.Fatalf("mutating Bands() result changed the resistor: band 1 = %s", got)
	}
}

func TestWithColor(t *testing.T) {
	r, err := New([]Color{Yellow, Violet, Brown, Gold})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	swapped, err := r.WithColor(Red, 0)
	if err != nil {
		t.Fatalf("WithColor(Red, 0) returned error: %v", err)
	}
	if want := []Color{Red, Violet, Brown, Gold}; !reflect.DeepEqual(swapped.Bands(), want) {
		t.Fatalf("WithColor(Red, 0) = %v, want %v", swapped.Bands(), want)
	}
	if got := r.Bands()[0]; got != Yellow {
		t.Fatalf("WithColor modified the receiver: band 1 = %s", got)
	}

	same, err := r.WithColor(Violet, 1)
	if err != nil {
		t.Fatalf("WithColor(Violet, 1) returned error: %v", err)
	}
	if !reflect.DeepEqual(same.Bands(), r.Bands()) {
		t.Fatalf("replacing a band with itself changed the code: %v", same.Bands())
	}
}

func TestWithColorInvalidReplacement(t *testing.T) {
	r, err := New([]Color{Yellow, Violet, Brown, Gold})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if _, err := r.WithColor(Black, 0); !errors.Is(err, ErrInvalidBandColor) {
		t.Fatalf("WithColor(Black, 0) = %v, want ErrInvalidBandColor", err)
	}
	if _, err := r.WithColor(White, 3); !errors.Is(err, ErrInvalidBandColor) {
		t.Fatalf("WithColor(White, 3) = %v, want ErrInvalidBandColor", err)
	}
}

func TestWithColorOutOfBounds(t *testing.T) {
	r, err := New([]Color{Yellow, Violet, Brown, Gold})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	for _, position := range []int{-1, 4, 17} {
		if _, err := r.WithColor(Red, position); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("WithColor(Red, %d) = %v, want ErrOutOfBounds", position, err)
		}
	}
}

func TestResistorString(t *testing.T) {
	r, err := New([]Color{Yellow, Violet, Brown, Gold})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if got, want := r.String(), "yellow-violet-brown-gold"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
	zero, _ := New([]Color{Black})
	if got, want := zero.String(), "black"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
