package editor

import (
	"errors"
	"testing"
)

func TestNormalizePrice(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain integer", "25", "25"},
		{"two decimals kept", "25.50", "25.50"},
		{"extra decimals cut", "25.509", "25.50"},
		{"second period dropped", "12.3.45abc", "12.34"},
		{"letters stripped", "1a2b3c", "123"},
		{"leading minus stripped", "-5", "5"},
		{"currency symbols stripped", "$1,200.75", "1200.75"},
		{"only junk", "abc", ""},
		{"empty", "", ""},
		{"bare period", ".", "."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizePrice(tc.in)
			if got != tc.want {
				t.Fatalf("NormalizePrice(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizePriceIdempotent(t *testing.T) {
	for _, in := range []string{"12.3.45abc", "-5", "1,200", "99.999"} {
		once := NormalizePrice(in)
		if twice := NormalizePrice(once); twice != once {
			t.Fatalf("NormalizePrice not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestParsePrice(t *testing.T) {
	cases := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"", 0, false},
		{"0", 0, false},
		{"25", 25, false},
		{"25.50", 25.5, false},
		{"not-a-number", 0, true},
	}
	for _, tc := range cases {
		got, err := ParsePrice(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParsePrice(%q) expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParsePrice(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParsePrice(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParsePriceRejectsNegative(t *testing.T) {
	// The normalizer never emits a minus sign, but the validator still
	// rejects negative values on its own.
	if _, err := ParsePrice("-5"); !errors.Is(err, ErrNegativePrice) {
		t.Fatalf("expected ErrNegativePrice, got %v", err)
	}
}
