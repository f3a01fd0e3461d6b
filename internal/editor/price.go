package editor

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

var ErrNegativePrice = errors.New("price must be non-negative")

// NormalizePrice keeps a free-text price field numerically well formed.
// Every rune that is not a digit or a period is stripped, only the first
// period survives, and the fraction is cut to two digits. Applied on every
// keystroke, so the field can never hold a minus sign or a second period.
func NormalizePrice(s string) string {
	var b strings.Builder
	seenPeriod := false
	fracDigits := 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			if seenPeriod {
				if fracDigits == 2 {
					continue
				}
				fracDigits++
			}
			b.WriteRune(r)
		case r == '.':
			if seenPeriod {
				continue
			}
			seenPeriod = true
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ParsePrice parses a normalized price string. An empty field means zero.
// Negative, NaN and infinite values are rejected even though the
// normalizer cannot produce them from keyboard input.
func ParsePrice(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	p, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return 0, errors.New("price is not a finite number")
	}
	if p < 0 {
		return 0, ErrNegativePrice
	}
	return p, nil
}
