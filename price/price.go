package price

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrParse indicates a price string that could not be normalized
var ErrParse = errors.New("unparseable price")

// ParseBRL converts a Brazilian-formatted price string into a float value.
// Accepted input looks like "R$ 1.234,56": the currency symbol is optional,
// dots are thousands separators and the comma is the decimal separator.
func ParseBRL(text string) (float64, error) {
	s := strings.TrimSpace(text)
	s = strings.ReplaceAll(s, "R$", "")
	s = strings.TrimSpace(s)

	if i := strings.LastIndex(s, ","); i >= 0 {
		// Everything before the last comma is the integer part;
		// dots in it are thousands separators.
		integerPart := strings.ReplaceAll(s[:i], ".", "")
		decimalPart := s[i+1:]
		s = integerPart + "." + decimalPart
	} else {
		// No decimal comma, so every dot is a thousands separator.
		// A bare decimal like "99.90" therefore parses as 9990; the
		// storefront always writes decimals with a comma.
		s = strings.ReplaceAll(s, ".", "")
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrParse, text)
	}
	if value < 0 {
		return 0, fmt.Errorf("%w: negative price %q", ErrParse, text)
	}

	return value, nil
}

// FormatBRL renders a price value in the local currency notation
func FormatBRL(value float64) string {
	return fmt.Sprintf("R$ %.2f", value)
}
