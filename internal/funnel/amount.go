package funnel

import (
	"strconv"
	"strings"
)

// NormalizeAmount parses a money string. German formatting is
// recognized by the decimal comma: thousands dots are dropped and the
// comma becomes a point, so "1.234,56" yields 1234.56. Input without a
// comma is parsed as a plain decimal. ok is false for empty,
// malformed, or non-positive input.
func NormalizeAmount(value string) (float64, bool) {
	normalized := strings.TrimSpace(value)
	if normalized == "" {
		return 0, false
	}

	if strings.Contains(normalized, ",") {
		normalized = strings.ReplaceAll(normalized, ".", "")
		normalized = strings.ReplaceAll(normalized, ",", ".")
	}

	amount, err := strconv.ParseFloat(normalized, 64)
	if err != nil || amount <= 0 {
		return 0, false
	}
	return amount, true
}
