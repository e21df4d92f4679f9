package funnel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// The catalogs are stored verbatim in lead rows, so their contents are
// pinned here; a renamed bank silently forks the data.
func TestCatalogsArePinned(t *testing.T) {
	assert.Len(t, Banks, 10)
	assert.Len(t, LoanAmountRanges, 5)
	assert.Len(t, EmploymentOptions, 4)
	assert.Len(t, CasinoVendors, 9)

	assert.Contains(t, Banks, "Bank Austria")
	assert.Contains(t, Banks, "Raiffeisen")
	assert.Equal(t, "unter 100.000 €", LoanAmountRanges[0])
	assert.Equal(t, "über 1.000.000 €", LoanAmountRanges[len(LoanAmountRanges)-1])
	assert.Contains(t, CasinoVendors, "BWIN")
}

func TestCatalogsHaveNoDuplicates(t *testing.T) {
	for _, catalog := range [][]string{Banks, LoanAmountRanges, EmploymentOptions, CasinoVendors} {
		seen := make(map[string]bool, len(catalog))
		for _, entry := range catalog {
			assert.False(t, seen[entry], "duplicate catalog entry %q", entry)
			seen[entry] = true
		}
	}
}
