package funnel

// Fixed catalogs rendered by both funnels. Bank and range labels are
// stored verbatim, so changing them here changes what lands in the
// database.

var Banks = []string{
	"BAWAG",
	"Bank Austria",
	"Wüstenrot",
	"Erste Bank & Sparkasse",
	"S-Bausparkasse",
	"Volksbank",
	"Raiffeisen",
	"Austrian Anadi Bank",
	"HYPO",
	"Start Bausparkasse",
}

var LoanAmountRanges = []string{
	"unter 100.000 €",
	"100.000 € - 250.000 €",
	"250.000 € - 500.000 €",
	"500.000 € - 1.000.000 €",
	"über 1.000.000 €",
}

var EmploymentOptions = []string{
	"Angestellt",
	"Mitarbeiter",
	"Selbständig",
	"Arbeitslos",
}

var CasinoVendors = []string{
	"BWIN",
	"Partycasino / Partypoker",
	"Tipico",
	"bet 365",
	"Casinoclub",
	"Sportingbet",
	"LuckyDays",
	"Interwetten",
	"Stake",
}
