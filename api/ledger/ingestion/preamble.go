package ingestion

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Both layouts fix three leading header rows; the windows below bound how far
// past them each scanner will look for a balance declaration.
const (
	preambleSkipRows     = 3
	rawLedgerScanWindow  = 10
	standardSheetScanWin = 5
	balanceMarkerOpening = "opening"
	balanceMarkerBalance = "balance"
)

var (
	slashDateRe = regexp.MustCompile(`\b(\d{1,2}/\d{1,2}/\d{4})\b`)
	isoDateRe   = regexp.MustCompile(`\b(\d{4}-\d{2}-\d{2})\b`)
	numericRe   = regexp.MustCompile(`\d+(?:,\d{3})*(?:\.\d+)?`)
)

// ScanPreamble locates an opening-balance declaration in the sheet preamble
// and computes where true data begins. today supplies the default balance
// date so the pipeline stays clock-free.
//
// The two layouts encode the balance differently and get separate heuristics
// on purpose: folding them together would mis-detect one format's marker in
// the other.
func ScanPreamble(grid [][]string, layout LayoutKind, today time.Time) (*OpeningBalance, int) {
	if layout == LayoutRawLedger {
		return scanRawLedgerPreamble(grid, today)
	}
	return scanStandardSheetPreamble(grid)
}

// scanRawLedgerPreamble handles loosely formatted bank exports: the balance
// row is free text, the amount is whichever cell looks like a formatted
// number, and the date (when present) is dd/mm/yyyy.
func scanRawLedgerPreamble(grid [][]string, today time.Time) (*OpeningBalance, int) {
	limit := preambleSkipRows + rawLedgerScanWindow
	if limit > len(grid) {
		limit = len(grid)
	}
	for i := preambleSkipRows; i < limit; i++ {
		text := strings.ToLower(joinRow(grid[i]))
		if !strings.Contains(text, balanceMarkerOpening) && !strings.Contains(text, balanceMarkerBalance) {
			continue
		}

		var amount *decimal.Decimal
		for _, cell := range grid[i] {
			if looksMonetary(cell) {
				amount = parseAmount(cell)
				break
			}
		}
		if amount == nil {
			continue
		}

		date := truncateToDay(today)
		for _, cell := range grid[i] {
			if m := slashDateRe.FindString(cell); m != "" {
				if t, err := parseDate(m); err == nil {
					date = t
					break
				}
			}
		}
		return &OpeningBalance{Date: date, Amount: *amount}, i + 1
	}
	return nil, preambleSkipRows
}

// scanStandardSheetPreamble handles the travel-sheet convention, where the
// balance row carries an ISO date and a plain number in its text.
func scanStandardSheetPreamble(grid [][]string) (*OpeningBalance, int) {
	limit := preambleSkipRows + standardSheetScanWin
	if limit > len(grid) {
		limit = len(grid)
	}
	for i := preambleSkipRows; i < limit; i++ {
		text := joinRow(grid[i])
		lower := strings.ToLower(text)
		if !strings.Contains(lower, balanceMarkerOpening) && !strings.Contains(lower, balanceMarkerBalance) {
			continue
		}
		iso := isoDateRe.FindString(text)
		if iso == "" {
			continue
		}
		// Drop the date substring first so its digits are not mistaken for
		// the amount.
		numText := strings.Replace(text, iso, "", 1)
		num := numericRe.FindString(numText)
		if num == "" {
			continue
		}
		date, err := parseDate(iso)
		if err != nil {
			continue
		}
		amount, err := decimal.NewFromString(cleanAmount(num))
		if err != nil {
			continue
		}
		return &OpeningBalance{Date: date, Amount: amount}, i + 1
	}
	return nil, preambleSkipRows
}

func joinRow(row []string) string {
	return strings.Join(row, " ")
}
