package ingestion

import (
	"log"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Positional column layout shared by both source formats. Column 4 is
// overloaded on raw ledgers: it holds either a debit amount or a SALES
// composite narration. Column 7, when present, is the travel-sheet composite
// cell.
const (
	colDate = iota
	colVoucher
	colReference
	colNarration
	colAmountOrSales
	colCredit
	colBalance
	colComposite
)

// minPopulatedCells is the floor below which a row is treated as filler.
const minPopulatedCells = 4

// NormalizeRows maps every row at or after dataStart into a TravelRecord,
// skipping filler rows. Skips are a policy outcome, not errors: the count is
// returned for audit logging and processing always continues.
func NormalizeRows(grid [][]string, dataStart int, layout LayoutKind, now time.Time) ([]TravelRecord, int) {
	records := make([]TravelRecord, 0, len(grid)-dataStart)
	skipped := 0

	for i := dataStart; i < len(grid); i++ {
		rec, ok := normalizeRow(grid[i], layout, now, i)
		if !ok {
			skipped++
			continue
		}
		records = append(records, rec)
	}
	return records, skipped
}

func normalizeRow(row []string, layout LayoutKind, now time.Time, rowIdx int) (TravelRecord, bool) {
	joined := strings.ToLower(joinRow(row))

	// Header echoes repeat mid-file when exports are concatenated; they must
	// be recognized before the populated-cell floor so sparse ones still
	// drop as headers.
	if strings.Contains(joined, "date") && strings.Contains(joined, "voucher") && strings.Contains(joined, "narration") {
		return TravelRecord{}, false
	}
	if hasTotalToken(joined) {
		return TravelRecord{}, false
	}
	if populatedCells(row) < minPopulatedCells {
		return TravelRecord{}, false
	}

	date := parseCellDate(cellAt(row, colDate))
	if date.IsZero() {
		log.Printf("[LEDGER-INGEST] row %d skipped: unparseable date %q", rowIdx+1, cellAt(row, colDate))
		return TravelRecord{}, false
	}
	voucher := cellAt(row, colVoucher)
	if voucher == "" {
		return TravelRecord{}, false
	}

	rec := TravelRecord{
		Date:          truncateToDay(date),
		Voucher:       voucher,
		Reference:     optionalString(cellAt(row, colReference)),
		Narration:     optionalString(cellAt(row, colNarration)),
		Credit:        parseAmount(cellAt(row, colCredit)),
		Balance:       parseAmount(cellAt(row, colBalance)),
		CustomerRate:  decimal.Zero,
		CompanyRate:   decimal.Zero,
		Profit:        decimal.Zero,
		PaymentStatus: PaymentPending,
	}

	var fields ExtractedFields
	extracted := false

	amountCell := cellAt(row, colAmountOrSales)
	if layout == LayoutRawLedger && strings.Contains(strings.ToUpper(amountCell), "SALES") {
		// Overloaded column: a SALES narration, not a debit amount.
		fields = ExtractComposite(amountCell)
		extracted = true
		if rec.Narration == nil {
			rec.Narration = optionalString(amountCell)
		}
	} else {
		rec.Debit = parseAmount(amountCell)
	}

	if !extracted {
		if composite := cellAt(row, colComposite); composite != "" {
			fields = ExtractComposite(composite)
		} else if rec.Narration != nil {
			fields = ExtractNarration(*rec.Narration)
		}
	}

	rec.CustomerName = fields.CustomerName
	rec.Route = fields.Route
	rec.PNR = fields.PNR
	rec.FlyingDate = fields.FlyingDate
	rec.FlightStatus = DeriveFlightStatus(rec.FlyingDate, now)
	return rec, true
}

// hasTotalToken matches "total" as a whole word only; narrations like
// "Totally refunded" or "Subtotal carried" are real rows, not footers.
func hasTotalToken(lowerText string) bool {
	for _, tok := range strings.Fields(lowerText) {
		if strings.Trim(tok, ":.,") == "total" {
			return true
		}
	}
	return false
}

func cellAt(row []string, idx int) string {
	if idx < len(row) {
		return strings.TrimSpace(row[idx])
	}
	return ""
}

func populatedCells(row []string) int {
	n := 0
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			n++
		}
	}
	return n
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
