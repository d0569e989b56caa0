package ingestion

import (
	"strings"

	"github.com/shopspring/decimal"
)

// cleanAmount strips thousands separators and surrounding whitespace from a
// monetary cell.
func cleanAmount(s string) string {
	s = strings.ReplaceAll(s, ",", "")
	return strings.TrimSpace(s)
}

// parseAmount converts a monetary cell into a decimal. An empty cell or a
// bare "-" means "no value" on these ledgers, not zero, so nil is returned.
func parseAmount(s string) *decimal.Decimal {
	cleaned := cleanAmount(s)
	if cleaned == "" || cleaned == "-" {
		return nil
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return nil
	}
	return &d
}

// looksMonetary reports whether a cell is shaped like a formatted amount:
// it carries a comma or decimal point and still parses once separators are
// stripped. Used by the raw-ledger preamble scanner to pick the balance cell.
func looksMonetary(s string) bool {
	s = strings.TrimSpace(s)
	if !strings.ContainsAny(s, ",.") {
		return false
	}
	_, err := decimal.NewFromString(cleanAmount(s))
	return err == nil
}
