package ingestion

import "strings"

// rawLedgerMarkers are the first-cell strings that identify a generic
// bank/accounting export. Matched as lowercase substrings so extra
// whitespace and case variation in the export tool do not matter.
var rawLedgerMarkers = []string{"all ledgers", "travels", "statement period"}

// DetectLayout sniffs the decoded grid and declared filename and picks the
// ingestion strategy. This is a content heuristic, not a schema check; an
// ambiguous file defaults to the standard travel sheet.
func DetectLayout(grid [][]string, filename string) LayoutKind {
	if strings.Contains(strings.ToLower(filename), "raw") {
		return LayoutRawLedger
	}
	for _, row := range grid {
		if len(row) == 0 {
			continue
		}
		first := strings.ToLower(strings.TrimSpace(row[0]))
		if first == "" {
			continue
		}
		for _, marker := range rawLedgerMarkers {
			if strings.Contains(first, marker) {
				return LayoutRawLedger
			}
		}
	}
	return LayoutStandardSheet
}
