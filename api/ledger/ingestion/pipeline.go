package ingestion

import (
	"log"
	"time"
)

// Ingest runs the full extraction pipeline over one uploaded file: decode the
// grid, classify the layout, scan the preamble, normalize rows and fold the
// summary. now is injected rather than read from the clock so identical bytes
// always produce identical results; it drives flight-status derivation and
// the opening-balance default date only.
//
// The caller receives either a complete result (possibly with zero records if
// every row was skipped) or a single fatal error: ErrUnsupportedFileType,
// ErrMalformedInput or ErrNoDataAfterHeader.
func Ingest(data []byte, filename string, now time.Time) (*IngestionResult, error) {
	grid, err := ReadGrid(data, filename)
	if err != nil {
		return nil, err
	}

	layout := DetectLayout(grid, filename)
	opening, dataStart := ScanPreamble(grid, layout, now)
	if dataStart >= len(grid) {
		return nil, ErrNoDataAfterHeader
	}

	records, skipped := NormalizeRows(grid, dataStart, layout, now)
	if skipped > 0 {
		log.Printf("[LEDGER-INGEST] %s: layout=%s rows=%d kept=%d skipped=%d",
			filename, layout, len(grid)-dataStart, len(records), skipped)
	}

	return &IngestionResult{
		OpeningBalance: opening,
		Records:        records,
		Summary:        Summarize(records, now),
		SkippedRows:    skipped,
	}, nil
}
