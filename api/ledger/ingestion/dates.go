package ingestion

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// parseDate tries multiple layouts against a raw date cell. Ledger exports in
// the wild mix dd/mm/yyyy, ISO and named-month forms; dd/mm/yyyy variants MUST
// come before mm/dd/yyyy so Pakistani/Indian agency exports are not misparsed.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("empty date string")
	}
	layouts := []string{
		// dd/mm/yyyy variants - MUST BE FIRST
		"02/01/2006", "02/01/06", "2/1/2006", "2/1/06",
		"02-01-2006", "2-1-2006",
		// ISO
		"2006-01-02", "2006/01/02", "2006-1-2", "2006/1/2",
		// named month (29/Aug/2025, 29-Aug-2025)
		"02/Jan/2006", "02-Jan-2006", "2-Jan-2006",
		// mm/dd/yyyy variants - AFTER dd/mm/yyyy
		"01/02/2006", "1/2/2006",
		// timestamped exports
		"02/01/2006 15:04:05", "2006-01-02 15:04:05", "2006-01-02T15:04:05Z",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New("unrecognized date format: " + s)
}

// parseCellDate accepts everything parseDate does plus Excel serial numbers,
// which is how xlsx date cells surface when the sheet carries no number
// format. Returns the zero time when nothing matches.
func parseCellDate(s string) time.Time {
	if t, err := parseDate(s); err == nil {
		return t
	}
	if t, err := parseExcelSerialDate(s); err == nil {
		return t
	}
	return time.Time{}
}

// parseExcelSerialDate converts an Excel serial date into a time.Time. The
// 1899-12-30 epoch already accounts for Excel's fake 1900-02-29 on every
// serial past it, and the range guard rejects anything before March 1900, so
// no leap-bug correction is needed here.
func parseExcelSerialDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("empty excel serial")
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return time.Time{}, err
	}
	if f < 61 || f > 200000 { // plausible calendar range only
		return time.Time{}, errors.New("serial out of date range")
	}
	base := time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)
	return base.AddDate(0, 0, int(f)), nil
}

// truncateToDay normalizes a timestamp to midnight UTC so that date-only
// comparisons ignore the time component.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
