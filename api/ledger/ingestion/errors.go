package ingestion

import "errors"

// Fatal ingestion errors. Row-level rejections are not errors; they are
// counted on the result and processing continues.
var (
	// ErrMalformedInput means the buffer could not be decoded as a
	// spreadsheet at all. No partial result is produced.
	ErrMalformedInput = errors.New("file could not be read as a spreadsheet")

	// ErrNoDataAfterHeader means the sheet held nothing past the header and
	// preamble rows.
	ErrNoDataAfterHeader = errors.New("no data rows found after header")

	// ErrUnsupportedFileType means the declared filename extension is not in
	// the reader's allow-list.
	ErrUnsupportedFileType = errors.New("unsupported file type")
)
