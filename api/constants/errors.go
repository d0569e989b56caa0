package constants

// ============================================================================
// UPLOAD & INGESTION ERRORS
// ============================================================================

const (
	ErrMultipartParseFailed  = "Failed to parse the upload form. Please retry with a smaller file"
	ErrNoFileUploaded        = "No file was attached to the upload"
	ErrUnsupportedLedgerFile = "Unsupported file type. Upload a .csv, .xls or .xlsx ledger export"
	ErrFileTooLarge          = "The uploaded file exceeds the size limit"
	ErrFileReadFailed        = "The uploaded file could not be read"
	ErrMalformedLedgerFile   = "The file could not be read as a spreadsheet. Please check the export and try again"
	ErrNoLedgerData          = "No data rows were found after the header. The file appears to be empty"
	ErrIngestionFailed       = "The ledger could not be processed"
	ErrStagingFailed         = "Failed to store the processed ledger. Please try again"
)

// ============================================================================
// SESSION ERRORS
// ============================================================================

const (
	ErrSessionNotFound     = "Ingestion session not found"
	ErrSessionLookupFailed = "Failed to look up ingestion sessions"
)
