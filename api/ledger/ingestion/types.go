package ingestion

import (
	"time"

	"github.com/shopspring/decimal"
)

// FlightStatus is the temporal state of a booking relative to its flying date.
// The pipeline only ever derives Coming or Gone; Cancelled is set by a later
// manual edit and must never be produced here.
type FlightStatus string

const (
	StatusComing    FlightStatus = "Coming"
	StatusGone      FlightStatus = "Gone"
	StatusCancelled FlightStatus = "Cancelled"
)

// PaymentStatus tracks settlement of a booking. Ingestion always starts a
// record at Pending; the rest of the lifecycle belongs to the review flow.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "Pending"
	PaymentPartial  PaymentStatus = "Partial"
	PaymentReceived PaymentStatus = "Received"
)

// LayoutKind identifies which ingestion strategy applies to an uploaded sheet.
type LayoutKind int

const (
	// LayoutStandardSheet is the travel-sheet convention: a fixed three-row
	// header followed by data rows with an optional trailing composite column.
	LayoutStandardSheet LayoutKind = iota
	// LayoutRawLedger is a generic bank/accounting export with a loose
	// multi-row preamble that may carry an opening-balance declaration.
	LayoutRawLedger
)

func (k LayoutKind) String() string {
	if k == LayoutRawLedger {
		return "RawLedger"
	}
	return "StandardSheet"
}

// TravelRecord is one normalized booking row. Date and Voucher are mandatory;
// every other field may be absent. Monetary pointers are nil when the source
// cell was empty or a bare "-", never zero.
type TravelRecord struct {
	Date         time.Time        `json:"date"`
	Voucher      string           `json:"voucher"`
	Reference    *string          `json:"reference"`
	Narration    *string          `json:"narration"`
	Debit        *decimal.Decimal `json:"debit"`
	Credit       *decimal.Decimal `json:"credit"`
	Balance      *decimal.Decimal `json:"balance"`
	CustomerName *string          `json:"customer_name"`
	Route        *string          `json:"route"`
	PNR          *string          `json:"pnr"`
	FlyingDate   *time.Time       `json:"flying_date"`
	FlightStatus FlightStatus     `json:"flight_status"`

	// Reviewer-owned fields, always zero-initialized by ingestion.
	CustomerRate  decimal.Decimal `json:"customer_rate"`
	CompanyRate   decimal.Decimal `json:"company_rate"`
	Profit        decimal.Decimal `json:"profit"`
	PaymentStatus PaymentStatus   `json:"payment_status"`
}

// OpeningBalance is a carried-forward total declared in a file's preamble.
// At most one per file, attached to the batch rather than any record.
type OpeningBalance struct {
	Date   time.Time       `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

// Summary holds the per-file aggregates returned alongside the records.
type Summary struct {
	TotalBookings int             `json:"total_bookings"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	ComingFlights int             `json:"coming_flights"`
}

// IngestionResult is the immutable output of one upload. Identity and
// timestamps are assigned downstream by the persistence collaborator.
type IngestionResult struct {
	OpeningBalance *OpeningBalance `json:"opening_balance"`
	Records        []TravelRecord  `json:"records"`
	Summary        Summary         `json:"summary"`

	// SkippedRows counts rows rejected by the normalizer (blank, header
	// echoes, totals, missing mandatory fields). Exposed for audit logging.
	SkippedRows int `json:"skipped_rows"`
}

// ExtractedFields is the nullable output of the composite-field extractor.
type ExtractedFields struct {
	CustomerName *string
	Route        *string
	PNR          *string
	FlyingDate   *time.Time
}
