package ingestion

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

// rawLedgerCSV is a bank-style export: loose preamble with an opening
// balance, a header row, booking rows and a totals footer.
const rawLedgerCSV = `All Ledgers Report,,,,,,
AL-FALAH TRAVELS & TOURS,,,,,,
Statement Period 01/01/2024 - 31/12/2024,,,,,,
Account summary,,,,,,
Opening Balance,"12,500.00",01/01/2024,,,,
Date,Voucher,Reference,Narration,Debit,Credit,Balance
05/01/2024,V-1001,REF-1,,SALES - MR JOHN DOE - DXB/LHE - 94A63T - 06/12/2024,,"45,000.00"
06/01/2024,V-1002,REF-2,Ticket refund,"15,000.00",-,"60,000.00"
07/01/2024,V-1003,REF-3,Hotel payment,-,"5,000.00","55,000.00"
08/01/2024,,REF-4,No voucher,"1,000.00",,
,,Total,,"15,000.00","5,000.00",
`

func TestIngestRawLedgerEndToEnd(t *testing.T) {
	now := mustDate("2025-01-15")

	res, err := Ingest([]byte(rawLedgerCSV), "client_export.csv", now)
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}

	if res.OpeningBalance == nil {
		t.Fatal("expected opening balance from preamble")
	}
	if !res.OpeningBalance.Amount.Equal(decimal.RequireFromString("12500.00")) {
		t.Fatalf("opening amount got=%s want=12500.00", res.OpeningBalance.Amount)
	}
	if res.OpeningBalance.Date.Format("2006-01-02") != "2024-01-01" {
		t.Fatalf("opening date got=%s", res.OpeningBalance.Date.Format("2006-01-02"))
	}

	if len(res.Records) != 3 {
		t.Fatalf("records got=%d want=3", len(res.Records))
	}
	if res.SkippedRows != 3 {
		t.Fatalf("skipped got=%d want=3 (header echo, missing voucher, totals)", res.SkippedRows)
	}

	// The overloaded SALES cell yields travel metadata, not a debit.
	sales := res.Records[0]
	if sales.Debit != nil {
		t.Fatalf("sales row debit got=%s want nil", sales.Debit)
	}
	if strVal(sales.CustomerName) != "JOHN DOE" || strVal(sales.PNR) != "94A63T" {
		t.Fatalf("sales extraction got name=%q pnr=%q", strVal(sales.CustomerName), strVal(sales.PNR))
	}
	if sales.FlightStatus != StatusGone {
		t.Fatalf("sales flight status got=%s want=%s", sales.FlightStatus, StatusGone)
	}

	s := res.Summary
	if s.TotalBookings != 3 {
		t.Fatalf("total bookings got=%d want=3", s.TotalBookings)
	}
	if !s.TotalRevenue.Equal(decimal.RequireFromString("15000.00")) {
		t.Fatalf("revenue got=%s want=15000.00 (sum of non-null debits)", s.TotalRevenue)
	}
	if !s.TotalExpenses.Equal(decimal.RequireFromString("5000.00")) {
		t.Fatalf("expenses got=%s want=5000.00", s.TotalExpenses)
	}
	if s.ComingFlights != 2 {
		t.Fatalf("coming flights got=%d want=2", s.ComingFlights)
	}
}

func TestIngestIsDeterministic(t *testing.T) {
	now := mustDate("2025-01-15")

	first, err := Ingest([]byte(rawLedgerCSV), "client_export.csv", now)
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	second, err := Ingest([]byte(rawLedgerCSV), "client_export.csv", now)
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("identical bytes and clock produced different results")
	}
}

func TestIngestStandardSheet(t *testing.T) {
	now := mustDate("2025-01-15")
	csvData := strings.Join([]string{
		"Bookings - January 2024,,,,,,,",
		"Generated 2024-02-01 by export tool,,,,,,,",
		",,,,,,,",
		"Opening Balance 2024-01-01 82450.50,,,,,,,",
		`2024-01-05,TV-884,REF-9,Ticket issue,"18,000.00",,,Ali Khan DXB-LHE PNR54321 2025-08-01`,
	}, "\n")

	res, err := Ingest([]byte(csvData), "bookings_jan.csv", now)
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	if res.OpeningBalance == nil || !res.OpeningBalance.Amount.Equal(decimal.RequireFromString("82450.50")) {
		t.Fatalf("opening balance got=%+v want 82450.50", res.OpeningBalance)
	}
	if len(res.Records) != 1 {
		t.Fatalf("records got=%d want=1", len(res.Records))
	}
	rec := res.Records[0]
	if strVal(rec.CustomerName) != "Ali Khan" || dateVal(rec.FlyingDate) != "2025-08-01" {
		t.Fatalf("extraction got name=%q flying=%s", strVal(rec.CustomerName), dateVal(rec.FlyingDate))
	}
	if rec.FlightStatus != StatusComing {
		t.Fatalf("flight status got=%s want=%s", rec.FlightStatus, StatusComing)
	}
}

func TestIngestNoDataAfterHeader(t *testing.T) {
	csvData := `All Ledgers Report,,
,,
,,
,,
Opening Balance,"12,500.00",01/01/2024
`
	_, err := Ingest([]byte(csvData), "client_export.csv", mustDate("2025-01-15"))
	if !errors.Is(err, ErrNoDataAfterHeader) {
		t.Fatalf("err got=%v want ErrNoDataAfterHeader", err)
	}
}

func TestIngestUnsupportedFileType(t *testing.T) {
	_, err := Ingest([]byte("whatever"), "notes.txt", mustDate("2025-01-15"))
	if !errors.Is(err, ErrUnsupportedFileType) {
		t.Fatalf("err got=%v want ErrUnsupportedFileType", err)
	}
}
