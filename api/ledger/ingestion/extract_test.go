package ingestion

import (
	"testing"
	"time"
)

func mustDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func strVal(p *string) string {
	if p == nil {
		return "<nil>"
	}
	return *p
}

func dateVal(p *time.Time) string {
	if p == nil {
		return "<nil>"
	}
	return p.Format("2006-01-02")
}

func TestExtractSalesNarration(t *testing.T) {
	got := ExtractComposite("SALES - MR JOHN DOE - DXB/LHE - 94A63T - 06/12/2024")

	if strVal(got.CustomerName) != "JOHN DOE" {
		t.Fatalf("customer name got=%q want=%q", strVal(got.CustomerName), "JOHN DOE")
	}
	if strVal(got.Route) != "DXB/LHE" {
		t.Fatalf("route got=%q want=%q", strVal(got.Route), "DXB/LHE")
	}
	if strVal(got.PNR) != "94A63T" {
		t.Fatalf("pnr got=%q want=%q", strVal(got.PNR), "94A63T")
	}
	if dateVal(got.FlyingDate) != "2024-12-06" {
		t.Fatalf("flying date got=%s want=2024-12-06", dateVal(got.FlyingDate))
	}
}

func TestExtractSalesNarrationTitleVariants(t *testing.T) {
	cases := map[string]string{
		"SALES - MRS JANE DOE - KHI/DXB - A1B2C3 - 01/01/2025":    "JANE DOE",
		"SALES - MISS AYESHA ALI - LHE/JED - X9Y8Z7 - 02/02/2025": "AYESHA ALI",
		"SALES - MS. SARA KHAN - ISB/DOH - Q1W2E3 - 03/03/2025":   "SARA KHAN",
	}
	for text, want := range cases {
		got := ExtractComposite(text)
		if strVal(got.CustomerName) != want {
			t.Fatalf("%q: customer name got=%q want=%q", text, strVal(got.CustomerName), want)
		}
	}
}

func TestExtractLabeledComposite(t *testing.T) {
	got := ExtractComposite("Ali Khan DXB-LHE PNR54321 2025-08-01")

	if strVal(got.CustomerName) != "Ali Khan" {
		t.Fatalf("customer name got=%q want=%q", strVal(got.CustomerName), "Ali Khan")
	}
	if strVal(got.Route) != "DXB-LHE" {
		t.Fatalf("route got=%q want=%q", strVal(got.Route), "DXB-LHE")
	}
	if strVal(got.PNR) != "PNR54321" {
		t.Fatalf("pnr got=%q want=%q", strVal(got.PNR), "PNR54321")
	}
	if dateVal(got.FlyingDate) != "2025-08-01" {
		t.Fatalf("flying date got=%s want=2025-08-01", dateVal(got.FlyingDate))
	}
}

func TestExtractLabeledCompositeSlashRouteNormalized(t *testing.T) {
	got := ExtractComposite("Zara Ahmed DXB/LHE PNR98765 2025-09-10")
	if strVal(got.Route) != "DXB-LHE" {
		t.Fatalf("route got=%q want normalized DXB-LHE", strVal(got.Route))
	}
}

func TestExtractTokenScanFallback(t *testing.T) {
	// No full pattern matches: no ISO date, ragged layout. The token scan
	// should still pick out the fragments.
	got := ExtractComposite("AHMED RAZA KHI-DXB TK4521A 15/03/2025 refunded")

	if strVal(got.CustomerName) != "AHMED RAZA" {
		t.Fatalf("customer name got=%q want=%q", strVal(got.CustomerName), "AHMED RAZA")
	}
	if strVal(got.Route) != "KHI-DXB" {
		t.Fatalf("route got=%q want=%q", strVal(got.Route), "KHI-DXB")
	}
	if strVal(got.PNR) != "TK4521A" {
		t.Fatalf("pnr got=%q want=%q", strVal(got.PNR), "TK4521A")
	}
	if dateVal(got.FlyingDate) != "2025-03-15" {
		t.Fatalf("flying date got=%s want=2025-03-15", dateVal(got.FlyingDate))
	}
}

func TestExtractCompositeNoSignal(t *testing.T) {
	got := ExtractComposite("misc adjustment entry")
	if got.CustomerName != nil || got.Route != nil || got.PNR != nil || got.FlyingDate != nil {
		t.Fatalf("expected all-nil extraction, got %+v", got)
	}
}

func TestExtractNarration(t *testing.T) {
	got := ExtractNarration("Ticket issued KHI/DXB/LHE pnr ref 88TRV2 flying 20/06/2025")

	if strVal(got.Route) != "KHI/DXB/LHE" {
		t.Fatalf("route got=%q want multi-leg KHI/DXB/LHE", strVal(got.Route))
	}
	if strVal(got.PNR) != "88TRV2" {
		t.Fatalf("pnr got=%q want=%q", strVal(got.PNR), "88TRV2")
	}
	if dateVal(got.FlyingDate) != "2025-06-20" {
		t.Fatalf("flying date got=%s want=2025-06-20", dateVal(got.FlyingDate))
	}
}

func TestExtractNarrationLetterOnlyPNR(t *testing.T) {
	// A PNR-shaped token without digits is still a PNR candidate.
	got := ExtractNarration("Reissue for ABCDEF KHI-LHE 05/05/2026")
	if strVal(got.PNR) != "ABCDEF" {
		t.Fatalf("pnr got=%q want=ABCDEF", strVal(got.PNR))
	}
	if strVal(got.Route) != "KHI-LHE" {
		t.Fatalf("route got=%q want=KHI-LHE", strVal(got.Route))
	}
}

func TestExtractNarrationPartialOnly(t *testing.T) {
	got := ExtractNarration("Commission payout June")
	if got.Route != nil || got.FlyingDate != nil {
		t.Fatalf("expected no route/date, got %+v", got)
	}
}
