package ingestion

import (
	"errors"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestReadGridCSVRaggedRows(t *testing.T) {
	data := []byte("a,b,c\nd\ne,f\n")
	grid, err := ReadGrid(data, "export.csv")
	if err != nil {
		t.Fatalf("ReadGrid: %v", err)
	}
	if len(grid) != 3 {
		t.Fatalf("rows got=%d want=3", len(grid))
	}
	if len(grid[0]) != 3 || len(grid[1]) != 1 || len(grid[2]) != 2 {
		t.Fatalf("ragged widths not preserved: %v", grid)
	}
}

func TestReadGridXLSX(t *testing.T) {
	f := excelize.NewFile()
	rows := [][]interface{}{
		{"Bookings - January 2024"},
		{""},
		{""},
		{"Opening Balance 2024-01-01 82450.50"},
		{"2024-01-05", "TV-884", "REF-9", "Ticket issue", "18,000.00"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write buffer: %v", err)
	}

	grid, err := ReadGrid(buf.Bytes(), "bookings_jan.xlsx")
	if err != nil {
		t.Fatalf("ReadGrid: %v", err)
	}
	if len(grid) != 5 {
		t.Fatalf("rows got=%d want=5", len(grid))
	}
	if cellAt(grid[4], colVoucher) != "TV-884" {
		t.Fatalf("voucher cell got=%q want=TV-884", cellAt(grid[4], colVoucher))
	}
	if cellAt(grid[3], 0) != "Opening Balance 2024-01-01 82450.50" {
		t.Fatalf("preamble cell got=%q", cellAt(grid[3], 0))
	}
}

func TestReadGridMalformedBuffers(t *testing.T) {
	garbage := []byte("this is not a workbook")
	for _, name := range []string{"ledger.xlsx", "ledger.xls"} {
		_, err := ReadGrid(garbage, name)
		if !errors.Is(err, ErrMalformedInput) {
			t.Fatalf("%s: err got=%v want ErrMalformedInput", name, err)
		}
	}
}

func TestReadGridUnsupportedExtension(t *testing.T) {
	_, err := ReadGrid([]byte("x"), "ledger.pdf")
	if !errors.Is(err, ErrUnsupportedFileType) {
		t.Fatalf("err got=%v want ErrUnsupportedFileType", err)
	}
}

func TestReadGridEmptyCSV(t *testing.T) {
	grid, err := ReadGrid(nil, "empty.csv")
	if err != nil {
		t.Fatalf("ReadGrid: %v", err)
	}
	if len(grid) != 0 {
		t.Fatalf("rows got=%d want=0", len(grid))
	}
}
