package ingestion

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// rowChunkSize is the window used when draining sheet rows. Reading in fixed
// windows keeps peak memory proportional to the window, not the file.
const rowChunkSize = 1000

// ReadGrid decodes the first sheet of an uploaded spreadsheet buffer into a
// rectangular grid of raw cell text. The declared filename selects the
// decoder; a buffer that cannot be decoded fails with ErrMalformedInput. An
// empty sheet yields an empty grid and no error.
func ReadGrid(data []byte, filename string) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return readCSV(data)
	case ".xlsx":
		return readXLSX(data)
	case ".xls":
		return readXLS(data)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedFileType, filepath.Ext(filename))
}

func readCSV(data []byte) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = true

	var grid [][]string
	chunk := make([][]string, 0, rowChunkSize)
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
		}
		chunk = append(chunk, row)
		if len(chunk) == rowChunkSize {
			grid = append(grid, chunk...)
			chunk = chunk[:0]
		}
	}
	return append(grid, chunk...), nil
}

func readXLSX(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return [][]string{}, nil
	}
	// Stream rows instead of GetRows so a large sheet never materializes
	// twice in memory.
	iter, err := f.Rows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	defer iter.Close()

	var grid [][]string
	chunk := make([][]string, 0, rowChunkSize)
	for iter.Next() {
		row, err := iter.Columns()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
		}
		chunk = append(chunk, row)
		if len(chunk) == rowChunkSize {
			grid = append(grid, chunk...)
			chunk = chunk[:0]
		}
	}
	if err := iter.Error(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	return append(grid, chunk...), nil
}

func readXLS(data []byte) ([][]string, error) {
	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	if wb.NumSheets() == 0 {
		return [][]string{}, nil
	}
	sheet := wb.GetSheet(0)
	if sheet == nil {
		return [][]string{}, nil
	}

	var grid [][]string
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			grid = append(grid, []string{})
			continue
		}
		cells := make([]string, 0, row.LastCol())
		for c := 0; c < row.LastCol(); c++ {
			cells = append(cells, row.Col(c))
		}
		grid = append(grid, cells)
	}
	return grid, nil
}
