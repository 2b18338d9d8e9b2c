package spreadsheet

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

const dayFirstLayout = "02/01/2006"

func loadXLSX(data []byte) (*grid, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoWorksheet
	}

	formatted, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}

	raw, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	g := &grid{rows: make([][]cell, len(formatted))}

	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		g.date1904 = *props.Date1904
	}

	for i, row := range formatted {
		cells := make([]cell, len(row))

		for j, text := range row {
			cells[j].text = text

			if i < len(raw) && j < len(raw[i]) {
				if _, err := strconv.ParseFloat(strings.TrimSpace(raw[i][j]), 64); err == nil {
					cells[j].serial = strings.TrimSpace(raw[i][j])
				}
			}
		}

		g.rows[i] = cells
	}

	return g, nil
}

// renderDate renders a date serial day-first, and keeps any other value as
// it was displayed in the sheet.
func renderDate(c cell, date1904 bool) string {
	if c.serial == "" {
		return c.text
	}

	serial, err := strconv.ParseFloat(c.serial, 64)
	if err != nil || serial <= 0 {
		return c.text
	}

	t, err := excelize.ExcelDateToTime(serial, date1904)
	if err != nil {
		return c.text
	}

	return t.Format(dayFirstLayout)
}
