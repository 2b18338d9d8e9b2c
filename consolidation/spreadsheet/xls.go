package spreadsheet

import (
	"bytes"
	"strconv"

	"github.com/shakinm/xlsReader/xls"
	"github.com/shakinm/xlsReader/xls/structure"
)

// loadXLS reads legacy BIFF workbooks. Numeric cells keep their raw value as
// serial, so date-formatted columns render with the day intact. Workbooks are
// assumed to use the 1900 date system.
func loadXLS(data []byte) (*grid, error) {
	wb, err := xls.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	if wb.GetNumberSheets() == 0 {
		return nil, ErrNoWorksheet
	}

	sheet, err := wb.GetSheet(0)
	if err != nil {
		return nil, err
	}

	g := &grid{}

	for i := 0; i <= sheet.GetNumberRows(); i++ {
		row, err := sheet.GetRow(i)
		if err != nil {
			g.rows = append(g.rows, nil)
			continue
		}

		cols := row.GetCols()
		cells := make([]cell, len(cols))

		for j, c := range cols {
			cells[j] = xlsCell(c)
		}

		g.rows = append(g.rows, cells)
	}

	trimTrailingBlankRows(g)

	return g, nil
}

func xlsCell(c structure.CellData) cell {
	if c == nil {
		return cell{}
	}

	v := cell{text: c.GetString()}

	if f := c.GetFloat64(); f != 0 {
		v.serial = strconv.FormatFloat(f, 'f', -1, 64)
	}

	return v
}

func trimTrailingBlankRows(g *grid) {
	for len(g.rows) > 0 && blank(g.rows[len(g.rows)-1]) {
		g.rows = g.rows[:len(g.rows)-1]
	}
}
