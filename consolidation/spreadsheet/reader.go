// Package spreadsheet reads the first worksheet of xls and xlsx exports.
package spreadsheet

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/doitintl/hello/records-consolidation/consolidation/domain"
)

// Format is the container format of a spreadsheet file.
type Format int

const (
	FormatUnknown Format = iota
	FormatXLSX
	FormatXLS
)

var (
	ErrUnsupportedFormat = errors.New("unsupported spreadsheet format")
	ErrNoWorksheet       = errors.New("workbook has no worksheet")
	ErrEmptyWorksheet    = errors.New("worksheet has no header row")
)

var (
	zipMagic  = []byte{0x50, 0x4B, 0x03, 0x04}
	ole2Magic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}
)

// cell is a worksheet value. serial is set when the underlying value is a
// number, so date columns can be rendered from it.
type cell struct {
	text   string
	serial string
}

type grid struct {
	rows     [][]cell
	date1904 bool
}

// DetectFormat sniffs the file signature.
func DetectFormat(data []byte) Format {
	switch {
	case bytes.HasPrefix(data, zipMagic):
		return FormatXLSX
	case bytes.HasPrefix(data, ole2Magic):
		return FormatXLS
	default:
		return FormatUnknown
	}
}

// ReadHeader returns the header row of the first worksheet.
func ReadHeader(data []byte) (domain.Header, error) {
	g, err := load(data)
	if err != nil {
		return nil, err
	}

	return g.header(), nil
}

// Read returns the first worksheet projected to the given columns, matched by
// source name. Date columns holding a spreadsheet serial are rendered as
// DD/MM/YYYY. Rows that are blank across the whole source row are dropped.
func Read(data []byte, columns []domain.Column) (domain.RawTable, error) {
	g, err := load(data)
	if err != nil {
		return domain.RawTable{}, err
	}

	idx := g.header().Index()
	positions := make([]int, len(columns))
	header := make(domain.Header, len(columns))

	for i, c := range columns {
		pos, ok := idx[c.Source]
		if !ok {
			return domain.RawTable{}, fmt.Errorf("column %q not found in header", c.Source)
		}

		positions[i] = pos
		header[i] = c.Source
	}

	table := domain.RawTable{Header: header}

	for _, row := range g.rows[1:] {
		if blank(row) {
			continue
		}

		record := make(domain.Record, len(columns))

		for i, c := range columns {
			if positions[i] >= len(row) {
				continue
			}

			v := row[positions[i]]
			if c.Kind == domain.KindDate {
				record[i] = renderDate(v, g.date1904)
			} else {
				record[i] = v.text
			}
		}

		table.Records = append(table.Records, record)
	}

	return table, nil
}

func load(data []byte) (g *grid, err error) {
	// Parsers of binary formats may panic on corrupted input.
	defer func() {
		if r := recover(); r != nil {
			g, err = nil, fmt.Errorf("corrupted spreadsheet: %v", r)
		}
	}()

	switch DetectFormat(data) {
	case FormatXLSX:
		g, err = loadXLSX(data)
	case FormatXLS:
		g, err = loadXLS(data)
	default:
		return nil, ErrUnsupportedFormat
	}

	if err != nil {
		return nil, err
	}

	if len(g.rows) == 0 {
		return nil, ErrEmptyWorksheet
	}

	return g, nil
}

func (g *grid) header() domain.Header {
	header := make(domain.Header, len(g.rows[0]))
	for i, c := range g.rows[0] {
		header[i] = normalizeHeader(c.text)
	}

	return header
}

// normalizeHeader trims header cells and composes accented characters, so
// exports saved with decomposed accents still match the schema.
func normalizeHeader(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

func blank(row []cell) bool {
	for _, c := range row {
		if strings.TrimSpace(c.text) != "" {
			return false
		}
	}

	return true
}
