package domain

// RemoteFile is an entry of a Drive folder. ID is the handle used to download it.
type RemoteFile struct {
	ID       string
	Name     string
	MimeType string
}

// Header is the first row of a sheet.
type Header []string

// Index maps every column name to its first position in the header.
func (h Header) Index() map[string]int {
	idx := make(map[string]int, len(h))

	for i, name := range h {
		if _, ok := idx[name]; !ok {
			idx[name] = i
		}
	}

	return idx
}

// Record is one data row, aligned with a Header.
type Record []string

// Get returns the value of the named column, or an empty string when the
// column is absent from the index or the record is short.
func (r Record) Get(idx map[string]int, name string) string {
	i, ok := idx[name]
	if !ok || i >= len(r) {
		return ""
	}

	return r[i]
}

// RawTable is the content of one spreadsheet file after projection.
type RawTable struct {
	Header  Header
	Records []Record
}

// Len returns the number of data rows.
func (t RawTable) Len() int {
	return len(t.Records)
}

// Conform returns the table re-shaped to the given columns. Columns missing
// from t are filled with empty strings, extra columns are dropped.
func (t RawTable) Conform(columns []string) RawTable {
	idx := t.Header.Index()
	records := make([]Record, 0, len(t.Records))

	for _, r := range t.Records {
		out := make(Record, len(columns))
		for i, c := range columns {
			out[i] = r.Get(idx, c)
		}

		records = append(records, out)
	}

	return RawTable{
		Header:  append(Header(nil), columns...),
		Records: records,
	}
}

// Append concatenates the rows of other, which must share t's header.
func (t *RawTable) Append(other RawTable) {
	t.Records = append(t.Records, other.Records...)
}
