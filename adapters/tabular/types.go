package tabular

// RawRowData maps a raw header to the trimmed cell value for one row
type RawRowData map[string]string

// RawTable is the untyped result of reading an uploaded file: headers in
// source order plus one RawRowData per data row. All values are strings at
// this stage; typing happens in the normalizer.
type RawTable struct {
	Headers []string
	Rows    []RawRowData
}

// HasHeader reports whether a raw header is present in the table
func (t *RawTable) HasHeader(name string) bool {
	for _, h := range t.Headers {
		if h == name {
			return true
		}
	}
	return false
}

// Column collects the stringified values of one raw column, in row order.
// Missing cells come back as empty strings.
func (t *RawTable) Column(name string) []string {
	values := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		values[i] = row[name]
	}
	return values
}
