// Package ports defines the interfaces the application layer consumes,
// keeping adapters swappable and services testable with fakes.
package ports

import (
	"esgboard/adapters/tabular"
)

// TableReaderPort parses uploaded file bytes into raw tables
type TableReaderPort interface {
	// Read accepts delimited text or a spreadsheet, keyed off the filename
	Read(filename string, data []byte) (*tabular.RawTable, error)
	// ReadSpreadsheetOnly rejects anything that is not a spreadsheet
	ReadSpreadsheetOnly(filename string, data []byte) (*tabular.RawTable, error)
}
