package tabular

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"esgboard/domain/core"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
)

var bomUTF8 = []byte{0xEF, 0xBB, 0xBF}

// DataReader parses uploaded employee and training files into a RawTable.
// Delimited files are semicolon-separated and arrive in ISO-8859-7 with a
// UTF-8 fallback; spreadsheet files are read from the first sheet.
type DataReader struct {
	delimiter rune
}

// NewDataReader creates a reader for semicolon-delimited exports
func NewDataReader() *DataReader {
	return &DataReader{delimiter: ';'}
}

// Read parses the uploaded bytes based on the filename extension.
// Unknown extensions are tried as delimited text first, then as a
// spreadsheet, matching how operators actually misname these exports.
func (r *DataReader) Read(filename string, data []byte) (*RawTable, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv", ".txt":
		return r.readDelimited(data)
	case ".xlsx":
		return r.readSpreadsheet(data)
	default:
		table, err := r.readDelimited(data)
		if err == nil {
			return table, nil
		}
		table, xlsxErr := r.readSpreadsheet(data)
		if xlsxErr == nil {
			return table, nil
		}
		return nil, fmt.Errorf("%w: %s", core.ErrUnsupportedFormat, filename)
	}
}

// ReadSpreadsheetOnly parses an upload that must be a spreadsheet
// (training plans reject delimited files).
func (r *DataReader) ReadSpreadsheetOnly(filename string, data []byte) (*RawTable, error) {
	if ext := strings.ToLower(filepath.Ext(filename)); ext != ".xlsx" {
		return nil, fmt.Errorf("%w: training uploads must be .xlsx, got %q", core.ErrUnsupportedFormat, filename)
	}
	return r.readSpreadsheet(data)
}

// readDelimited decodes and parses semicolon-delimited text
func (r *DataReader) readDelimited(data []byte) (*RawTable, error) {
	decoded, encoding := decodeLegacy(data)
	log.Printf("[DataReader] delimited file decoded as %s (%d bytes)", encoding, len(decoded))

	reader := csv.NewReader(bytes.NewReader(decoded))
	reader.Comma = r.delimiter
	// Real-world exports have ragged rows and stray quotes; tolerate both.
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse delimited file: %w", err)
	}
	return r.processRows(rows)
}

// readSpreadsheet parses the first sheet of an XLSX workbook
func (r *DataReader) readSpreadsheet(data []byte) (*RawTable, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, core.ErrEmptyTable
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	return r.processRows(rows)
}

// processRows converts raw string rows into a RawTable
func (r *DataReader) processRows(rows [][]string) (*RawTable, error) {
	if len(rows) < 2 {
		return nil, core.ErrEmptyTable
	}

	headerRow := rows[0]
	headers := make([]string, len(headerRow))
	for i, header := range headerRow {
		headers[i] = strings.TrimSpace(header)
	}

	dataRows := make([]RawRowData, 0, len(rows)-1)
	for i := 1; i < len(rows); i++ {
		rowData := make(RawRowData, len(headers))
		for j, cell := range rows[i] {
			if j < len(headers) {
				rowData[headers[j]] = strings.TrimSpace(cell)
			}
		}
		dataRows = append(dataRows, rowData)
	}

	log.Printf("[DataReader] file processed (%d columns, %d rows)", len(headers), len(dataRows))
	return &RawTable{Headers: headers, Rows: dataRows}, nil
}

// decodeLegacy converts upload bytes to UTF-8. The source system exports in
// ISO-8859-7 (Greek single-byte); newer exports are UTF-8. A UTF-8 BOM or
// valid multi-byte UTF-8 content selects UTF-8, everything else goes
// through the ISO-8859-7 table.
func decodeLegacy(data []byte) ([]byte, string) {
	if bytes.HasPrefix(data, bomUTF8) {
		return data[len(bomUTF8):], "utf-8-bom"
	}
	if utf8.Valid(data) {
		if isASCII(data) {
			return data, "ascii"
		}
		return data, "utf-8"
	}
	decoded, err := charmap.ISO8859_7.NewDecoder().Bytes(data)
	if err != nil {
		// Undefined code points; keep whatever decoded rather than failing
		// the whole upload over one byte.
		return data, "utf-8-fallback"
	}
	return decoded, "iso-8859-7"
}

func isASCII(data []byte) bool {
	for _, b := range data {
		if b >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
