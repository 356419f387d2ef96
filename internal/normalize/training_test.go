package normalize

import (
	"errors"
	"strings"
	"testing"

	"esgboard/adapters/tabular"
	"esgboard/domain/core"
	"esgboard/domain/training"
)

func trainingTable(headers []string, rows ...[]string) *tabular.RawTable {
	table := &tabular.RawTable{Headers: headers}
	for _, cells := range rows {
		row := make(tabular.RawRowData, len(headers))
		for i, h := range headers {
			if i < len(cells) {
				row[h] = cells[i]
			}
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}

func TestNormalizeTraining_ReportsAllMissingColumns(t *testing.T) {
	table := trainingTable([]string{"Country", "Company"}, []string{"GR", "ALUMIL"})

	_, err := NormalizeTraining(table)
	if !errors.Is(err, core.ErrMissingColumn) {
		t.Fatalf("expected missing-column error, got %v", err)
	}
	// All absent required columns are named in one error.
	for _, col := range []string{"Year", "Duration in Hours", "Trainee ID"} {
		if !strings.Contains(err.Error(), col) {
			t.Errorf("error should name %q: %v", col, err)
		}
	}
}

func TestNormalizeTraining_TypesRows(t *testing.T) {
	headers := append(append([]string{}, training.RequiredColumns...), "Completion Date")
	table := trainingTable(headers,
		[]string{"GR", "ALUMIL SA", "2024", "Sales", "Export", "OPERATIONAL", "Completed", "7,5", "120,00", " T-9 ", "15/05/2024"},
		[]string{"GR", "ALUMIL SA", "2024", "Sales", "Export", "OPERATIONAL", "Planned", "", "bad", "T-10", ""},
	)

	records, err := NormalizeTraining(table)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	first := records[0]
	if first.TraineeID != "T-9" {
		t.Errorf("trainee id = %q, want trimmed T-9", first.TraineeID)
	}
	if first.DurationHours == nil || *first.DurationHours != 7.5 {
		t.Errorf("duration = %v, want 7.5", first.DurationHours)
	}
	if first.Cost == nil || *first.Cost != 120 {
		t.Errorf("cost = %v, want 120", first.Cost)
	}
	if first.CompletionDate == nil {
		t.Error("completion date should parse")
	}

	second := records[1]
	if second.DurationHours != nil || second.Cost != nil || second.CompletionDate != nil {
		t.Error("missing or unparsable figures should be nil")
	}
}
