package normalize

import (
	"fmt"
	"strings"

	"esgboard/adapters/tabular"
	"esgboard/domain/core"
	"esgboard/domain/training"
)

// Optional training columns: materialized when present, absent otherwise.
const (
	trainingGenderHeader     = "Gender"
	trainingCompletionHeader = "Completion Date"
)

// NormalizeTraining builds typed training records from a raw sheet. Unlike
// the employee table, training uploads carry fixed English headers, so the
// whole required set is checked literally up front and reported as one
// named error.
func NormalizeTraining(table *tabular.RawTable) ([]training.Record, error) {
	var missing []string
	for _, col := range training.RequiredColumns {
		if !table.HasHeader(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", core.ErrMissingColumn, strings.Join(missing, ", "))
	}

	records := make([]training.Record, 0, len(table.Rows))
	for _, row := range table.Rows {
		records = append(records, training.Record{
			Country:        row["Country"],
			Company:        row["Company"],
			Year:           row["Year"],
			Division:       row["Division"],
			Department:     row["Department"],
			JobProperty:    row["Job Property"],
			Gender:         row[trainingGenderHeader],
			Status:         row["Status"],
			TraineeID:      strings.TrimSpace(row["Trainee ID"]),
			DurationHours:  ParseDecimal(row["Duration in Hours"]),
			Cost:           ParseDecimal(row["Cost (€)"]),
			CompletionDate: ParseDate(row[trainingCompletionHeader]),
		})
	}
	return records, nil
}
