// Package export writes aggregation outputs back out in the formats the
// source locale expects: semicolon-delimited text with decimal commas, and
// spreadsheet files for the unpivoted headcount matrix.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"esgboard/domain/workforce"
	"esgboard/internal/normalize"
)

// normalizedHeaders is the column order of the normalized-table export
var normalizedHeaders = []string{
	"Αριθμός μητρώου",
	"Όνομα Φύλου",
	"Περιγραφή εταιρίας",
	"Division",
	"Department",
	"Πόλη",
	"Σύμβαση",
	"Περιγραφή Σύμβασης",
	"Job Property",
	"Ημ/νία γέννησης",
	"Ημ/νία πρόσληψης",
	"Ημ/νία αποχώρησης",
	"Ονομαστικός μισθός",
	"ΜΙΚΤΕΣ ΑΠΟΔ",
	"Περιγραφή Αιτ. Αποχώρησης",
	"Hire Year",
	"Departure Year",
}

// WriteNormalizedCSV reproduces the normalized table as semicolon-delimited
// text with the source locale restored: dates back to dd/mm/yyyy and
// decimal points re-inverted to commas, so the file round-trips with the
// upstream system. Null cells export as empty strings.
func WriteNormalizedCSV(w io.Writer, t *workforce.Table) error {
	cw := csv.NewWriter(w)
	cw.Comma = ';'

	if err := cw.Write(normalizedHeaders); err != nil {
		return fmt.Errorf("failed to write export header: %w", err)
	}
	for _, rec := range t.Records {
		row := []string{
			rec.ID,
			rec.Gender,
			rec.Company,
			rec.Division,
			rec.Department,
			rec.City,
			rec.Contract,
			rec.ContractDesc,
			rec.JobProperty,
			formatDate(rec.BirthDate),
			formatDate(rec.HireDate),
			formatDate(rec.DepartureDate),
			FormatDecimalComma(rec.NominalSalary),
			FormatDecimalComma(rec.GrossAnnual),
			rec.DepartureReason,
			formatYear(rec.HireYear),
			formatYear(rec.DepartureYear),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write export row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// FormatDecimalComma renders a nullable decimal with a comma separator,
// inverting the normalizer's comma-to-period transform.
func FormatDecimalComma(v *float64) string {
	if v == nil {
		return ""
	}
	return strings.ReplaceAll(strconv.FormatFloat(*v, 'f', -1, 64), ".", ",")
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(normalize.DateFormat)
}

func formatYear(y *int) string {
	if y == nil {
		return ""
	}
	return strconv.Itoa(*y)
}
