// Package normalize converts resolved raw columns into the typed employee
// table. It is the only place where locale coercion and the day-rate salary
// correction happen; running it more than once per upload would double the
// day-rate salaries, so the app layer funnels every load through a single
// memoized entry point.
package normalize

import (
	"log"
	"strconv"
	"strings"
	"time"

	"esgboard/adapters/tabular"
	"esgboard/domain/core"
	"esgboard/domain/workforce"
	"esgboard/internal/resolve"
)

// DateFormat is the exact day/month/year layout of the source exports
const DateFormat = "02/01/2006"

// dayRateFactor annualizes a daily rate to a monthly-equivalent figure
const dayRateFactor = 26

// ParseDate parses a source date cell. Unparsable or empty cells yield nil,
// never an error; per-cell failures are silent by contract.
func ParseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return nil
	}
	t = t.UTC()
	return &t
}

// ParseDecimal parses a locale-formatted decimal cell. Every comma is
// replaced with a period before parsing, so "3417,48" reads as 3417.48.
// Unparsable cells yield nil and are excluded from aggregation; they are
// never defaulted to zero.
func ParseDecimal(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil {
		return nil
	}
	return &v
}

// Normalize builds the typed employee table from a raw table and its
// resolved schema. The identifier column is mandatory; every other column
// is materialized only if it resolved, and the table records which
// canonical columns exist so consumers can fail loudly instead of
// aggregating fabricated nulls.
//
// Day-rate annualization is applied here, exactly once, immediately after
// decimal parsing.
func Normalize(table *tabular.RawTable, schema *resolve.Schema) (*workforce.Table, error) {
	idHeader, ok := schema.RawHeader(workforce.ColEmployeeID)
	if !ok {
		return nil, core.NewMissingColumnError(workforce.ColEmployeeID)
	}

	resolved := make(map[string]bool, len(schema.Header))
	for canonical := range schema.Header {
		resolved[canonical] = true
	}

	lookup := func(row tabular.RawRowData, canonical string) string {
		header, ok := schema.RawHeader(canonical)
		if !ok {
			return ""
		}
		return row[header]
	}

	records := make([]workforce.EmployeeRecord, 0, len(table.Rows))
	dayRated := 0
	for _, row := range table.Rows {
		rec := workforce.EmployeeRecord{
			ID:              strings.TrimSpace(row[idHeader]),
			Gender:          lookup(row, workforce.ColGender),
			Company:         lookup(row, workforce.ColCompany),
			Division:        lookup(row, workforce.ColDivision),
			Department:      lookup(row, workforce.ColDepartment),
			City:            lookup(row, workforce.ColCity),
			Contract:        lookup(row, workforce.ColContract),
			ContractDesc:    lookup(row, workforce.ColContractDesc),
			JobProperty:     lookup(row, workforce.ColJobProperty),
			LastName:        lookup(row, workforce.ColLastName),
			FirstName:       lookup(row, workforce.ColFirstName),
			DepartureReason: lookup(row, workforce.ColDepartureReason),
			BirthDate:       ParseDate(lookup(row, workforce.ColBirthDate)),
			HireDate:        ParseDate(lookup(row, workforce.ColHireDate)),
			DepartureDate:   ParseDate(lookup(row, workforce.ColDepartureDate)),
			NominalSalary:   ParseDecimal(lookup(row, workforce.ColNominalSalary)),
			GrossAnnual:     ParseDecimal(lookup(row, workforce.ColGrossAnnual)),
		}

		if rec.NominalSalary != nil && workforce.DayRateContracts[rec.ContractDesc] {
			annualized := *rec.NominalSalary * dayRateFactor
			rec.NominalSalary = &annualized
			dayRated++
		}

		rec.HireYear = yearOf(rec.HireDate)
		rec.DepartureYear = yearOf(rec.DepartureDate)

		records = append(records, rec)
	}

	log.Printf("[Normalizer] typed %d records (%d day-rate salaries annualized)", len(records), dayRated)
	return &workforce.Table{Records: records, Resolved: resolved}, nil
}

func yearOf(t *time.Time) *int {
	if t == nil {
		return nil
	}
	y := t.Year()
	return &y
}
