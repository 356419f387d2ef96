package metrics

import (
	"sort"

	"esgboard/domain/core"
	"esgboard/domain/workforce"

	"github.com/montanaflynn/stats"
)

// CompanyRemunerationRatio is the per-company annual remuneration ratio.
// Ratio is nil with fewer than two valid values or a non-positive median.
type CompanyRemunerationRatio struct {
	Company string
	Ratio   *float64
}

// MedianSalaryRow supports the median-salary-by-company table: the median
// gross remuneration per company after removing the company's single top
// earner, converted to the reporting currency.
type MedianSalaryRow struct {
	Company         string
	Median          float64
	MedianConverted float64
}

// OverallRemunerationRatio computes the ratio of the single highest gross
// annual remuneration to the median of the rest, across all companies.
//
// The population is stricter than the pay gap's: only employees active at
// both year boundaries count, i.e. hired on or before Jan 1 and not
// departed on or before Dec 31. Figures convert to the reporting currency
// via the exchange-rate table before comparison.
func OverallRemunerationRatio(t *workforce.Table, year int, rates workforce.ExchangeRateTable) (float64, error) {
	err := requireColumns(t, workforce.ColGrossAnnual, workforce.ColCompany, workforce.ColHireDate)
	if err != nil {
		return 0, err
	}
	values := convertedRemunerations(fullYearActive(t.Records, year), rates)
	ratio := remunerationRatioOf(values)
	if ratio == nil {
		return 0, core.ErrInsufficientData
	}
	return *ratio, nil
}

// RemunerationRatioByCompany computes the ratio per company, sorted by
// company label.
func RemunerationRatioByCompany(t *workforce.Table, year int, rates workforce.ExchangeRateTable) ([]CompanyRemunerationRatio, error) {
	err := requireColumns(t, workforce.ColGrossAnnual, workforce.ColCompany, workforce.ColHireDate)
	if err != nil {
		return nil, err
	}
	active := fullYearActive(t.Records, year)

	var out []CompanyRemunerationRatio
	for _, company := range companiesOf(active) {
		var group []workforce.EmployeeRecord
		for _, rec := range active {
			if rec.Company == company {
				group = append(group, rec)
			}
		}
		values := convertedRemunerations(group, rates)
		out = append(out, CompanyRemunerationRatio{Company: company, Ratio: remunerationRatioOf(values)})
	}
	return out, nil
}

// MedianSalaryByCompany builds the median-gross table for employees not
// departed within the reporting year, excluding each company's single top
// earner, sorted descending by the converted median.
func MedianSalaryByCompany(t *workforce.Table, year int, rates workforce.ExchangeRateTable) ([]MedianSalaryRow, error) {
	if err := requireColumns(t, workforce.ColGrossAnnual, workforce.ColCompany); err != nil {
		return nil, err
	}

	byCompany := make(map[string][]float64)
	for _, rec := range t.Records {
		if rec.DepartureDate != nil && rec.DepartureDate.Year() <= year {
			continue
		}
		if rec.GrossAnnual == nil {
			continue
		}
		byCompany[rec.Company] = append(byCompany[rec.Company], *rec.GrossAnnual)
	}

	var out []MedianSalaryRow
	for company, values := range byCompany {
		rest := dropSingleMax(values)
		if len(rest) == 0 {
			continue
		}
		median, err := stats.Median(rest)
		if err != nil {
			continue
		}
		out = append(out, MedianSalaryRow{
			Company:         company,
			Median:          median,
			MedianConverted: median * rates.Rate(company),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MedianConverted > out[j].MedianConverted })
	return out, nil
}

// fullYearActive keeps employees active across the whole reporting year:
// active at the opening boundary and still active at the closing one.
func fullYearActive(records []workforce.EmployeeRecord, year int) []workforce.EmployeeRecord {
	start := workforce.MonthStart(year, 1)
	end := workforce.YearEnd(year)
	var out []workforce.EmployeeRecord
	for _, rec := range records {
		if rec.HireDate == nil || rec.HireDate.After(start) {
			continue
		}
		if rec.DepartureDate != nil && !rec.DepartureDate.After(end) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

func convertedRemunerations(records []workforce.EmployeeRecord, rates workforce.ExchangeRateTable) []float64 {
	var values []float64
	for _, rec := range records {
		if rec.GrossAnnual == nil {
			continue
		}
		values = append(values, *rec.GrossAnnual*rates.Rate(rec.Company))
	}
	return values
}

// remunerationRatioOf removes the single maximum value and divides it by
// the median of the remainder. Nil with fewer than two values or when the
// median is not positive.
func remunerationRatioOf(values []float64) *float64 {
	if len(values) < 2 {
		return nil
	}
	max, err := stats.Max(values)
	if err != nil {
		return nil
	}
	rest := dropSingleMax(values)
	median, err := stats.Median(rest)
	if err != nil || median <= 0 {
		return nil
	}
	ratio := max / median
	return &ratio
}

// dropSingleMax removes exactly one instance of the maximum value
func dropSingleMax(values []float64) []float64 {
	if len(values) == 0 {
		return nil
	}
	maxIdx := 0
	for i, v := range values {
		if v > values[maxIdx] {
			maxIdx = i
		}
	}
	rest := make([]float64, 0, len(values)-1)
	rest = append(rest, values[:maxIdx]...)
	rest = append(rest, values[maxIdx+1:]...)
	return rest
}
