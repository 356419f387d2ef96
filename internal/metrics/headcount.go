package metrics

import (
	"sort"
	"strings"

	"esgboard/domain/workforce"
)

// blankLabel replaces empty Division/Department values before grouping so
// blank cells group together visibly instead of vanishing.
const blankLabel = "Blank"

// HeadcountRow is one group of the monthly headcount matrix
type HeadcountRow struct {
	// Keys holds the group's value per requested dimension, in the same
	// order as Matrix.Dimensions.
	Keys []string
	// Counts holds the number of employees active during each month, in the
	// same order as Matrix.Months.
	Counts []int
}

// HeadcountMatrix is the monthly headcount aggregate over a year range
type HeadcountMatrix struct {
	Dimensions []string
	Months     []string
	Rows       []HeadcountRow
}

// MonthlyHeadcount computes the headcount matrix for [startYear, endYear],
// grouped by the requested canonical dimensions (company, division,
// department). An employee counts toward a month when active during that
// calendar month.
func MonthlyHeadcount(t *workforce.Table, startYear, endYear int, dimensions []string) (*HeadcountMatrix, error) {
	cols := append([]string{workforce.ColHireDate}, dimensions...)
	if err := requireColumns(t, cols...); err != nil {
		return nil, err
	}

	months := workforce.MonthsBetween(startYear, endYear)
	matrix := &HeadcountMatrix{Dimensions: dimensions}
	for _, m := range months {
		matrix.Months = append(matrix.Months, workforce.MonthKey(m))
	}

	type bucket struct {
		keys   []string
		counts []int
	}
	buckets := make(map[string]*bucket)

	for _, rec := range t.Records {
		keys := groupKeys(rec, dimensions)
		id := strings.Join(keys, "\x1f")
		b, ok := buckets[id]
		if !ok {
			b = &bucket{keys: keys, counts: make([]int, len(months))}
			buckets[id] = b
		}
		for i, m := range months {
			if rec.ActiveDuringMonth(m) {
				b.counts[i]++
			}
		}
	}

	ids := make([]string, 0, len(buckets))
	for id := range buckets {
		ids = append(ids, id)
	}
	// Stable output order: lexicographic on the group key tuple.
	sort.Strings(ids)
	for _, id := range ids {
		matrix.Rows = append(matrix.Rows, HeadcountRow{Keys: buckets[id].keys, Counts: buckets[id].counts})
	}
	return matrix, nil
}

// LongRow is one record of the unpivoted headcount matrix
type LongRow struct {
	Keys      []string
	Month     string
	Headcount int
}

// Unpivot melts the month columns into one row per (group, month)
func (m *HeadcountMatrix) Unpivot() []LongRow {
	rows := make([]LongRow, 0, len(m.Rows)*len(m.Months))
	for _, r := range m.Rows {
		for i, month := range m.Months {
			rows = append(rows, LongRow{Keys: r.Keys, Month: month, Headcount: r.Counts[i]})
		}
	}
	return rows
}

// BoundaryHeadcount counts start- and end-of-period headcount per company
// using the point-in-time predicate at Dec 31 of year-1 and year.
type BoundaryHeadcount struct {
	Company        string
	StartHeadcount int
	EndHeadcount   int
}

// PeriodHeadcounts computes boundary headcounts for every company
func PeriodHeadcounts(t *workforce.Table, year int) ([]BoundaryHeadcount, error) {
	if err := requireColumns(t, workforce.ColCompany, workforce.ColHireDate); err != nil {
		return nil, err
	}
	start := workforce.YearEnd(year - 1)
	end := workforce.YearEnd(year)

	var out []BoundaryHeadcount
	for _, company := range companiesOf(t.Records) {
		row := BoundaryHeadcount{Company: company}
		for _, rec := range t.Records {
			if rec.Company != company {
				continue
			}
			if rec.ActiveAtBoundary(start) {
				row.StartHeadcount++
			}
			if rec.ActiveAtBoundary(end) {
				row.EndHeadcount++
			}
		}
		out = append(out, row)
	}
	return out, nil
}

func groupKeys(rec workforce.EmployeeRecord, dimensions []string) []string {
	keys := make([]string, len(dimensions))
	for i, dim := range dimensions {
		v := dimensionValue(rec, dim)
		if v == "" && (dim == workforce.ColDivision || dim == workforce.ColDepartment) {
			v = blankLabel
		}
		keys[i] = v
	}
	return keys
}

func dimensionValue(rec workforce.EmployeeRecord, canonical string) string {
	switch canonical {
	case workforce.ColCompany:
		return rec.Company
	case workforce.ColDivision:
		return rec.Division
	case workforce.ColDepartment:
		return rec.Department
	case workforce.ColCity:
		return rec.City
	case workforce.ColGender:
		return rec.Gender
	case workforce.ColContract:
		return rec.Contract
	case workforce.ColJobProperty:
		return rec.JobProperty
	}
	return ""
}
