// Package metrics is the aggregation engine behind the dashboard pages.
// Every function takes a normalized table plus parameters and returns a new
// aggregate; inputs are never mutated. Rates are kept at full precision
// here and rounded to two decimals only at display time.
//
// Division-by-zero policy differs per metric (turnover rates fall back to
// 0, gap and ratio metrics report insufficient data) and the differences
// are contractual; do not unify them.
package metrics

import (
	"sort"

	"esgboard/domain/core"
	"esgboard/domain/workforce"
)

// requireColumns fails loudly when a computation needs canonical columns
// the resolver never produced.
func requireColumns(t *workforce.Table, cols ...string) error {
	for _, col := range cols {
		if !t.HasColumn(col) {
			return core.NewMissingColumnError(col)
		}
	}
	return nil
}

// companiesOf lists the distinct company labels in sorted order. The engine
// makes no ordering promise of its own; sorting here is the documented key
// (company label, ascending) that keeps page output stable.
func companiesOf(records []workforce.EmployeeRecord) []string {
	seen := make(map[string]bool)
	var companies []string
	for _, r := range records {
		if !seen[r.Company] {
			seen[r.Company] = true
			companies = append(companies, r.Company)
		}
	}
	sort.Strings(companies)
	return companies
}
