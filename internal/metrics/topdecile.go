package metrics

import (
	"math"
	"sort"

	"esgboard/domain/workforce"
	"esgboard/internal/snapshot"
)

// TopEarner is one row of the top-decile compensation table
type TopEarner struct {
	Company      string
	EmployeeID   string
	LastName     string
	FirstName    string
	Compensation float64
}

// TopDecileByCompany returns, per company, the employees in the top 10% by
// gross annual remuneration (rounded up, at least one per non-empty group).
// The population is employees active at the Dec 31 boundary of the
// reporting year. Output is ordered by company label, then by compensation
// descending within each company.
func TopDecileByCompany(t *workforce.Table, year int) ([]TopEarner, error) {
	err := requireColumns(t, workforce.ColCompany, workforce.ColGrossAnnual, workforce.ColEmployeeID, workforce.ColHireDate)
	if err != nil {
		return nil, err
	}
	active := snapshot.ActiveAtBoundary(t.Records, workforce.YearEnd(year))

	var out []TopEarner
	for _, company := range companiesOf(active) {
		var ranked []workforce.EmployeeRecord
		for _, rec := range active {
			if rec.Company == company && rec.GrossAnnual != nil {
				ranked = append(ranked, rec)
			}
		}
		if len(ranked) == 0 {
			continue
		}
		sort.SliceStable(ranked, func(i, j int) bool {
			return *ranked[i].GrossAnnual > *ranked[j].GrossAnnual
		})

		take := int(math.Ceil(float64(len(ranked)) * 0.1))
		if take < 1 {
			take = 1
		}
		for _, rec := range ranked[:take] {
			out = append(out, TopEarner{
				Company:      rec.Company,
				EmployeeID:   rec.ID,
				LastName:     rec.LastName,
				FirstName:    rec.FirstName,
				Compensation: *rec.GrossAnnual,
			})
		}
	}
	return out, nil
}
