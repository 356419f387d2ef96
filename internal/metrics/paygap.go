package metrics

import (
	"esgboard/domain/core"
	"esgboard/domain/workforce"
	"esgboard/internal/snapshot"

	"gonum.org/v1/gonum/stat"
)

// CompanyPayGap is the per-company gender pay gap. Gap is nil when either
// gender group is empty for the company; that renders as "not enough
// data", never as zero.
type CompanyPayGap struct {
	Company string
	Gap     *float64
}

// OverallGenderPayGap computes the gap across all companies for a reporting
// year: mean male salary minus mean female salary over mean male salary, as
// a percentage. The population is the window-active records with a
// strictly positive, non-null normalized salary.
func OverallGenderPayGap(t *workforce.Table, year int) (float64, error) {
	err := requireColumns(t, workforce.ColGender, workforce.ColNominalSalary, workforce.ColHireDate)
	if err != nil {
		return 0, err
	}
	active := snapshot.ActiveInWindow(t.Records, workforce.CalendarYear(year))
	gap := payGapOf(active)
	if gap == nil {
		return 0, core.ErrInsufficientData
	}
	return *gap, nil
}

// GenderPayGapByCompany computes the gap for every company in the table,
// sorted by company label.
func GenderPayGapByCompany(t *workforce.Table, year int) ([]CompanyPayGap, error) {
	err := requireColumns(t, workforce.ColGender, workforce.ColNominalSalary, workforce.ColHireDate, workforce.ColCompany)
	if err != nil {
		return nil, err
	}
	active := snapshot.ActiveInWindow(t.Records, workforce.CalendarYear(year))

	var out []CompanyPayGap
	for _, company := range companiesOf(active) {
		var group []workforce.EmployeeRecord
		for _, rec := range active {
			if rec.Company == company {
				group = append(group, rec)
			}
		}
		out = append(out, CompanyPayGap{Company: company, Gap: payGapOf(group)})
	}
	return out, nil
}

// payGapOf returns the gap for one population, or nil when either gender
// has no valid salaries.
func payGapOf(records []workforce.EmployeeRecord) *float64 {
	var male, female []float64
	for _, rec := range records {
		if rec.NominalSalary == nil || *rec.NominalSalary <= 0 {
			continue
		}
		switch rec.Gender {
		case workforce.GenderMale:
			male = append(male, *rec.NominalSalary)
		case workforce.GenderFemale:
			female = append(female, *rec.NominalSalary)
		}
	}
	if len(male) == 0 || len(female) == 0 {
		return nil
	}
	maleMean := stat.Mean(male, nil)
	femaleMean := stat.Mean(female, nil)
	gap := (maleMean - femaleMean) / maleMean * 100
	return &gap
}
