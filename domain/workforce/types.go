package workforce

import (
	"time"
)

// Canonical column names used internally regardless of source header text.
// The resolver maps raw file headers onto these; every downstream stage
// speaks only canonical names.
const (
	ColEmployeeID      = "employee_id"
	ColGender          = "gender"
	ColCompany         = "company"
	ColDivision        = "division"
	ColDepartment      = "department"
	ColCity            = "city"
	ColContract        = "contract"
	ColContractDesc    = "contract_desc"
	ColJobProperty     = "job_property"
	ColLastName        = "last_name"
	ColFirstName       = "first_name"
	ColBirthDate       = "birth_date"
	ColHireDate        = "hire_date"
	ColDepartureDate   = "departure_date"
	ColNominalSalary   = "nominal_salary"
	ColGrossAnnual     = "gross_annual"
	ColDepartureReason = "departure_reason"
)

// Gender labels as they appear in the source exports
const (
	GenderMale   = "ΑΝΔΡΑΣ"
	GenderFemale = "ΓΥΝΑΙΚΑ"
)

// VoluntaryDepartureLabel is matched exactly and case-sensitively when
// counting voluntary exits. Involuntary and retirement exits use
// case-insensitive substring matching instead; the two behaviors are
// deliberately kept separate (see internal/metrics/turnover.go).
const VoluntaryDepartureLabel = "VOLUNTARY DEPARTURE"

// DayRateContracts enumerates contract descriptions whose nominal figure is
// a daily rate. These salaries are multiplied by 26 during normalization to
// bring them to a monthly-equivalent basis. The multiplication happens
// exactly once per upload, inside the normalizer.
var DayRateContracts = map[string]bool{
	"ΑΛΜ - ΗΜΕΡΟΜΙΣΘΙΟΙ": true,
}

// EmployeeRecord is one row of the normalized employee table: one employee
// per upload. Pointer fields are nullable; a nil value means the source
// cell was missing or unparsable and the record is excluded from numeric
// aggregation over that field.
type EmployeeRecord struct {
	// ID is always compared as a trimmed string, regardless of whether the
	// source column was numeric or text.
	ID string

	Gender          string
	Company         string
	Division        string
	Department      string
	City            string
	Contract        string
	ContractDesc    string
	JobProperty     string
	LastName        string
	FirstName       string
	DepartureReason string

	BirthDate     *time.Time
	HireDate      *time.Time
	DepartureDate *time.Time

	// NominalSalary is the monthly-equivalent salary after day-rate
	// annualization. GrossAnnual is the gross annual remuneration in the
	// source currency, converted via ExchangeRateTable at aggregation time.
	NominalSalary *float64
	GrossAnnual   *float64

	// Calendar-year components of the hire and departure dates,
	// null-propagating.
	HireYear      *int
	DepartureYear *int
}

// ActiveInWindow implements the window predicate: hired on or before the
// window end, and not departed before the window start. Records with no
// parsable hire date are never active.
func (r EmployeeRecord) ActiveInWindow(w PeriodWindow) bool {
	if r.HireDate == nil {
		return false
	}
	if r.HireDate.After(w.End) {
		return false
	}
	return r.DepartureDate == nil || !r.DepartureDate.Before(w.Start)
}

// ActiveAtBoundary implements the stricter point-in-time predicate: hired on
// or before the boundary, and departure (if any) strictly after it.
func (r EmployeeRecord) ActiveAtBoundary(boundary time.Time) bool {
	if r.HireDate == nil {
		return false
	}
	if r.HireDate.After(boundary) {
		return false
	}
	return r.DepartureDate == nil || r.DepartureDate.After(boundary)
}

// ActiveDuringMonth reports whether the employee was active during the
// calendar month starting at monthStart: hired before the first day of the
// following month and not departed before it.
func (r EmployeeRecord) ActiveDuringMonth(monthStart time.Time) bool {
	if r.HireDate == nil {
		return false
	}
	nextMonth := monthStart.AddDate(0, 1, 0)
	if !r.HireDate.Before(nextMonth) {
		return false
	}
	return r.DepartureDate == nil || !r.DepartureDate.Before(nextMonth)
}

// Table is a normalized employee table plus the upload identity it was
// derived from. Tables are never mutated after normalization; filters and
// aggregations always produce fresh slices.
type Table struct {
	Records []EmployeeRecord

	// Resolved reports which canonical columns were actually present in the
	// source file. Consumers requiring an absent column fail loudly with a
	// missing-column error instead of aggregating fabricated nulls.
	Resolved map[string]bool
}

// HasColumn reports whether a canonical column resolved from the source
func (t *Table) HasColumn(canonical string) bool {
	return t.Resolved[canonical]
}
