package workforce

import "time"

// FilterDimensions lists the categories the employee view can be narrowed
// by, in display order.
var FilterDimensions = []string{
	ColCompany,
	ColCity,
	ColDivision,
	ColDepartment,
	ColGender,
	ColContract,
	ColJobProperty,
	ColAgeBucket,
	ColDepartureReason,
}

// CategoryValue returns the record's value for a filterable category. The
// age bucket is derived from the birth date at the reference date; every
// other category is a stored label. Unknown categories yield "".
func (r EmployeeRecord) CategoryValue(category string, ref time.Time) string {
	switch category {
	case ColCompany:
		return r.Company
	case ColCity:
		return r.City
	case ColDivision:
		return r.Division
	case ColDepartment:
		return r.Department
	case ColGender:
		return r.Gender
	case ColContract:
		return r.Contract
	case ColJobProperty:
		return r.JobProperty
	case ColAgeBucket:
		return r.AgeBucketAt(ref)
	case ColDepartureReason:
		return r.DepartureReason
	}
	return ""
}

// CategoryFilter narrows the employee view to selected category values.
// Values within one category are alternatives; categories combine
// conjunctively. An empty filter matches every record.
type CategoryFilter struct {
	// Selections maps a category to its allowed values; a category with no
	// selection does not restrict.
	Selections map[string][]string

	// ReferenceDate anchors age-bucket evaluation
	ReferenceDate time.Time
}

// IsEmpty reports whether the filter restricts nothing
func (f CategoryFilter) IsEmpty() bool {
	for _, values := range f.Selections {
		if len(values) > 0 {
			return false
		}
	}
	return true
}

// Match reports whether a record passes every selected category
func (f CategoryFilter) Match(r EmployeeRecord) bool {
	for category, allowed := range f.Selections {
		if len(allowed) == 0 {
			continue
		}
		value := r.CategoryValue(category, f.ReferenceDate)
		found := false
		for _, want := range allowed {
			if value == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
