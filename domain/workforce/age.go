package workforce

import "time"

// ColAgeBucket is a derived category: it is computed from the birth date at
// a caller-chosen reference date and never resolves from the source file.
const ColAgeBucket = "age_bucket"

// Age bands follow the GRI 405-1 disclosure breakdown.
const (
	AgeBucketUnder30 = "Under 30"
	AgeBucket30To50  = "30-50"
	AgeBucketOver50  = "Over 50"
	AgeBucketUnknown = "Unknown"
)

// AgeBuckets lists the bands in display order
var AgeBuckets = []string{AgeBucketUnder30, AgeBucket30To50, AgeBucketOver50, AgeBucketUnknown}

// AgeAt returns the employee's age in whole years at the reference date,
// counting birthdays. The second return is false when the birth date never
// parsed.
func (r EmployeeRecord) AgeAt(ref time.Time) (int, bool) {
	if r.BirthDate == nil {
		return 0, false
	}
	b := *r.BirthDate
	years := ref.Year() - b.Year()
	if ref.Month() < b.Month() || (ref.Month() == b.Month() && ref.Day() < b.Day()) {
		years--
	}
	return years, true
}

// AgeBucketAt places the employee in an age band at the reference date.
// Records without a parsable birth date land in the Unknown band rather
// than disappearing from bucketed views.
func (r EmployeeRecord) AgeBucketAt(ref time.Time) string {
	age, ok := r.AgeAt(ref)
	if !ok {
		return AgeBucketUnknown
	}
	switch {
	case age < 30:
		return AgeBucketUnder30
	case age <= 50:
		return AgeBucket30To50
	default:
		return AgeBucketOver50
	}
}
