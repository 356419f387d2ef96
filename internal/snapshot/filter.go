// Package snapshot computes active-employee subsets for reporting periods.
// All functions are pure: they return fresh slices and never mutate or
// reorder the input. No ordering guarantee is made; consumers that need
// determinism sort explicitly on a key of their choosing.
package snapshot

import (
	"time"

	"esgboard/domain/workforce"
)

// ActiveInWindow returns the records active during the window: hired on or
// before the window end and not departed before the window start.
func ActiveInWindow(records []workforce.EmployeeRecord, w workforce.PeriodWindow) []workforce.EmployeeRecord {
	out := make([]workforce.EmployeeRecord, 0, len(records))
	for _, r := range records {
		if r.ActiveInWindow(w) {
			out = append(out, r)
		}
	}
	return out
}

// ActiveAtBoundary returns the records active at a single point in time:
// hired on or before the boundary with departure, if any, strictly after
// it. This is the stricter test used for start/end-of-period headcounts.
func ActiveAtBoundary(records []workforce.EmployeeRecord, boundary time.Time) []workforce.EmployeeRecord {
	out := make([]workforce.EmployeeRecord, 0, len(records))
	for _, r := range records {
		if r.ActiveAtBoundary(boundary) {
			out = append(out, r)
		}
	}
	return out
}

// ApplyExclusion drops every record whose trimmed identifier is in the set
func ApplyExclusion(records []workforce.EmployeeRecord, set workforce.ExclusionSet) []workforce.EmployeeRecord {
	if set.IsEmpty() {
		out := make([]workforce.EmployeeRecord, len(records))
		copy(out, records)
		return out
	}
	out := make([]workforce.EmployeeRecord, 0, len(records))
	for _, r := range records {
		if !set.Contains(r.ID) {
			out = append(out, r)
		}
	}
	return out
}

// Where returns the records matching a caller-supplied predicate. Category
// filters (company, city, contract type, ...) are expressed through it.
func Where(records []workforce.EmployeeRecord, keep func(workforce.EmployeeRecord) bool) []workforce.EmployeeRecord {
	out := make([]workforce.EmployeeRecord, 0, len(records))
	for _, r := range records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}
