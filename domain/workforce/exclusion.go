package workforce

import "strings"

// ExclusionSet is a set of employee identifiers to drop from a view.
// Two independent sets exist per session: one for active-employee views and
// one for departure counting. They are never conflated.
type ExclusionSet map[string]struct{}

// ParseExclusionSet parses free-text comma-separated identifiers, trimming
// whitespace around each. Empty fragments are ignored.
func ParseExclusionSet(text string) ExclusionSet {
	set := make(ExclusionSet)
	for _, part := range strings.Split(text, ",") {
		id := strings.TrimSpace(part)
		if id != "" {
			set[id] = struct{}{}
		}
	}
	return set
}

// Contains tests membership of a trimmed identifier
func (s ExclusionSet) Contains(id string) bool {
	_, ok := s[strings.TrimSpace(id)]
	return ok
}

// IsEmpty reports whether the set has no members
func (s ExclusionSet) IsEmpty() bool {
	return len(s) == 0
}
