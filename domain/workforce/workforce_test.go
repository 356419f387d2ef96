package workforce

import (
	"testing"
	"time"
)

func TestParseExclusionSet(t *testing.T) {
	set := ParseExclusionSet(" 100, 200 ,,300 ")

	if len(set) != 3 {
		t.Fatalf("expected 3 identifiers, got %d", len(set))
	}
	for _, id := range []string{"100", "200", "300"} {
		if !set.Contains(id) {
			t.Errorf("set should contain %q", id)
		}
	}
	if set.Contains("400") {
		t.Error("set should not contain 400")
	}
	// Membership tests trim the probe too.
	if !set.Contains(" 100 ") {
		t.Error("membership should trim the identifier")
	}
}

func TestParseExclusionSet_Empty(t *testing.T) {
	if !ParseExclusionSet("").IsEmpty() {
		t.Error("empty text should parse to an empty set")
	}
	if !ParseExclusionSet(" , , ").IsEmpty() {
		t.Error("only separators should parse to an empty set")
	}
}

func TestExchangeRateTable_DefaultsToOne(t *testing.T) {
	rates := DefaultExchangeRates()

	if got := rates.Rate("ALUMIL ROM INDUSTRY SA"); got != 0.2010 {
		t.Errorf("known company rate = %v, want 0.2010", got)
	}
	if got := rates.Rate("UNKNOWN COMPANY"); got != 1.0 {
		t.Errorf("unknown company rate = %v, want 1.0", got)
	}
}

func TestExchangeRateTable_WithOverride(t *testing.T) {
	base := DefaultExchangeRates()
	modified := base.WithOverride("ALUMIL ROM INDUSTRY SA", 0.25)

	if got := modified.Rate("ALUMIL ROM INDUSTRY SA"); got != 0.25 {
		t.Errorf("override = %v, want 0.25", got)
	}
	if got := base.Rate("ALUMIL ROM INDUSTRY SA"); got != 0.2010 {
		t.Errorf("original mutated: %v", got)
	}
}

func TestMonthsBetween(t *testing.T) {
	months := MonthsBetween(2024, 2025)
	if len(months) != 24 {
		t.Fatalf("expected 24 months, got %d", len(months))
	}
	if MonthKey(months[0]) != "2024-01" {
		t.Errorf("first month = %s", MonthKey(months[0]))
	}
	if MonthKey(months[23]) != "2025-12" {
		t.Errorf("last month = %s", MonthKey(months[23]))
	}
}

func TestCalendarYear(t *testing.T) {
	w := CalendarYear(2024)
	if !w.Start.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("start = %v", w.Start)
	}
	if !w.End.Equal(time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("end = %v", w.End)
	}
}

func birthday(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestAgeAt(t *testing.T) {
	ref := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		birth *time.Time
		want  int
		known bool
	}{
		{"birthday already passed", birthday(1990, time.March, 1), 34, true},
		{"birthday later this year", birthday(1990, time.October, 1), 33, true},
		{"birthday today", birthday(1990, time.June, 15), 34, true},
		{"birthday tomorrow", birthday(1990, time.June, 16), 33, true},
		{"unknown birth date", nil, 0, false},
	}
	for _, tc := range cases {
		rec := EmployeeRecord{BirthDate: tc.birth}
		got, ok := rec.AgeAt(ref)
		if ok != tc.known {
			t.Errorf("%s: known = %v, want %v", tc.name, ok, tc.known)
			continue
		}
		if ok && got != tc.want {
			t.Errorf("%s: age = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestAgeBucketAt(t *testing.T) {
	ref := time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		birth *time.Time
		want  string
	}{
		{birthday(1995, time.January, 1), AgeBucketUnder30},
		{birthday(1994, time.December, 31), AgeBucket30To50}, // turns 30 on the reference date
		{birthday(1974, time.December, 31), AgeBucket30To50}, // exactly 50
		{birthday(1973, time.December, 31), AgeBucketOver50},
		{nil, AgeBucketUnknown},
	}
	for _, tc := range cases {
		rec := EmployeeRecord{BirthDate: tc.birth}
		if got := rec.AgeBucketAt(ref); got != tc.want {
			t.Errorf("birth %v: bucket = %q, want %q", tc.birth, got, tc.want)
		}
	}
}

func TestCategoryFilter_Match(t *testing.T) {
	ref := time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)
	rec := EmployeeRecord{
		Company:   "ACME",
		City:      "THESSALONIKI",
		Gender:    GenderFemale,
		BirthDate: birthday(1998, time.April, 2),
	}

	empty := CategoryFilter{ReferenceDate: ref}
	if !empty.IsEmpty() || !empty.Match(rec) {
		t.Fatal("an empty filter should match every record")
	}

	// Values within one category are alternatives.
	either := CategoryFilter{
		Selections:    map[string][]string{ColCompany: {"ACME", "BETA"}},
		ReferenceDate: ref,
	}
	if !either.Match(rec) {
		t.Error("record should match one of the allowed companies")
	}

	// Categories combine conjunctively.
	conj := CategoryFilter{
		Selections: map[string][]string{
			ColCompany: {"ACME"},
			ColGender:  {GenderMale},
		},
		ReferenceDate: ref,
	}
	if conj.Match(rec) {
		t.Error("record should fail when any selected category mismatches")
	}

	// Age bucket is derived at the reference date.
	young := CategoryFilter{
		Selections:    map[string][]string{ColAgeBucket: {AgeBucketUnder30}},
		ReferenceDate: ref,
	}
	if !young.Match(rec) {
		t.Error("26-year-old should match the Under 30 band")
	}
	later := CategoryFilter{
		Selections:    map[string][]string{ColAgeBucket: {AgeBucketUnder30}},
		ReferenceDate: time.Date(2030, time.December, 31, 0, 0, 0, 0, time.UTC),
	}
	if later.Match(rec) {
		t.Error("same record should leave the band at a later reference date")
	}
}
