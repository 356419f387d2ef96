package metrics

import (
	"testing"

	"esgboard/domain/workforce"
)

// TestMonthlyHeadcount verifies month bucketing over a one-year range with
// company grouping.
func TestMonthlyHeadcount(t *testing.T) {
	perm := workforce.EmployeeRecord{
		ID: "1", Company: "ACME",
		HireDate: date(2023, 1, 1),
	}
	// Hired mid-March, departed mid-September.
	seasonal := workforce.EmployeeRecord{
		ID: "2", Company: "ACME",
		HireDate:      date(2024, 3, 15),
		DepartureDate: date(2024, 9, 15),
	}

	matrix, err := MonthlyHeadcount(employeeTable(perm, seasonal), 2024, 2024, []string{workforce.ColCompany})
	if err != nil {
		t.Fatal(err)
	}

	if len(matrix.Months) != 12 {
		t.Fatalf("expected 12 months, got %d", len(matrix.Months))
	}
	if matrix.Months[0] != "2024-01" || matrix.Months[11] != "2024-12" {
		t.Errorf("month keys = %v", matrix.Months)
	}
	if len(matrix.Rows) != 1 {
		t.Fatalf("expected one ACME row, got %d", len(matrix.Rows))
	}

	counts := matrix.Rows[0].Counts
	// Jan-Feb only the permanent employee; Mar-Aug both; the September
	// departure removes the seasonal hire from September onward.
	want := []int{1, 1, 2, 2, 2, 2, 2, 2, 1, 1, 1, 1}
	for i, w := range want {
		if counts[i] != w {
			t.Errorf("month %s count = %d, want %d", matrix.Months[i], counts[i], w)
		}
	}
}

// TestMonthlyHeadcount_BlankGroupLabel verifies empty division cells group
// under the Blank label instead of vanishing.
func TestMonthlyHeadcount_BlankGroupLabel(t *testing.T) {
	withDivision := workforce.EmployeeRecord{ID: "1", Company: "ACME", Division: "Sales", HireDate: date(2020, 1, 1)}
	noDivision := workforce.EmployeeRecord{ID: "2", Company: "ACME", HireDate: date(2020, 1, 1)}

	table := employeeTable(withDivision, noDivision)
	table.Resolved[workforce.ColDivision] = true

	matrix, err := MonthlyHeadcount(table, 2024, 2024, []string{workforce.ColDivision})
	if err != nil {
		t.Fatal(err)
	}
	if len(matrix.Rows) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(matrix.Rows))
	}
	// Lexicographic row order puts Blank first.
	if matrix.Rows[0].Keys[0] != "Blank" {
		t.Errorf("first group = %q, want Blank", matrix.Rows[0].Keys[0])
	}
}

func TestMonthlyHeadcount_MissingDimensionFails(t *testing.T) {
	table := employeeTable(workforce.EmployeeRecord{ID: "1", HireDate: date(2020, 1, 1)})
	delete(table.Resolved, workforce.ColDivision)

	if _, err := MonthlyHeadcount(table, 2024, 2024, []string{workforce.ColDivision}); err == nil {
		t.Fatal("expected a missing-column error for an unresolved dimension")
	}
}

func TestUnpivot(t *testing.T) {
	matrix := &HeadcountMatrix{
		Dimensions: []string{workforce.ColCompany},
		Months:     []string{"2024-01", "2024-02"},
		Rows: []HeadcountRow{
			{Keys: []string{"ACME"}, Counts: []int{3, 4}},
		},
	}

	long := matrix.Unpivot()
	if len(long) != 2 {
		t.Fatalf("expected 2 long rows, got %d", len(long))
	}
	if long[1].Month != "2024-02" || long[1].Headcount != 4 {
		t.Errorf("long row = %+v", long[1])
	}
}

func TestPeriodHeadcounts(t *testing.T) {
	records := []workforce.EmployeeRecord{
		{ID: "1", Company: "ACME", HireDate: date(2020, 1, 1)},
		{ID: "2", Company: "ACME", HireDate: date(2024, 5, 1)},
		{ID: "3", Company: "ACME", HireDate: date(2020, 1, 1), DepartureDate: date(2024, 6, 1)},
	}

	rows, err := PeriodHeadcounts(employeeTable(records...), 2024)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 company, got %d", len(rows))
	}
	// Dec 31 2023: employees 1 and 3. Dec 31 2024: employees 1 and 2.
	if rows[0].StartHeadcount != 2 || rows[0].EndHeadcount != 2 {
		t.Errorf("boundaries = %d/%d, want 2/2", rows[0].StartHeadcount, rows[0].EndHeadcount)
	}
}
