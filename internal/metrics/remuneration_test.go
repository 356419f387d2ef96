package metrics

import (
	"testing"

	"esgboard/domain/core"
	"esgboard/domain/workforce"
)

func grossEmployee(id, company string, gross float64) workforce.EmployeeRecord {
	return workforce.EmployeeRecord{
		ID: id, Company: company,
		HireDate:    date(2020, 1, 1),
		GrossAnnual: &gross,
	}
}

// TestOverallRemunerationRatio checks max over median-of-the-rest on a
// hand-computed case: [10, 20, 30, 1000] gives 1000 / 20 = 50.
func TestOverallRemunerationRatio(t *testing.T) {
	table := employeeTable(
		grossEmployee("1", "ACME", 10),
		grossEmployee("2", "ACME", 20),
		grossEmployee("3", "ACME", 30),
		grossEmployee("4", "ACME", 1000),
	)

	ratio, err := OverallRemunerationRatio(table, 2024, workforce.ExchangeRateTable{})
	if err != nil {
		t.Fatal(err)
	}
	if !almostEqual(ratio, 50) {
		t.Errorf("ratio = %v, want 50", ratio)
	}
}

// TestRemunerationRatio_DropsSingleMaxInstance verifies only one instance
// of a tied maximum is removed before taking the median.
func TestRemunerationRatio_DropsSingleMaxInstance(t *testing.T) {
	table := employeeTable(
		grossEmployee("1", "ACME", 100),
		grossEmployee("2", "ACME", 100),
		grossEmployee("3", "ACME", 50),
	)

	ratio, err := OverallRemunerationRatio(table, 2024, workforce.ExchangeRateTable{})
	if err != nil {
		t.Fatal(err)
	}
	// Rest is [100, 50], median 75, ratio 100/75.
	if !almostEqual(ratio, 100.0/75.0) {
		t.Errorf("ratio = %v, want %v", ratio, 100.0/75.0)
	}
}

// TestRemunerationRatio_FullYearPopulation verifies mid-year hires and
// mid-year departures are out of the population.
func TestRemunerationRatio_FullYearPopulation(t *testing.T) {
	midYearHire := grossEmployee("3", "ACME", 999999)
	midYearHire.HireDate = date(2024, 6, 1)
	midYearExit := grossEmployee("4", "ACME", 888888)
	midYearExit.DepartureDate = date(2024, 6, 30)

	table := employeeTable(
		grossEmployee("1", "ACME", 100),
		grossEmployee("2", "ACME", 50),
		midYearHire,
		midYearExit,
	)

	ratio, err := OverallRemunerationRatio(table, 2024, workforce.ExchangeRateTable{})
	if err != nil {
		t.Fatal(err)
	}
	if !almostEqual(ratio, 2) {
		t.Errorf("ratio = %v, want 2 from the full-year population only", ratio)
	}
}

// TestRemunerationRatio_ConvertsCurrency verifies rates apply before the
// max and median are taken.
func TestRemunerationRatio_ConvertsCurrency(t *testing.T) {
	table := employeeTable(
		grossEmployee("1", "LOCAL", 100),
		grossEmployee("2", "LOCAL", 100),
		grossEmployee("3", "FOREIGN", 10000),
	)
	rates := workforce.ExchangeRateTable{"FOREIGN": 0.05}

	// FOREIGN converts to 500; rest [100, 100], median 100, ratio 5.
	ratio, err := OverallRemunerationRatio(table, 2024, rates)
	if err != nil {
		t.Fatal(err)
	}
	if !almostEqual(ratio, 5) {
		t.Errorf("ratio = %v, want 5", ratio)
	}
}

func TestOverallRemunerationRatio_InsufficientData(t *testing.T) {
	table := employeeTable(grossEmployee("1", "ACME", 100))

	_, err := OverallRemunerationRatio(table, 2024, workforce.ExchangeRateTable{})
	if !core.IsInsufficientData(err) {
		t.Fatalf("expected insufficient-data error, got %v", err)
	}
}

func TestRemunerationRatioByCompany(t *testing.T) {
	table := employeeTable(
		grossEmployee("1", "ALPHA", 10),
		grossEmployee("2", "ALPHA", 20),
		grossEmployee("3", "ALPHA", 100),
		grossEmployee("4", "BETA", 50),
	)

	ratios, err := RemunerationRatioByCompany(table, 2024, workforce.ExchangeRateTable{})
	if err != nil {
		t.Fatal(err)
	}
	byCompany := make(map[string]*float64)
	for _, r := range ratios {
		byCompany[r.Company] = r.Ratio
	}
	// ALPHA: max 100, rest [10, 20], median 15.
	if byCompany["ALPHA"] == nil || !almostEqual(*byCompany["ALPHA"], 100.0/15.0) {
		t.Errorf("ALPHA ratio = %v, want %v", byCompany["ALPHA"], 100.0/15.0)
	}
	// BETA has a single value; ratio must be nil, not zero.
	if byCompany["BETA"] != nil {
		t.Errorf("BETA ratio = %v, want nil", *byCompany["BETA"])
	}
}

// TestMedianSalaryByCompany verifies the top earner drops per company and
// output sorts descending by the converted median.
func TestMedianSalaryByCompany(t *testing.T) {
	departed := grossEmployee("5", "ALPHA", 70)
	departed.DepartureDate = date(2024, 3, 1)

	table := employeeTable(
		grossEmployee("1", "ALPHA", 10),
		grossEmployee("2", "ALPHA", 20),
		grossEmployee("3", "ALPHA", 30),
		departed, // departed within the year, out of the population
		grossEmployee("4", "BETA", 40),
		grossEmployee("6", "BETA", 400),
	)

	rows, err := MedianSalaryByCompany(table, 2024, workforce.ExchangeRateTable{})
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	// ALPHA keeps [10, 20, 30], drops 30, median 15.
	// BETA keeps [40, 400], drops 400, median 40.
	if rows[0].Company != "BETA" || !almostEqual(rows[0].Median, 40) {
		t.Errorf("first row = %+v, want BETA at 40", rows[0])
	}
	if rows[1].Company != "ALPHA" || !almostEqual(rows[1].Median, 15) {
		t.Errorf("second row = %+v, want ALPHA at 15", rows[1])
	}
}
