package app

import (
	"log"

	"esgboard/domain/workforce"
	"esgboard/internal/metrics"
	"esgboard/internal/snapshot"
)

// ReportService runs the aggregation engine for the dashboard pages. Every
// metric is computed independently and its failure captured next to its
// result, so one broken view (a missing column, not enough data) leaves
// the rest of the page usable.
type ReportService struct{}

// NewReportService creates the report service
func NewReportService() *ReportService {
	return &ReportService{}
}

// CompBenParams are the user-adjustable inputs of the Comp&Ben page
type CompBenParams struct {
	// Year drives turnover, pay gap, remuneration, and top-decile views
	Year int
	// StartYear/EndYear bound the monthly headcount matrix
	StartYear int
	EndYear   int
	// GroupBy lists canonical dimensions for the headcount matrix
	GroupBy []string

	ActiveExclusions    workforce.ExclusionSet
	DepartureExclusions workforce.ExclusionSet
	Rates               workforce.ExchangeRateTable

	// Filters narrows every view to the selected category values; its
	// reference date anchors age bucketing.
	Filters workforce.CategoryFilter
}

// CompBenReport is the full page model. Each metric carries its own error;
// a nil error means the value is valid.
type CompBenReport struct {
	Year int

	Headcount    *metrics.HeadcountMatrix
	HeadcountErr error

	Turnover    []metrics.TurnoverRow
	TurnoverErr error

	OverallGap    float64
	OverallGapErr error

	CompanyGaps    []metrics.CompanyPayGap
	CompanyGapsErr error

	OverallRatio    float64
	OverallRatioErr error

	CompanyRatios    []metrics.CompanyRemunerationRatio
	CompanyRatiosErr error

	TopEarners    []metrics.TopEarner
	TopEarnersErr error

	MedianSalaries    []metrics.MedianSalaryRow
	MedianSalariesErr error
}

// visibleTable applies the active-employee exclusion set and the category
// filters up front, so every view aggregates the same population.
func visibleTable(t *workforce.Table, p CompBenParams) *workforce.Table {
	records := snapshot.ApplyExclusion(t.Records, p.ActiveExclusions)
	if !p.Filters.IsEmpty() {
		records = snapshot.Where(records, p.Filters.Match)
	}
	return &workforce.Table{Records: records, Resolved: t.Resolved}
}

// CompBen computes the Comp&Ben page from an already-normalized table.
// The active-employee exclusion set and category filters are applied up
// front to every view; the departures set applies only inside exit
// counting.
func (s *ReportService) CompBen(t *workforce.Table, p CompBenParams) *CompBenReport {
	visible := visibleTable(t, p)

	report := &CompBenReport{Year: p.Year}

	report.Headcount, report.HeadcountErr = metrics.MonthlyHeadcount(visible, p.StartYear, p.EndYear, p.GroupBy)
	report.Turnover, report.TurnoverErr = metrics.Turnover(visible, p.Year, p.DepartureExclusions)
	report.OverallGap, report.OverallGapErr = metrics.OverallGenderPayGap(visible, p.Year)
	report.CompanyGaps, report.CompanyGapsErr = metrics.GenderPayGapByCompany(visible, p.Year)
	report.OverallRatio, report.OverallRatioErr = metrics.OverallRemunerationRatio(visible, p.Year, p.Rates)
	report.CompanyRatios, report.CompanyRatiosErr = metrics.RemunerationRatioByCompany(visible, p.Year, p.Rates)
	report.TopEarners, report.TopEarnersErr = metrics.TopDecileByCompany(visible, p.Year)
	report.MedianSalaries, report.MedianSalariesErr = metrics.MedianSalaryByCompany(visible, p.Year, p.Rates)

	for _, err := range []error{
		report.HeadcountErr, report.TurnoverErr, report.OverallGapErr,
		report.CompanyGapsErr, report.OverallRatioErr, report.CompanyRatiosErr,
		report.TopEarnersErr, report.MedianSalariesErr,
	} {
		if err != nil {
			log.Printf("[Reports] metric unavailable: %v", err)
		}
	}
	return report
}

// HeadcountForExport recomputes the matrix for the long-format export with
// the same exclusion and filter semantics as the page.
func (s *ReportService) HeadcountForExport(t *workforce.Table, p CompBenParams) (*metrics.HeadcountMatrix, error) {
	return metrics.MonthlyHeadcount(visibleTable(t, p), p.StartYear, p.EndYear, p.GroupBy)
}
