package app

import (
	"time"

	"esgboard/domain/training"
	"esgboard/internal/metrics"
)

// TrainingService runs the L&D rollup
type TrainingService struct{}

// NewTrainingService creates the training service
func NewTrainingService() *TrainingService {
	return &TrainingService{}
}

// TrainingParams are the user-adjustable inputs of the training page.
// Selecting values for a dimension both filters to those values and adds
// the dimension to the grouping, mirroring how the sidebar filters drive
// the rollup.
type TrainingParams struct {
	// Filters maps a dimension to the selected values; empty means "all"
	Filters map[training.Dimension][]string
	// Cutoff, when set, keeps only records completed strictly before it
	Cutoff *time.Time
}

// TrainingReport is the training page model
type TrainingReport struct {
	GroupBy []training.Dimension
	Groups  []metrics.TrainingGroup
	Totals  metrics.TrainingTotals
	// Filtered is the record count after filters, for the page header
	Filtered int
}

// Aggregate filters the records and computes the grouped rollup plus the
// KPI totals.
func (s *TrainingService) Aggregate(records []training.Record, p TrainingParams) *TrainingReport {
	var groupBy []training.Dimension
	filtered := records
	for _, dim := range training.AllDimensions {
		selected := p.Filters[dim]
		if len(selected) == 0 {
			continue
		}
		groupBy = append(groupBy, dim)
		allowed := make(map[string]bool, len(selected))
		for _, v := range selected {
			allowed[v] = true
		}
		kept := filtered[:0:0]
		for _, rec := range filtered {
			if allowed[rec.DimensionValue(dim)] {
				kept = append(kept, rec)
			}
		}
		filtered = kept
	}

	groups := metrics.AggregateTraining(filtered, groupBy, p.Cutoff)
	return &TrainingReport{
		GroupBy:  groupBy,
		Groups:   groups,
		Totals:   metrics.SummarizeTraining(groups),
		Filtered: len(filtered),
	}
}

// DimensionOptions lists the distinct values of every dimension for the
// filter widgets, sorted by the caller at render time.
func (s *TrainingService) DimensionOptions(records []training.Record) map[training.Dimension][]string {
	options := make(map[training.Dimension][]string, len(training.AllDimensions))
	for _, dim := range training.AllDimensions {
		seen := make(map[string]bool)
		var values []string
		for _, rec := range records {
			v := rec.DimensionValue(dim)
			if v != "" && !seen[v] {
				seen[v] = true
				values = append(values, v)
			}
		}
		options[dim] = values
	}
	return options
}
