package metrics

import (
	"sort"
	"strings"
	"time"

	"esgboard/domain/training"
)

// TrainingGroup is one row of the training rollup
type TrainingGroup struct {
	// Keys holds the group's value per dimension, aligned with the
	// dimensions passed to AggregateTraining.
	Keys []string

	DurationSum float64
	CostSum     float64
	// Trainees is the count of distinct non-empty trainee identifiers
	Trainees int

	CostPerTrainee     float64
	DurationPerTrainee float64
}

// TrainingTotals are the KPI cards above the rollup table. Trainees is the
// sum of per-group distinct counts, so a trainee appearing in two groups
// counts twice; that is how the source KPIs behave.
type TrainingTotals struct {
	DurationSum        float64
	CostSum            float64
	Trainees           int
	CostPerTrainee     float64
	DurationPerTrainee float64
}

// AggregateTraining groups training records by the requested dimensions and
// sums duration and cost, counting distinct trainees per group. Records
// with nil duration or cost still belong to their group and count toward
// trainees; only the nil figure is excluded from its sum. With no
// dimensions the whole dataset collapses into a single group.
//
// When cutoff is non-nil, only records whose completion date is strictly
// before the cutoff participate; records without a completion date drop out.
func AggregateTraining(records []training.Record, dims []training.Dimension, cutoff *time.Time) []TrainingGroup {
	type bucket struct {
		keys     []string
		group    TrainingGroup
		trainees map[string]bool
	}
	buckets := make(map[string]*bucket)

	for _, rec := range records {
		if cutoff != nil {
			if rec.CompletionDate == nil || !rec.CompletionDate.Before(*cutoff) {
				continue
			}
		}
		keys := make([]string, len(dims))
		for i, d := range dims {
			keys[i] = rec.DimensionValue(d)
		}
		id := strings.Join(keys, "\x1f")
		b, ok := buckets[id]
		if !ok {
			b = &bucket{keys: keys, trainees: make(map[string]bool)}
			buckets[id] = b
		}
		if rec.DurationHours != nil {
			b.group.DurationSum += *rec.DurationHours
		}
		if rec.Cost != nil {
			b.group.CostSum += *rec.Cost
		}
		if rec.TraineeID != "" {
			b.trainees[rec.TraineeID] = true
		}
	}

	ids := make([]string, 0, len(buckets))
	for id := range buckets {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	groups := make([]TrainingGroup, 0, len(buckets))
	for _, id := range ids {
		b := buckets[id]
		g := b.group
		g.Keys = b.keys
		g.Trainees = len(b.trainees)
		if g.Trainees > 0 {
			g.CostPerTrainee = g.CostSum / float64(g.Trainees)
			g.DurationPerTrainee = g.DurationSum / float64(g.Trainees)
		}
		groups = append(groups, g)
	}
	return groups
}

// SummarizeTraining folds grouped rows into the page-level totals
func SummarizeTraining(groups []TrainingGroup) TrainingTotals {
	var totals TrainingTotals
	for _, g := range groups {
		totals.DurationSum += g.DurationSum
		totals.CostSum += g.CostSum
		totals.Trainees += g.Trainees
	}
	if totals.Trainees > 0 {
		totals.CostPerTrainee = totals.CostSum / float64(totals.Trainees)
		totals.DurationPerTrainee = totals.DurationSum / float64(totals.Trainees)
	}
	return totals
}
