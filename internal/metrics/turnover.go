package metrics

import (
	"strings"

	"esgboard/domain/workforce"
)

// TotalLabel names the synthetic summary row of the turnover table
const TotalLabel = "TOTAL"

// TurnoverRow holds the turnover metrics for one company and year.
// Rates carry full precision; rounding happens at display time.
type TurnoverRow struct {
	Company          string
	StartHeadcount   int
	EndHeadcount     int
	AverageHeadcount float64

	VoluntaryExits   int
	InvoluntaryExits int
	RetirementExits  int

	VoluntaryRate   float64
	InvoluntaryRate float64
	RetirementRate  float64
	TotalRate       float64
}

// Turnover computes per-company turnover for a reporting year plus a
// synthetic TOTAL row. Boundary headcounts use the point-in-time predicate
// at Dec 31 of year-1 and Dec 31 of year; average headcount is the mean of
// the two. Exits are departures dated inside the calendar year whose reason
// matches the category, counted after dropping the departure-view exclusion
// set.
//
// Reason matching is asymmetric on purpose: voluntary exits require the
// exact label VOLUNTARY DEPARTURE (case-sensitive), while involuntary and
// retirement exits match case-insensitive substrings. The asymmetry comes
// from the source categorization and is kept as two separately tested
// rules; flag it to product owners before unifying.
func Turnover(t *workforce.Table, year int, departureExclusions workforce.ExclusionSet) ([]TurnoverRow, error) {
	err := requireColumns(t,
		workforce.ColCompany,
		workforce.ColHireDate,
		workforce.ColDepartureDate,
		workforce.ColDepartureReason,
	)
	if err != nil {
		return nil, err
	}

	boundaries, err := PeriodHeadcounts(t, year)
	if err != nil {
		return nil, err
	}

	var rows []TurnoverRow
	for _, b := range boundaries {
		row := TurnoverRow{
			Company:        b.Company,
			StartHeadcount: b.StartHeadcount,
			EndHeadcount:   b.EndHeadcount,
		}

		for _, rec := range t.Records {
			if rec.Company != b.Company {
				continue
			}
			if departureExclusions.Contains(rec.ID) {
				continue
			}
			if rec.DepartureYear == nil || *rec.DepartureYear != year {
				continue
			}
			switch classifyDeparture(rec.DepartureReason) {
			case departureVoluntary:
				row.VoluntaryExits++
			case departureInvoluntary:
				row.InvoluntaryExits++
			case departureRetirement:
				row.RetirementExits++
			}
		}

		row.AverageHeadcount = float64(row.StartHeadcount+row.EndHeadcount) / 2
		row.VoluntaryRate = exitRate(row.VoluntaryExits, row.AverageHeadcount)
		row.InvoluntaryRate = exitRate(row.InvoluntaryExits, row.AverageHeadcount)
		row.RetirementRate = exitRate(row.RetirementExits, row.AverageHeadcount)
		row.TotalRate = row.VoluntaryRate + row.InvoluntaryRate + row.RetirementRate

		rows = append(rows, row)
	}

	rows = append(rows, totalRow(rows))
	return rows, nil
}

// totalRow sums counts across groups and recomputes the rates from the
// summed counts. It is not an average of per-group rates.
func totalRow(rows []TurnoverRow) TurnoverRow {
	total := TurnoverRow{Company: TotalLabel}
	for _, r := range rows {
		total.StartHeadcount += r.StartHeadcount
		total.EndHeadcount += r.EndHeadcount
		total.AverageHeadcount += r.AverageHeadcount
		total.VoluntaryExits += r.VoluntaryExits
		total.InvoluntaryExits += r.InvoluntaryExits
		total.RetirementExits += r.RetirementExits
	}
	total.VoluntaryRate = exitRate(total.VoluntaryExits, total.AverageHeadcount)
	total.InvoluntaryRate = exitRate(total.InvoluntaryExits, total.AverageHeadcount)
	total.RetirementRate = exitRate(total.RetirementExits, total.AverageHeadcount)
	total.TotalRate = exitRate(
		total.VoluntaryExits+total.InvoluntaryExits+total.RetirementExits,
		total.AverageHeadcount,
	)
	return total
}

// exitRate is exits over average headcount as a percentage, 0 when the
// average is 0. The zero fallback is specific to turnover; gap and ratio
// metrics report insufficient data instead.
func exitRate(exits int, average float64) float64 {
	if average <= 0 {
		return 0
	}
	return float64(exits) / average * 100
}

type departureCategory int

const (
	departureOther departureCategory = iota
	departureVoluntary
	departureInvoluntary
	departureRetirement
)

func classifyDeparture(reason string) departureCategory {
	// Exact, case-sensitive match for voluntary.
	if reason == workforce.VoluntaryDepartureLabel {
		return departureVoluntary
	}
	lower := strings.ToLower(reason)
	if strings.Contains(lower, "involuntary") {
		return departureInvoluntary
	}
	if strings.Contains(lower, "retirement") {
		return departureRetirement
	}
	return departureOther
}
