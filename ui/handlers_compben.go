package ui

import (
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"esgboard/app"
	"esgboard/domain/workforce"
	"esgboard/internal/session"
)

// groupOption is one selectable headcount dimension
type groupOption struct {
	Canonical string
	Label     string
	Selected  bool
}

// categoryOption is one filterable dimension with its distinct values
type categoryOption struct {
	Canonical string
	Label     string
	Options   []string
	Selected  map[string]bool
}

// rateRow is one editable exchange-rate entry
type rateRow struct {
	Company string
	Rate    float64
}

func (a *App) handleCompBen(w http.ResponseWriter, r *http.Request) {
	state := a.sessions.GetOrCreate(sessionKey(r))

	data := map[string]interface{}{
		"Title":     "Comp & Ben",
		"Flash":     flash(r),
		"HasData":   state.CompBen != nil,
		"Sensitive": true,
	}
	if state.CompBen == nil {
		a.render(w, "compben.html", data)
		return
	}

	params := a.compBenParams(r, state)
	report := a.reports.CompBen(state.CompBen, params)

	data["Report"] = report
	data["Params"] = params
	data["Records"] = len(state.CompBen.Records)
	data["Fingerprint"] = state.CompBenFingerprint.String()[:12]
	data["Years"] = a.yearOptions()
	data["GroupOptions"] = groupOptions(params.GroupBy)
	data["Rates"] = rateRows(state.Rates)
	data["ActiveExclusions"] = state.ActiveExclusionText
	data["DepartureExclusions"] = state.DepartureExclusionText
	data["Filters"] = categoryOptions(state.CompBen, params.Filters)
	data["RefDate"] = params.Filters.ReferenceDate.Format("2006-01-02")
	data["ExportQuery"] = exportQuery(params)
	a.render(w, "compben.html", data)
}

func (a *App) handleCompBenUpload(w http.ResponseWriter, r *http.Request) {
	filename, payload, err := a.readUpload(r, "file")
	if err != nil {
		a.failPage(w, r, "/compben", err)
		return
	}
	table, fp, err := a.pipeline.LoadEmployees(filename, payload)
	if err != nil {
		a.failPage(w, r, "/compben", err)
		return
	}
	a.sessions.Update(sessionKey(r), func(s *session.State) {
		s.CompBen = table
		s.CompBenFingerprint = fp
	})
	http.Redirect(w, r, "/compben", http.StatusSeeOther)
}

// handleCompBenSettings updates the session's exclusion lists and exchange
// rates. Parameter changes re-run aggregation on the next page load; they
// never re-run normalization.
func (a *App) handleCompBenSettings(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		a.failPage(w, r, "/compben", err)
		return
	}
	a.sessions.Update(sessionKey(r), func(s *session.State) {
		s.ActiveExclusionText = r.PostFormValue("active_exclusions")
		s.DepartureExclusionText = r.PostFormValue("departure_exclusions")
		for key, values := range r.PostForm {
			company, ok := strings.CutPrefix(key, "rate_")
			if !ok || len(values) == 0 {
				continue
			}
			rate, err := strconv.ParseFloat(strings.ReplaceAll(values[0], ",", "."), 64)
			if err != nil || rate <= 0 {
				continue
			}
			s.Rates = s.Rates.WithOverride(company, rate)
		}
	})
	http.Redirect(w, r, "/compben", http.StatusSeeOther)
}

func (a *App) yearOptions() []int {
	var years []int
	for y := a.cfg.Report.MinYear; y <= a.cfg.Report.MaxYear; y++ {
		years = append(years, y)
	}
	return years
}

func groupOptions(selected []string) []groupOption {
	chosen := make(map[string]bool, len(selected))
	for _, s := range selected {
		chosen[s] = true
	}
	return []groupOption{
		{Canonical: workforce.ColCompany, Label: "Company", Selected: chosen[workforce.ColCompany]},
		{Canonical: workforce.ColDivision, Label: "Division", Selected: chosen[workforce.ColDivision]},
		{Canonical: workforce.ColDepartment, Label: "Department", Selected: chosen[workforce.ColDepartment]},
	}
}

// dimensionLabels names the filter dimensions on the page
var dimensionLabels = map[string]string{
	workforce.ColCompany:         "Company",
	workforce.ColCity:            "City",
	workforce.ColDivision:        "Division",
	workforce.ColDepartment:      "Department",
	workforce.ColGender:          "Gender",
	workforce.ColContract:        "Contract type",
	workforce.ColJobProperty:     "Job property",
	workforce.ColAgeBucket:       "Age bucket",
	workforce.ColDepartureReason: "Departure reason",
}

// categoryOptions builds the filter controls: one entry per filterable
// dimension present in the upload, with the distinct values observed in the
// table. Age buckets are a fixed band list and appear only when the birth
// date column resolved.
func categoryOptions(t *workforce.Table, f workforce.CategoryFilter) []categoryOption {
	var out []categoryOption
	for _, dim := range workforce.FilterDimensions {
		var options []string
		if dim == workforce.ColAgeBucket {
			if !t.HasColumn(workforce.ColBirthDate) {
				continue
			}
			options = workforce.AgeBuckets
		} else {
			if !t.HasColumn(dim) {
				continue
			}
			seen := make(map[string]bool)
			for _, rec := range t.Records {
				v := rec.CategoryValue(dim, f.ReferenceDate)
				if v != "" && !seen[v] {
					seen[v] = true
					options = append(options, v)
				}
			}
			sort.Strings(options)
		}

		selected := make(map[string]bool, len(f.Selections[dim]))
		for _, v := range f.Selections[dim] {
			selected[v] = true
		}
		out = append(out, categoryOption{
			Canonical: dim,
			Label:     dimensionLabels[dim],
			Options:   options,
			Selected:  selected,
		})
	}
	return out
}

// exportQuery carries the page's full parameter set onto the long-format
// download link, so the export matches what is on screen.
func exportQuery(p app.CompBenParams) string {
	q := url.Values{}
	q.Set("year", strconv.Itoa(p.Year))
	q.Set("start_year", strconv.Itoa(p.StartYear))
	q.Set("end_year", strconv.Itoa(p.EndYear))
	for _, g := range p.GroupBy {
		q.Add("group", g)
	}
	q.Set("ref_date", p.Filters.ReferenceDate.Format("2006-01-02"))
	for dim, values := range p.Filters.Selections {
		for _, v := range values {
			q.Add(filterParamPrefix+dim, v)
		}
	}
	return q.Encode()
}

func rateRows(rates workforce.ExchangeRateTable) []rateRow {
	rows := make([]rateRow, 0, len(rates))
	for company, rate := range rates {
		rows = append(rows, rateRow{Company: company, Rate: rate})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Company < rows[j].Company })
	return rows
}
