package ui

import (
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"esgboard/app"
	"esgboard/domain/training"
	"esgboard/domain/workforce"
	apperrors "esgboard/internal/errors"
	"esgboard/internal/normalize"
	"esgboard/internal/session"
)

// compBenParams builds the report parameters from query values plus the
// session's exclusion lists and exchange rates. Years clamp to the
// configured bounds; the age-bucketing reference date defaults to Dec 31
// of the reporting year.
func (a *App) compBenParams(r *http.Request, state *session.State) app.CompBenParams {
	q := r.URL.Query()
	report := a.cfg.Report

	year := report.ClampYear(intParam(q.Get("year"), report.DefaultYear))
	startYear := report.ClampYear(intParam(q.Get("start_year"), report.DefaultYear))
	endYear := report.ClampYear(intParam(q.Get("end_year"), report.DefaultYear+1))
	if endYear < startYear {
		endYear = startYear
	}

	groupBy := q["group"]
	if len(groupBy) == 0 {
		groupBy = []string{workforce.ColCompany}
	}

	return app.CompBenParams{
		Year:                year,
		StartYear:           startYear,
		EndYear:             endYear,
		GroupBy:             groupBy,
		ActiveExclusions:    state.ActiveExclusions(),
		DepartureExclusions: state.DepartureExclusions(),
		Rates:               state.Rates,
		Filters:             categoryFilterParams(q, workforce.YearEnd(year)),
	}
}

// filterParamPrefix namespaces the category-filter query parameters, e.g.
// f_company, f_age_bucket.
const filterParamPrefix = "f_"

// categoryFilterParams reads the category selections and the age-bucketing
// reference date from the query.
func categoryFilterParams(q url.Values, defaultRef time.Time) workforce.CategoryFilter {
	selections := make(map[string][]string)
	for _, dim := range workforce.FilterDimensions {
		if values := q[filterParamPrefix+dim]; len(values) > 0 {
			selections[dim] = values
		}
	}

	ref := defaultRef
	if raw := q.Get("ref_date"); raw != "" {
		if t := normalize.ParseDate(raw); t != nil {
			ref = *t
		} else if t, err := time.Parse("2006-01-02", raw); err == nil {
			ref = t.UTC()
		}
	}

	return workforce.CategoryFilter{Selections: selections, ReferenceDate: ref}
}

// trainingParams reads the dimension filters and cutoff from the query
func trainingParams(r *http.Request) app.TrainingParams {
	q := r.URL.Query()
	filters := make(map[training.Dimension][]string)
	for _, dim := range training.AllDimensions {
		if values := q[string(dim)]; len(values) > 0 {
			filters[dim] = values
		}
	}

	var cutoff *time.Time
	if raw := q.Get("cutoff"); raw != "" {
		if t := normalize.ParseDate(raw); t != nil {
			cutoff = t
		} else if t, err := time.Parse("2006-01-02", raw); err == nil {
			u := t.UTC()
			cutoff = &u
		}
	}

	return app.TrainingParams{Filters: filters, Cutoff: cutoff}
}

func intParam(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

var errTooLarge = apperrors.UploadInvalid("upload exceeds the size limit")

// readUpload pulls one uploaded file's bytes out of a multipart form
func (a *App) readUpload(r *http.Request, field string) (string, []byte, error) {
	if err := r.ParseMultipartForm(a.cfg.Upload.MaxBytes); err != nil {
		return "", nil, err
	}
	file, header, err := r.FormFile(field)
	if err != nil {
		return "", nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, a.cfg.Upload.MaxBytes+1))
	if err != nil {
		return "", nil, err
	}
	if int64(len(data)) > a.cfg.Upload.MaxBytes {
		return "", nil, errTooLarge
	}
	return header.Filename, data, nil
}
