package ui

import (
	"net/http"

	"esgboard/domain/training"
	"esgboard/internal/session"
)

// dimensionFilter is one sidebar filter widget with its selected values
type dimensionFilter struct {
	Dimension training.Dimension
	Options   []string
	Selected  map[string]bool
}

func (a *App) handleTraining(w http.ResponseWriter, r *http.Request) {
	state := a.sessions.GetOrCreate(sessionKey(r))

	data := map[string]interface{}{
		"Title":   "Training",
		"Flash":   flash(r),
		"HasData": len(state.Training) > 0,
	}
	if len(state.Training) == 0 {
		a.render(w, "training.html", data)
		return
	}

	params := trainingParams(r)
	report := a.training.Aggregate(state.Training, params)
	options := a.training.DimensionOptions(state.Training)

	filters := make([]dimensionFilter, 0, len(training.AllDimensions))
	for _, dim := range training.AllDimensions {
		selected := make(map[string]bool)
		for _, v := range params.Filters[dim] {
			selected[v] = true
		}
		filters = append(filters, dimensionFilter{
			Dimension: dim,
			Options:   sortedCopy(options[dim]),
			Selected:  selected,
		})
	}

	data["Report"] = report
	data["Filters"] = filters
	data["Records"] = len(state.Training)
	data["Cutoff"] = r.URL.Query().Get("cutoff")
	a.render(w, "training.html", data)
}

func (a *App) handleTrainingUpload(w http.ResponseWriter, r *http.Request) {
	filename, payload, err := a.readUpload(r, "file")
	if err != nil {
		a.failPage(w, r, "/training", err)
		return
	}
	records, err := a.pipeline.LoadTraining(filename, payload)
	if err != nil {
		a.failPage(w, r, "/training", err)
		return
	}
	a.sessions.Update(sessionKey(r), func(s *session.State) {
		s.Training = records
	})
	http.Redirect(w, r, "/training", http.StatusSeeOther)
}
