package ui

import (
	"net/http"

	"esgboard/domain/core"
	"esgboard/domain/workforce"
	"esgboard/internal/session"
)

// previewLimit caps the rows shown on the analyst page; the full table is
// available through the export.
const previewLimit = 50

func (a *App) handleAnalyst(w http.ResponseWriter, r *http.Request) {
	state := a.sessions.GetOrCreate(sessionKey(r))

	data := map[string]interface{}{
		"Title":   "HR Analyst",
		"Flash":   flash(r),
		"HasData": state.Analyst != nil,
	}
	if state.Analyst != nil {
		preview := state.Analyst.Records
		if len(preview) > previewLimit {
			preview = preview[:previewLimit]
		}
		data["Preview"] = preview
		data["Records"] = len(state.Analyst.Records)
		data["HasContract"] = state.Analyst.HasColumn(workforce.ColContract)
	}
	a.render(w, "analyst.html", data)
}

// handleAnalystUpload takes the main employee file plus the contracts file
// and stores the joined table. Both files are required; the contracts join
// is what distinguishes this page's table from the Comp&Ben one.
func (a *App) handleAnalystUpload(w http.ResponseWriter, r *http.Request) {
	empName, empData, err := a.readUpload(r, "employees")
	if err != nil {
		a.failPage(w, r, "/analyst", core.NewUploadRequiredError("employee file"))
		return
	}
	conName, conData, err := a.readUpload(r, "contracts")
	if err != nil {
		a.failPage(w, r, "/analyst", core.NewUploadRequiredError("contracts file"))
		return
	}

	table, _, err := a.pipeline.LoadEmployees(empName, empData)
	if err != nil {
		a.failPage(w, r, "/analyst", err)
		return
	}
	contracts, err := a.pipeline.LoadContracts(conName, conData)
	if err != nil {
		a.failPage(w, r, "/analyst", err)
		return
	}
	joined := a.pipeline.ApplyContracts(table, contracts)

	a.sessions.Update(sessionKey(r), func(s *session.State) {
		s.Analyst = joined
	})
	http.Redirect(w, r, "/analyst", http.StatusSeeOther)
}
