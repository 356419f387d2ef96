package ui

import (
	"log"
	"net/http"

	"esgboard/domain/core"
	"esgboard/internal/export"
)

// handleExportNormalized streams the normalized table back out as
// semicolon-delimited text in the source locale. The analyst table (with
// the contracts join) wins when present; otherwise the Comp&Ben table is
// exported.
func (a *App) handleExportNormalized(w http.ResponseWriter, r *http.Request) {
	state := a.sessions.GetOrCreate(sessionKey(r))
	table := state.Analyst
	if table == nil {
		table = state.CompBen
	}
	if table == nil {
		a.failPage(w, r, "/analyst", core.NewUploadRequiredError("employee file"))
		return
	}

	attachmentHeaders(w, "normalized.csv", "text/csv; charset=utf-8")
	if err := export.WriteNormalizedCSV(w, table); err != nil {
		// Headers are already out; all we can do is log.
		log.Printf("[UI] normalized export failed: %v", err)
	}
}

// handleExportLongFormat exports the monthly headcount matrix unpivoted to
// long format as a spreadsheet, honoring the page's current year range,
// grouping, and exclusions.
func (a *App) handleExportLongFormat(w http.ResponseWriter, r *http.Request) {
	state := a.sessions.GetOrCreate(sessionKey(r))
	if state.CompBen == nil {
		a.failPage(w, r, "/compben", core.NewUploadRequiredError("employee file"))
		return
	}

	params := a.compBenParams(r, state)
	matrix, err := a.reports.HeadcountForExport(state.CompBen, params)
	if err != nil {
		a.failPage(w, r, "/compben", err)
		return
	}

	attachmentHeaders(w, "headcount-long.xlsx",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := export.WriteLongFormatXLSX(w, matrix); err != nil {
		log.Printf("[UI] long-format export failed: %v", err)
	}
}
