package ui

import (
	"fmt"
	"html/template"
	"log"
	"net/http"
	"net/url"
	"regexp"

	"github.com/go-chi/chi/v5"
	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"esgboard/domain/core"
	apperrors "esgboard/internal/errors"
)

func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	state := a.sessions.GetOrCreate(sessionKey(r))
	a.render(w, "index.html", map[string]interface{}{
		"Title":       "ESG Dashboards",
		"HasCompBen":  state.CompBen != nil,
		"HasAnalyst":  state.Analyst != nil,
		"HasTraining": len(state.Training) > 0,
	})
}

var infoPagePattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// handleInfoPage renders an embedded markdown info page
func (a *App) handleInfoPage(w http.ResponseWriter, r *http.Request) {
	page := chi.URLParam(r, "page")
	if !infoPagePattern.MatchString(page) {
		http.NotFound(w, r)
		return
	}
	raw, err := embeddedFiles.ReadFile("info/" + page + ".md")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags})
	body := markdown.ToHTML(raw, p, renderer)

	a.render(w, "info.html", map[string]interface{}{
		"Title": page,
		"Body":  template.HTML(body),
	})
}

// failPage routes an error either back to the page as an inline notice or
// to a 500, depending on whether the user can act on it.
func (a *App) failPage(w http.ResponseWriter, r *http.Request, path string, err error) {
	if core.IsUserFacing(err) || apperrors.GetCode(err) == apperrors.CodeUploadInvalid {
		http.Redirect(w, r, path+"?err="+url.QueryEscape(err.Error()), http.StatusSeeOther)
		return
	}
	log.Printf("[UI] %s %s failed: %v", r.Method, r.URL.Path, err)
	http.Error(w, "internal error", http.StatusInternalServerError)
}

// flash returns the inline notice carried across a redirect, if any
func flash(r *http.Request) string {
	return r.URL.Query().Get("err")
}

func attachmentHeaders(w http.ResponseWriter, name, contentType string) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
}
