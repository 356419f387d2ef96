package ui

import (
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"esgboard/adapters/tabular"
	"esgboard/app"
	"esgboard/internal/config"
	"esgboard/internal/session"
)

//go:embed templates/* static/* info/*
var embeddedFiles embed.FS

// App is the dashboard web application
type App struct {
	router    *chi.Mux
	cfg       *config.Config
	pipeline  *app.PipelineService
	reports   *app.ReportService
	training  *app.TrainingService
	sessions  *session.Store
	templates *template.Template
}

// NewApp wires the dashboard application
func NewApp(cfg *config.Config) (*App, error) {
	funcMap := template.FuncMap{
		// Rates and gaps are kept at full precision in the engine and
		// rounded to two decimals only here.
		"pct2": func(v float64) string { return fmt.Sprintf("%.2f", v) },
		"num2": func(v float64) string { return fmt.Sprintf("%.2f", v) },
		"pct2p": func(v *float64) string {
			if v == nil {
				return "—"
			}
			return fmt.Sprintf("%.2f", *v)
		},
		"join": strings.Join,
		"yearp": func(y *int) string {
			if y == nil {
				return ""
			}
			return strconv.Itoa(*y)
		},
	}
	templates, err := template.New("").Funcs(funcMap).ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	a := &App{
		router:    chi.NewRouter(),
		cfg:       cfg,
		pipeline:  app.NewPipelineService(tabular.NewDataReader()),
		reports:   app.NewReportService(),
		training:  app.NewTrainingService(),
		sessions:  session.NewStore(),
		templates: templates,
	}

	a.setupMiddleware()
	a.setupRoutes()
	return a, nil
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
	a.router.Use(a.withSession)

	staticFS := http.FileServer(http.FS(embeddedFiles))
	a.router.Handle("/static/*", staticFS)
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	a.router.Get("/", a.handleIndex)
	a.router.Get("/info/{page}", a.handleInfoPage)

	a.router.Get("/compben", a.handleCompBen)
	a.router.Post("/compben/upload", a.handleCompBenUpload)
	a.router.Post("/compben/settings", a.handleCompBenSettings)

	a.router.Get("/analyst", a.handleAnalyst)
	a.router.Post("/analyst/upload", a.handleAnalystUpload)

	a.router.Get("/training", a.handleTraining)
	a.router.Post("/training/upload", a.handleTrainingUpload)

	a.router.Get("/exports/normalized.csv", a.handleExportNormalized)
	a.router.Get("/exports/headcount-long.xlsx", a.handleExportLongFormat)
}

// Router exposes the handler for serving and for tests
func (a *App) Router() http.Handler {
	return a.router
}

// Run starts the HTTP server
func (a *App) Run() error {
	addr := ":" + a.cfg.Server.Port
	log.Printf("[UI] dashboard listening on %s", addr)
	return http.ListenAndServe(addr, a.router)
}

// render executes a page template over the shared layout
func (a *App) render(w http.ResponseWriter, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := a.templates.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("[UI] template %s failed: %v", name, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// sortedCopy returns values sorted without touching the input
func sortedCopy(values []string) []string {
	out := make([]string, len(values))
	copy(out, values)
	sort.Strings(out)
	return out
}
