package ui

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"esgboard/domain/workforce"
	"esgboard/internal/config"
	"esgboard/internal/session"
)

const employeeCSV = `Αριθμός μητρώου;Φύλο;Περιγραφή εταιρίας;Ημ/νία γέννησης;Ημ/νία πρόσληψης;Ημ/νία αποχώρησης;Ονομαστικός μισθός;ΜΙΚΤΕΣ ΑΠΟΔ;Περιγραφή Αιτ. Αποχώρησης;Περιγραφή Σύμβασης
1001;ΑΝΔΡΑΣ;ALUMIL SA;12/05/1985;15/03/2019;;3417,48;52000;;ΑΛΜ - ΥΠΑΛΛΗΛΟΙ
1002;ΓΥΝΑΙΚΑ;ALUMIL SA;03/09/1997;01/06/2020;;2980,00;43000;;ΑΛΜ - ΥΠΑΛΛΗΛΟΙ
1003;ΑΝΔΡΑΣ;ALUMIL SA;20/11/1999;10/01/2021;30/06/2024;2500,00;38000;VOLUNTARY DEPARTURE;ΑΛΜ - ΥΠΑΛΛΗΛΟΙ
`

func newTestApp(t *testing.T) *App {
	t.Helper()
	cfg, err := config.Load()
	require.NoError(t, err)
	app, err := NewApp(cfg)
	require.NoError(t, err)
	return app
}

// do issues a request and returns the response, carrying session cookies
// across calls when a previous response is given.
func do(t *testing.T, app *App, req *http.Request, prior *http.Response) *http.Response {
	t.Helper()
	if prior != nil {
		for _, c := range prior.Cookies() {
			req.AddCookie(c)
		}
	}
	rec := httptest.NewRecorder()
	app.Router().ServeHTTP(rec, req)
	return rec.Result()
}

func multipartUpload(t *testing.T, field, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = io.WriteString(part, content)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &body, w.FormDataContentType()
}

func TestIndexPage(t *testing.T) {
	app := newTestApp(t)

	resp := do(t, app, httptest.NewRequest(http.MethodGet, "/", nil), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Reporting Dashboards")
	// A session cookie is issued on first contact.
	assert.NotEmpty(t, resp.Cookies())
}

func TestCompBenPage_WithoutUpload(t *testing.T) {
	app := newTestApp(t)

	resp := do(t, app, httptest.NewRequest(http.MethodGet, "/compben", nil), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Upload an employee export")
}

// TestCompBenUploadFlow uploads an export and checks the report renders
// with the session carried by cookie.
func TestCompBenUploadFlow(t *testing.T) {
	app := newTestApp(t)

	body, contentType := multipartUpload(t, "file", "export.csv", employeeCSV)
	upload := httptest.NewRequest(http.MethodPost, "/compben/upload", body)
	upload.Header.Set("Content-Type", contentType)
	resp := do(t, app, upload, nil)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	page := do(t, app, httptest.NewRequest(http.MethodGet, "/compben", nil), resp)
	require.Equal(t, http.StatusOK, page.StatusCode)

	html, _ := io.ReadAll(page.Body)
	text := string(html)
	assert.Contains(t, text, "3 records")
	assert.Contains(t, text, "ALUMIL SA")
	assert.Contains(t, text, "TOTAL")
	// Filter controls render from the upload's own values.
	assert.Contains(t, text, "Departure reason")
	assert.Contains(t, text, "Age bucket")
	assert.Contains(t, text, `name="ref_date"`)
}

// TestSessionIsolation verifies one session's upload is invisible to
// another.
func TestSessionIsolation(t *testing.T) {
	app := newTestApp(t)

	body, contentType := multipartUpload(t, "file", "export.csv", employeeCSV)
	upload := httptest.NewRequest(http.MethodPost, "/compben/upload", body)
	upload.Header.Set("Content-Type", contentType)
	first := do(t, app, upload, nil)
	require.Equal(t, http.StatusSeeOther, first.StatusCode)

	// Fresh request without the cookie: new session, no data.
	other := do(t, app, httptest.NewRequest(http.MethodGet, "/compben", nil), nil)
	html, _ := io.ReadAll(other.Body)
	assert.Contains(t, string(html), "Upload an employee export")
}

func TestExportNormalized_RequiresUpload(t *testing.T) {
	app := newTestApp(t)

	resp := do(t, app, httptest.NewRequest(http.MethodGet, "/exports/normalized.csv", nil), nil)
	// Redirects back with the inline notice.
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Location"), "err=")
}

func TestExportNormalized_RoundTrip(t *testing.T) {
	app := newTestApp(t)

	body, contentType := multipartUpload(t, "file", "export.csv", employeeCSV)
	upload := httptest.NewRequest(http.MethodPost, "/compben/upload", body)
	upload.Header.Set("Content-Type", contentType)
	resp := do(t, app, upload, nil)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	export := do(t, app, httptest.NewRequest(http.MethodGet, "/exports/normalized.csv", nil), resp)
	require.Equal(t, http.StatusOK, export.StatusCode)
	assert.Contains(t, export.Header.Get("Content-Disposition"), "normalized.csv")

	csvBody, _ := io.ReadAll(export.Body)
	// Decimal comma and day-first date restored on the way out.
	assert.Contains(t, string(csvBody), "3417,48")
	assert.Contains(t, string(csvBody), "15/03/2019")
}

// TestCompBenParams_CategoryFilters reads the filter selections and the
// age-bucketing reference date off the query string.
func TestCompBenParams_CategoryFilters(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet,
		"/compben?year=2024&f_company=ACME&f_company=BETA&f_age_bucket=Under+30&ref_date=2024-06-30", nil)
	p := app.compBenParams(req, &session.State{})

	assert.Equal(t, []string{"ACME", "BETA"}, p.Filters.Selections[workforce.ColCompany])
	assert.Equal(t, []string{"Under 30"}, p.Filters.Selections[workforce.ColAgeBucket])
	assert.Equal(t, time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC), p.Filters.ReferenceDate)
}

func TestCompBenParams_ReferenceDateDefaultsToYearEnd(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/compben?year=2024", nil)
	p := app.compBenParams(req, &session.State{})

	assert.True(t, p.Filters.IsEmpty())
	assert.Equal(t, workforce.YearEnd(2024), p.Filters.ReferenceDate)
}

func TestInfoPage(t *testing.T) {
	app := newTestApp(t)

	resp := do(t, app, httptest.NewRequest(http.MethodGet, "/info/about-esg", nil), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Turnover")

	missing := do(t, app, httptest.NewRequest(http.MethodGet, "/info/no-such-page", nil), nil)
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)

	// Page names outside the slug pattern are rejected before any file read.
	invalid := do(t, app, httptest.NewRequest(http.MethodGet, "/info/About-ESG", nil), nil)
	assert.Equal(t, http.StatusNotFound, invalid.StatusCode)
}
