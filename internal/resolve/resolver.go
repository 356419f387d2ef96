// Package resolve locates business columns inside heterogeneous HR exports.
//
// The upstream payroll system emits files whose headers drift between
// releases and locales, but whose cell values are stable. Columns are
// therefore identified by content: an ordered rule table of
// (marker value, canonical name) pairs is evaluated once at load time, and
// the first column containing a rule's marker as a substring of any cell is
// claimed for that canonical name.
//
// Marker matching is substring containment. A free-text column that
// happens to contain a marker can steal a claim (first match wins);
// tightening the match would break files where the marker value is embedded
// in longer labels, so the imprecision is documented rather than fixed.
package resolve

import (
	"log"
	"strings"

	"esgboard/adapters/tabular"
	"esgboard/domain/workforce"
)

// Rule maps a marker cell value to the canonical column it identifies
type Rule struct {
	Marker    string
	Canonical string
}

// EmployeeRules is the rule table for employee exports, in priority order.
// Order matters: earlier rules claim columns first.
var EmployeeRules = []Rule{
	{Marker: "ΑΝΔΡΑΣ", Canonical: workforce.ColGender},
	{Marker: "OPERATIONAL", Canonical: workforce.ColJobProperty},
	{Marker: "ΕΥΚΑΡΠΙΑ", Canonical: workforce.ColCity},
	{Marker: "ΑΟΡΙΣΤΟΥ ΧΡΟΝΟΥ", Canonical: workforce.ColContract},
	{Marker: "DIVISION", Canonical: workforce.ColDivision},
	{Marker: "ΕΠΑΝΑΤΙΜΟΛΟΓΗΣΗ", Canonical: workforce.ColDepartment},
}

// fixedHeaders are columns identified by their literal source header rather
// than by content scanning.
var fixedHeaders = map[string]string{
	"Αριθμός μητρώου":           workforce.ColEmployeeID,
	"Ημ/νία γέννησης":           workforce.ColBirthDate,
	"Ημ/νία πρόσληψης":          workforce.ColHireDate,
	"Ημ/νία αποχώρησης":         workforce.ColDepartureDate,
	"Ονομαστικός μισθός":        workforce.ColNominalSalary,
	"ΜΙΚΤΕΣ ΑΠΟΔ":               workforce.ColGrossAnnual,
	"Περιγραφή εταιρίας":        workforce.ColCompany,
	"Περιγραφή Αιτ. Αποχώρησης": workforce.ColDepartureReason,
	"Περιγραφή Σύμβασης":        workforce.ColContractDesc,
	"Επώνυμο":                   workforce.ColLastName,
	"Ονομα":                     workforce.ColFirstName,
}

// Schema is the outcome of resolution: a typed mapping from canonical names
// to the raw headers that carry them, plus the canonical names that never
// resolved. It is computed once per upload and never re-scanned.
type Schema struct {
	// Header maps canonical name -> raw source header
	Header map[string]string
	// Unresolved lists canonical names with no matching column
	Unresolved []string
}

// Has reports whether a canonical column resolved
func (s *Schema) Has(canonical string) bool {
	_, ok := s.Header[canonical]
	return ok
}

// RawHeader returns the source header carrying a canonical column
func (s *Schema) RawHeader(canonical string) (string, bool) {
	h, ok := s.Header[canonical]
	return h, ok
}

// Resolve evaluates the rule table against a raw table. For each rule in
// order it scans columns left to right and claims the first unclaimed
// column whose cells contain the marker; each canonical name is claimed at
// most once. Fixed-header columns are then mapped by literal header match.
func Resolve(table *tabular.RawTable, rules []Rule) *Schema {
	schema := &Schema{Header: make(map[string]string)}
	claimed := make(map[string]bool)

	for _, rule := range rules {
		if _, done := schema.Header[rule.Canonical]; done {
			continue
		}
		found := false
		for _, header := range table.Headers {
			if claimed[header] {
				continue
			}
			if columnContains(table, header, rule.Marker) {
				schema.Header[rule.Canonical] = header
				claimed[header] = true
				found = true
				break
			}
		}
		if !found {
			schema.Unresolved = append(schema.Unresolved, rule.Canonical)
			log.Printf("[Resolver] no column matched marker %q for %s", rule.Marker, rule.Canonical)
		}
	}

	for raw, canonical := range fixedHeaders {
		if table.HasHeader(raw) {
			schema.Header[canonical] = raw
		} else {
			schema.Unresolved = append(schema.Unresolved, canonical)
		}
	}

	return schema
}

// ResolveEmployee resolves an employee export with the standard rule table
func ResolveEmployee(table *tabular.RawTable) *Schema {
	return Resolve(table, EmployeeRules)
}

// columnContains reports whether any cell of the column contains the marker
// as a substring of its stringified value.
func columnContains(table *tabular.RawTable, header, marker string) bool {
	for _, cell := range table.Column(header) {
		if strings.Contains(cell, marker) {
			return true
		}
	}
	return false
}
