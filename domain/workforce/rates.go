package workforce

// ExchangeRateTable maps a company label to the factor converting its gross
// remuneration figures into the common reporting currency. Companies absent
// from the table convert at 1.0 (already in the reporting currency).
type ExchangeRateTable map[string]float64

// DefaultExchangeRates returns the per-company defaults shipped with the
// dashboards. Users can override any of them per session.
func DefaultExchangeRates() ExchangeRateTable {
	return ExchangeRateTable{
		"ALUMIL YU INDUSTRY SA":          0.008546,
		"ALUMIL ALBANIA Sh.P.K":          0.01023,
		"ALUMIL ROM INDUSTRY SA":         0.2010,
		"ALUMIL MISR FOR TRADING S.A.E.": 0.019,
		"ALPRO VLASENICA A.D.":           0.5142,
		"ALUMIL MIDDLE EAST JLT":         0.25,
	}
}

// Rate returns the conversion factor for a company, defaulting to 1.0
func (t ExchangeRateTable) Rate(company string) float64 {
	if rate, ok := t[company]; ok && rate > 0 {
		return rate
	}
	return 1.0
}

// WithOverride returns a copy with one company's rate replaced. The receiver
// is never mutated; session state owns its own copy.
func (t ExchangeRateTable) WithOverride(company string, rate float64) ExchangeRateTable {
	out := make(ExchangeRateTable, len(t)+1)
	for k, v := range t {
		out[k] = v
	}
	out[company] = rate
	return out
}
