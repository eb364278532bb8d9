package rates

import (
	"errors"
	"sort"
)

var (
	ErrUnsupportedCurrency = errors.New("unsupported currency code")
	ErrInvalidRate         = errors.New("rate must be positive")
)

type pair struct {
	from string
	to   string
}

// Table holds exchange rates relative to a single base currency, plus
// explicit per-pair overrides that take precedence over derivation.
// Codes are case-sensitive; normalization is the caller's job. A Table is
// not safe for concurrent use.
type Table struct {
	baseCode  string
	baseRates map[string]float64
	overrides map[pair]float64
}

// New creates a table whose base currency is registered at rate 1.
func New(baseCode string) *Table {
	table := &Table{
		baseCode:  baseCode,
		baseRates: make(map[string]float64),
		overrides: make(map[pair]float64),
	}

	table.baseRates[baseCode] = 1.0

	return table
}

func (t *Table) BaseCode() string {
	return t.baseCode
}

// RegisterBaseRate inserts or replaces the rate of code versus the base
// currency, meaning 1 unit of the base equals rate units of code.
// Behaviour for non-positive rates is undefined; callers validate.
func (t *Table) RegisterBaseRate(code string, rate float64) {
	t.baseRates[code] = rate
}

// SetOverride inserts or replaces an explicit from->to rate. Overrides may
// name codes that carry no base rate. There is no way to delete one.
func (t *Table) SetOverride(from, to string, rate float64) error {
	if rate <= 0 {
		return ErrInvalidRate
	}

	t.overrides[pair{from, to}] = rate

	return nil
}

// Resolve returns the multiplier turning one unit of from into to.
// Identity pairs resolve to 1 before the override lookup, so an override
// keyed (X, X) is never consulted; this mirrors the original behaviour and
// must not be "fixed" silently.
func (t *Table) Resolve(from, to string) (float64, error) {
	if from == to {
		return 1.0, nil
	}

	if rate, ok := t.overrides[pair{from, to}]; ok {
		return rate, nil
	}

	rateFrom, okFrom := t.baseRates[from]
	rateTo, okTo := t.baseRates[to]

	if !okFrom || !okTo {
		return 0, ErrUnsupportedCurrency
	}

	// from -> base -> to
	return rateTo / rateFrom, nil
}

// SupportedCodes returns every code with a base rate, sorted ascending.
// Codes known only through overrides are not listed.
func (t *Table) SupportedCodes() []string {
	codes := make([]string, 0, len(t.baseRates))
	for code := range t.baseRates {
		codes = append(codes, code)
	}

	sort.Strings(codes)

	return codes
}
