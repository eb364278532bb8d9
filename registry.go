package converter

import "sort"

// Registry holds display metadata per currency code. The conversion core
// never requires a code to be registered here; the registry only serves
// listing and formatting.
type Registry struct {
	currencies map[string]Currency
}

func NewRegistry() *Registry {
	return &Registry{
		currencies: make(map[string]Currency),
	}
}

// Register inserts or replaces the metadata for currency.Code.
func (r *Registry) Register(currency Currency) {
	r.currencies[currency.Code] = currency
}

func (r *Registry) Get(code string) (Currency, bool) {
	currency, ok := r.currencies[code]

	return currency, ok
}

// All returns every registered currency, sorted by code.
func (r *Registry) All() []Currency {
	all := make([]Currency, 0, len(r.currencies))
	for _, currency := range r.currencies {
		all = append(all, currency)
	}

	sort.Slice(all, func(i, j int) bool {
		return all[i].Code < all[j].Code
	})

	return all
}

// DefaultRegistry returns a registry seeded with the built-in demo
// currencies.
func DefaultRegistry() *Registry {
	registry := NewRegistry()

	for _, currency := range []Currency{
		{Code: "USD", Name: "US Dollar", Symbol: "$"},
		{Code: "EUR", Name: "Euro", Symbol: "€"},
		{Code: "INR", Name: "Indian Rupee", Symbol: "₹"},
		{Code: "GBP", Name: "British Pound", Symbol: "£"},
		{Code: "JPY", Name: "Japanese Yen", Symbol: "¥"},
		{Code: "AUD", Name: "Australian Dollar", Symbol: "$"},
		{Code: "CAD", Name: "Canadian Dollar", Symbol: "$"},
	} {
		registry.Register(currency)
	}

	return registry
}
