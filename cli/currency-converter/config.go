package main

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	converter "github.com/hpate252/currency-converter"
	"github.com/hpate252/currency-converter/rates"
)

type (
	Config struct {
		Table    *rates.Table
		Registry *converter.Registry
	}

	currencyConfig struct {
		Code   string
		Name   string
		Symbol string
	}

	overrideConfig struct {
		From string
		To   string
		Rate float64
	}
)

// defaultBaseRates is the built-in demo table used when no rates are
// configured, expressed against USD.
var defaultBaseRates = map[string]float64{
	"EUR": 0.92,
	"INR": 83.10,
	"GBP": 0.79,
	"JPY": 141.50,
	"AUD": 1.47,
	"CAD": 1.34,
}

func getConfig() (*Config, error) {
	base := strings.ToUpper(viper.GetString("base"))
	if base == "" {
		base = "USD"
	}

	table := rates.New(base)

	if err := registerBaseRates(table); err != nil {
		return nil, err
	}

	if err := applyOverrides(table); err != nil {
		return nil, err
	}

	registry, err := getRegistry()
	if err != nil {
		return nil, err
	}

	return &Config{
		Table:    table,
		Registry: registry,
	}, nil
}

func registerBaseRates(table *rates.Table) error {
	configured := viper.GetStringMap("rates")

	if len(configured) == 0 {
		for code, rate := range defaultBaseRates {
			table.RegisterBaseRate(code, rate)
		}

		return nil
	}

	for code := range configured {
		rate := viper.GetFloat64("rates." + code)

		// RegisterBaseRate leaves non-positive rates undefined, so they are
		// rejected here before reaching the table.
		if rate <= 0 {
			return fmt.Errorf("rate for %s must be positive, got %f", strings.ToUpper(code), rate)
		}

		table.RegisterBaseRate(strings.ToUpper(code), rate)
	}

	return nil
}

func applyOverrides(table *rates.Table) error {
	var overrides []overrideConfig

	if err := viper.UnmarshalKey("overrides", &overrides); err != nil {
		return fmt.Errorf("error while parsing overrides: %w", err)
	}

	for _, override := range overrides {
		from := strings.ToUpper(override.From)
		to := strings.ToUpper(override.To)

		if err := table.SetOverride(from, to, override.Rate); err != nil {
			return fmt.Errorf("override %s->%s: %w", from, to, err)
		}
	}

	return nil
}

func getRegistry() (*converter.Registry, error) {
	var currencies []currencyConfig

	if err := viper.UnmarshalKey("currencies", &currencies); err != nil {
		return nil, fmt.Errorf("error while parsing currencies: %w", err)
	}

	if len(currencies) == 0 {
		return converter.DefaultRegistry(), nil
	}

	registry := converter.NewRegistry()
	for _, currency := range currencies {
		registry.Register(converter.Currency{
			Code:   strings.ToUpper(currency.Code),
			Name:   currency.Name,
			Symbol: currency.Symbol,
		})
	}

	return registry, nil
}
