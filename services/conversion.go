package services

import (
	"errors"

	converter "github.com/hpate252/currency-converter"
	"github.com/hpate252/currency-converter/rates"
)

var ErrInvalidAmount = errors.New("amount cannot be negative")

type conversionService struct {
	table *rates.Table
}

// New returns a Service that converts amounts using the given rate table.
// The service is pure: the result depends only on the arguments and the
// table state at call time.
func New(table *rates.Table) converter.Service {
	return &conversionService{
		table: table,
	}
}

func (s *conversionService) Convert(from, to string, amount float64) (converter.Conversion, error) {
	if amount < 0 {
		return converter.Conversion{}, ErrInvalidAmount
	}

	rate, err := s.table.Resolve(from, to)
	if err != nil {
		return converter.Conversion{}, err
	}

	return converter.Conversion{
		From:   from,
		To:     to,
		Amount: amount,
		Rate:   rate,
		Result: amount * rate,
	}, nil
}

func (s *conversionService) Rate(from, to string) (float64, error) {
	return s.table.Resolve(from, to)
}

func (s *conversionService) SupportedCodes() []string {
	return s.table.SupportedCodes()
}
