package converter

import "time"

type Currency struct {
	Code   string
	Name   string
	Symbol string
}

type Conversion struct {
	From      string
	To        string
	Amount    float64
	Rate      float64
	Result    float64
	CreatedAt time.Time
}

type ConversionWithID struct {
	Conversion
	ID interface{}
}
