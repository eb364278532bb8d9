package services

import (
	"time"

	"github.com/go-kit/log"

	converter "github.com/hpate252/currency-converter"
)

// loggingService decorates a converter.Service with logging
type loggingService struct {
	logger log.Logger
	next   converter.Service
}

// NewLoggingService returns a new instance of a logging Service
func NewLoggingService(logger log.Logger, next converter.Service) converter.Service {
	return &loggingService{
		logger: logger,
		next:   next,
	}
}

func (s *loggingService) Convert(from, to string, amount float64) (c converter.Conversion, err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "convert",
			"from", from,
			"to", to,
			"amount", amount,
			"rate", c.Rate,
			"result", c.Result,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())

	return s.next.Convert(from, to, amount)
}

func (s *loggingService) Rate(from, to string) (rate float64, err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "rate",
			"from", from,
			"to", to,
			"rate", rate,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())

	return s.next.Rate(from, to)
}

func (s *loggingService) SupportedCodes() []string {
	return s.next.SupportedCodes()
}
