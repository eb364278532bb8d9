package services

import (
	converter "github.com/hpate252/currency-converter"
)

// recordingService decorates a converter.Service by journaling every
// successful conversion. Failed conversions are not recorded.
type recordingService struct {
	store converter.Storage
	next  converter.Service
}

func NewRecordingService(store converter.Storage, next converter.Service) converter.Service {
	return &recordingService{
		store: store,
		next:  next,
	}
}

func (s *recordingService) Convert(from, to string, amount float64) (converter.Conversion, error) {
	conversion, err := s.next.Convert(from, to, amount)
	if err != nil {
		return converter.Conversion{}, err
	}

	if _, err := s.store.Store(conversion); err != nil {
		return converter.Conversion{}, err
	}

	return conversion, nil
}

func (s *recordingService) Rate(from, to string) (float64, error) {
	return s.next.Rate(from, to)
}

func (s *recordingService) SupportedCodes() []string {
	return s.next.SupportedCodes()
}
