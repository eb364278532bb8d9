package storage

import (
	"sync"
	"time"

	"github.com/google/uuid"

	converter "github.com/hpate252/currency-converter"
)

// memoryStorage journals conversions for the lifetime of the process.
// Nothing is persisted across runs.
type memoryStorage struct {
	mutex       sync.Mutex
	conversions []converter.ConversionWithID
}

func NewMemoryStorage() converter.Storage {
	return &memoryStorage{}
}

func (m *memoryStorage) Store(conversion converter.Conversion) (converter.ConversionWithID, error) {
	if conversion.CreatedAt.IsZero() {
		conversion.CreatedAt = time.Now()
	}

	withID := converter.ConversionWithID{
		Conversion: conversion,
		ID:         uuid.New(),
	}

	m.mutex.Lock()
	m.conversions = append(m.conversions, withID)
	m.mutex.Unlock()

	return withID, nil
}

func (m *memoryStorage) Get(from, to string, page, perPage int64) ([]converter.ConversionWithID, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	matched := make([]converter.ConversionWithID, 0, perPage)
	for _, conversion := range m.conversions {
		if conversion.From == from && conversion.To == to {
			matched = append(matched, conversion)
		}
	}

	return paginate(matched, page, perPage), nil
}

func (m *memoryStorage) List(page, perPage int64) ([]converter.ConversionWithID, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	return paginate(m.conversions, page, perPage), nil
}

func (m *memoryStorage) Len() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	return len(m.conversions)
}

// paginate applies the 1-based page/perPage window used by Storage.
func paginate(conversions []converter.ConversionWithID, page, perPage int64) []converter.ConversionWithID {
	skip := (page - 1) * perPage
	if skip < 0 || skip >= int64(len(conversions)) {
		return []converter.ConversionWithID{}
	}

	end := skip + perPage
	if end > int64(len(conversions)) {
		end = int64(len(conversions))
	}

	out := make([]converter.ConversionWithID, end-skip)
	copy(out, conversions[skip:end])

	return out
}
