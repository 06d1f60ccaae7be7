package services_test

import (
	"context"
	"time"

	"github.com/country-insights/country_insights_app/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock CountrySource ---
type MockCountrySource struct {
	mock.Mock
}

func (m *MockCountrySource) FetchCountries(ctx context.Context) ([]domain.RawCountry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RawCountry), args.Error(1)
}

// --- Mock RateSource ---
type MockRateSource struct {
	mock.Mock
}

func (m *MockRateSource) FetchRates(ctx context.Context) (domain.RateTable, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.RateTable), args.Error(1)
}

// --- Mock CountryRepository ---
type MockCountryRepository struct {
	mock.Mock
}

func (m *MockCountryRepository) FindCountryByName(ctx context.Context, name string) (*domain.Country, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Country), args.Error(1)
}

func (m *MockCountryRepository) ListCountries(ctx context.Context, filter domain.ListFilter) ([]domain.Country, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Country), args.Error(1)
}

func (m *MockCountryRepository) CountCountries(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCountryRepository) TopCountriesByGDP(ctx context.Context, n int) ([]domain.TopCountry, error) {
	args := m.Called(ctx, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TopCountry), args.Error(1)
}

func (m *MockCountryRepository) UpsertCountry(ctx context.Context, country domain.Country) error {
	args := m.Called(ctx, country)
	return args.Error(0)
}

func (m *MockCountryRepository) DeleteCountryByName(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

// --- Mock StatusRepository ---
type MockStatusRepository struct {
	mock.Mock
}

func (m *MockStatusRepository) UpsertStatus(ctx context.Context, refreshedAt time.Time) error {
	args := m.Called(ctx, refreshedAt)
	return args.Error(0)
}

func (m *MockStatusRepository) FindStatus(ctx context.Context) (*domain.SystemStatus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SystemStatus), args.Error(1)
}

// --- Mock SummaryRenderer ---
type MockSummaryRenderer struct {
	mock.Mock
}

func (m *MockSummaryRenderer) Render(ctx context.Context, totalCountries int64, top []domain.TopCountry, refreshedAt time.Time) error {
	args := m.Called(ctx, totalCountries, top, refreshedAt)
	return args.Error(0)
}
