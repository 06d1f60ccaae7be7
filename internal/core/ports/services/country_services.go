package services

import (
	"context"

	"github.com/country-insights/country_insights_app/internal/core/domain"
	"github.com/country-insights/country_insights_app/internal/dto"
)

// CountryReaderSvc defines read operations for country data
type CountryReaderSvc interface {
	// GetCountryByName retrieves a specific country by its name.
	GetCountryByName(ctx context.Context, name string) (*domain.Country, error)

	// ListCountries retrieves countries matching the filter.
	ListCountries(ctx context.Context, filter domain.ListFilter) ([]domain.Country, error)
}

// CountryWriterSvc defines write operations for country data
type CountryWriterSvc interface {
	// DeleteCountryByName removes a country by its name.
	DeleteCountryByName(ctx context.Context, name string) error
}

// CountrySvcFacade combines all country-related service interfaces
type CountrySvcFacade interface {
	CountryReaderSvc
	CountryWriterSvc
}

// RefreshSvc drives one end-to-end refresh: concurrent source fetches,
// merge and GDP derivation, persistence, aggregation, and summary
// artifact generation.
type RefreshSvc interface {
	RefreshCountries(ctx context.Context) (*dto.RefreshResult, error)
}

// StatusSvc reports the system status (count plus last refresh time).
type StatusSvc interface {
	GetSystemStatus(ctx context.Context) (dto.StatusResponse, error)
}
