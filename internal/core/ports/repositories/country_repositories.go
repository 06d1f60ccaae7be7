package repositories

import (
	"context"

	"github.com/country-insights/country_insights_app/internal/core/domain"
)

// CountryReader defines read operations for country data
type CountryReader interface {
	// FindCountryByName retrieves a specific country by its unique name.
	FindCountryByName(ctx context.Context, name string) (*domain.Country, error)

	// ListCountries retrieves countries matching the filter, in its ordering.
	ListCountries(ctx context.Context, filter domain.ListFilter) ([]domain.Country, error)

	// CountCountries returns the number of persisted countries.
	CountCountries(ctx context.Context) (int64, error)

	// TopCountriesByGDP returns up to n countries ordered by estimated GDP
	// descending. Absent GDP sorts after all present values; ties break by
	// name ascending.
	TopCountriesByGDP(ctx context.Context, n int) ([]domain.TopCountry, error)
}

// CountryWriter defines write operations for country data
type CountryWriter interface {
	// UpsertCountry inserts the country or, when one with the same name
	// already exists, overwrites every refreshed field in place.
	UpsertCountry(ctx context.Context, country domain.Country) error

	// DeleteCountryByName removes a country; apperrors.ErrNotFound when absent.
	DeleteCountryByName(ctx context.Context, name string) error
}

// CountryRepositoryFacade combines all country-related repository interfaces
type CountryRepositoryFacade interface {
	CountryReader
	CountryWriter
}
