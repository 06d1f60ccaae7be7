package services

import (
	"context"
	"fmt"

	"github.com/country-insights/country_insights_app/internal/core/domain"
	portsrepo "github.com/country-insights/country_insights_app/internal/core/ports/repositories"
)

// CountryService provides read and delete operations over persisted countries.
type CountryService struct {
	countryRepo portsrepo.CountryRepositoryFacade
}

// NewCountryService creates a new CountryService.
func NewCountryService(countryRepo portsrepo.CountryRepositoryFacade) *CountryService {
	return &CountryService{countryRepo: countryRepo}
}

// GetCountryByName retrieves a country by its unique name.
func (s *CountryService) GetCountryByName(ctx context.Context, name string) (*domain.Country, error) {
	country, err := s.countryRepo.FindCountryByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get country by name in service: %w", err)
	}
	return country, nil
}

// ListCountries retrieves countries matching the filter.
func (s *CountryService) ListCountries(ctx context.Context, filter domain.ListFilter) ([]domain.Country, error) {
	countries, err := s.countryRepo.ListCountries(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list countries in service: %w", err)
	}
	// Return empty slice if no countries found, not nil
	if countries == nil {
		return []domain.Country{}, nil
	}
	return countries, nil
}

// DeleteCountryByName removes a country by its unique name.
func (s *CountryService) DeleteCountryByName(ctx context.Context, name string) error {
	if err := s.countryRepo.DeleteCountryByName(ctx, name); err != nil {
		return fmt.Errorf("failed to delete country in service: %w", err)
	}
	return nil
}
