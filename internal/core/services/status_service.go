package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/country-insights/country_insights_app/internal/apperrors"
	portsrepo "github.com/country-insights/country_insights_app/internal/core/ports/repositories"
	"github.com/country-insights/country_insights_app/internal/dto"
)

// StatusService reports the total country count and the timestamp of the
// most recent successful refresh.
type StatusService struct {
	countryRepo portsrepo.CountryReader
	statusRepo  portsrepo.StatusRepository
}

// NewStatusService creates a new StatusService.
func NewStatusService(countryRepo portsrepo.CountryReader, statusRepo portsrepo.StatusRepository) *StatusService {
	return &StatusService{countryRepo: countryRepo, statusRepo: statusRepo}
}

// GetSystemStatus returns the current system status. Before the first
// successful refresh there is no status row; the timestamp is then null.
func (s *StatusService) GetSystemStatus(ctx context.Context) (dto.StatusResponse, error) {
	total, err := s.countryRepo.CountCountries(ctx)
	if err != nil {
		return dto.StatusResponse{}, fmt.Errorf("failed to count countries in service: %w", err)
	}

	var refreshedAt *time.Time
	status, err := s.statusRepo.FindStatus(ctx)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return dto.StatusResponse{}, fmt.Errorf("failed to get system status in service: %w", err)
		}
	} else {
		refreshedAt = &status.LastRefreshedAt
	}

	return dto.NewStatusResponse(total, refreshedAt), nil
}
