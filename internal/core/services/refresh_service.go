package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/country-insights/country_insights_app/internal/core/domain"
	"github.com/country-insights/country_insights_app/internal/core/ports/clients"
	portsrepo "github.com/country-insights/country_insights_app/internal/core/ports/repositories"
	"github.com/country-insights/country_insights_app/internal/dto"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// topCountriesCount is how many countries appear on the summary artifact.
const topCountriesCount = 5

// upsertConcurrency bounds how many per-country upserts run at once.
// Each upsert touches a disjoint row, so there is no shared state to guard.
const upsertConcurrency = 8

// RefreshService orchestrates one end-to-end refresh: fetch both external
// datasets concurrently, merge by currency code, derive the GDP indicator,
// upsert the batch plus the status singleton, recompute aggregates, and
// render the summary artifact.
type RefreshService struct {
	countrySource clients.CountrySource
	rateSource    clients.RateSource
	countryRepo   portsrepo.CountryRepositoryFacade
	statusRepo    portsrepo.StatusRepository
	renderer      clients.SummaryRenderer
	estimator     *GDPEstimator
}

// NewRefreshService creates a new RefreshService.
func NewRefreshService(
	countrySource clients.CountrySource,
	rateSource clients.RateSource,
	countryRepo portsrepo.CountryRepositoryFacade,
	statusRepo portsrepo.StatusRepository,
	renderer clients.SummaryRenderer,
	estimator *GDPEstimator,
) *RefreshService {
	return &RefreshService{
		countrySource: countrySource,
		rateSource:    rateSource,
		countryRepo:   countryRepo,
		statusRepo:    statusRepo,
		renderer:      renderer,
		estimator:     estimator,
	}
}

// RefreshCountries runs one refresh. A failed source fetch aborts before
// any write and surfaces as an apperrors.SourceError; failures past that
// point are internal. The per-country upserts have no cross-record
// transaction, so a failing batch may leave earlier writes committed; the
// run is safe to retry since every field is recomputed from scratch.
func (s *RefreshService) RefreshCountries(ctx context.Context) (*dto.RefreshResult, error) {
	// Both fetches are issued immediately and both are awaited; neither is
	// skipped when the other fails. Each source carries its own timeout.
	var (
		rawCountries []domain.RawCountry
		rates        domain.RateTable
	)
	var fetchGroup errgroup.Group
	fetchGroup.Go(func() error {
		var err error
		rawCountries, err = s.countrySource.FetchCountries(ctx)
		return err
	})
	fetchGroup.Go(func() error {
		var err error
		rates, err = s.rateSource.FetchRates(ctx)
		return err
	})
	if err := fetchGroup.Wait(); err != nil {
		return nil, fmt.Errorf("refresh aborted before persistence: %w", err)
	}

	// One timestamp for the whole batch; every merged record and the
	// status singleton carry the same value.
	refreshedAt := time.Now().UTC()

	merged := make([]domain.Country, len(rawCountries))
	for i, raw := range rawCountries {
		merged[i] = s.mergeCountry(raw, rates, refreshedAt)
	}

	if err := s.upsertBatch(ctx, merged); err != nil {
		return nil, err
	}

	if err := s.statusRepo.UpsertStatus(ctx, refreshedAt); err != nil {
		return nil, fmt.Errorf("failed to update system status: %w", err)
	}

	total, err := s.countryRepo.CountCountries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count countries: %w", err)
	}

	top, err := s.countryRepo.TopCountriesByGDP(ctx, topCountriesCount)
	if err != nil {
		return nil, fmt.Errorf("failed to load top countries: %w", err)
	}

	// The data refresh has already succeeded at this point, but a renderer
	// failure still fails the whole run (and is reported as internal, not
	// as a source error). The committed rows are kept.
	if err := s.renderer.Render(ctx, total, top, refreshedAt); err != nil {
		return nil, fmt.Errorf("failed to generate summary image: %w", err)
	}

	return &dto.RefreshResult{
		TotalCountries:  total,
		LastRefreshedAt: refreshedAt,
	}, nil
}

// mergeCountry joins one raw country with its currency's exchange rate and
// derives the GDP indicator. This never fails: every raw record produces
// exactly one merged record.
//
// The GDP states are distinct on purpose:
//   - no currency at all -> explicit zero
//   - currency present but no rate entry -> absent
//   - currency and rate present -> one estimator draw
func (s *RefreshService) mergeCountry(raw domain.RawCountry, rates domain.RateTable, refreshedAt time.Time) domain.Country {
	var currencyCode *string
	if len(raw.Currencies) > 0 {
		code := raw.Currencies[0].Code
		currencyCode = &code
	}

	var rate *decimal.Decimal
	if currencyCode != nil {
		rate = rates.Lookup(*currencyCode)
	}

	var gdp domain.GDP
	switch {
	case currencyCode == nil:
		gdp = domain.ZeroGDP()
	case rate == nil:
		gdp = domain.AbsentGDP()
	default:
		gdp = s.estimator.Estimate(raw.Population, rate)
	}

	return domain.Country{
		Name:            raw.Name,
		Capital:         raw.Capital,
		Region:          raw.Region,
		Population:      raw.Population,
		CurrencyCode:    currencyCode,
		ExchangeRate:    rate,
		EstimatedGDP:    gdp,
		FlagURL:         raw.FlagURL,
		LastRefreshedAt: refreshedAt,
	}
}

// upsertBatch writes every merged country, dispatching up to
// upsertConcurrency upserts at once and awaiting all of them. Outcomes
// are collected per record: any failure fails the refresh, and the error
// names which countries could not be written, since earlier successful
// writes are not rolled back.
func (s *RefreshService) upsertBatch(ctx context.Context, batch []domain.Country) error {
	var (
		mu       sync.Mutex
		failed   []string
		firstErr error
	)

	var group errgroup.Group
	group.SetLimit(upsertConcurrency)
	for _, country := range batch {
		group.Go(func() error {
			if err := s.countryRepo.UpsertCountry(ctx, country); err != nil {
				mu.Lock()
				failed = append(failed, country.Name)
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
			return nil
		})
	}
	_ = group.Wait()

	if len(failed) > 0 {
		sort.Strings(failed)
		return fmt.Errorf("failed to upsert countries [%s]: %w", strings.Join(failed, ", "), firstErr)
	}
	return nil
}
