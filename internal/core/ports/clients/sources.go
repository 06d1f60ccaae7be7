package clients

import (
	"context"
	"time"

	"github.com/country-insights/country_insights_app/internal/core/domain"
)

// CountrySource fetches country metadata from an upstream provider.
// A failed call returns an apperrors.SourceError naming the provider.
type CountrySource interface {
	FetchCountries(ctx context.Context) ([]domain.RawCountry, error)
}

// RateSource fetches the current exchange rate table from an upstream
// provider. A failed or structurally invalid response returns an
// apperrors.SourceError naming the provider.
type RateSource interface {
	FetchRates(ctx context.Context) (domain.RateTable, error)
}

// SummaryRenderer produces the refresh summary artifact at a known path.
type SummaryRenderer interface {
	Render(ctx context.Context, totalCountries int64, top []domain.TopCountry, refreshedAt time.Time) error
}
