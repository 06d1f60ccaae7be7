package repositories

import (
	"context"
	"time"

	"github.com/country-insights/country_insights_app/internal/core/domain"
)

// StatusRepository manages the singleton system status record.
type StatusRepository interface {
	// UpsertStatus creates the status row on first refresh and overwrites
	// its timestamp on every subsequent one.
	UpsertStatus(ctx context.Context, refreshedAt time.Time) error

	// FindStatus retrieves the status row; apperrors.ErrNotFound before the
	// first successful refresh.
	FindStatus(ctx context.Context) (*domain.SystemStatus, error)
}
