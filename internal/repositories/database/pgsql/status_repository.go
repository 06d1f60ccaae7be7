package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/country-insights/country_insights_app/internal/apperrors"
	"github.com/country-insights/country_insights_app/internal/core/domain"
	portsrepo "github.com/country-insights/country_insights_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// statusRowID is the fixed identity of the singleton status row.
const statusRowID = 1

type PgxStatusRepository struct {
	BaseRepository
}

// newPgxStatusRepository creates a repository for the system status singleton.
func newPgxStatusRepository(pool *pgxpool.Pool) portsrepo.StatusRepository {
	return &PgxStatusRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.StatusRepository = (*PgxStatusRepository)(nil)

// UpsertStatus creates the status row on first refresh and overwrites its
// timestamp on every subsequent one.
func (r *PgxStatusRepository) UpsertStatus(ctx context.Context, refreshedAt time.Time) error {
	query := `
		INSERT INTO system_status (id, last_refreshed_at)
		VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET
			last_refreshed_at = EXCLUDED.last_refreshed_at;
	`
	_, err := r.Pool.Exec(ctx, query, statusRowID, refreshedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert system status: %w", err)
	}
	return nil
}

// FindStatus retrieves the singleton status row.
func (r *PgxStatusRepository) FindStatus(ctx context.Context) (*domain.SystemStatus, error) {
	query := `SELECT last_refreshed_at FROM system_status WHERE id = $1;`

	var status domain.SystemStatus
	err := r.Pool.QueryRow(ctx, query, statusRowID).Scan(&status.LastRefreshedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find system status: %w", err)
	}
	return &status, nil
}
