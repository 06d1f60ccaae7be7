package pgsql

import "github.com/jackc/pgx/v5/pgxpool"

// BaseRepository provides the shared connection pool for all repositories.
// The store deliberately offers no cross-record transaction: refresh
// batches are independent single-row upserts.
type BaseRepository struct {
	Pool *pgxpool.Pool
}
