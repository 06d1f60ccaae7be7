package pgsql

import (
	portsrepo "github.com/country-insights/country_insights_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CountryRepo: newPgxCountryRepository(dbPool),
		StatusRepo:  newPgxStatusRepository(dbPool),
	}
}
