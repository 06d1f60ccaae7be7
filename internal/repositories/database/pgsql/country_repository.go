package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/country-insights/country_insights_app/internal/apperrors"
	"github.com/country-insights/country_insights_app/internal/core/domain"
	portsrepo "github.com/country-insights/country_insights_app/internal/core/ports/repositories"
	"github.com/country-insights/country_insights_app/internal/models"
	"github.com/country-insights/country_insights_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCountryRepository struct {
	BaseRepository
}

// newPgxCountryRepository creates a new repository for country data.
func newPgxCountryRepository(pool *pgxpool.Pool) portsrepo.CountryRepositoryFacade {
	return &PgxCountryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CountryRepositoryFacade = (*PgxCountryRepository)(nil)

const countryColumns = `id, name, capital, region, population, currency_code, exchange_rate, estimated_gdp, flag_url, last_refreshed_at`

// UpsertCountry inserts a country or, keyed by name, overwrites every
// refreshed field of the existing row in place.
func (r *PgxCountryRepository) UpsertCountry(ctx context.Context, country domain.Country) error {
	modelCountry := mapping.ToModelCountry(country)

	query := `
		INSERT INTO countries (name, capital, region, population, currency_code, exchange_rate, estimated_gdp, flag_url, last_refreshed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (name) DO UPDATE SET
			capital = EXCLUDED.capital,
			region = EXCLUDED.region,
			population = EXCLUDED.population,
			currency_code = EXCLUDED.currency_code,
			exchange_rate = EXCLUDED.exchange_rate,
			estimated_gdp = EXCLUDED.estimated_gdp,
			flag_url = EXCLUDED.flag_url,
			last_refreshed_at = EXCLUDED.last_refreshed_at;
	`

	_, err := r.Pool.Exec(ctx, query,
		modelCountry.Name,
		modelCountry.Capital,
		modelCountry.Region,
		modelCountry.Population,
		modelCountry.CurrencyCode,
		modelCountry.ExchangeRate,
		modelCountry.EstimatedGDP,
		modelCountry.FlagURL,
		modelCountry.LastRefreshedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to upsert country %s: %w", modelCountry.Name, err)
	}
	return nil
}

// FindCountryByName retrieves a country by its unique name.
func (r *PgxCountryRepository) FindCountryByName(ctx context.Context, name string) (*domain.Country, error) {
	query := `SELECT ` + countryColumns + ` FROM countries WHERE name = $1;`

	var modelCountry models.Country
	err := r.Pool.QueryRow(ctx, query, name).Scan(
		&modelCountry.ID,
		&modelCountry.Name,
		&modelCountry.Capital,
		&modelCountry.Region,
		&modelCountry.Population,
		&modelCountry.CurrencyCode,
		&modelCountry.ExchangeRate,
		&modelCountry.EstimatedGDP,
		&modelCountry.FlagURL,
		&modelCountry.LastRefreshedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find country by name %s: %w", name, err)
	}

	domainCountry := mapping.ToDomainCountry(modelCountry)
	return &domainCountry, nil
}

// ListCountries retrieves countries matching the filter, in its ordering.
func (r *PgxCountryRepository) ListCountries(ctx context.Context, filter domain.ListFilter) ([]domain.Country, error) {
	query := `SELECT ` + countryColumns + ` FROM countries`

	var args []any
	if filter.Region != "" {
		args = append(args, filter.Region)
		query += fmt.Sprintf(" WHERE region = $%d", len(args))
	}
	if filter.CurrencyCode != "" {
		args = append(args, filter.CurrencyCode)
		if len(args) == 1 {
			query += fmt.Sprintf(" WHERE currency_code = $%d", len(args))
		} else {
			query += fmt.Sprintf(" AND currency_code = $%d", len(args))
		}
	}
	query += " ORDER BY " + orderClause(filter.Sort) + ";"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query countries: %w", err)
	}
	defer rows.Close()

	modelCountries, err := pgx.CollectRows(rows, scanCountry)
	if err != nil {
		return nil, fmt.Errorf("failed to scan countries: %w", err)
	}

	return mapping.ToDomainCountrySlice(modelCountries), nil
}

// orderClause maps a sort order to SQL. Nullable sort keys always place
// NULLs after every present value, with name ascending as the stable
// tie-break.
func orderClause(sort domain.SortOrder) string {
	switch sort {
	case domain.SortGDPDesc:
		return "estimated_gdp DESC NULLS LAST, name ASC"
	case domain.SortGDPAsc:
		return "estimated_gdp ASC NULLS LAST, name ASC"
	case domain.SortPopulationDesc:
		return "population DESC, name ASC"
	case domain.SortPopulationAsc:
		return "population ASC, name ASC"
	default:
		return "name ASC"
	}
}

func scanCountry(row pgx.CollectableRow) (models.Country, error) {
	var country models.Country
	err := row.Scan(
		&country.ID,
		&country.Name,
		&country.Capital,
		&country.Region,
		&country.Population,
		&country.CurrencyCode,
		&country.ExchangeRate,
		&country.EstimatedGDP,
		&country.FlagURL,
		&country.LastRefreshedAt,
	)
	return country, err
}

// CountCountries returns the number of persisted countries.
func (r *PgxCountryRepository) CountCountries(ctx context.Context) (int64, error) {
	var count int64
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM countries;`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count countries: %w", err)
	}
	return count, nil
}

// TopCountriesByGDP returns up to n countries ordered by estimated GDP
// descending, NULLs (absent GDP) after all present values, ties broken by
// name ascending.
func (r *PgxCountryRepository) TopCountriesByGDP(ctx context.Context, n int) ([]domain.TopCountry, error) {
	query := `
		SELECT name, estimated_gdp, population
		FROM countries
		ORDER BY estimated_gdp DESC NULLS LAST, name ASC
		LIMIT $1;
	`
	rows, err := r.Pool.Query(ctx, query, n)
	if err != nil {
		return nil, fmt.Errorf("failed to query top countries: %w", err)
	}
	defer rows.Close()

	top, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.TopCountry, error) {
		var country models.Country
		if err := row.Scan(&country.Name, &country.EstimatedGDP, &country.Population); err != nil {
			return domain.TopCountry{}, err
		}
		return domain.TopCountry{
			Name:         country.Name,
			EstimatedGDP: domain.GDPFromNullDecimal(country.EstimatedGDP),
			Population:   country.Population,
		}, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan top countries: %w", err)
	}
	return top, nil
}

// DeleteCountryByName removes a country by its unique name.
func (r *PgxCountryRepository) DeleteCountryByName(ctx context.Context, name string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM countries WHERE name = $1;`, name)
	if err != nil {
		return fmt.Errorf("failed to delete country %s: %w", name, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
