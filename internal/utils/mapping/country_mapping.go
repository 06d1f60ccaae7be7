package mapping

import (
	"github.com/country-insights/country_insights_app/internal/core/domain"
	"github.com/country-insights/country_insights_app/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelCountry converts a domain Country to its database row shape.
func ToModelCountry(d domain.Country) models.Country {
	var rate decimal.NullDecimal
	if d.ExchangeRate != nil {
		rate = decimal.NullDecimal{Decimal: *d.ExchangeRate, Valid: true}
	}
	return models.Country{
		ID:              d.ID,
		Name:            d.Name,
		Capital:         d.Capital,
		Region:          d.Region,
		Population:      d.Population,
		CurrencyCode:    d.CurrencyCode,
		ExchangeRate:    rate,
		EstimatedGDP:    d.EstimatedGDP.NullDecimal(),
		FlagURL:         d.FlagURL,
		LastRefreshedAt: d.LastRefreshedAt,
	}
}

// ToDomainCountry converts a database row to a domain Country.
func ToDomainCountry(m models.Country) domain.Country {
	var rate *decimal.Decimal
	if m.ExchangeRate.Valid {
		r := m.ExchangeRate.Decimal
		rate = &r
	}
	return domain.Country{
		ID:              m.ID,
		Name:            m.Name,
		Capital:         m.Capital,
		Region:          m.Region,
		Population:      m.Population,
		CurrencyCode:    m.CurrencyCode,
		ExchangeRate:    rate,
		EstimatedGDP:    domain.GDPFromNullDecimal(m.EstimatedGDP),
		FlagURL:         m.FlagURL,
		LastRefreshedAt: m.LastRefreshedAt,
	}
}

// ToDomainCountrySlice converts a slice of rows to domain Countries.
func ToDomainCountrySlice(ms []models.Country) []domain.Country {
	ds := make([]domain.Country, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCountry(m)
	}
	return ds
}
