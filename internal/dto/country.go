package dto

import (
	"time"

	"github.com/country-insights/country_insights_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ListCountriesQuery holds the supported query parameters for GET /countries.
type ListCountriesQuery struct {
	Region   string `form:"region"`
	Currency string `form:"currency"`
	Sort     string `form:"sort" binding:"omitempty,oneof=gdp_desc gdp_asc population_desc population_asc name_asc"`
}

// Filter converts the query into a domain list filter.
func (q ListCountriesQuery) Filter() domain.ListFilter {
	sort := domain.SortNameAsc
	switch q.Sort {
	case "gdp_desc":
		sort = domain.SortGDPDesc
	case "gdp_asc":
		sort = domain.SortGDPAsc
	case "population_desc":
		sort = domain.SortPopulationDesc
	case "population_asc":
		sort = domain.SortPopulationAsc
	}
	return domain.ListFilter{
		Region:       q.Region,
		CurrencyCode: q.Currency,
		Sort:         sort,
	}
}

// CountryResponse is the wire shape of a single country.
type CountryResponse struct {
	ID              int64            `json:"id"`
	Name            string           `json:"name"`
	Capital         *string          `json:"capital"`
	Region          *string          `json:"region"`
	Population      int64            `json:"population"`
	CurrencyCode    *string          `json:"currency_code"`
	ExchangeRate    *decimal.Decimal `json:"exchange_rate"`
	EstimatedGDP    *decimal.Decimal `json:"estimated_gdp"`
	FlagURL         *string          `json:"flag_url"`
	LastRefreshedAt string           `json:"last_refreshed_at"`
}

// ToCountryResponse converts a domain Country to its wire shape.
// An absent estimated GDP serialises as null, an explicit zero as 0.
func ToCountryResponse(c *domain.Country) CountryResponse {
	var gdp *decimal.Decimal
	if v, ok := c.EstimatedGDP.Value(); ok {
		gdp = &v
	}
	return CountryResponse{
		ID:              c.ID,
		Name:            c.Name,
		Capital:         c.Capital,
		Region:          c.Region,
		Population:      c.Population,
		CurrencyCode:    c.CurrencyCode,
		ExchangeRate:    c.ExchangeRate,
		EstimatedGDP:    gdp,
		FlagURL:         c.FlagURL,
		LastRefreshedAt: c.LastRefreshedAt.UTC().Format(time.RFC3339Nano),
	}
}

// ToListCountryResponse converts a slice of domain Countries to wire shapes.
func ToListCountryResponse(countries []domain.Country) []CountryResponse {
	res := make([]CountryResponse, len(countries))
	for i := range countries {
		res[i] = ToCountryResponse(&countries[i])
	}
	return res
}
