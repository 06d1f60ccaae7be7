package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Country is the merged per-country record the service persists and serves.
// Optional fields are pointers; nil means the upstream source omitted them.
type Country struct {
	ID              int64            `json:"id"`
	Name            string           `json:"name"` // unique business key
	Capital         *string          `json:"capital"`
	Region          *string          `json:"region"`
	Population      int64            `json:"population"`
	CurrencyCode    *string          `json:"currencyCode"` // first currency of the source record
	ExchangeRate    *decimal.Decimal `json:"exchangeRate"` // nil when no currency or no known rate
	EstimatedGDP    GDP              `json:"estimatedGDP"`
	FlagURL         *string          `json:"flagURL"`
	LastRefreshedAt time.Time        `json:"lastRefreshedAt"`
}

// TopCountry is the projection used for the summary artifact. It is never
// persisted on its own.
type TopCountry struct {
	Name         string `json:"name"`
	EstimatedGDP GDP    `json:"estimatedGDP"`
	Population   int64  `json:"population"`
}

// ListFilter narrows and orders a country listing.
type ListFilter struct {
	Region       string
	CurrencyCode string
	Sort         SortOrder
}

// SortOrder selects the ordering of a country listing.
type SortOrder string

const (
	SortNameAsc        SortOrder = "name_asc"
	SortGDPDesc        SortOrder = "gdp_desc"
	SortGDPAsc         SortOrder = "gdp_asc"
	SortPopulationDesc SortOrder = "population_desc"
	SortPopulationAsc  SortOrder = "population_asc"
)
