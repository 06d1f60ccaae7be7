package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Country is the database row shape for the countries table.
// Nullable columns use pointers / NullDecimal so that "absent" survives the
// round trip to Postgres as NULL.
type Country struct {
	ID              int64               `json:"id"`
	Name            string              `json:"name"` // UNIQUE
	Capital         *string             `json:"capital"`
	Region          *string             `json:"region"`
	Population      int64               `json:"population"`
	CurrencyCode    *string             `json:"currencyCode"`
	ExchangeRate    decimal.NullDecimal `json:"exchangeRate"`
	EstimatedGDP    decimal.NullDecimal `json:"estimatedGDP"`
	FlagURL         *string             `json:"flagURL"`
	LastRefreshedAt time.Time           `json:"lastRefreshedAt"`
}
