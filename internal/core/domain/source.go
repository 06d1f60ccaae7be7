package domain

import "github.com/shopspring/decimal"

// RawCountry is a country record as returned by the metadata source,
// before merging with exchange rates. A country may legitimately have
// zero currencies.
type RawCountry struct {
	Name       string
	Capital    *string
	Region     *string
	Population int64
	FlagURL    *string
	Currencies []CurrencyDescriptor
}

// CurrencyDescriptor describes one currency of a RawCountry.
type CurrencyDescriptor struct {
	Code   string
	Name   string
	Symbol string
}

// RateTable maps currency codes to their rate relative to a fixed base
// currency. The table may be partial: not every currency appearing in
// country metadata need have an entry.
type RateTable struct {
	BaseCode string
	Rates    map[string]decimal.Decimal
}

// Lookup returns the rate for code, or nil when the table has no entry.
func (t RateTable) Lookup(code string) *decimal.Decimal {
	rate, ok := t.Rates[code]
	if !ok {
		return nil
	}
	return &rate
}
