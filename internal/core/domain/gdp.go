package domain

import "github.com/shopspring/decimal"

// GDP is the derived economic indicator of a country. It is deliberately
// tri-state: a computed value, an explicit zero, or absent. The states
// encode different facts about the source data and must not be collapsed:
//
//   - explicit zero: the country has no currency at all
//   - absent: the country has a currency but no known exchange rate
//   - value: computed from population and the currency's exchange rate
//
// Absent serialises as NULL, explicit zero as 0.
type GDP struct {
	value   decimal.Decimal
	present bool
}

// GDPOf returns a GDP holding a computed value.
func GDPOf(v decimal.Decimal) GDP {
	return GDP{value: v, present: true}
}

// ZeroGDP returns the explicit-zero GDP assigned to countries without a currency.
func ZeroGDP() GDP {
	return GDP{value: decimal.Zero, present: true}
}

// AbsentGDP returns the no-value state assigned when a currency has no known rate.
func AbsentGDP() GDP {
	return GDP{}
}

// Value returns the held amount and whether one is present.
func (g GDP) Value() (decimal.Decimal, bool) {
	return g.value, g.present
}

// IsAbsent reports whether no value is held (currency without a rate).
func (g GDP) IsAbsent() bool {
	return !g.present
}

// NullDecimal converts the GDP into its storage representation,
// mapping absent to an invalid NullDecimal.
func (g GDP) NullDecimal() decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: g.value, Valid: g.present}
}

// GDPFromNullDecimal reconstructs a GDP from its storage representation.
func GDPFromNullDecimal(d decimal.NullDecimal) GDP {
	return GDP{value: d.Decimal, present: d.Valid}
}
