package services

import (
	"math/rand/v2"

	"github.com/country-insights/country_insights_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// GDPEstimator derives the estimated GDP indicator from a country's
// population and its currency's exchange rate. The derivation applies a
// single uniformly distributed multiplier in [1000, 2000), so results are
// deliberately non-reproducible across refreshes. The random source is
// injectable so tests can pin the draw.
type GDPEstimator struct {
	randFloat func() float64 // uniform draw in [0, 1)
}

// NewGDPEstimator creates an estimator backed by the process-wide random source.
func NewGDPEstimator() *GDPEstimator {
	return &GDPEstimator{randFloat: rand.Float64}
}

// NewGDPEstimatorWithSource creates an estimator with a custom random source.
// randFloat must return values in [0, 1).
func NewGDPEstimatorWithSource(randFloat func() float64) *GDPEstimator {
	return &GDPEstimator{randFloat: randFloat}
}

// Estimate computes population * m / rate with one multiplier draw
// m in [1000, 2000). The result is absent when the rate is nil or zero
// (rate unavailable, distinct from a computed zero) or when the
// population is not positive. Callers must invoke this at most once per
// country per refresh so a record carries exactly one draw.
func (e *GDPEstimator) Estimate(population int64, rate *decimal.Decimal) domain.GDP {
	if rate == nil || rate.IsZero() {
		return domain.AbsentGDP()
	}
	if population <= 0 {
		return domain.AbsentGDP()
	}

	multiplier := decimal.NewFromFloat(1000 + e.randFloat()*1000)

	return domain.GDPOf(decimal.NewFromInt(population).Mul(multiplier).Div(*rate))
}
