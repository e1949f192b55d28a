// AngelaMos | 2026
// yield.go

// Package yield derives rental-yield metrics from a purchase price and a
// monthly rent. Pure arithmetic, no storage access.
package yield

import (
	"errors"
	"math"
)

var ErrNonPositiveInput = errors.New(
	"yield: price and monthly rent must be positive",
)

const monthsPerYear = 12

type Metrics struct {
	AnnualRent        float64 `json:"annual_rent"`
	YieldPercent      float64 `json:"rental_yield_percent"`
	YearsToCoverPrice float64 `json:"years_to_cover_price"`
}

// Compute returns annualized rent, the yield percentage rounded to two
// decimal places, and the unrounded years-to-cover-price ratio. Inputs must
// be positive; callers exclude properties that cannot satisfy that rather
// than passing zeroes through.
func Compute(price, monthlyRent float64) (Metrics, error) {
	if price <= 0 || monthlyRent <= 0 {
		return Metrics{}, ErrNonPositiveInput
	}

	annualRent := monthlyRent * monthsPerYear

	return Metrics{
		AnnualRent:        annualRent,
		YieldPercent:      round2(annualRent / price * 100),
		YearsToCoverPrice: price / annualRent,
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
