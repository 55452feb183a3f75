package calculation

import (
	"github.com/hdbplan/hdbplan/internal/domain"
	"github.com/shopspring/decimal"
)

const maxPriceSearchIterations = 50

// Convergence tolerance in dollars for the upfront-cost search.
var priceSearchTolerance = decimalHundred

// MaxAffordablePrice finds the highest flat price whose upfront cost
// the available funds can cover, capped by the loan envelope's price
// ceiling. RequiredUpfront is monotonically non-decreasing in price
// but piecewise because of the tiered duty and fee schedules, so the
// inversion runs as a bounded binary search. Each midpoint the funds
// can cover is recorded; if the iteration cap runs out before the
// tolerance is met, the last covered midpoint stands. Monotonicity
// makes that the best feasible lower bound.
func (c *Calculator) MaxAffordablePrice(eligibility domain.LoanEligibility, availableFunds decimal.Decimal) decimal.Decimal {
	low := decimalZero
	high := eligibility.MaxFlatPrice.Mul(decimalTwo)
	best := decimalZero

	for i := 0; i < maxPriceSearchIterations; i++ {
		mid := low.Add(high).Div(decimalTwo)
		diff := c.RequiredUpfront(mid).Sub(availableFunds)

		if diff.Abs().LessThan(priceSearchTolerance) {
			best = mid
			break
		}
		if diff.IsPositive() {
			high = mid
		} else {
			best = mid
			low = mid
		}
	}

	return decimal.Min(eligibility.MaxFlatPrice, best)
}
