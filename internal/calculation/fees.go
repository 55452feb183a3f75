package calculation

import (
	"github.com/hdbplan/hdbplan/internal/domain"
	"github.com/shopspring/decimal"
)

// TieredAmount applies an ordered rate schedule to an amount,
// consuming tier widths left to right until the amount is exhausted.
// A tier with non-positive width takes all remaining amount, which is
// how schedules express their final unbounded band.
func TieredAmount(amount decimal.Decimal, tiers []domain.RateTier) decimal.Decimal {
	if amount.LessThanOrEqual(decimalZero) {
		return decimalZero
	}

	total := decimalZero
	remaining := amount
	for _, tier := range tiers {
		if remaining.LessThanOrEqual(decimalZero) {
			break
		}
		slice := remaining
		if tier.Width.IsPositive() {
			slice = decimal.Min(remaining, tier.Width)
		}
		total = total.Add(slice.Mul(tier.Rate))
		remaining = remaining.Sub(slice)
	}
	return total
}

// StampDuty calculates the buyer's stamp duty on a purchase price.
// The bracketed sum is truncated to whole dollars and never falls
// below the statutory minimum for a positive price.
func (c *Calculator) StampDuty(price decimal.Decimal) decimal.Decimal {
	if price.LessThanOrEqual(decimalZero) {
		return decimalZero
	}

	duty := TieredAmount(price, c.Policy.StampDuty.Brackets).Floor()
	return decimal.Max(duty, c.Policy.StampDuty.MinimumDuty)
}

// LegalFee calculates the HDB conveyancing fee on an amount. The tier
// rates are quoted per $1,000; the summed fee rounds up to the next
// dollar before GST, and the GST-inclusive figure is floored at the
// schedule minimum.
func (c *Calculator) LegalFee(amount decimal.Decimal) decimal.Decimal {
	if amount.LessThanOrEqual(decimalZero) {
		return decimalZero
	}

	fee := TieredAmount(amount, c.Policy.LegalFees.Tiers).Div(decimalThousand).Ceil()
	fee = fee.Mul(decimalOne.Add(c.Policy.LegalFees.GSTRate))
	return decimal.Max(fee, c.Policy.LegalFees.MinimumFee)
}
