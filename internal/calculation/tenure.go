package calculation

import (
	"github.com/hdbplan/hdbplan/internal/domain"
	"github.com/shopspring/decimal"
)

// Representative tenures charted in the planning view.
var keyTenures = []int{10, 15, 20, 25}

// AnalyzeTenure calculates the cost profile of repaying a loan over
// one tenure. Interest saved is measured against the policy's maximum
// tenure; the payment buffer is headroom under the ceiling and goes
// negative when the installment does not fit.
func (c *Calculator) AnalyzeTenure(loanAmount decimal.Decimal, tenureYears int, paymentCeiling, annualRate decimal.Decimal) domain.TenureAnalysis {
	payment := MonthlyPayment(loanAmount, annualRate, tenureYears)
	totalInterest := TotalInterest(loanAmount, annualRate, tenureYears)
	interestAtMax := TotalInterest(loanAmount, annualRate, c.Policy.Loan.MaxTenureYears)

	return domain.TenureAnalysis{
		TenureYears:    tenureYears,
		MonthlyPayment: payment,
		TotalInterest:  totalInterest,
		TotalCost:      loanAmount.Add(totalInterest),
		InterestSaved:  interestAtMax.Sub(totalInterest),
		PaymentBuffer:  paymentCeiling.Sub(payment),
		IsAffordable:   payment.LessThanOrEqual(paymentCeiling),
	}
}

// ShortestTenure scans the policy's tenure range from the bottom and
// returns the first tenure whose installment fits under the ceiling
// less the comfort buffer. The returned analysis is measured against
// that reduced ceiling. Nil means no tenure in range qualifies; that
// is an answer, not an error.
func (c *Calculator) ShortestTenure(loanAmount, paymentCeiling, comfortBuffer, annualRate decimal.Decimal) *domain.TenureAnalysis {
	effectiveCeiling := paymentCeiling.Sub(comfortBuffer)

	for tenure := c.Policy.Loan.MinTenureYears; tenure <= c.Policy.Loan.MaxTenureYears; tenure++ {
		analysis := c.AnalyzeTenure(loanAmount, tenure, effectiveCeiling, annualRate)
		if analysis.IsAffordable {
			return &analysis
		}
	}
	return nil
}

// TenureTable calculates the full tenure comparison across the policy
// range, one row per year, without the early exit ShortestTenure
// takes.
func (c *Calculator) TenureTable(loanAmount, paymentCeiling, annualRate decimal.Decimal) []domain.TenureAnalysis {
	table := make([]domain.TenureAnalysis, 0, c.Policy.Loan.MaxTenureYears-c.Policy.Loan.MinTenureYears+1)
	for tenure := c.Policy.Loan.MinTenureYears; tenure <= c.Policy.Loan.MaxTenureYears; tenure++ {
		table = append(table, c.AnalyzeTenure(loanAmount, tenure, paymentCeiling, annualRate))
	}
	return table
}

// KeyTenureTable calculates rows for a handful of representative
// tenures rather than the whole range. A nil tenure list uses the
// standard set plus the policy maximum; tenures outside the policy
// range and duplicates are skipped.
func (c *Calculator) KeyTenureTable(loanAmount, paymentCeiling, annualRate decimal.Decimal, tenures []int) []domain.TenureAnalysis {
	if len(tenures) == 0 {
		tenures = append(append([]int(nil), keyTenures...), c.Policy.Loan.MaxTenureYears)
	}

	seen := make(map[int]bool, len(tenures))
	table := make([]domain.TenureAnalysis, 0, len(tenures))
	for _, tenure := range tenures {
		if tenure < c.Policy.Loan.MinTenureYears || tenure > c.Policy.Loan.MaxTenureYears || seen[tenure] {
			continue
		}
		seen[tenure] = true
		table = append(table, c.AnalyzeTenure(loanAmount, tenure, paymentCeiling, annualRate))
	}
	return table
}
