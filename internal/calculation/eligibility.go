package calculation

import (
	"github.com/hdbplan/hdbplan/internal/domain"
	"github.com/shopspring/decimal"
)

// EligibilityAt calculates the loan envelope for a household income at
// an explicit tenure and interest rate. The installment capacity is
// the MSR share of gross income less existing commitments, clamped at
// zero; the capacity drives the maximum loan, and the LTV limit turns
// that into a maximum flat price. Exceeding the income ceiling is
// reported as a flag and does not block the computation. Negative
// income is the caller's problem; this layer does not validate it.
func (c *Calculator) EligibilityAt(income decimal.Decimal, commitments domain.Commitments, tenureYears int, annualRate decimal.Decimal) domain.LoanEligibility {
	totalCommitments := commitments.Total()

	capacity := income.Mul(c.Policy.Loan.MSRLimit).Sub(totalCommitments)
	if capacity.IsNegative() {
		capacity = decimalZero
	}

	maxLoan := MaxPrincipal(capacity, annualRate, tenureYears)

	maxPrice := decimalZero
	if c.Policy.Loan.LTVLimit.IsPositive() {
		maxPrice = maxLoan.Div(c.Policy.Loan.LTVLimit)
	}

	return domain.LoanEligibility{
		MaxMonthlyInstallment: capacity,
		MaxLoanAmount:         maxLoan,
		MaxFlatPrice:          maxPrice,
		TenureYears:           tenureYears,
		InterestRate:          annualRate,
		AvailableCapacity:     capacity,
		TotalCommitments:      totalCommitments,
		ExceedsIncomeCeiling:  income.GreaterThan(c.Policy.Loan.IncomeCeiling),
	}
}

// Eligibility calculates the loan envelope at the policy's maximum
// tenure and standard interest rate.
func (c *Calculator) Eligibility(income decimal.Decimal, commitments domain.Commitments) domain.LoanEligibility {
	return c.EligibilityAt(income, commitments, c.Policy.Loan.MaxTenureYears, c.Policy.Loan.InterestRate)
}
