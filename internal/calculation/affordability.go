package calculation

import (
	"github.com/hdbplan/hdbplan/internal/domain"
	"github.com/shopspring/decimal"
)

// RequiredUpfront calculates the cash and CPF needed at purchase for a
// given price: the downpayment share not covered by the loan, stamp
// duty on the price, and legal fees on both the purchase and the
// mortgage.
func (c *Calculator) RequiredUpfront(price decimal.Decimal) decimal.Decimal {
	loanAmount := price.Mul(c.Policy.Loan.LTVLimit)
	fees := c.LegalFee(price).Add(c.LegalFee(loanAmount))
	return price.Sub(loanAmount).Add(c.StampDuty(price)).Add(fees)
}

// Affordability evaluates a target price against a loan envelope and
// projected savings. Two independent checks decide the verdict: the
// projected funds must cover the upfront cost, and the loan the price
// implies must fit inside the envelope. The monthly payment is quoted
// on the implied loan even when it exceeds the envelope, so callers
// can show what an out-of-reach flat would cost.
func (c *Calculator) Affordability(price decimal.Decimal, eligibility domain.LoanEligibility, projectedCPF, projectedCash decimal.Decimal) domain.AffordabilityResult {
	loanAmount := price.Mul(c.Policy.Loan.LTVLimit)
	stampDuty := c.StampDuty(price)
	legalFees := c.LegalFee(price).Add(c.LegalFee(loanAmount))

	requiredUpfront := price.Sub(loanAmount).Add(stampDuty).Add(legalFees)
	totalAvailable := projectedCPF.Add(projectedCash)

	canAffordUpfront := totalAvailable.GreaterThanOrEqual(requiredUpfront)
	canAffordLoan := loanAmount.LessThanOrEqual(eligibility.MaxLoanAmount)

	return domain.AffordabilityResult{
		TargetPrice:      price,
		StampDuty:        stampDuty,
		LegalFees:        legalFees,
		TotalCost:        price.Add(stampDuty).Add(legalFees),
		RequiredUpfront:  requiredUpfront,
		LoanAmount:       loanAmount,
		ProjectedCPF:     projectedCPF,
		ProjectedCash:    projectedCash,
		TotalAvailable:   totalAvailable,
		Gap:              requiredUpfront.Sub(totalAvailable),
		CanAffordUpfront: canAffordUpfront,
		CanAffordLoan:    canAffordLoan,
		CanAfford:        canAffordUpfront && canAffordLoan,
		MonthlyPayment:   MonthlyPayment(loanAmount, eligibility.InterestRate, eligibility.TenureYears),
	}
}
