package calculation

import (
	"time"

	"github.com/hdbplan/hdbplan/internal/domain"
)

// SavingsSeries projects the household's combined balances month by
// month from now, one point per month starting at month zero. Both
// pools accumulate linearly here; the chart series skips OA interest
// so adjacent points stay directly comparable.
func (c *Calculator) SavingsSeries(household *domain.Household, now time.Time, months int) []domain.SavingsPoint {
	if months < 0 {
		months = 0
	}

	series := make([]domain.SavingsPoint, 0, months+1)
	for m := 0; m <= months; m++ {
		target := now.AddDate(0, m, 0)

		cpf := decimalZero
		cash := decimalZero
		for _, applicant := range household.Applicants {
			working := ContributionMonths(applicant.EmploymentStart, now, target)
			monthlyCPF := c.MonthlyCPFContribution(applicant.GrossIncome, applicant.Age)
			cpf = cpf.Add(ProjectLinear(applicant.CPFOABalance, monthlyCPF, working))
			cash = cash.Add(ProjectLinear(applicant.CashSavings, applicant.MonthlyCashSavings, working))
		}

		series = append(series, domain.SavingsPoint{
			Month: m,
			Date:  target,
			CPFOA: cpf,
			Cash:  cash,
			Total: cpf.Add(cash),
		})
	}
	return series
}

// AffordablePriceSeries calculates the maximum affordable flat price
// for each month as savings accumulate, up to the loan-limited
// ceiling. Uses the same linear accumulation as SavingsSeries.
func (c *Calculator) AffordablePriceSeries(household *domain.Household, eligibility domain.LoanEligibility, now time.Time, months int) []domain.AffordablePricePoint {
	if months < 0 {
		months = 0
	}

	series := make([]domain.AffordablePricePoint, 0, months+1)
	for m := 0; m <= months; m++ {
		target := now.AddDate(0, m, 0)

		total := decimalZero
		for _, applicant := range household.Applicants {
			working := ContributionMonths(applicant.EmploymentStart, now, target)
			monthlyCPF := c.MonthlyCPFContribution(applicant.GrossIncome, applicant.Age)
			total = total.Add(ProjectLinear(applicant.CPFOABalance, monthlyCPF, working))
			total = total.Add(ProjectLinear(applicant.CashSavings, applicant.MonthlyCashSavings, working))
		}

		series = append(series, domain.AffordablePricePoint{
			Month:    m,
			Date:     target,
			MaxPrice: c.MaxAffordablePrice(eligibility, total),
		})
	}
	return series
}

// FirstAffordableMonth scans forward month by month for the first
// point at which the household's projected funds cover the target
// price's upfront cost. CPF compounds here, matching the completion
// projection rather than the chart series. The loan check does not
// vary by month, so a target whose loan exceeds the envelope returns
// nil immediately; nil otherwise means the horizon ran out first.
func (c *Calculator) FirstAffordableMonth(household *domain.Household, eligibility domain.LoanEligibility, now time.Time, months int) *domain.AffordableMonth {
	loanNeeded := household.TargetPrice.Mul(c.Policy.Loan.LTVLimit)
	if loanNeeded.GreaterThan(eligibility.MaxLoanAmount) {
		return nil
	}

	required := c.RequiredUpfront(household.TargetPrice)
	for m := 1; m <= months; m++ {
		target := now.AddDate(0, m, 0)

		total := decimalZero
		for _, applicant := range household.Applicants {
			projection := c.ProjectApplicant(applicant, now, target)
			total = total.Add(projection.ProjectedCPFOA).Add(projection.ProjectedCash)
		}

		if total.GreaterThanOrEqual(required) {
			return &domain.AffordableMonth{Month: m, Date: target}
		}
	}
	return nil
}
