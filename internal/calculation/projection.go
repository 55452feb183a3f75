package calculation

import (
	"time"

	"github.com/hdbplan/hdbplan/internal/domain"
	"github.com/shopspring/decimal"
)

// ProjectLinear accumulates a balance with a fixed monthly
// contribution and no interest. Used for plain cash savings.
func ProjectLinear(balance, contribution decimal.Decimal, months int) decimal.Decimal {
	if months <= 0 {
		return balance
	}
	return balance.Add(contribution.Mul(decimal.NewFromInt(int64(months))))
}

// ProjectCompounding accumulates a balance month by month, crediting
// interest at annualRate/12 before each contribution. CPF interest is
// computed monthly and credited annually; monthly compounding is a
// simplification that keeps projections smooth across partial years.
func ProjectCompounding(balance, contribution decimal.Decimal, months int, annualRate decimal.Decimal) decimal.Decimal {
	if months <= 0 {
		return balance
	}

	growth := decimalOne.Add(annualRate.Div(decimalTwelve))
	for i := 0; i < months; i++ {
		balance = balance.Mul(growth).Add(contribution)
	}
	return balance
}

// MonthsBetween counts calendar months from one date to another using
// year and month arithmetic only. The count is negative when from is
// later than to.
func MonthsBetween(from, to time.Time) int {
	return (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
}

// ContributionMonths determines how many months an applicant
// contributes between now and a target date. A nil start means
// already employed, so the full horizon counts; a start inside the
// window counts from the start date; a start on or after the target
// contributes nothing.
func ContributionMonths(start *time.Time, now, target time.Time) int {
	months := 0
	switch {
	case start == nil || !start.After(now):
		months = MonthsBetween(now, target)
	case start.Before(target):
		months = MonthsBetween(*start, target)
	}
	if months < 0 {
		months = 0
	}
	return months
}

// MonthlyCPFContribution calculates an applicant's monthly Ordinary
// Account inflow: gross income times the age-bracketed OA allocation
// rate.
func (c *Calculator) MonthlyCPFContribution(income decimal.Decimal, age int) decimal.Decimal {
	return income.Mul(c.Policy.CPF.RatesForAge(age).OA)
}

// ProjectApplicant projects one applicant's CPF OA and cash balances
// to the target date. CPF compounds at the policy OA rate over the
// applicant's contribution months; cash accumulates linearly.
func (c *Calculator) ProjectApplicant(applicant domain.Applicant, now, target time.Time) domain.ApplicantProjection {
	months := ContributionMonths(applicant.EmploymentStart, now, target)
	monthlyCPF := c.MonthlyCPFContribution(applicant.GrossIncome, applicant.Age)

	return domain.ApplicantProjection{
		Name:               applicant.Name,
		ContributionMonths: months,
		MonthlyCPF:         monthlyCPF,
		ProjectedCPFOA:     ProjectCompounding(applicant.CPFOABalance, monthlyCPF, months, c.Policy.CPF.OAInterestRate),
		ProjectedCash:      ProjectLinear(applicant.CashSavings, applicant.MonthlyCashSavings, months),
	}
}
