package calculation

import (
	"fmt"

	"github.com/hdbplan/hdbplan/internal/domain"
	"github.com/shopspring/decimal"
)

// SavingsHealth grades a monthly cash-savings amount against the
// income-band benchmarks. Take-home pay uses the flat employee CPF
// rate rather than the age-bracketed allocation used in projections;
// the published expense benchmarks assume the same flat deduction, so
// the two deliberately differ.
func (c *Calculator) SavingsHealth(income, monthlySavings decimal.Decimal) domain.SavingsHealthCheck {
	takeHome := income.Mul(decimalOne.Sub(c.Policy.CPF.EmployeeFlatRate))
	if takeHome.LessThanOrEqual(decimalZero) {
		return domain.SavingsHealthCheck{
			Status:  domain.SavingsStatusInvalid,
			Message: "Take-home income must be positive to assess a savings rate.",
		}
	}

	ratio := monthlySavings.Div(takeHome)
	benchmark := c.Policy.Savings.BenchmarkForIncome(income)
	percent := ratio.Mul(decimalHundred).StringFixed(0)

	check := domain.SavingsHealthCheck{
		Ratio:           ratio,
		SuggestedAmount: takeHome.Mul(benchmark.ComfortableRatio),
		TakeHomeIncome:  takeHome,
	}

	switch {
	case ratio.GreaterThan(c.Policy.Savings.UnsustainableRatio):
		check.Status = domain.SavingsStatusUnsustainable
		check.Message = fmt.Sprintf("Saving %s%% of take-home pay is unlikely to hold up long term. Consider a more realistic target.", percent)
	case ratio.GreaterThan(benchmark.AggressiveRatio):
		check.Status = domain.SavingsStatusAggressive
		check.Message = fmt.Sprintf("Saving %s%% of take-home pay is aggressive for this income band. Keep an emergency fund alongside.", percent)
	case ratio.GreaterThanOrEqual(benchmark.ComfortableRatio):
		check.Status = domain.SavingsStatusHealthy
		check.Message = fmt.Sprintf("Saving %s%% of take-home pay is a sustainable rate for this income band.", percent)
	case ratio.IsPositive():
		check.Status = domain.SavingsStatusLow
		check.Message = fmt.Sprintf("Saving %s%% of take-home pay is below the comfortable benchmark. A higher rate reaches the flat sooner.", percent)
	default:
		check.Status = domain.SavingsStatusNone
		check.Message = "No monthly savings configured. Add a monthly amount to project affordability."
	}

	return check
}
