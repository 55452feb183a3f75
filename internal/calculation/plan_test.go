package calculation

import (
	"testing"
	"time"

	"github.com/hdbplan/hdbplan/internal/config"
	"github.com/hdbplan/hdbplan/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCalculator(t *testing.T) {
	policy := config.DefaultPolicy()
	calc := NewCalculator(policy)

	require.NotNil(t, calc)
	assert.Same(t, policy, calc.Policy)
}

func TestBuildPlan(t *testing.T) {
	calc := NewCalculator(config.DefaultPolicy())
	household := config.DefaultHousehold()
	now := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)

	plan := calc.BuildPlan(household, now)
	require.NotNil(t, plan)

	assert.Equal(t, now, plan.AsOf)
	assert.Equal(t, household.CompletionDate, plan.CompletionDate)

	// Combined income 10600 at a 30% servicing cap gives 3180 of
	// installment capacity over the full 25-year tenure.
	assert.True(t, plan.Eligibility.AvailableCapacity.Equal(decimal.NewFromInt(3180)),
		"Expected 3180, got %s", plan.Eligibility.AvailableCapacity)
	assert.Equal(t, 25, plan.Eligibility.TenureYears)
	assert.False(t, plan.Eligibility.ExceedsIncomeCeiling)

	// Both applicants are employed by August 2026, so each projects
	// across the full 28 months to completion.
	require.Len(t, plan.Projections, 2)
	for _, projection := range plan.Projections {
		assert.Equal(t, 28, projection.ContributionMonths)
	}
	assert.True(t, plan.Projections[0].ProjectedCash.Equal(decimal.NewFromInt(63000)),
		"Expected 63000, got %s", plan.Projections[0].ProjectedCash)
	assert.True(t, plan.Projections[1].ProjectedCash.Equal(decimal.NewFromInt(50400)),
		"Expected 50400, got %s", plan.Projections[1].ProjectedCash)

	// Projected funds at completion fall around 195k, short of the
	// 219.5k upfront cost of an 800k flat.
	assert.True(t, plan.Affordability.TargetPrice.Equal(decimal.NewFromInt(800000)),
		"Expected 800000, got %s", plan.Affordability.TargetPrice)
	assert.True(t, plan.Affordability.LoanAmount.Equal(decimal.NewFromInt(600000)),
		"Expected 600000, got %s", plan.Affordability.LoanAmount)
	assert.InDelta(t, 195067.1, plan.Affordability.TotalAvailable.InexactFloat64(), 20.0)
	assert.True(t, plan.Affordability.CanAffordLoan)
	assert.False(t, plan.Affordability.CanAffordUpfront)
	assert.False(t, plan.Affordability.CanAfford)
	assert.True(t, plan.Affordability.Gap.IsNegative(),
		"Expected a shortfall, got %s", plan.Affordability.Gap)

	assert.True(t, plan.TotalProjectedAt.Equal(plan.Affordability.TotalAvailable),
		"Expected %s, got %s", plan.Affordability.TotalAvailable, plan.TotalProjectedAt)

	// The ceiling the projected funds support sits between the target's
	// loan amount and the envelope, and its upfront cost lands on the
	// available funds.
	assert.True(t, plan.MaxAffordable.GreaterThan(decimal.NewFromInt(600000)),
		"Expected a ceiling above 600000, got %s", plan.MaxAffordable)
	assert.True(t, plan.MaxAffordable.LessThan(plan.Eligibility.MaxFlatPrice),
		"Expected %s below the envelope %s", plan.MaxAffordable, plan.Eligibility.MaxFlatPrice)
	drift := calc.RequiredUpfront(plan.MaxAffordable).Sub(plan.Affordability.TotalAvailable).Abs()
	assert.True(t, drift.LessThanOrEqual(decimal.NewFromInt(100)),
		"Upfront cost at the ceiling drifts %s from the funds", drift)

	// 600k at 3180/month clears at 21 years: 3092 against 3209 for 20.
	require.NotNil(t, plan.OptimalTenure)
	assert.Equal(t, 21, plan.OptimalTenure.TenureYears)
	assert.InDelta(t, 3092.3, plan.OptimalTenure.MonthlyPayment.InexactFloat64(), 2.0)
	assert.True(t, plan.OptimalTenure.IsAffordable)

	require.Len(t, plan.TenureOptions, 4)
	assert.Equal(t, 10, plan.TenureOptions[0].TenureYears)
	assert.Equal(t, 25, plan.TenureOptions[3].TenureYears)
	assert.False(t, plan.TenureOptions[0].IsAffordable, "A 10-year repayment of 600k does not fit under 3180")
	assert.True(t, plan.TenureOptions[3].IsAffordable)

	// 28 months of saving does not reach the 800k upfront cost.
	assert.Nil(t, plan.FirstAffordable)

	// 1800 against 4240 take-home is just over 42%, inside the
	// aggressive band for both applicants.
	require.Len(t, plan.SavingsHealth, 2)
	for _, check := range plan.SavingsHealth {
		assert.Equal(t, domain.SavingsStatusAggressive, check.Status)
		assert.True(t, check.TakeHomeIncome.Equal(decimal.NewFromInt(4240)),
			"Expected 4240, got %s", check.TakeHomeIncome)
		assert.True(t, check.SuggestedAmount.Equal(decimal.NewFromInt(848)),
			"Expected 848, got %s", check.SuggestedAmount)
		assert.InDelta(t, 0.4245, check.Ratio.InexactFloat64(), 0.001)
	}
}

func TestBuildPlan_CompletionInThePast(t *testing.T) {
	calc := NewCalculator(config.DefaultPolicy())
	household := config.DefaultHousehold()
	now := time.Date(2029, 6, 15, 0, 0, 0, 0, time.UTC)

	plan := calc.BuildPlan(household, now)
	require.NotNil(t, plan)

	// Past the completion date there is nothing left to project; the
	// scan still covers at least one month rather than none.
	for _, projection := range plan.Projections {
		assert.Equal(t, 0, projection.ContributionMonths)
	}
	assert.True(t, plan.Affordability.ProjectedCPF.Equal(decimal.NewFromInt(10800)),
		"Expected 10800, got %s", plan.Affordability.ProjectedCPF)
	assert.True(t, plan.Affordability.ProjectedCash.Equal(decimal.NewFromInt(12600)),
		"Expected 12600, got %s", plan.Affordability.ProjectedCash)
	assert.False(t, plan.Affordability.CanAfford)
}
