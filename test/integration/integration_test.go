package integration

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hdbplan/hdbplan/internal/calculation"
	"github.com/hdbplan/hdbplan/internal/config"
	"github.com/hdbplan/hdbplan/internal/domain"
	"github.com/hdbplan/hdbplan/internal/output"
)

const (
	policyFixture    = "../testdata/policy.yaml"
	householdFixture = "../testdata/household.yaml"
)

// Fixed clock so projection month counts stay stable.
var fixedNow = time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)

func loadFixtures(t *testing.T) (*domain.Policy, *domain.Household) {
	t.Helper()
	parser := config.NewInputParser()

	policy, err := parser.LoadPolicy(policyFixture)
	require.NoError(t, err, "Should load policy fixture")

	household, err := parser.LoadHousehold(householdFixture)
	require.NoError(t, err, "Should load household fixture")

	return policy, household
}

// TestBasicIntegration drives the whole pipeline: YAML files in, purchase
// plan out, every formatter over the result.
func TestBasicIntegration(t *testing.T) {
	t.Run("profile_loading", func(t *testing.T) {
		policy, household := loadFixtures(t)

		assert.Equal(t, "Integration test fixture", policy.Metadata.Description,
			"Policy values should come from the file, not the defaults")
		assert.Equal(t, 25, policy.Loan.MaxTenureYears, "Should carry loan rules")

		require.Len(t, household.Applicants, 2, "Should have both applicants")
		assert.Equal(t, "Wei Ming", household.Applicants[0].Name, "Should carry applicant names")
		assert.True(t, household.CombinedIncome().Equal(decimal.NewFromInt(10000)),
			"Combined income should be 6,000 + 4,000")
		assert.True(t, household.Commitments.Total().Equal(decimal.NewFromInt(300)),
			"Car loan should be the only commitment")
		assert.Equal(t, time.Date(2029, 6, 30, 0, 0, 0, 0, time.UTC), household.CompletionDate,
			"Completion date should parse from the bare date")
	})

	t.Run("purchase_plan", func(t *testing.T) {
		policy, household := loadFixtures(t)
		calc := calculation.NewCalculator(policy)

		plan := calc.BuildPlan(household, fixedNow)
		require.NotNil(t, plan, "Plan should not be nil")

		// Envelope: 30% MSR of $10,000 less the $300 car loan.
		assert.True(t, plan.Eligibility.AvailableCapacity.Equal(decimal.NewFromInt(2700)),
			"Installment capacity should be 10,000 x 0.30 - 300")
		assert.True(t, plan.Eligibility.MaxLoanAmount.Equal(
			calculation.MaxPrincipal(decimal.NewFromInt(2700), policy.Loan.InterestRate, 25)),
			"Max loan should invert the annuity at the capacity")
		assert.False(t, plan.Eligibility.ExceedsIncomeCeiling,
			"Household income of 10,000 is under the 14,000 ceiling")

		// Price verdict components must reconcile.
		aff := plan.Affordability
		assert.True(t, aff.StampDuty.Equal(decimal.NewFromInt(17100)),
			"BSD on 750,000 should be 1,800 + 3,600 + 11,700, got %s", aff.StampDuty)
		assert.True(t, aff.LoanAmount.Equal(decimal.NewFromFloat(562500)),
			"Loan should be 75%% of the target price")
		wantUpfront := aff.TargetPrice.Sub(aff.LoanAmount).Add(aff.StampDuty).Add(aff.LegalFees)
		assert.True(t, aff.RequiredUpfront.Equal(wantUpfront),
			"Upfront should be downpayment + duty + fees, got %s want %s", aff.RequiredUpfront, wantUpfront)
		assert.True(t, aff.RequiredUpfront.Equal(calc.RequiredUpfront(aff.TargetPrice)),
			"Plan upfront should match the direct calculation")
		assert.True(t, aff.TotalAvailable.Equal(aff.ProjectedCPF.Add(aff.ProjectedCash)),
			"Available funds should be the CPF and cash projections combined")
		assert.Equal(t, aff.CanAffordLoan && aff.CanAffordUpfront, aff.CanAfford,
			"Overall verdict should require both conditions")

		// Both applicants are already working, so they accrue the same months.
		require.Len(t, plan.Projections, 2, "Should project each applicant")
		assert.Equal(t, plan.Projections[0].ContributionMonths, plan.Projections[1].ContributionMonths,
			"Applicants without a start date accrue from now")
		assert.True(t, plan.Projections[0].ProjectedCPFOA.GreaterThan(decimal.NewFromInt(28000)),
			"CPF projection should grow past the starting balance")

		assert.NotEmpty(t, plan.TenureOptions, "Should include the key tenure table")
		require.Len(t, plan.SavingsHealth, 2, "Should grade each applicant's savings")
	})

	t.Run("formatter_outputs", func(t *testing.T) {
		policy, household := loadFixtures(t)
		plan := calculation.NewCalculator(policy).BuildPlan(household, fixedNow)

		for _, name := range output.AvailableFormatterNames() {
			formatter := output.GetFormatterByName(name)
			require.NotNil(t, formatter, "Formatter %s should be registered", name)

			data, err := formatter.Format(plan)
			require.NoError(t, err, "Formatter %s should not error", name)
			assert.NotEmpty(t, data, "Formatter %s should produce output", name)
		}
	})

	t.Run("json_round_trip", func(t *testing.T) {
		policy, household := loadFixtures(t)
		plan := calculation.NewCalculator(policy).BuildPlan(household, fixedNow)

		data, err := output.GetFormatterByName("json").Format(plan)
		require.NoError(t, err)

		var decoded domain.PurchasePlan
		require.NoError(t, json.Unmarshal(data, &decoded), "JSON output should decode back")
		assert.True(t, decoded.Affordability.RequiredUpfront.Equal(plan.Affordability.RequiredUpfront),
			"Decimal fields should survive the round trip exactly")
		assert.Equal(t, plan.CompletionDate, decoded.CompletionDate, "Dates should survive the round trip")
	})
}

// TestErrorHandling covers the failure paths a caller hits with bad input
// files.
func TestErrorHandling(t *testing.T) {
	parser := config.NewInputParser()

	t.Run("missing_files", func(t *testing.T) {
		_, err := parser.LoadPolicy("../testdata/does_not_exist.yaml")
		require.Error(t, err, "Should error for a missing policy file")
		assert.Contains(t, err.Error(), "failed to read file", "Should name the failure")

		_, err = parser.LoadHousehold("../testdata/does_not_exist.yaml")
		require.Error(t, err, "Should error for a missing household file")
	})

	t.Run("invalid_yaml", func(t *testing.T) {
		badFile := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(badFile, []byte("applicants: [unclosed"), 0644))

		_, err := parser.LoadHousehold(badFile)
		require.Error(t, err, "Should error for malformed YAML")
		assert.Contains(t, err.Error(), "failed to parse YAML", "Should name the failure")
	})

	t.Run("invalid_household", func(t *testing.T) {
		emptyFile := filepath.Join(t.TempDir(), "empty.yaml")
		require.NoError(t, os.WriteFile(emptyFile, []byte("applicants: []\n"), 0644))

		_, err := parser.LoadHousehold(emptyFile)
		require.Error(t, err, "Should reject a household with no applicants")
		assert.Contains(t, err.Error(), "at least one applicant is required")
	})

	t.Run("invalid_policy", func(t *testing.T) {
		badPolicy := filepath.Join(t.TempDir(), "policy.yaml")
		require.NoError(t, os.WriteFile(badPolicy, []byte("loan:\n  msr_limit: 1.5\n"), 0644))

		_, err := parser.LoadPolicy(badPolicy)
		require.Error(t, err, "Should reject an MSR above 1")
		assert.Contains(t, err.Error(), "MSR limit must be between 0 and 1")
	})
}

// TestDataConsistency checks relationships that must hold across
// operations regardless of the input values.
func TestDataConsistency(t *testing.T) {
	policy, household := loadFixtures(t)
	calc := calculation.NewCalculator(policy)

	t.Run("income_monotonicity", func(t *testing.T) {
		lower := calc.Eligibility(decimal.NewFromInt(8000), household.Commitments)
		higher := calc.Eligibility(decimal.NewFromInt(12000), household.Commitments)

		assert.True(t, higher.MaxLoanAmount.GreaterThan(lower.MaxLoanAmount),
			"More income should never shrink the loan envelope")
		assert.True(t, higher.MaxFlatPrice.GreaterThan(lower.MaxFlatPrice),
			"More income should never shrink the price ceiling")
	})

	t.Run("savings_series_growth", func(t *testing.T) {
		series := calc.SavingsSeries(household, fixedNow, 12)
		require.Len(t, series, 13, "Should have a point for month 0 through 12")

		for i := 1; i < len(series); i++ {
			assert.True(t, series[i].Total.GreaterThanOrEqual(series[i-1].Total),
				"Savings with positive contributions should not fall (month %d)", i)
			assert.True(t, series[i].Total.Equal(series[i].CPFOA.Add(series[i].Cash)),
				"Point totals should reconcile (month %d)", i)
		}
	})

	t.Run("price_series_growth", func(t *testing.T) {
		eligibility := calc.Eligibility(household.CombinedIncome(), household.Commitments)
		series := calc.AffordablePriceSeries(household, eligibility, fixedNow, 6)
		require.Len(t, series, 7)

		for i := 1; i < len(series); i++ {
			assert.True(t, series[i].MaxPrice.GreaterThanOrEqual(series[i-1].MaxPrice),
				"Growing funds should never lower the affordable price (month %d)", i)
		}
	})

	t.Run("optimal_tenure_fits", func(t *testing.T) {
		plan := calc.BuildPlan(household, fixedNow)
		if plan.OptimalTenure == nil {
			t.Skip("no tenure fits the ceiling for this fixture")
		}
		assert.True(t, plan.OptimalTenure.MonthlyPayment.LessThanOrEqual(plan.Eligibility.MaxMonthlyInstallment),
			"The recommended tenure must fit under the installment ceiling")
	})
}

// TestPerformance keeps the full assessment cheap enough for interactive
// use; the TUI recomputes it on every keystroke.
func TestPerformance(t *testing.T) {
	policy, household := loadFixtures(t)
	calc := calculation.NewCalculator(policy)

	start := time.Now()
	for i := 0; i < 200; i++ {
		plan := calc.BuildPlan(household, fixedNow)
		require.NotNil(t, plan)
	}
	elapsed := time.Since(start)

	assert.Less(t, elapsed, 5*time.Second, "200 assessments should finish well inside 5s, took %v", elapsed)
}
