package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hdbplan/hdbplan/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser, "Should create input parser")
}

func TestInputParser_LoadPolicy_FileNotFound(t *testing.T) {
	parser := NewInputParser()

	policy, err := parser.LoadPolicy("nonexistent.yaml")

	assert.Error(t, err, "Should error for nonexistent file")
	assert.Nil(t, policy, "Should return nil policy")
	assert.Contains(t, err.Error(), "failed to read file", "Should have specific error message")
}

func TestInputParser_LoadPolicy_InvalidYAML(t *testing.T) {
	// Create a temporary file with invalid YAML
	tmpDir := t.TempDir()
	invalidFile := filepath.Join(tmpDir, "invalid.yaml")

	err := os.WriteFile(invalidFile, []byte("invalid: yaml: content: [unclosed"), 0644)
	assert.NoError(t, err)

	parser := NewInputParser()
	policy, err := parser.LoadPolicy(invalidFile)

	assert.Error(t, err, "Should error for invalid YAML")
	assert.Nil(t, policy, "Should return nil policy")
	assert.Contains(t, err.Error(), "failed to parse YAML", "Should have specific error message")
}

func TestInputParser_LoadPolicy_PartialOverride(t *testing.T) {
	// A policy file only needs to carry the parameters it changes;
	// everything else keeps the built-in defaults.
	tmpDir := t.TempDir()
	overrideFile := filepath.Join(tmpDir, "override.yaml")

	overrideYAML := `
metadata:
  data_year: 2027

loan:
  interest_rate: 0.03
  income_ceiling: 15000
`

	err := os.WriteFile(overrideFile, []byte(overrideYAML), 0644)
	assert.NoError(t, err)

	parser := NewInputParser()
	policy, err := parser.LoadPolicy(overrideFile)

	assert.NoError(t, err, "Should not error for valid YAML")
	assert.NotNil(t, policy, "Should return policy")
	assert.Equal(t, 2027, policy.Metadata.DataYear, "Should apply metadata override")
	assert.True(t, policy.Loan.InterestRate.Equal(decimal.NewFromFloat(0.03)),
		"Expected 0.03, got %s", policy.Loan.InterestRate)
	assert.True(t, policy.Loan.IncomeCeiling.Equal(decimal.NewFromInt(15000)),
		"Expected 15000, got %s", policy.Loan.IncomeCeiling)

	assert.Equal(t, 5, policy.Loan.MinTenureYears, "Should keep default min tenure")
	assert.Equal(t, 25, policy.Loan.MaxTenureYears, "Should keep default max tenure")
	assert.True(t, policy.Loan.LTVLimit.Equal(decimal.NewFromFloat(0.75)),
		"Expected 0.75, got %s", policy.Loan.LTVLimit)
	assert.True(t, policy.Loan.MSRLimit.Equal(decimal.NewFromFloat(0.30)),
		"Expected 0.30, got %s", policy.Loan.MSRLimit)
	assert.Len(t, policy.StampDuty.Brackets, 4, "Should keep default stamp duty brackets")
	assert.Len(t, policy.CPF.ContributionRates, 7, "Should keep default CPF brackets")
	assert.Len(t, policy.Savings.Benchmarks, 4, "Should keep default savings bands")
}

func TestInputParser_LoadPolicy_RejectsInvalidOverride(t *testing.T) {
	tmpDir := t.TempDir()
	brokenFile := filepath.Join(tmpDir, "broken.yaml")

	brokenYAML := `
loan:
  msr_limit: 0
`

	err := os.WriteFile(brokenFile, []byte(brokenYAML), 0644)
	assert.NoError(t, err)

	parser := NewInputParser()
	policy, err := parser.LoadPolicy(brokenFile)

	assert.Error(t, err, "Should error for invalid policy values")
	assert.Nil(t, policy, "Should return nil policy")
	assert.Contains(t, err.Error(), "policy validation failed", "Should have specific error message")
	assert.Contains(t, err.Error(), "MSR limit must be between 0 and 1", "Should name the failed check")
}

func TestInputParser_LoadHousehold_FileNotFound(t *testing.T) {
	parser := NewInputParser()

	household, err := parser.LoadHousehold("nonexistent.yaml")

	assert.Error(t, err, "Should error for nonexistent file")
	assert.Nil(t, household, "Should return nil household")
	assert.Contains(t, err.Error(), "failed to read file", "Should have specific error message")
}

func TestInputParser_LoadHousehold_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	invalidFile := filepath.Join(tmpDir, "invalid.yaml")

	err := os.WriteFile(invalidFile, []byte("invalid: yaml: content: [unclosed"), 0644)
	assert.NoError(t, err)

	parser := NewInputParser()
	household, err := parser.LoadHousehold(invalidFile)

	assert.Error(t, err, "Should error for invalid YAML")
	assert.Nil(t, household, "Should return nil household")
	assert.Contains(t, err.Error(), "failed to parse YAML", "Should have specific error message")
}

func TestInputParser_LoadHousehold_ValidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	validFile := filepath.Join(tmpDir, "valid.yaml")

	validYAML := `
applicants:
  - name: "First Applicant"
    age: 30
    gross_income: 4500
    cpf_oa_balance: 25000
    cash_savings: 30000
    monthly_cash_savings: 900
  - name: "Second Applicant"
    age: 28
    gross_income: 3800
    employment_start: "2026-10-01T00:00:00Z"

commitments:
  car_loan: 600

target_price: 450000
completion_date: "2029-06-30T00:00:00Z"
`

	err := os.WriteFile(validFile, []byte(validYAML), 0644)
	assert.NoError(t, err)

	parser := NewInputParser()
	household, err := parser.LoadHousehold(validFile)

	assert.NoError(t, err, "Should not error for valid YAML")
	assert.NotNil(t, household, "Should return household")
	assert.Len(t, household.Applicants, 2, "Should parse applicants")
	assert.Equal(t, "First Applicant", household.Applicants[0].Name, "Should parse applicant name")
	assert.Equal(t, 28, household.Applicants[1].Age, "Should parse applicant age")
	assert.Nil(t, household.Applicants[0].EmploymentStart, "Absent start date should stay nil")
	assert.NotNil(t, household.Applicants[1].EmploymentStart, "Should parse employment start")
	assert.Equal(t, time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), *household.Applicants[1].EmploymentStart)
	assert.True(t, household.CombinedIncome().Equal(decimal.NewFromInt(8300)),
		"Expected 8300, got %s", household.CombinedIncome())
	assert.True(t, household.Commitments.Total().Equal(decimal.NewFromInt(600)),
		"Expected 600, got %s", household.Commitments.Total())
	assert.True(t, household.TargetPrice.Equal(decimal.NewFromInt(450000)),
		"Expected 450000, got %s", household.TargetPrice)
	assert.Equal(t, time.Date(2029, 6, 30, 0, 0, 0, 0, time.UTC), household.CompletionDate)
}

func TestInputParser_LoadHousehold_RejectsInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	brokenFile := filepath.Join(tmpDir, "broken.yaml")

	brokenYAML := `
applicants:
  - name: "First Applicant"
    age: 0
    gross_income: 4500

target_price: 450000
completion_date: "2029-06-30T00:00:00Z"
`

	err := os.WriteFile(brokenFile, []byte(brokenYAML), 0644)
	assert.NoError(t, err)

	parser := NewInputParser()
	household, err := parser.LoadHousehold(brokenFile)

	assert.Error(t, err, "Should error for invalid applicant")
	assert.Nil(t, household, "Should return nil household")
	assert.Contains(t, err.Error(), "household validation failed", "Should have specific error message")
	assert.Contains(t, err.Error(), "age must be between 1 and 120", "Should name the failed check")
}

func TestInputParser_ValidateLoanRules_NegativeRate(t *testing.T) {
	parser := NewInputParser()

	rules := domain.LoanRules{
		InterestRate: decimal.NewFromFloat(-0.01), // Invalid
	}

	err := parser.validateLoanRules(&rules)
	assert.Error(t, err, "Should error for negative interest rate")
	assert.Contains(t, err.Error(), "interest rate cannot be negative", "Should have specific error message")
}

func TestInputParser_ValidateLoanRules_TenureOrder(t *testing.T) {
	parser := NewInputParser()

	rules := domain.LoanRules{
		InterestRate:   decimal.NewFromFloat(0.026),
		MinTenureYears: 25,
		MaxTenureYears: 20, // Below minimum
	}

	err := parser.validateLoanRules(&rules)
	assert.Error(t, err, "Should error for inverted tenure range")
	assert.Contains(t, err.Error(), "cannot be shorter than minimum tenure", "Should have specific error message")
}

func TestInputParser_ValidateLoanRules_LTVOutOfRange(t *testing.T) {
	parser := NewInputParser()

	rules := domain.LoanRules{
		InterestRate:   decimal.NewFromFloat(0.026),
		MinTenureYears: 5,
		MaxTenureYears: 25,
		LTVLimit:       decimal.NewFromFloat(1.2), // Invalid
	}

	err := parser.validateLoanRules(&rules)
	assert.Error(t, err, "Should error for LTV above 1")
	assert.Contains(t, err.Error(), "LTV limit must be between 0 and 1", "Should have specific error message")
}

func TestInputParser_ValidateLoanRules_MSRNotPositive(t *testing.T) {
	parser := NewInputParser()

	rules := domain.LoanRules{
		InterestRate:   decimal.NewFromFloat(0.026),
		MinTenureYears: 5,
		MaxTenureYears: 25,
		LTVLimit:       decimal.NewFromFloat(0.75),
		MSRLimit:       decimal.Zero, // Invalid
	}

	err := parser.validateLoanRules(&rules)
	assert.Error(t, err, "Should error for zero MSR limit")
	assert.Contains(t, err.Error(), "MSR limit must be between 0 and 1", "Should have specific error message")
}

func TestInputParser_ValidateTiers_Empty(t *testing.T) {
	parser := NewInputParser()

	err := parser.validateTiers("stamp duty", []domain.RateTier{})
	assert.Error(t, err, "Should error for empty schedule")
	assert.Contains(t, err.Error(), "has no tiers", "Should have specific error message")
}

func TestInputParser_ValidateTiers_NegativeRate(t *testing.T) {
	parser := NewInputParser()

	tiers := []domain.RateTier{
		{Width: decimal.NewFromInt(180000), Rate: decimal.NewFromFloat(0.01)},
		{Width: decimal.Zero, Rate: decimal.NewFromFloat(-0.02)}, // Invalid
	}

	err := parser.validateTiers("stamp duty", tiers)
	assert.Error(t, err, "Should error for negative tier rate")
	assert.Contains(t, err.Error(), "has a negative rate", "Should have specific error message")
}

func TestInputParser_ValidateTiers_UnboundedMiddleTier(t *testing.T) {
	parser := NewInputParser()

	tiers := []domain.RateTier{
		{Width: decimal.Zero, Rate: decimal.NewFromFloat(0.01)}, // Invalid here
		{Width: decimal.Zero, Rate: decimal.NewFromFloat(0.02)},
	}

	err := parser.validateTiers("legal fee", tiers)
	assert.Error(t, err, "Should error for unbounded middle tier")
	assert.Contains(t, err.Error(), "must have a positive width", "Should have specific error message")
}

func TestInputParser_ValidateCPFRules_NegativeOAInterest(t *testing.T) {
	parser := NewInputParser()

	rules := domain.CPFRules{
		OAInterestRate: decimal.NewFromFloat(-0.01), // Invalid
	}

	err := parser.validateCPFRules(&rules)
	assert.Error(t, err, "Should error for negative OA interest rate")
	assert.Contains(t, err.Error(), "OA interest rate cannot be negative", "Should have specific error message")
}

func TestInputParser_ValidateCPFRules_FlatRateTooHigh(t *testing.T) {
	parser := NewInputParser()

	rules := domain.CPFRules{
		OAInterestRate:   decimal.NewFromFloat(0.025),
		EmployeeFlatRate: decimal.NewFromInt(1), // Invalid
	}

	err := parser.validateCPFRules(&rules)
	assert.Error(t, err, "Should error for flat rate of 1")
	assert.Contains(t, err.Error(), "employee flat rate must be between 0 and 1", "Should have specific error message")
}

func TestInputParser_ValidateCPFRules_NoBrackets(t *testing.T) {
	parser := NewInputParser()

	rules := domain.CPFRules{
		OAInterestRate:    decimal.NewFromFloat(0.025),
		EmployeeFlatRate:  decimal.NewFromFloat(0.20),
		ContributionRates: []domain.CPFRateBracket{}, // Empty
	}

	err := parser.validateCPFRules(&rules)
	assert.Error(t, err, "Should error for missing brackets")
	assert.Contains(t, err.Error(), "no contribution rate brackets provided", "Should have specific error message")
}

func TestInputParser_ValidateCPFRules_BracketAgeOrder(t *testing.T) {
	parser := NewInputParser()

	rules := domain.CPFRules{
		OAInterestRate:   decimal.NewFromFloat(0.025),
		EmployeeFlatRate: decimal.NewFromFloat(0.20),
		ContributionRates: []domain.CPFRateBracket{
			{MinAge: 40, MaxAge: 30}, // Inverted
		},
	}

	err := parser.validateCPFRules(&rules)
	assert.Error(t, err, "Should error for inverted age range")
	assert.Contains(t, err.Error(), "has max age below min age", "Should have specific error message")
}

func TestInputParser_ValidateCPFRules_OARateOutOfRange(t *testing.T) {
	parser := NewInputParser()

	rules := domain.CPFRules{
		OAInterestRate:   decimal.NewFromFloat(0.025),
		EmployeeFlatRate: decimal.NewFromFloat(0.20),
		ContributionRates: []domain.CPFRateBracket{
			{
				MinAge: 0,
				MaxAge: 99,
				Rates:  domain.CPFContributionRates{OA: decimal.NewFromFloat(1.5)}, // Invalid
			},
		},
	}

	err := parser.validateCPFRules(&rules)
	assert.Error(t, err, "Should error for OA rate above 1")
	assert.Contains(t, err.Error(), "OA rate must be between 0 and 1", "Should have specific error message")
}

func TestInputParser_ValidateSavingsRules_ZeroUnsustainableRatio(t *testing.T) {
	parser := NewInputParser()

	rules := domain.SavingsRules{
		UnsustainableRatio: decimal.Zero, // Invalid
	}

	err := parser.validateSavingsRules(&rules)
	assert.Error(t, err, "Should error for zero unsustainable ratio")
	assert.Contains(t, err.Error(), "unsustainable ratio must be positive", "Should have specific error message")
}

func TestInputParser_ValidateSavingsRules_NoBands(t *testing.T) {
	parser := NewInputParser()

	rules := domain.SavingsRules{
		UnsustainableRatio: decimal.NewFromFloat(0.50),
		Benchmarks:         []domain.SavingsBenchmark{}, // Empty
	}

	err := parser.validateSavingsRules(&rules)
	assert.Error(t, err, "Should error for missing bands")
	assert.Contains(t, err.Error(), "no benchmark bands provided", "Should have specific error message")
}

func TestInputParser_ValidateSavingsRules_BandOrder(t *testing.T) {
	parser := NewInputParser()

	rules := domain.SavingsRules{
		UnsustainableRatio: decimal.NewFromFloat(0.50),
		Benchmarks: []domain.SavingsBenchmark{
			{MinIncome: decimal.NewFromInt(5000), MaxIncome: decimal.NewFromInt(4000)}, // Inverted
		},
	}

	err := parser.validateSavingsRules(&rules)
	assert.Error(t, err, "Should error for inverted income band")
	assert.Contains(t, err.Error(), "has max income at or below min income", "Should have specific error message")
}

func TestInputParser_ValidateSavingsRules_UnboundedMiddleBand(t *testing.T) {
	parser := NewInputParser()

	rules := domain.SavingsRules{
		UnsustainableRatio: decimal.NewFromFloat(0.50),
		Benchmarks: []domain.SavingsBenchmark{
			{MinIncome: decimal.Zero, MaxIncome: decimal.Zero}, // Invalid here
			{MinIncome: decimal.NewFromInt(5000), MaxIncome: decimal.Zero},
		},
	}

	err := parser.validateSavingsRules(&rules)
	assert.Error(t, err, "Should error for unbounded middle band")
	assert.Contains(t, err.Error(), "must be bounded", "Should have specific error message")
}

func TestInputParser_ValidateSavingsRules_ComfortAboveAggressive(t *testing.T) {
	parser := NewInputParser()

	rules := domain.SavingsRules{
		UnsustainableRatio: decimal.NewFromFloat(0.50),
		Benchmarks: []domain.SavingsBenchmark{
			{
				MinIncome:        decimal.Zero,
				MaxIncome:        decimal.Zero,
				ComfortableRatio: decimal.NewFromFloat(0.40), // Above aggressive
				AggressiveRatio:  decimal.NewFromFloat(0.30),
			},
		},
	}

	err := parser.validateSavingsRules(&rules)
	assert.Error(t, err, "Should error for comfortable ratio above aggressive")
	assert.Contains(t, err.Error(), "has comfortable ratio above aggressive ratio", "Should have specific error message")
}

func TestInputParser_ValidateHousehold_NoApplicants(t *testing.T) {
	parser := NewInputParser()

	household := &domain.Household{
		TargetPrice:    decimal.NewFromInt(450000),
		CompletionDate: time.Date(2029, 6, 30, 0, 0, 0, 0, time.UTC),
	}

	err := parser.ValidateHousehold(household)
	assert.Error(t, err, "Should error for empty applicant list")
	assert.Contains(t, err.Error(), "at least one applicant is required", "Should have specific error message")
}

func TestInputParser_ValidateHousehold_NegativeCommitments(t *testing.T) {
	parser := NewInputParser()

	household := &domain.Household{
		Applicants: []domain.Applicant{
			{Name: "test", Age: 30, GrossIncome: decimal.NewFromInt(4500)},
		},
		Commitments: domain.Commitments{
			CreditCard: decimal.NewFromInt(-100), // Invalid
		},
		TargetPrice:    decimal.NewFromInt(450000),
		CompletionDate: time.Date(2029, 6, 30, 0, 0, 0, 0, time.UTC),
	}

	err := parser.ValidateHousehold(household)
	assert.Error(t, err, "Should error for negative commitments")
	assert.Contains(t, err.Error(), "commitments cannot be negative", "Should have specific error message")
}

func TestInputParser_ValidateHousehold_NegativeTargetPrice(t *testing.T) {
	parser := NewInputParser()

	household := &domain.Household{
		Applicants: []domain.Applicant{
			{Name: "test", Age: 30, GrossIncome: decimal.NewFromInt(4500)},
		},
		TargetPrice:    decimal.NewFromInt(-1), // Invalid
		CompletionDate: time.Date(2029, 6, 30, 0, 0, 0, 0, time.UTC),
	}

	err := parser.ValidateHousehold(household)
	assert.Error(t, err, "Should error for negative target price")
	assert.Contains(t, err.Error(), "target price cannot be negative", "Should have specific error message")
}

func TestInputParser_ValidateHousehold_MissingCompletionDate(t *testing.T) {
	parser := NewInputParser()

	household := &domain.Household{
		Applicants: []domain.Applicant{
			{Name: "test", Age: 30, GrossIncome: decimal.NewFromInt(4500)},
		},
		TargetPrice: decimal.NewFromInt(450000),
		// CompletionDate left zero
	}

	err := parser.ValidateHousehold(household)
	assert.Error(t, err, "Should error for missing completion date")
	assert.Contains(t, err.Error(), "completion date is required", "Should have specific error message")
}

func TestInputParser_ValidateApplicant_InvalidAge(t *testing.T) {
	parser := NewInputParser()

	applicant := &domain.Applicant{
		Name:        "test",
		Age:         0, // Invalid
		GrossIncome: decimal.NewFromInt(4500),
	}

	err := parser.validateApplicant(0, applicant)
	assert.Error(t, err, "Should error for zero age")
	assert.Contains(t, err.Error(), "age must be between 1 and 120", "Should have specific error message")
}

func TestInputParser_ValidateApplicant_NegativeIncome(t *testing.T) {
	parser := NewInputParser()

	applicant := &domain.Applicant{
		Name:        "test",
		Age:         30,
		GrossIncome: decimal.NewFromInt(-4500), // Invalid
	}

	err := parser.validateApplicant(0, applicant)
	assert.Error(t, err, "Should error for negative gross income")
	assert.Contains(t, err.Error(), "gross income cannot be negative", "Should have specific error message")
}

func TestInputParser_ValidateApplicant_NegativeBalances(t *testing.T) {
	parser := NewInputParser()

	applicant := &domain.Applicant{
		Name:         "test",
		Age:          30,
		GrossIncome:  decimal.NewFromInt(4500),
		CPFOABalance: decimal.NewFromInt(-1), // Invalid
	}

	err := parser.validateApplicant(0, applicant)
	assert.Error(t, err, "Should error for negative CPF balance")
	assert.Contains(t, err.Error(), "CPF OA balance cannot be negative", "Should have specific error message")
}
