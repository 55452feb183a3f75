package config

import (
	"fmt"
	"os"

	"github.com/hdbplan/hdbplan/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of policy and household configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadPolicy loads a loan policy from a YAML file. The file is applied on
// top of the built-in defaults, so a policy file only needs to carry the
// parameters it changes.
func (ip *InputParser) LoadPolicy(filename string) (*domain.Policy, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	policy := DefaultPolicy()
	if err := yaml.Unmarshal(data, policy); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidatePolicy(policy); err != nil {
		return nil, fmt.Errorf("policy validation failed: %w", err)
	}

	return policy, nil
}

// LoadHousehold loads a household purchase profile from a YAML file
func (ip *InputParser) LoadHousehold(filename string) (*domain.Household, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var household domain.Household
	if err := yaml.Unmarshal(data, &household); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateHousehold(&household); err != nil {
		return nil, fmt.Errorf("household validation failed: %w", err)
	}

	return &household, nil
}

// ValidatePolicy validates the loaded policy
func (ip *InputParser) ValidatePolicy(policy *domain.Policy) error {
	if err := ip.validateLoanRules(&policy.Loan); err != nil {
		return fmt.Errorf("loan rules validation failed: %w", err)
	}
	if err := ip.validateTiers("stamp duty", policy.StampDuty.Brackets); err != nil {
		return err
	}
	if err := ip.validateTiers("legal fee", policy.LegalFees.Tiers); err != nil {
		return err
	}
	if policy.LegalFees.GSTRate.IsNegative() {
		return fmt.Errorf("legal fee GST rate cannot be negative")
	}
	if policy.LegalFees.MinimumFee.IsNegative() {
		return fmt.Errorf("legal fee minimum cannot be negative")
	}
	if err := ip.validateCPFRules(&policy.CPF); err != nil {
		return fmt.Errorf("cpf rules validation failed: %w", err)
	}
	if err := ip.validateSavingsRules(&policy.Savings); err != nil {
		return fmt.Errorf("savings rules validation failed: %w", err)
	}
	return nil
}

// validateLoanRules validates the loan envelope parameters
func (ip *InputParser) validateLoanRules(rules *domain.LoanRules) error {
	if rules.InterestRate.IsNegative() {
		return fmt.Errorf("interest rate cannot be negative")
	}
	if rules.MinTenureYears < 1 {
		return fmt.Errorf("minimum tenure must be at least 1 year")
	}
	if rules.MaxTenureYears < rules.MinTenureYears {
		return fmt.Errorf("maximum tenure (%d) cannot be shorter than minimum tenure (%d)", rules.MaxTenureYears, rules.MinTenureYears)
	}
	if rules.LTVLimit.IsNegative() || rules.LTVLimit.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("LTV limit must be between 0 and 1")
	}
	if !rules.MSRLimit.IsPositive() || rules.MSRLimit.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("MSR limit must be between 0 and 1")
	}
	if rules.IncomeCeiling.IsNegative() {
		return fmt.Errorf("income ceiling cannot be negative")
	}
	return nil
}

// validateTiers checks a tiered schedule: every tier needs a non-negative
// rate, and only the final tier may be unbounded.
func (ip *InputParser) validateTiers(name string, tiers []domain.RateTier) error {
	if len(tiers) == 0 {
		return fmt.Errorf("%s schedule has no tiers", name)
	}
	for i, tier := range tiers {
		if tier.Rate.IsNegative() {
			return fmt.Errorf("%s tier %d has a negative rate", name, i)
		}
		if i < len(tiers)-1 && !tier.Width.IsPositive() {
			return fmt.Errorf("%s tier %d must have a positive width (only the last tier may be unbounded)", name, i)
		}
	}
	return nil
}

// validateCPFRules validates the CPF contribution parameters
func (ip *InputParser) validateCPFRules(rules *domain.CPFRules) error {
	if rules.OAInterestRate.IsNegative() {
		return fmt.Errorf("OA interest rate cannot be negative")
	}
	if rules.EmployeeFlatRate.IsNegative() || rules.EmployeeFlatRate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return fmt.Errorf("employee flat rate must be between 0 and 1")
	}
	if len(rules.ContributionRates) == 0 {
		return fmt.Errorf("no contribution rate brackets provided")
	}
	for i, bracket := range rules.ContributionRates {
		if bracket.MinAge < 0 {
			return fmt.Errorf("bracket %d has a negative minimum age", i)
		}
		if bracket.MaxAge < bracket.MinAge {
			return fmt.Errorf("bracket %d has max age below min age", i)
		}
		if bracket.Rates.OA.IsNegative() || bracket.Rates.OA.GreaterThan(decimal.NewFromInt(1)) {
			return fmt.Errorf("bracket %d OA rate must be between 0 and 1", i)
		}
	}
	return nil
}

// validateSavingsRules validates the savings benchmark bands
func (ip *InputParser) validateSavingsRules(rules *domain.SavingsRules) error {
	if !rules.UnsustainableRatio.IsPositive() {
		return fmt.Errorf("unsustainable ratio must be positive")
	}
	if len(rules.Benchmarks) == 0 {
		return fmt.Errorf("no benchmark bands provided")
	}
	for i, band := range rules.Benchmarks {
		if band.MinIncome.IsNegative() {
			return fmt.Errorf("benchmark band %d has a negative minimum income", i)
		}
		if band.MaxIncome.IsPositive() && band.MaxIncome.LessThanOrEqual(band.MinIncome) {
			return fmt.Errorf("benchmark band %d has max income at or below min income", i)
		}
		if i < len(rules.Benchmarks)-1 && !band.MaxIncome.IsPositive() {
			return fmt.Errorf("benchmark band %d must be bounded (only the last band may be open-ended)", i)
		}
		if band.ComfortableRatio.GreaterThan(band.AggressiveRatio) {
			return fmt.Errorf("benchmark band %d has comfortable ratio above aggressive ratio", i)
		}
	}
	return nil
}

// ValidateHousehold validates the loaded household profile
func (ip *InputParser) ValidateHousehold(household *domain.Household) error {
	if len(household.Applicants) == 0 {
		return fmt.Errorf("at least one applicant is required")
	}
	for i, applicant := range household.Applicants {
		if err := ip.validateApplicant(i, &applicant); err != nil {
			return fmt.Errorf("applicant %d (%s) validation failed: %w", i, applicant.Name, err)
		}
	}
	if household.Commitments.CreditCard.IsNegative() || household.Commitments.CarLoan.IsNegative() || household.Commitments.OtherLoans.IsNegative() {
		return fmt.Errorf("commitments cannot be negative")
	}
	if household.TargetPrice.IsNegative() {
		return fmt.Errorf("target price cannot be negative")
	}
	if household.CompletionDate.IsZero() {
		return fmt.Errorf("completion date is required")
	}
	return nil
}

// validateApplicant validates a single applicant
func (ip *InputParser) validateApplicant(index int, applicant *domain.Applicant) error {
	if applicant.Age <= 0 || applicant.Age > 120 {
		return fmt.Errorf("age must be between 1 and 120")
	}
	if applicant.GrossIncome.IsNegative() {
		return fmt.Errorf("gross income cannot be negative")
	}
	if applicant.CPFOABalance.IsNegative() {
		return fmt.Errorf("CPF OA balance cannot be negative")
	}
	if applicant.CashSavings.IsNegative() {
		return fmt.Errorf("cash savings cannot be negative")
	}
	if applicant.MonthlyCashSavings.IsNegative() {
		return fmt.Errorf("monthly cash savings cannot be negative")
	}
	return nil
}
