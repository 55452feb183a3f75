package domain

import (
	"github.com/shopspring/decimal"
)

// Policy contains the regulatory parameters for HDB loan and purchase
// calculations. This is loaded from policy.yaml so that a rule change is a
// data edit, not a code edit. All rates are decimal fractions (0.026 =
// 2.6%), never percentages.
type Policy struct {
	Metadata  PolicyMetadata    `yaml:"metadata" json:"metadata"`
	Loan      LoanRules         `yaml:"loan" json:"loan"`
	StampDuty StampDutySchedule `yaml:"stamp_duty" json:"stamp_duty"`
	LegalFees LegalFeeSchedule  `yaml:"legal_fees" json:"legal_fees"`
	CPF       CPFRules          `yaml:"cpf" json:"cpf"`
	Savings   SavingsRules      `yaml:"savings" json:"savings"`
}

// PolicyMetadata contains information about the policy data
type PolicyMetadata struct {
	DataYear    int    `yaml:"data_year" json:"data_year"`
	LastUpdated string `yaml:"last_updated" json:"last_updated"`
	Description string `yaml:"description" json:"description"`
}

// LoanRules contains the HDB concessionary loan limits
type LoanRules struct {
	InterestRate   decimal.Decimal `yaml:"interest_rate" json:"interest_rate"`
	MinTenureYears int             `yaml:"min_tenure_years" json:"min_tenure_years"`
	MaxTenureYears int             `yaml:"max_tenure_years" json:"max_tenure_years"`
	LTVLimit       decimal.Decimal `yaml:"ltv_limit" json:"ltv_limit"`
	MSRLimit       decimal.Decimal `yaml:"msr_limit" json:"msr_limit"`
	IncomeCeiling  decimal.Decimal `yaml:"income_ceiling" json:"income_ceiling"`
}

// RateTier is one step of a tiered schedule. Width is the bracket size in
// dollars; a non-positive width marks the final unbounded tier.
type RateTier struct {
	Width decimal.Decimal `yaml:"width" json:"width"`
	Rate  decimal.Decimal `yaml:"rate" json:"rate"`
}

// StampDutySchedule contains the buyer's stamp duty brackets
type StampDutySchedule struct {
	Brackets    []RateTier      `yaml:"brackets" json:"brackets"`
	MinimumDuty decimal.Decimal `yaml:"minimum_duty" json:"minimum_duty"`
}

// LegalFeeSchedule contains the HDB conveyancing fee tiers. Tier rates are
// charged per $1,000 of the amount being conveyed.
type LegalFeeSchedule struct {
	Tiers      []RateTier      `yaml:"tiers" json:"tiers"`
	GSTRate    decimal.Decimal `yaml:"gst_rate" json:"gst_rate"`
	MinimumFee decimal.Decimal `yaml:"minimum_fee" json:"minimum_fee"`
}

// CPFRules contains CPF contribution and Ordinary Account parameters
type CPFRules struct {
	OAInterestRate    decimal.Decimal  `yaml:"oa_interest_rate" json:"oa_interest_rate"`
	EmployeeFlatRate  decimal.Decimal  `yaml:"employee_flat_rate" json:"employee_flat_rate"`
	ContributionRates []CPFRateBracket `yaml:"contribution_rates" json:"contribution_rates"`
}

// CPFRateBracket maps an inclusive age range to its contribution rates
type CPFRateBracket struct {
	MinAge int                  `yaml:"min_age" json:"min_age"`
	MaxAge int                  `yaml:"max_age" json:"max_age"`
	Rates  CPFContributionRates `yaml:"rates" json:"rates"`
}

// CPFContributionRates contains the contribution split for one age bracket
type CPFContributionRates struct {
	Employee decimal.Decimal `yaml:"employee" json:"employee"`
	Employer decimal.Decimal `yaml:"employer" json:"employer"`
	Total    decimal.Decimal `yaml:"total" json:"total"`
	OA       decimal.Decimal `yaml:"oa" json:"oa"`
	SA       decimal.Decimal `yaml:"sa" json:"sa"`
	MA       decimal.Decimal `yaml:"ma" json:"ma"`
}

// SavingsRules contains the savings-rate guidance parameters
type SavingsRules struct {
	UnsustainableRatio decimal.Decimal    `yaml:"unsustainable_ratio" json:"unsustainable_ratio"`
	Benchmarks         []SavingsBenchmark `yaml:"benchmarks" json:"benchmarks"`
}

// SavingsBenchmark maps a gross-income band to typical expense and savings
// ratios. MaxIncome of zero marks the final unbounded band. Bands match on
// min_income <= income < max_income.
type SavingsBenchmark struct {
	MinIncome        decimal.Decimal `yaml:"min_income" json:"min_income"`
	MaxIncome        decimal.Decimal `yaml:"max_income" json:"max_income"`
	TypicalExpense   decimal.Decimal `yaml:"typical_expense_ratio" json:"typical_expense_ratio"`
	ComfortableRatio decimal.Decimal `yaml:"comfortable_savings_ratio" json:"comfortable_savings_ratio"`
	AggressiveRatio  decimal.Decimal `yaml:"aggressive_savings_ratio" json:"aggressive_savings_ratio"`
}

// RatesForAge returns the contribution rates for an age. Ages outside every
// configured bracket fall back to the first (youngest) bracket rather than
// erroring; the loaders reject households with out-of-range ages before
// calculations run.
func (r CPFRules) RatesForAge(age int) CPFContributionRates {
	for _, bracket := range r.ContributionRates {
		if age >= bracket.MinAge && age <= bracket.MaxAge {
			return bracket.Rates
		}
	}
	if len(r.ContributionRates) > 0 {
		return r.ContributionRates[0].Rates
	}
	return CPFContributionRates{}
}

// BenchmarkForIncome returns the savings benchmark band covering a gross
// monthly income, falling back to the last (highest) band.
func (s SavingsRules) BenchmarkForIncome(income decimal.Decimal) SavingsBenchmark {
	for _, band := range s.Benchmarks {
		if income.LessThan(band.MinIncome) {
			continue
		}
		if band.MaxIncome.IsPositive() && income.GreaterThanOrEqual(band.MaxIncome) {
			continue
		}
		return band
	}
	if len(s.Benchmarks) > 0 {
		return s.Benchmarks[len(s.Benchmarks)-1]
	}
	return SavingsBenchmark{}
}
