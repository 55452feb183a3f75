package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoanEligibility is the loan envelope derived from income and commitments.
// MaxMonthlyInstallment and AvailableCapacity carry the same figure: the
// capacity is what remains of the MSR allowance after commitments, and it is
// also the largest installment the household may take on.
type LoanEligibility struct {
	MaxMonthlyInstallment decimal.Decimal `json:"max_monthly_installment"`
	MaxLoanAmount         decimal.Decimal `json:"max_loan_amount"`
	MaxFlatPrice          decimal.Decimal `json:"max_flat_price"`
	TenureYears           int             `json:"tenure_years"`
	InterestRate          decimal.Decimal `json:"interest_rate"`
	AvailableCapacity     decimal.Decimal `json:"available_installment_capacity"`
	TotalCommitments      decimal.Decimal `json:"total_commitments"`

	// ExceedsIncomeCeiling is informational only; crossing the ceiling
	// affects scheme eligibility, not the arithmetic here.
	ExceedsIncomeCeiling bool `json:"exceeds_income_ceiling"`
}

// AffordabilityResult is the verdict for one target price
type AffordabilityResult struct {
	TargetPrice      decimal.Decimal `json:"target_price"`
	StampDuty        decimal.Decimal `json:"stamp_duty"`
	LegalFees        decimal.Decimal `json:"legal_fees"`
	TotalCost        decimal.Decimal `json:"total_cost"`
	RequiredUpfront  decimal.Decimal `json:"required_upfront"`
	LoanAmount       decimal.Decimal `json:"loan_amount"`
	ProjectedCPF     decimal.Decimal `json:"projected_cpf_oa"`
	ProjectedCash    decimal.Decimal `json:"projected_cash"`
	TotalAvailable   decimal.Decimal `json:"total_available"`
	Gap              decimal.Decimal `json:"gap"`
	CanAffordUpfront bool            `json:"can_afford_upfront"`
	CanAffordLoan    bool            `json:"can_afford_loan"`
	CanAfford        bool            `json:"can_afford"`
	MonthlyPayment   decimal.Decimal `json:"monthly_payment"`
}

// TenureAnalysis is the cost picture for one repayment duration
type TenureAnalysis struct {
	TenureYears    int             `json:"tenure_years"`
	MonthlyPayment decimal.Decimal `json:"monthly_payment"`
	TotalInterest  decimal.Decimal `json:"total_interest"`
	TotalCost      decimal.Decimal `json:"total_cost"`
	InterestSaved  decimal.Decimal `json:"interest_saved_vs_max"`
	PaymentBuffer  decimal.Decimal `json:"payment_buffer"`
	IsAffordable   bool            `json:"is_affordable"`
}

// SavingsHealthStatus classifies a monthly savings rate
type SavingsHealthStatus string

const (
	SavingsStatusNone          SavingsHealthStatus = "none"
	SavingsStatusLow           SavingsHealthStatus = "low"
	SavingsStatusHealthy       SavingsHealthStatus = "healthy"
	SavingsStatusAggressive    SavingsHealthStatus = "aggressive"
	SavingsStatusUnsustainable SavingsHealthStatus = "unsustainable"
	SavingsStatusInvalid       SavingsHealthStatus = "invalid"
)

// SavingsHealthCheck is the assessment of one applicant's savings rate
type SavingsHealthCheck struct {
	Ratio           decimal.Decimal     `json:"ratio"`
	Status          SavingsHealthStatus `json:"status"`
	Message         string              `json:"message"`
	SuggestedAmount decimal.Decimal     `json:"suggested_amount"`
	TakeHomeIncome  decimal.Decimal     `json:"take_home_income"`
}

// ApplicantProjection is one applicant's savings carried forward to a
// target date
type ApplicantProjection struct {
	Name               string          `json:"name"`
	ContributionMonths int             `json:"contribution_months"`
	MonthlyCPF         decimal.Decimal `json:"monthly_cpf_contribution"`
	ProjectedCPFOA     decimal.Decimal `json:"projected_cpf_oa"`
	ProjectedCash      decimal.Decimal `json:"projected_cash"`
}

// SavingsPoint is one month of the combined savings growth series
type SavingsPoint struct {
	Month int             `json:"month"`
	Date  time.Time       `json:"date"`
	CPFOA decimal.Decimal `json:"cpf_oa"`
	Cash  decimal.Decimal `json:"cash"`
	Total decimal.Decimal `json:"total"`
}

// AffordablePricePoint is one month of the price-ceiling-over-time series
type AffordablePricePoint struct {
	Month    int             `json:"month"`
	Date     time.Time       `json:"date"`
	MaxPrice decimal.Decimal `json:"max_price"`
}

// AffordableMonth marks when a target price first becomes affordable
type AffordableMonth struct {
	Month int       `json:"month"`
	Date  time.Time `json:"date"`
}

// PurchasePlan is the full assessment for a household: the loan envelope,
// the verdict at the target price, projections to the completion date, and
// the supporting analyses
type PurchasePlan struct {
	AsOf             time.Time             `json:"as_of"`
	CompletionDate   time.Time             `json:"completion_date"`
	Eligibility      LoanEligibility       `json:"eligibility"`
	Projections      []ApplicantProjection `json:"projections"`
	Affordability    AffordabilityResult   `json:"affordability"`
	MaxAffordable    decimal.Decimal       `json:"max_affordable_price"`
	OptimalTenure    *TenureAnalysis       `json:"optimal_tenure,omitempty"`
	TenureOptions    []TenureAnalysis      `json:"tenure_options"`
	FirstAffordable  *AffordableMonth      `json:"first_affordable,omitempty"`
	SavingsHealth    []SavingsHealthCheck  `json:"savings_health"`
	TotalProjectedAt decimal.Decimal       `json:"total_projected_at_completion"`
}
