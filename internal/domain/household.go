package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Applicant is one person on the flat application
type Applicant struct {
	Name        string          `yaml:"name" json:"name"`
	Age         int             `yaml:"age" json:"age"`
	GrossIncome decimal.Decimal `yaml:"gross_income" json:"gross_income"`

	// EmploymentStart is when the applicant starts (or started) drawing a
	// salary. Nil means already employed today.
	EmploymentStart *time.Time `yaml:"employment_start,omitempty" json:"employment_start,omitempty"`

	CPFOABalance       decimal.Decimal `yaml:"cpf_oa_balance" json:"cpf_oa_balance"`
	CashSavings        decimal.Decimal `yaml:"cash_savings" json:"cash_savings"`
	MonthlyCashSavings decimal.Decimal `yaml:"monthly_cash_savings" json:"monthly_cash_savings"`
}

// Commitments are the household's existing monthly debt repayments counted
// against the mortgage servicing ratio
type Commitments struct {
	CreditCard decimal.Decimal `yaml:"credit_card" json:"credit_card"`
	CarLoan    decimal.Decimal `yaml:"car_loan" json:"car_loan"`
	OtherLoans decimal.Decimal `yaml:"other_loans" json:"other_loans"`
}

// Total sums the three commitment figures
func (c Commitments) Total() decimal.Decimal {
	return c.CreditCard.Add(c.CarLoan).Add(c.OtherLoans)
}

// Household is the purchase profile: the applicants, their shared debt
// commitments, and the flat they are planning for
type Household struct {
	Applicants     []Applicant     `yaml:"applicants" json:"applicants"`
	Commitments    Commitments     `yaml:"commitments" json:"commitments"`
	TargetPrice    decimal.Decimal `yaml:"target_price" json:"target_price"`
	CompletionDate time.Time       `yaml:"completion_date" json:"completion_date"`
}

// CombinedIncome sums the applicants' gross monthly incomes
func (h *Household) CombinedIncome() decimal.Decimal {
	total := decimal.Zero
	for _, applicant := range h.Applicants {
		total = total.Add(applicant.GrossIncome)
	}
	return total
}
