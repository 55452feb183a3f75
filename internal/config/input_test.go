package config

import (
	"testing"
	"time"

	"github.com/hdbplan/hdbplan/internal/domain"
	"github.com/shopspring/decimal"
)

func TestHouseholdValidation(t *testing.T) {
	employmentStart := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

	validHousehold := &domain.Household{
		Applicants: []domain.Applicant{
			{
				Name:               "First Applicant",
				Age:                30,
				GrossIncome:        decimal.NewFromInt(4500),
				CPFOABalance:       decimal.NewFromInt(25000),
				CashSavings:        decimal.NewFromInt(30000),
				MonthlyCashSavings: decimal.NewFromInt(900),
			},
			{
				Name:            "Second Applicant",
				Age:             28,
				GrossIncome:     decimal.NewFromInt(3800),
				EmploymentStart: &employmentStart,
			},
		},
		Commitments: domain.Commitments{
			CarLoan: decimal.NewFromInt(600),
		},
		TargetPrice:    decimal.NewFromInt(450000),
		CompletionDate: time.Date(2029, 6, 30, 0, 0, 0, 0, time.UTC),
	}

	parser := NewInputParser()
	err := parser.ValidateHousehold(validHousehold)
	if err != nil {
		t.Errorf("Expected valid household but got error: %s", err.Error())
	}
}

func TestDefaultsPassValidation(t *testing.T) {
	parser := NewInputParser()

	if err := parser.ValidatePolicy(DefaultPolicy()); err != nil {
		t.Errorf("Default policy failed validation: %s", err.Error())
	}
	if err := parser.ValidateHousehold(DefaultHousehold()); err != nil {
		t.Errorf("Default household failed validation: %s", err.Error())
	}
}
