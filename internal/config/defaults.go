package config

import (
	"time"

	"github.com/hdbplan/hdbplan/internal/domain"
	"github.com/shopspring/decimal"
)

// POLICY DATA ASSUMPTIONS:
//
// 1. HDB concessionary loan: 2.6% per annum (CPF OA rate + 0.1%),
//    25 year maximum tenure, 75% LTV, 30% MSR, $14,000 income ceiling
//    (LTV per the Oct 2024 revision)
//
// 2. Buyer's Stamp Duty: residential brackets effective 15 Feb 2023
//    (IRAS); the calculator only carries the first four brackets since
//    BTO prices do not reach the 4%+ bands
//
// 3. HDB legal fees: per-$1,000 conveyancing tiers from HDB's published
//    schedule, 9% GST, $21.80 minimum inclusive of GST
//
// 4. CPF contribution rates: Singapore Citizen rates by age bracket;
//    OA interest held at the 2.5% floor
//
// 5. Savings benchmarks: expense ratios adapted from the Department of
//    Statistics Household Expenditure Survey

// DefaultPolicy returns the built-in policy parameters
func DefaultPolicy() *domain.Policy {
	return &domain.Policy{
		Metadata: domain.PolicyMetadata{
			DataYear:    2026,
			LastUpdated: "2026-02-01",
			Description: "HDB concessionary loan, BSD and CPF parameters",
		},
		Loan: domain.LoanRules{
			InterestRate:   decimal.NewFromFloat(0.026),
			MinTenureYears: 5,
			MaxTenureYears: 25,
			LTVLimit:       decimal.NewFromFloat(0.75),
			MSRLimit:       decimal.NewFromFloat(0.30),
			IncomeCeiling:  decimal.NewFromInt(14000),
		},
		StampDuty: domain.StampDutySchedule{
			Brackets: []domain.RateTier{
				{Width: decimal.NewFromInt(180000), Rate: decimal.NewFromFloat(0.01)},
				{Width: decimal.NewFromInt(180000), Rate: decimal.NewFromFloat(0.02)},
				{Width: decimal.NewFromInt(640000), Rate: decimal.NewFromFloat(0.03)},
				{Width: decimal.Zero, Rate: decimal.NewFromFloat(0.04)},
			},
			MinimumDuty: decimal.NewFromInt(1),
		},
		LegalFees: domain.LegalFeeSchedule{
			Tiers: []domain.RateTier{
				{Width: decimal.NewFromInt(30000), Rate: decimal.NewFromFloat(0.90)},
				{Width: decimal.NewFromInt(30000), Rate: decimal.NewFromFloat(0.72)},
				{Width: decimal.Zero, Rate: decimal.NewFromFloat(0.60)},
			},
			GSTRate:    decimal.NewFromFloat(0.09),
			MinimumFee: decimal.NewFromFloat(21.80),
		},
		CPF: domain.CPFRules{
			OAInterestRate:   decimal.NewFromFloat(0.025),
			EmployeeFlatRate: decimal.NewFromFloat(0.20),
			ContributionRates: []domain.CPFRateBracket{
				{MinAge: 0, MaxAge: 35, Rates: domain.CPFContributionRates{
					Employee: decimal.NewFromFloat(0.20), Employer: decimal.NewFromFloat(0.17), Total: decimal.NewFromFloat(0.37),
					OA: decimal.NewFromFloat(0.23), SA: decimal.NewFromFloat(0.06), MA: decimal.NewFromFloat(0.08),
				}},
				{MinAge: 36, MaxAge: 45, Rates: domain.CPFContributionRates{
					Employee: decimal.NewFromFloat(0.20), Employer: decimal.NewFromFloat(0.17), Total: decimal.NewFromFloat(0.37),
					OA: decimal.NewFromFloat(0.21), SA: decimal.NewFromFloat(0.07), MA: decimal.NewFromFloat(0.09),
				}},
				{MinAge: 46, MaxAge: 50, Rates: domain.CPFContributionRates{
					Employee: decimal.NewFromFloat(0.20), Employer: decimal.NewFromFloat(0.17), Total: decimal.NewFromFloat(0.37),
					OA: decimal.NewFromFloat(0.19), SA: decimal.NewFromFloat(0.08), MA: decimal.NewFromFloat(0.10),
				}},
				{MinAge: 51, MaxAge: 55, Rates: domain.CPFContributionRates{
					Employee: decimal.NewFromFloat(0.20), Employer: decimal.NewFromFloat(0.17), Total: decimal.NewFromFloat(0.37),
					OA: decimal.NewFromFloat(0.15), SA: decimal.NewFromFloat(0.115), MA: decimal.NewFromFloat(0.105),
				}},
				{MinAge: 56, MaxAge: 60, Rates: domain.CPFContributionRates{
					Employee: decimal.NewFromFloat(0.165), Employer: decimal.NewFromFloat(0.145), Total: decimal.NewFromFloat(0.31),
					OA: decimal.NewFromFloat(0.115), SA: decimal.NewFromFloat(0.095), MA: decimal.NewFromFloat(0.10),
				}},
				{MinAge: 61, MaxAge: 65, Rates: domain.CPFContributionRates{
					Employee: decimal.NewFromFloat(0.115), Employer: decimal.NewFromFloat(0.105), Total: decimal.NewFromFloat(0.22),
					OA: decimal.NewFromFloat(0.035), SA: decimal.NewFromFloat(0.065), MA: decimal.NewFromFloat(0.12),
				}},
				{MinAge: 66, MaxAge: 999, Rates: domain.CPFContributionRates{
					Employee: decimal.NewFromFloat(0.075), Employer: decimal.NewFromFloat(0.075), Total: decimal.NewFromFloat(0.15),
					OA: decimal.NewFromFloat(0.01), SA: decimal.NewFromFloat(0.01), MA: decimal.NewFromFloat(0.13),
				}},
			},
		},
		Savings: domain.SavingsRules{
			UnsustainableRatio: decimal.NewFromFloat(0.50),
			Benchmarks: []domain.SavingsBenchmark{
				{MinIncome: decimal.Zero, MaxIncome: decimal.NewFromInt(5000),
					TypicalExpense: decimal.NewFromFloat(0.85), ComfortableRatio: decimal.NewFromFloat(0.15), AggressiveRatio: decimal.NewFromFloat(0.25)},
				{MinIncome: decimal.NewFromInt(5000), MaxIncome: decimal.NewFromInt(8000),
					TypicalExpense: decimal.NewFromFloat(0.75), ComfortableRatio: decimal.NewFromFloat(0.20), AggressiveRatio: decimal.NewFromFloat(0.35)},
				{MinIncome: decimal.NewFromInt(8000), MaxIncome: decimal.NewFromInt(12000),
					TypicalExpense: decimal.NewFromFloat(0.65), ComfortableRatio: decimal.NewFromFloat(0.25), AggressiveRatio: decimal.NewFromFloat(0.40)},
				{MinIncome: decimal.NewFromInt(12000), MaxIncome: decimal.Zero,
					TypicalExpense: decimal.NewFromFloat(0.55), ComfortableRatio: decimal.NewFromFloat(0.30), AggressiveRatio: decimal.NewFromFloat(0.45)},
			},
		},
	}
}

// DefaultHousehold returns a sample two-applicant profile used when no
// household file is given. The second applicant starts work partway
// through the wait for the flat.
func DefaultHousehold() *domain.Household {
	secondStart := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	return &domain.Household{
		Applicants: []domain.Applicant{
			{
				Name:               "Applicant 1",
				Age:                26,
				GrossIncome:        decimal.NewFromInt(5300),
				CPFOABalance:       decimal.NewFromInt(10800),
				CashSavings:        decimal.NewFromInt(12600),
				MonthlyCashSavings: decimal.NewFromInt(1800),
			},
			{
				Name:               "Applicant 2",
				Age:                24,
				GrossIncome:        decimal.NewFromInt(5300),
				EmploymentStart:    &secondStart,
				CPFOABalance:       decimal.Zero,
				CashSavings:        decimal.Zero,
				MonthlyCashSavings: decimal.NewFromInt(1800),
			},
		},
		Commitments:    domain.Commitments{},
		TargetPrice:    decimal.NewFromInt(800000),
		CompletionDate: time.Date(2028, 12, 31, 0, 0, 0, 0, time.UTC),
	}
}
