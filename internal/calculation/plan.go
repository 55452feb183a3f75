package calculation

import (
	"time"

	"github.com/hdbplan/hdbplan/internal/domain"
)

// BuildPlan runs the full analysis for a household in one pass: loan
// envelope, per-applicant projections to the completion date, the
// affordability verdict at the target price, the price ceiling the
// projected funds support, the shortest tenure the installment
// capacity allows, a comparison across representative tenures, the
// first month the target becomes affordable, and a savings health
// check per applicant.
func (c *Calculator) BuildPlan(household *domain.Household, now time.Time) *domain.PurchasePlan {
	eligibility := c.Eligibility(household.CombinedIncome(), household.Commitments)

	projections := make([]domain.ApplicantProjection, 0, len(household.Applicants))
	projectedCPF := decimalZero
	projectedCash := decimalZero
	for _, applicant := range household.Applicants {
		projection := c.ProjectApplicant(applicant, now, household.CompletionDate)
		projections = append(projections, projection)
		projectedCPF = projectedCPF.Add(projection.ProjectedCPFOA)
		projectedCash = projectedCash.Add(projection.ProjectedCash)
	}

	affordability := c.Affordability(household.TargetPrice, eligibility, projectedCPF, projectedCash)

	// The affordability scan is anchored to the completion window.
	horizon := MonthsBetween(now, household.CompletionDate)
	if horizon < 1 {
		horizon = 1
	}

	health := make([]domain.SavingsHealthCheck, 0, len(household.Applicants))
	for _, applicant := range household.Applicants {
		health = append(health, c.SavingsHealth(applicant.GrossIncome, applicant.MonthlyCashSavings))
	}

	return &domain.PurchasePlan{
		AsOf:             now,
		CompletionDate:   household.CompletionDate,
		Eligibility:      eligibility,
		Projections:      projections,
		Affordability:    affordability,
		MaxAffordable:    c.MaxAffordablePrice(eligibility, affordability.TotalAvailable),
		OptimalTenure:    c.ShortestTenure(affordability.LoanAmount, eligibility.MaxMonthlyInstallment, decimalZero, eligibility.InterestRate),
		TenureOptions:    c.KeyTenureTable(affordability.LoanAmount, eligibility.MaxMonthlyInstallment, eligibility.InterestRate, nil),
		FirstAffordable:  c.FirstAffordableMonth(household, eligibility, now, horizon),
		SavingsHealth:    health,
		TotalProjectedAt: affordability.TotalAvailable,
	}
}
