package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/hdbplan/hdbplan/internal/domain"
	"github.com/shopspring/decimal"
)

// ConsoleVerboseFormatter renders the full multi-section console report.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(plan *domain.PurchasePlan) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf, "HDB FLAT PURCHASE AFFORDABILITY ANALYSIS")
	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range DefaultAssumptions {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "As of:           %s\n", plan.AsOf.Format("2 Jan 2006"))
	fmt.Fprintf(&buf, "Completion date: %s\n", plan.CompletionDate.Format("2 Jan 2006"))
	fmt.Fprintln(&buf)

	writeEligibilitySection(&buf, plan.Eligibility)
	writeProjectionSection(&buf, plan)
	writeAffordabilitySection(&buf, plan.Affordability)
	writeTenureSection(&buf, plan)
	writeHealthSection(&buf, plan)

	fmt.Fprintln(&buf, "TIMING")
	fmt.Fprintln(&buf, strings.Repeat("-", 50))
	if plan.FirstAffordable != nil {
		fmt.Fprintf(&buf, "  Target first affordable: month %d (%s)\n",
			plan.FirstAffordable.Month, plan.FirstAffordable.Date.Format("Jan 2006"))
	} else {
		fmt.Fprintln(&buf, "  Target not reached within the planning window.")
	}
	fmt.Fprintf(&buf, "  Max affordable price with projected funds: %s\n", FormatCurrency(plan.MaxAffordable))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "KEY CONSIDERATIONS:")
	fmt.Fprintln(&buf, "• Figures use the HDB concessionary loan; bank loans price differently")
	fmt.Fprintln(&buf, "• CPF OA balances used for the purchase stop earning the projected interest")
	fmt.Fprintln(&buf, "• Grants are not modelled and can reduce the upfront cost substantially")
	fmt.Fprintln(&buf, "• Check the income ceiling and scheme eligibility before committing")

	return buf.Bytes(), nil
}

func writeEligibilitySection(buf *bytes.Buffer, eligibility domain.LoanEligibility) {
	fmt.Fprintln(buf, "LOAN ELIGIBILITY")
	fmt.Fprintln(buf, strings.Repeat("=", 50))
	fmt.Fprintf(buf, "  Monthly commitments:     %s\n", FormatCurrency(eligibility.TotalCommitments))
	fmt.Fprintf(buf, "  Installment capacity:    %s\n", FormatCurrency(eligibility.AvailableCapacity))
	fmt.Fprintf(buf, "  Maximum loan:            %s\n", FormatCurrency(eligibility.MaxLoanAmount))
	fmt.Fprintf(buf, "  Maximum flat price:      %s\n", FormatCurrency(eligibility.MaxFlatPrice))
	fmt.Fprintf(buf, "  Basis: %d-year tenure at %s\n", eligibility.TenureYears,
		FormatPercentage(eligibility.InterestRate.Mul(decimal.NewFromInt(100))))
	if eligibility.ExceedsIncomeCeiling {
		fmt.Fprintln(buf, "  Note: combined income exceeds the HDB income ceiling")
	}
	fmt.Fprintln(buf)
}

func writeProjectionSection(buf *bytes.Buffer, plan *domain.PurchasePlan) {
	if len(plan.Projections) == 0 {
		return
	}

	fmt.Fprintln(buf, "PROJECTED SAVINGS AT COMPLETION")
	fmt.Fprintln(buf, strings.Repeat("=", 50))
	fmt.Fprintf(buf, "  %-20s %8s %14s %14s %14s\n", "Applicant", "Months", "CPF/month", "CPF OA", "Cash")
	fmt.Fprintln(buf, "  "+strings.Repeat("-", 74))
	for _, p := range plan.Projections {
		fmt.Fprintf(buf, "  %-20s %8d %14s %14s %14s\n",
			p.Name, p.ContributionMonths, FormatCurrency(p.MonthlyCPF),
			FormatCurrency(p.ProjectedCPFOA), FormatCurrency(p.ProjectedCash))
	}
	fmt.Fprintf(buf, "  Combined funds at completion: %s\n", FormatCurrency(plan.TotalProjectedAt))
	fmt.Fprintln(buf)
}

func writeAffordabilitySection(buf *bytes.Buffer, result domain.AffordabilityResult) {
	fmt.Fprintf(buf, "AFFORDABILITY AT %s\n", FormatCurrency(result.TargetPrice))
	fmt.Fprintln(buf, strings.Repeat("=", 50))
	fmt.Fprintf(buf, "  Stamp duty:              %s\n", FormatCurrency(result.StampDuty))
	fmt.Fprintf(buf, "  Legal fees:              %s\n", FormatCurrency(result.LegalFees))
	fmt.Fprintf(buf, "  Total cost:              %s\n", FormatCurrency(result.TotalCost))
	fmt.Fprintf(buf, "  Required upfront:        %s\n", FormatCurrency(result.RequiredUpfront))
	fmt.Fprintf(buf, "  Loan needed:             %s\n", FormatCurrency(result.LoanAmount))
	fmt.Fprintf(buf, "  Monthly payment:         %s\n", FormatCurrency(result.MonthlyPayment))
	fmt.Fprintln(buf)
	fmt.Fprintf(buf, "  Projected CPF OA:        %s\n", FormatCurrency(result.ProjectedCPF))
	fmt.Fprintf(buf, "  Projected cash:          %s\n", FormatCurrency(result.ProjectedCash))
	fmt.Fprintf(buf, "  Total available:         %s\n", FormatCurrency(result.TotalAvailable))
	fmt.Fprintf(buf, "  Gap:                     %s\n", FormatCurrency(result.Gap))
	fmt.Fprintln(buf)
	fmt.Fprintf(buf, "  Upfront covered:         %s\n", yesNo(result.CanAffordUpfront))
	fmt.Fprintf(buf, "  Loan within limit:       %s\n", yesNo(result.CanAffordLoan))
	fmt.Fprintf(buf, "  AFFORDABLE:              %s\n", yesNo(result.CanAfford))
	fmt.Fprintln(buf)
}

func writeTenureSection(buf *bytes.Buffer, plan *domain.PurchasePlan) {
	if len(plan.TenureOptions) == 0 {
		return
	}

	fmt.Fprintln(buf, "TENURE COMPARISON")
	fmt.Fprintln(buf, strings.Repeat("=", 50))
	fmt.Fprintf(buf, "  %6s %14s %16s %16s %12s %5s\n",
		"Years", "Monthly", "Total interest", "Interest saved", "Buffer", "Fits")
	fmt.Fprintln(buf, "  "+strings.Repeat("-", 74))
	for _, row := range plan.TenureOptions {
		marker := ""
		if plan.OptimalTenure != nil && row.TenureYears == plan.OptimalTenure.TenureYears {
			marker = " ← shortest fit"
		}
		fmt.Fprintf(buf, "  %6d %14s %16s %16s %12s %5s%s\n",
			row.TenureYears, FormatCurrency(row.MonthlyPayment), FormatCurrency(row.TotalInterest),
			FormatCurrency(row.InterestSaved), FormatCurrency(row.PaymentBuffer), yesNo(row.IsAffordable), marker)
	}
	if plan.OptimalTenure != nil {
		fmt.Fprintf(buf, "  Shortest workable tenure: %d years at %s/month\n",
			plan.OptimalTenure.TenureYears, FormatCurrency(plan.OptimalTenure.MonthlyPayment))
	} else {
		fmt.Fprintln(buf, "  No tenure in the policy range fits the installment capacity.")
	}
	fmt.Fprintln(buf)
}

func writeHealthSection(buf *bytes.Buffer, plan *domain.PurchasePlan) {
	if len(plan.SavingsHealth) == 0 {
		return
	}

	fmt.Fprintln(buf, "SAVINGS HEALTH")
	fmt.Fprintln(buf, strings.Repeat("=", 50))
	for i, check := range plan.SavingsHealth {
		label := fmt.Sprintf("Applicant %d", i+1)
		if i < len(plan.Projections) && plan.Projections[i].Name != "" {
			label = plan.Projections[i].Name
		}
		fmt.Fprintf(buf, "  %s (%s): %s\n", label, check.Status, check.Message)
	}
	fmt.Fprintln(buf)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
