package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hdbplan/hdbplan/internal/domain"
	"github.com/shopspring/decimal"
)

// ResultFormatter defines a formatter for the single-operation results
// the CLI prints outside a full plan
type ResultFormatter interface {
	FormatEligibility(res domain.LoanEligibility) (string, error)
	FormatAffordability(res domain.AffordabilityResult) (string, error)
	FormatSavingsHealth(checks []domain.SavingsHealthCheck) (string, error)
	Name() string
}

// NewResultFormatter creates a result formatter based on the format name
func NewResultFormatter(format string) ResultFormatter {
	switch strings.ToLower(format) {
	case "json":
		return ResultJSONFormatter{}
	default:
		return ResultConsoleFormatter{}
	}
}

// ResultConsoleFormatter formats single-operation results for console
type ResultConsoleFormatter struct{}

func (rcf ResultConsoleFormatter) Name() string { return "console" }

func (rcf ResultConsoleFormatter) FormatEligibility(res domain.LoanEligibility) (string, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "LOAN ELIGIBILITY")
	fmt.Fprintln(&buf, strings.Repeat("=", 64))
	fmt.Fprintf(&buf, "  Monthly commitments:      %s\n", FormatCurrency(res.TotalCommitments))
	fmt.Fprintf(&buf, "  Installment capacity:     %s/month\n", FormatCurrency(res.AvailableCapacity))
	fmt.Fprintf(&buf, "  Max loan amount:          %s\n", FormatCurrency(res.MaxLoanAmount))
	fmt.Fprintf(&buf, "  Max flat price:           %s\n", FormatCurrency(res.MaxFlatPrice))
	fmt.Fprintf(&buf, "  Basis:                    %d-year tenure at %s\n",
		res.TenureYears, FormatPercentage(res.InterestRate.Mul(decimal.NewFromInt(100))))

	if res.ExceedsIncomeCeiling {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "  Note: combined income exceeds the HDB loan income ceiling.")
		fmt.Fprintln(&buf, "  An HDB concessionary loan may not be available at this income.")
	}

	return buf.String(), nil
}

func (rcf ResultConsoleFormatter) FormatAffordability(res domain.AffordabilityResult) (string, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "AFFORDABILITY CHECK")
	fmt.Fprintln(&buf, strings.Repeat("=", 64))
	fmt.Fprintf(&buf, "  Target price:             %s\n", FormatCurrency(res.TargetPrice))
	fmt.Fprintf(&buf, "  Stamp duty:               %s\n", FormatCurrency(res.StampDuty))
	fmt.Fprintf(&buf, "  Legal fees:               %s\n", FormatCurrency(res.LegalFees))
	fmt.Fprintf(&buf, "  Total cost:               %s\n", FormatCurrency(res.TotalCost))
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "  Loan needed:              %s\n", FormatCurrency(res.LoanAmount))
	fmt.Fprintf(&buf, "  Monthly payment:          %s\n", FormatCurrency(res.MonthlyPayment))
	fmt.Fprintf(&buf, "  Required upfront:         %s\n", FormatCurrency(res.RequiredUpfront))
	fmt.Fprintf(&buf, "  Available (CPF + cash):   %s\n", FormatCurrency(res.TotalAvailable))
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "  Upfront covered:          %s\n", yesNo(res.CanAffordUpfront))
	fmt.Fprintf(&buf, "  Loan within limit:        %s\n", yesNo(res.CanAffordLoan))

	if res.CanAfford {
		fmt.Fprintf(&buf, "  AFFORDABLE with %s to spare\n", FormatCurrency(res.Gap.Neg()))
	} else {
		fmt.Fprintf(&buf, "  NOT AFFORDABLE, short by %s\n", FormatCurrency(res.Gap))
	}

	return buf.String(), nil
}

func (rcf ResultConsoleFormatter) FormatSavingsHealth(checks []domain.SavingsHealthCheck) (string, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "SAVINGS HEALTH")
	fmt.Fprintln(&buf, strings.Repeat("=", 64))

	for i, check := range checks {
		fmt.Fprintf(&buf, "Applicant %d (%s):\n", i+1, strings.ToUpper(string(check.Status)))
		fmt.Fprintf(&buf, "  Take-home income:         %s\n", FormatCurrency(check.TakeHomeIncome))
		fmt.Fprintf(&buf, "  Savings rate:             %s\n",
			FormatPercentage(check.Ratio.Mul(decimal.NewFromInt(100))))
		fmt.Fprintf(&buf, "  Comfortable benchmark:    %s/month\n", FormatCurrency(check.SuggestedAmount))
		fmt.Fprintf(&buf, "  %s\n", check.Message)
		if i < len(checks)-1 {
			fmt.Fprintln(&buf)
		}
	}

	return buf.String(), nil
}

// ResultJSONFormatter formats single-operation results as indented JSON
type ResultJSONFormatter struct{}

func (rjf ResultJSONFormatter) Name() string { return "json" }

func (rjf ResultJSONFormatter) FormatEligibility(res domain.LoanEligibility) (string, error) {
	return marshalIndented(res)
}

func (rjf ResultJSONFormatter) FormatAffordability(res domain.AffordabilityResult) (string, error) {
	return marshalIndented(res)
}

func (rjf ResultJSONFormatter) FormatSavingsHealth(checks []domain.SavingsHealthCheck) (string, error) {
	return marshalIndented(checks)
}

func marshalIndented(v interface{}) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
