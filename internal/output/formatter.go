package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/hdbplan/hdbplan/internal/domain"
)

// Formatter renders a purchase plan into a byte slice for one output target.
type Formatter interface {
	Format(plan *domain.PurchasePlan) ([]byte, error)
	Name() string
}

// FormatterFunc adapts a plain function into a Formatter.
type FormatterFunc struct {
	ID string
	F  func(plan *domain.PurchasePlan) ([]byte, error)
}

func (f FormatterFunc) Name() string { return f.ID }

func (f FormatterFunc) Format(plan *domain.PurchasePlan) ([]byte, error) { return f.F(plan) }

var registeredFormatters = []Formatter{
	ConsoleFormatter{},
	ConsoleVerboseFormatter{},
	CSVSummarizer{},
	JSONFormatter{},
	HTMLFormatter{},
}

// formatAliases maps accepted format names onto registered formatter names.
var formatAliases = map[string]string{
	"verbose":         "console",
	"console-verbose": "console",
	"lite":            "console-lite",
	"summary":         "console-lite",
}

// AvailableFormatterNames lists the registered formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(registeredFormatters))
	for _, f := range registeredFormatters {
		names = append(names, f.Name())
	}
	return names
}

// AvailableFormatAliases lists the accepted alias spellings.
func AvailableFormatAliases() []string {
	aliases := make([]string, 0, len(formatAliases))
	for alias := range formatAliases {
		aliases = append(aliases, alias)
	}
	return aliases
}

// GetFormatterByName returns the formatter registered under a name or alias,
// or nil when nothing matches.
func GetFormatterByName(name string) Formatter {
	if canonical, ok := formatAliases[name]; ok {
		name = canonical
	}
	for _, f := range registeredFormatters {
		if f.Name() == name {
			return f
		}
	}
	return nil
}

// WriteFormatted runs a formatter and writes the result to a timestamped
// file, returning the filename.
func WriteFormatted(f Formatter, plan *domain.PurchasePlan, extension string) (string, error) {
	data, err := f.Format(plan)
	if err != nil {
		return "", err
	}

	filename := fmt.Sprintf("hdb_plan_%s.%s", time.Now().Format("20060102_150405"), extension)
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", err
	}
	return filename, nil
}

// ConsoleFormatter renders the compact one-screen summary.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(plan *domain.PurchasePlan) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "HDB PURCHASE PLAN SUMMARY")
	fmt.Fprintln(&buf, "=========================")
	fmt.Fprintf(&buf, "Installment capacity: %s/month\n", FormatCurrency(plan.Eligibility.MaxMonthlyInstallment))
	fmt.Fprintf(&buf, "Max loan: %s  Max flat price: %s\n",
		FormatCurrency(plan.Eligibility.MaxLoanAmount), FormatCurrency(plan.Eligibility.MaxFlatPrice))

	verdict := "NOT AFFORDABLE"
	if plan.Affordability.CanAfford {
		verdict = "AFFORDABLE"
	}
	fmt.Fprintf(&buf, "Target %s at completion: %s (gap %s)\n",
		FormatCurrency(plan.Affordability.TargetPrice), verdict, FormatCurrency(plan.Affordability.Gap))
	fmt.Fprintf(&buf, "Funds projected by %s: %s\n",
		plan.CompletionDate.Format("Jan 2006"), FormatCurrency(plan.TotalProjectedAt))
	fmt.Fprintf(&buf, "Max affordable price: %s\n", FormatCurrency(plan.MaxAffordable))

	if plan.OptimalTenure != nil {
		fmt.Fprintf(&buf, "Shortest workable tenure: %d years at %s/month\n",
			plan.OptimalTenure.TenureYears, FormatCurrency(plan.OptimalTenure.MonthlyPayment))
	}
	if plan.FirstAffordable != nil {
		fmt.Fprintf(&buf, "Target first affordable: month %d (%s)\n",
			plan.FirstAffordable.Month, plan.FirstAffordable.Date.Format("Jan 2006"))
	}

	return buf.Bytes(), nil
}

// JSONFormatter emits the full plan as indented JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(plan *domain.PurchasePlan) ([]byte, error) {
	return json.MarshalIndent(plan, "", "  ")
}
