package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/hdbplan/hdbplan/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// GenerateReport renders a purchase plan in the named format. Console
// formats print to stdout; file formats are written to a timestamped file.
func GenerateReport(plan *domain.PurchasePlan, format string) error {
	formatter := GetFormatterByName(format)
	if formatter == nil {
		return fmt.Errorf("unsupported format: %s (available: %s)",
			format, strings.Join(AvailableFormatterNames(), ", "))
	}

	switch formatter.Name() {
	case "console", "console-lite":
		data, err := formatter.Format(plan)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	default:
		filename, err := WriteFormatted(formatter, plan, formatter.Name())
		if err != nil {
			return err
		}
		fmt.Printf("Report written to %s\n", filename)
		return nil
	}
}

// SaveHousehold saves a household profile to a YAML file
func SaveHousehold(household *domain.Household, filename string) error {
	data, err := yaml.Marshal(household)
	if err != nil {
		return err
	}

	return os.WriteFile(filename, data, 0644)
}

// SavePolicy saves a policy to a YAML file
func SavePolicy(policy *domain.Policy, filename string) error {
	data, err := yaml.Marshal(policy)
	if err != nil {
		return err
	}

	return os.WriteFile(filename, data, 0644)
}

// FormatCurrency formats a decimal as currency with thousands separators
func FormatCurrency(amount decimal.Decimal) string {
	s := amount.StringFixed(2)
	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}

	whole, frac, _ := strings.Cut(s, ".")
	var b strings.Builder
	for i := 0; i < len(whole); i++ {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(whole[i])
	}

	if negative {
		return "-$" + b.String() + "." + frac
	}
	return "$" + b.String() + "." + frac
}

// FormatPercentage formats a decimal as percentage
func FormatPercentage(amount decimal.Decimal) string {
	return amount.StringFixed(2) + "%"
}
