package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hdbplan/hdbplan/internal/domain"
)

// TenureFormatter defines a formatter for tenure comparisons
type TenureFormatter interface {
	FormatTenureTable(table []domain.TenureAnalysis, shortest *domain.TenureAnalysis) (string, error)
	Name() string
}

// TenureConsoleFormatter formats tenure comparisons for console
type TenureConsoleFormatter struct{}

func (tcf TenureConsoleFormatter) Name() string { return "console" }

func (tcf TenureConsoleFormatter) FormatTenureTable(table []domain.TenureAnalysis, shortest *domain.TenureAnalysis) (string, error) {
	if len(table) == 0 {
		return "", fmt.Errorf("no tenures in table")
	}

	var buf bytes.Buffer

	fmt.Fprintln(&buf, "TENURE COMPARISON")
	fmt.Fprintln(&buf, strings.Repeat("=", 80))
	fmt.Fprintf(&buf, "%-7s %-14s %-16s %-16s %-14s %-5s\n",
		"Years", "Monthly", "Total interest", "Interest saved", "Buffer", "Fits")
	fmt.Fprintln(&buf, strings.Repeat("-", 80))

	for _, row := range table {
		marker := ""
		if shortest != nil && row.TenureYears == shortest.TenureYears {
			marker = " ← shortest fit"
		}
		fmt.Fprintf(&buf, "%-7d %-14s %-16s %-16s %-14s %-5s%s\n",
			row.TenureYears,
			FormatCurrency(row.MonthlyPayment),
			FormatCurrency(row.TotalInterest),
			FormatCurrency(row.InterestSaved),
			FormatCurrency(row.PaymentBuffer),
			yesNo(row.IsAffordable),
			marker)
	}

	fmt.Fprintln(&buf)
	if shortest != nil {
		fmt.Fprintf(&buf, "Shortest workable tenure: %d years at %s/month (saves %s in interest)\n",
			shortest.TenureYears,
			FormatCurrency(shortest.MonthlyPayment),
			FormatCurrency(shortest.InterestSaved))
	} else {
		fmt.Fprintln(&buf, "No tenure in the allowed range fits the installment ceiling.")
	}

	return buf.String(), nil
}

// FormatSavingsSeries renders the month-by-month savings growth series
// as a table. One row per month, balances in dollars.
func (tcf TenureConsoleFormatter) FormatSavingsSeries(series []domain.SavingsPoint) (string, error) {
	if len(series) == 0 {
		return "", fmt.Errorf("no points in series")
	}

	var buf bytes.Buffer

	fmt.Fprintln(&buf, "PROJECTED SAVINGS GROWTH")
	fmt.Fprintln(&buf, strings.Repeat("=", 64))
	fmt.Fprintf(&buf, "%-7s %-10s %-15s %-15s %-15s\n",
		"Month", "Date", "CPF OA", "Cash", "Total")
	fmt.Fprintln(&buf, strings.Repeat("-", 64))

	for _, point := range series {
		fmt.Fprintf(&buf, "%-7d %-10s %-15s %-15s %-15s\n",
			point.Month,
			point.Date.Format("Jan 2006"),
			FormatCurrency(point.CPFOA),
			FormatCurrency(point.Cash),
			FormatCurrency(point.Total))
	}

	return buf.String(), nil
}

// FormatPriceSeries renders the max-affordable-price-over-time series
// as a table.
func (tcf TenureConsoleFormatter) FormatPriceSeries(series []domain.AffordablePricePoint) (string, error) {
	if len(series) == 0 {
		return "", fmt.Errorf("no points in series")
	}

	var buf bytes.Buffer

	fmt.Fprintln(&buf, "MAX AFFORDABLE PRICE OVER TIME")
	fmt.Fprintln(&buf, strings.Repeat("=", 40))
	fmt.Fprintf(&buf, "%-7s %-10s %-15s\n", "Month", "Date", "Max price")
	fmt.Fprintln(&buf, strings.Repeat("-", 40))

	for _, point := range series {
		fmt.Fprintf(&buf, "%-7d %-10s %-15s\n",
			point.Month,
			point.Date.Format("Jan 2006"),
			FormatCurrency(point.MaxPrice))
	}

	return buf.String(), nil
}

// TenureCSVFormatter formats tenure comparisons as CSV
type TenureCSVFormatter struct{}

func (tcf TenureCSVFormatter) Name() string { return "csv" }

func (tcf TenureCSVFormatter) FormatTenureTable(table []domain.TenureAnalysis, shortest *domain.TenureAnalysis) (string, error) {
	if len(table) == 0 {
		return "", fmt.Errorf("no tenures in table")
	}

	var buf bytes.Buffer

	fmt.Fprintf(&buf, "tenure_years,monthly_payment,total_interest,total_cost,interest_saved_vs_max,payment_buffer,is_affordable,is_shortest_fit\n")

	for _, row := range table {
		isShortest := shortest != nil && row.TenureYears == shortest.TenureYears
		fmt.Fprintf(&buf, "%d,%s,%s,%s,%s,%s,%t,%t\n",
			row.TenureYears,
			row.MonthlyPayment.StringFixed(2),
			row.TotalInterest.StringFixed(2),
			row.TotalCost.StringFixed(2),
			row.InterestSaved.StringFixed(2),
			row.PaymentBuffer.StringFixed(2),
			row.IsAffordable,
			isShortest)
	}

	return buf.String(), nil
}

// TenureJSONFormatter formats tenure comparisons as JSON
type TenureJSONFormatter struct{}

func (tjf TenureJSONFormatter) Name() string { return "json" }

func (tjf TenureJSONFormatter) FormatTenureTable(table []domain.TenureAnalysis, shortest *domain.TenureAnalysis) (string, error) {
	payload := struct {
		Table    []domain.TenureAnalysis `json:"table"`
		Shortest *domain.TenureAnalysis  `json:"shortest_fit,omitempty"`
	}{Table: table, Shortest: shortest}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// NewTenureFormatter creates a tenure formatter based on the format name
func NewTenureFormatter(format string) TenureFormatter {
	switch strings.ToLower(format) {
	case "csv":
		return TenureCSVFormatter{}
	case "json":
		return TenureJSONFormatter{}
	default:
		return TenureConsoleFormatter{}
	}
}
