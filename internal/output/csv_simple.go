package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/hdbplan/hdbplan/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per
// tenure option).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(plan *domain.PurchasePlan) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Tenure", "MonthlyPayment", "TotalInterest", "TotalCost", "InterestSavedVsMax", "PaymentBuffer", "Fits"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, row := range plan.TenureOptions {
		record := []string{
			strconv.Itoa(row.TenureYears),
			row.MonthlyPayment.StringFixed(2),
			row.TotalInterest.StringFixed(2),
			row.TotalCost.StringFixed(2),
			row.InterestSaved.StringFixed(2),
			row.PaymentBuffer.StringFixed(2),
			strconv.FormatBool(row.IsAffordable),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), nil
}
