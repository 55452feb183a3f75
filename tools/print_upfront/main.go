package main

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/hdbplan/hdbplan/internal/calculation"
	"github.com/hdbplan/hdbplan/internal/config"
)

// Prints the upfront cost components across the BTO price range for
// eyeballing the fee curves against the published HDB tables.
func main() {
	calc := calculation.NewCalculator(config.DefaultPolicy())
	rate := calc.Policy.Loan.InterestRate
	tenure := calc.Policy.Loan.MaxTenureYears

	fmt.Printf("%-10s %-12s %-10s %-10s %-12s %-10s\n",
		"Price", "Downpayment", "BSD", "Legal", "Upfront", "Monthly")

	for price := 300000; price <= 900000; price += 50000 {
		p := decimal.NewFromInt(int64(price))
		loan := p.Mul(calc.Policy.Loan.LTVLimit)
		down := p.Sub(loan)
		duty := calc.StampDuty(p)
		legal := calc.LegalFee(p).Add(calc.LegalFee(loan))
		payment := calculation.MonthlyPayment(loan, rate, tenure)

		fmt.Printf("%-10d %-12s %-10s %-10s %-12s %-10s\n",
			price,
			down.StringFixed(2),
			duty.StringFixed(2),
			legal.StringFixed(2),
			calc.RequiredUpfront(p).StringFixed(2),
			payment.StringFixed(2),
		)
	}
}
