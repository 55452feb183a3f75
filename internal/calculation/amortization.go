package calculation

import (
	"github.com/shopspring/decimal"
)

var (
	decimalZero     = decimal.Zero
	decimalOne      = decimal.NewFromInt(1)
	decimalTwo      = decimal.NewFromInt(2)
	decimalTwelve   = decimal.NewFromInt(12)
	decimalHundred  = decimal.NewFromInt(100)
	decimalThousand = decimal.NewFromInt(1000)
)

// MonthlyPayment calculates the monthly installment for a fully
// amortizing loan using the standard annuity formula
//
//	M = P * r(1+r)^n / ((1+r)^n - 1)
//
// where r is the monthly rate and n the number of monthly payments.
// A zero rate degrades to straight-line repayment; non-positive
// principal or tenure yields zero.
func MonthlyPayment(principal, annualRate decimal.Decimal, tenureYears int) decimal.Decimal {
	if principal.LessThanOrEqual(decimalZero) || tenureYears <= 0 {
		return decimalZero
	}

	months := decimal.NewFromInt(int64(tenureYears) * 12)
	monthlyRate := annualRate.Div(decimalTwelve)
	if monthlyRate.IsZero() {
		return principal.Div(months)
	}

	growth := decimalOne.Add(monthlyRate).Pow(months)
	return principal.Mul(monthlyRate).Mul(growth).Div(growth.Sub(decimalOne))
}

// MaxPrincipal calculates the largest loan a given monthly installment
// can service over the tenure, the present value of the annuity. It is
// the algebraic inverse of MonthlyPayment.
func MaxPrincipal(installment, annualRate decimal.Decimal, tenureYears int) decimal.Decimal {
	if installment.LessThanOrEqual(decimalZero) || tenureYears <= 0 {
		return decimalZero
	}

	months := decimal.NewFromInt(int64(tenureYears) * 12)
	monthlyRate := annualRate.Div(decimalTwelve)
	if monthlyRate.IsZero() {
		return installment.Mul(months)
	}

	growth := decimalOne.Add(monthlyRate).Pow(months)
	return installment.Mul(growth.Sub(decimalOne)).Div(monthlyRate.Mul(growth))
}

// TotalInterest calculates the interest paid over the full life of a
// loan: the sum of all installments less the principal borrowed.
func TotalInterest(principal, annualRate decimal.Decimal, tenureYears int) decimal.Decimal {
	if principal.LessThanOrEqual(decimalZero) || tenureYears <= 0 {
		return decimalZero
	}

	months := decimal.NewFromInt(int64(tenureYears) * 12)
	return MonthlyPayment(principal, annualRate, tenureYears).Mul(months).Sub(principal)
}
