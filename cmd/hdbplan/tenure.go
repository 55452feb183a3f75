package main

import (
	"fmt"
	"log"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/hdbplan/hdbplan/internal/calculation"
	"github.com/hdbplan/hdbplan/internal/domain"
	"github.com/hdbplan/hdbplan/internal/output"
)

var tenureCmd = &cobra.Command{
	Use:   "tenure",
	Short: "Compare repayment tenures for a loan amount",
	Long:  "Show monthly payment, total interest and ceiling buffer per tenure, plus the shortest tenure that fits",
	Run: func(cmd *cobra.Command, args []string) {
		calc := calculation.NewCalculator(loadPolicyFromFlags(cmd))

		loanAmount := moneyFlag(cmd, "loan")
		if !loanAmount.IsPositive() {
			log.Fatal("--loan must be positive")
		}
		ceiling := moneyFlag(cmd, "ceiling")
		buffer := moneyFlag(cmd, "buffer")

		rate := calc.Policy.Loan.InterestRate
		if rateFlag, _ := cmd.Flags().GetFloat64("rate"); rateFlag > 0 {
			rate = decimal.NewFromFloat(rateFlag)
		}

		var table []domain.TenureAnalysis
		if full, _ := cmd.Flags().GetBool("full"); full {
			table = calc.TenureTable(loanAmount, ceiling, rate)
		} else {
			table = calc.KeyTenureTable(loanAmount, ceiling, rate, nil)
		}
		shortest := calc.ShortestTenure(loanAmount, ceiling, buffer, rate)

		outputFormat, _ := cmd.Flags().GetString("format")
		text, err := output.NewTenureFormatter(outputFormat).FormatTenureTable(table, shortest)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(text)
	},
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Grade monthly savings against take-home income",
	Run: func(cmd *cobra.Command, args []string) {
		calc := calculation.NewCalculator(loadPolicyFromFlags(cmd))

		var checks []domain.SavingsHealthCheck
		if profileFile, _ := cmd.Flags().GetString("profile"); profileFile != "" || fileExists("household.yaml") {
			household := loadHouseholdFromFlags(cmd)
			for _, applicant := range household.Applicants {
				checks = append(checks, calc.SavingsHealth(applicant.GrossIncome, applicant.MonthlyCashSavings))
			}
		} else {
			checks = append(checks, calc.SavingsHealth(moneyFlag(cmd, "income"), moneyFlag(cmd, "savings")))
		}

		outputFormat, _ := cmd.Flags().GetString("format")
		text, err := output.NewResultFormatter(outputFormat).FormatSavingsHealth(checks)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(text)
	},
}

func init() {
	tenureCmd.Flags().Float64("loan", 0, "Loan amount to amortize")
	tenureCmd.Flags().Float64("ceiling", 0, "Monthly installment ceiling")
	tenureCmd.Flags().Float64("buffer", 0, "Comfort buffer below the ceiling for the shortest-fit search")
	tenureCmd.Flags().Float64("rate", 0, "Annual interest rate (default: policy rate)")
	tenureCmd.Flags().Bool("full", false, "Show every tenure from the policy minimum to maximum")
	tenureCmd.Flags().StringP("format", "f", "console", "Output format (console, csv, json)")
	tenureCmd.Flags().String("config", "", "Path to policy file (default: policy.yaml if it exists)")

	healthCmd.Flags().Float64("income", 0, "Gross monthly income")
	healthCmd.Flags().Float64("savings", 0, "Current monthly cash savings")
	healthCmd.Flags().String("profile", "", "Path to household profile (checks every applicant)")
	healthCmd.Flags().StringP("format", "f", "console", "Output format (console, json)")
	healthCmd.Flags().String("config", "", "Path to policy file (default: policy.yaml if it exists)")

	rootCmd.AddCommand(tenureCmd)
	rootCmd.AddCommand(healthCmd)
}
