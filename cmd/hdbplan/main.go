package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/hdbplan/hdbplan/internal/calculation"
	"github.com/hdbplan/hdbplan/internal/config"
	"github.com/hdbplan/hdbplan/internal/domain"
	"github.com/hdbplan/hdbplan/internal/output"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "hdbplan %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(os.Stdout, info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

// fileExists checks if a file exists
func fileExists(filename string) bool {
	_, err := os.Stat(filename)
	return !os.IsNotExist(err)
}

var rootCmd = &cobra.Command{
	Use:   "hdbplan",
	Short: "HDB BTO affordability calculator CLI",
	Long:  "Loan eligibility, upfront cost and savings runway calculator for HDB flat purchases",
}

// loadPolicyFromFlags loads the loan policy named by --config, falling
// back to policy.yaml in the working directory and then the built-in
// defaults.
func loadPolicyFromFlags(cmd *cobra.Command) *domain.Policy {
	policyFile, _ := cmd.Flags().GetString("config")
	if policyFile == "" && fileExists("policy.yaml") {
		policyFile = "policy.yaml"
	}
	if policyFile == "" {
		return config.DefaultPolicy()
	}

	parser := config.NewInputParser()
	policy, err := parser.LoadPolicy(policyFile)
	if err != nil {
		log.Fatal(err)
	}
	return policy
}

// loadHouseholdFromFlags loads the purchase profile named by --profile,
// falling back to household.yaml and then the built-in sample profile.
func loadHouseholdFromFlags(cmd *cobra.Command) *domain.Household {
	profileFile, _ := cmd.Flags().GetString("profile")
	if profileFile == "" && fileExists("household.yaml") {
		profileFile = "household.yaml"
	}
	if profileFile == "" {
		return config.DefaultHousehold()
	}

	parser := config.NewInputParser()
	household, err := parser.LoadHousehold(profileFile)
	if err != nil {
		log.Fatal(err)
	}
	return household
}

func moneyFlag(cmd *cobra.Command, name string) decimal.Decimal {
	value, _ := cmd.Flags().GetFloat64(name)
	return decimal.NewFromFloat(value)
}

var eligibilityCmd = &cobra.Command{
	Use:   "eligibility",
	Short: "Calculate the HDB loan envelope from income and commitments",
	Run: func(cmd *cobra.Command, args []string) {
		calc := calculation.NewCalculator(loadPolicyFromFlags(cmd))

		income := moneyFlag(cmd, "income")
		commitments := domain.Commitments{OtherLoans: moneyFlag(cmd, "commitments")}

		tenure, _ := cmd.Flags().GetInt("tenure")
		if tenure == 0 {
			tenure = calc.Policy.Loan.MaxTenureYears
		}
		if tenure < calc.Policy.Loan.MinTenureYears || tenure > calc.Policy.Loan.MaxTenureYears {
			log.Fatalf("tenure must be between %d and %d years",
				calc.Policy.Loan.MinTenureYears, calc.Policy.Loan.MaxTenureYears)
		}
		rate := calc.Policy.Loan.InterestRate
		if rateFlag, _ := cmd.Flags().GetFloat64("rate"); rateFlag > 0 {
			rate = decimal.NewFromFloat(rateFlag)
		}

		eligibility := calc.EligibilityAt(income, commitments, tenure, rate)

		outputFormat, _ := cmd.Flags().GetString("format")
		text, err := output.NewResultFormatter(outputFormat).FormatEligibility(eligibility)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(text)
	},
}

var affordabilityCmd = &cobra.Command{
	Use:   "affordability",
	Short: "Check whether a target price is affordable with projected funds",
	Run: func(cmd *cobra.Command, args []string) {
		calc := calculation.NewCalculator(loadPolicyFromFlags(cmd))

		price := moneyFlag(cmd, "price")
		if !price.IsPositive() {
			log.Fatal("--price must be positive")
		}

		eligibility := calc.Eligibility(
			moneyFlag(cmd, "income"),
			domain.Commitments{OtherLoans: moneyFlag(cmd, "commitments")},
		)
		result := calc.Affordability(price, eligibility, moneyFlag(cmd, "cpf"), moneyFlag(cmd, "cash"))

		outputFormat, _ := cmd.Flags().GetString("format")
		text, err := output.NewResultFormatter(outputFormat).FormatAffordability(result)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(text)
	},
}

var maxpriceCmd = &cobra.Command{
	Use:   "maxprice",
	Short: "Find the highest flat price the available funds can cover",
	Run: func(cmd *cobra.Command, args []string) {
		calc := calculation.NewCalculator(loadPolicyFromFlags(cmd))

		funds := moneyFlag(cmd, "funds")
		if funds.IsNegative() {
			log.Fatal("--funds cannot be negative")
		}

		eligibility := calc.Eligibility(
			moneyFlag(cmd, "income"),
			domain.Commitments{OtherLoans: moneyFlag(cmd, "commitments")},
		)
		maxPrice := calc.MaxAffordablePrice(eligibility, funds)

		outputFormat, _ := cmd.Flags().GetString("format")
		switch outputFormat {
		case "console":
			fmt.Println("MAXIMUM AFFORDABLE PRICE")
			fmt.Println("================================================================")
			fmt.Printf("  Available funds:          %s\n", output.FormatCurrency(funds))
			fmt.Printf("  Max affordable price:     %s\n", output.FormatCurrency(maxPrice))
			fmt.Printf("  Loan envelope ceiling:    %s\n", output.FormatCurrency(eligibility.MaxFlatPrice))
			fmt.Printf("  Upfront cost at that price: %s\n", output.FormatCurrency(calc.RequiredUpfront(maxPrice)))
		case "json":
			payload := struct {
				MaxAffordablePrice decimal.Decimal        `json:"max_affordable_price"`
				AvailableFunds     decimal.Decimal        `json:"available_funds"`
				Eligibility        domain.LoanEligibility `json:"eligibility"`
			}{maxPrice, funds, eligibility}
			data, err := json.MarshalIndent(payload, "", "  ")
			if err != nil {
				log.Fatal(err)
			}
			fmt.Println(string(data))
		default:
			log.Fatalf("Unknown output format: %s (valid: console, json)", outputFormat)
		}
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [input-file]",
	Short: "Validate a household profile or policy file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		inputFile := args[0]
		parser := config.NewInputParser()

		asPolicy, _ := cmd.Flags().GetBool("policy")
		var err error
		if asPolicy {
			_, err = parser.LoadPolicy(inputFile)
		} else {
			_, err = parser.LoadHousehold(inputFile)
		}
		if err != nil {
			log.Fatal(err)
		}

		fmt.Printf("Configuration file %s is valid\n", inputFile)
	},
}

func init() {
	eligibilityCmd.Flags().Float64("income", 0, "Gross monthly household income")
	eligibilityCmd.Flags().Float64("commitments", 0, "Existing monthly debt commitments")
	eligibilityCmd.Flags().Int("tenure", 0, "Loan tenure in years (default: policy maximum)")
	eligibilityCmd.Flags().Float64("rate", 0, "Annual interest rate, e.g. 0.026 (default: policy rate)")
	eligibilityCmd.Flags().StringP("format", "f", "console", "Output format (console, json)")
	eligibilityCmd.Flags().String("config", "", "Path to policy file (default: policy.yaml if it exists)")

	affordabilityCmd.Flags().Float64("price", 0, "Target flat price")
	affordabilityCmd.Flags().Float64("income", 0, "Gross monthly household income")
	affordabilityCmd.Flags().Float64("commitments", 0, "Existing monthly debt commitments")
	affordabilityCmd.Flags().Float64("cpf", 0, "Projected CPF OA balance at key collection")
	affordabilityCmd.Flags().Float64("cash", 0, "Projected cash savings at key collection")
	affordabilityCmd.Flags().StringP("format", "f", "console", "Output format (console, json)")
	affordabilityCmd.Flags().String("config", "", "Path to policy file (default: policy.yaml if it exists)")

	maxpriceCmd.Flags().Float64("income", 0, "Gross monthly household income")
	maxpriceCmd.Flags().Float64("commitments", 0, "Existing monthly debt commitments")
	maxpriceCmd.Flags().Float64("funds", 0, "Funds available for the upfront cost")
	maxpriceCmd.Flags().StringP("format", "f", "console", "Output format (console, json)")
	maxpriceCmd.Flags().String("config", "", "Path to policy file (default: policy.yaml if it exists)")

	validateCmd.Flags().Bool("policy", false, "Validate as a policy file instead of a household profile")

	rootCmd.AddCommand(eligibilityCmd)
	rootCmd.AddCommand(affordabilityCmd)
	rootCmd.AddCommand(maxpriceCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
