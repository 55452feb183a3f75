package main

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/hdbplan/hdbplan/internal/calculation"
	"github.com/hdbplan/hdbplan/internal/config"
	"github.com/hdbplan/hdbplan/internal/output"
)

var planCmd = &cobra.Command{
	Use:   "plan [profile-file]",
	Short: "Run the full purchase assessment for a household profile",
	Long:  "Eligibility, affordability at the target price, savings projections and tenure options in one report",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		calc := calculation.NewCalculator(loadPolicyFromFlags(cmd))

		household := loadHouseholdFromFlags(cmd)
		if len(args) == 1 {
			parser := config.NewInputParser()
			loaded, err := parser.LoadHousehold(args[0])
			if err != nil {
				log.Fatal(err)
			}
			household = loaded
		}

		now := time.Now()
		plan := calc.BuildPlan(household, now)

		// Generate output
		outputFormat, _ := cmd.Flags().GetString("format")

		// Get the formatter and write to stdout instead of file
		if f := output.GetFormatterByName(outputFormat); f != nil {
			data, err := f.Format(plan)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Print(string(data))
		} else {
			// Fallback to original GenerateReport for unsupported formats
			if err := output.GenerateReport(plan, outputFormat); err != nil {
				log.Fatal(err)
			}
		}

		months, _ := cmd.Flags().GetInt("timeline")
		if months > 0 {
			formatter := output.TenureConsoleFormatter{}

			savings, err := formatter.FormatSavingsSeries(calc.SavingsSeries(household, now, months))
			if err != nil {
				log.Fatal(err)
			}
			fmt.Println()
			fmt.Print(savings)

			prices, err := formatter.FormatPriceSeries(
				calc.AffordablePriceSeries(household, plan.Eligibility, now, months))
			if err != nil {
				log.Fatal(err)
			}
			fmt.Println()
			fmt.Print(prices)
		}
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write starter policy and household files into the working directory",
	Run: func(cmd *cobra.Command, args []string) {
		policyFile, _ := cmd.Flags().GetString("policy-out")
		profileFile, _ := cmd.Flags().GetString("profile-out")

		force, _ := cmd.Flags().GetBool("force")
		if !force {
			for _, f := range []string{policyFile, profileFile} {
				if fileExists(f) {
					log.Fatalf("%s already exists (use --force to overwrite)", f)
				}
			}
		}

		if err := output.SavePolicy(config.DefaultPolicy(), policyFile); err != nil {
			log.Fatal(err)
		}
		if err := output.SaveHousehold(config.DefaultHousehold(), profileFile); err != nil {
			log.Fatal(err)
		}

		fmt.Printf("Wrote %s and %s\n", policyFile, profileFile)
	},
}

func init() {
	planCmd.Flags().String("profile", "", "Path to household profile (default: household.yaml if it exists)")
	planCmd.Flags().String("config", "", "Path to policy file (default: policy.yaml if it exists)")
	planCmd.Flags().StringP("format", "f", "console", "Output format (console, console-lite, json, csv, html)")
	planCmd.Flags().Int("timeline", 0, "Also print savings and max-price series for the next N months")

	initCmd.Flags().String("policy-out", "policy.yaml", "Where to write the starter policy")
	initCmd.Flags().String("profile-out", "household.yaml", "Where to write the starter household profile")
	initCmd.Flags().Bool("force", false, "Overwrite existing files")

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(initCmd)
}
