package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var seedOut string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the built-in demo roster",
	Long: `Generates a deterministic roster of teams across all platforms and
pillars for the configured number of quarters, plus the default question
bank. With --out the result is written as a workbook you can edit and
feed back through import or summary --data.`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().StringVar(&seedOut, "out", "", "write the seeded data as a workbook")
}

func runSeed(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	user, err := currentUser()
	if err != nil {
		return err
	}

	n, err := a.SeedTeams(user)
	if err != nil {
		return err
	}
	fmt.Printf("✅ Seeded %d team records across %d quarters\n", n, cfg.Dashboard.SeedQuarters)
	fmt.Printf("   Question bank: %d questions published\n", len(a.Assessments.PublishedQuestions()))

	if seedOut != "" {
		if err := writeWorkbook(a, user, seedOut, cfg.Dashboard.DefaultQuarter); err != nil {
			return err
		}
		fmt.Printf("   Workbook written to %s\n", seedOut)
	}
	return nil
}
