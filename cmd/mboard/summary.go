package main

import (
	"os"

	"github.com/platformetrics/maturityboard/internal/app"
	"github.com/platformetrics/maturityboard/internal/models"
	"github.com/platformetrics/maturityboard/internal/output"
	"github.com/spf13/cobra"
)

var (
	summaryData     string
	summaryQuarter  string
	summaryPlatform string
	summaryPillar   string
	summaryMetric   string
	summaryGroups   bool
	summaryDelta    bool
	summaryOutput   string
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Compute the dashboard summary for a quarter",
	Long: `Derives dimension scores for the selected metric. Scored assessments
for the slice drive the numbers; without any, the canned dimension profile
is expanded over the visible team count. Role flags narrow what is visible.

Examples:
  mboard summary --quarter "Q4 2025" --metric Maturity
  mboard summary --data q4.xlsx --platform Consumer --metric Stability --delta
  mboard summary --role supervisor --cio-id cio-consumer --metric Performance`,
	RunE: runSummary,
}

func init() {
	summaryCmd.Flags().StringVar(&summaryData, "data", "", "workbook to load (default: seed data)")
	summaryCmd.Flags().StringVar(&summaryQuarter, "quarter", "", "quarter, e.g. \"Q4 2025\" (default: configured)")
	summaryCmd.Flags().StringVar(&summaryPlatform, "platform", models.PlatformAll, "platform filter")
	summaryCmd.Flags().StringVar(&summaryPillar, "pillar", models.PillarAll, "pillar filter")
	summaryCmd.Flags().StringVar(&summaryMetric, "metric", string(models.MetricMaturity), "dimension metric (Maturity|Performance|Stability|Agility)")
	summaryCmd.Flags().BoolVar(&summaryGroups, "groups", false, "include per-platform and per-pillar tables")
	summaryCmd.Flags().BoolVar(&summaryDelta, "delta", false, "include change versus the previous quarter")
	summaryCmd.Flags().StringVarP(&summaryOutput, "output", "o", "table", "output format (table|json|quiet)")
}

func runSummary(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	user, err := currentUser()
	if err != nil {
		return err
	}

	quarter := summaryQuarter
	if quarter == "" {
		quarter = cfg.Dashboard.DefaultQuarter
	}

	if err := loadData(a, summaryData, quarter); err != nil {
		return err
	}

	res, err := a.Summary(app.SummaryOptions{
		User:          user,
		Quarter:       quarter,
		Platform:      summaryPlatform,
		Pillar:        summaryPillar,
		Metric:        models.Metric(summaryMetric),
		IncludeGroups: summaryGroups,
		IncludeDelta:  summaryDelta,
	})
	if err != nil {
		return err
	}

	verbosity, err := output.ParseVerbosity(summaryOutput)
	if err != nil {
		return err
	}
	return output.NewFormatter(verbosity).Format(res, os.Stdout)
}
