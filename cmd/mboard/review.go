package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var (
	reviewData string
	reviewOut  string
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Review submitted assessments",
	Long: `Peer review of submitted self-assessments. Platform leads review other
platforms, never their own; reviewers and above review anything submitted.`,
}

var reviewListCmd = &cobra.Command{
	Use:   "list",
	Short: "List assessments the acting role may review",
	RunE:  runReviewList,
}

var reviewMarkCmd = &cobra.Command{
	Use:   "mark <platform> <quarter>",
	Short: "Mark a submitted assessment as reviewed",
	Args:  cobra.ExactArgs(2),
	RunE:  runReviewMark,
}

func init() {
	reviewCmd.AddCommand(reviewListCmd)
	reviewCmd.AddCommand(reviewMarkCmd)
	reviewCmd.PersistentFlags().StringVar(&reviewData, "data", "", "workbook to load (default: seed data)")
	reviewCmd.PersistentFlags().StringVar(&reviewOut, "out", "", "write the updated dataset to this workbook")
}

func runReviewList(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	user, err := currentUser()
	if err != nil {
		return err
	}
	if err := loadData(a, reviewData, cfg.Dashboard.DefaultQuarter); err != nil {
		return err
	}

	queue := a.ReviewQueue(user)
	if len(queue) == 0 {
		fmt.Println("Nothing to review")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PLATFORM\tQUARTER\tSTATUS\tSUBMITTED BY\tANSWERS")
	for _, assessment := range queue {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n",
			assessment.Platform, assessment.Quarter, assessment.Status, assessment.SubmittedBy, len(assessment.Answers))
	}
	return w.Flush()
}

func runReviewMark(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	user, err := currentUser()
	if err != nil {
		return err
	}
	if err := loadData(a, reviewData, cfg.Dashboard.DefaultQuarter); err != nil {
		return err
	}

	platform, quarter := args[0], args[1]
	if err := a.MarkReviewed(user, platform, quarter); err != nil {
		return err
	}
	fmt.Printf("✅ Marked %s %s as reviewed by %s\n", platform, quarter, user.Name)

	if reviewOut != "" {
		if err := writeWorkbook(a, user, reviewOut, cfg.Dashboard.DefaultQuarter); err != nil {
			return err
		}
		fmt.Printf("   Workbook written to %s\n", reviewOut)
	}
	return nil
}
