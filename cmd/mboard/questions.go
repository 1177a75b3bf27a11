package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var (
	questionsData  string
	questionsDraft bool
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Inspect and publish the assessment question bank",
}

var questionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the question bank",
	Long: `Lists the published question set that end users answer. --draft shows
the admin working set instead, which may differ until published.`,
	RunE: runQuestionsList,
}

var questionsPublishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Publish the draft question set",
	RunE:  runQuestionsPublish,
}

func init() {
	questionsCmd.AddCommand(questionsListCmd)
	questionsCmd.AddCommand(questionsPublishCmd)

	questionsCmd.PersistentFlags().StringVar(&questionsData, "data", "", "workbook to load (default: seed data)")
	questionsListCmd.Flags().BoolVar(&questionsDraft, "draft", false, "show the draft set instead of the published set")
}

func runQuestionsList(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if err := loadData(a, questionsData, cfg.Dashboard.DefaultQuarter); err != nil {
		return err
	}

	questions := a.Assessments.PublishedQuestions()
	label := "published"
	if questionsDraft {
		questions = a.Assessments.DraftQuestions()
		label = "draft"
	}

	state := "clean"
	if !a.Assessments.QuestionsPublished() {
		state = "draft has unpublished changes"
	}
	fmt.Printf("%d %s questions (%s)\n\n", len(questions), label, state)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPILLAR\tMETRIC\tSUB-METRIC\tQUESTION")
	for _, q := range questions {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", q.ID, q.Pillar, q.DimensionMetric, q.SubMetric, q.Question)
	}
	return w.Flush()
}

func runQuestionsPublish(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	user, err := currentUser()
	if err != nil {
		return err
	}
	if err := loadData(a, questionsData, cfg.Dashboard.DefaultQuarter); err != nil {
		return err
	}

	if err := a.PublishQuestions(user); err != nil {
		return err
	}
	fmt.Printf("✅ Published %d questions\n", len(a.Assessments.PublishedQuestions()))
	return nil
}
