package main

import (
	"fmt"
	"os"

	"github.com/platformetrics/maturityboard/internal/app"
	"github.com/platformetrics/maturityboard/internal/models"
	"github.com/spf13/cobra"
)

var (
	importData    string
	importOut     string
	importQuarter string
	importForce   bool
	importPublish bool
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import teams, assessments or questions from a workbook",
	Long: `Reads one sheet from an Excel workbook into the current dataset and
writes the merged result with --out. The base dataset comes from --data,
or from seed data when omitted.

Team import is wholesale: the uploaded sheet becomes the entire roster.`,
}

var importTeamsCmd = &cobra.Command{
	Use:   "teams <file.xlsx>",
	Short: "Replace the whole team roster from a Teams sheet",
	Args:  cobra.ExactArgs(1),
	RunE:  runImportTeams,
}

var importAssessmentsCmd = &cobra.Command{
	Use:   "assessments <file.xlsx>",
	Short: "Upsert submitted assessments from an Assessments sheet",
	Args:  cobra.ExactArgs(1),
	RunE:  runImportAssessments,
}

var importQuestionsCmd = &cobra.Command{
	Use:   "questions <file.xlsx>",
	Short: "Replace the draft question bank from a Questions sheet",
	Long: `Loads a question sheet into the draft set. Nothing changes for end
users until "mboard questions publish".`,
	Args: cobra.ExactArgs(1),
	RunE: runImportQuestions,
}

func init() {
	importCmd.AddCommand(importTeamsCmd)
	importCmd.AddCommand(importAssessmentsCmd)
	importCmd.AddCommand(importQuestionsCmd)

	importCmd.PersistentFlags().StringVar(&importData, "data", "", "base workbook to merge into (default: seed data)")
	importCmd.PersistentFlags().StringVar(&importOut, "out", "", "write the merged dataset to this workbook")
	importCmd.PersistentFlags().StringVar(&importQuarter, "quarter", "", "quarter the rows belong to (default: configured)")
	importTeamsCmd.Flags().BoolVar(&importForce, "force", false, "skip the destructive-replace confirmation")
	importQuestionsCmd.Flags().BoolVar(&importPublish, "publish", false, "publish the imported questions immediately")
}

func activeQuarter() string {
	if importQuarter != "" {
		return importQuarter
	}
	return cfg.Dashboard.DefaultQuarter
}

func runImportTeams(cmd *cobra.Command, args []string) error {
	ok, err := confirm("This replaces the entire team roster. Continue?", importForce)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("Import cancelled")
		return nil
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	user, err := currentUser()
	if err != nil {
		return err
	}
	if err := loadData(a, importData, activeQuarter()); err != nil {
		return err
	}

	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	sum, err := a.ImportTeams(user, f, activeQuarter())
	if err != nil {
		return err
	}
	fmt.Printf("✅ Teams: %s\n", sum)
	return writeBack(a, user)
}

func runImportAssessments(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	user, err := currentUser()
	if err != nil {
		return err
	}
	if err := loadData(a, importData, activeQuarter()); err != nil {
		return err
	}

	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	sum, err := a.ImportAssessments(user, f)
	if err != nil {
		return err
	}
	fmt.Printf("✅ Assessments: %s\n", sum)
	return writeBack(a, user)
}

func runImportQuestions(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	user, err := currentUser()
	if err != nil {
		return err
	}
	if err := loadData(a, importData, activeQuarter()); err != nil {
		return err
	}

	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	sum, err := a.ImportQuestions(user, f)
	if err != nil {
		return err
	}
	if importPublish {
		if err := a.PublishQuestions(user); err != nil {
			return err
		}
		fmt.Printf("✅ Questions: %s (published)\n", sum)
	} else {
		fmt.Printf("✅ Questions: %s (draft, not yet published)\n", sum)
	}
	return writeBack(a, user)
}

// writeBack persists the merged dataset when --out was given.
func writeBack(a *app.App, user models.UserProfile) error {
	if importOut == "" {
		return nil
	}
	if err := writeWorkbook(a, user, importOut, activeQuarter()); err != nil {
		return err
	}
	fmt.Printf("   Workbook written to %s\n", importOut)
	return nil
}
