package main

import (
	"fmt"
	"strings"

	"github.com/platformetrics/maturityboard/internal/models"
	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the acting identity and what it can see",
	RunE:  runWhoami,
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

func runWhoami(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	user, err := currentUser()
	if err != nil {
		return err
	}

	fmt.Printf("Name:     %s\n", user.Name)
	fmt.Printf("Role:     %s\n", user.Role)
	if user.PlatformID != "" {
		fmt.Printf("Platform: %s\n", user.PlatformID)
	}
	if user.CIOID != "" {
		fmt.Printf("CIO:      %s\n", user.CIOID)
	}

	visible := a.Resolver.VisiblePlatforms(user, models.Platforms)
	fmt.Printf("Sees:     %s\n", strings.Join(visible, ", "))
	fmt.Printf("Sections: %s\n", strings.Join(a.Resolver.Sections(user), ", "))

	var can []string
	if a.Resolver.CanManageData(user) {
		can = append(can, "manage data")
	}
	if a.Resolver.CanEditQuestions(user) {
		can = append(can, "edit questions")
	}
	if user.Role == models.RoleUser && a.Resolver.CanSee(user, user.PlatformID) {
		can = append(can, fmt.Sprintf("submit for %s", user.PlatformID))
	}
	if len(can) > 0 {
		fmt.Printf("Can:      %s\n", strings.Join(can, ", "))
	}
	return nil
}
