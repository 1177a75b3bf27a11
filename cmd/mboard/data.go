package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/platformetrics/maturityboard/internal/app"
	"github.com/platformetrics/maturityboard/internal/models"
	"golang.org/x/term"
)

// loaderProfile is the identity used for reading a workbook back into the
// stores. Loading your own data file is not a permissioned operation; the
// acting role applies to the command itself, not to the load.
var loaderProfile = models.UserProfile{Name: "loader", Role: models.RoleAdmin}

// loadData fills the stores either from a workbook or from seed data.
// Workbooks produced by the export command carry all three sheets, but a
// hand-made file with only team data is acceptable: sections whose sheet
// is missing are skipped.
func loadData(a *app.App, dataFile, quarter string) error {
	if dataFile == "" {
		if _, err := a.SeedTeams(loaderProfile); err != nil {
			return err
		}
		return nil
	}

	f, err := os.Open(dataFile)
	if err != nil {
		return fmt.Errorf("open data file: %w", err)
	}
	defer f.Close()
	return a.LoadWorkbook(loaderProfile, f, quarter)
}

// writeWorkbook exports one quarter of state for the acting user.
func writeWorkbook(a *app.App, user models.UserProfile, path, quarter string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return a.Export(user, f, quarter)
}

// confirm asks the operator before a destructive step. Non-interactive
// runs (pipes, CI) refuse unless --force was given.
func confirm(prompt string, force bool) (bool, error) {
	if force {
		return true, nil
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return false, fmt.Errorf("refusing without a terminal; pass --force to proceed")
	}
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false, err
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}
