package main

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/platformetrics/maturityboard/internal/app"
	apperrors "github.com/platformetrics/maturityboard/internal/errors"
	"github.com/platformetrics/maturityboard/internal/config"
	"github.com/platformetrics/maturityboard/internal/logging"
	"github.com/platformetrics/maturityboard/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"

	cfgFile string
	verbose bool
	logger  *logrus.Logger
	cfg     *config.Config

	// Acting identity, used by the permission resolver.
	roleFlag   string
	actorName  string
	platformID string
	cioID      string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		var appErr *apperrors.Error
		if verbose && stderrors.As(err, &appErr) {
			// Full severity, type, hint, and stack breakdown under -v.
			fmt.Fprint(os.Stderr, appErr.DetailedString())
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mboard",
	Short: "MaturityBoard - platform maturity analytics from team data and assessments",
	Long: `MaturityBoard aggregates quarterly team metrics and self-assessment
answers into dimension scores per platform and pillar, with role-based
visibility and Excel import/export.`,
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Initialize logger
		logger = logrus.New()
		if verbose {
			logger.SetLevel(logrus.DebugLevel)
		} else {
			logger.SetLevel(logrus.WarnLevel)
		}

		// Load configuration
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			logger.WithError(err).Warn("Failed to load config, using defaults")
			cfg = config.Default()
		}

		// Structured debug log, optionally mirrored to a file
		level := logging.ParseLevel(cfg.Log.Level)
		if verbose {
			level = logging.DEBUG
		}
		if err := logging.Initialize(logging.DefaultConfig(level, cfg.Log.File, cfg.Log.JSON)); err != nil {
			logger.WithError(err).Warn("Failed to initialize structured logging")
		}
		logging.Debug("command started", "command", cmd.Name(), "role", roleFlag)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Debug("command finished", "command", cmd.Name())
		logging.Close()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.maturityboard/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&roleFlag, "role", "admin", "acting role (superuser|admin|supervisor|reviewer|user)")
	rootCmd.PersistentFlags().StringVar(&actorName, "as", "operator", "acting user name")
	rootCmd.PersistentFlags().StringVar(&platformID, "platform-id", "", "platform assignment for the user role")
	rootCmd.PersistentFlags().StringVar(&cioID, "cio-id", "", "CIO assignment for the supervisor role")

	rootCmd.SetVersionTemplate(`MaturityBoard {{.Version}}
Build time: ` + BuildTime + `
Git commit: ` + GitCommit + `
`)

	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(configCmd)
}

// newApp wires the application for one command invocation.
func newApp() (*app.App, error) {
	return app.New(cfg, logger)
}

// currentUser builds the acting profile from the identity flags.
func currentUser() (models.UserProfile, error) {
	role, ok := models.ParseRole(roleFlag)
	if !ok {
		return models.UserProfile{}, fmt.Errorf("unknown role %q", roleFlag)
	}
	return models.UserProfile{
		Name:       actorName,
		Role:       role,
		CIOID:      cioID,
		PlatformID: platformID,
	}, nil
}
