package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Tiliavir/study-time-planner/internal/apperrors"
	"github.com/Tiliavir/study-time-planner/internal/config"
	"github.com/Tiliavir/study-time-planner/internal/logger"
	"github.com/Tiliavir/study-time-planner/internal/planner"
	"github.com/Tiliavir/study-time-planner/internal/storage"
)

var (
	cfg  config.Config
	log  *zap.Logger
	plan *planner.Planner
)

var rootCmd = &cobra.Command{
	Use:   "stp",
	Short: "Study Time Planner – exam-driven study scheduling",
	Long: `stp keeps a list of subjects with exam dates and builds a study
schedule that fits each subject's recommended hours before its exam.
All data is stored as a human-readable JSON file in ~/.stp/.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		syncLog()
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		exit(1)
	}
}

func init() {
	rootCmd.AddCommand(subjectCmd)
	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(conflictsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(remindCmd)
	rootCmd.AddCommand(exportCmd)
}

// setup loads configuration, builds the logger and opens the planner.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log, err = logger.New(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	path := cfg.DataFile
	if path == "" {
		path, err = storage.DefaultPath()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			exit(2)
		}
	}

	plan = planner.New(storage.NewFileStore(path, log),
		planner.WithLogger(log),
		planner.WithDefaultDailyHours(cfg.Schedule.DailyStudyHours),
	)
	return nil
}

// handle reports err and exits unless it is a persistence failure, which
// only warns because the change has already been applied in memory.
// User mistakes exit with 1, environment failures with 2.
func handle(err error) {
	switch {
	case err == nil:
	case errors.Is(err, apperrors.ErrPersistence):
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	case apperrors.IsUserError(err):
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
	default:
		fmt.Fprintln(os.Stderr, err)
		exit(2)
	}
}

// osExit is swapped in tests.
var osExit = os.Exit

// exit flushes the logger and terminates. os.Exit skips PersistentPostRun.
func exit(code int) {
	syncLog()
	osExit(code)
}

func syncLog() {
	if log != nil {
		_ = log.Sync()
	}
}

// shortID is the first eight characters of a session ID, enough to type
// back into session delete/complete.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
