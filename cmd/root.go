// Package cmd wires the command line surface to the store and the TUI.
package cmd

import (
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/quadodev/quado/internal/config"
	"github.com/quadodev/quado/internal/database"
	"github.com/quadodev/quado/internal/logging"
	"github.com/quadodev/quado/internal/reminder"
	"github.com/quadodev/quado/internal/services/board"
	"github.com/quadodev/quado/internal/services/group"
	"github.com/quadodev/quado/internal/services/settings"
	"github.com/quadodev/quado/internal/services/task"
	"github.com/quadodev/quado/internal/tui"
)

var dbPathFlag string

var rootCmd = &cobra.Command{
	Use:   "quado",
	Short: "A quadrant to-do board in the terminal",
	Long: `quado keeps tasks in named groups, sorts them into the four
important/urgent quadrants and stores everything in a single local
SQLite file.`,
	RunE: runBoard,

	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPathFlag, "db", "", "path to the database file (defaults to the user config dir)")
	rootCmd.AddCommand(versionCmd)
}

func runBoard(cmd *cobra.Command, _ []string) error {
	// Logging must come first: stdout belongs to the TUI from here on
	if err := logging.Init(); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	path, err := resolveDBPath(cfg)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	db, err := database.InitDB(ctx, path)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	repo := database.NewRepository(db)
	defer repo.Close()

	groupSvc := group.NewService(repo)
	taskSvc := task.NewService(repo, repo)
	settingsSvc := settings.NewService(repo)
	svcs := tui.Services{
		Groups:   groupSvc,
		Tasks:    taskSvc,
		Settings: settingsSvc,
		Board:    board.NewService(groupSvc, taskSvc, settingsSvc),
	}

	gate := reminder.New(settingsSvc, time.Duration(cfg.Reminder.IntervalMinutes)*time.Minute)

	model := tui.InitialModel(ctx, svcs, cfg, gate)
	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run program: %w", err)
	}
	return nil
}

// resolveDBPath picks the database location: the --db flag wins, then the
// config file, then the per-user default
func resolveDBPath(cfg *config.Config) (string, error) {
	if dbPathFlag != "" {
		return dbPathFlag, nil
	}
	if cfg.Database.Path != "" {
		return cfg.Database.Path, nil
	}
	path, err := database.DefaultDBPath()
	if err != nil {
		return "", fmt.Errorf("failed to resolve database path: %w", err)
	}
	return path, nil
}
