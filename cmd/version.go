package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quadodev/quado/internal/config"
	"github.com/quadodev/quado/internal/version"
)

var checkUpdateFlag bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version, optionally checking the release feed",
	RunE:  runVersion,
}

func init() {
	versionCmd.Flags().BoolVar(&checkUpdateFlag, "check", false, "check the release feed for a newer version")
}

func runVersion(cmd *cobra.Command, _ []string) error {
	fmt.Printf("%s %s\n", version.Name, version.Version)

	if !checkUpdateFlag {
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	checker := version.NewUpdateChecker(cfg.Update.FeedURL)
	result, err := checker.Check(cmd.Context())
	if err != nil {
		return fmt.Errorf("update check failed: %w", err)
	}

	if !result.HasUpdate {
		fmt.Println("up to date")
		return nil
	}

	fmt.Printf("new version available: %s\n", result.Latest.Version)
	if result.Latest.DownloadURL != "" {
		fmt.Printf("download: %s\n", result.Latest.DownloadURL)
	}
	if result.Latest.PageURL != "" {
		fmt.Printf("release notes: %s\n", result.Latest.PageURL)
	}
	return nil
}
