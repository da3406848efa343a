// Package cli implements the clonegroup command line interface.
package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/clonegroup/internal/core/ports/driving"
	"github.com/custodia-labs/clonegroup/internal/logger"
)

// version is overridden by SetVersion from the build.
var version = "dev"

// Services configured by the composition root.
var (
	groupingService driving.GroupingService
	settingsService driving.SettingsService
	watchService    driving.WatchService
)

// Services bundles the driving ports the commands call into.
type Services struct {
	Grouping driving.GroupingService
	Settings driving.SettingsService
	Watch    driving.WatchService
}

// ServiceFactory builds the services for a config directory. An empty
// directory selects the default location.
type ServiceFactory func(configDir string) (Services, error)

var serviceFactory ServiceFactory

var rootCmd = &cobra.Command{
	Use:   "clonegroup",
	Short: "Group near-duplicate documents",
	Long: `clonegroup groups near-duplicate markup documents.

Every subdirectory of the chosen root is a tier. Documents in a tier are
compared by TF-IDF cosine similarity and grouped with density based
clustering, so documents that are nearly identical end up together.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupRun,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Print pipeline progress to stderr")
	rootCmd.PersistentFlags().String("config-dir", "", "Configuration directory (default ~/.clonegroup)")
}

// SetServices installs the services used by every command.
func SetServices(s Services) {
	groupingService = s.Grouping
	settingsService = s.Settings
	watchService = s.Watch
}

// SetServiceFactory registers the builder invoked once flags are parsed.
func SetServiceFactory(factory ServiceFactory) {
	serviceFactory = factory
}

// SetVersion sets the version printed by the version command.
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return fang.Execute(ctx, rootCmd)
}

func setupRun(cmd *cobra.Command, _ []string) error {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return fmt.Errorf("getting verbose flag: %w", err)
	}
	logger.SetVerbose(verbose)

	if serviceFactory == nil {
		return nil
	}

	configDir, err := cmd.Flags().GetString("config-dir")
	if err != nil {
		return fmt.Errorf("getting config-dir flag: %w", err)
	}
	services, err := serviceFactory(configDir)
	if err != nil {
		return fmt.Errorf("initialising services: %w", err)
	}
	SetServices(services)
	return nil
}
