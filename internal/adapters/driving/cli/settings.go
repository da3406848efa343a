package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the clustering parameters and loader options
stored in the configuration file.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update stored settings",
	Long: `Update one or more stored settings. Only the flags given are changed.

Examples:
  clonegroup settings set --eps 0.15
  clonegroup settings set --ext .html,.md --workers 4`,
	RunE: runSettingsSet,
}

func init() {
	settingsSetCmd.Flags().Float64("eps", 0, "Maximum cosine distance between neighbours")
	settingsSetCmd.Flags().Int("min-samples", 0, "Neighbours required to seed a group")
	settingsSetCmd.Flags().StringSlice("ext", nil, "File extensions to load")
	settingsSetCmd.Flags().Int("workers", 0, "Tiers processed concurrently")

	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Cluster]")
	cmd.Printf("  Eps: %g\n", settings.Cluster.Eps)
	cmd.Printf("  Min samples: %d\n", settings.Cluster.MinSamples)
	cmd.Println()

	cmd.Println("[Loader]")
	cmd.Printf("  Extensions: %s\n", strings.Join(settings.Loader.Extensions, ", "))
	cmd.Println()

	cmd.Println("[Pipeline]")
	cmd.Printf("  Workers: %d\n", settings.Pipeline.Workers)
	cmd.Println()

	if path := settingsService.ConfigPath(); path != "" {
		cmd.Printf("Config file: %s\n", path)
	}

	if err := settingsService.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
		cmd.Println("Run 'clonegroup settings set' to fix configuration issues.")
	} else {
		cmd.Println("Configuration is valid.")
	}

	return nil
}

func runSettingsSet(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	flags := cmd.Flags()
	if !flags.Changed("eps") && !flags.Changed("min-samples") &&
		!flags.Changed("ext") && !flags.Changed("workers") {
		return errors.New("no settings given; use --eps, --min-samples, --ext or --workers")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if flags.Changed("eps") || flags.Changed("min-samples") {
		params := settings.Cluster
		if flags.Changed("eps") {
			if params.Eps, err = flags.GetFloat64("eps"); err != nil {
				return fmt.Errorf("getting eps flag: %w", err)
			}
		}
		if flags.Changed("min-samples") {
			if params.MinSamples, err = flags.GetInt("min-samples"); err != nil {
				return fmt.Errorf("getting min-samples flag: %w", err)
			}
		}
		if err := settingsService.SetClusterParams(params); err != nil {
			return fmt.Errorf("failed to set cluster parameters: %w", err)
		}
		cmd.Printf("Set eps=%g min_samples=%d\n", params.Eps, params.MinSamples)
	}

	if flags.Changed("ext") {
		exts, err := flags.GetStringSlice("ext")
		if err != nil {
			return fmt.Errorf("getting ext flag: %w", err)
		}
		if err := settingsService.SetExtensions(exts); err != nil {
			return fmt.Errorf("failed to set extensions: %w", err)
		}
		cmd.Printf("Set extensions: %s\n", strings.Join(exts, ", "))
	}

	if flags.Changed("workers") {
		workers, err := flags.GetInt("workers")
		if err != nil {
			return fmt.Errorf("getting workers flag: %w", err)
		}
		if err := settingsService.SetWorkers(workers); err != nil {
			return fmt.Errorf("failed to set workers: %w", err)
		}
		cmd.Printf("Set workers: %d\n", workers)
	}

	return nil
}
