package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/clonegroup/internal/adapters/driving/format"
	"github.com/custodia-labs/clonegroup/internal/core/domain"
)

var groupCmd = &cobra.Command{
	Use:   "group [root]",
	Short: "Group near-duplicate documents",
	Long: `Group near-duplicate documents in every tier under root.

Each subdirectory of root is processed as its own corpus, in name order.
Two documents are neighbours when their cosine distance is at most eps;
neighbourhoods are chained into groups. Documents without neighbours are
reported as groups of one.

Examples:
  clonegroup group ./sites
  clonegroup group ./sites --eps 0.1 --format json
  clonegroup group ./sites/tier1 --tier --ext .html,.md`,
	Args: cobra.ExactArgs(1),
	RunE: runGroup,
}

func init() {
	addGroupFlags(groupCmd)
	groupCmd.Flags().StringP("format", "f", "text", "Output format: text, json or yaml")
	groupCmd.Flags().Bool("tier", false, "Treat root itself as a single tier")
	rootCmd.AddCommand(groupCmd)
}

// addGroupFlags registers the per-run overrides shared by group and watch.
func addGroupFlags(cmd *cobra.Command) {
	cmd.Flags().Float64("eps", domain.DefaultEps, "Maximum cosine distance between neighbours")
	cmd.Flags().Int("min-samples", domain.DefaultMinSamples, "Neighbours required to seed a group")
	cmd.Flags().StringSlice("ext", domain.DefaultExtensions(), "File extensions to load")
	cmd.Flags().IntP("workers", "w", domain.DefaultWorkers, "Tiers processed concurrently")
}

// groupOptions merges stored settings with flags set on the command line.
func groupOptions(cmd *cobra.Command) (domain.GroupOptions, error) {
	opts := domain.DefaultAppSettings().GroupOptions()
	if settingsService != nil {
		settings, err := settingsService.Get()
		if err != nil {
			return opts, fmt.Errorf("failed to get settings: %w", err)
		}
		opts = settings.GroupOptions()
	}

	flags := cmd.Flags()
	if flags.Changed("eps") {
		eps, err := flags.GetFloat64("eps")
		if err != nil {
			return opts, fmt.Errorf("getting eps flag: %w", err)
		}
		opts.Params.Eps = eps
	}
	if flags.Changed("min-samples") {
		minSamples, err := flags.GetInt("min-samples")
		if err != nil {
			return opts, fmt.Errorf("getting min-samples flag: %w", err)
		}
		opts.Params.MinSamples = minSamples
	}
	if flags.Changed("ext") {
		exts, err := flags.GetStringSlice("ext")
		if err != nil {
			return opts, fmt.Errorf("getting ext flag: %w", err)
		}
		opts.Extensions = domain.NormaliseExtensions(exts)
	}
	if flags.Changed("workers") {
		workers, err := flags.GetInt("workers")
		if err != nil {
			return opts, fmt.Errorf("getting workers flag: %w", err)
		}
		opts.Workers = workers
	}

	if err := opts.Params.Validate(); err != nil {
		return opts, err
	}
	if len(opts.Extensions) == 0 {
		return opts, fmt.Errorf("%w: at least one file extension is required", domain.ErrInvalidInput)
	}
	return opts, nil
}

func runGroup(cmd *cobra.Command, args []string) error {
	if groupingService == nil {
		return errors.New("grouping service not configured")
	}

	formatName, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("getting format flag: %w", err)
	}
	outFormat, err := format.Parse(formatName)
	if err != nil {
		return err
	}

	single, err := cmd.Flags().GetBool("tier")
	if err != nil {
		return fmt.Errorf("getting tier flag: %w", err)
	}

	opts, err := groupOptions(cmd)
	if err != nil {
		return err
	}

	root := args[0]
	if single {
		started := time.Now()
		result, err := groupingService.GroupTier(cmd.Context(), root, opts)
		if err != nil {
			return fmt.Errorf("group failed: %w", err)
		}
		if outFormat == format.Text {
			return format.WriteTier(cmd.OutOrStdout(), result)
		}
		report := &domain.Report{
			RunID:     uuid.NewString(),
			Root:      root,
			Params:    opts.WithDefaults().Params,
			StartedAt: started,
			Duration:  time.Since(started),
			Tiers:     []domain.TierResult{*result},
		}
		return format.Write(cmd.OutOrStdout(), report, outFormat)
	}

	report, err := groupingService.GroupRoot(cmd.Context(), root, opts)
	if err != nil {
		return fmt.Errorf("group failed: %w", err)
	}
	return format.Write(cmd.OutOrStdout(), report, outFormat)
}
