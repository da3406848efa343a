package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/clonegroup/internal/adapters/driving/format"
	"github.com/custodia-labs/clonegroup/internal/core/domain"
	"github.com/custodia-labs/clonegroup/internal/core/services"
)

var watchCmd = &cobra.Command{
	Use:   "watch [root]",
	Short: "Re-group documents whenever the tree changes",
	Long: `Group documents under root, then watch the tree and run the full
pipeline again after every burst of changes. Stop with Ctrl+C.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	addGroupFlags(watchCmd)
	watchCmd.Flags().Duration("debounce", services.DefaultDebounce, "Quiet period before re-running")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if watchService == nil {
		return errors.New("watch service not configured")
	}

	debounce, err := cmd.Flags().GetDuration("debounce")
	if err != nil {
		return fmt.Errorf("getting debounce flag: %w", err)
	}

	opts, err := groupOptions(cmd)
	if err != nil {
		return err
	}

	root := args[0]
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	cmd.Printf("Watching %s for changes...\n", root)

	return watchService.Watch(cmd.Context(), root, opts, debounce, func(report *domain.Report, err error) {
		if err != nil {
			fmt.Fprintf(errOut, "group failed: %v\n", err)
			return
		}
		if err := format.WriteText(out, report); err != nil {
			fmt.Fprintf(errOut, "write report: %v\n", err)
		}
	})
}
