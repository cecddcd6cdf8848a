package cli

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/darkroom/server/internal/workflow"
)

func newUploadCmd(opts *options) *cobra.Command {
	var skip []int

	cmd := &cobra.Command{
		Use:   "upload FILE...",
		Short: "Upload photos",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.bucket == "" && opts.publicBaseURL == "" {
				return errors.New("--bucket or --public-base-url is required")
			}

			tasks, err := loadTasks(args)
			if err != nil {
				return err
			}

			orch := opts.orchestrator(opts.apiClient())
			if orch.Stage() == workflow.StageCountdown {
				orch.UploadMore()
			}
			orch.Select(tasks)

			// Remove from the back so earlier indices stay valid.
			skip = slices.Clone(skip)
			slices.Sort(skip)
			skip = slices.Compact(skip)
			for i := len(skip) - 1; i >= 0; i-- {
				if err := orch.Remove(skip[i]); err != nil {
					return fmt.Errorf("--skip %d: %w", skip[i], err)
				}
			}
			if !orch.CanAccess() {
				return errors.New("no files selected")
			}

			results, err := orch.Access(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			uploaded := 0
			for _, r := range results {
				if r.OK() {
					uploaded++
					fmt.Fprintf(out, "ok     %s -> %s\n", r.Filename, r.URL)
					continue
				}
				fmt.Fprintf(out, "failed %s (%s): %v\n", r.Filename, r.Step, r.Err)
			}

			if msg := orch.Error(); msg != "" {
				fmt.Fprintf(out, "Error: %s\n", msg)
			}
			fmt.Fprintf(out, "Uploaded %d of %d. Stage: %s\n", uploaded, len(results), orch.Stage())

			if uploaded == 0 {
				return errors.New("no photos were uploaded")
			}
			return nil
		},
	}

	cmd.Flags().IntSliceVar(&skip, "skip", nil, "zero-based positions of FILE arguments to leave out")
	return cmd
}
