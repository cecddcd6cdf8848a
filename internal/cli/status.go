package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/darkroom/server/internal/workflow"
)

func newStatusCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether photos were already uploaded",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stage := workflow.StageUpload
			if opts.state.HasUploaded() {
				stage = workflow.StageCountdown
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Stage: %s\n", stage)
			return nil
		},
	}
}
