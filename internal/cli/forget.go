package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newForgetCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "forget",
		Short: "Clear the upload completion marker",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.state.SetUploaded(false); err != nil {
				return err
			}
			opts.logger.Debug("completion marker cleared", "state_file", opts.stateFile)
			fmt.Fprintln(cmd.OutOrStdout(), "Completion marker cleared")
			return nil
		},
	}
}
