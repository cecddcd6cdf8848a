package cli

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/darkroom/server/internal/phone"
	"github.com/darkroom/server/internal/tui"
	"github.com/darkroom/server/internal/workflow"
)

func newNotifyCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "notify [PHONE]",
		Short: "Get a text message when your photos are ready",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := opts.apiClient()

			if len(args) == 0 {
				m := tui.NewPhoneModel(cmd.Context(), c)
				_, err := tea.NewProgram(m, tea.WithContext(cmd.Context())).Run()
				if errors.Is(err, tea.ErrProgramKilled) {
					return nil
				}
				return err
			}

			msg, err := workflow.SubmitPhone(cmd.Context(), c, args[0])
			switch {
			case errors.Is(err, phone.ErrInvalidPhoneNumber):
				return errors.New(phone.InvalidMessage)
			case err != nil:
				opts.logger.Debug("phone submission failed", "err", err)
				return errors.New(workflow.PhoneNotSavedMessage)
			}

			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}
}
