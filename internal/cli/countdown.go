package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/darkroom/server/internal/countdown"
	"github.com/darkroom/server/internal/tui"
)

func newCountdownCmd(opts *options) *cobra.Command {
	var (
		plain bool
		ticks int
	)

	cmd := &cobra.Command{
		Use:   "countdown",
		Short: "Show the developing countdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			revealAt, err := opts.revealTime()
			if err != nil {
				return err
			}
			now := time.Now()

			if !plain {
				m := tui.NewCountdownModel(revealAt, now)
				_, err := tea.NewProgram(m, tea.WithContext(cmd.Context())).Run()
				if errors.Is(err, tea.ErrProgramKilled) {
					return nil
				}
				return err
			}

			reveal := countdown.FromTarget(revealAt, now)
			develop := countdown.FromDuration(countdown.DevelopDuration)
			out := cmd.OutOrStdout()
			printLine := func() {
				fmt.Fprintf(out, "reveal %s  developing %s\n", reveal, develop)
			}
			printLine()

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			n := 0
			err = countdown.NewTicker().Run(ctx, reveal, func(*countdown.Countdown) {
				develop.Tick()
				printLine()
				n++
				if ticks > 0 && n >= ticks {
					cancel()
				}
			})
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "print one line per second instead of the TUI")
	cmd.Flags().IntVar(&ticks, "ticks", 0, "stop after this many ticks in plain mode (0 runs until interrupted)")
	return cmd
}
