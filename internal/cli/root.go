// Package cli implements the darkroom guest client commands.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/darkroom/server/internal/client"
	"github.com/darkroom/server/internal/countdown"
	"github.com/darkroom/server/internal/session"
	"github.com/darkroom/server/internal/workflow"
)

const (
	defaultAPIURL = "http://localhost:8080"
	defaultRegion = "us-east-1"
)

type options struct {
	apiURL        string
	bucket        string
	region        string
	publicBaseURL string
	stateFile     string
	revealAt      string
	ephemeral     bool
	verbose       bool

	state  workflow.SessionState
	logger *log.Logger
}

// envFlags maps flags to the environment variables that back them.
var envFlags = map[string]string{
	"api-url":         "DARKROOM_API_URL",
	"bucket":          "DARKROOM_BUCKET",
	"region":          "DARKROOM_REGION",
	"public-base-url": "DARKROOM_PUBLIC_BASE_URL",
	"state-file":      "DARKROOM_STATE_FILE",
	"reveal-at":       "DARKROOM_REVEAL_AT",
}

// NewRootCmd builds the darkroom command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "darkroom",
		Short: "Drop your event photos and wait for them to develop",
		Long: `Darkroom uploads your event photos straight to storage, then shows
the developing countdown until the photos are revealed.

Leave a phone number to get a text when they are ready.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
			return opts.resolve(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.apiURL, "api-url", defaultAPIURL, "Darkroom API base URL")
	flags.StringVar(&opts.bucket, "bucket", "", "storage bucket photos are uploaded to")
	flags.StringVar(&opts.region, "region", defaultRegion, "storage region")
	flags.StringVar(&opts.publicBaseURL, "public-base-url", "", "public URL prefix for uploaded objects (overrides bucket and region)")
	flags.StringVar(&opts.stateFile, "state-file", session.DefaultPath(), "completion marker file")
	flags.StringVar(&opts.revealAt, "reveal-at", countdown.DefaultRevealAt.Format(time.RFC3339), "reveal instant (RFC 3339)")
	flags.BoolVar(&opts.ephemeral, "ephemeral", false, "keep the completion marker in memory only")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "verbose logging")

	cmd.AddCommand(
		newUploadCmd(opts),
		newStatusCmd(opts),
		newCountdownCmd(opts),
		newNotifyCmd(opts),
		newForgetCmd(opts),
	)

	return cmd
}

func (o *options) resolve(cmd *cobra.Command) error {
	flags := cmd.Flags()
	for name, env := range envFlags {
		if flags.Changed(name) {
			continue
		}
		if v, ok := os.LookupEnv(env); ok && v != "" {
			if err := flags.Set(name, v); err != nil {
				return fmt.Errorf("%s: %w", env, err)
			}
		}
	}

	level := log.InfoLevel
	if o.verbose {
		level = log.DebugLevel
	}
	o.logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		Prefix: "darkroom",
		Level:  level,
	})

	if o.ephemeral {
		o.state = session.NewMemoryState(false)
	} else {
		o.state = session.NewFileState(o.stateFile)
	}
	return nil
}

func (o *options) revealTime() (time.Time, error) {
	t, err := time.Parse(time.RFC3339, o.revealAt)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --reveal-at %q: %w", o.revealAt, err)
	}
	return t, nil
}

func (o *options) apiClient() *client.Client {
	return client.New(client.DefaultConfig(o.apiURL), nil)
}

func (o *options) orchestrator(c *client.Client) *workflow.Orchestrator {
	return workflow.New(c, c, o.state, workflow.Config{
		Bucket:        o.bucket,
		Region:        o.region,
		PublicBaseURL: o.publicBaseURL,
	}, o.logger)
}
