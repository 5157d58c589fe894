package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	configFile string
	envFile    string
	baseURL    string
	verbose    bool
}

// Execute runs the command tree. Cancelling ctx stops in-flight calls and
// pending retries.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	app := &app{}

	rootCmd := &cobra.Command{
		Use:           "lms",
		Short:         "LMS API client (lms): sign in, call and probe the LMS backend",
		Long:          "lms talks to the LMS backend API from the terminal. It keeps the signed-in session, retries failed calls with backoff, refuses to send a token that belongs to another user and probes alternative routes for endpoints that moved.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Annotations[skipWireAnnotation] == "true" {
				return nil
			}
			return app.wire(cmd, *opts)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "Config file (default ~/.lms/config.toml)")
	flags.StringVar(&opts.envFile, "env-file", "", "Env file loaded before the environment (default ./.env)")
	flags.StringVar(&opts.baseURL, "base-url", "", "API base URL, overrides api.base_url")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log every request attempt")

	rootCmd.AddCommand(
		newVersionCmd(),
		newLoginCmd(app),
		newLogoutCmd(app),
		newSessionCmd(app),
		newRequestCmd(app),
		newProbeCmd(app),
		newEndpointsCmd(app),
	)

	return rootCmd
}
