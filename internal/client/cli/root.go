package cli

import (
	"bufio"
	"time"

	"github.com/dmitrijs2005/keyescrow/internal/client/config"
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigFile string
	Addr       string
	Timeout    time.Duration
	NoPrompt   bool
}

// NewRootCommand creates the escrowctl command tree. dial is called once
// per invocation, before the subcommand runs.
func NewRootCommand(dial Dialer) *cobra.Command {
	opts := &RootOptions{}
	app := &App{}

	cmd := &cobra.Command{
		Use:           "escrowctl",
		Short:         "Manage escrowed encryption keys",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(opts.ConfigFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.ServerEndpointAddr = opts.Addr
			}
			if cmd.Flags().Changed("timeout") {
				cfg.Timeout = opts.Timeout
			}

			escrow, closer, err := dial(cfg)
			if err != nil {
				return err
			}

			app.config = cfg
			app.escrow = escrow
			app.closer = closer
			app.reader = bufio.NewReader(cmd.InOrStdin())
			app.out = cmd.OutOrStdout()
			app.noPrompt = opts.NoPrompt
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return app.Close()
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigFile, "config", "c", "", "JSON or YAML config file")
	cmd.PersistentFlags().StringVarP(&opts.Addr, "addr", "a", "", "address and port of the escrow server")
	cmd.PersistentFlags().DurationVar(&opts.Timeout, "timeout", 0, "per-request timeout")
	cmd.PersistentFlags().BoolVar(&opts.NoPrompt, "no-prompt", false, "never prompt; missing PINs and codes are empty")

	cmd.AddCommand(
		newCreateCommand(app),
		newAddOwnerCommand(app),
		newVerifyCommand(app),
		newRequestCodeCommand(app),
		newReadCommand(app),
		newChangePinCommand(app),
		newResetPinCommand(app),
		newRemoveCommand(app),
		newRemoveOwnerCommand(app),
		newPingCommand(app),
	)

	return cmd
}
