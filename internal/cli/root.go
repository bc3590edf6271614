// Package cli implements the numcalc command tree.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/numcalc-backend/internal/config"
)

// Execute runs the root command with args. ctx is passed to subcommands,
// so cancelling it stops a running server.
func Execute(ctx context.Context, args []string) error {
	root := newRootCmd()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

type rootOptions struct {
	cfgPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "numcalc",
		Short:         "Convert Russian number words to numbers and calculate with them",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.cfgPath, "config", "", "config yaml path (default $CONFIG_PATH or "+config.DefaultPath+")")

	cmd.AddCommand(
		newServeCmd(opts),
		newParseCmd(),
		newCalcCmd(),
		newVersionCmd(),
	)
	return cmd
}
