package main

import (
	"time"

	"github.com/spf13/cobra"
)

const (
	defaultAddress = "localhost:8081"
	defaultTimeout = 2 * time.Minute
)

func newRootCommand() *cobra.Command {
	ctx := &commandContext{}

	rootCmd := &cobra.Command{
		Use:           "walletctl",
		Short:         "Inspect and control the wallet sync client",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&ctx.address, "addr", "a", defaultAddress, "Address of the client's local status API")
	rootCmd.PersistentFlags().DurationVar(&ctx.timeout, "timeout", defaultTimeout, "Request timeout")
	rootCmd.PersistentFlags().BoolVar(&ctx.json, "json", false, "Print raw JSON instead of tables")

	rootCmd.AddCommand(newStatusCommand(ctx))
	rootCmd.AddCommand(newQueueCommand(ctx))
	rootCmd.AddCommand(newSyncCommand(ctx))
	rootCmd.AddCommand(newEnqueueCommand(ctx))
	rootCmd.AddCommand(newVersionCommand(ctx))

	return rootCmd
}
