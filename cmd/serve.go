package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/SystemBuilders/chains/internal/containerservice"
	"github.com/SystemBuilders/chains/internal/node"
)

func newServeCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve stacks, queues and the calculator over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(v, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			cs := containerservice.NewSimpleContainerService(log, v.GetInt(cacheSizeFlag))
			scfg := node.NewSimpleConfig(v.GetString(ipFlag), v.GetString(portFlag))
			return node.Start(ctx, cs, scfg, log)
		},
	}

	flags := cmd.Flags()

	flags.String(ipFlag, "127.0.0.1", "the IP address to serve on")
	mustBindPFlag(v, ipFlag, flags.Lookup(ipFlag))

	flags.String(portFlag, "61111", "the port to serve on")
	mustBindPFlag(v, portFlag, flags.Lookup(portFlag))

	flags.Int(cacheSizeFlag, 64, "the number of expression results to remember")
	mustBindPFlag(v, cacheSizeFlag, flags.Lookup(cacheSizeFlag))

	return cmd
}
