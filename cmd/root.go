package main

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// newRootCommand builds the chains command tree. Flags can also be set
// through environment variables prefixed with CHAINS, e.g. CHAINS_LOG_LEVEL.
func newRootCommand() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("CHAINS")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:          "chains",
		Short:        "Linked lists, stacks and queues, with a postfix calculator on top",
		SilenceUsage: true,
	}

	flags := cmd.PersistentFlags()
	flags.String(logLevelFlag, zerolog.InfoLevel.String(), "log level (trace, debug, info, warn, error)")
	mustBindPFlag(v, logLevelFlag, flags.Lookup(logLevelFlag))

	cmd.AddCommand(
		newEvalCommand(v),
		newServeCommand(v),
		newDemoCommand(),
	)
	return cmd
}

// newLogger returns a logger writing to w at the configured level.
func newLogger(v *viper.Viper, w io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(v.GetString(logLevelFlag))
	if err != nil {
		return zerolog.Nop(), errors.Wrap(err, "parse log level")
	}
	return zerolog.New(w).With().Timestamp().Logger().Level(level), nil
}
