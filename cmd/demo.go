package main

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/SystemBuilders/chains/internal/demo"
)

func newDemoCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "demo NAME",
		Short:     "Run a scripted walkthrough of one container",
		Long:      "Run a scripted walkthrough of one container. NAME is one of: " + strings.Join(demo.Names(), ", "),
		Args:      cobra.ExactValidArgs(1),
		ValidArgs: demo.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			wt, ok := demo.Lookup(args[0])
			if !ok {
				return errors.Errorf("unknown walkthrough %q", args[0])
			}
			return wt(cmd.OutOrStdout())
		},
	}
}
