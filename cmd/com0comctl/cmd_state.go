package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sa6mwa/com0com"
)

func newEnableCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "enable",
		Short: "Enable all port pairs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runAll(cmd, "enabled", com0com.Backend.EnableAll)
		},
	}
}

func newDisableCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "disable",
		Short: "Disable all port pairs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runAll(cmd, "disabled", com0com.Backend.DisableAll)
		},
	}
}

func (a *app) runAll(cmd *cobra.Command, done string, op func(com0com.Backend, context.Context) error) error {
	b, err := a.backend()
	if err != nil {
		return err
	}
	if err := op(b, a.context(cmd)); err != nil {
		return err
	}
	a.log.Info(done + " all port pairs")
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s all port pairs\n", done)
	return err
}

func newChangeCmd(a *app) *cobra.Command {
	var noValidate bool
	cmd := &cobra.Command{
		Use:   "change PORT PARAMS",
		Short: "Change the parameters of a port",
		Example: `  com0comctl change CNCA0 EmuBR=yes,EmuOverrun=yes
  com0comctl change CNCB0 cts=!rrts`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			port := args[0]
			if !com0com.IsPortID(port) {
				return fmt.Errorf("invalid port %q: want CNCA<n> or CNCB<n>", port)
			}
			params, err := parseParams(args[1], !noValidate)
			if err != nil {
				return err
			}
			b, err := a.backend()
			if err != nil {
				return err
			}
			if err := b.ChangeParams(a.context(cmd), port, params); err != nil {
				return err
			}
			a.log.WithField("port", port).WithField("params", params.String()).Info("changed port parameters")
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "changed %s %s\n", port, params)
			return err
		},
	}
	cmd.Flags().BoolVar(&noValidate, "no-validate", false, "pass parameters to setupc unchecked")
	return cmd
}
