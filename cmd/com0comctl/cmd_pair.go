package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sa6mwa/com0com"
)

type numberedInstaller interface {
	InstallPairNumber(ctx context.Context, n int, a, b com0com.Params) (com0com.PortPair, error)
}

func newInstallCmd(a *app) *cobra.Command {
	var (
		number     int
		noValidate bool
	)
	cmd := &cobra.Command{
		Use:   "install [PARAMS-A [PARAMS-B]]",
		Short: "Install a new port pair",
		Long: `Install a new port pair. Parameters are comma separated key=value lists
as accepted by setupc, "-" meaning none.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := make([]com0com.Params, 2)
			for i, s := range args {
				p, err := parseParams(s, !noValidate)
				if err != nil {
					return err
				}
				params[i] = p
			}
			b, err := a.backend()
			if err != nil {
				return err
			}

			ctx := a.context(cmd)
			var pair com0com.PortPair
			if cmd.Flags().Changed("number") {
				ni, ok := b.(numberedInstaller)
				if !ok {
					return fmt.Errorf("backend cannot install a numbered pair")
				}
				pair, err = ni.InstallPairNumber(ctx, number, params[0], params[1])
			} else {
				pair, err = b.InstallPair(ctx, params[0], params[1])
			}
			if err != nil {
				return err
			}
			a.log.WithField("pair", pair.String()).Info("installed port pair")
			return a.renderPair(cmd.OutOrStdout(), pair)
		},
	}
	cmd.Flags().IntVarP(&number, "number", "n", 0, "pair number, CNCA<n>/CNCB<n>")
	cmd.Flags().BoolVar(&noValidate, "no-validate", false, "pass parameters to setupc unchecked")
	return cmd
}

func newRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove PAIR",
		Short: "Remove a port pair",
		Long:  `Remove a port pair given by number (0) or by either port (CNCA0, CNCB0).`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pair, err := parsePair(args[0])
			if err != nil {
				return err
			}
			b, err := a.backend()
			if err != nil {
				return err
			}
			if err := b.RemovePair(a.context(cmd), pair); err != nil {
				return err
			}
			a.log.WithField("pair", pair.String()).Info("removed port pair")
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "removed %s/%s\n", pair.A, pair.B)
			return err
		},
	}
}

// parsePair accepts a pair number or a port identifier of either side.
func parsePair(s string) (com0com.PortPair, error) {
	num := s
	if com0com.IsPortID(s) {
		num = s[len("CNCA"):]
	}
	n, err := strconv.Atoi(num)
	if err != nil || num == "" || strings.Trim(num, "0123456789") != "" {
		return com0com.PortPair{}, fmt.Errorf("invalid pair %q: want a number or CNCA<n>/CNCB<n>", s)
	}
	return com0com.PortPairFor(n), nil
}

func parseParams(s string, validate bool) (com0com.Params, error) {
	p, err := com0com.ParseParams(s)
	if err != nil {
		return nil, err
	}
	if validate {
		if err := p.Validate(); err != nil {
			return nil, err
		}
	}
	return p, nil
}
