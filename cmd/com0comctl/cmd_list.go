package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sa6mwa/com0com"
)

type detailedLister interface {
	ListPortsDetailed(ctx context.Context) (com0com.Ports, error)
}

func newListCmd(a *app) *cobra.Command {
	var detail bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List ports and their parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.backend()
			if err != nil {
				return err
			}
			ports, err := listPorts(a.context(cmd), b, detail)
			if err != nil {
				return err
			}
			return a.renderPorts(cmd.OutOrStdout(), ports)
		},
	}
	cmd.Flags().BoolVarP(&detail, "detail", "d", false, "include parameters left at their defaults")
	return cmd
}

func listPorts(ctx context.Context, b com0com.Backend, detail bool) (com0com.Ports, error) {
	if !detail {
		return b.ListPorts(ctx)
	}
	dl, ok := b.(detailedLister)
	if !ok {
		return nil, errors.New("backend cannot list default parameters")
	}
	return dl.ListPortsDetailed(ctx)
}

func newGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get PORT",
		Short: "Show the parameters of a single port",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.backend()
			if err != nil {
				return err
			}
			params, err := com0com.GetParams(a.context(cmd), b, args[0])
			if err != nil {
				return err
			}
			rows := make([][]string, 0, params.Len())
			for _, kv := range params {
				rows = append(rows, []string{kv.Key, kv.Value})
			}
			return a.render(cmd.OutOrStdout(), params.Map(), []string{"PARAMETER", "VALUE"}, rows)
		},
	}
}

func newBusyNamesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "busynames PATTERN",
		Short: "List port names already in use",
		Long: `List port names already in use that match PATTERN, where ? matches one
character and * any number of characters, e.g. COM?*.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.backend()
			if err != nil {
				return err
			}
			names, err := b.BusyNames(a.context(cmd), args[0])
			if err != nil {
				return err
			}
			if len(names) == 0 {
				a.log.WithField("pattern", args[0]).Debug("no busy names")
			}
			return a.renderNames(cmd.OutOrStdout(), names)
		},
	}
}

func portOf(ports com0com.Ports, id string) (com0com.Params, error) {
	p, ok := ports[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", com0com.ErrPortNotFound, id)
	}
	return p, nil
}
