package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sa6mwa/com0com/internal/probe"
)

func newVisibleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "visible",
		Short: "List serial ports the operating system enumerates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := a.visible()
			if err != nil {
				return err
			}
			return a.renderNames(cmd.OutOrStdout(), names)
		},
	}
}

func newProbeCmd(a *app) *cobra.Command {
	var (
		baud    int
		payload string
	)
	cmd := &cobra.Command{
		Use:   "probe PAIR",
		Short: "Send data across a port pair in both directions",
		Long: `Open both ports of PAIR, send a payload from A to B and back, and report
whether it arrived intact. PAIR is a number or either port of the pair.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pair, err := parsePair(args[0])
			if err != nil {
				return err
			}
			b, err := a.backend()
			if err != nil {
				return err
			}
			ctx := a.context(cmd)
			ports, err := b.ListPorts(ctx)
			if err != nil {
				return err
			}
			pa, err := portOf(ports, pair.A)
			if err != nil {
				return err
			}
			pb, err := portOf(ports, pair.B)
			if err != nil {
				return err
			}

			cfg := probe.Config{
				BaudRate: a.cfg.Probe.BaudRate,
				Timeout:  a.cfg.Probe.Timeout,
				Payload:  []byte(a.cfg.Probe.Payload),
			}
			if cmd.Flags().Changed("baud") {
				cfg.BaudRate = baud
			}
			if cmd.Flags().Changed("payload") {
				cfg.Payload = []byte(payload)
			}

			nameA, nameB := probe.PortPath(pair.A, pa), probe.PortPath(pair.B, pb)
			a.log.WithField("a", nameA).WithField("b", nameB).Debug("probing port pair")
			transfers, perr := probe.Loopback(ctx, a.opener, nameA, nameB, cfg)

			rows := make([][]string, 0, len(transfers))
			for _, t := range transfers {
				status := "ok"
				if !t.OK() {
					status = t.Error
				}
				rows = append(rows, []string{
					t.From, t.To,
					strconv.Itoa(t.Sent), strconv.Itoa(t.Received),
					t.Elapsed.String(), status,
				})
			}
			if err := a.render(cmd.OutOrStdout(), transfers,
				[]string{"FROM", "TO", "SENT", "RECEIVED", "ELAPSED", "STATUS"}, rows); err != nil {
				return err
			}
			if perr != nil {
				return fmt.Errorf("probe %s: %w", pair, perr)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&baud, "baud", 0, "baud rate (default from config)")
	cmd.Flags().StringVar(&payload, "payload", "", "payload to send (default from config)")
	return cmd
}
