package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"

	"github.com/sa6mwa/com0com"
	"github.com/sa6mwa/com0com/internal/config"
)

type pairView struct {
	A string `json:"a" yaml:"a"`
	B string `json:"b" yaml:"b"`
}

type portView struct {
	Port   string            `json:"port" yaml:"port"`
	Params map[string]string `json:"params" yaml:"params"`
}

func portViews(ports com0com.Ports) []portView {
	views := make([]portView, 0, len(ports))
	for _, id := range ports.IDs() {
		views = append(views, portView{Port: id, Params: ports[id].Map()})
	}
	return views
}

// render writes v as json or yaml, or as the table built by rows.
func (a *app) render(w io.Writer, v any, header []string, rows [][]string) error {
	switch strings.ToLower(a.cfg.Output) {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		if len(rows) == 0 {
			return nil
		}
		data := pterm.TableData{header}
		data = append(data, rows...)
		s, err := pterm.DefaultTable.
			WithHasHeader(true).
			WithBoxed(false).
			WithData(data).
			Srender()
		if err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}
		_, err = fmt.Fprintln(w, s)
		return err
	}
}

func (a *app) renderPorts(w io.Writer, ports com0com.Ports) error {
	rows := make([][]string, 0, len(ports))
	for _, id := range ports.IDs() {
		rows = append(rows, []string{id, ports[id].String()})
	}
	return a.render(w, portViews(ports), []string{"PORT", "PARAMETERS"}, rows)
}

func (a *app) renderPair(w io.Writer, pair com0com.PortPair) error {
	return a.render(w, pairView{A: pair.A, B: pair.B},
		[]string{"A", "B"}, [][]string{{pair.A, pair.B}})
}

func (a *app) renderNames(w io.Writer, names []string) error {
	rows := make([][]string, 0, len(names))
	for _, n := range names {
		rows = append(rows, []string{n})
	}
	return a.render(w, names, []string{"NAME"}, rows)
}
