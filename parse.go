package com0com

import (
	"regexp"
	"strings"
)

var (
	// install prints one "CNCx<n> <params>" line per created port.
	installLineRe = regexp.MustCompile(`^(CNC([AB])[0-9]+) `)
	listLineRe    = regexp.MustCompile(`^(CNC[AB][0-9]+)(?:\s+(.*))?$`)
)

// unsetValue is what setupc list prints for a parameter that has no value.
const unsetValue = "-"

func parseInstallOutput(out string) (PortPair, error) {
	var a, b string
	for _, line := range outputLines(out) {
		m := installLineRe.FindStringSubmatch(line)
		if m != nil {
			switch {
			case m[2] == "A" && a == "":
				a = m[1]
			case m[2] == "B" && b == "":
				b = m[1]
			}
		}
		if a != "" && b != "" {
			return PortPair{A: a, B: b}, nil
		}
	}
	return PortPair{}, ErrMissingPortName
}

func parseListOutput(out string) Ports {
	ports := make(Ports)
	for _, line := range outputLines(out) {
		m := listLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		params := ports[m[1]]
		if params == nil {
			params = Params{}
		}
		for _, field := range strings.Split(m[2], ",") {
			key, value, ok := strings.Cut(strings.TrimSpace(field), "=")
			if !ok || key == "" || value == unsetValue {
				continue
			}
			params.Set(key, value)
		}
		ports[m[1]] = params
	}
	return ports
}

func parseBusyNames(out string) []string {
	names := []string{}
	for _, line := range outputLines(out) {
		if line != "" {
			names = append(names, line)
		}
	}
	return names
}

// outputLines splits out into trimmed lines. Lines have no length limit.
func outputLines(out string) []string {
	lines := strings.Split(out, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	return lines
}
