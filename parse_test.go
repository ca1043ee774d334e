package com0com

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestParseInstallOutput(t *testing.T) {
	out := "   CNCA1 PortName=-\n   CNCB1 PortName=-\nrubbish\n\n"
	pair, err := parseInstallOutput(out)
	if err != nil {
		t.Fatalf("parseInstallOutput error: %v", err)
	}
	if want := (PortPair{A: "CNCA1", B: "CNCB1"}); pair != want {
		t.Fatalf("pair = %v, want %v", pair, want)
	}
}

func TestParseInstallOutputReversed(t *testing.T) {
	pair, err := parseInstallOutput("CNCB7 PortName=COM8\nCNCA7 PortName=COM7\n")
	if err != nil {
		t.Fatalf("parseInstallOutput error: %v", err)
	}
	if want := PortPairFor(7); pair != want {
		t.Fatalf("pair = %v, want %v", pair, want)
	}
}

func TestParseInstallOutputFirstMatchWins(t *testing.T) {
	pair, err := parseInstallOutput("CNCA1 x\nCNCA2 x\nCNCB1 x\n")
	if err != nil {
		t.Fatalf("parseInstallOutput error: %v", err)
	}
	if pair.A != "CNCA1" {
		t.Fatalf("A = %s, want CNCA1", pair.A)
	}
}

func TestParseInstallOutputMissing(t *testing.T) {
	for _, out := range []string{
		"",
		"   CNCA1 PortName=-\n",
		"CNCA1\nCNCB1\n",
		"rubbish\n",
	} {
		_, err := parseInstallOutput(out)
		if !errors.Is(err, ErrMissingPortName) {
			t.Fatalf("parseInstallOutput(%q) error = %v, want ErrMissingPortName", out, err)
		}
		if !errors.Is(err, ErrCom0com) {
			t.Fatalf("ErrMissingPortName does not match ErrCom0com")
		}
	}
}

func TestParseListOutput(t *testing.T) {
	out := "       CNCA0 PortName=COM20,EmuBR=yes\n" +
		"       CNCB0 PortName=-\n" +
		"       CNCA1 PortName=COM5,cts=!rrts,EmuNoise=-\n" +
		"       CNCB1\n" +
		"ComDB: COM20\n"
	ports := parseListOutput(out)

	want := map[string]map[string]string{
		"CNCA0": {"PortName": "COM20", "EmuBR": "yes"},
		"CNCB0": {},
		"CNCA1": {"PortName": "COM5", "cts": "!rrts"},
		"CNCB1": {},
	}
	if len(ports) != len(want) {
		t.Fatalf("got %d ports, want %d: %v", len(ports), len(want), ports)
	}
	for id, params := range want {
		got, ok := ports[id]
		if !ok {
			t.Fatalf("port %s missing", id)
		}
		if !reflect.DeepEqual(got.Map(), params) {
			t.Fatalf("%s params = %v, want %v", id, got.Map(), params)
		}
	}
	if got := ports["CNCA0"].String(); got != "PortName=COM20,EmuBR=yes" {
		t.Fatalf("order not preserved: %s", got)
	}
}

func TestParseListOutputEmpty(t *testing.T) {
	if ports := parseListOutput(""); ports == nil || len(ports) != 0 {
		t.Fatalf("parseListOutput(\"\") = %v, want empty non-nil", ports)
	}
}

func TestParseBusyNames(t *testing.T) {
	got := parseBusyNames("COM1\n\n  COM3  \r\nCOM10\n")
	want := []string{"COM1", "COM3", "COM10"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("parseBusyNames = %v, want %v", got, want)
	}
	if got := parseBusyNames("\n\n"); got == nil || len(got) != 0 {
		t.Fatalf("parseBusyNames(blank) = %#v, want empty slice", got)
	}
}

// longLine exceeds bufio.Scanner's default token size.
var longLine = strings.Repeat("x", 70000)

func TestParseInstallOutputAfterLongLine(t *testing.T) {
	pair, err := parseInstallOutput(longLine + "\n   CNCA0 PortName=-\n   CNCB0 PortName=-\n")
	if err != nil {
		t.Fatalf("parseInstallOutput error: %v", err)
	}
	if pair != PortPairFor(0) {
		t.Fatalf("pair = %v, want %v", pair, PortPairFor(0))
	}
}

func TestParseListOutputLongLine(t *testing.T) {
	out := "CNCA0 PortName=" + longLine + "\nCNCB0 PortName=COM2\nCNCA1 EmuBR=yes\n"
	ports := parseListOutput(out)
	if len(ports) != 3 {
		t.Fatalf("got %d ports, want 3", len(ports))
	}
	if v, _ := ports["CNCA0"].Get("PortName"); v != longLine {
		t.Fatalf("CNCA0 PortName has %d bytes, want %d", len(v), len(longLine))
	}
	if v, _ := ports["CNCA1"].Get("EmuBR"); v != "yes" {
		t.Fatalf("CNCA1 EmuBR = %q, want yes", v)
	}
}

func TestParseBusyNamesAfterLongLine(t *testing.T) {
	got := parseBusyNames(longLine + "\nCOM1\n")
	if len(got) != 2 || got[1] != "COM1" {
		t.Fatalf("parseBusyNames returned %d names, last entries lost", len(got))
	}
}
