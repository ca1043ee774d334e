package com0com

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// MaxPorts is the number of COM port names the Windows COM database can
// arbitrate (COMDB_MAX_PORTS_ARBITRATED). It bounds how many pairs setupc can
// ever create; nothing here enforces it.
const MaxPorts = 4092

var portIDRe = regexp.MustCompile(`^CNC[AB][0-9]+$`)

// IsPortID reports whether s looks like a com0com port identifier such as
// CNCA1 or CNCB12.
func IsPortID(s string) bool {
	return portIDRe.MatchString(s)
}

// PortPair is a pair of linked ports, A being the CNCA side and B the CNCB
// side.
type PortPair struct {
	A string
	B string
}

// PortPairFor returns the pair identifiers CNCA<n> and CNCB<n>.
func PortPairFor(n int) PortPair {
	return PortPair{A: fmt.Sprintf("CNCA%d", n), B: fmt.Sprintf("CNCB%d", n)}
}

func (p PortPair) String() string {
	return fmt.Sprintf("PortPair(%q, %q)", p.A, p.B)
}

// PairNumber returns the numeric suffix of the A port, e.g. 1 for CNCA1. The
// B side is not cross-checked.
func (p PortPair) PairNumber() (int, error) {
	if !IsPortID(p.A) || !strings.HasPrefix(p.A, "CNCA") {
		return 0, fmt.Errorf("%w: %q is not a CNCA port", ErrCom0com, p.A)
	}
	n, err := strconv.Atoi(strings.TrimPrefix(p.A, "CNCA"))
	if err != nil {
		return 0, fmt.Errorf("%w: invalid pair number in %q", ErrCom0com, p.A)
	}
	return n, nil
}

// Param is a single setupc port parameter.
type Param struct {
	Key   string
	Value string
}

// Params is an ordered set of parameters with unique keys. The order only
// matters for how the set is serialized on the setupc command line.
type Params []Param

// ParamsFromMap converts m into Params with keys in sorted order.
func ParamsFromMap(m map[string]string) Params {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	p := make(Params, 0, len(keys))
	for _, k := range keys {
		p = append(p, Param{Key: k, Value: m[k]})
	}
	return p
}

// Set replaces the value of key if present, otherwise appends it.
func (p *Params) Set(key, value string) {
	for i := range *p {
		if (*p)[i].Key == key {
			(*p)[i].Value = value
			return
		}
	}
	*p = append(*p, Param{Key: key, Value: value})
}

func (p Params) Get(key string) (string, bool) {
	for _, kv := range p {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return "", false
}

func (p Params) Len() int {
	return len(p)
}

// Map returns the parameters as a plain map.
func (p Params) Map() map[string]string {
	m := make(map[string]string, len(p))
	for _, kv := range p {
		m[kv.Key] = kv.Value
	}
	return m
}

// String serializes p the way setupc expects it on the command line: "-" for
// an empty set, otherwise comma separated key=value pairs.
func (p Params) String() string {
	if len(p) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(p))
	for _, kv := range p {
		parts = append(parts, kv.Key+"="+kv.Value)
	}
	return strings.Join(parts, ",")
}

// Ports maps port identifiers to their currently set parameters.
type Ports map[string]Params

// IDs returns the port identifiers sorted by pair number, A before B.
func (p Ports) IDs() []string {
	ids := make([]string, 0, len(p))
	for id := range p {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		ni, nj := portNumber(ids[i]), portNumber(ids[j])
		if ni != nj {
			return ni < nj
		}
		return ids[i] < ids[j]
	})
	return ids
}

func portNumber(id string) int {
	if len(id) < 5 {
		return -1
	}
	n, err := strconv.Atoi(id[4:])
	if err != nil {
		return -1
	}
	return n
}

// Result carries the raw outcome of a single setupc invocation.
type Result struct {
	ExitCode       int
	Error          error
	CombinedOutput []byte
}

var errEmptyKey = errors.New("empty parameter key")
