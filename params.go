package com0com

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Parameter names accepted by setupc install and change.
const (
	ParamPortName      = "PortName"
	ParamEmuBR         = "EmuBR"
	ParamEmuOverrun    = "EmuOverrun"
	ParamEmuNoise      = "EmuNoise"
	ParamAddRTTO       = "AddRTTO"
	ParamAddRITO       = "AddRITO"
	ParamPlugInMode    = "PlugInMode"
	ParamExclusiveMode = "ExclusiveMode"
	ParamHiddenMode    = "HiddenMode"
	ParamAllDataBits   = "AllDataBits"
	ParamCTS           = "cts"
	ParamDSR           = "dsr"
	ParamDCD           = "dcd"
	ParamRI            = "ri"
)

type paramKind int

const (
	kindString paramKind = iota
	kindBool
	kindMillis
	kindNoise
	kindPin
)

// KnownParams lists the parameter vocabulary in setupc help order.
var KnownParams = []string{
	ParamPortName, ParamEmuBR, ParamEmuOverrun, ParamEmuNoise, ParamAddRTTO,
	ParamAddRITO, ParamPlugInMode, ParamExclusiveMode, ParamHiddenMode,
	ParamAllDataBits, ParamCTS, ParamDSR, ParamDCD, ParamRI,
}

var paramKinds = map[string]paramKind{
	ParamPortName:      kindString,
	ParamEmuBR:         kindBool,
	ParamEmuOverrun:    kindBool,
	ParamEmuNoise:      kindNoise,
	ParamAddRTTO:       kindMillis,
	ParamAddRITO:       kindMillis,
	ParamPlugInMode:    kindBool,
	ParamExclusiveMode: kindBool,
	ParamHiddenMode:    kindBool,
	ParamAllDataBits:   kindBool,
	ParamCTS:           kindPin,
	ParamDSR:           kindPin,
	ParamDCD:           kindPin,
	ParamRI:            kindPin,
}

// Pins a control line can be wired to, see setupc help.
var wirePins = map[string]struct{}{
	"rrts": {}, "lrts": {}, "rdtr": {}, "ldtr": {}, "rout1": {}, "lout1": {},
	"rout2": {}, "lout2": {}, "ropen": {}, "lopen": {}, "on": {},
}

const maxNoise = 0.99999999

// ParseParams parses the comma separated key=value form setupc uses, the
// inverse of Params.String. "-" and "" yield an empty set.
func ParseParams(s string) (Params, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return Params{}, nil
	}
	var p Params
	for _, part := range strings.Split(s, ",") {
		key, value, ok := strings.Cut(part, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid parameter %q: want key=value", part)
		}
		p.Set(key, strings.TrimSpace(value))
	}
	return p, nil
}

// Validate checks every key against the setupc vocabulary and every value
// against the shape setupc accepts for it. Keys are case sensitive as
// documented even though setupc itself is lenient.
func (p Params) Validate() error {
	var errs []error
	for _, kv := range p {
		if err := validateParam(kv); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func validateParam(kv Param) error {
	if kv.Key == "" {
		return errEmptyKey
	}
	kind, ok := paramKinds[kv.Key]
	if !ok {
		return fmt.Errorf("unknown parameter %q", kv.Key)
	}
	v := kv.Value
	switch kind {
	case kindString:
		if v == "" || strings.ContainsAny(v, ", ") {
			return fmt.Errorf("%s: invalid name %q", kv.Key, v)
		}
	case kindBool:
		if v != "yes" && v != "no" {
			return fmt.Errorf("%s: want yes or no, got %q", kv.Key, v)
		}
	case kindMillis:
		if _, err := strconv.ParseUint(v, 10, 32); err != nil {
			return fmt.Errorf("%s: want milliseconds, got %q", kv.Key, v)
		}
	case kindNoise:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 || f > maxNoise {
			return fmt.Errorf("%s: want probability 0-%v, got %q", kv.Key, maxNoise, v)
		}
	case kindPin:
		pin := strings.TrimPrefix(v, "!")
		if _, ok := wirePins[strings.ToLower(pin)]; !ok {
			return fmt.Errorf("%s: unknown pin %q", kv.Key, v)
		}
	}
	return nil
}
