// Package com0com drives the com0com null-modem emulator through its setupc
// command line utility.
//
// Backend is the operation set; Runner implements it by executing setupc.exe
// from the directory recorded in the registry:
//
//	r, err := com0com.New()
//	if err != nil {
//		return err
//	}
//	pair, err := r.InstallPair(ctx, com0com.Params{{Key: "PortName", Value: "COM20"}}, nil)
//	if err != nil {
//		return err
//	}
//	defer r.RemovePair(ctx, pair)
package com0com

import (
	"context"
	"fmt"
)

// Backend is implemented by anything able to manage com0com port pairs,
// either by running setupc directly or by proxying to a host that does.
type Backend interface {
	// InstallPair creates a new pair with the given parameters for the A and
	// B ports.
	InstallPair(ctx context.Context, a, b Params) (PortPair, error)
	// RemovePair removes pair.
	RemovePair(ctx context.Context, pair PortPair) error
	DisableAll(ctx context.Context) error
	EnableAll(ctx context.Context) error
	// ChangeParams applies params to an existing port such as CNCA1.
	ChangeParams(ctx context.Context, port string, params Params) error
	// ListPorts returns every port with the parameters that are set on it.
	// Unset parameters are absent, never represented by a placeholder.
	ListPorts(ctx context.Context) (Ports, error)
	// BusyNames returns names already in use matching pattern, where ?
	// matches one character and * any number of characters.
	BusyNames(ctx context.Context, pattern string) ([]string, error)
}

// GetParams returns the parameters of a single port using b.ListPorts.
func GetParams(ctx context.Context, b Backend, port string) (Params, error) {
	ports, err := b.ListPorts(ctx)
	if err != nil {
		return nil, err
	}
	params, ok := ports[port]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPortNotFound, port)
	}
	return params, nil
}
