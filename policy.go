package com0com

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

type Verdict int

const (
	ALLOW Verdict = iota
	DENY
)

var ErrDenied = errors.New("com0com: command denied by policy")

type PolicyError struct {
	Verdict Verdict
	Command string
}

func (e *PolicyError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("com0com: %s command %s", e.Verdict.String(), e.Command)
}

func (e *PolicyError) Is(target error) bool {
	return target == ErrDenied
}

func (v Verdict) String() string {
	switch v {
	case ALLOW:
		return "allow"
	case DENY:
		return "deny"
	default:
		return fmt.Sprintf("verdict(%d)", v)
	}
}

// Commands understood by setupc.
const (
	CmdInstall      = "install"
	CmdRemove       = "remove"
	CmdDisable      = "disable"
	CmdEnable       = "enable"
	CmdChange       = "change"
	CmdList         = "list"
	CmdBusyNames    = "busynames"
	CmdPreinstall   = "preinstall"
	CmdUpdate       = "update"
	CmdReload       = "reload"
	CmdUninstall    = "uninstall"
	CmdInfClean     = "infclean"
	CmdUpdateFNames = "updatefnames"
	CmdListFNames   = "listfnames"
)

var knownCommands = map[string]struct{}{
	CmdInstall: {}, CmdRemove: {}, CmdDisable: {}, CmdEnable: {},
	CmdChange: {}, CmdList: {}, CmdBusyNames: {}, CmdPreinstall: {},
	CmdUpdate: {}, CmdReload: {}, CmdUninstall: {}, CmdInfClean: {},
	CmdUpdateFNames: {}, CmdListFNames: {},
}

// readOnlyCommands never change driver state.
var readOnlyCommands = []string{CmdList, CmdBusyNames, CmdListFNames}

type policyKey struct{}

type commandPolicy struct {
	defaultVerdict Verdict
	allow          map[string]struct{}
	deny           map[string]struct{}
}

func newCommandPolicy() *commandPolicy {
	return &commandPolicy{
		defaultVerdict: ALLOW,
		allow:          make(map[string]struct{}),
		deny:           make(map[string]struct{}),
	}
}

func (p *commandPolicy) clone() *commandPolicy {
	if p == nil {
		return newCommandPolicy()
	}
	clone := &commandPolicy{
		defaultVerdict: p.defaultVerdict,
		allow:          make(map[string]struct{}, len(p.allow)),
		deny:           make(map[string]struct{}, len(p.deny)),
	}
	for k := range p.allow {
		clone.allow[k] = struct{}{}
	}
	for k := range p.deny {
		clone.deny[k] = struct{}{}
	}
	return clone
}

func policyFromContext(ctx context.Context) *commandPolicy {
	if ctx == nil {
		return nil
	}
	if existing, ok := ctx.Value(policyKey{}).(*commandPolicy); ok {
		return existing
	}
	return nil
}

// WithPolicy returns a derived context that sets the verdict used for
// commands without an explicit allow/deny rule.
//
//	ctx := com0com.WithPolicy(context.Background(), com0com.DENY)
//	ctx = com0com.WithRule(ctx, com0com.ALLOW, com0com.CmdList)
//	ports, err := runner.ListPorts(ctx)
func WithPolicy(ctx context.Context, verdict Verdict) context.Context {
	policy := policyFromContext(ctx).clone()
	policy.defaultVerdict = verdict
	return context.WithValue(ctx, policyKey{}, policy)
}

// WithRule returns a derived context with explicit allow/deny entries for
// setupc command names. WithRule must succeed - an unknown command or verdict
// causes a panic.
func WithRule(ctx context.Context, rule Verdict, commands ...string) context.Context {
	ctx, err := WithRuleCatchError(ctx, rule, commands...)
	if err != nil {
		panic(err)
	}
	return ctx
}

// WithRuleCatchError mirrors WithRule but returns an error instead of
// panicking.
func WithRuleCatchError(ctx context.Context, rule Verdict, commands ...string) (context.Context, error) {
	if len(commands) == 0 {
		return ctx, nil
	}
	if rule != ALLOW && rule != DENY {
		return ctx, fmt.Errorf("unsupported verdict %d", rule)
	}
	policy := policyFromContext(ctx).clone()
	for _, c := range commands {
		name := strings.ToLower(strings.TrimSpace(c))
		if _, ok := knownCommands[name]; !ok {
			return ctx, fmt.Errorf("unknown setupc command %q", c)
		}
		switch rule {
		case ALLOW:
			policy.allow[name] = struct{}{}
			delete(policy.deny, name)
		case DENY:
			policy.deny[name] = struct{}{}
			delete(policy.allow, name)
		}
	}
	return context.WithValue(ctx, policyKey{}, policy), nil
}

// ReadOnly denies every command that can change driver state.
func ReadOnly(ctx context.Context) context.Context {
	return WithRule(WithPolicy(ctx, DENY), ALLOW, readOnlyCommands...)
}

// CheckPolicy returns a *PolicyError matching ErrDenied if ctx forbids
// command. A context without policy allows everything.
func CheckPolicy(ctx context.Context, command string) error {
	policy := policyFromContext(ctx)
	if policy == nil {
		return nil
	}
	if policy.evaluate(strings.ToLower(command)) == DENY {
		return &PolicyError{Verdict: DENY, Command: command}
	}
	return nil
}

func (p *commandPolicy) evaluate(command string) Verdict {
	if p == nil {
		return ALLOW
	}
	if _, denied := p.deny[command]; denied {
		return DENY
	}
	if _, allowed := p.allow[command]; allowed {
		return ALLOW
	}
	return p.defaultVerdict
}

// commandName returns the first argument that is not a setupc option.
func commandName(args []string) string {
	for _, a := range args {
		if !strings.HasPrefix(a, "--") {
			return a
		}
	}
	return ""
}
