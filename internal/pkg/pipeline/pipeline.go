// Package pipeline implements the enumerate → activate → probe sequence.
// All system access goes through ports, so the sequencing, loopback
// exclusion, fallback and output gating are testable without touching
// real interfaces or subprocesses.
package pipeline

import (
	"context"
	"fmt"
	"io"

	"golang-netup/internal/pkg/logging"
	"golang-netup/internal/port"
)

// LoopbackName is the interface excluded from the working set.
const LoopbackName = "lo"

// Exit codes reported to the caller. Online/offline is the program's only
// machine-readable result.
const (
	ExitOnline  = 0
	ExitOffline = 1
)

// Pipeline runs one enumerate/activate/probe cycle.
type Pipeline struct {
	enumerator port.InterfaceEnumerator
	activator  port.InterfaceActivator
	prober     port.ConnectivityProber
	fallback   string
	out        io.Writer
}

// New creates a pipeline writing its confirmation and status lines to out.
// fallback is the single interface used when enumeration fails.
func New(enumerator port.InterfaceEnumerator, activator port.InterfaceActivator, prober port.ConnectivityProber, fallback string, out io.Writer) *Pipeline {
	return &Pipeline{
		enumerator: enumerator,
		activator:  activator,
		prober:     prober,
		fallback:   fallback,
		out:        out,
	}
}

// Run executes the pipeline once and returns the process exit code.
// Per-interface failures are swallowed: one bad interface never blocks
// the others, and the exit code depends only on the probe.
func (p *Pipeline) Run(ctx context.Context) int {
	logger := logging.WithComponent("pipeline")

	candidates := p.candidates()
	logger.WithField("count", len(candidates)).Debug("Activating candidate interfaces")

	for _, name := range candidates {
		if p.activator.Activate(ctx, name) {
			fmt.Fprintf(p.out, "%s up\n", name)
		} else {
			logging.WithComponentAndInterface("pipeline", name).Debug("Activation did not succeed, continuing")
		}
	}

	if p.prober.Probe(ctx) {
		fmt.Fprintln(p.out, "ONLINE")
		return ExitOnline
	}

	fmt.Fprintln(p.out, "OFFLINE")
	return ExitOffline
}

// candidates returns the working set of interface names: the registry
// listing with the loopback interface removed, or the single fallback
// name when the registry cannot be read. The pipeline always has work to
// do rather than halting on an enumeration error.
func (p *Pipeline) candidates() []string {
	names, err := p.enumerator.ListNames()
	if err != nil {
		logging.WithComponent("pipeline").WithError(err).
			WithField("fallback", p.fallback).Debug("Interface enumeration failed, using fallback")
		return []string{p.fallback}
	}

	candidates := make([]string, 0, len(names))
	for _, name := range names {
		if name == LoopbackName {
			continue
		}
		candidates = append(candidates, name)
	}
	return candidates
}
