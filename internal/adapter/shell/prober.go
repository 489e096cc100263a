package shell

import (
	"context"
	"fmt"
	"time"

	"golang-netup/internal/pkg/logging"
	"golang-netup/internal/port"
)

// Prober is an adapter that implements the ConnectivityProber port by
// invoking an external ICMP echo tool (ping -c<count> -W<seconds> <target>).
type Prober struct {
	runner  port.CommandRunner
	command string
	target  string
	count   int
	timeout time.Duration
}

// Ensure Prober implements the ConnectivityProber port
var _ port.ConnectivityProber = (*Prober)(nil)

// NewProber creates a shell prober for the given target.
func NewProber(runner port.CommandRunner, command, target string, count int, timeout time.Duration) *Prober {
	return &Prober{
		runner:  runner,
		command: command,
		target:  target,
		count:   count,
		timeout: timeout,
	}
}

// Probe issues the bounded echo probe and reports whether the tool
// launched and exited successfully.
func (p *Prober) Probe(ctx context.Context) bool {
	logger := logging.WithComponent("shell").WithField("target", p.target)

	ok := p.runner.Run(ctx, p.command,
		fmt.Sprintf("-c%d", p.count),
		fmt.Sprintf("-W%d", int(p.timeout.Seconds())),
		p.target,
	)
	if !ok {
		logger.Debug("Echo probe did not succeed")
	}
	return ok
}
