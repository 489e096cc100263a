// Package probe provides the native ICMP echo prober.
package probe

import (
	"context"
	"time"

	"golang-netup/internal/pkg/logging"
	"golang-netup/internal/port"

	probing "github.com/prometheus-community/pro-bing"
)

// Pinger is a native adapter that implements the ConnectivityProber port
// with an in-process ICMP echo (unprivileged UDP mode) instead of
// shelling out to ping.
type Pinger struct {
	target  string
	count   int
	timeout time.Duration
}

// Ensure Pinger implements the ConnectivityProber port
var _ port.ConnectivityProber = (*Pinger)(nil)

// NewPinger creates a native prober for the given target.
func NewPinger(target string, count int, timeout time.Duration) *Pinger {
	return &Pinger{
		target:  target,
		count:   count,
		timeout: timeout,
	}
}

// Probe sends the configured number of echo requests and reports whether
// at least one reply came back within the timeout. Every failure mode
// (resolution, socket, timeout) collapses to false.
func (p *Pinger) Probe(ctx context.Context) bool {
	logger := logging.WithComponent("probe").WithField("target", p.target)

	pinger, err := probing.NewPinger(p.target)
	if err != nil {
		logger.WithError(err).Debug("Failed to create pinger")
		return false
	}
	pinger.Count = p.count
	pinger.Timeout = p.timeout
	pinger.SetPrivileged(false)

	if err := pinger.RunWithContext(ctx); err != nil {
		logger.WithError(err).Debug("Echo probe failed")
		return false
	}

	stats := pinger.Statistics()
	if stats.PacketsRecv == 0 {
		logger.Debug("No echo reply received")
		return false
	}
	return true
}
