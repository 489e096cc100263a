// Package shell provides activation and probing adapters that shell out
// to the system's network tools, mirroring the classic
// `ip link set ... up && dhclient -1 -q ...` sequence.
package shell

import (
	"context"

	"golang-netup/internal/pkg/logging"
	"golang-netup/internal/port"
)

// Activator is an adapter that implements the InterfaceActivator port by
// invoking an external link-admin tool and a one-shot DHCP client.
type Activator struct {
	runner      port.CommandRunner
	linkCommand string
	dhcpCommand string
}

// Ensure Activator implements the InterfaceActivator port
var _ port.InterfaceActivator = (*Activator)(nil)

// NewActivator creates a shell activator using the given commands.
func NewActivator(runner port.CommandRunner, linkCommand, dhcpCommand string) *Activator {
	return &Activator{
		runner:      runner,
		linkCommand: linkCommand,
		dhcpCommand: dhcpCommand,
	}
}

// Activate brings the link up and runs the DHCP client in one-shot quiet
// mode. Only the DHCP result is reported; the link-admin result is
// unconditionally ignored ("already up" and "no such interface" are not
// distinguishable here).
func (a *Activator) Activate(ctx context.Context, interfaceName string) bool {
	logger := logging.WithComponentAndInterface("shell", interfaceName)

	a.runner.Run(ctx, a.linkCommand, "link", "set", interfaceName, "up")

	if !a.runner.Run(ctx, a.dhcpCommand, "-1", "-q", interfaceName) {
		logger.Debug("DHCP client did not acquire a lease")
		return false
	}

	logger.Debug("DHCP lease acquired")
	return true
}
