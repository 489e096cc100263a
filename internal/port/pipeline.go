// Package port defines the primary ports (interfaces) for the application.
// This follows the Ports and Adapters (Hexagonal Architecture) pattern.
package port

import (
	"context"
)

// InterfaceEnumerator is the port for listing candidate network interfaces.
// Implementations return raw interface names from the system registry;
// loopback filtering and the enumeration-failure fallback are handled by
// the pipeline core, not the enumerator.
type InterfaceEnumerator interface {
	// ListNames returns the names of all network interfaces known to the
	// system registry, in registry order.
	ListNames() ([]string, error)
}

// InterfaceActivator is the port for bringing a single interface online.
// Activation is best effort: a false return means "did not succeed" and
// carries no further diagnostic, matching the program's soft error policy.
type InterfaceActivator interface {
	// Activate brings the interface up and attempts a one-shot DHCP lease.
	// It returns true only if the lease was acquired.
	Activate(ctx context.Context, interfaceName string) bool
}

// ConnectivityProber is the port for the final reachability check.
type ConnectivityProber interface {
	// Probe issues a single bounded reachability check against the
	// configured target and returns true only if it succeeded.
	Probe(ctx context.Context) bool
}
