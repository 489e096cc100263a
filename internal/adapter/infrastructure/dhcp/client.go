// Package dhcp provides the one-shot DHCP client adapter.
package dhcp

import (
	"context"
	"fmt"
	"time"

	"golang-netup/internal/port"

	"github.com/insomniacslk/dhcp/dhcpv4"
	"github.com/insomniacslk/dhcp/dhcpv4/nclient4"
)

// ClientAdapter is an adapter that implements the DHCPClient port using
// the insomniacslk/dhcp library. Each call performs exactly one lease
// negotiation; there is no renewal loop.
type ClientAdapter struct{}

// Ensure ClientAdapter implements the DHCPClient port
var _ port.DHCPClient = (*ClientAdapter)(nil)

// NewClientAdapter creates a new DHCP client adapter.
func NewClientAdapter() *ClientAdapter {
	return &ClientAdapter{}
}

// RequestLease performs a single DHCP DISCOVER/OFFER/REQUEST/ACK sequence
// bounded by the given timeout.
func (c *ClientAdapter) RequestLease(ctx context.Context, interfaceName string, timeout time.Duration) (*dhcpv4.DHCPv4, error) {
	client, err := nclient4.New(interfaceName, nclient4.WithTimeout(timeout))
	if err != nil {
		return nil, fmt.Errorf("failed to create DHCP client: %w", err)
	}
	defer client.Close()

	lease, err := client.Request(ctx)
	if err != nil {
		return nil, fmt.Errorf("DHCP lease request failed: %w", err)
	}
	if lease == nil || lease.ACK == nil {
		return nil, fmt.Errorf("DHCP lease request returned no ACK")
	}

	return lease.ACK, nil
}
