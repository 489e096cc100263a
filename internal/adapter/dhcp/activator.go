// Package dhcp provides the native activation adapter: link up via
// netlink and a one-shot in-process DHCP lease, no external tools.
package dhcp

import (
	"context"
	"fmt"
	"net"
	"strings"
	"time"

	"golang-netup/internal/pkg/logging"
	"golang-netup/internal/port"

	"github.com/insomniacslk/dhcp/dhcpv4"
	"github.com/vishvananda/netlink"
)

// Activator is a native activation adapter that implements the
// InterfaceActivator port. It brings the link up, acquires a single DHCP
// lease through the DHCPClient port and applies it to the interface.
type Activator struct {
	dhcpClient   port.DHCPClient
	networkMgr   port.NetworkManager
	fileMgr      port.FileManager
	leaseTimeout time.Duration
}

// Ensure Activator implements the InterfaceActivator port
var _ port.InterfaceActivator = (*Activator)(nil)

// NewActivator creates a native activator. leaseTimeout bounds the single
// DISCOVER/OFFER/REQUEST/ACK exchange per interface.
func NewActivator(dhcpClient port.DHCPClient, networkMgr port.NetworkManager, fileMgr port.FileManager, leaseTimeout time.Duration) *Activator {
	return &Activator{
		dhcpClient:   dhcpClient,
		networkMgr:   networkMgr,
		fileMgr:      fileMgr,
		leaseTimeout: leaseTimeout,
	}
}

// Activate brings the interface up and attempts one lease negotiation.
// It returns true only if the lease was acquired. The link-up result is
// unconditionally ignored, matching the shell backend; errors while
// applying an already-acquired lease are logged but do not retract the
// confirmation.
func (a *Activator) Activate(ctx context.Context, interfaceName string) bool {
	logger := logging.WithComponentAndInterface("dhcp", interfaceName)

	link, err := a.networkMgr.GetLinkByName(interfaceName)
	if err != nil {
		logger.WithError(err).Debug("Interface not found")
		return false
	}

	if err := a.networkMgr.SetLinkUp(link); err != nil {
		logger.WithError(err).Debug("Failed to bring link up, continuing")
	}

	ack, err := a.dhcpClient.RequestLease(ctx, interfaceName, a.leaseTimeout)
	if err != nil {
		logger.WithError(err).Debug("DHCP lease request failed")
		return false
	}
	logger.WithField("ip", ack.YourIPAddr.String()).Info("Lease acquired")

	if err := a.applyLease(interfaceName, link, ack); err != nil {
		logger.WithError(err).Warn("Failed to apply lease to interface")
	}
	return true
}

// applyLease configures the interface with the received lease: address,
// default gateway and DNS servers.
func (a *Activator) applyLease(interfaceName string, link netlink.Link, ack *dhcpv4.DHCPv4) error {
	logger := logging.WithComponentAndInterface("dhcp", interfaceName)

	subnetMask := ack.SubnetMask()
	if subnetMask == nil {
		// Default to /24 if no subnet mask provided
		subnetMask = net.IPv4Mask(255, 255, 255, 0)
	}
	ipNet := &net.IPNet{
		IP:   ack.YourIPAddr,
		Mask: subnetMask,
	}

	existingAddrs, err := a.networkMgr.ListAddresses(link)
	if err != nil {
		return fmt.Errorf("failed to list existing addresses: %w", err)
	}

	// Check if the leased address is already configured
	alreadyConfigured := false
	for _, addr := range existingAddrs {
		if addr.IPNet.IP.Equal(ipNet.IP) && addr.IPNet.Mask.String() == ipNet.Mask.String() {
			logger.WithField("ip", ipNet.String()).Debug("IP address already configured, skipping")
			alreadyConfigured = true
			break
		}
	}

	if !alreadyConfigured {
		// Remove stale IPv4 addresses before installing the lease
		for _, addr := range existingAddrs {
			if addr.IPNet.IP.Equal(ipNet.IP) {
				continue
			}
			if err := a.networkMgr.DeleteAddress(link, &addr); err != nil {
				logger.WithError(err).WithField("address", addr.IPNet.String()).Warn("Failed to remove existing address")
			} else {
				logger.WithField("address", addr.IPNet.String()).Debug("Removed existing address")
			}
		}

		leaseTime := ack.IPAddressLeaseTime(60 * time.Second)
		addr := &netlink.Addr{
			IPNet:       ipNet,
			ValidLft:    int(leaseTime.Seconds()),
			PreferedLft: int(leaseTime.Seconds()),
		}
		if err := a.networkMgr.AddAddress(link, addr); err != nil {
			return fmt.Errorf("failed to add IP address %s: %w", ipNet.String(), err)
		}
		logger.WithField("ip", ipNet.String()).Info("Added IP address")
	}

	if routers := ack.Router(); len(routers) > 0 {
		if err := a.configureDefaultRoute(interfaceName, link, routers[0]); err != nil {
			return fmt.Errorf("failed to set default gateway: %w", err)
		}
	}

	if dnsServers := ack.DNS(); len(dnsServers) > 0 {
		if err := a.configureDNS(interfaceName, dnsServers); err != nil {
			logger.WithError(err).Warn("Failed to configure DNS")
		}
	}

	return nil
}

// configureDefaultRoute installs the lease's gateway as the default route,
// replacing any conflicting default routes.
func (a *Activator) configureDefaultRoute(interfaceName string, link netlink.Link, gateway net.IP) error {
	logger := logging.WithComponentAndInterface("dhcp", interfaceName).WithField("gateway", gateway.String())

	routes, err := a.networkMgr.ListRoutes()
	if err != nil {
		return fmt.Errorf("failed to list routes: %w", err)
	}

	for _, route := range routes {
		if route.Dst != nil && route.Dst.String() != "0.0.0.0/0" {
			continue
		}
		if route.Gw != nil && route.Gw.Equal(gateway) && route.LinkIndex == link.Attrs().Index {
			logger.Debug("Default route already configured, skipping")
			return nil
		}
		// Conflicting default route
		if err := a.networkMgr.DeleteRoute(&route); err != nil {
			logger.WithError(err).Warn("Failed to remove existing default route")
		} else {
			logger.Debug("Removed existing default route")
		}
	}

	route := &netlink.Route{
		LinkIndex: link.Attrs().Index,
		Gw:        gateway,
	}
	if err := a.networkMgr.AddRoute(route); err != nil {
		if strings.Contains(err.Error(), "file exists") {
			logger.Debug("Default route already exists, ignoring error")
			return nil
		}
		return fmt.Errorf("failed to add default route: %w", err)
	}

	logger.Info("Configured default route")
	return nil
}

// configureDNS writes the lease's DNS servers to /etc/resolv.conf.
func (a *Activator) configureDNS(interfaceName string, dnsServers []net.IP) error {
	logger := logging.WithComponentAndInterface("dhcp", interfaceName)

	var b strings.Builder
	b.WriteString("# Generated by golang-netup\n")
	for _, dns := range dnsServers {
		fmt.Fprintf(&b, "nameserver %s\n", dns.String())
	}
	newContent := b.String()

	if currentContent, err := a.fileMgr.ReadFile("/etc/resolv.conf"); err == nil {
		if string(currentContent) == newContent {
			logger.Debug("DNS configuration already up to date, skipping")
			return nil
		}
	}

	if err := a.fileMgr.WriteFile("/etc/resolv.conf", []byte(newContent), 0644); err != nil {
		return fmt.Errorf("failed to write /etc/resolv.conf: %w", err)
	}

	logger.Info("Updated /etc/resolv.conf with DNS servers")
	return nil
}
