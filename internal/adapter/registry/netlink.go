package registry

import (
	"fmt"

	"golang-netup/internal/port"
)

// NetlinkEnumerator is an adapter that implements the InterfaceEnumerator
// port on top of the NetworkManager port, listing links straight from the
// kernel instead of walking sysfs.
type NetlinkEnumerator struct {
	networkMgr port.NetworkManager
}

// Ensure NetlinkEnumerator implements the InterfaceEnumerator port
var _ port.InterfaceEnumerator = (*NetlinkEnumerator)(nil)

// NewNetlinkEnumerator creates a netlink-backed enumerator.
func NewNetlinkEnumerator(networkMgr port.NetworkManager) *NetlinkEnumerator {
	return &NetlinkEnumerator{networkMgr: networkMgr}
}

// ListNames returns the names of all links known to the kernel.
func (e *NetlinkEnumerator) ListNames() ([]string, error) {
	links, err := e.networkMgr.ListLinks()
	if err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}

	names := make([]string, 0, len(links))
	for _, link := range links {
		names = append(names, link.Attrs().Name)
	}
	return names, nil
}
