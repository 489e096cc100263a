// Package registry provides interface enumeration adapters.
package registry

import (
	"fmt"
	"os"

	"golang-netup/internal/port"
)

// SysfsEnumerator is an adapter that implements the InterfaceEnumerator
// port by listing the kernel's sysfs network registry directory
// (normally /sys/class/net).
type SysfsEnumerator struct {
	path string
}

// Ensure SysfsEnumerator implements the InterfaceEnumerator port
var _ port.InterfaceEnumerator = (*SysfsEnumerator)(nil)

// NewSysfsEnumerator creates a sysfs enumerator for the given registry path.
func NewSysfsEnumerator(path string) *SysfsEnumerator {
	return &SysfsEnumerator{path: path}
}

// ListNames returns one name per registry entry, in directory order.
func (e *SysfsEnumerator) ListNames() ([]string, error) {
	entries, err := os.ReadDir(e.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read interface registry %s: %w", e.path, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names, nil
}
