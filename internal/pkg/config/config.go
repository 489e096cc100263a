package config

import (
	"fmt"
	"os"
	"time"

	"golang-netup/internal/pkg/logging"

	"gopkg.in/yaml.v3"
)

// Backend and registry source selectors.
const (
	BackendShell  = "shell"
	BackendNative = "native"

	SourceSysfs   = "sysfs"
	SourceNetlink = "netlink"
)

// Duration wraps time.Duration so YAML values like "3s" decode cleanly.
type Duration time.Duration

// UnmarshalYAML decodes a duration string such as "15s" or "500ms".
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped standard library duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// RegistryConfig controls how candidate interfaces are enumerated.
type RegistryConfig struct {
	Source   string `yaml:"source,omitempty"`   // sysfs or netlink
	Path     string `yaml:"path,omitempty"`     // sysfs registry directory
	Fallback string `yaml:"fallback,omitempty"` // single interface used when enumeration fails
}

// ActivationConfig controls how each interface is brought online.
type ActivationConfig struct {
	Backend      string   `yaml:"backend,omitempty"` // shell or native
	LinkCommand  string   `yaml:"link_command,omitempty"`
	DHCPCommand  string   `yaml:"dhcp_command,omitempty"`
	LeaseTimeout Duration `yaml:"lease_timeout,omitempty"` // native backend bound per lease exchange
}

// ProbeConfig controls the final reachability check.
type ProbeConfig struct {
	Backend string   `yaml:"backend,omitempty"` // shell or native
	Command string   `yaml:"command,omitempty"`
	Target  string   `yaml:"target,omitempty"`
	Count   int      `yaml:"count,omitempty"`
	Timeout Duration `yaml:"timeout,omitempty"`
}

// Config represents the main configuration structure
type Config struct {
	Logging    logging.LogConfig `yaml:"logging"`
	Registry   RegistryConfig    `yaml:"registry"`
	Activation ActivationConfig  `yaml:"activation"`
	Probe      ProbeConfig       `yaml:"probe"`
}

// Default returns the built-in configuration. It reproduces the classic
// net-up behavior exactly: sysfs enumeration with an eth0 fallback,
// `ip`/`dhclient` shell activation, and a single 3-second ping to 8.8.8.8.
func Default() *Config {
	return &Config{
		Logging: logging.LogConfig{
			Level:  "warning",
			Format: "simple",
		},
		Registry: RegistryConfig{
			Source:   SourceSysfs,
			Path:     "/sys/class/net",
			Fallback: "eth0",
		},
		Activation: ActivationConfig{
			Backend:      BackendShell,
			LinkCommand:  "ip",
			DHCPCommand:  "dhclient",
			LeaseTimeout: Duration(15 * time.Second),
		},
		Probe: ProbeConfig{
			Backend: BackendShell,
			Command: "ping",
			Target:  "8.8.8.8",
			Count:   1,
			Timeout: Duration(3 * time.Second),
		},
	}
}

// Load loads configuration from a YAML file. Fields absent from the file
// keep their default values.
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Registry.Source {
	case SourceSysfs, SourceNetlink:
	default:
		return fmt.Errorf("registry source must be %q or %q, got %q", SourceSysfs, SourceNetlink, c.Registry.Source)
	}
	if c.Registry.Source == SourceSysfs && c.Registry.Path == "" {
		return fmt.Errorf("registry path is required for the sysfs source")
	}
	if c.Registry.Fallback == "" {
		return fmt.Errorf("registry fallback interface is required")
	}

	switch c.Activation.Backend {
	case BackendShell:
		if c.Activation.LinkCommand == "" {
			return fmt.Errorf("activation link_command is required for the shell backend")
		}
		if c.Activation.DHCPCommand == "" {
			return fmt.Errorf("activation dhcp_command is required for the shell backend")
		}
	case BackendNative:
		if c.Activation.LeaseTimeout <= 0 {
			return fmt.Errorf("activation lease_timeout must be positive for the native backend")
		}
	default:
		return fmt.Errorf("activation backend must be %q or %q, got %q", BackendShell, BackendNative, c.Activation.Backend)
	}

	switch c.Probe.Backend {
	case BackendShell:
		if c.Probe.Command == "" {
			return fmt.Errorf("probe command is required for the shell backend")
		}
	case BackendNative:
	default:
		return fmt.Errorf("probe backend must be %q or %q, got %q", BackendShell, BackendNative, c.Probe.Backend)
	}
	if c.Probe.Target == "" {
		return fmt.Errorf("probe target is required")
	}
	if c.Probe.Count < 1 {
		return fmt.Errorf("probe count must be at least 1, got %d", c.Probe.Count)
	}
	if c.Probe.Timeout <= 0 {
		return fmt.Errorf("probe timeout must be positive")
	}

	return nil
}
