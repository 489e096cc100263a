package cmd

import (
	"context"
	"fmt"
	"os"

	"golang-netup/internal/adapter/dhcp"
	"golang-netup/internal/adapter/infrastructure/command"
	infraDhcp "golang-netup/internal/adapter/infrastructure/dhcp"
	"golang-netup/internal/adapter/infrastructure/file"
	"golang-netup/internal/adapter/infrastructure/network"
	"golang-netup/internal/adapter/probe"
	"golang-netup/internal/adapter/registry"
	"golang-netup/internal/adapter/shell"
	"golang-netup/internal/pkg/config"
	"golang-netup/internal/pkg/logging"
	"golang-netup/internal/pkg/pipeline"
	"golang-netup/internal/port"

	"github.com/spf13/cobra"
)

var (
	configFlag string
)

// buildEnumerator selects the interface enumeration adapter.
func buildEnumerator(cfg *config.Config, networkMgr port.NetworkManager) port.InterfaceEnumerator {
	if cfg.Registry.Source == config.SourceNetlink {
		return registry.NewNetlinkEnumerator(networkMgr)
	}
	return registry.NewSysfsEnumerator(cfg.Registry.Path)
}

// buildActivator selects the activation adapter: external tools or the
// in-process netlink/DHCP implementation.
func buildActivator(cfg *config.Config, runner port.CommandRunner, networkMgr port.NetworkManager, fileMgr port.FileManager) port.InterfaceActivator {
	if cfg.Activation.Backend == config.BackendNative {
		return dhcp.NewActivator(infraDhcp.NewClientAdapter(), networkMgr, fileMgr, cfg.Activation.LeaseTimeout.Std())
	}
	return shell.NewActivator(runner, cfg.Activation.LinkCommand, cfg.Activation.DHCPCommand)
}

// buildProber selects the reachability adapter.
func buildProber(cfg *config.Config, runner port.CommandRunner) port.ConnectivityProber {
	if cfg.Probe.Backend == config.BackendNative {
		return probe.NewPinger(cfg.Probe.Target, cfg.Probe.Count, cfg.Probe.Timeout.Std())
	}
	return shell.NewProber(runner, cfg.Probe.Command, cfg.Probe.Target, cfg.Probe.Count, cfg.Probe.Timeout.Std())
}

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Bring interfaces up, acquire DHCP leases, and check connectivity",
	Long: `Enumerates network interfaces (loopback excluded), brings each one up,
attempts a one-shot DHCP lease per interface, then probes a well-known
address. Prints "<iface> up" per leased interface followed by ONLINE or
OFFLINE; the exit code is 0 when online and 1 otherwise.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Default()
		if configFlag != "" {
			loaded, err := config.Load(configFlag)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
				os.Exit(1)
			}
			cfg = loaded
		}

		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Config validation error: %v\n", err)
			os.Exit(1)
		}

		logging.InitLogger(cfg.Logging)

		runner := command.NewRunnerAdapter()
		networkMgr := network.NewManagerAdapter()
		fileMgr := file.NewManagerAdapter()

		p := pipeline.New(
			buildEnumerator(cfg, networkMgr),
			buildActivator(cfg, runner, networkMgr, fileMgr),
			buildProber(cfg, runner),
			cfg.Registry.Fallback,
			os.Stdout,
		)

		os.Exit(p.Run(context.Background()))
	},
}

func init() {
	upCmd.Flags().StringVarP(&configFlag, "config", "f", "", "Path to config file (YAML, optional)")
	rootCmd.AddCommand(upCmd)
}
