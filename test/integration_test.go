//go:build integration
// +build integration

package test

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// TestNetUpEndToEnd runs the real binary against stub network tools and a
// fake sysfs registry, checking the exact stdout contract and exit code.
func TestNetUpEndToEnd(t *testing.T) {
	binary := buildBinary(t)

	t.Run("Online", func(t *testing.T) {
		// registry = [lo eth0 wlan0]; dhclient succeeds only for eth0;
		// ping succeeds.
		registry := t.TempDir()
		for _, name := range []string{"lo", "eth0", "wlan0"} {
			if err := os.Mkdir(filepath.Join(registry, name), 0755); err != nil {
				t.Fatalf("Failed to create registry entry: %v", err)
			}
		}

		tools := t.TempDir()
		writeStub(t, tools, "ip", "exit 0")
		writeStub(t, tools, "dhclient", `case "$3" in eth0) exit 0;; *) exit 1;; esac`)
		writeStub(t, tools, "ping", "exit 0")

		stdout, code := runBinary(t, binary, tools, writeConfig(t, registry))

		if stdout != "eth0 up\nONLINE\n" {
			t.Errorf("Unexpected stdout: %q", stdout)
		}
		if code != 0 {
			t.Errorf("Expected exit code 0, got %d", code)
		}
	})

	t.Run("DegenerateOffline", func(t *testing.T) {
		// Registry read fails, DHCP fails for the fallback, probe fails.
		tools := t.TempDir()
		writeStub(t, tools, "ip", "exit 0")
		writeStub(t, tools, "dhclient", "exit 1")
		writeStub(t, tools, "ping", "exit 1")

		registry := filepath.Join(t.TempDir(), "does-not-exist")
		stdout, code := runBinary(t, binary, tools, writeConfig(t, registry))

		if stdout != "OFFLINE\n" {
			t.Errorf("Unexpected stdout: %q", stdout)
		}
		if code != 1 {
			t.Errorf("Expected exit code 1, got %d", code)
		}
	})

	t.Run("LinkToolMissing", func(t *testing.T) {
		// No ip stub at all: link-admin launch failure must be swallowed
		// and must not affect the DHCP gate or the probe.
		registry := t.TempDir()
		if err := os.Mkdir(filepath.Join(registry, "eth0"), 0755); err != nil {
			t.Fatalf("Failed to create registry entry: %v", err)
		}

		tools := t.TempDir()
		writeStub(t, tools, "dhclient", "exit 0")
		writeStub(t, tools, "ping", "exit 0")

		stdout, code := runBinary(t, binary, tools, writeConfig(t, registry))

		if stdout != "eth0 up\nONLINE\n" {
			t.Errorf("Unexpected stdout: %q", stdout)
		}
		if code != 0 {
			t.Errorf("Expected exit code 0, got %d", code)
		}
	})
}

// buildBinary compiles the module's main package into a temp directory.
func buildBinary(t *testing.T) string {
	t.Helper()

	binary := filepath.Join(t.TempDir(), "golang-netup")
	cmd := exec.Command("go", "build", "-o", binary, "..")
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build binary: %v\n%s", err, out)
	}
	return binary
}

// writeStub creates an executable shell stub named after a network tool.
func writeStub(t *testing.T, dir, name, body string) {
	t.Helper()

	script := fmt.Sprintf("#!/bin/sh\n%s\n", body)
	if err := os.WriteFile(filepath.Join(dir, name), []byte(script), 0755); err != nil {
		t.Fatalf("Failed to write stub %s: %v", name, err)
	}
}

// writeConfig points the registry at a fake sysfs directory, leaving all
// other settings at their defaults.
func writeConfig(t *testing.T, registryPath string) string {
	t.Helper()

	config := fmt.Sprintf("registry:\n  path: %s\n", registryPath)
	path := filepath.Join(t.TempDir(), "netup.yml")
	if err := os.WriteFile(path, []byte(config), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

// runBinary executes `golang-netup up` with the stub tools first on PATH
// and returns stdout plus the exit code.
func runBinary(t *testing.T, binary, toolDir, configPath string) (string, int) {
	t.Helper()

	cmd := exec.Command(binary, "up", "-f", configPath)
	cmd.Env = append(os.Environ(), "PATH="+toolDir+":"+os.Getenv("PATH"))

	stdout, err := cmd.Output()
	if err == nil {
		return string(stdout), 0
	}
	if exitErr, ok := err.(*exec.ExitError); ok {
		return string(stdout), exitErr.ExitCode()
	}
	t.Fatalf("Failed to run binary: %v", err)
	return "", -1
}
