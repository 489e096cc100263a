//go:build unit

package shell

import (
	"context"
	"testing"

	"golang-netup/internal/mock"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestActivator_Activate(t *testing.T) {
	ctx := context.Background()

	t.Run("LeaseAcquired", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		runner := mock.NewMockCommandRunner(ctrl)
		activator := NewActivator(runner, "ip", "dhclient")

		runner.EXPECT().Run(ctx, "ip", "link", "set", "eth0", "up").Return(true)
		runner.EXPECT().Run(ctx, "dhclient", "-1", "-q", "eth0").Return(true)

		assert.True(t, activator.Activate(ctx, "eth0"))
	})

	t.Run("DHCPFailure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		runner := mock.NewMockCommandRunner(ctrl)
		activator := NewActivator(runner, "ip", "dhclient")

		runner.EXPECT().Run(ctx, "ip", "link", "set", "wlan0", "up").Return(true)
		runner.EXPECT().Run(ctx, "dhclient", "-1", "-q", "wlan0").Return(false)

		assert.False(t, activator.Activate(ctx, "wlan0"))
	})

	t.Run("LinkAdminFailureIsIgnored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		runner := mock.NewMockCommandRunner(ctrl)
		activator := NewActivator(runner, "ip", "dhclient")

		// The link tool failing (missing binary, bad interface) must not
		// prevent the DHCP attempt, and must not affect the result.
		runner.EXPECT().Run(ctx, "ip", "link", "set", "eth0", "up").Return(false)
		runner.EXPECT().Run(ctx, "dhclient", "-1", "-q", "eth0").Return(true)

		assert.True(t, activator.Activate(ctx, "eth0"))
	})

	t.Run("CustomCommands", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		runner := mock.NewMockCommandRunner(ctrl)
		activator := NewActivator(runner, "busybox-ip", "udhcpc")

		runner.EXPECT().Run(ctx, "busybox-ip", "link", "set", "eth0", "up").Return(true)
		runner.EXPECT().Run(ctx, "udhcpc", "-1", "-q", "eth0").Return(true)

		assert.True(t, activator.Activate(ctx, "eth0"))
	})
}
