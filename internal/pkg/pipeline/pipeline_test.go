//go:build unit

package pipeline

import (
	"bytes"
	"context"
	"testing"

	"golang-netup/internal/mock"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newPipeline(t *testing.T, out *bytes.Buffer) (*Pipeline, *mock.MockInterfaceEnumerator, *mock.MockInterfaceActivator, *mock.MockConnectivityProber) {
	ctrl := gomock.NewController(t)

	enumerator := mock.NewMockInterfaceEnumerator(ctrl)
	activator := mock.NewMockInterfaceActivator(ctrl)
	prober := mock.NewMockConnectivityProber(ctrl)

	return New(enumerator, activator, prober, "eth0", out), enumerator, activator, prober
}

func TestPipeline_LoopbackExclusion(t *testing.T) {
	ctx := context.Background()

	t.Run("LoopbackNeverActivated", func(t *testing.T) {
		var out bytes.Buffer
		p, enumerator, activator, prober := newPipeline(t, &out)

		enumerator.EXPECT().ListNames().Return([]string{"lo", "eth0", "wlan0"}, nil)
		activator.EXPECT().Activate(ctx, "eth0").Return(false)
		activator.EXPECT().Activate(ctx, "wlan0").Return(false)
		prober.EXPECT().Probe(ctx).Return(false)

		p.Run(ctx)
	})

	t.Run("RegistryWithOnlyLoopback", func(t *testing.T) {
		var out bytes.Buffer
		p, enumerator, _, prober := newPipeline(t, &out)

		enumerator.EXPECT().ListNames().Return([]string{"lo"}, nil)
		prober.EXPECT().Probe(ctx).Return(true)

		code := p.Run(ctx)
		assert.Equal(t, ExitOnline, code)
		assert.Equal(t, "ONLINE\n", out.String())
	})
}

func TestPipeline_FallbackGuarantee(t *testing.T) {
	ctx := context.Background()

	t.Run("EnumerationFailureUsesFallback", func(t *testing.T) {
		var out bytes.Buffer
		p, enumerator, activator, prober := newPipeline(t, &out)

		enumerator.EXPECT().ListNames().Return(nil, assert.AnError)
		activator.EXPECT().Activate(ctx, "eth0").Return(true)
		prober.EXPECT().Probe(ctx).Return(true)

		code := p.Run(ctx)
		assert.Equal(t, ExitOnline, code)
		assert.Equal(t, "eth0 up\nONLINE\n", out.String())
	})

	t.Run("EmptyRegistryIsNotAFailure", func(t *testing.T) {
		// An empty working set only happens when the registry was readable;
		// the fallback applies to read failures, not to empty listings.
		var out bytes.Buffer
		p, enumerator, _, prober := newPipeline(t, &out)

		enumerator.EXPECT().ListNames().Return([]string{}, nil)
		prober.EXPECT().Probe(ctx).Return(false)

		code := p.Run(ctx)
		assert.Equal(t, ExitOffline, code)
		assert.Equal(t, "OFFLINE\n", out.String())
	})
}

func TestPipeline_BestEffortIndependence(t *testing.T) {
	ctx := context.Background()

	t.Run("FailedInterfaceDoesNotBlockOthers", func(t *testing.T) {
		var out bytes.Buffer
		p, enumerator, activator, prober := newPipeline(t, &out)

		enumerator.EXPECT().ListNames().Return([]string{"eth0", "eth1", "eth2"}, nil)
		activator.EXPECT().Activate(ctx, "eth0").Return(false)
		activator.EXPECT().Activate(ctx, "eth1").Return(true)
		activator.EXPECT().Activate(ctx, "eth2").Return(true)
		prober.EXPECT().Probe(ctx).Return(true)

		code := p.Run(ctx)
		assert.Equal(t, ExitOnline, code)
		assert.Equal(t, "eth1 up\neth2 up\nONLINE\n", out.String())
	})

	t.Run("ExitCodeDependsOnlyOnProbe", func(t *testing.T) {
		var out bytes.Buffer
		p, enumerator, activator, prober := newPipeline(t, &out)

		enumerator.EXPECT().ListNames().Return([]string{"eth0"}, nil)
		activator.EXPECT().Activate(ctx, "eth0").Return(true)
		prober.EXPECT().Probe(ctx).Return(false)

		code := p.Run(ctx)
		assert.Equal(t, ExitOffline, code)
		assert.Equal(t, "eth0 up\nOFFLINE\n", out.String())
	})
}

func TestPipeline_ConfirmationCorrelation(t *testing.T) {
	ctx := context.Background()

	t.Run("ConfirmationOnlyForSuccessfulLeases", func(t *testing.T) {
		var out bytes.Buffer
		p, enumerator, activator, prober := newPipeline(t, &out)

		enumerator.EXPECT().ListNames().Return([]string{"eth0", "wlan0"}, nil)
		activator.EXPECT().Activate(ctx, "eth0").Return(true)
		activator.EXPECT().Activate(ctx, "wlan0").Return(false)
		prober.EXPECT().Probe(ctx).Return(false)

		p.Run(ctx)
		assert.Contains(t, out.String(), "eth0 up\n")
		assert.NotContains(t, out.String(), "wlan0")
	})
}

func TestPipeline_EndToEnd(t *testing.T) {
	ctx := context.Background()

	t.Run("OnlineScenario", func(t *testing.T) {
		// registry = [lo eth0 wlan0], DHCP succeeds only for eth0, probe succeeds
		var out bytes.Buffer
		p, enumerator, activator, prober := newPipeline(t, &out)

		enumerator.EXPECT().ListNames().Return([]string{"lo", "eth0", "wlan0"}, nil)
		activator.EXPECT().Activate(ctx, "eth0").Return(true)
		activator.EXPECT().Activate(ctx, "wlan0").Return(false)
		prober.EXPECT().Probe(ctx).Return(true)

		code := p.Run(ctx)
		assert.Equal(t, ExitOnline, code)
		assert.Equal(t, "eth0 up\nONLINE\n", out.String())
	})

	t.Run("DegenerateOfflineScenario", func(t *testing.T) {
		// registry read fails, DHCP fails for the fallback, probe fails
		var out bytes.Buffer
		p, enumerator, activator, prober := newPipeline(t, &out)

		enumerator.EXPECT().ListNames().Return(nil, assert.AnError)
		activator.EXPECT().Activate(ctx, "eth0").Return(false)
		prober.EXPECT().Probe(ctx).Return(false)

		code := p.Run(ctx)
		assert.Equal(t, ExitOffline, code)
		assert.Equal(t, "OFFLINE\n", out.String())
	})
}

func TestPipeline_ActivationOrder(t *testing.T) {
	ctx := context.Background()

	var out bytes.Buffer
	p, enumerator, activator, prober := newPipeline(t, &out)

	enumerator.EXPECT().ListNames().Return([]string{"eth1", "eth0"}, nil)
	first := activator.EXPECT().Activate(ctx, "eth1").Return(true)
	activator.EXPECT().Activate(ctx, "eth0").Return(true).After(first)
	prober.EXPECT().Probe(ctx).Return(true)

	p.Run(ctx)
	assert.Equal(t, "eth1 up\neth0 up\nONLINE\n", out.String())
}
