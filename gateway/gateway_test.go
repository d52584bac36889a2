package gateway_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomkooij/ramses-rf/frame"
	"github.com/tomkooij/ramses-rf/gateway"
)

func mustGateway(t *testing.T, cfg gateway.Config) *gateway.Gateway {
	t.Helper()
	g, err := gateway.New(cfg, nil)
	require.NoError(t, err)
	return g
}

func mustFrame(t *testing.T, line string) frame.Frame {
	t.Helper()
	f, err := frame.Parse(line)
	require.NoError(t, err)
	return f
}

func TestProcess_harvestsDeviceAndZone(t *testing.T) {
	g := mustGateway(t, gateway.DefaultConfig())
	f := mustFrame(t, " I --- 01:145038 --:------ 01:145038 30C9 003 00076C")
	m, err := g.Process(context.Background(), f, time.Now())
	require.NoError(t, err)
	assert.NotNil(t, m)

	known := g.KnownList()
	assert.Contains(t, known, "01:145038")

	schema := g.Schema()
	require.Len(t, schema, 1)
	assert.Contains(t, schema[0].Zones, "00")
}

func TestProcess_harvestsActuatorsFrom000C(t *testing.T) {
	g := mustGateway(t, gateway.DefaultConfig())
	// zone_idx=01, role=00, actuators 10:091647 and 10:068447 packed as
	// 3-byte raw ids.
	f := mustFrame(t, "RP --- 01:145038 18:013393 --:------ 000C 008 01002965FF290B5F")
	m, err := g.Process(context.Background(), f, time.Now())
	require.NoError(t, err)
	assert.NotNil(t, m)

	known := g.KnownList()
	assert.Contains(t, known, "10:091647")
	assert.Contains(t, known, "10:068447")

	schema := g.Schema()
	require.Len(t, schema, 1)
	assert.Equal(t, "01:145038", schema[0].CtlID)
	assert.Contains(t, schema[0].Zones, "01")
}

func TestProcess_knownListRejection(t *testing.T) {
	cfg := gateway.DefaultConfig()
	cfg.EnforceKnownList = true
	g := mustGateway(t, cfg)
	g.SetKnownList([]string{"18:000730"})

	f := mustFrame(t, " I --- 04:123456 --:------ 04:123456 30C9 003 00076C")
	m, err := g.Process(context.Background(), f, time.Now())
	require.NoError(t, err)
	assert.NotNil(t, m)
	assert.NotContains(t, g.KnownList(), "04:123456")
}

func TestConfig_validateRejectsOutOfRangeZones(t *testing.T) {
	cfg := gateway.DefaultConfig()
	cfg.MaxZones = 99
	assert.Error(t, cfg.Validate())
}

type stubSink struct{ sent []frame.Frame }

func (s *stubSink) SendFrame(_ context.Context, f frame.Frame) error {
	s.sent = append(s.sent, f)
	return nil
}

func TestSend_timesOutWithoutReply(t *testing.T) {
	g := mustGateway(t, gateway.DefaultConfig())
	sink := &stubSink{}
	f := mustFrame(t, "RQ --- 18:000730 01:145038 --:------ 000A 001 00")

	_, err := g.Send(context.Background(), sink, f, 10*time.Millisecond)
	assert.ErrorIs(t, err, gateway.ErrProtocolTimeout)
	assert.Len(t, sink.sent, 1)
}

func TestSend_cancelledContextUnblocksAwait(t *testing.T) {
	g := mustGateway(t, gateway.DefaultConfig())
	sink := &stubSink{}
	f := mustFrame(t, "RQ --- 18:000730 01:145038 --:------ 000A 001 00")

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		_, err := g.Send(ctx, sink, f, time.Second)
		errCh <- err
	}()
	cancel()

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, gateway.ErrCancelled)
	case <-time.After(time.Second):
		t.Fatal("Send did not unblock after context cancellation")
	}
}
