package message_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomkooij/ramses-rf/frame"
	"github.com/tomkooij/ramses-rf/message"
)

func mustFrame(t *testing.T, line string) frame.Frame {
	t.Helper()
	f, err := frame.Parse(line)
	require.NoError(t, err)
	return f
}

func TestHasController_controllerLoopback(t *testing.T) {
	f := mustFrame(t, " I --- 01:145038 --:------ 01:145038 1F09 003 00FF80")
	m := message.New(f, time.Time{})
	assert.True(t, m.HasController())
}

func TestHasController_destinationIsVentilationDisplay(t *testing.T) {
	f := mustFrame(t, " I --- 18:000730 37:000001 --:------ 31DA 003 00076C")
	m := message.New(f, time.Time{})
	assert.True(t, m.HasController())
}

func TestHasArray_1FC9NeverArrayOnRQ(t *testing.T) {
	f := mustFrame(t, "RQ --- 18:000730 01:145038 --:------ 1FC9 001 00")
	m := message.New(f, time.Time{})
	assert.False(t, m.HasArray())
}

func TestHasPayload_shortLenIsFalse(t *testing.T) {
	f := mustFrame(t, " I --- 01:145038 --:------ 01:145038 1F09 001 00")
	m := message.New(f, time.Time{})
	assert.False(t, m.HasPayload())
}

func TestHasPayload_rqProbeIsFalse(t *testing.T) {
	f := mustFrame(t, "RQ --- 18:000730 01:145038 --:------ 10A0 002 0000")
	m := message.New(f, time.Time{})
	assert.False(t, m.HasPayload())
}

func TestForceHasArray_invalidatesDerived(t *testing.T) {
	f := mustFrame(t, " I --- 01:145038 --:------ 01:145038 22C9 006 0007D0083400")
	m := message.New(f, time.Time{})
	hdr1, err := m.Hdr()
	require.NoError(t, err)
	m.ForceHasArray()
	assert.True(t, m.HasArray())
	hdr2, err := m.Hdr()
	require.NoError(t, err)
	assert.NotEqual(t, hdr1, hdr2, "forcing an array must drop the cached zone-index context from the header")
}

func TestEqual_comparesFullTuple(t *testing.T) {
	f1 := mustFrame(t, " I --- 01:145038 --:------ 01:145038 1F09 003 00FF80")
	f2 := mustFrame(t, " I --- 01:145038 --:------ 01:145038 1F09 003 00FF81")
	m1 := message.New(f1, time.Time{})
	m2 := message.New(f2, time.Time{})
	m3 := message.New(f1, time.Time{})
	assert.False(t, m1.Equal(m2), "payloads differ by one byte, must not compare equal")
	assert.True(t, m1.Equal(m3))
}

func TestHeader_hgiSourceUsesDestination(t *testing.T) {
	f := mustFrame(t, "RQ --- 18:000730 01:145038 --:------ 000A 001 00")
	m := message.New(f, time.Time{})
	hdr, err := m.Hdr()
	require.NoError(t, err)
	assert.Equal(t, "000A|RQ|01:145038|00", hdr)
}
