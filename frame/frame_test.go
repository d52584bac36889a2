package frame_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomkooij/ramses-rf/frame"
	"github.com/tomkooij/ramses-rf/ramses"
)

func TestParse_basic(t *testing.T) {
	f, err := frame.Parse(" I --- 01:145038 --:------ 01:145038 1F09 003 00FF80")
	require.NoError(t, err)
	assert.Equal(t, ramses.I, f.Verb)
	assert.Equal(t, "01:145038", f.Src.String())
	assert.True(t, f.Src.Equal(f.Dst))
	assert.Equal(t, ramses.Code("1F09"), f.Code)
	assert.Equal(t, 3, f.LenDecl)
	assert.Equal(t, "00FF80", f.Payload)
	assert.Equal(t, -1, f.RSSI)
}

func TestParse_rqrp(t *testing.T) {
	f, err := frame.Parse("RQ --- 18:000730 01:145038 --:------ 000A 001 00")
	require.NoError(t, err)
	assert.Equal(t, ramses.RQ, f.Verb)
	assert.Equal(t, "18:000730", f.Src.String())
	assert.Equal(t, "01:145038", f.Dst.String())
}

func TestParse_rssiPrefix(t *testing.T) {
	f, err := frame.Parse("056  I --- 01:145038 --:------ 01:145038 1F09 003 00FF80")
	require.NoError(t, err)
	assert.Equal(t, 56, f.RSSI)
	assert.Equal(t, ramses.I, f.Verb)
}

func TestParse_rejectsBadLength(t *testing.T) {
	_, err := frame.Parse(" I --- 01:145038 --:------ 01:145038 1F09 004 00FF80")
	assert.ErrorIs(t, err, frame.ErrInvalidPacket)
}

func TestParse_rejectsDeprecatedSeqn(t *testing.T) {
	_, err := frame.Parse(" I ... 01:145038 --:------ 01:145038 1F09 003 00FF80")
	assert.ErrorIs(t, err, frame.ErrInvalidPacket)
}

func TestParse_rejectsBadAddrSet(t *testing.T) {
	_, err := frame.Parse(" I --- 01:145038 13:237335 18:000730 1F09 003 00FF80")
	assert.Error(t, err)
}

func TestFrame_stringRoundTrip(t *testing.T) {
	line := " I --- 01:145038 --:------ 01:145038 1F09 003 00FF80"
	f, err := frame.Parse(line)
	require.NoError(t, err)
	assert.Equal(t, line, f.String())
}
