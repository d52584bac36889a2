package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/tomkooij/ramses-rf/address"
	"github.com/tomkooij/ramses-rf/parser"
	"github.com/tomkooij/ramses-rf/ramses"
)

// fakeCtx is a minimal parser.Context for tests that don't need a full
// message.Message.
type fakeCtx struct {
	code           ramses.Code
	verb           ramses.Verb
	src, dst       address.Address
	hasArray       bool
	hasController  bool
}

func (c fakeCtx) Code() ramses.Code         { return c.code }
func (c fakeCtx) Verb() ramses.Verb         { return c.verb }
func (c fakeCtx) Src() address.Address      { return c.src }
func (c fakeCtx) Dst() address.Address      { return c.dst }
func (c fakeCtx) HasArray() bool            { return c.hasArray }
func (c fakeCtx) HasController() bool       { return c.hasController }

func mustAddr(t *testing.T, s string) address.Address {
	t.Helper()
	a, err := address.Parse(s)
	require.NoError(t, err)
	return a
}

func TestParse000C_singleRecord(t *testing.T) {
	ctl := mustAddr(t, "01:145038")
	ctx := fakeCtx{code: ramses.Code000C, verb: ramses.RP, src: ctl, dst: ctl}

	in := parser.ZoneActuators{ZoneIdx: "01", RoleHex: "00", Actuators: []string{"10:091647", "10:068447"}}
	payload, err := parser.Build000C(ramses.RP, ctl, ctl, in)
	require.NoError(t, err)

	v, err := parser.Parse(payload, ctx)
	require.NoError(t, err)
	assert.Equal(t, parser.KindRecord, v.Kind)
	assert.Equal(t, "01", v.Record["zone_idx"])
	assert.Equal(t, []string{"10:091647", "10:068447"}, v.Record["actuators"])
}

func TestParse000A_array(t *testing.T) {
	ctl := mustAddr(t, "01:145038")
	ctx := fakeCtx{code: ramses.Code000A, verb: ramses.I, src: ctl, dst: ctl, hasArray: true}
	// two 6-byte records
	v, err := parser.Parse("000A28C80FA0001900C80FA0", ctx)
	require.NoError(t, err)
	assert.Equal(t, parser.KindList, v.Kind)
	require.Len(t, v.List, 2)
}

func TestParseUnknown_fallsBackToRaw(t *testing.T) {
	ctx := fakeCtx{code: ramses.Code("7FFF"), verb: ramses.I}
	v, err := parser.Parse("DEADBEEF", ctx)
	require.NoError(t, err)
	assert.Equal(t, parser.KindRaw, v.Kind)
	assert.Equal(t, "DEADBEEF", v.Raw)
}

// Every 2309/30C9 single record round-trips through parse then build.
func TestZoneValue_roundTrip(t *testing.T) {
	ctl := mustAddr(t, "01:145038")
	ctx := fakeCtx{code: ramses.Code2309, verb: ramses.I, src: ctl, dst: ctl}
	rapid.Check(t, func(t *rapid.T) {
		idx := rapid.IntRange(0, 15).Draw(t, "zone_idx")
		value := float64(rapid.IntRange(-2000, 3000).Draw(t, "value")) / 100.0

		in := parser.ZoneValue{ZoneIdx: hex2(idx), Value: value}
		payload, err := parser.Build2309(ramses.I, ctl, ctl, in)
		require.NoError(t, err)

		v, err := parser.Parse2309(payload, ctx)
		require.NoError(t, err)
		require.Equal(t, parser.KindRecord, v.Kind)
		assert.Equal(t, in.ZoneIdx, v.Record["zone_idx"])
		assert.InDelta(t, in.Value, v.Record["value"].(float64), 0.01)
	})
}

func hex2(n int) string {
	const digits = "0123456789ABCDEF"
	return string([]byte{digits[(n>>4)&0xF], digits[n&0xF]})
}
