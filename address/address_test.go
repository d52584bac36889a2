package address_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/tomkooij/ramses-rf/address"
)

func TestParse_sentinels(t *testing.T) {
	a, err := address.Parse(address.NonLiteral)
	require.NoError(t, err)
	assert.True(t, a.IsNone())

	b, err := address.Parse(address.NulLiteral)
	require.NoError(t, err)
	assert.True(t, b.IsBroadcast())
}

func TestParse_device(t *testing.T) {
	a, err := address.Parse("01:145038")
	require.NoError(t, err)
	assert.Equal(t, address.TypeCTL, a.Type())
	assert.True(t, a.IsController())
}

func TestParse_rejectsMalformed(t *testing.T) {
	for _, field := range []string{
		"01145038",   // missing colon
		"01:14503",   // serial too short
		"AB:145038",  // non-digit type
		"99:145038",  // type out of range
		"01:14503X",  // non-digit serial
	} {
		_, err := address.Parse(field)
		assert.Error(t, err, field)
	}
}

func TestParseTriplet_shapes(t *testing.T) {
	src, dst, _, err := address.ParseTriplet("01:145038 13:237335 --:------")
	require.NoError(t, err)
	assert.Equal(t, "01:145038", src.String())
	assert.Equal(t, "13:237335", dst.String())

	src, dst, _, err = address.ParseTriplet("01:145038 --:------ 01:145038")
	require.NoError(t, err)
	assert.True(t, src.Equal(dst))
	assert.Equal(t, "01:145038", src.String())

	src, dst, _, err = address.ParseTriplet("--:------ --:------ 63:262143")
	require.NoError(t, err)
	assert.True(t, src.IsBroadcast())
	assert.True(t, dst.IsBroadcast())
}

func TestParseTriplet_rejectsThreeDistinctAddresses(t *testing.T) {
	_, _, _, err := address.ParseTriplet("01:145038 13:237335 18:000730")
	assert.ErrorIs(t, err, address.ErrInvalidAddrSet)
}

func TestParseTriplet_rejectsAllNone(t *testing.T) {
	_, _, _, err := address.ParseTriplet("--:------ --:------ --:------")
	assert.ErrorIs(t, err, address.ErrInvalidAddrSet)
}

// Every address that round-trips through Parse renders back to the same
// canonical field it was parsed from.
func TestParse_roundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		typ := rapid.IntRange(0, 63).Draw(t, "type")
		serial := rapid.IntRange(0, 999999).Draw(t, "serial")
		f := addrField(typ, serial)
		a, err := address.Parse(f)
		require.NoError(t, err)
		assert.Equal(t, f, a.String())
	})
}

// FromRawID/RawID round-trip for any type/serial within the 3-byte packed
// range (6-bit type, 18-bit serial) used by binary payload fields such as
// a 000C actuator list.
func TestRawID_roundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		typ := rapid.IntRange(0, 63).Draw(t, "type")
		serial := rapid.IntRange(0, 262143).Draw(t, "serial")
		a, err := address.Parse(addrField(typ, serial))
		require.NoError(t, err)

		raw, err := a.RawID()
		require.NoError(t, err)
		got := address.FromRawID(raw)
		assert.Equal(t, a.String(), got.String())
	})
}

func TestFromRawID_broadcastSentinel(t *testing.T) {
	got := address.FromRawID([3]byte{0xFF, 0xFF, 0xFF})
	assert.Equal(t, address.NulLiteral, got.String())
}

func addrField(typ, serial int) string {
	return padTo2(typ) + ":" + padTo6(serial)
}

func padTo2(n int) string {
	s := itoa(n)
	for len(s) < 2 {
		s = "0" + s
	}
	return s
}

func padTo6(n int) string {
	s := itoa(n)
	for len(s) < 6 {
		s = "0" + s
	}
	return s
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	digits := []byte{}
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}
