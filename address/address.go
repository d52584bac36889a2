// Package address implements the RAMSES-II device address grammar: the
// two-digit-type/six-digit-serial triplet, its sentinel forms, and the
// per-frame three-address legality rules.
package address

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidAddress is returned when a 9-character field does not match
// the TT:SSSSSS grammar or either sentinel literal.
var ErrInvalidAddress = errors.New("ramses: invalid address")

// ErrInvalidAddrSet is returned when an address triplet does not match one
// of the three legal shapes.
var ErrInvalidAddrSet = errors.New("ramses: invalid address set")

// NonLiteral is the sentinel rendering for "field not used".
const NonLiteral = "--:------"

// NulLiteral is the sentinel rendering for the broadcast address.
const NulLiteral = "63:262143"

// Address is a RAMSES-II device identity, rendered TT:SSSSSS, or one of the
// two sentinel literals. The zero value is not a valid Address.
type Address struct {
	raw string
}

// None is the "field not used" sentinel address.
var None = Address{raw: NonLiteral}

// Broadcast is the "all devices" sentinel address.
var Broadcast = Address{raw: NulLiteral}

// Parse validates a 9-character field and returns the Address it denotes.
func Parse(field string) (Address, error) {
	if field == NonLiteral || field == NulLiteral {
		return Address{raw: field}, nil
	}
	if len(field) != 9 || field[2] != ':' {
		return Address{}, fmt.Errorf("%w: %q", ErrInvalidAddress, field)
	}
	typ, serial := field[:2], field[3:]
	if !isAllDigits(typ) || !isAllDigits(serial) {
		return Address{}, fmt.Errorf("%w: %q", ErrInvalidAddress, field)
	}
	if n, _ := strconv.Atoi(typ); n < 0 || n > 63 {
		return Address{}, fmt.Errorf("%w: type out of range: %q", ErrInvalidAddress, field)
	}
	return Address{raw: field}, nil
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// String returns the canonical 9-character rendering.
func (a Address) String() string {
	if a.raw == "" {
		return NonLiteral
	}
	return a.raw
}

// IsZero reports whether a has never been assigned by Parse.
func (a Address) IsZero() bool { return a.raw == "" }

// IsNone reports whether a is the "field not used" sentinel.
func (a Address) IsNone() bool { return a.raw == NonLiteral || a.raw == "" }

// IsBroadcast reports whether a is the "all devices" sentinel.
func (a Address) IsBroadcast() bool { return a.raw == NulLiteral }

// Equal compares two addresses by their full 9-character string form.
func (a Address) Equal(b Address) bool { return a.String() == b.String() }

// TypePrefix returns the two-digit type prefix, e.g. "01" for a controller.
func (a Address) TypePrefix() string {
	if len(a.raw) < 2 {
		return ""
	}
	return a.raw[:2]
}

// Type classifies the address by its two-digit prefix.
func (a Address) Type() DeviceType {
	return typeByPrefix[a.TypePrefix()]
}

// rawIDBits is the width of the serial field packed into a 3-byte device
// id: the top 6 bits carry the type (0-63), the bottom 18 bits the
// serial (0-262143) — the same packing that makes the broadcast sentinel
// render as "63:262143" (type 63, serial 0x3FFFF, i.e. every bit set).
const rawIDBits = 18
const rawIDMask = 1<<rawIDBits - 1

// FromRawID reconstructs the canonical "TT:SSSSSS" address a packed
// 3-byte binary device id denotes, as found inside payloads (e.g. a 000C
// actuator list) rather than in the ASCII address fields of the frame
// header itself.
func FromRawID(b [3]byte) Address {
	v := uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2])
	typ := v >> rawIDBits
	serial := v & rawIDMask
	return Address{raw: fmt.Sprintf("%02d:%06d", typ, serial)}
}

// RawID packs a into its 3-byte binary device-id form, the inverse of
// FromRawID. It is only meaningful for a non-sentinel address.
func (a Address) RawID() ([3]byte, error) {
	if len(a.raw) != 9 || a.raw[2] != ':' {
		return [3]byte{}, fmt.Errorf("%w: cannot pack %q as a raw id", ErrInvalidAddress, a.raw)
	}
	typ, err := strconv.Atoi(a.raw[:2])
	if err != nil {
		return [3]byte{}, fmt.Errorf("%w: %s", ErrInvalidAddress, err)
	}
	serial, err := strconv.Atoi(a.raw[3:])
	if err != nil {
		return [3]byte{}, fmt.Errorf("%w: %s", ErrInvalidAddress, err)
	}
	v := uint32(typ)<<rawIDBits | uint32(serial)
	return [3]byte{byte(v >> 16), byte(v >> 8), byte(v)}, nil
}

// ParseTriplet validates a 29-character "addr0 addr1 addr2" field (three
// 9-character addresses separated by single spaces), applies the triplet
// legality table, and returns the derived (src, dst) pair along with the
// three raw addresses in wire order.
func ParseTriplet(field string) (src, dst Address, addrs [3]Address, err error) {
	parts := strings.Split(field, " ")
	if len(parts) != 3 {
		return Address{}, Address{}, addrs, fmt.Errorf("%w: expected 3 addresses, got %d", ErrInvalidAddrSet, len(parts))
	}
	for i, p := range parts {
		a, perr := Parse(p)
		if perr != nil {
			return Address{}, Address{}, addrs, fmt.Errorf("%w: %s", ErrInvalidAddrSet, perr)
		}
		addrs[i] = a
	}

	n0, n1, n2 := addrs[0].IsNone(), addrs[1].IsNone(), addrs[2].IsNone()
	switch {
	case !n0 && !n1 && n2:
		// (a) source, destination, NON
		return addrs[0], addrs[1], addrs, nil
	case !n0 && n1 && !n2 && addrs[0].Equal(addrs[2]):
		// (b) source, NON, source (loopback broadcast)
		return addrs[0], addrs[0], addrs, nil
	case n0 && n1 && !n2:
		// (c) NON, NON, broadcaster
		return addrs[2], addrs[2], addrs, nil
	default:
		return Address{}, Address{}, addrs, fmt.Errorf("%w: %s", ErrInvalidAddrSet, field)
	}
}
