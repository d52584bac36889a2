package parser

import (
	"fmt"

	"github.com/tomkooij/ramses-rf/address"
	"github.com/tomkooij/ramses-rf/ramses"
)

// Zone0005 holds a zone-type bitmap: bit i of Zones is set if zone i is
// present for that zone type.
type Zone0005 struct {
	ZoneType string
	Zones    uint32
}

// Parse0005 decodes a 0005 zone/system bitmap-by-zone-type payload: a
// fixed "00" byte, a one-byte zone-type code, then a little-endian bitmap
// of present zones.
func Parse0005(payloadHex string, _ Context) (Value, error) {
	b, err := decodeBytes(payloadHex)
	if err != nil {
		return Value{}, err
	}
	if len(b) < 3 {
		return Value{}, fmt.Errorf("%w: 0005 payload too short", ErrInvalidPayload)
	}
	var zones uint32
	for i, byt := range b[2:] {
		zones |= uint32(byt) << (8 * i)
	}
	return Value{Kind: KindRecord, Record: map[string]any{
		"zone_type": fmt.Sprintf("%02X", b[1]),
		"zones":     zones,
	}}, nil
}

// Build0005 is the inverse of Parse0005.
func Build0005(_ ramses.Verb, _, _ address.Address, info any) (string, error) {
	in, ok := info.(Zone0005)
	if !ok {
		return "", fmt.Errorf("%w: expected Zone0005", ErrInvalidPayload)
	}
	var zt byte
	fmt.Sscanf(in.ZoneType, "%02X", &zt)
	b := []byte{0x00, zt, byte(in.Zones), byte(in.Zones >> 8)}
	return encodeBytes(b), nil
}

// ZoneConfig is one 000A record: a zone's setpoint bounds and flags.
type ZoneConfig struct {
	ZoneIdx string
	Flags   byte
	MinTemp float64
	MaxTemp float64
}

const zoneConfigRecordBytes = 6

// Parse000A decodes a 000A zone-configuration payload: either a single
// 6-byte record or (when has_array) an array of them, one per zone.
func Parse000A(payloadHex string, ctx Context) (Value, error) {
	b, err := decodeBytes(payloadHex)
	if err != nil {
		return Value{}, err
	}
	if len(b)%zoneConfigRecordBytes != 0 || len(b) == 0 {
		return Value{}, fmt.Errorf("%w: 000A payload not a multiple of %d bytes", ErrInvalidPayload, zoneConfigRecordBytes)
	}
	if !ctx.HasArray() {
		if len(b) != zoneConfigRecordBytes {
			return Value{}, fmt.Errorf("%w: 000A single record must be %d bytes", ErrInvalidPayload, zoneConfigRecordBytes)
		}
		return Value{Kind: KindRecord, Record: zoneConfigRecord(b)}, nil
	}
	list := make([]map[string]any, 0, len(b)/zoneConfigRecordBytes)
	for i := 0; i < len(b); i += zoneConfigRecordBytes {
		list = append(list, zoneConfigRecord(b[i:i+zoneConfigRecordBytes]))
	}
	return Value{Kind: KindList, List: list}, nil
}

func zoneConfigRecord(rec []byte) map[string]any {
	return map[string]any{
		"zone_idx": fmt.Sprintf("%02X", rec[0]),
		"flags":    rec[1],
		"min_temp": scaled(rec[2:4]),
		"max_temp": scaled(rec[4:6]),
	}
}

// Build000A is the inverse of Parse000A for a single record.
func Build000A(_ ramses.Verb, _, _ address.Address, info any) (string, error) {
	in, ok := info.(ZoneConfig)
	if !ok {
		return "", fmt.Errorf("%w: expected ZoneConfig", ErrInvalidPayload)
	}
	var idx byte
	fmt.Sscanf(in.ZoneIdx, "%02X", &idx)
	b := append([]byte{idx, in.Flags}, putScaled(in.MinTemp)...)
	b = append(b, putScaled(in.MaxTemp)...)
	return encodeBytes(b), nil
}

// ZoneActuators is a 000C record: the actuator device ids parented to one
// zone (or domain) under the given role.
type ZoneActuators struct {
	ZoneIdx   string
	RoleHex   string
	Actuators []string // canonical "TT:SSSSSS" device ids
}

// Parse000C decodes a 000C zone-actuators payload: a 2-byte header (zone
// index, role nibble) followed by a list of 3-byte packed device ids,
// decoded here into their canonical "TT:SSSSSS" form via address.FromRawID
// (the wire payload carries no type prefix byte; the type is packed into
// the top bits of the 3-byte id itself).
func Parse000C(payloadHex string, _ Context) (Value, error) {
	b, err := decodeBytes(payloadHex)
	if err != nil {
		return Value{}, err
	}
	if len(b) < 2 || (len(b)-2)%3 != 0 {
		return Value{}, fmt.Errorf("%w: 000C payload malformed", ErrInvalidPayload)
	}
	actuators := make([]string, 0, (len(b)-2)/3)
	for i := 2; i < len(b); i += 3 {
		actuators = append(actuators, address.FromRawID([3]byte{b[i], b[i+1], b[i+2]}).String())
	}
	return Value{Kind: KindRecord, Record: map[string]any{
		"zone_idx":  fmt.Sprintf("%02X", b[0]),
		"role":      fmt.Sprintf("%02X", b[1]),
		"actuators": actuators,
	}}, nil
}

// Build000C is the inverse of Parse000C.
func Build000C(_ ramses.Verb, _, _ address.Address, info any) (string, error) {
	in, ok := info.(ZoneActuators)
	if !ok {
		return "", fmt.Errorf("%w: expected ZoneActuators", ErrInvalidPayload)
	}
	var idx, role byte
	fmt.Sscanf(in.ZoneIdx, "%02X", &idx)
	fmt.Sscanf(in.RoleHex, "%02X", &role)
	b := []byte{idx, role}
	for _, serial := range in.Actuators {
		a, err := address.Parse(serial)
		if err != nil {
			return "", fmt.Errorf("%w: actuator %q: %s", ErrInvalidPayload, serial, err)
		}
		raw, err := a.RawID()
		if err != nil {
			return "", err
		}
		b = append(b, raw[0], raw[1], raw[2])
	}
	return encodeBytes(b), nil
}
