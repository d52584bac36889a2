package parser

import (
	"fmt"

	"github.com/tomkooij/ramses-rf/address"
	"github.com/tomkooij/ramses-rf/ramses"
)

// BoilerRelay is a 1100 boiler-relay / TPI-parameters record.
type BoilerRelay struct {
	Domain      string // "FC" when the payload is domain-indexed, "" otherwise
	CycleRate   byte
	MinOnTime   float64
	MinOffTime  float64
}

// Parse1100 decodes a 1100 boiler-relay payload. When the first payload
// byte is the domain-id marker 0xF_, the record is domain-indexed (FC);
// otherwise it has no index.
func Parse1100(payloadHex string, _ Context) (Value, error) {
	b, err := decodeBytes(payloadHex)
	if err != nil {
		return Value{}, err
	}
	if len(b) < 5 {
		return Value{}, fmt.Errorf("%w: 1100 payload too short", ErrInvalidPayload)
	}
	rec := map[string]any{
		"cycle_rate":   b[1],
		"min_on_time":  float64(b[2]) / 4.0,
		"min_off_time": float64(b[3]) / 4.0,
	}
	if b[0]&0xF0 == 0xF0 {
		rec["domain"] = fmt.Sprintf("%02X", b[0])
	}
	return Value{Kind: KindRecord, Record: rec}, nil
}

// Build1100 is the inverse of Parse1100.
func Build1100(_ ramses.Verb, _, _ address.Address, info any) (string, error) {
	in, ok := info.(BoilerRelay)
	if !ok {
		return "", fmt.Errorf("%w: expected BoilerRelay", ErrInvalidPayload)
	}
	lead := byte(0x00)
	if in.Domain != "" {
		fmt.Sscanf(in.Domain, "%02X", &lead)
	}
	b := []byte{lead, in.CycleRate, byte(in.MinOnTime * 4), byte(in.MinOffTime * 4), 0xFF}
	return encodeBytes(b), nil
}

// OpenThermMessage is a 3220 OpenTherm relay message.
type OpenThermMessage struct {
	Counter byte
	MsgType byte
	DataID  string // hex, also the message's idx
	Value   uint16
}

// Parse3220 decodes a 3220 OpenTherm message payload. The data-id sits at
// payload[4:6] (byte offset 2), which is also this opcode's idx.
func Parse3220(payloadHex string, _ Context) (Value, error) {
	b, err := decodeBytes(payloadHex)
	if err != nil {
		return Value{}, err
	}
	if len(b) < 5 {
		return Value{}, fmt.Errorf("%w: 3220 payload too short", ErrInvalidPayload)
	}
	return Value{Kind: KindRecord, Record: map[string]any{
		"counter":  b[0],
		"msg_type": b[1],
		"data_id":  fmt.Sprintf("%02X", b[2]),
		"value":    uint16(b[3])<<8 | uint16(b[4]),
	}}, nil
}

// Build3220 is the inverse of Parse3220.
func Build3220(_ ramses.Verb, _, _ address.Address, info any) (string, error) {
	in, ok := info.(OpenThermMessage)
	if !ok {
		return "", fmt.Errorf("%w: expected OpenThermMessage", ErrInvalidPayload)
	}
	var dataID byte
	fmt.Sscanf(in.DataID, "%02X", &dataID)
	b := []byte{in.Counter, in.MsgType, dataID, byte(in.Value >> 8), byte(in.Value)}
	return encodeBytes(b), nil
}

// BindRecord is one entry of a 1FC9 RF-bind offer/accept/confirm list: the
// opcode being offered/bound and the offering device's serial.
type BindRecord struct {
	DomainOrZone string
	Code         ramses.Code
	DeviceSerial string // 6 hex chars
}

const bindRecordBytes = 6

// Parse1FC9 decodes a 1FC9 RF-bind payload as an array of 6-byte records
// (domain/zone byte, 2-byte opcode, 3-byte device serial). The verb is not
// consulted: an RQ payload is decoded the same way, and any payload whose
// length is not a non-zero multiple of 6 bytes is rejected.
func Parse1FC9(payloadHex string, _ Context) (Value, error) {
	b, err := decodeBytes(payloadHex)
	if err != nil {
		return Value{}, err
	}
	if len(b)%bindRecordBytes != 0 || len(b) == 0 {
		return Value{}, fmt.Errorf("%w: 1FC9 payload not a multiple of %d bytes", ErrInvalidPayload, bindRecordBytes)
	}
	list := make([]map[string]any, 0, len(b)/bindRecordBytes)
	for i := 0; i < len(b); i += bindRecordBytes {
		r := b[i : i+bindRecordBytes]
		list = append(list, map[string]any{
			"domain_or_zone": fmt.Sprintf("%02X", r[0]),
			"code":           fmt.Sprintf("%02X%02X", r[1], r[2]),
			"device_serial":  fmt.Sprintf("%02X%02X%02X", r[3], r[4], r[5]),
		})
	}
	return Value{Kind: KindList, List: list}, nil
}

// Build1FC9 is the inverse of Parse1FC9 for a single offer record.
func Build1FC9(_ ramses.Verb, _, _ address.Address, info any) (string, error) {
	in, ok := info.(BindRecord)
	if !ok {
		return "", fmt.Errorf("%w: expected BindRecord", ErrInvalidPayload)
	}
	var d byte
	var c1, c2, s1, s2, s3 byte
	fmt.Sscanf(in.DomainOrZone, "%02X", &d)
	fmt.Sscanf(string(in.Code), "%02X%02X", &c1, &c2)
	fmt.Sscanf(in.DeviceSerial, "%02X%02X%02X", &s1, &s2, &s3)
	return encodeBytes([]byte{d, c1, c2, s1, s2, s3}), nil
}

// RFCheck is a 0016 RF-check/ping record.
type RFCheck struct {
	RSSI byte
}

// Parse0016 decodes a 0016 RF-check payload: zero or two bytes.
func Parse0016(payloadHex string, _ Context) (Value, error) {
	b, err := decodeBytes(payloadHex)
	if err != nil {
		return Value{}, err
	}
	if len(b) == 0 {
		return Value{Kind: KindRecord, Record: map[string]any{}}, nil
	}
	if len(b) != 2 {
		return Value{}, fmt.Errorf("%w: 0016 payload must be 0 or 2 bytes", ErrInvalidPayload)
	}
	return Value{Kind: KindRecord, Record: map[string]any{"rssi": b[1]}}, nil
}

// Build0016 is the inverse of Parse0016.
func Build0016(_ ramses.Verb, _, _ address.Address, info any) (string, error) {
	in, ok := info.(RFCheck)
	if !ok {
		return "", fmt.Errorf("%w: expected RFCheck", ErrInvalidPayload)
	}
	return encodeBytes([]byte{0x00, in.RSSI}), nil
}
