package parser

import (
	"fmt"

	"github.com/tomkooij/ramses-rf/address"
	"github.com/tomkooij/ramses-rf/ramses"
)

// RelayFailsafe is a 0009 record: a domain or zone's relay failsafe state.
type RelayFailsafe struct {
	DomainID string
	State    byte
	Flag     string
}

const relayFailsafeRecordBytes = 3

// Parse0009 decodes a 0009 relay-failsafe payload: a single record, or an
// array of them when sent by a controller as a domain broadcast. Each
// record is domain_id (byte 0), state (byte 1), flag (byte 2).
func Parse0009(payloadHex string, ctx Context) (Value, error) {
	b, err := decodeBytes(payloadHex)
	if err != nil {
		return Value{}, err
	}
	if len(b)%relayFailsafeRecordBytes != 0 || len(b) == 0 {
		return Value{}, fmt.Errorf("%w: 0009 payload not a multiple of %d bytes", ErrInvalidPayload, relayFailsafeRecordBytes)
	}
	rec := func(r []byte) map[string]any {
		return map[string]any{
			"domain_id": fmt.Sprintf("%02X", r[0]),
			"state":     r[1],
			"flag":      fmt.Sprintf("%02X", r[2]),
		}
	}
	if !ctx.HasArray() {
		if len(b) != relayFailsafeRecordBytes {
			return Value{}, fmt.Errorf("%w: single 0009 record must be %d bytes", ErrInvalidPayload, relayFailsafeRecordBytes)
		}
		return Value{Kind: KindRecord, Record: rec(b)}, nil
	}
	list := make([]map[string]any, 0, len(b)/relayFailsafeRecordBytes)
	for i := 0; i < len(b); i += relayFailsafeRecordBytes {
		list = append(list, rec(b[i:i+relayFailsafeRecordBytes]))
	}
	return Value{Kind: KindList, List: list}, nil
}

// Build0009 is the inverse of Parse0009 for a single record.
func Build0009(_ ramses.Verb, _, _ address.Address, info any) (string, error) {
	in, ok := info.(RelayFailsafe)
	if !ok {
		return "", fmt.Errorf("%w: expected RelayFailsafe", ErrInvalidPayload)
	}
	var d, flag byte
	fmt.Sscanf(in.DomainID, "%02X", &d)
	fmt.Sscanf(in.Flag, "%02X", &flag)
	return encodeBytes([]byte{d, in.State, flag}), nil
}

// ActuatorCheck is a 3B00 actuator-sync/domain-check record.
type ActuatorCheck struct {
	Domain string
	State  byte
}

// Parse3B00 decodes a 3B00 actuator-sync payload.
func Parse3B00(payloadHex string, _ Context) (Value, error) {
	b, err := decodeBytes(payloadHex)
	if err != nil {
		return Value{}, err
	}
	if len(b) != 2 {
		return Value{}, fmt.Errorf("%w: 3B00 record must be 2 bytes", ErrInvalidPayload)
	}
	return Value{Kind: KindRecord, Record: map[string]any{
		"domain": fmt.Sprintf("%02X", b[0]),
		"state":  b[1],
	}}, nil
}

// Build3B00 is the inverse of Parse3B00.
func Build3B00(_ ramses.Verb, _, _ address.Address, info any) (string, error) {
	in, ok := info.(ActuatorCheck)
	if !ok {
		return "", fmt.Errorf("%w: expected ActuatorCheck", ErrInvalidPayload)
	}
	var d byte
	fmt.Sscanf(in.Domain, "%02X", &d)
	return encodeBytes([]byte{d, in.State}), nil
}

// SystemMode is a 2E04 system-mode record.
type SystemMode struct {
	Mode    byte
	UntilOK bool
}

// Parse2E04 decodes a 2E04 system-mode payload.
func Parse2E04(payloadHex string, _ Context) (Value, error) {
	b, err := decodeBytes(payloadHex)
	if err != nil {
		return Value{}, err
	}
	if len(b) < 1 {
		return Value{}, fmt.Errorf("%w: 2E04 payload empty", ErrInvalidPayload)
	}
	rec := map[string]any{"mode": b[0]}
	if len(b) > 1 {
		rec["until_ok"] = b[len(b)-1] != 0xFF
	}
	return Value{Kind: KindRecord, Record: rec}, nil
}

// Build2E04 is the inverse of Parse2E04.
func Build2E04(_ ramses.Verb, _, _ address.Address, info any) (string, error) {
	in, ok := info.(SystemMode)
	if !ok {
		return "", fmt.Errorf("%w: expected SystemMode", ErrInvalidPayload)
	}
	until := byte(0xFF)
	if in.UntilOK {
		until = 0x00
	}
	return encodeBytes([]byte{in.Mode, until}), nil
}

// VentilationState is a 31D9/31DA ventilation fan or sensor state record.
type VentilationState struct {
	Domain    string
	FanPct    byte
	Indoor    float64
	HasIndoor bool
}

// Parse31D9 decodes a ventilation fan state record.
func Parse31D9(payloadHex string, _ Context) (Value, error) { return parseVentilationState(payloadHex) }

// Parse31DA decodes a ventilation sensor state record.
func Parse31DA(payloadHex string, _ Context) (Value, error) { return parseVentilationState(payloadHex) }

func parseVentilationState(payloadHex string) (Value, error) {
	b, err := decodeBytes(payloadHex)
	if err != nil {
		return Value{}, err
	}
	if len(b) < 2 {
		return Value{}, fmt.Errorf("%w: ventilation-state payload too short", ErrInvalidPayload)
	}
	rec := map[string]any{"domain": fmt.Sprintf("%02X", b[0]), "fan_pct": b[1]}
	if len(b) >= 4 {
		rec["indoor_humidity"] = scaled(b[2:4])
	}
	return Value{Kind: KindRecord, Record: rec}, nil
}

// Build31D9 is the inverse of Parse31D9.
func Build31D9(_ ramses.Verb, _, _ address.Address, info any) (string, error) { return buildVentilationState(info) }

// Build31DA is the inverse of Parse31DA.
func Build31DA(_ ramses.Verb, _, _ address.Address, info any) (string, error) { return buildVentilationState(info) }

func buildVentilationState(info any) (string, error) {
	in, ok := info.(VentilationState)
	if !ok {
		return "", fmt.Errorf("%w: expected VentilationState", ErrInvalidPayload)
	}
	var d byte
	fmt.Sscanf(in.Domain, "%02X", &d)
	b := []byte{d, in.FanPct}
	if in.HasIndoor {
		b = append(b, putScaled(in.Indoor)...)
	}
	return encodeBytes(b), nil
}
