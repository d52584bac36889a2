package parser

import (
	"fmt"

	"github.com/tomkooij/ramses-rf/address"
	"github.com/tomkooij/ramses-rf/ramses"
)

// ZoneValue is one record of a zone setpoint or temperature array (2309,
// 30C9) or a single-zone reading of the same shape.
type ZoneValue struct {
	ZoneIdx string
	Value   float64
}

const zoneValueRecordBytes = 3

func parseZoneValueArray(payloadHex string, ctx Context) (Value, error) {
	b, err := decodeBytes(payloadHex)
	if err != nil {
		return Value{}, err
	}
	if len(b)%zoneValueRecordBytes != 0 || len(b) == 0 {
		return Value{}, fmt.Errorf("%w: zone-value payload not a multiple of %d bytes", ErrInvalidPayload, zoneValueRecordBytes)
	}
	rec := func(r []byte) map[string]any {
		return map[string]any{"zone_idx": fmt.Sprintf("%02X", r[0]), "value": scaled(r[1:3])}
	}
	if !ctx.HasArray() {
		if len(b) != zoneValueRecordBytes {
			return Value{}, fmt.Errorf("%w: single zone-value record must be %d bytes", ErrInvalidPayload, zoneValueRecordBytes)
		}
		return Value{Kind: KindRecord, Record: rec(b)}, nil
	}
	list := make([]map[string]any, 0, len(b)/zoneValueRecordBytes)
	for i := 0; i < len(b); i += zoneValueRecordBytes {
		list = append(list, rec(b[i:i+zoneValueRecordBytes]))
	}
	return Value{Kind: KindList, List: list}, nil
}

func buildZoneValue(info any) (string, error) {
	in, ok := info.(ZoneValue)
	if !ok {
		return "", fmt.Errorf("%w: expected ZoneValue", ErrInvalidPayload)
	}
	var idx byte
	fmt.Sscanf(in.ZoneIdx, "%02X", &idx)
	b := append([]byte{idx}, putScaled(in.Value)...)
	return encodeBytes(b), nil
}

// Parse2309 decodes a zone setpoint (single record, or array when
// has_array).
func Parse2309(payloadHex string, ctx Context) (Value, error) { return parseZoneValueArray(payloadHex, ctx) }

// Build2309 is the inverse of Parse2309.
func Build2309(_ ramses.Verb, _, _ address.Address, info any) (string, error) { return buildZoneValue(info) }

// Parse30C9 decodes a zone temperature (single record, or array when
// has_array).
func Parse30C9(payloadHex string, ctx Context) (Value, error) { return parseZoneValueArray(payloadHex, ctx) }

// Build30C9 is the inverse of Parse30C9.
func Build30C9(_ ramses.Verb, _, _ address.Address, info any) (string, error) { return buildZoneValue(info) }

// UFHZoneSetpoint is one 22C9 UFH-zone setpoint record.
type UFHZoneSetpoint struct {
	UFHIdx  string
	Setpoint float64
	MaxFlowTemp float64
	Flags byte
}

const ufhSetpointRecordBytes = 6

// Parse22C9 decodes a UFH zone setpoint array (or single record outside
// the UFH-controller broadcast case).
func Parse22C9(payloadHex string, ctx Context) (Value, error) {
	b, err := decodeBytes(payloadHex)
	if err != nil {
		return Value{}, err
	}
	if len(b)%ufhSetpointRecordBytes != 0 || len(b) == 0 {
		return Value{}, fmt.Errorf("%w: 22C9 payload not a multiple of %d bytes", ErrInvalidPayload, ufhSetpointRecordBytes)
	}
	rec := func(r []byte) map[string]any {
		return map[string]any{
			"ufh_idx":       fmt.Sprintf("%02X", r[0]),
			"setpoint":      scaled(r[1:3]),
			"max_flow_temp": scaled(r[3:5]),
			"flags":         r[5],
		}
	}
	if !ctx.HasArray() {
		if len(b) != ufhSetpointRecordBytes {
			return Value{}, fmt.Errorf("%w: single 22C9 record must be %d bytes", ErrInvalidPayload, ufhSetpointRecordBytes)
		}
		return Value{Kind: KindRecord, Record: rec(b)}, nil
	}
	list := make([]map[string]any, 0, len(b)/ufhSetpointRecordBytes)
	for i := 0; i < len(b); i += ufhSetpointRecordBytes {
		list = append(list, rec(b[i:i+ufhSetpointRecordBytes]))
	}
	return Value{Kind: KindList, List: list}, nil
}

// Build22C9 is the inverse of Parse22C9 for a single record.
func Build22C9(_ ramses.Verb, _, _ address.Address, info any) (string, error) {
	in, ok := info.(UFHZoneSetpoint)
	if !ok {
		return "", fmt.Errorf("%w: expected UFHZoneSetpoint", ErrInvalidPayload)
	}
	var idx byte
	fmt.Sscanf(in.UFHIdx, "%02X", &idx)
	b := append([]byte{idx}, putScaled(in.Setpoint)...)
	b = append(b, putScaled(in.MaxFlowTemp)...)
	b = append(b, in.Flags)
	return encodeBytes(b), nil
}

// UFHZoneDemand is one 3150 UFH-zone heat-demand record.
type UFHZoneDemand struct {
	UFHIdx string
	DemandPct byte
}

const ufhDemandRecordBytes = 2

// Parse3150 decodes a UFH zone heat-demand array (or single record).
func Parse3150(payloadHex string, ctx Context) (Value, error) {
	b, err := decodeBytes(payloadHex)
	if err != nil {
		return Value{}, err
	}
	if len(b)%ufhDemandRecordBytes != 0 || len(b) == 0 {
		return Value{}, fmt.Errorf("%w: 3150 payload not a multiple of %d bytes", ErrInvalidPayload, ufhDemandRecordBytes)
	}
	rec := func(r []byte) map[string]any {
		return map[string]any{"ufh_idx": fmt.Sprintf("%02X", r[0]), "demand_pct": r[1]}
	}
	if !ctx.HasArray() {
		if len(b) != ufhDemandRecordBytes {
			return Value{}, fmt.Errorf("%w: single 3150 record must be %d bytes", ErrInvalidPayload, ufhDemandRecordBytes)
		}
		return Value{Kind: KindRecord, Record: rec(b)}, nil
	}
	list := make([]map[string]any, 0, len(b)/ufhDemandRecordBytes)
	for i := 0; i < len(b); i += ufhDemandRecordBytes {
		list = append(list, rec(b[i:i+ufhDemandRecordBytes]))
	}
	return Value{Kind: KindList, List: list}, nil
}

// Build3150 is the inverse of Parse3150.
func Build3150(_ ramses.Verb, _, _ address.Address, info any) (string, error) {
	in, ok := info.(UFHZoneDemand)
	if !ok {
		return "", fmt.Errorf("%w: expected UFHZoneDemand", ErrInvalidPayload)
	}
	var idx byte
	fmt.Sscanf(in.UFHIdx, "%02X", &idx)
	return encodeBytes([]byte{idx, in.DemandPct}), nil
}
