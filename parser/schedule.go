package parser

import (
	"fmt"

	"github.com/tomkooij/ramses-rf/address"
	"github.com/tomkooij/ramses-rf/ramses"
)

// ScheduleFragment is a 0404 zone (or hot-water) schedule fragment record.
type ScheduleFragment struct {
	ZoneIdxOrHW string
	FragNumber  byte
	FragTotal   byte
	Data        []byte
}

// Parse0404 decodes a 0404 schedule-fragment payload: a zone index (or the
// fixed "23" hot-water marker byte at offset 1), three header bytes that
// are not decoded, a fragment number/total pair at offsets 5 and 6 (the
// fragment number is the byte the 0404 ctx rule reads), and the opaque
// schedule bytes.
func Parse0404(payloadHex string, _ Context) (Value, error) {
	b, err := decodeBytes(payloadHex)
	if err != nil {
		return Value{}, err
	}
	if len(b) < 7 {
		return Value{}, fmt.Errorf("%w: 0404 payload too short", ErrInvalidPayload)
	}
	zoneField := fmt.Sprintf("%02X", b[0])
	if b[1] == 0x23 {
		zoneField = ramses.ZoneHW
	}
	return Value{Kind: KindRecord, Record: map[string]any{
		"zone_idx":    zoneField,
		"frag_number": b[5],
		"frag_total":  b[6],
		"data":        b[7:],
	}}, nil
}

// Build0404 is the inverse of Parse0404.
func Build0404(_ ramses.Verb, _, _ address.Address, info any) (string, error) {
	in, ok := info.(ScheduleFragment)
	if !ok {
		return "", fmt.Errorf("%w: expected ScheduleFragment", ErrInvalidPayload)
	}
	var idx byte
	marker := byte(0x00)
	if in.ZoneIdxOrHW == ramses.ZoneHW {
		marker = 0x23
	} else {
		fmt.Sscanf(in.ZoneIdxOrHW, "%02X", &idx)
	}
	b := []byte{idx, marker, 0x00, 0x00, 0x00, in.FragNumber, in.FragTotal}
	b = append(b, in.Data...)
	return encodeBytes(b), nil
}

// FaultLogEntry is a 0418 system fault-log entry record.
type FaultLogEntry struct {
	LogIdx   string
	FaultType byte
	Domain   string
}

// Parse0418 decodes a 0418 fault-log-entry payload; the log index sits at
// byte offset 2 (hex offset 4:6), matching the opcode's idx rule.
func Parse0418(payloadHex string, _ Context) (Value, error) {
	b, err := decodeBytes(payloadHex)
	if err != nil {
		return Value{}, err
	}
	if len(b) < 4 {
		return Value{}, fmt.Errorf("%w: 0418 payload too short", ErrInvalidPayload)
	}
	return Value{Kind: KindRecord, Record: map[string]any{
		"log_idx":    fmt.Sprintf("%02X", b[2]),
		"fault_type": b[1],
		"domain":     fmt.Sprintf("%02X", b[3]),
	}}, nil
}

// Build0418 is the inverse of Parse0418.
func Build0418(_ ramses.Verb, _, _ address.Address, info any) (string, error) {
	in, ok := info.(FaultLogEntry)
	if !ok {
		return "", fmt.Errorf("%w: expected FaultLogEntry", ErrInvalidPayload)
	}
	var logIdx, domain byte
	fmt.Sscanf(in.LogIdx, "%02X", &logIdx)
	fmt.Sscanf(in.Domain, "%02X", &domain)
	return encodeBytes([]byte{0x00, in.FaultType, logIdx, domain}), nil
}

// ScheduleOverride is a 2249 now/next zone setpoint override record.
type ScheduleOverride struct {
	ZoneIdx string
	Now     float64
	Next    float64
}

// Parse2249 decodes a 2249 zone schedule-override payload.
func Parse2249(payloadHex string, _ Context) (Value, error) {
	b, err := decodeBytes(payloadHex)
	if err != nil {
		return Value{}, err
	}
	if len(b) < 5 {
		return Value{}, fmt.Errorf("%w: 2249 payload too short", ErrInvalidPayload)
	}
	return Value{Kind: KindRecord, Record: map[string]any{
		"zone_idx": fmt.Sprintf("%02X", b[0]),
		"now":      scaled(b[1:3]),
		"next":     scaled(b[3:5]),
	}}, nil
}

// Build2249 is the inverse of Parse2249.
func Build2249(_ ramses.Verb, _, _ address.Address, info any) (string, error) {
	in, ok := info.(ScheduleOverride)
	if !ok {
		return "", fmt.Errorf("%w: expected ScheduleOverride", ErrInvalidPayload)
	}
	var idx byte
	fmt.Sscanf(in.ZoneIdx, "%02X", &idx)
	b := append([]byte{idx}, putScaled(in.Now)...)
	b = append(b, putScaled(in.Next)...)
	return encodeBytes(b), nil
}
