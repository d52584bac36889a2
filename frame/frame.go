// Package frame tokenises a single RAMSES-II wire line into its fixed
// fields and enforces the grammar's structural invariants: a valid verb,
// a three-decimal sequence number or its "---" placeholder, a legal
// address triplet, a four-hex-digit opcode, and a declared length that
// matches the hex payload actually present.
package frame

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tomkooij/ramses-rf/address"
	"github.com/tomkooij/ramses-rf/ramses"
)

// MaxPayloadBytes bounds the declared length field (a three-decimal
// field, but the protocol never packs more than 48 bytes into one frame).
const MaxPayloadBytes = 48

// Frame is the parsed, structurally-valid form of one wire line. It carries
// no interpretation of the payload; that is package parser's job.
type Frame struct {
	Verb    ramses.Verb
	Seqn    string // three digits, or "---" when unused
	Addrs   [3]address.Address
	Src     address.Address
	Dst     address.Address
	Code    ramses.Code
	LenDecl int
	Payload string // hex, len == 2*LenDecl
	RSSI    int    // -1 when the line carried no RSSI prefix
}

var verbByField = map[string]ramses.Verb{
	"I":  ramses.I,
	"W":  ramses.W,
	"RQ": ramses.RQ,
	"RP": ramses.RP,
}

// Parse tokenises one wire line (with or without a leading "NNN " RSSI
// prefix, and with or without a trailing line terminator) into a Frame.
func Parse(line string) (Frame, error) {
	raw := strings.TrimRight(line, "\r\n")

	rssi := -1
	rest := raw
	if len(raw) >= 4 && raw[3] == ' ' && isAllDigits(raw[:3]) {
		if n, err := strconv.Atoi(raw[:3]); err == nil {
			rssi = n
			rest = raw[4:]
		}
	}
	if len(rest) < 2 {
		return Frame{}, fmt.Errorf("%w: line too short", ErrInvalidPacket)
	}

	verbField := rest[:2]
	trimmed := strings.TrimLeft(rest, " ")
	fields := strings.Split(trimmed, " ")
	if len(fields) < 8 {
		return Frame{}, fmt.Errorf("%w: expected 8 fields, got %d", ErrInvalidPacket, len(fields))
	}

	verb, ok := verbByField[strings.TrimSpace(verbField)]
	if !ok {
		return Frame{}, fmt.Errorf("%w: unrecognised verb %q", ErrInvalidPacket, verbField)
	}

	seqn := fields[1]
	if seqn == "..." {
		return Frame{}, fmt.Errorf("%w: deprecated seqn placeholder", ErrInvalidPacket)
	}
	if seqn != "---" && (len(seqn) != 3 || !isAllDigits(seqn)) {
		return Frame{}, fmt.Errorf("%w: bad seqn %q", ErrInvalidPacket, seqn)
	}

	code := fields[5]
	if len(code) != 4 || !isHex(code) {
		return Frame{}, fmt.Errorf("%w: bad opcode %q", ErrInvalidPacket, code)
	}

	lenField := fields[6]
	if len(lenField) != 3 || !isAllDigits(lenField) {
		return Frame{}, fmt.Errorf("%w: bad length field %q", ErrInvalidPacket, lenField)
	}
	declLen, _ := strconv.Atoi(lenField)
	if declLen < 0 || declLen > MaxPayloadBytes {
		return Frame{}, fmt.Errorf("%w: length %d out of range", ErrInvalidPacket, declLen)
	}

	payload := fields[7]
	if len(payload) != declLen*2 || !isHex(payload) {
		return Frame{}, fmt.Errorf("%w: payload length does not match declared length %d", ErrInvalidPacket, declLen)
	}

	addrField := strings.Join(fields[2:5], " ")
	src, dst, addrs, err := address.ParseTriplet(addrField)
	if err != nil {
		return Frame{}, fmt.Errorf("%w: %s", ErrInvalidPacket, err)
	}

	return Frame{
		Verb:    verb,
		Seqn:    seqn,
		Addrs:   addrs,
		Src:     src,
		Dst:     dst,
		Code:    ramses.Code(code),
		LenDecl: declLen,
		Payload: payload,
		RSSI:    rssi,
	}, nil
}

// String renders the Frame back into its canonical wire form (without any
// RSSI prefix, which is a transport-layer annotation, not part of the
// frame itself).
func (f Frame) String() string {
	return fmt.Sprintf("%s %s %s %s %s %s %03d %s",
		string(f.Verb), f.Seqn, f.Addrs[0], f.Addrs[1], f.Addrs[2], f.Code, f.LenDecl, f.Payload)
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

func isHex(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'A' && r <= 'F':
		case r >= 'a' && r <= 'f':
		default:
			return false
		}
	}
	return true
}
