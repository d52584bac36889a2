package message

import (
	"github.com/tomkooij/ramses-rf/address"
	"github.com/tomkooij/ramses-rf/frame"
	"github.com/tomkooij/ramses-rf/ramses"
)

// computeHasArray reproduces frame.py's _has_array: 1FC9 is special-cased
// first (an array whenever the verb isn't RQ), then a handful of opcodes
// with their own array-discrimination rule, then the generic
// length-is-a-multiple-of-the-record-size rule for the rest, with a
// length-match special case for 22C9/3150 sent by a UFH controller to
// itself.
func computeHasArray(f frame.Frame) bool {
	if f.Code == ramses.Code1FC9 {
		return f.Verb != ramses.RQ
	}

	switch f.Code {
	case ramses.Code0009:
		return f.Verb == ramses.I && len(f.Payload) > 0 && f.Payload[:1] == "F" && f.Src.IsController()
	case ramses.Code000A, ramses.Code2309, ramses.Code30C9:
		return f.Verb == ramses.I && f.Src.Equal(f.Dst) && f.Src.Type() == address.TypeCTL
	case ramses.Code000C, ramses.Code0404, ramses.Code0418, ramses.Code1100:
		return false
	}

	baseLen, ok := ramses.CodesWithArrays[f.Code]
	if !ok || f.Verb != ramses.I {
		return false
	}
	payloadBytes := len(f.Payload) / 2
	if payloadBytes == baseLen {
		// A single record's length coincides with the array base length.
		// The one protocol quirk this causes: a UFH controller
		// broadcasting 22C9/3150 to itself with a non-domain-prefixed
		// payload is always an array, even when it holds exactly one
		// record.
		if (f.Code == ramses.Code22C9 || f.Code == ramses.Code3150) &&
			f.Src.Type() == address.TypeUFC && f.Src.Equal(f.Dst) &&
			len(f.Payload) > 0 && f.Payload[:1] != "F" {
			return true
		}
		return false
	}
	return payloadBytes%baseLen == 0
}

// computeHasController reproduces frame.py's _has_ctl priority order.
func computeHasController(f frame.Frame) bool {
	if f.Src.IsController() || f.Dst.IsController() {
		return true
	}
	if f.Src.Equal(f.Dst) {
		if ramses.CodesOnlyFromCTL[f.Code] {
			return true
		}
		if f.Code == ramses.Code3B00 && len(f.Payload) >= 2 && f.Payload[:2] == ramses.DomainFC {
			return true
		}
		return false
	}
	if f.Dst.IsNone() {
		return f.Src.Type() != address.TypeOTB
	}
	if f.Dst.Type() == address.TypeDTS || f.Dst.Type() == address.TypeDT2 {
		return true
	}
	return false
}

// computeHasPayload reproduces frame.py's _has_payload.
func computeHasPayload(f frame.Frame) bool {
	if f.LenDecl == 1 {
		return false
	}
	if f.Verb == ramses.RQ {
		if ramses.RQNoPayload[f.Code] {
			return false
		}
		if f.LenDecl == 2 && f.Code != ramses.Code0016 {
			return false
		}
	}
	return true
}
