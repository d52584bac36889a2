package message

import (
	"fmt"

	"github.com/tomkooij/ramses-rf/frame"
	"github.com/tomkooij/ramses-rf/ramses"
)

// IdxKind discriminates the three shapes a computed index can take:
// wholly absent, "yes but the value is the array itself" (no single
// string identifies it), or a concrete zone/domain string.
type IdxKind int

const (
	IdxAbsent IdxKind = iota
	IdxArray
	IdxValue
)

// Idx is the result of computeIdx.
type Idx struct {
	Kind  IdxKind
	Value string
}

// Present reports whether this message addresses a specific zone/domain,
// or an array of them.
func (i Idx) Present() bool { return i.Kind != IdxAbsent }

// computeIdx reproduces frame.py's _pkt_idx decision tree: per-code
// overrides first, then the fixed-absent set, then "an array is always
// indexed", then domain-nibble legality, then has_controller-implied
// index, then the all-zeros fallback.
func computeIdx(f frame.Frame, hasArray, hasController bool) (Idx, error) {
	if idx, ok, err := idxForComplexCode(f); ok || err != nil {
		return idx, err
	}

	if ramses.CodeIdxNone[f.Code] {
		return Idx{Kind: IdxAbsent}, nil
	}

	if hasArray {
		return Idx{Kind: IdxArray}, nil
	}

	if len(f.Payload) >= 2 {
		nibble := f.Payload[:2]
		switch nibble {
		case ramses.DomainF8, ramses.DomainF9, ramses.DomainFA, ramses.DomainFC:
			if !ramses.CodeIdxDomain[f.Code] {
				return Idx{}, fmt.Errorf("%w: code %s does not accept a domain index", ErrInvalidPayload, f.Code)
			}
			return Idx{Kind: IdxValue, Value: nibble}, nil
		}
	}

	if hasController {
		if len(f.Payload) < 2 {
			return Idx{}, fmt.Errorf("%w: payload too short for an index", ErrInvalidPayload)
		}
		return Idx{Kind: IdxValue, Value: f.Payload[:2]}, nil
	}

	if len(f.Payload) >= 2 && f.Payload[:2] != "00" {
		return Idx{}, fmt.Errorf("%w: expected a zero-indexed payload", ErrInvalidPayload)
	}
	return Idx{Kind: IdxAbsent}, nil
}

// idxForComplexCode handles the opcodes whose index follows a dedicated
// per-code rule rather than the generic decision tree, returning ok=false
// when f.Code isn't one of them.
func idxForComplexCode(f frame.Frame) (Idx, bool, error) {
	if !ramses.CodeIdxComplex[f.Code] {
		return Idx{}, false, nil
	}
	switch f.Code {
	case ramses.Code0005:
		return Idx{Kind: IdxArray}, true, nil
	case ramses.Code000C:
		if len(f.Payload) < 4 {
			return Idx{}, true, fmt.Errorf("%w: 000C payload too short for idx", ErrInvalidPayload)
		}
		if f.Payload[:4] == "010E" {
			return Idx{Kind: IdxValue, Value: ramses.DomainF9}, true, nil
		}
		role := f.Payload[2:4]
		if domain, ok := ramses.ActuatorDomainByRoleNibble[role]; ok && domain != "" {
			return Idx{Kind: IdxValue, Value: domain}, true, nil
		}
		return Idx{Kind: IdxValue, Value: f.Payload[:2]}, true, nil
	case ramses.Code0404:
		if len(f.Payload) >= 4 && f.Payload[2:4] == "23" {
			return Idx{Kind: IdxValue, Value: ramses.ZoneHW}, true, nil
		}
		if len(f.Payload) < 2 {
			return Idx{}, true, fmt.Errorf("%w: 0404 payload too short for idx", ErrInvalidPayload)
		}
		return Idx{Kind: IdxValue, Value: f.Payload[:2]}, true, nil
	case ramses.Code0418:
		if len(f.Payload) < 6 {
			return Idx{}, true, fmt.Errorf("%w: 0418 payload too short for idx", ErrInvalidPayload)
		}
		return Idx{Kind: IdxValue, Value: f.Payload[4:6]}, true, nil
	case ramses.Code1100:
		if len(f.Payload) >= 1 && f.Payload[:1] == "F" {
			return Idx{Kind: IdxValue, Value: ramses.DomainFC}, true, nil
		}
		return Idx{Kind: IdxAbsent}, true, nil
	case ramses.Code3220:
		if len(f.Payload) < 6 {
			return Idx{}, true, fmt.Errorf("%w: 3220 payload too short for idx", ErrInvalidPayload)
		}
		return Idx{Kind: IdxValue, Value: f.Payload[4:6]}, true, nil
	}
	return Idx{}, false, nil
}

// computeCtx reproduces frame.py's _ctx: mostly the index itself, except
// 0005/000C (whose context is the first four hex characters of the
// payload) and 0404 (whose context extends the index with the fragment
// number).
func computeCtx(f frame.Frame, hasArray, hasController bool) (string, error) {
	switch f.Code {
	case ramses.Code0005, ramses.Code000C:
		if len(f.Payload) < 4 {
			return "", fmt.Errorf("%w: payload too short for ctx", ErrInvalidPayload)
		}
		return f.Payload[:4], nil
	case ramses.Code0404:
		idx, err := computeIdx(f, hasArray, hasController)
		if err != nil {
			return "", err
		}
		if len(f.Payload) < 12 {
			return "", fmt.Errorf("%w: 0404 payload too short for ctx", ErrInvalidPayload)
		}
		return idx.Value + f.Payload[10:12], nil
	}
	idx, err := computeIdx(f, hasArray, hasController)
	if err != nil {
		return "", err
	}
	switch idx.Kind {
	case IdxValue:
		return idx.Value, nil
	case IdxArray:
		return "", nil
	default:
		return "", nil
	}
}
