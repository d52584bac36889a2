// Package message computes the properties derived from a parsed Frame that
// the wire grammar leaves implicit: whether the payload is an array of
// records, whether the message can be attributed to a controller, whether
// it carries a payload at all, its zone/domain index and context key, and
// its QoS header. These are expensive enough (especially the header) to
// be worth computing once, so Message memoises each on first read —
// mirroring the lazily-evaluated properties of the Python implementation
// this behaviour is grounded on, but expressed as explicit methods over a
// private cache rather than a property descriptor.
package message

import (
	"time"

	"github.com/tomkooij/ramses-rf/address"
	"github.com/tomkooij/ramses-rf/frame"
	"github.com/tomkooij/ramses-rf/parser"
	"github.com/tomkooij/ramses-rf/ramses"
)

// Message wraps a structurally-valid Frame with its parsed payload and the
// derived properties package gateway needs to route and index it.
type Message struct {
	Frame      frame.Frame
	Payload    parser.Value
	ObservedAt time.Time

	hasArray      *bool
	hasController *bool
	hasPayload    *bool
	idx           *Idx
	ctx           *string
	hdr           *string
}

// New wraps f with a zero-value Payload; call ParsePayload to populate it once
// the derived predicates this Message itself computes are available to
// hand to the parser as Context.
func New(f frame.Frame, observedAt time.Time) *Message {
	return &Message{Frame: f, ObservedAt: observedAt}
}

// ParsePayload runs the opcode's registered parser against the frame's hex
// payload, using m itself as the parser.Context (m already satisfies the
// interface via Code/Verb/Src/Dst/HasArray/HasController below).
func (m *Message) ParsePayload() error {
	v, err := parser.Parse(m.Frame.Payload, m)
	if err != nil {
		return err
	}
	m.Payload = v
	return nil
}

// Code, Verb, Src and Dst satisfy parser.Context by delegating to the
// wrapped Frame.
func (m *Message) Code() ramses.Code    { return m.Frame.Code }
func (m *Message) Verb() ramses.Verb    { return m.Frame.Verb }
func (m *Message) Src() address.Address { return m.Frame.Src }
func (m *Message) Dst() address.Address { return m.Frame.Dst }

// HasArray reports whether the payload is a sequence of like-shaped
// records rather than a single one. Memoised after first computation;
// ForceHasArray is the one caller allowed to override the cached value.
func (m *Message) HasArray() bool {
	if m.hasArray == nil {
		v := computeHasArray(m.Frame)
		m.hasArray = &v
	}
	return *m.hasArray
}

// ForceHasArray is the privileged mutator for the one case the wire
// grammar cannot disambiguate on its own (an opcode eligible for an array
// shape whose length happens to match a single record): a caller with
// independent knowledge that this message is in fact an array overrides
// the cached verdict. Overriding invalidates every property whose
// computation depends on HasArray (Ctx, Hdr, Idx).
func (m *Message) ForceHasArray() {
	v := true
	m.hasArray = &v
	m.idx = nil
	m.ctx = nil
	m.hdr = nil
}

// HasController reports whether this message can be attributed to a
// system controller, either as sender or as the implied owner of a
// domain/broadcast destination.
func (m *Message) HasController() bool {
	if m.hasController == nil {
		v := computeHasController(m.Frame)
		m.hasController = &v
	}
	return *m.hasController
}

// HasPayload reports whether the declared length actually carries
// semantic content, as opposed to being a bare RQ probe.
func (m *Message) HasPayload() bool {
	if m.hasPayload == nil {
		v := computeHasPayload(m.Frame)
		m.hasPayload = &v
	}
	return *m.hasPayload
}

// Idx returns the zone/domain index this message addresses, memoised.
func (m *Message) Idx() (Idx, error) {
	if m.idx == nil {
		v, err := computeIdx(m.Frame, m.HasArray(), m.HasController())
		if err != nil {
			return Idx{}, err
		}
		m.idx = &v
	}
	return *m.idx, nil
}

// Ctx returns the message's context key (idx, extended for the handful of
// opcodes whose context carries more than the index), memoised.
func (m *Message) Ctx() (string, error) {
	if m.ctx == nil {
		v, err := computeCtx(m.Frame, m.HasArray(), m.HasController())
		if err != nil {
			return "", err
		}
		m.ctx = &v
	}
	return *m.ctx, nil
}

// Hdr returns the message's QoS header, memoised.
func (m *Message) Hdr() (string, error) {
	if m.hdr == nil {
		ctx, err := m.Ctx()
		if err != nil {
			return "", err
		}
		v := computeHeader(m.Frame, ctx)
		m.hdr = &v
	}
	return *m.hdr, nil
}

// RxHeader returns the header the *reply* to this message would carry, or
// "" if this message expects no reply.
func (m *Message) RxHeader() (string, error) {
	ctx, err := m.Ctx()
	if err != nil {
		return "", err
	}
	return computeRxHeader(m.Frame, ctx), nil
}

// Equal compares two messages over the full tuple the wire actually
// carries (verb, code, src, dst, payload hex) — deliberately a value
// comparison over every field, not a truthiness check on the first one.
func (m *Message) Equal(other *Message) bool {
	if m == nil || other == nil {
		return m == other
	}
	return m.Frame.Verb == other.Frame.Verb &&
		m.Frame.Code == other.Frame.Code &&
		m.Frame.Src.Equal(other.Frame.Src) &&
		m.Frame.Dst.Equal(other.Frame.Dst) &&
		m.Frame.Payload == other.Frame.Payload
}
