// Package parser turns a frame's raw hex payload into a typed Value, one
// function per supported opcode, with a generic fallback for everything
// else. Every parser has a matching builder that encodes the fields its
// parser decodes. Bytes a parser does not decode (for example the trailing
// byte of a 1100 payload, the leading byte of a 0016 or 0418 payload, or
// the middle bytes of a longer 2E04 payload) are not carried in the
// decoded value, and the builder writes fixed filler bytes in their place,
// so encode(decode(x)) == x holds only where x carries those filler
// values.
package parser

import (
	"errors"

	"github.com/tomkooij/ramses-rf/address"
	"github.com/tomkooij/ramses-rf/ramses"
)

// ErrInvalidPayload is returned when a payload's length or content
// contradicts its opcode's expected shape.
var ErrInvalidPayload = errors.New("ramses: invalid payload")

// ErrUnsupportedOpcode is returned by Build for an opcode with no
// registered builder.
var ErrUnsupportedOpcode = errors.New("ramses: unsupported opcode")

// Kind discriminates the shape a parsed Value carries.
type Kind int

const (
	// KindRecord is a single flat field map, e.g. a zone configuration.
	KindRecord Kind = iota
	// KindList is a sequence of record maps, e.g. a zone temperature array.
	KindList
	// KindRaw is an opaque hex string, used by the generic fallback parser
	// for opcodes with no registered decoder.
	KindRaw
)

func (k Kind) String() string {
	switch k {
	case KindRecord:
		return "record"
	case KindList:
		return "list"
	case KindRaw:
		return "raw"
	}
	return "unknown"
}

// Value is the tagged union every parser function returns: exactly one of
// Record, List or Raw is meaningful, selected by Kind. A plain Go
// interface{} union was rejected in favour of this explicit tag so callers
// can switch on Kind without a type assertion on every read.
type Value struct {
	Kind   Kind
	Record map[string]any
	List   []map[string]any
	Raw    string
}

// Context is the read-only view of a frame a parser needs beyond the raw
// payload bytes: the opcode and verb that selected it, the resolved
// address pair, and the two derived predicates (has_array, has_controller)
// computed by package message before dispatch. Defining this interface in
// parser (rather than importing package message's concrete type) keeps the
// dependency direction one-way: message depends on parser, not the other
// way around.
type Context interface {
	Code() ramses.Code
	Verb() ramses.Verb
	Src() address.Address
	Dst() address.Address
	HasArray() bool
	HasController() bool
}

// Func is the signature every per-opcode parser and the generic fallback
// implement.
type Func func(payloadHex string, ctx Context) (Value, error)

// BuildFunc is the signature every per-opcode builder implements: given a
// verb and resolved address triplet, render a wire-ready payload hex
// string (the caller assembles the full frame around it).
type BuildFunc func(verb ramses.Verb, src, dst address.Address, info any) (payloadHex string, err error)
