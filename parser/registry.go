package parser

import (
	"github.com/tomkooij/ramses-rf/address"
	"github.com/tomkooij/ramses-rf/ramses"
)

// byCode is the static opcode → parser table. Dispatch is a map lookup,
// not a reflection-based or string-matched dynamic call: the registry
// replaces the source implementation's "parser_<code>" naming convention
// with one the compiler checks.
var byCode = map[ramses.Code]Func{
	ramses.Code0005: Parse0005,
	ramses.Code0009: Parse0009,
	ramses.Code000A: Parse000A,
	ramses.Code000C: Parse000C,
	ramses.Code0016: Parse0016,
	ramses.Code0404: Parse0404,
	ramses.Code0418: Parse0418,
	ramses.Code1100: Parse1100,
	ramses.Code1FC9: Parse1FC9,
	ramses.Code2249: Parse2249,
	ramses.Code22C9: Parse22C9,
	ramses.Code2309: Parse2309,
	ramses.Code2E04: Parse2E04,
	ramses.Code30C9: Parse30C9,
	ramses.Code3150: Parse3150,
	ramses.Code31D9: Parse31D9,
	ramses.Code31DA: Parse31DA,
	ramses.Code3220: Parse3220,
	ramses.Code3B00: Parse3B00,
}

var buildByCode = map[ramses.Code]BuildFunc{
	ramses.Code0005: Build0005,
	ramses.Code0009: Build0009,
	ramses.Code000A: Build000A,
	ramses.Code000C: Build000C,
	ramses.Code0016: Build0016,
	ramses.Code0404: Build0404,
	ramses.Code0418: Build0418,
	ramses.Code1100: Build1100,
	ramses.Code1FC9: Build1FC9,
	ramses.Code2249: Build2249,
	ramses.Code22C9: Build22C9,
	ramses.Code2309: Build2309,
	ramses.Code2E04: Build2E04,
	ramses.Code30C9: Build30C9,
	ramses.Code3150: Build3150,
	ramses.Code31D9: Build31D9,
	ramses.Code31DA: Build31DA,
	ramses.Code3220: Build3220,
	ramses.Code3B00: Build3B00,
}

// Parse dispatches payloadHex to the opcode's registered parser, or to
// ParseUnknown when no parser is registered for ctx.Code().
func Parse(payloadHex string, ctx Context) (Value, error) {
	if fn, ok := byCode[ctx.Code()]; ok {
		return fn(payloadHex, ctx)
	}
	return ParseUnknown(payloadHex, ctx)
}

// Build dispatches to the opcode's registered builder.
func Build(code ramses.Code, verb ramses.Verb, src, dst address.Address, info any) (string, error) {
	fn, ok := buildByCode[code]
	if !ok {
		return "", ErrUnsupportedOpcode
	}
	return fn(verb, src, dst, info)
}

// ParseUnknown is the fallback for any opcode without a registered parser:
// the payload is carried verbatim, uninterpreted.
func ParseUnknown(payloadHex string, _ Context) (Value, error) {
	return Value{Kind: KindRaw, Raw: payloadHex}, nil
}
