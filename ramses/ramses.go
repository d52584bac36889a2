// Package ramses holds the static RAMSES-II opcode registry: which verbs an
// opcode accepts, whether it ever carries an array of records, whether its
// index is implied by a controller relationship, and the small per-opcode
// sets the derived-predicate logic in package message switches on. It
// replaces the dynamic per-message dispatch of the source implementation
// with a table the compiler and the reader can both see in one place.
package ramses

// Code is a four-hex-digit RAMSES-II opcode, e.g. "1FC9".
type Code string

// Verb is one of the four RAMSES-II verbs.
type Verb string

const (
	I  Verb = " I" // information/broadcast
	W  Verb = " W" // write
	RQ Verb = "RQ" // request
	RP Verb = "RP" // response
)

// String renders the verb without its grammar padding.
func (v Verb) String() string {
	switch v {
	case I:
		return "I"
	case W:
		return "W"
	case RQ:
		return "RQ"
	case RP:
		return "RP"
	}
	return string(v)
}

// The opcode set this registry carries per-code metadata for. Any code not
// listed here is handled by the generic/unknown path in package parser and
// the default branches of the predicate logic in package message.
const (
	Code0005 Code = "0005" // zone/system bitmap by zone-type
	Code0009 Code = "0009" // relay failsafe / domain status
	Code000A Code = "000A" // zone configuration (setpoint bounds, flags)
	Code000C Code = "000C" // zone actuators
	Code0016 Code = "0016" // RF check / ping
	Code0404 Code = "0404" // zone schedule fragment
	Code0418 Code = "0418" // system fault log entry
	Code1100 Code = "1100" // boiler relay / TPI parameters
	Code1F09 Code = "1F09" // system sync / remaining time
	Code1FC9 Code = "1FC9" // RF bind offer/accept/confirm
	Code2249 Code = "2249" // zone schedule override (now/next setpoint)
	Code22C9 Code = "22C9" // UFH zone setpoint array
	Code2309 Code = "2309" // zone setpoint (single or array)
	Code2E04 Code = "2E04" // system mode
	Code30C9 Code = "30C9" // zone temperature (single or array)
	Code3150 Code = "3150" // UFH zone heat demand array
	Code31D9 Code = "31D9" // ventilation fan state
	Code31DA Code = "31DA" // ventilation sensor state
	Code3220 Code = "3220" // OpenTherm message
	Code3B00 Code = "3B00" // actuator sync / domain check

	Code0004 Code = "0004" // zone name
	Code0008 Code = "0008" // relay demand
	Code0100 Code = "0100" // system language
	Code10A0 Code = "10A0" // DHW parameters
	Code12B0 Code = "12B0" // zone window state
	Code1F41 Code = "1F41" // DHW mode
	Code2349 Code = "2349" // zone mode
	Code3EF1 Code = "3EF1" // actuator cycle rate request
)

// DomainF8, DomainF9, DomainFA and DomainFC are the reserved domain-id
// nibbles a payload's first byte may carry instead of a zone index.
const (
	DomainF8 = "F8"
	DomainF9 = "F9"
	DomainFA = "FA"
	DomainFC = "FC"
)

// ZoneHW is the synthetic zone index used for the hot-water "zone".
const ZoneHW = "HW"

// CodesWithArrays maps an opcode to the byte length of one record, for the
// opcodes whose has_array rule is "verb I and length is a multiple of the
// per-record size, else a single record". 1FC9, 0009, 000A, 2309 and 30C9
// use a dedicated rule instead (see package message) and are not listed
// here.
var CodesWithArrays = map[Code]int{
	Code22C9: 6,
	Code3150: 2,
}

// CodesOnlyFromCTL is the closed set of opcodes that, when seen with
// src==dst, imply the sender is a controller (has_controller rule
// priority 2).
var CodesOnlyFromCTL = map[Code]bool{
	Code1F09: true,
	Code000A: true,
	Code2309: true,
	Code30C9: true,
	Code31D9: true,
	Code31DA: true,
}

// RQNoPayload is the set of opcodes whose RQ form never carries a payload.
// 0016 is deliberately absent: its RQ form may carry a 2-byte payload.
var RQNoPayload = map[Code]bool{
	Code10A0: true,
	Code1F41: true,
	Code12B0: true,
	Code2309: true,
	Code30C9: true,
	Code000A: true,
	Code2349: true,
	Code3EF1: true,
	Code0004: true,
	Code0100: true,
	Code3220: true,
}

// CodeIdxComplex is the set of opcodes whose index is computed by a
// per-code rule (idx priority (b)) rather than the generic rules below.
var CodeIdxComplex = map[Code]bool{
	Code0005: true,
	Code000C: true,
	Code0404: true,
	Code0418: true,
	Code1100: true,
	Code3220: true,
}

// CodeIdxNone is the set of opcodes whose index is always false/absent
// (idx priority (a)), regardless of payload content.
var CodeIdxNone = map[Code]bool{
	Code0016: true,
	Code1FC9: true,
}

// CodeIdxDomain is the set of opcodes legally indexed by a domain nibble
// (F8/F9/FA/FC) rather than a zone index (idx priority (d)).
var CodeIdxDomain = map[Code]bool{
	Code0009: true,
	Code3B00: true,
	Code2E04: true,
	Code1100: true,
}

// CodeIdxSimple is the set of opcodes whose index, once has_array has been
// ruled out, is taken verbatim from payload[:2] when has_controller holds
// (idx priority (e)) and is absent otherwise (idx priority (f)), with no
// further refinement. Nothing branches on this set.
var CodeIdxSimple = map[Code]bool{
	Code2309: true,
	Code30C9: true,
	Code2249: true,
	Code31D9: true,
	Code31DA: true,
}

// ActuatorDomainByRoleNibble maps the role nibble found at payload[2:4] of
// a 000C zone-actuators record onto the domain id its actuators belong to,
// used by the 000C idx rule.
var ActuatorDomainByRoleNibble = map[string]string{
	"0F": DomainFC, // appliance relay
	"0E": DomainFA, // heating relay (HTG)
	"0D": DomainFA, // DHW relay
}
