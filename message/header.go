package message

import (
	"github.com/tomkooij/ramses-rf/address"
	"github.com/tomkooij/ramses-rf/frame"
	"github.com/tomkooij/ramses-rf/ramses"
)

// computeHeader reproduces frame.py's pkt_header for the outbound
// (request/command) direction: code|verb|addr.id, with ctx appended when
// present, where addr is the destination when the source is this
// station's own gateway interface, and the source otherwise. 1FC9 (bind)
// frames always use the destination's id, or the broadcast sentinel when
// the frame is addressed to its own sender, and never carry a ctx.
func computeHeader(f frame.Frame, ctx string) string {
	if f.Code == ramses.Code1FC9 {
		deviceID := f.Dst.String()
		if f.Src.Equal(f.Dst) {
			deviceID = address.Broadcast.String()
		}
		return headerJoin(string(f.Code), f.Verb.String(), deviceID, "")
	}
	addr := f.Src
	if isGatewayStation(f.Src) {
		addr = f.Dst
	}
	return headerJoin(string(f.Code), f.Verb.String(), addr.String(), ctx)
}

// computeRxHeader reproduces pkt_header's rx_header branch: the header
// the *reply* to this message would carry, or "" when no reply is
// expected. Outside 1FC9, an I or RP is never replied to, nor is a message
// a station sent to itself; a 1FC9 sent to itself expects a W reply.
func computeRxHeader(f frame.Frame, ctx string) string {
	if f.Code == ramses.Code1FC9 {
		switch {
		case f.Src.Equal(f.Dst):
			return headerJoin(string(f.Code), "W", f.Src.String(), "")
		case f.Verb == ramses.W:
			return headerJoin(string(f.Code), "I", f.Src.String(), "")
		default:
			return ""
		}
	}
	if f.Verb == ramses.I || f.Verb == ramses.RP || f.Src.Equal(f.Dst) {
		return ""
	}
	addr := f.Src
	if isGatewayStation(f.Src) {
		addr = f.Dst
	}
	replyVerb := "I"
	if f.Verb == ramses.RQ {
		replyVerb = "RP"
	}
	return headerJoin(string(f.Code), replyVerb, addr.String(), ctx)
}

// isGatewayStation reports whether addr belongs to a device class that
// plays the role of "this end of the conversation" when computing a
// header: the local HGI80-style interface (18:) or an internet/RFG-class
// gateway (30:) issuing a direct RQ to a controller or OTB. Either way
// the *other* station's id, not this one's, identifies the exchange.
func isGatewayStation(addr address.Address) bool {
	switch addr.Type() {
	case address.TypeHGI, address.TypeRFG:
		return true
	}
	return false
}

func headerJoin(code, verb, addrID, ctx string) string {
	h := code + "|" + verb + "|" + addrID
	if ctx != "" {
		h += "|" + ctx
	}
	return h
}
