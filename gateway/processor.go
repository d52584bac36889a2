package gateway

import (
	"github.com/tomkooij/ramses-rf/address"
	"github.com/tomkooij/ramses-rf/message"
	"github.com/tomkooij/ramses-rf/parser"
	"github.com/tomkooij/ramses-rf/ramses"
)

// createEntities reproduces evohome/message.py's _create_entities: harvest
// the controller identity, every addressable device, and any zone/domain
// implied by the payload, before a single field of it is attributed to
// anyone. Steps are numbered to match the source's own step comments.
func (g *Gateway) createEntities(m *message.Message) {
	f := m.Frame

	// Step 0: a 000C RP harvests its actuators as devices parented to the
	// zone/domain the 000C record names. The payload's "actuators" entries
	// are already canonical "TT:SSSSSS" ids (parser.Parse000C decodes the
	// packed 3-byte form), so each names (and, if new, creates) a Device
	// directly.
	if f.Code == ramses.Code000C && f.Verb == ramses.RP && m.Payload.Kind == parser.KindRecord {
		zoneIdx, _ := m.Payload.Record["zone_idx"].(string)
		if actuators, ok := m.Payload.Record["actuators"].([]string); ok {
			for _, id := range actuators {
				a, err := address.Parse(id)
				if err != nil {
					continue
				}
				g.device(a).ParentZone = zoneIdx
			}
		}
	}

	// Step 1: every address that isn't the HGI itself or a sentinel
	// becomes a known device.
	for _, a := range []address.Address{f.Src, f.Dst} {
		if a.IsNone() || a.IsBroadcast() || a.Type() == address.TypeHGI {
			continue
		}
		g.device(a)
	}

	// Step 2: discover domains/zones named by the payload.
	if f.Src.IsController() {
		ctl := f.Src
		switch m.Payload.Kind {
		case parser.KindRecord:
			if zoneIdx, ok := m.Payload.Record["zone_idx"].(string); ok {
				g.system(ctl).zone(zoneIdx)
			}
		case parser.KindList:
			for _, rec := range m.Payload.List {
				if zoneIdx, ok := rec["zone_idx"].(string); ok {
					g.system(ctl).zone(zoneIdx)
				}
			}
		}
	}
}

// updateEntities reproduces evohome/message.py's _update_entities: the
// sender absorbs its own message when the payload is a single Record; a
// List payload is not stored on the sender and is never redistributed to
// individual zones (the source's explicit "lists owned by the TCS, not
// fan-out" rule); a Record payload from a controller naming a zone_idx or
// domain_id also updates that zone/domain.
func (g *Gateway) updateEntities(m *message.Message) {
	f := m.Frame
	if !f.Src.IsNone() && !f.Src.IsBroadcast() && f.Src.Type() != address.TypeHGI {
		if rec := recordView(m.Payload); rec != nil {
			ctxKey, err := m.Ctx()
			if err != nil {
				ctxKey = ""
			}
			g.device(f.Src).update(ctxKey, rec)
		}
	}

	if m.Payload.Kind == parser.KindList {
		switch f.Code {
		case ramses.Code000A, ramses.Code2309, ramses.Code30C9, ramses.Code0009,
			ramses.Code22C9, ramses.Code3150, ramses.Code1FC9:
			// TCS-owned arrays are not redistributed to individual zones.
			return
		}
	}

	if m.Payload.Kind != parser.KindRecord || !f.Src.IsController() {
		return
	}
	zoneIdx, hasZone := m.Payload.Record["zone_idx"].(string)
	domainID, hasDomain := m.Payload.Record["domain_id"].(string)
	switch {
	case hasZone && f.Code != ramses.Code0418 && f.Code != ramses.Code0008:
		sys := g.system(f.Src)
		if f.Verb == ramses.I || f.Verb == ramses.RP {
			sys.zone(zoneIdx).updateStatus(m.Payload.Record)
		} else {
			sys.zone(zoneIdx).updateParams(m.Payload.Record)
		}
	case hasDomain:
		g.system(f.Src).updateDomainStatus(domainID, m.Payload.Record)
	}
}

func recordView(v parser.Value) map[string]any {
	switch v.Kind {
	case parser.KindRecord:
		return v.Record
	default:
		return nil
	}
}
