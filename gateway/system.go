package gateway

import "github.com/tomkooij/ramses-rf/address"

// System is a heating control system (TCS): one controller address, its
// zones keyed by index, and its own param/status bags.
type System struct {
	CtlID  address.Address
	Zones  map[string]*Zone
	Params map[string]any
	Status map[string]any
}

func newSystem(ctl address.Address) *System {
	return &System{
		CtlID:  ctl,
		Zones:  map[string]*Zone{},
		Params: map[string]any{},
		Status: map[string]any{},
	}
}

func (s *System) zone(idx string) *Zone {
	z, ok := s.Zones[idx]
	if !ok {
		z = newZone(idx)
		s.Zones[idx] = z
	}
	return z
}

// updateDomainStatus records the latest status fields reported for a
// domain id (F8/F9/FA/FC) rather than a zone.
func (s *System) updateDomainStatus(domainID string, fields map[string]any) {
	domains, ok := s.Status["domains"].(map[string]map[string]any)
	if !ok {
		domains = map[string]map[string]any{}
		s.Status["domains"] = domains
	}
	rec, ok := domains[domainID]
	if !ok {
		rec = map[string]any{}
		domains[domainID] = rec
	}
	for k, v := range fields {
		rec[k] = v
	}
}
