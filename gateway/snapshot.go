package gateway

// SystemSchema is the exported shape of one System for a Schema() snapshot:
// its controller id and the zone indices it owns.
type SystemSchema struct {
	CtlID string
	Zones []string
}

// Schema returns the current controller/zone topology, independent of any
// parameter or status values.
func (g *Gateway) Schema() []SystemSchema {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]SystemSchema, 0, len(g.systems))
	for _, sys := range g.systems {
		zones := make([]string, 0, len(sys.Zones))
		for idx := range sys.Zones {
			zones = append(zones, idx)
		}
		out = append(out, SystemSchema{CtlID: sys.CtlID.String(), Zones: zones})
	}
	return out
}

// Params returns every zone's current parameter bag, keyed by
// "ctlID/zoneIdx".
func (g *Gateway) Params() map[string]map[string]any {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := map[string]map[string]any{}
	for _, sys := range g.systems {
		for idx, z := range sys.Zones {
			out[sys.CtlID.String()+"/"+idx] = z.Params
		}
	}
	return out
}

// Status returns every zone's current status bag, keyed the same way as
// Params, plus each system's own domain-level status under "/_system".
func (g *Gateway) Status() map[string]map[string]any {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := map[string]map[string]any{}
	for _, sys := range g.systems {
		out[sys.CtlID.String()+"/_system"] = sys.Status
		for idx, z := range sys.Zones {
			out[sys.CtlID.String()+"/"+idx] = z.Status
		}
	}
	return out
}

// KnownList returns the device ids the Gateway currently considers known,
// as distinct from its enforcement allow-list: every device it has
// actually harvested by eavesdropping, regardless of EnforceKnownList.
func (g *Gateway) KnownList() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]string, 0, len(g.devices))
	for id := range g.devices {
		out = append(out, id)
	}
	return out
}
