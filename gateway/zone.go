package gateway

// Zone is a heating zone (or the synthetic hot-water "zone") owned by a
// System. Indexed by its two-hex-digit idx (or ramses.ZoneHW).
type Zone struct {
	Idx    string
	Params map[string]any
	Status map[string]any
}

func newZone(idx string) *Zone {
	return &Zone{Idx: idx, Params: map[string]any{}, Status: map[string]any{}}
}

func (z *Zone) updateParams(fields map[string]any) {
	for k, v := range fields {
		z.Params[k] = v
	}
}

func (z *Zone) updateStatus(fields map[string]any) {
	for k, v := range fields {
		z.Status[k] = v
	}
}
