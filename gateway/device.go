package gateway

import "github.com/tomkooij/ramses-rf/address"

// Device is an entity the Gateway has discovered by eavesdropping or been
// told about via the known list. The Gateway owns every Device; messages
// reference one by its address, never by a pointer they cache past the
// call that resolved it.
type Device struct {
	ID         address.Address
	Type       address.DeviceType
	ParentZone string // zone idx this device's actuator role was harvested into, "" if none
	Traits     map[string]any
}

func newDevice(id address.Address) *Device {
	return &Device{ID: id, Type: id.Type(), Traits: map[string]any{}}
}

// update absorbs a message whose sender is this device, storing the last
// value seen per message context key.
func (d *Device) update(ctxKey string, payload map[string]any) {
	if ctxKey == "" {
		ctxKey = "_"
	}
	d.Traits[ctxKey] = payload
}
