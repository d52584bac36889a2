// Package gateway is the stateful half of the core: it owns every Device,
// Zone and System the process has learned about, decides (by eavesdropping
// on traffic, per the package's non-goal of any other commissioning path)
// when a new one has appeared, routes each incoming Message to the
// entities it concerns, and exposes a snapshot view for schema/params/
// status/known-list export. It also owns the outbound command queue and
// its QoS header-keyed pending map.
package gateway

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/tomkooij/ramses-rf/address"
	"github.com/tomkooij/ramses-rf/clog"
	"github.com/tomkooij/ramses-rf/frame"
	"github.com/tomkooij/ramses-rf/message"
)

// Gateway is the single mutable owner of all entity state for one RAMSES-II
// network. It is safe for concurrent use: Process, the list setters and the
// snapshot accessors all take the same mutex; Send does not take it and
// touches only the QoS table, which has its own lock.
type Gateway struct {
	mu      sync.Mutex
	cfg     Config
	log     *clog.Clog
	devices map[string]*Device
	systems map[string]*System

	knownList map[string]bool
	blockList map[string]bool

	qos *qosTable
}

// New constructs a Gateway from a validated Config. logger may be nil, in
// which case an enabled default logger with prefix "gwy" is used.
func New(cfg Config, logger *clog.Clog) (*Gateway, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("ramses: invalid config: %w", err)
	}
	if logger == nil {
		logger = clog.NewLogger("gwy")
	}
	return &Gateway{
		cfg:       cfg,
		log:       logger,
		devices:   map[string]*Device{},
		systems:   map[string]*System{},
		knownList: map[string]bool{},
		blockList: map[string]bool{},
		qos:       newQOSTable(),
	}, nil
}

// SetKnownList replaces the known-device allow-list. Enforcement only
// applies when Config.EnforceKnownList is set.
func (g *Gateway) SetKnownList(ids []string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.knownList = make(map[string]bool, len(ids))
	for _, id := range ids {
		g.knownList[id] = true
	}
}

// SetBlockList replaces the block-list: devices on it are always rejected
// regardless of EnforceKnownList.
func (g *Gateway) SetBlockList(ids []string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.blockList = make(map[string]bool, len(ids))
	for _, id := range ids {
		g.blockList[id] = true
	}
}

func (g *Gateway) admits(id address.Address) bool {
	s := id.String()
	if g.blockList[s] {
		return false
	}
	if g.cfg.EnforceKnownList && !g.knownList[s] {
		return false
	}
	return true
}

func (g *Gateway) device(id address.Address) *Device {
	s := id.String()
	d, ok := g.devices[s]
	if !ok {
		d = newDevice(id)
		g.devices[s] = d
	}
	return d
}

func (g *Gateway) system(ctl address.Address) *System {
	s := ctl.String()
	sys, ok := g.systems[s]
	if !ok {
		sys = newSystem(ctl)
		g.systems[s] = sys
	}
	return sys
}

// Process parses f's payload, computes its derived properties, routes it
// through the entity harvest/update steps, and returns the resulting
// Message. A frame from a device rejected by the known/block list is
// parsed (so header/QoS matching still works) but not absorbed into
// entity state.
func (g *Gateway) Process(_ context.Context, f frame.Frame, observedAt time.Time) (*message.Message, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	m := message.New(f, observedAt)
	if err := m.ParsePayload(); err != nil {
		g.log.Debug(fmt.Sprintf("dropping frame with unparsable payload: %s", err))
		return m, err
	}

	g.resolvePending(m)

	if !g.admits(f.Src) {
		g.log.Debug(fmt.Sprintf("frame from %s rejected by known/block list", f.Src))
		return m, nil
	}
	if !g.cfg.EnableEavesdrop {
		return m, nil
	}

	g.createEntities(m)
	g.updateEntities(m)
	return m, nil
}
