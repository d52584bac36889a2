package gateway

import (
	"context"
	"sync"
	"time"

	"github.com/tomkooij/ramses-rf/frame"
	"github.com/tomkooij/ramses-rf/message"
)

// pending is one outbound command awaiting its matching reply, keyed by
// the header its reply is expected to carry.
type pending struct {
	done     chan struct{}
	result   *message.Message
	err      error
	resolved bool
}

// qosTable is the header-keyed map of outstanding commands. Every entry is
// resolved exactly once: by a matching inbound message, by its own
// deadline expiring, or by the Gateway's context being cancelled.
type qosTable struct {
	mu      sync.Mutex
	entries map[string]*pending
}

func newQOSTable() *qosTable {
	return &qosTable{entries: map[string]*pending{}}
}

// Await registers rxHeader as the header a future reply must carry and
// blocks until that reply arrives, ctx is cancelled, or timeout elapses.
func (q *qosTable) Await(ctx context.Context, rxHeader string, timeout time.Duration) (*message.Message, error) {
	p := &pending{done: make(chan struct{})}
	q.mu.Lock()
	q.entries[rxHeader] = p
	q.mu.Unlock()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-p.done:
		return p.result, p.err
	case <-timer.C:
		q.resolve(rxHeader, nil, ErrProtocolTimeout)
		return nil, ErrProtocolTimeout
	case <-ctx.Done():
		q.resolve(rxHeader, nil, ErrCancelled)
		return nil, ErrCancelled
	}
}

// resolvePending checks whether m's header matches a pending command and,
// if so, resolves it.
func (g *Gateway) resolvePending(m *message.Message) {
	hdr, err := m.Hdr()
	if err != nil {
		return
	}
	g.qos.resolve(hdr, m, nil)
}

func (q *qosTable) resolve(key string, m *message.Message, err error) {
	q.mu.Lock()
	p, ok := q.entries[key]
	if ok {
		delete(q.entries, key)
	}
	q.mu.Unlock()
	if !ok || p.resolved {
		return
	}
	p.resolved = true
	p.result, p.err = m, err
	close(p.done)
}

// DrainCancelled resolves every still-outstanding pending command with
// ErrCancelled, exactly once each. Call this when the Gateway's context is
// cancelled so no caller of Await blocks forever past shutdown.
func (q *qosTable) DrainCancelled() {
	q.mu.Lock()
	keys := make([]string, 0, len(q.entries))
	for k := range q.entries {
		keys = append(keys, k)
	}
	q.mu.Unlock()
	for _, k := range keys {
		q.resolve(k, nil, ErrCancelled)
	}
}

// Send validates and hands f to sink, then awaits the reply whose header
// matches f's own rx-header (as computed by package message), honouring
// ctx cancellation and timeout.
func (g *Gateway) Send(ctx context.Context, sink FrameSink, f frame.Frame, timeout time.Duration) (*message.Message, error) {
	if g.cfg.DisableSending {
		return nil, ErrTransportClosed
	}
	m := message.New(f, time.Time{})
	rxHeader, err := m.RxHeader()
	if err != nil {
		return nil, err
	}
	if err := sink.SendFrame(ctx, f); err != nil {
		return nil, err
	}
	if rxHeader == "" {
		return nil, nil
	}
	return g.qos.Await(ctx, rxHeader, timeout)
}

// Shutdown drains every pending command with ErrCancelled. Safe to call
// more than once.
func (g *Gateway) Shutdown() {
	g.qos.DrainCancelled()
}
