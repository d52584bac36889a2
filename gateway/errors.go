package gateway

import "errors"

var (
	// ErrKnownListRejected names the case where EnforceKnownList is set and
	// a frame's source device is not present in the known-device list.
	// Process does not return it: a rejected frame yields its Message and a
	// nil error, and is not absorbed into entity state.
	ErrKnownListRejected = errors.New("ramses: device not in known list")
	// ErrProtocolTimeout is returned when an outbound command's matching
	// reply does not arrive before its deadline.
	ErrProtocolTimeout = errors.New("ramses: protocol timeout")
	// ErrTransportClosed is returned when the underlying PacketSource or
	// FrameSink is no longer usable.
	ErrTransportClosed = errors.New("ramses: transport closed")
	// ErrCancelled is delivered to every outstanding pending command when
	// the Gateway's context is cancelled.
	ErrCancelled = errors.New("ramses: cancelled")
)
