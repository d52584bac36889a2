package gateway

import (
	"context"
	"time"

	"github.com/tomkooij/ramses-rf/frame"
)

// PacketSource is the narrow interface an external line source (log file,
// serial port, mock) implements to feed frames into the core. The core
// never performs file or socket I/O itself.
type PacketSource interface {
	ReadLine(ctx context.Context) (line string, rssi int, recvAt time.Time, err error)
}

// FrameSink is the narrow interface an external transport implements to
// actually transmit a Frame.
type FrameSink interface {
	SendFrame(ctx context.Context, f frame.Frame) error
}
