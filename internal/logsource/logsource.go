// Package logsource is an external collaborator implementing
// gateway.PacketSource over a RAMSES-II packet log file: one line per
// frame, each prefixed with an ISO-8601-with-microseconds timestamp. It
// lives outside the core on purpose — the core never touches a
// filesystem — and is the one place timestamp parsing happens.
package logsource

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/lestrrat-go/strftime"
)

// TimestampLayout is the packet-log line prefix format: ISO-8601 with
// microsecond precision, one space, then the frame itself (optionally
// RSSI-prefixed).
const TimestampLayout = "2006-01-02T15:04:05.999999"

// timestampFormat is the strftime-style equivalent of TimestampLayout,
// used only by FormatTimestamp — the reader itself parses with
// time.Parse since strftime.Format only renders, it doesn't parse.
const timestampFormat = "%Y-%m-%dT%H:%M:%S.%f"

// Reader implements gateway.PacketSource over a bufio.Scanner of log
// lines.
type Reader struct {
	scanner *bufio.Scanner
}

// NewReader wraps r, assuming one packet-log line per Scan.
func NewReader(r io.Reader) *Reader {
	return &Reader{scanner: bufio.NewScanner(r)}
}

// ReadLine satisfies gateway.PacketSource: split the timestamp prefix from
// the frame text, parse the timestamp, and hand back the frame line
// un-prefixed (RSSI, if present, stays part of the line for frame.Parse
// to strip).
func (r *Reader) ReadLine(ctx context.Context) (string, int, time.Time, error) {
	select {
	case <-ctx.Done():
		return "", -1, time.Time{}, ctx.Err()
	default:
	}
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", -1, time.Time{}, err
		}
		return "", -1, time.Time{}, io.EOF
	}
	line := r.scanner.Text()
	ts, rest, err := splitTimestamp(line)
	if err != nil {
		return "", -1, time.Time{}, err
	}
	return rest, -1, ts, nil
}

func splitTimestamp(line string) (time.Time, string, error) {
	idx := strings.IndexByte(line, ' ')
	if idx < 0 {
		return time.Time{}, "", fmt.Errorf("logsource: no timestamp prefix in %q", line)
	}
	ts, err := time.Parse(TimestampLayout, line[:idx])
	if err != nil {
		return time.Time{}, "", fmt.Errorf("logsource: bad timestamp %q: %w", line[:idx], err)
	}
	return ts, strings.TrimLeft(line[idx+1:], " "), nil
}

// FormatTimestamp renders t in the packet-log's timestamp format via
// strftime, so the writer and reader agree on shape even though the
// reader itself parses with time.Parse.
func FormatTimestamp(t time.Time) string {
	s, err := strftime.Format(timestampFormat, t)
	if err != nil {
		panic(fmt.Sprintf("logsource: bad strftime layout %q: %s", timestampFormat, err))
	}
	return s
}
