package logsource_test

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomkooij/ramses-rf/internal/logsource"
)

func TestReader_splitsTimestampAndFrame(t *testing.T) {
	line := "2023-11-02T14:32:01.123456  I --- 01:145038 --:------ 01:145038 30C9 003 00076C\n"
	r := logsource.NewReader(strings.NewReader(line))

	frameLine, rssi, ts, err := r.ReadLine(context.Background())
	require.NoError(t, err)
	assert.Equal(t, -1, rssi)
	assert.Equal(t, 2023, ts.Year())
	assert.Equal(t, 123456000, ts.Nanosecond())
	assert.Equal(t, " I --- 01:145038 --:------ 01:145038 30C9 003 00076C", frameLine)
}

func TestReader_returnsEOF(t *testing.T) {
	r := logsource.NewReader(strings.NewReader(""))
	_, _, _, err := r.ReadLine(context.Background())
	assert.ErrorIs(t, err, io.EOF)
}

func TestReader_rejectsMissingTimestamp(t *testing.T) {
	r := logsource.NewReader(strings.NewReader("not a timestamped line\n"))
	_, _, _, err := r.ReadLine(context.Background())
	assert.Error(t, err)
}

func TestReader_honoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := logsource.NewReader(strings.NewReader("2023-11-02T14:32:01.123456 line\n"))
	_, _, _, err := r.ReadLine(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFormatTimestamp_roundTrips(t *testing.T) {
	ts := time.Date(2023, 11, 2, 14, 32, 1, 123456000, time.UTC)
	assert.Equal(t, "2023-11-02T14:32:01.123456", logsource.FormatTimestamp(ts))
}
