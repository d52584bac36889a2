package clog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tomkooij/ramses-rf/clog"
)

type recordingProvider struct{ lines []string }

func (p *recordingProvider) Critical(format string, v ...interface{}) { p.lines = append(p.lines, "C:"+format) }
func (p *recordingProvider) Error(format string, v ...interface{})    { p.lines = append(p.lines, "E:"+format) }
func (p *recordingProvider) Warn(format string, v ...interface{})     { p.lines = append(p.lines, "W:"+format) }
func (p *recordingProvider) Debug(format string, v ...interface{})    { p.lines = append(p.lines, "D:"+format) }

func TestClog_respectsLogMode(t *testing.T) {
	rp := &recordingProvider{}
	c := clog.NewLogger("test")
	c.SetLogProvider(rp)

	c.LogMode(false)
	c.Debug("should not appear")
	assert.Empty(t, rp.lines)

	c.LogMode(true)
	c.Debug("should appear")
	assert.Len(t, rp.lines, 1)
}
