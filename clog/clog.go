// Package clog is a small logging adapter: a LogProvider interface any
// backend can satisfy, and a Clog wrapper around it with an atomic
// enable/disable flag so call sites don't pay formatting cost when
// logging is off. The default provider is backed by charmbracelet/log
// instead of the standard library logger, for levelled, coloured output.
package clog

import (
	"os"
	"sync/atomic"

	charmlog "github.com/charmbracelet/log"
)

// LogProvider carries RFC5424-flavoured levels: Debug, Warn, Error and
// Critical only — this package has no use for Info/Notice.
type LogProvider interface {
	Critical(format string, v ...interface{})
	Error(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Debug(format string, v ...interface{})
}

// Clog wraps a LogProvider with an enable flag safe for concurrent use.
type Clog struct {
	provider LogProvider
	// is log output enabled, 1: enable, 0: disable
	has uint32
}

// NewLogger creates a new Clog with the given prefix, backed by the
// default charmbracelet/log provider, enabled.
func NewLogger(prefix string) *Clog {
	c := &Clog{provider: newCharmProvider(prefix)}
	c.LogMode(true)
	return c
}

// LogMode enables or disables log output.
func (sf *Clog) LogMode(enable bool) {
	if enable {
		atomic.StoreUint32(&sf.has, 1)
	} else {
		atomic.StoreUint32(&sf.has, 0)
	}
}

// SetLogProvider overrides the backing provider.
func (sf *Clog) SetLogProvider(p LogProvider) {
	if p != nil {
		sf.provider = p
	}
}

// Critical logs a CRITICAL level message.
func (sf *Clog) Critical(format string, v ...interface{}) {
	if atomic.LoadUint32(&sf.has) == 1 {
		sf.provider.Critical(format, v...)
	}
}

// Error logs an ERROR level message.
func (sf *Clog) Error(format string, v ...interface{}) {
	if atomic.LoadUint32(&sf.has) == 1 {
		sf.provider.Error(format, v...)
	}
}

// Warn logs a WARN level message.
func (sf *Clog) Warn(format string, v ...interface{}) {
	if atomic.LoadUint32(&sf.has) == 1 {
		sf.provider.Warn(format, v...)
	}
}

// Debug logs a DEBUG level message.
func (sf *Clog) Debug(format string, v ...interface{}) {
	if atomic.LoadUint32(&sf.has) == 1 {
		sf.provider.Debug(format, v...)
	}
}

// charmProvider backs LogProvider with charmbracelet/log, mapping
// Critical onto charmlog's Fatal-adjacent Error+"CRITICAL" prefix since
// charmlog has no distinct critical level.
type charmProvider struct {
	l *charmlog.Logger
}

var _ LogProvider = (*charmProvider)(nil)

func newCharmProvider(prefix string) *charmProvider {
	l := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		Prefix:          prefix,
		ReportTimestamp: true,
	})
	return &charmProvider{l: l}
}

func (p *charmProvider) Critical(format string, v ...interface{}) {
	p.l.Errorf("CRITICAL: "+format, v...)
}

func (p *charmProvider) Error(format string, v ...interface{}) {
	p.l.Errorf(format, v...)
}

func (p *charmProvider) Warn(format string, v ...interface{}) {
	p.l.Warnf(format, v...)
}

func (p *charmProvider) Debug(format string, v ...interface{}) {
	p.l.Debugf(format, v...)
}
