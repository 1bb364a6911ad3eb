package bch

import "github.com/charmbracelet/log"

// traceLogger wraps an optional *log.Logger so construction can emit debug
// traces without every call site having to nil-check the caller's logger.
// A zero value is silent.
type traceLogger struct {
	l *log.Logger
}

func newTraceLogger(l *log.Logger) traceLogger {
	return traceLogger{l: l}
}

func (t traceLogger) debugf(msg string, keyvals ...interface{}) {
	if t.l == nil {
		return
	}
	t.l.Debug(msg, keyvals...)
}
