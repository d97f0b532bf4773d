package client

import "log"

// RequestLogger is the interface used by [Client] for logging HTTP requests
// and errors. Implement this interface to integrate with your logging library
// and supply the implementation via [WithRequestLogger].
type RequestLogger interface {
	Errorf(format string, v ...any)
	Warnf(format string, v ...any)
	Debugf(format string, v ...any)
}

// NoopLogger is a [RequestLogger] that silently discards all log messages.
// It is the default logger used when no logger is provided to [New].
type NoopLogger struct{}

func (l *NoopLogger) Errorf(_ string, _ ...any) {}
func (l *NoopLogger) Warnf(_ string, _ ...any)  {}
func (l *NoopLogger) Debugf(_ string, _ ...any) {}

// StdLogger adapts a [log.Logger] to the [RequestLogger] interface, with
// a level prefix on each line. A nil Logger falls back to [log.Default].
type StdLogger struct {
	Logger *log.Logger
}

func (l *StdLogger) Errorf(format string, v ...any) { l.printf("ERROR", format, v...) }
func (l *StdLogger) Warnf(format string, v ...any)  { l.printf("WARN", format, v...) }
func (l *StdLogger) Debugf(format string, v ...any) { l.printf("DEBUG", format, v...) }

func (l *StdLogger) printf(level, format string, v ...any) {
	logger := l.Logger
	if logger == nil {
		logger = log.Default()
	}
	logger.Printf(level+" "+format, v...)
}
