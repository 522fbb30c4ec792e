package logger

import "log/slog"

// Interface is the logging surface injected into repositories, use cases
// and handlers. The plain methods and the ...w variants are equivalent;
// both take alternating key/value pairs and feed the same slog backend.
// The w spelling survives from an earlier zap-style API and keeps call
// sites with long field lists readable.
type Interface interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Fatal(msg string, args ...any)

	Debugw(msg string, keysAndValues ...interface{})
	Infow(msg string, keysAndValues ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
	Errorw(msg string, keysAndValues ...interface{})
	Fatalw(msg string, keysAndValues ...interface{})

	// With returns a child logger carrying the given fields; Named tags
	// the child with a component name instead.
	With(args ...any) Interface
	Named(name string) Interface
}

// slogAdapter wraps *slog.Logger behind Interface.
type slogAdapter struct {
	l *slog.Logger
}

// NewLogger adapts the process-wide slog logger.
func NewLogger() Interface {
	return &slogAdapter{l: Get()}
}

// NewLoggerWithSlog adapts an explicit slog logger, mainly for tests.
func NewLoggerWithSlog(sl *slog.Logger) Interface {
	return &slogAdapter{l: sl}
}

func (a *slogAdapter) Debug(msg string, args ...any) { a.l.Debug(msg, args...) }
func (a *slogAdapter) Info(msg string, args ...any)  { a.l.Info(msg, args...) }
func (a *slogAdapter) Warn(msg string, args ...any)  { a.l.Warn(msg, args...) }
func (a *slogAdapter) Error(msg string, args ...any) { a.l.Error(msg, args...) }

// Fatal logs at error level and panics rather than os.Exit, so deferred
// cleanup still runs.
func (a *slogAdapter) Fatal(msg string, args ...any) {
	a.l.Error(msg, args...)
	panic("fatal error")
}

func (a *slogAdapter) Debugw(msg string, keysAndValues ...interface{}) {
	a.Debug(msg, keysAndValues...)
}

func (a *slogAdapter) Infow(msg string, keysAndValues ...interface{}) {
	a.Info(msg, keysAndValues...)
}

func (a *slogAdapter) Warnw(msg string, keysAndValues ...interface{}) {
	a.Warn(msg, keysAndValues...)
}

func (a *slogAdapter) Errorw(msg string, keysAndValues ...interface{}) {
	a.Error(msg, keysAndValues...)
}

func (a *slogAdapter) Fatalw(msg string, keysAndValues ...interface{}) {
	a.Fatal(msg, keysAndValues...)
}

func (a *slogAdapter) With(args ...any) Interface {
	return &slogAdapter{l: a.l.With(args...)}
}

func (a *slogAdapter) Named(name string) Interface {
	return &slogAdapter{l: a.l.With("logger", name)}
}
