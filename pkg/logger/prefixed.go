package logger

// PrefixedLogger tags every message with the adapter it came from, so one
// process-wide logger still reads per-component.
type PrefixedLogger struct {
	Logger
	prefix string
}

func NewPrefixedLogger(inner Logger, prefix string) *PrefixedLogger {
	return &PrefixedLogger{
		Logger: inner,
		prefix: "[" + prefix + "] ",
	}
}

func (p *PrefixedLogger) Trace(msg string, args ...any) {
	p.Logger.Trace(p.prefix+msg, args...)
}

func (p *PrefixedLogger) Debug(msg string, args ...any) {
	p.Logger.Debug(p.prefix+msg, args...)
}

func (p *PrefixedLogger) Info(msg string, args ...any) {
	p.Logger.Info(p.prefix+msg, args...)
}

func (p *PrefixedLogger) Warn(msg string, args ...any) {
	p.Logger.Warn(p.prefix+msg, args...)
}

func (p *PrefixedLogger) Error(msg string, err error, args ...any) {
	p.Logger.Error(p.prefix+msg, err, args...)
}

func (p *PrefixedLogger) Fatal(msg string, err error, args ...any) {
	p.Logger.Fatal(p.prefix+msg, err, args...)
}
