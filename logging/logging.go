// Package logging contains shared logging functionality backed by zap.
package logging

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	globalMu     sync.RWMutex
	globalLogger = NewDebugLogger("startup")
)

// ReplaceGlobal replaces the global logger.
func ReplaceGlobal(logger Logger) {
	globalMu.Lock()
	globalLogger = logger
	globalMu.Unlock()
}

// Global returns the global logger.
func Global() Logger {
	return globalLogger
}

// Logger is the logging interface used throughout the module. It matches the
// method set of a zap sugared logger with sublogger and field helpers on top.
type Logger interface {
	Debug(args ...interface{})
	Debugf(template string, args ...interface{})
	Debugw(msg string, keysAndValues ...interface{})

	Info(args ...interface{})
	Infof(template string, args ...interface{})
	Infow(msg string, keysAndValues ...interface{})

	Warn(args ...interface{})
	Warnf(template string, args ...interface{})
	Warnw(msg string, keysAndValues ...interface{})

	Error(args ...interface{})
	Errorf(template string, args ...interface{})
	Errorw(msg string, keysAndValues ...interface{})

	Fatal(args ...interface{})
	Fatalf(template string, args ...interface{})
	Fatalw(msg string, keysAndValues ...interface{})

	Desugar() *zap.Logger

	// AsZap returns the underlying zap sugared logger.
	AsZap() *zap.SugaredLogger

	// Sublogger returns a logger named name nested under this one.
	Sublogger(name string) Logger

	// WithFields returns a logger that attaches the given key/value pairs
	// to every entry it writes.
	WithFields(keysAndValues ...interface{}) Logger
}

type impl struct {
	*zap.SugaredLogger
}

// FromZap wraps an existing zap sugared logger.
func FromZap(logger *zap.SugaredLogger) Logger {
	return &impl{logger}
}

func (imp *impl) AsZap() *zap.SugaredLogger {
	return imp.SugaredLogger
}

func (imp *impl) Sublogger(name string) Logger {
	return &impl{imp.SugaredLogger.Named(name)}
}

func (imp *impl) WithFields(keysAndValues ...interface{}) Logger {
	return &impl{imp.SugaredLogger.With(keysAndValues...)}
}

// NewLoggerConfig returns a new default logger config.
func NewLoggerConfig() zap.Config {
	// from https://github.com/uber-go/zap/blob/2314926ec34c23ee21f3dd4399438469668f8097/config.go#L135
	// but disable stacktraces, use same keys as prod, and color levels.
	return zap.Config{
		Level:    zap.NewAtomicLevelAt(zap.InfoLevel),
		Encoding: "console",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "ts",
			LevelKey:       "level",
			NameKey:        "logger",
			CallerKey:      "caller",
			FunctionKey:    zapcore.OmitKey,
			MessageKey:     "msg",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalColorLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		DisableStacktrace: true,
		OutputPaths:       []string{"stdout"},
		ErrorOutputPaths:  []string{"stderr"},
	}
}

// NewLogger returns a new logger named name that outputs Info+ logs to stdout.
func NewLogger(name string) Logger {
	return FromZap(zap.Must(NewLoggerConfig().Build()).Sugar().Named(name))
}

// NewDebugLogger returns a new logger named name that outputs Debug+ logs to stdout.
func NewDebugLogger(name string) Logger {
	config := NewLoggerConfig()
	config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	return FromZap(zap.Must(config.Build()).Sugar().Named(name))
}

// NewBlankLogger returns a new logger named name with no outputs attached. It
// discards everything logged to it.
func NewBlankLogger(name string) Logger {
	return FromZap(zap.NewNop().Sugar().Named(name))
}
