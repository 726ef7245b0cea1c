package logger

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

// Key constants
const (
	RequestIDKey = "request_id"
	ServiceKey   = "service"
	EnvKey       = "env"
)

type ctxKey struct{}

type Logger struct {
	*logrus.Logger
	service string
	env     string
}

var (
	standardLogger *Logger
	once           sync.Once
)

// StandardLogger returns the singleton logger instance
func StandardLogger() *Logger {
	once.Do(func() {
		standardLogger = New(os.Stdout)
	})
	return standardLogger
}

// New creates a logger writing text entries to w
func New(w io.Writer) *Logger {
	l := &Logger{Logger: logrus.New()}
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return l
}

// Init applies level, format and service metadata
func (l *Logger) Init(level, format, service, env string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	l.SetLevel(lvl)

	switch format {
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	default:
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	l.service = service
	l.env = env
	return nil
}

// WithRequestID stores a request id in the context
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// RequestID returns the request id stored in the context, if any
func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// entryFromContext creates a new log entry with fields from context
func (l *Logger) entryFromContext(ctx context.Context) *logrus.Entry {
	fields := logrus.Fields{}

	if id := RequestID(ctx); id != "" {
		fields[RequestIDKey] = id
	}
	if l.service != "" {
		fields[ServiceKey] = l.service
	}
	if l.env != "" {
		fields[EnvKey] = l.env
	}

	return l.WithFields(fields)
}

// WithContext returns an entry carrying the context fields
func (l *Logger) WithContext(ctx context.Context) *logrus.Entry {
	return l.entryFromContext(ctx)
}

func (l *Logger) Debugf(ctx context.Context, format string, args ...any) {
	l.entryFromContext(ctx).Debugf(format, args...)
}
func (l *Logger) Infof(ctx context.Context, format string, args ...any) {
	l.entryFromContext(ctx).Infof(format, args...)
}
func (l *Logger) Warnf(ctx context.Context, format string, args ...any) {
	l.entryFromContext(ctx).Warnf(format, args...)
}
func (l *Logger) Errorf(ctx context.Context, format string, args ...any) {
	l.entryFromContext(ctx).Errorf(format, args...)
}
func (l *Logger) Fatalf(ctx context.Context, format string, args ...any) {
	l.entryFromContext(ctx).Fatalf(format, args...)
}
