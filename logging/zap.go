package logging

import (
	"context"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger adapts a zap.Logger to the Logger interface. Fields become
// zap.Any fields; levels map one to one.
type ZapLogger struct {
	logger *zap.Logger
	level  zap.AtomicLevel
}

// NewZapLogger wraps an existing zap logger. Filtering by SetLevel applies on
// top of whatever level the base core enforces.
func NewZapLogger(base *zap.Logger) *ZapLogger {
	if base == nil {
		base = zap.NewNop()
	}
	return &ZapLogger{
		logger: base.WithOptions(zap.AddCallerSkip(1)),
		level:  zap.NewAtomicLevelAt(zapcore.InfoLevel),
	}
}

// NewJSONZapLogger builds a zap logger writing JSON lines with ISO8601
// timestamps to stderr
func NewJSONZapLogger() *ZapLogger {
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.Lock(os.Stderr), level)

	return &ZapLogger{
		logger: zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)),
		level:  level,
	}
}

// Unwrap returns the underlying zap logger
func (z *ZapLogger) Unwrap() *zap.Logger {
	return z.logger
}

// Sync flushes buffered entries
func (z *ZapLogger) Sync() error {
	return z.logger.Sync()
}

func toZapLevel(level Level) zapcore.Level {
	switch level {
	case DebugLevel:
		return zapcore.DebugLevel
	case InfoLevel:
		return zapcore.InfoLevel
	case WarnLevel:
		return zapcore.WarnLevel
	case ErrorLevel:
		return zapcore.ErrorLevel
	default:
		return zapcore.FatalLevel
	}
}

func toZapFields(err error, fields []Fields) []zap.Field {
	n := 0
	for _, f := range fields {
		n += len(f)
	}
	out := make([]zap.Field, 0, n+1)
	if err != nil {
		out = append(out, zap.Error(err))
	}
	for _, f := range fields {
		for k, v := range f {
			out = append(out, zap.Any(k, v))
		}
	}
	return out
}

func (z *ZapLogger) log(level Level, err error, msg string, fields []Fields) {
	zl := toZapLevel(level)
	if !z.level.Enabled(zl) {
		return
	}
	if ce := z.logger.Check(zl, msg); ce != nil {
		ce.Write(toZapFields(err, fields)...)
	}
}

func (z *ZapLogger) Debug(msg string, fields ...Fields) {
	z.log(DebugLevel, nil, msg, fields)
}

func (z *ZapLogger) Info(msg string, fields ...Fields) {
	z.log(InfoLevel, nil, msg, fields)
}

func (z *ZapLogger) Warn(msg string, fields ...Fields) {
	z.log(WarnLevel, nil, msg, fields)
}

func (z *ZapLogger) Error(err error, msg string, fields ...Fields) {
	z.log(ErrorLevel, err, msg, fields)
}

func (z *ZapLogger) Fatal(err error, msg string, fields ...Fields) {
	z.log(FatalLevel, err, msg, fields)
}

func (z *ZapLogger) WithFields(fields Fields) Logger {
	return &ZapLogger{
		logger: z.logger.With(toZapFields(nil, []Fields{fields})...),
		level:  z.level,
	}
}

func (z *ZapLogger) WithContext(ctx context.Context) Logger {
	if fields, ok := FieldsFromContext(ctx); ok {
		return z.WithFields(fields)
	}
	return z
}

// SetLevel changes the minimum level. Loggers derived with WithFields share
// the same level.
func (z *ZapLogger) SetLevel(level Level) {
	z.level.SetLevel(toZapLevel(level))
}
