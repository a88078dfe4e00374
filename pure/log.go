package pure

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel defines the severity level used by memoizer logging.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// ParseLevel maps a level name to its zap level. An empty name means info.
func ParseLevel(name string) (zapcore.Level, error) {
	switch LogLevel(strings.ToLower(strings.TrimSpace(name))) {
	case LogDebug:
		return zap.DebugLevel, nil
	case LogInfo, "":
		return zap.InfoLevel, nil
	case LogWarn:
		return zap.WarnLevel, nil
	case LogError:
		return zap.ErrorLevel, nil
	default:
		return zap.InfoLevel, fmt.Errorf("unknown log level %q", name)
	}
}

// NewDevelopmentLogger builds a console logger writing to w.
func NewDevelopmentLogger(w io.Writer, level zapcore.Level) *zap.Logger {
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(zapcore.AddSync(w)),
		level,
	)
	return zap.New(consoleCore)
}

type zapObserver struct {
	logger *zap.Logger
}

func (z zapObserver) On(e EventData) {
	fields := []zap.Field{
		zap.String("memoizer", e.Memoizer),
		zap.Stringer("kind", e.Kind),
		zap.Any("key", e.Key),
	}

	switch e.Event {
	case EventHit:
		z.logger.Debug("memo hit", fields...)
	case EventMiss:
		z.logger.Debug("memo miss", fields...)
	case EventFailure:
		z.logger.Warn("memo computation failed", append(fields, zap.Error(e.Err))...)
	case EventReset:
		z.logger.Info("memo reset", fields...)
	default:
		z.logger.Info("memo event", append(fields, zap.Stringer("event", e.Event))...)
	}
}
