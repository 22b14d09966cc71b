package logging

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger    *zap.Logger
	sessionID = uuid.NewString()
	mu        sync.Mutex
)

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "PROCDEMO_LOG_LEVEL"

// Initialize creates a new logger with the specified level.
// If level is empty, it checks PROCDEMO_LOG_LEVEL environment variable.
// If neither is set, logging is disabled (silent mode).
//
// With no sinks the logger writes to stdout. The interactive display passes
// its output buffer so log lines show up in the Messages window instead of
// being drawn over the screen.
func Initialize(level string, sinks ...io.Writer) error {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}

	if level == "" {
		setLogger(zap.NewNop())
		return nil
	}

	zapLevel, err := parseLevel(level)
	if err != nil {
		return err
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	if len(sinks) == 0 {
		// Colored levels only make sense on a real terminal
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		config := zap.Config{
			Level:            zap.NewAtomicLevelAt(zapLevel),
			Development:      false,
			Encoding:         "console",
			EncoderConfig:    encoderConfig,
			OutputPaths:      []string{"stdout"},
			ErrorOutputPaths: []string{"stderr"},
		}
		l, err := config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		setLogger(l.With(zap.String("session_id", sessionID)))
		return nil
	}

	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	syncers := make([]zapcore.WriteSyncer, 0, len(sinks))
	for _, w := range sinks {
		syncers = append(syncers, zapcore.AddSync(w))
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.NewMultiWriteSyncer(syncers...),
		zap.NewAtomicLevelAt(zapLevel),
	)
	setLogger(zap.New(core).With(zap.String("session_id", sessionID)))
	return nil
}

// InitializeFromEnv initializes the logger from the PROCDEMO_LOG_LEVEL
// environment variable.
func InitializeFromEnv() error {
	return Initialize("")
}

func parseLevel(level string) (zapcore.Level, error) {
	switch level {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info":
		return zapcore.InfoLevel, nil
	case "warn":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("unknown log level %q (want debug, info, warn or error)", level)
	}
}

func setLogger(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		// Silent until initialized
		logger = zap.NewNop()
	}
	return logger
}

// SessionID returns the identifier attached to every log entry of this run.
func SessionID() string {
	return sessionID
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// LogTask logs one run of a periodic task
func LogTask(name string, run int) {
	Debug("Task tick",
		zap.String("task", name),
		zap.Int("run", run),
	)
}

// LogKey logs a dispatched key press
func LogKey(key string, scope string) {
	Debug("Key dispatched",
		zap.String("key", key),
		zap.String("scope", scope),
	)
}

// LogCommit logs a value committed from an edit dialog
func LogCommit(field string, value any) {
	Info("Value committed",
		zap.String("field", field),
		zap.Any("value", value),
	)
}

// LogColorRejected logs a color definition the terminal refused
func LogColorRejected(slot int, err error) {
	Debug("Color definition rejected",
		zap.Int("slot", slot),
		zap.Error(err),
	)
}

// Sync flushes any buffered log entries
func Sync() {
	_ = GetLogger().Sync()
}
