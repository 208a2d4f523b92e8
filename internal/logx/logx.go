// Package logx is the file-backed debug logger. A full-screen TUI owns the
// terminal, so diagnostics go to ~/.config/plane/plane.log instead of
// stderr. All helpers are nil-safe: without Init, logging is a no-op.
package logx

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger  *zap.SugaredLogger
	logFile *os.File
)

// Init opens the log file and installs the package logger. Logs truncate
// on each run.
func Init(debug bool) error {
	path, err := logPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	logFile, err = os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(logFile),
		level,
	)
	logger = zap.New(core).Sugar()
	logger.Infow("logger initialized", "path", path, "debug", debug)
	return nil
}

// Close flushes and closes the log file.
func Close() {
	if logger != nil {
		_ = logger.Sync()
	}
	if logFile != nil {
		_ = logFile.Close()
	}
}

func logPath() (string, error) {
	if v := os.Getenv("PLANE_LOG_FILE"); v != "" {
		return v, nil
	}
	if v := os.Getenv("PLANE_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "plane.log"), nil
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "plane", "plane.log"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "plane", "plane.log"), nil
}

func Debug(msg string, keysAndValues ...any) {
	if logger != nil {
		logger.Debugw(msg, keysAndValues...)
	}
}

func Info(msg string, keysAndValues ...any) {
	if logger != nil {
		logger.Infow(msg, keysAndValues...)
	}
}

func Warn(msg string, keysAndValues ...any) {
	if logger != nil {
		logger.Warnw(msg, keysAndValues...)
	}
}

func Error(msg string, keysAndValues ...any) {
	if logger != nil {
		logger.Errorw(msg, keysAndValues...)
	}
}
