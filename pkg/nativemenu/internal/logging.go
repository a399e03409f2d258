package internal

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	logFile *os.File
	logPath string

	setupOnce sync.Once
	logWriter io.Writer = os.Stdout

	loggerOnce sync.Once
	logger     *slog.Logger
	levelVar   *slog.LevelVar
)

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories. Has no effect once the logger
// has been used.
func SetLogPath(path string) {
	logPath = path
}

// SetLogWriter replaces the console sink. Has no effect once the logger has
// been used.
func SetLogWriter(w io.Writer) {
	if w != nil {
		logWriter = w
	}
}

func setup() io.Writer {
	var out io.Writer
	setupOnce.Do(func() {
		out = logWriter
		if logPath == "" {
			return
		}

		if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
			return
		}

		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			// Can't open log file, console only
			return
		}
		logFile = f
		out = io.MultiWriter(logWriter, logFile)
	})
	return out
}

// GetLogger returns the library's console sink.
func GetLogger() *slog.Logger {
	loggerOnce.Do(func() {
		levelVar = &slog.LevelVar{}
		levelVar.Set(ParseLevel(os.Getenv("NATIVEMENU_LOG_LEVEL"), slog.LevelWarn))

		handler := slog.NewJSONHandler(setup(), &slog.HandlerOptions{
			Level:     levelVar,
			AddSource: false,
		})
		logger = slog.New(handler).With("component", "nativemenu")
	})
	return logger
}

func SetLogLevel(level slog.Level) {
	GetLogger()
	levelVar.Set(level)
}

// ParseLevel maps "debug", "info", "warn" and "error" to a level, returning
// fallback for anything else.
func ParseLevel(raw string, fallback slog.Level) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return fallback
	}
}

func SetRawLogLevel(rawLevel string) {
	SetLogLevel(ParseLevel(rawLevel, slog.LevelInfo))
}

func CloseLogger() {
	if logFile != nil {
		logFile.Close()
	}
}
