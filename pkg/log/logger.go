package log

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	mu      sync.Mutex
	logFile *os.File
)

// Init configures the default slog logger.
//
// path: Log file path, opened in append mode. If empty, logs go to stderr so
// that stdout only carries the generation summary.
// level: Log level ("debug", "info", "warn", "error"). Defaults to "info".
func Init(path string, level string) error {
	mu.Lock()
	defer mu.Unlock()

	var w io.Writer = os.Stderr
	if path != "" {
		dir := filepath.Dir(path)
		if dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return err
			}
		}

		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return err
		}
		closeLocked()
		logFile = f
		w = f
	}

	SetOutput(w, level)
	return nil
}

// SetOutput installs a text logger writing to w at the given level.
func SetOutput(w io.Writer, level string) {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)})
	slog.SetDefault(slog.New(handler))
}

// Close releases the log file opened by Init, if any.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
}

func closeLocked() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

// ParseLevel maps a level name to a slog level. Unknown names map to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
