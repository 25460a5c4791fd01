// Package diagnostics provides a file-backed logger for serena-mcp.
// The stdio transport requires stdout to carry nothing but JSON-RPC
// response lines, so diagnostics never touch stdout or stderr; a
// failure to open the log file silently disables logging instead of
// blocking startup.
package diagnostics

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Logger writes timestamped diagnostic lines to a file under the
// resolved log directory. A nil *Logger, or one whose file could not
// be opened, discards everything it's given.
type Logger struct {
	mu       sync.Mutex
	file     *os.File
	logger   *log.Logger
	filePath string
}

// New resolves the log directory (SERENA_LOG_DIR, else $TMPDIR, else
// $HOME) and opens a timestamped log file inside it. Any failure along
// the way falls back to a logger that discards its input; it never
// returns an error, since diagnostics are not allowed to block startup.
func New() *Logger {
	dl := &Logger{}

	logDir := os.Getenv("SERENA_LOG_DIR")
	if logDir == "" {
		logDir = filepath.Join(os.TempDir(), "serena-mcp-logs")
	}
	if err := os.MkdirAll(logDir, 0755); err != nil {
		homeDir, homeErr := os.UserHomeDir()
		if homeErr != nil {
			dl.logger = log.New(io.Discard, "", 0)
			return dl
		}
		logDir = filepath.Join(homeDir, ".serena-mcp-logs")
		if err := os.MkdirAll(logDir, 0755); err != nil {
			dl.logger = log.New(io.Discard, "", 0)
			return dl
		}
	}

	timestamp := time.Now().Format("2006-01-02T150405")
	logPath := filepath.Join(logDir, fmt.Sprintf("serena-mcp-%s.log", timestamp))

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		dl.logger = log.New(io.Discard, "", 0)
		return dl
	}

	dl.file = file
	dl.filePath = logPath
	dl.logger = log.New(file, "", log.LstdFlags|log.Lshortfile)
	return dl
}

// Printf logs a diagnostic message. No-op on a nil or discarding Logger.
func (dl *Logger) Printf(format string, v ...interface{}) {
	if dl == nil || dl.logger == nil {
		return
	}
	dl.mu.Lock()
	defer dl.mu.Unlock()
	dl.logger.Printf(format, v...)
}

// Errorf logs an error-level diagnostic message.
func (dl *Logger) Errorf(format string, v ...interface{}) {
	if dl == nil || dl.logger == nil {
		return
	}
	dl.mu.Lock()
	defer dl.mu.Unlock()
	dl.logger.Printf("ERROR: "+format, v...)
}

// Close closes the underlying log file, if one was opened.
func (dl *Logger) Close() error {
	if dl == nil {
		return nil
	}
	dl.mu.Lock()
	defer dl.mu.Unlock()
	if dl.file != nil {
		return dl.file.Close()
	}
	return nil
}

// LogPath returns the path of the diagnostic log file, or "" if
// logging was disabled.
func (dl *Logger) LogPath() string {
	if dl == nil {
		return ""
	}
	return dl.filePath
}

// Discard suppresses all logging. Used by tests and any caller that
// wants to construct components without a live Logger.
var Discard = &Logger{logger: log.New(io.Discard, "", 0)}
