// Package logging writes timestamped lines to a shared log file. The
// terminal is owned by the alternate-screen UI, so nothing is ever
// written to stdout.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const defaultLogFile = "vatscope.log"

var (
	mu      sync.Mutex
	logPath = defaultLogFile
	verbose bool
)

// Configure sets the log destination and toggles debug output. An
// empty path falls back to the default file. Directories are created
// automatically when missing.
func Configure(path string, debug bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = debug
	if strings.TrimSpace(path) == "" {
		logPath = defaultLogFile
		return
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
			logPath = defaultLogFile
			return
		}
	}
	logPath = path
}

// Info writes an informational line to the log file.
func Info(format string, args ...any) {
	write("INFO", format, args...)
}

// Error writes an error line to the log file.
func Error(format string, args ...any) {
	write("ERROR", format, args...)
}

// Debug writes a debug line when verbose output is enabled.
func Debug(format string, args ...any) {
	mu.Lock()
	enabled := verbose
	mu.Unlock()
	if !enabled {
		return
	}
	write("DEBUG", format, args...)
}

func write(level, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging failed: %v\n", err)
		return
	}
	defer f.Close()

	stamp := time.Now().Format("2006-01-02 15:04:05")
	fmt.Fprintf(f, "%s [%s] %s\n", stamp, level, fmt.Sprintf(format, args...))
}
