package logging

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

// ============================================================================
// Helpers
// ============================================================================

// useTempLog points the logger at a file under t.TempDir and returns
// the path. The default destination is restored when the test ends.
func useTempLog(t *testing.T, debug bool) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vatscope.log")
	Configure(path, debug)
	t.Cleanup(func() { Configure("", false) })
	return path
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	return string(content)
}

// ============================================================================
// Line format
// ============================================================================

func TestInfo_WritesTimestampedLine(t *testing.T) {
	path := useTempLog(t, false)

	Info("pilot count: %d", 42)

	line := strings.TrimRight(readLog(t, path), "\n")
	pattern := regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2} \[INFO\] pilot count: 42$`)
	if !pattern.MatchString(line) {
		t.Errorf("log line %q does not match expected format", line)
	}
}

func TestError_WritesErrorLevel(t *testing.T) {
	path := useTempLog(t, false)

	Error("open browser: %v", os.ErrNotExist)

	got := readLog(t, path)
	if !strings.Contains(got, "[ERROR] open browser:") {
		t.Errorf("log = %q, want an [ERROR] line", got)
	}
}

func TestWrite_AppendsLines(t *testing.T) {
	path := useTempLog(t, false)

	Info("first")
	Info("second")

	lines := strings.Split(strings.TrimRight(readLog(t, path), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("log has %d lines, want 2", len(lines))
	}
	if !strings.HasSuffix(lines[0], "first") || !strings.HasSuffix(lines[1], "second") {
		t.Errorf("lines out of order: %v", lines)
	}
}

// ============================================================================
// Debug gating
// ============================================================================

func TestDebug_SuppressedByDefault(t *testing.T) {
	path := useTempLog(t, false)

	Info("visible")
	Debug("hidden")

	got := readLog(t, path)
	if strings.Contains(got, "hidden") {
		t.Errorf("debug line leaked into log: %q", got)
	}
}

func TestDebug_WrittenWhenVerbose(t *testing.T) {
	path := useTempLog(t, true)

	Debug("chose data url %s", "https://example.test/v3/data.json")

	got := readLog(t, path)
	if !strings.Contains(got, "[DEBUG] chose data url") {
		t.Errorf("log = %q, want a [DEBUG] line", got)
	}
}

// ============================================================================
// Destination handling
// ============================================================================

func TestConfigure_CreatesMissingDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "nested", "vatscope.log")
	Configure(path, false)
	t.Cleanup(func() { Configure("", false) })

	Info("startup")

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("log file was not created: %v", err)
	}
}

func TestConfigure_BlankPathFallsBackToDefault(t *testing.T) {
	Configure("   ", false)
	t.Cleanup(func() { Configure("", false) })

	mu.Lock()
	got := logPath
	mu.Unlock()
	if got != defaultLogFile {
		t.Errorf("logPath = %q, want %q", got, defaultLogFile)
	}
}
