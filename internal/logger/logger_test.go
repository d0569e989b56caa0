package logger

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(prev) })
	return &buf
}

func TestLogAuditNilReceiver(t *testing.T) {
	buf := captureLog(t)

	// The retention cron audits through GlobalLogger, which is nil until a
	// logger service is registered. That path must log, not panic.
	var l *LoggerService
	l.LogAudit("retention purge removed 0 sessions")

	if !strings.Contains(buf.String(), "[AUDIT] retention purge removed 0 sessions") {
		t.Fatalf("audit line not written, log output: %q", buf.String())
	}
}

func TestLogAudit(t *testing.T) {
	buf := captureLog(t)

	l := NewLoggerService(map[string]interface{}{"max_file_mb": 1, "retention_days": 1})
	l.LogAudit("upload staged")

	if !strings.Contains(buf.String(), "[AUDIT] upload staged") {
		t.Fatalf("audit line not written, log output: %q", buf.String())
	}
}
