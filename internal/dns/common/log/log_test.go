package log

import (
	"testing"
)

type testLogger struct {
	entries []string
}

func (l *testLogger) Debug(_ map[string]any, msg string) { l.entries = append(l.entries, "DEBUG:"+msg) }
func (l *testLogger) Info(_ map[string]any, msg string)  { l.entries = append(l.entries, "INFO:"+msg) }
func (l *testLogger) Warn(_ map[string]any, msg string)  { l.entries = append(l.entries, "WARN:"+msg) }
func (l *testLogger) Error(_ map[string]any, msg string) { l.entries = append(l.entries, "ERROR:"+msg) }
func (l *testLogger) Fatal(_ map[string]any, msg string) {}

func TestActualZapLogger(t *testing.T) {
	// with fields and a message
	Debug(map[string]any{
		"task": "4a1c",
		"name": "example.com",
		"ok":   true,
	}, "test debug")
	// just a message
	Info(nil, "test info")
	Warn(nil, "test warn")
	Error(nil, "test error")
	// Note: Fatal exits the process, so it is not exercised here.
}

func TestSetLoggerAndGlobalLogging(t *testing.T) {
	orig := GetLogger()
	defer func() {
		SetLogger(orig) // restore after test
	}()
	tlog := &testLogger{}
	SetLogger(tlog)

	Info(nil, "info msg")
	Error(nil, "error msg")
	Debug(nil, "debug msg")
	Warn(nil, "warn msg")

	expected := []string{
		"INFO:info msg",
		"ERROR:error msg",
		"DEBUG:debug msg",
		"WARN:warn msg",
	}
	if len(tlog.entries) != len(expected) {
		t.Fatalf("expected %d entries, got %d", len(expected), len(tlog.entries))
	}
	for i, want := range expected {
		if tlog.entries[i] != want {
			t.Errorf("entry %d = %q, want %q", i, tlog.entries[i], want)
		}
	}
}

func TestConfigure(t *testing.T) {
	orig := GetLogger()
	defer SetLogger(orig)

	if err := Configure("dev", "debug"); err != nil {
		t.Errorf("Configure(dev, debug) returned error: %v", err)
	}
	if err := Configure("prod", "info"); err != nil {
		t.Errorf("Configure(prod, info) returned error: %v", err)
	}
	if err := Configure("prod", "not-a-level"); err == nil {
		t.Error("Configure with invalid level expected error, got nil")
	}
}

func TestNoopLogger(t *testing.T) {
	n := NewNoopLogger()
	// must not panic or emit anything
	n.Debug(nil, "x")
	n.Info(nil, "x")
	n.Warn(nil, "x")
	n.Error(nil, "x")
}
