package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRedactSecrets(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := &Logger{SugaredLogger: zap.New(core).Sugar()}

	l.Info("calling model", "model", "gemini-2.5-flash", "api_key", "sk-123", "Authorization", "Bearer x")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["model"] != "gemini-2.5-flash" {
		t.Errorf("model = %v", fields["model"])
	}
	if fields["api_key"] != "[REDACTED]" {
		t.Errorf("api_key = %v, want redacted", fields["api_key"])
	}
	if fields["Authorization"] != "[REDACTED]" {
		t.Errorf("Authorization = %v, want redacted", fields["Authorization"])
	}
}

func TestRedactOddArgs(t *testing.T) {
	got := redact([]any{"a", 1, "dangling"})
	if len(got) != 3 || got[2] != "dangling" {
		t.Errorf("redact = %v", got)
	}
}

func TestWithKeepsFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := (&Logger{SugaredLogger: zap.New(core).Sugar()}).With("session_id", "s1")

	l.Warn("busy")

	fields := logs.All()[0].ContextMap()
	if fields["session_id"] != "s1" {
		t.Errorf("session_id = %v", fields["session_id"])
	}
}
