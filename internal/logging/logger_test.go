package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestInitializeSilentByDefault(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")

	var buf bytes.Buffer
	if err := Initialize("", &buf); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	Info("should not appear")

	if buf.Len() != 0 {
		t.Errorf("silent logger wrote %q", buf.String())
	}
}

func TestInitializeWritesToSink(t *testing.T) {
	var buf bytes.Buffer
	if err := Initialize("debug", &buf); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	t.Cleanup(func() { _ = Initialize("") })

	LogColorRejected(255, errors.New("no custom colors"))

	out := buf.String()
	for _, want := range []string{"Color definition rejected", "no custom colors", SessionID()} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q: %s", want, out)
		}
	}
}

func TestInitializeFromEnv(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "warn")

	var buf bytes.Buffer
	if err := Initialize("", &buf); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	t.Cleanup(func() { _ = Initialize("") })

	Info("filtered")
	Warn("kept")

	out := buf.String()
	if strings.Contains(out, "filtered") {
		t.Error("info entry passed a warn level logger")
	}
	if !strings.Contains(out, "kept") {
		t.Error("warn entry missing")
	}
}

func TestInitializeUnknownLevel(t *testing.T) {
	if err := Initialize("loud"); err == nil {
		t.Error("Initialize(loud) should fail")
	}
}
