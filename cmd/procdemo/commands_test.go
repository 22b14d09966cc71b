package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestSimulateInstantJSON(t *testing.T) {
	out, err := execute(t, "", "simulate", "--instant", "--ticks", "5", "--format", "json", "--seed", "42")
	if err != nil {
		t.Fatalf("simulate error = %v\n%s", err, out)
	}

	var records []tickRecord
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		var r tickRecord
		if err := json.Unmarshal(sc.Bytes(), &r); err != nil {
			t.Fatalf("line %q is not JSON: %v", sc.Text(), err)
		}
		records = append(records, r)
	}
	if len(records) != 5 {
		t.Fatalf("got %d records, want 5", len(records))
	}

	last := records[4]
	if last.Tick != 5 {
		t.Errorf("last tick = %d, want 5", last.Tick)
	}
	if last.Temperature != 22 {
		t.Errorf("temperature = %d, want 22", last.Temperature)
	}
	if last.Percent != 0.5 {
		t.Errorf("percent = %v, want 0.5", last.Percent)
	}
	if last.Mode != "Disabled" {
		t.Errorf("mode = %q, want Disabled", last.Mode)
	}
}

func TestSimulateRejectsBadFlags(t *testing.T) {
	if _, err := execute(t, "", "simulate", "--instant", "--ticks", "0", "--format", "json"); err == nil {
		t.Error("--ticks 0 should fail")
	}
	if _, err := execute(t, "", "simulate", "--instant", "--ticks", "3", "--format", "xml"); err == nil {
		t.Error("--format xml should fail")
	}
	simTicks, simFormat = 20, "text"
}

func TestConfigInitAndShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "procdemo", "config.yaml")
	defer func() { configPath = "" }()

	if _, err := execute(t, "", "config", "init", "--config", path); err != nil {
		t.Fatalf("config init error = %v", err)
	}
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	// Declining the prompt leaves the file alone
	if err := os.WriteFile(path, append(first, []byte("# edited\n")...), 0600); err != nil {
		t.Fatal(err)
	}
	out, err := execute(t, "no\n", "config", "init", "--config", path)
	if err != nil {
		t.Fatalf("config init error = %v", err)
	}
	if !strings.Contains(out, "cancelled") {
		t.Errorf("expected cancellation, got:\n%s", out)
	}
	if data, _ := os.ReadFile(path); !strings.HasSuffix(string(data), "# edited\n") {
		t.Error("file was overwritten after declining")
	}

	out, err = execute(t, "", "config", "show", "--config", path)
	if err != nil {
		t.Fatalf("config show error = %v", err)
	}
	for _, want := range []string{"title: Process Demo", "unit: 1s", "output_lines: 1000"} {
		if !strings.Contains(out, want) {
			t.Errorf("config show missing %q:\n%s", want, out)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "", "version")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	if !strings.HasPrefix(out, "procdemo ") {
		t.Errorf("version output = %q", out)
	}
}
