package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.expected {
			t.Errorf("Level(%d).String() = %q, expected %q", tt.level, got, tt.expected)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
		wantErr  bool
	}{
		{"debug", LevelDebug, false},
		{"DEBUG", LevelDebug, false},
		{"info", LevelInfo, false},
		{"", LevelInfo, false},
		{"Warn", LevelWarn, false},
		{"warning", LevelWarn, false},
		{" error ", LevelError, false},
		{"verbose", LevelInfo, true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if got != tt.expected {
			t.Errorf("ParseLevel(%q) = %v, expected %v", tt.input, got, tt.expected)
		}
	}
}

func TestLogger_Format(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: LevelDebug, Output: &buf, Prefix: "tabletop", Session: "s1"})

	l.WithComponent("editor").Info("submitted %q", "exit")

	line := buf.String()
	for _, want := range []string{
		"[INFO] tabletop: submitted \"exit\"",
		"{session=s1, component=editor}",
	} {
		if !strings.Contains(line, want) {
			t.Errorf("log line %q missing %q", line, want)
		}
	}
	if !strings.HasSuffix(line, "\n") {
		t.Error("log line not newline-terminated")
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: LevelWarn, Output: &buf})
	child := l.WithComponent("menu")

	child.Debug("hidden")
	child.Info("hidden")
	child.Warn("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Errorf("unexpected output %q", buf.String())
	}

	// Level changes on the root reach existing children.
	buf.Reset()
	l.SetLevel(LevelDebug)
	child.Debug("now visible")
	if !strings.Contains(buf.String(), "now visible") {
		t.Errorf("child did not follow root level: %q", buf.String())
	}
	if child.Level() != LevelDebug {
		t.Errorf("child.Level() = %v", child.Level())
	}
}

func TestLogger_WithFieldReplaces(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Output: &buf, Session: "s"})

	l.WithField("view", "menu").WithField("view", "editor").Info("x")
	if strings.Contains(buf.String(), "view=menu") || !strings.Contains(buf.String(), "view=editor") {
		t.Errorf("field not replaced: %q", buf.String())
	}
}

func TestLogger_Session(t *testing.T) {
	l := New(Config{})
	if _, err := uuid.Parse(l.Session()); err != nil {
		t.Errorf("Session() = %q is not a UUID: %v", l.Session(), err)
	}
	if l.WithComponent("x").Session() != l.Session() {
		t.Error("child session differs from root")
	}
	if New(Config{}).Session() == l.Session() {
		t.Error("two loggers share a session id")
	}
}

func TestDiscard(t *testing.T) {
	l := Discard()
	l.Error("nothing") // must not panic
	l.SetOutput(nil)
	l.WithComponent("x").Error("still nothing")
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "tabletop.log")

	f, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile failed: %v", err)
	}
	l := New(Config{Output: f, Session: "file"})
	l.Info("hello")
	if err := f.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.Contains(string(data), "hello {session=file}") {
		t.Errorf("file contents = %q", data)
	}
}
