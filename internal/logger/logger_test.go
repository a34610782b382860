package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "emotionai.log")

	log, err := New(path, false)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	log.Errorw("analysis failed", "error", "classification unavailable")
	log.Debugw("hidden at info level")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "analysis failed") || !strings.Contains(out, "classification unavailable") {
		t.Errorf("log missing error entry: %s", out)
	}
	if strings.Contains(out, "hidden at info level") {
		t.Errorf("debug entry written at info level: %s", out)
	}
}

func TestNewVerbose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "emotionai.log")

	log, err := New(path, true)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	log.Debugw("submitted", "chars", 12)
	_ = log.Sync()

	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "submitted") {
		t.Errorf("verbose logger should write debug entries: %s", data)
	}
}

func TestNewOrNop(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(file, nil, 0644); err != nil {
		t.Fatal(err)
	}

	var warned bytes.Buffer
	warnings = &warned
	t.Cleanup(func() { warnings = os.Stderr })

	// A regular file can't be a parent directory.
	path := filepath.Join(file, "emotionai.log")
	log := NewOrNop(path, false)
	if log == nil {
		t.Fatal("NewOrNop returned nil")
	}
	log.Infow("discarded")

	if !strings.Contains(warned.String(), "diagnostics disabled") || !strings.Contains(warned.String(), path) {
		t.Errorf("fallback not announced: %q", warned.String())
	}
}

func TestNewOrNopQuietOnSuccess(t *testing.T) {
	var warned bytes.Buffer
	warnings = &warned
	t.Cleanup(func() { warnings = os.Stderr })

	log := NewOrNop(filepath.Join(t.TempDir(), "emotionai.log"), false)
	log.Infow("kept")
	if warned.Len() != 0 {
		t.Errorf("unexpected warning: %q", warned.String())
	}
}
