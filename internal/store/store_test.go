package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dshills/markwright/internal/lint"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return Open(t.TempDir())
}

func TestContentRoundTrip(t *testing.T) {
	s := newTestStore(t)
	now := time.Date(2026, 5, 1, 12, 30, 0, 0, time.UTC)

	if err := s.SaveContent("# Hello\n", now); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	content, ok := s.Content()
	if !ok {
		t.Fatal("content should exist after save")
	}
	if content != "# Hello\n" {
		t.Errorf("got %q", content)
	}

	savedAt, ok := s.SavedAt()
	if !ok {
		t.Fatal("savedAt should exist after save")
	}
	if !savedAt.Equal(now) {
		t.Errorf("savedAt = %v, want %v", savedAt, now)
	}
}

func TestEmptyStore(t *testing.T) {
	s := newTestStore(t)

	if _, ok := s.Content(); ok {
		t.Error("fresh store should have no content")
	}
	if _, ok := s.SavedAt(); ok {
		t.Error("fresh store should have no savedAt")
	}
	if fields := s.TemplateFields(); len(fields) != 0 {
		t.Errorf("fresh store should have no template fields, got %v", fields)
	}
}

func TestTemplateFieldsRoundTrip(t *testing.T) {
	s := newTestStore(t)

	in := map[string]string{"username": "ada", "licenseType": "Apache-2.0"}
	if err := s.SaveTemplateFields(in); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	out := s.TemplateFields()
	if out["username"] != "ada" || out["licenseType"] != "Apache-2.0" {
		t.Errorf("got %v", out)
	}
}

func TestLintSettingsRoundTrip(t *testing.T) {
	s := newTestStore(t)

	cfg := lint.DefaultConfig()
	cfg.Enabled[lint.RuleMD013] = false
	cfg.MaxLineLength = 100

	if err := s.SaveLintSettings(cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, ok := s.LintSettings()
	if !ok {
		t.Fatal("settings should exist after save")
	}
	if got.Enabled[lint.RuleMD013] {
		t.Error("MD013 toggle should survive the round trip")
	}
	if !got.Enabled[lint.RuleMD001] {
		t.Error("untouched rules should stay enabled")
	}
	if got.MaxLineLength != 100 {
		t.Errorf("maxLineLength = %d, want 100", got.MaxLineLength)
	}
}

func TestLintSettingsDefaultWhenUnsaved(t *testing.T) {
	s := newTestStore(t)

	cfg, ok := s.LintSettings()
	if ok {
		t.Error("fresh store should report no saved settings")
	}
	if cfg.MaxLineLength != lint.DefaultMaxLineLength {
		t.Errorf("expected default line length, got %d", cfg.MaxLineLength)
	}
}

func TestFieldsSurviveUnrelatedSaves(t *testing.T) {
	s := newTestStore(t)

	if err := s.SaveTemplateFields(map[string]string{"username": "ada"}); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := s.SaveContent("body", time.Now()); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if got := s.TemplateFields(); got["username"] != "ada" {
		t.Errorf("template fields should survive a content save, got %v", got)
	}
}

func TestCorruptFileTreatedAsEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultFileName)
	if err := os.WriteFile(path, []byte("not json{{{"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := New(path)
	if _, ok := s.Content(); ok {
		t.Error("corrupt file should read as empty state")
	}

	// A save over a corrupt file starts a fresh document.
	if err := s.SaveContent("recovered", time.Now()); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if content, _ := s.Content(); content != "recovered" {
		t.Errorf("got %q", content)
	}
}

func TestWriteFailureReported(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "missing", "state.json"))

	// Parent is created on demand, so this save succeeds.
	if err := s.SaveContent("x", time.Now()); err != nil {
		t.Fatalf("save should create the directory, got %v", err)
	}
}
