// Package store persists editor state between sessions: document
// content, the last-saved timestamp, cached template field values, and
// lint rule settings. State lives in a single JSON file read and
// updated field-by-field.
//
// Persistence is best-effort. A write failure is reported to the
// caller so it can be surfaced, but it never interrupts editing.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dshills/markwright/internal/lint"
)

// ErrStorage wraps any failure to read or write the state file.
var ErrStorage = errors.New("storage failure")

// DefaultFileName is the state file created under the state directory.
const DefaultFileName = "markwright.json"

// Store reads and writes the persisted state file.
type Store struct {
	mu   sync.Mutex
	path string
}

// New returns a store backed by the given file path.
func New(path string) *Store {
	return &Store{path: path}
}

// Open returns a store using the default file name under dir.
func Open(dir string) *Store {
	return New(filepath.Join(dir, DefaultFileName))
}

// Path returns the state file location.
func (s *Store) Path() string { return s.path }

// SaveContent persists the document and stamps savedAt with now.
func (s *Store) SaveContent(content string, now time.Time) error {
	return s.update(func(doc string) (string, error) {
		doc, err := sjson.Set(doc, "content", content)
		if err != nil {
			return "", err
		}
		return sjson.Set(doc, "savedAt", now.UnixMilli())
	})
}

// Content returns the persisted document, if any.
func (s *Store) Content() (string, bool) {
	r := s.get("content")
	return r.String(), r.Exists()
}

// SavedAt returns the timestamp of the last content save.
func (s *Store) SavedAt() (time.Time, bool) {
	r := s.get("savedAt")
	if !r.Exists() {
		return time.Time{}, false
	}
	return time.UnixMilli(r.Int()), true
}

// SaveTemplateFields caches the user's template field values.
func (s *Store) SaveTemplateFields(fields map[string]string) error {
	return s.update(func(doc string) (string, error) {
		return sjson.Set(doc, "templateFields", fields)
	})
}

// TemplateFields returns the cached template field values, empty when
// none were saved.
func (s *Store) TemplateFields() map[string]string {
	fields := make(map[string]string)
	for k, v := range s.get("templateFields").Map() {
		fields[k] = v.String()
	}
	return fields
}

// SaveLintSettings persists the rule toggles and line-length limit.
func (s *Store) SaveLintSettings(cfg lint.Config) error {
	return s.update(func(doc string) (string, error) {
		rules := make(map[string]bool, len(cfg.Enabled))
		for r, on := range cfg.Enabled {
			rules[string(r)] = on
		}
		doc, err := sjson.Set(doc, "lintSettings.rules", rules)
		if err != nil {
			return "", err
		}
		return sjson.Set(doc, "lintSettings.maxLineLength", cfg.MaxLineLength)
	})
}

// LintSettings returns the persisted lint configuration, or the
// defaults when nothing was saved.
func (s *Store) LintSettings() (lint.Config, bool) {
	r := s.get("lintSettings")
	if !r.Exists() {
		return lint.DefaultConfig(), false
	}

	cfg := lint.DefaultConfig()
	for k, v := range r.Get("rules").Map() {
		cfg.Enabled[lint.Rule(k)] = v.Bool()
	}
	if ml := r.Get("maxLineLength"); ml.Exists() {
		cfg.MaxLineLength = int(ml.Int())
	}
	return cfg, true
}

func (s *Store) get(path string) gjson.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return gjson.Get(s.readLocked(), path)
}

func (s *Store) update(mutate func(doc string) (string, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := mutate(s.readLocked())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return s.writeLocked(doc)
}

func (s *Store) readLocked() string {
	data, err := os.ReadFile(s.path)
	if err != nil || !gjson.ValidBytes(data) {
		return "{}"
	}
	return string(data)
}

// writeLocked replaces the state file via a temp file and rename so a
// crash mid-write cannot corrupt previously saved state.
func (s *Store) writeLocked(doc string) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}

	tmp, err := os.CreateTemp(dir, ".markwright-*.json")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(doc); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return nil
}
