// Package editor wires the engine components into a single editing
// session: buffer, history, find/replace, lint, formatting, templates,
// preview, and persistence. The session is the one place that owns
// cross-component flows (debounced autosave, checkpoint policy, the
// clear-all confirmation) so the components themselves stay
// independent.
package editor

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/markwright/internal/config"
	"github.com/dshills/markwright/internal/engine/buffer"
	"github.com/dshills/markwright/internal/engine/history"
	"github.com/dshills/markwright/internal/engine/search"
	"github.com/dshills/markwright/internal/format"
	"github.com/dshills/markwright/internal/lint"
	"github.com/dshills/markwright/internal/preview"
	"github.com/dshills/markwright/internal/store"
	"github.com/dshills/markwright/internal/template"
)

// Session is a single editing session over one document.
type Session struct {
	id  string
	cfg *config.Config
	log *Logger

	buf        *buffer.Buffer
	history    *history.History
	search     *search.Engine
	prettifier *format.Prettifier

	store     *store.Store
	clipboard Clipboard
	confirmer Confirmer
	timers    *timerSet
	now       func() time.Time

	confirming atomic.Bool

	mu          sync.Mutex
	lintCfg     lint.Config
	lintActive  bool
	lintIssues  []lint.Issue
	previewHTML string
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger.
func WithLogger(log *Logger) Option {
	return func(s *Session) { s.log = log }
}

// WithStore sets the persistence backend.
func WithStore(st *store.Store) Option {
	return func(s *Session) { s.store = st }
}

// WithClipboard sets the clipboard implementation.
func WithClipboard(c Clipboard) Option {
	return func(s *Session) { s.clipboard = c }
}

// WithConfirmer sets the confirmation dialog implementation.
func WithConfirmer(c Confirmer) Option {
	return func(s *Session) { s.confirmer = c }
}

// WithClock overrides the session clock, used by export naming and
// template dates.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// New creates a session with the given configuration.
func New(cfg *config.Config, opts ...Option) *Session {
	if cfg == nil {
		cfg = config.Default()
	}

	buf := buffer.NewBuffer()
	s := &Session{
		id:         uuid.NewString(),
		cfg:        cfg,
		log:        NullLogger,
		buf:        buf,
		history:    history.New(cfg.History.MaxEntries),
		search:     search.New(buf),
		prettifier: &format.Prettifier{},
		timers:     newTimerSet(),
		now:        time.Now,
		lintCfg:    cfg.Lint.Rules(),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.previewHTML = preview.PlaceholderHTML
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Buffer returns the session's document buffer.
func (s *Session) Buffer() *buffer.Buffer { return s.buf }

// Search returns the find/replace engine bound to this session.
func (s *Session) Search() *search.Engine { return s.search }

// Close stops pending timers. The session must not be used after.
func (s *Session) Close() {
	s.timers.Stop()
}

// LoadPersisted restores the persisted document, if any, and takes the
// initial history checkpoint.
func (s *Session) LoadPersisted() bool {
	if s.store == nil {
		return false
	}
	content, ok := s.store.Content()
	if !ok {
		return false
	}

	s.buf.SetText(content)
	s.history.Checkpoint(content)
	s.contentChanged()
	s.log.Info("restored persisted document (%d bytes)", len(content))
	return true
}

// SetContent replaces the document, as raw typing does, and schedules
// the debounced side effects: preview render, autosave, history
// checkpoint, and (after the first manual lint run) a lint re-run.
func (s *Session) SetContent(content string) {
	s.buf.SetText(content)
	s.contentChanged()
}

// contentChanged schedules the trailing-edge timers after any buffer
// mutation. The timers are independent; no ordering between them is
// guaranteed.
func (s *Session) contentChanged() {
	d := s.cfg.Debounce

	s.timers.schedule(timerPreview, d.Preview(), s.renderPreview)
	s.timers.schedule(timerAutosave, d.Autosave(), s.autosave)
	s.timers.schedule(timerHistory, d.History(), s.historyCheckpoint)

	s.mu.Lock()
	lintActive := s.lintActive
	s.mu.Unlock()
	if lintActive {
		s.timers.schedule(timerLint, d.Lint(), func() { s.RunLint() })
	}
}

// FlushTimers synchronously runs all pending debounced work. Exposed
// because the timers are otherwise wall-clock driven and unordered.
func (s *Session) FlushTimers() {
	s.timers.Flush()
}

func (s *Session) renderPreview() {
	html := preview.Render(s.buf.Text())
	s.mu.Lock()
	s.previewHTML = html
	s.mu.Unlock()
}

// PreviewHTML returns the most recently rendered preview.
func (s *Session) PreviewHTML() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.previewHTML
}

// Stats returns the word/char/line counts for the current document.
func (s *Session) Stats() preview.Stats {
	return preview.Count(s.buf.Text())
}

func (s *Session) autosave() {
	if s.store == nil {
		return
	}
	if err := s.store.SaveContent(s.buf.Text(), s.now()); err != nil {
		// Best-effort: surface in the log, keep editing.
		s.log.Warn("autosave failed: %v", err)
	}
}

func (s *Session) historyCheckpoint() {
	s.history.Checkpoint(s.buf.Text())
}

// Checkpoint records the current buffer content in the undo history.
func (s *Session) Checkpoint() bool {
	return s.history.Checkpoint(s.buf.Text())
}

// Undo restores the previous history snapshot.
func (s *Session) Undo() error {
	content, err := s.history.Undo()
	if err != nil {
		return err
	}
	s.buf.SetText(content)
	s.contentChanged()
	return nil
}

// Redo restores the most recently undone snapshot.
func (s *Session) Redo() error {
	content, err := s.history.Redo()
	if err != nil {
		return err
	}
	s.buf.SetText(content)
	s.contentChanged()
	return nil
}

// CanUndo reports whether undo is available.
func (s *Session) CanUndo() bool { return s.history.CanUndo() }

// CanRedo reports whether redo is available.
func (s *Session) CanRedo() bool { return s.history.CanRedo() }

// ApplyFormat runs a formatting operation over the current selection,
// checkpointing before and after. The caret lands per the format's
// cursor rule, relative to the selection start.
func (s *Session) ApplyFormat(f format.Format) error {
	before := s.buf.Text()
	sel := s.buf.Selection().Clamp(len(before))

	edit, err := format.Apply(f, s.buf.SelectedText())
	if err != nil {
		return err
	}

	s.history.Checkpoint(before)
	if _, err := s.buf.Replace(sel.Start, sel.End, edit.Replacement); err != nil {
		return err
	}
	_ = s.buf.SetCaret(sel.Start + edit.Cursor)
	s.history.Checkpoint(s.buf.Text())
	s.contentChanged()
	return nil
}

// Prettify normalizes the document structure. It reports false for a
// blank document. The pre-prettify content can be restored once with
// UndoPrettify.
func (s *Session) Prettify() bool {
	before := s.buf.Text()
	after, ok := s.prettifier.Prettify(before)
	if !ok {
		return false
	}

	s.history.Checkpoint(before)
	s.buf.SetText(after)
	s.history.Checkpoint(after)
	s.contentChanged()
	return true
}

// UndoPrettify restores the content captured by the last Prettify.
func (s *Session) UndoPrettify() bool {
	original, ok := s.prettifier.Undo()
	if !ok {
		return false
	}
	s.buf.SetText(original)
	s.contentChanged()
	return true
}

// InsertTemplate renders a catalog section with the cached field
// values and splices it at the smart insertion point, checkpointing
// before and after.
func (s *Session) InsertTemplate(sec template.Section) (string, error) {
	before := s.buf.Text()

	var fields map[string]string
	if s.store != nil {
		fields = s.store.TemplateFields()
	}

	after, caret, err := template.Insert(before, sec, fields, s.now())
	if err != nil {
		return "", err
	}

	s.history.Checkpoint(before)
	s.buf.SetText(after)
	_ = s.buf.SetCaret(caret)
	s.history.Checkpoint(after)
	s.contentChanged()

	return fmt.Sprintf("Inserted %s section", sec), nil
}

// SaveTemplateFields caches the user's template field values.
func (s *Session) SaveTemplateFields(fields map[string]string) {
	if s.store == nil {
		return
	}
	if err := s.store.SaveTemplateFields(fields); err != nil {
		s.log.Warn("saving template fields failed: %v", err)
	}
}

// AnalyzeSections reports which catalog sections the document already
// contains.
func (s *Session) AnalyzeSections() map[template.Section]bool {
	return template.Analyze(s.buf.Text())
}

// RunLint evaluates the configured rules plus the style checks and
// caches the result. The first manual run arms the debounced re-run on
// subsequent edits.
func (s *Session) RunLint() []lint.Issue {
	content := s.buf.Text()

	s.mu.Lock()
	cfg := s.lintCfg
	s.lintActive = true
	s.mu.Unlock()

	issues := lint.Lint(content, cfg)
	issues = append(issues, lint.Validate(content)...)

	s.mu.Lock()
	s.lintIssues = issues
	s.mu.Unlock()
	return issues
}

// LintIssues returns the most recent lint results.
func (s *Session) LintIssues() []lint.Issue {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lintIssues
}

// SetLintConfig replaces the lint configuration and persists it.
func (s *Session) SetLintConfig(cfg lint.Config) {
	s.mu.Lock()
	s.lintCfg = cfg
	s.mu.Unlock()

	if s.store != nil {
		if err := s.store.SaveLintSettings(cfg); err != nil {
			s.log.Warn("saving lint settings failed: %v", err)
		}
	}
}

// LintConfig returns the active lint configuration.
func (s *Session) LintConfig() lint.Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lintCfg
}

// ClearAll wipes the document after user confirmation. A blank
// document is a no-op. While the confirmation dialog is open, a second
// ClearAll is rejected with ErrConfirmPending rather than silently
// replacing the pending dialog.
func (s *Session) ClearAll() error {
	if s.buf.IsBlank() {
		return nil
	}
	if s.confirmer == nil {
		return nil
	}

	if !s.confirming.CompareAndSwap(false, true) {
		return ErrConfirmPending
	}
	defer s.confirming.Store(false)

	ok := s.confirmer.Confirm("Clear All Content",
		"Are you sure you want to clear all content? This cannot be undone.")
	if !ok {
		return nil
	}

	s.history.Checkpoint(s.buf.Text())
	s.buf.SetText("")
	s.contentChanged()
	s.log.Info("document cleared")
	return nil
}
