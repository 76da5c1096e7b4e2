package search

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/dshills/markwright/internal/engine/buffer"
)

// Match is a single search hit: a byte offset into the buffer content
// and the match length. Offsets are always absolute, even when the
// match was found inside a selection scope.
type Match struct {
	Index  int
	Length int
}

// Range returns the buffer range covered by the match.
func (m Match) Range() buffer.Range {
	return buffer.Range{Start: m.Index, End: m.Index + m.Length}
}

// Status reports the outcome of a navigation or replace operation in
// user-facing terms.
type Status struct {
	// Message is the status line text ("Match 2 of 7", "Replaced 3
	// occurrences", ...).
	Message string

	// Current is the 1-based index of the selected match, 0 when none.
	Current int

	// Total is the size of the match set after the operation.
	Total int

	// ScrollFraction is the coarse viewport position for the selected
	// match: match offset over content length. Not line-exact.
	ScrollFraction float64
}

// Engine owns the search configuration, the match set, and the
// selection-scope anchor for one buffer.
type Engine struct {
	mu  sync.Mutex
	buf *buffer.Buffer

	cfg     Config
	matches []Match
	current int // index into matches, -1 when none selected

	// anchor is the frozen selection range for selection-only scope.
	// nil or degenerate means the scope falls back to the whole buffer.
	anchor *buffer.Range
}

// New creates an engine bound to the given buffer.
func New(buf *buffer.Buffer) *Engine {
	return &Engine{buf: buf, current: -1}
}

// Config returns the active search configuration.
func (e *Engine) Config() Config {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cfg
}

// SetConfig replaces the search configuration and recomputes the match
// set. Toggling SelectionOnly on captures the buffer's selection as the
// scope anchor; toggling it off clears the anchor.
func (e *Engine) SetConfig(cfg Config) error {
	e.mu.Lock()

	cfg = cfg.normalized()
	if cfg.SelectionOnly && !e.cfg.SelectionOnly {
		e.anchor = nil
		if sel := e.buf.Selection(); sel.End > sel.Start {
			e.anchor = &sel
		}
	} else if !cfg.SelectionOnly {
		e.anchor = nil
	}
	e.cfg = cfg

	e.mu.Unlock()
	return e.Refresh()
}

// SetAnchor records a manual reselection while selection-only scope is
// active. Degenerate ranges are ignored.
func (e *Engine) SetAnchor(r buffer.Range) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.cfg.SelectionOnly || r.End <= r.Start {
		return
	}
	e.anchor = &r
}

// Anchor returns the frozen selection scope, or an empty range and
// false when searching the whole buffer.
func (e *Engine) Anchor() (buffer.Range, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.anchor == nil {
		return buffer.Range{}, false
	}
	return *e.anchor, true
}

// Matches returns a copy of the current match set.
func (e *Engine) Matches() []Match {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]Match, len(e.matches))
	copy(out, e.matches)
	return out
}

// CurrentIndex returns the 0-based index of the selected match, -1
// when none is selected.
func (e *Engine) CurrentIndex() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.current
}

// scopeLocked resolves the active scope: the substring to scan and its
// absolute offset. Callers must hold e.mu.
func (e *Engine) scopeLocked() (string, int) {
	content := e.buf.Text()
	if !e.cfg.SelectionOnly {
		return content, 0
	}

	// Lazily capture an anchor if the mode is on but none was recorded
	// when it was enabled.
	if e.anchor == nil {
		if sel := e.buf.Selection(); sel.End > sel.Start {
			e.anchor = &sel
		}
	}

	if e.anchor != nil && e.anchor.End > e.anchor.Start {
		r := e.anchor.Clamp(len(content))
		return content[r.Start:r.End], r.Start
	}
	return content, 0
}

// scanMatches collects every non-overlapping, non-zero-length match in
// text, offsetting indices by offset. Zero-width matches are skipped so
// regexes that can match empty always terminate without polluting the
// match set.
func scanMatches(re *regexp.Regexp, text string, offset int) []Match {
	var out []Match
	for _, loc := range re.FindAllStringIndex(text, -1) {
		if loc[1] == loc[0] {
			continue
		}
		out = append(out, Match{Index: offset + loc[0], Length: loc[1] - loc[0]})
	}
	return out
}

// Refresh recomputes the match set against the current buffer content,
// config, and scope. The current-match pointer resets; navigation is a
// separate step. On pattern compile failure the match set is cleared
// and an error wrapping ErrInvalidPattern is returned.
func (e *Engine) Refresh() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.refreshLocked()
}

func (e *Engine) refreshLocked() error {
	e.matches = nil
	e.current = -1

	if e.cfg.Query == "" {
		return nil
	}

	re, err := Compile(e.cfg)
	if err != nil {
		return err
	}

	text, offset := e.scopeLocked()
	e.matches = scanMatches(re, text, offset)
	return nil
}

// FindNext recomputes matches and advances to the next one, wrapping
// past the end. The buffer selection moves to the matched range.
func (e *Engine) FindNext() (Status, error) {
	return e.find(true)
}

// FindPrev recomputes matches and steps to the previous one, wrapping
// past the start.
func (e *Engine) FindPrev() (Status, error) {
	return e.find(false)
}

func (e *Engine) find(forward bool) (Status, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.cfg.Query == "" {
		return Status{Message: "Enter text to find"}, ErrEmptyQuery
	}

	// The buffer may have changed since the last scan; the pointer
	// survives the refresh so navigation continues from where it was.
	prev := e.current
	if err := e.refreshLocked(); err != nil {
		return Status{Message: "Invalid regex pattern"}, err
	}
	e.current = prev

	if len(e.matches) == 0 {
		e.current = -1
		return Status{Message: "No matches found"}, ErrNoMatch
	}

	if e.current >= len(e.matches) {
		e.current = len(e.matches) - 1
	}

	if forward {
		e.current = (e.current + 1) % len(e.matches)
	} else {
		if e.current <= 0 {
			e.current = len(e.matches) - 1
		} else {
			e.current--
		}
	}

	return e.selectCurrentLocked(), nil
}

// selectCurrentLocked moves the buffer selection to the current match
// and builds its status. Callers must hold e.mu with a valid current.
func (e *Engine) selectCurrentLocked() Status {
	m := e.matches[e.current]
	_ = e.buf.SetSelection(m.Range())

	frac := 0.0
	if n := e.buf.Len(); n > 0 {
		frac = float64(m.Index) / float64(n)
	}

	return Status{
		Message:        fmt.Sprintf("Match %d of %d", e.current+1, len(e.matches)),
		Current:        e.current + 1,
		Total:          len(e.matches),
		ScrollFraction: frac,
	}
}

// expandReplacement resolves the replacement text for a single matched
// string. In regex mode backreferences ($1, ${name}) are expanded
// against the match; otherwise the replacement is used verbatim.
func expandReplacement(re *regexp.Regexp, matchText, replacement string, useRegex bool) string {
	if !useRegex {
		return replacement
	}

	loc := re.FindStringSubmatchIndex(matchText)
	if loc == nil {
		return replacement
	}

	expanded := re.ExpandString(nil, replacement, matchText, loc)
	return matchText[:loc[0]] + string(expanded) + matchText[loc[1]:]
}

// ReplaceCurrent splices the replacement over the selected match, then
// recomputes the match set. When matches remain, the pointer clamps to
// the nearest remaining match and the selection moves there; when none
// remain, the selection collapses to a caret.
func (e *Engine) ReplaceCurrent(replacement string) (Status, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.current < 0 || e.current >= len(e.matches) {
		return Status{Message: "No match selected"}, ErrNoSelection
	}

	re, err := Compile(e.cfg)
	if err != nil {
		return Status{Message: "Invalid regex pattern"}, err
	}

	m := e.matches[e.current]
	matchText := e.buf.TextRange(m.Index, m.Index+m.Length)
	text := expandReplacement(re, matchText, replacement, e.cfg.UseRegex)

	if _, err := e.buf.Replace(m.Index, m.Index+m.Length, text); err != nil {
		return Status{}, err
	}

	prev := e.current
	if err := e.refreshLocked(); err != nil {
		return Status{Message: "Invalid regex pattern"}, err
	}

	if len(e.matches) == 0 {
		e.buf.CollapseSelection()
		return Status{Message: "All matches replaced"}, nil
	}

	e.current = prev
	if e.current >= len(e.matches) {
		e.current = len(e.matches) - 1
	}
	return e.selectCurrentLocked(), nil
}

// ReplaceAll substitutes every match in the active scope in a single
// bulk pass and reports the occurrence count. When the scope is a
// selection anchor, the anchor is updated to the replaced bounds so
// repeated scoped operations stay coherent.
func (e *Engine) ReplaceAll(replacement string) (Status, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.cfg.Query == "" {
		return Status{Message: "Enter text to find"}, ErrEmptyQuery
	}

	re, err := Compile(e.cfg)
	if err != nil {
		return Status{Message: "Invalid regex pattern"}, err
	}

	scopeText, offset := e.scopeLocked()
	count := len(re.FindAllString(scopeText, -1))
	if count == 0 {
		return Status{Message: "No matches found"}, ErrNoMatch
	}

	var replaced string
	if e.cfg.UseRegex {
		replaced = re.ReplaceAllString(scopeText, replacement)
	} else {
		replaced = re.ReplaceAllLiteralString(scopeText, replacement)
	}

	scoped := offset != 0 || len(scopeText) != e.buf.Len()
	if _, err := e.buf.Replace(offset, offset+len(scopeText), replaced); err != nil {
		return Status{}, err
	}

	if scoped && e.cfg.SelectionOnly && e.anchor != nil {
		e.anchor = &buffer.Range{Start: offset, End: offset + len(replaced)}
	}

	if err := e.refreshLocked(); err != nil {
		return Status{Message: "Invalid regex pattern"}, err
	}
	e.buf.CollapseSelection()

	plural := "s"
	if count == 1 {
		plural = ""
	}
	return Status{
		Message: fmt.Sprintf("Replaced %d occurrence%s", count, plural),
		Total:   len(e.matches),
	}, nil
}

// Clear resets the query, match set, and scope anchor, and collapses
// the buffer selection.
func (e *Engine) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.cfg.Query = ""
	e.matches = nil
	e.current = -1
	e.anchor = nil
	e.buf.CollapseSelection()
}
