package format

import (
	"regexp"
	"strings"
	"sync"
)

var (
	headingBeforeRe = regexp.MustCompile(`([^\n])\n(#{1,6} .+)`)
	headingAfterRe  = regexp.MustCompile("(#{1,6} .+)\n([^\n#])")
	bulletMarkerRe  = regexp.MustCompile(`(?m)^[ \t]*[*+-] `)
	orderedSpaceRe  = regexp.MustCompile(`(?m)^[ \t]*(\d+)\. `)
	trailingSpaceRe = regexp.MustCompile(`(?m)[ \t]+$`)
	blankRunRe      = regexp.MustCompile(`\n{3,}`)
)

// Prettify runs the structural normalization pipeline in fixed order:
// CRLF to LF, one blank line around headings, bullet markers collapsed
// to "-", ordered-list spacing normalized, trailing whitespace
// stripped, blank-line runs capped at two, and exactly one trailing
// newline. The pipeline is idempotent after its first application.
func Prettify(content string) string {
	s := strings.ReplaceAll(content, "\r\n", "\n")

	s = headingBeforeRe.ReplaceAllString(s, "$1\n\n$2")
	s = headingAfterRe.ReplaceAllString(s, "$1\n\n$2")

	s = bulletMarkerRe.ReplaceAllString(s, "- ")
	s = orderedSpaceRe.ReplaceAllString(s, "$1. ")

	s = trailingSpaceRe.ReplaceAllString(s, "")
	s = blankRunRe.ReplaceAllString(s, "\n\n")

	return strings.TrimRight(s, "\n") + "\n"
}

// Prettifier pairs Prettify with its single-slot undo snapshot: only
// the immediately preceding prettify can be reverted, and a second
// prettify before undo overwrites the slot.
type Prettifier struct {
	mu       sync.Mutex
	snapshot *string
}

// Prettify normalizes content and records it in the undo slot. Blank
// content is returned unchanged without touching the slot.
func (p *Prettifier) Prettify(content string) (string, bool) {
	if strings.TrimSpace(content) == "" {
		return content, false
	}

	p.mu.Lock()
	p.snapshot = &content
	p.mu.Unlock()

	return Prettify(content), true
}

// Undo returns the content captured by the last Prettify call and
// clears the slot. The second value is false when no snapshot is held.
func (p *Prettifier) Undo() (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.snapshot == nil {
		return "", false
	}

	s := *p.snapshot
	p.snapshot = nil
	return s, true
}

// CanUndo reports whether a prettify snapshot is held.
func (p *Prettifier) CanUndo() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshot != nil
}
