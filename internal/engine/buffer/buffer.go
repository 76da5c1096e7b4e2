package buffer

import (
	"strings"
	"sync"
	"sync/atomic"
)

// revisionCounter backs NewRevisionID.
var revisionCounter atomic.Uint64

// RevisionID uniquely identifies a buffer revision within the process.
type RevisionID uint64

// NewRevisionID generates a new unique revision ID.
func NewRevisionID() RevisionID {
	return RevisionID(revisionCounter.Add(1))
}

// Buffer holds the full document text and the current selection.
// All methods are thread-safe. There is a single writer at a time by
// construction: the editor session mutates the buffer synchronously in
// response to one event at a time.
type Buffer struct {
	mu        sync.RWMutex
	content   string
	selection Range
	revision  RevisionID
}

// NewBuffer creates a new empty buffer.
func NewBuffer() *Buffer {
	return &Buffer{revision: NewRevisionID()}
}

// NewBufferFromString creates a buffer with initial content.
// The selection starts as a caret at offset 0.
func NewBufferFromString(s string) *Buffer {
	b := NewBuffer()
	b.content = s
	return b
}

// Read Operations

// Text returns the full buffer content.
func (b *Buffer) Text() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.content
}

// TextRange returns the text in the given byte range, clamped to the
// content bounds.
func (b *Buffer) TextRange(start, end ByteOffset) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	r := Range{Start: start, End: end}.Clamp(len(b.content))
	return b.content[r.Start:r.End]
}

// Len returns the total byte length of the content.
func (b *Buffer) Len() ByteOffset {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.content)
}

// IsEmpty returns true if the buffer holds no content.
func (b *Buffer) IsEmpty() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.content) == 0
}

// IsBlank returns true if the content is empty or whitespace only.
func (b *Buffer) IsBlank() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return strings.TrimSpace(b.content) == ""
}

// Selection returns the current selection range.
func (b *Buffer) Selection() Range {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.selection
}

// SelectedText returns the text covered by the current selection.
func (b *Buffer) SelectedText() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	r := b.selection.Clamp(len(b.content))
	return b.content[r.Start:r.End]
}

// RevisionID returns the current revision ID.
func (b *Buffer) RevisionID() RevisionID {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.revision
}

// Write Operations

// SetText replaces the entire content. The selection collapses to a
// caret at offset 0.
func (b *Buffer) SetText(s string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.content = s
	b.selection = Range{}
	b.revision = NewRevisionID()
}

// Insert inserts text at the given offset and returns the end offset of
// the inserted text.
func (b *Buffer) Insert(offset ByteOffset, text string) (ByteOffset, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if offset < 0 || offset > len(b.content) {
		return 0, ErrOffsetOutOfRange
	}

	b.content = b.content[:offset] + text + b.content[offset:]
	b.selection = b.selection.Clamp(len(b.content))
	b.revision = NewRevisionID()

	return offset + len(text), nil
}

// Delete removes text in the given range.
func (b *Buffer) Delete(start, end ByteOffset) error {
	_, err := b.Replace(start, end, "")
	return err
}

// Replace splices text into the given range and returns the end offset
// of the replacement text.
func (b *Buffer) Replace(start, end ByteOffset, text string) (ByteOffset, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if start < 0 || start > end || end > len(b.content) {
		return 0, ErrRangeInvalid
	}

	b.content = b.content[:start] + text + b.content[end:]
	b.selection = b.selection.Clamp(len(b.content))
	b.revision = NewRevisionID()

	return start + len(text), nil
}

// SetSelection sets the selection range, clamped to the content bounds.
func (b *Buffer) SetSelection(r Range) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !r.IsValid() {
		return ErrRangeInvalid
	}

	b.selection = r.Clamp(len(b.content))
	return nil
}

// SetCaret collapses the selection to a caret at the given offset.
func (b *Buffer) SetCaret(offset ByteOffset) error {
	return b.SetSelection(Range{Start: offset, End: offset})
}

// CollapseSelection collapses a non-empty selection to a caret at its
// start. A caret selection is left untouched.
func (b *Buffer) CollapseSelection() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.selection.IsEmpty() {
		b.selection = Range{Start: b.selection.Start, End: b.selection.Start}
	}
}
