package history

import (
	"errors"
	"sync"
)

// Common errors for history operations.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// DefaultMaxEntries bounds the undo stack when no limit is configured.
const DefaultMaxEntries = 50

// History manages the undo/redo snapshot stacks for a buffer.
type History struct {
	mu sync.Mutex

	undoStack []string
	redoStack []string

	maxEntries int
}

// New creates a new history manager.
func New(maxEntries int) *History {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &History{maxEntries: maxEntries}
}

// Checkpoint pushes a content snapshot onto the undo stack and reports
// whether an entry was recorded. A snapshot equal to the current top is
// suppressed. Recording a checkpoint clears the redo stack.
func (h *History) Checkpoint(content string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if n := len(h.undoStack); n > 0 && h.undoStack[n-1] == content {
		return false
	}

	h.undoStack = append(h.undoStack, content)
	h.redoStack = nil

	if len(h.undoStack) > h.maxEntries {
		excess := len(h.undoStack) - h.maxEntries
		h.undoStack = h.undoStack[excess:]
	}

	return true
}

// Undo pops the current snapshot onto the redo stack and returns the
// prior snapshot to restore. At least two entries are required: the
// current state and one predecessor.
func (h *History) Undo() (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.undoStack) < 2 {
		return "", ErrNothingToUndo
	}

	current := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	h.redoStack = append(h.redoStack, current)

	return h.undoStack[len(h.undoStack)-1], nil
}

// Redo pops the most recently undone snapshot back onto the undo stack
// and returns it for restore.
func (h *History) Redo() (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.redoStack) == 0 {
		return "", ErrNothingToRedo
	}

	entry := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	h.undoStack = append(h.undoStack, entry)

	return entry, nil
}

// CanUndo returns true if undo is available.
func (h *History) CanUndo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undoStack) >= 2
}

// CanRedo returns true if redo is available.
func (h *History) CanRedo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.redoStack) > 0
}

// UndoCount returns the number of snapshots on the undo stack.
func (h *History) UndoCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undoStack)
}

// RedoCount returns the number of snapshots on the redo stack.
func (h *History) RedoCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.redoStack)
}

// Clear removes all undo/redo history.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.undoStack = nil
	h.redoStack = nil
}

// MaxEntries returns the maximum number of undo snapshots retained.
func (h *History) MaxEntries() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.maxEntries
}
