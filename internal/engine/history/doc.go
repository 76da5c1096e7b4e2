// Package history provides the linear undo stack for the editor.
//
// History holds whole-buffer snapshots rather than fine-grained edit
// operations: a checkpoint records the complete content, duplicates of
// the top entry are suppressed, and the stack is bounded with oldest
// entries evicted first. Checkpoints are taken on load, around
// formatting and template operations, and on a trailing-edge debounce
// of raw typing, so a burst of keystrokes yields one checkpoint.
package history
