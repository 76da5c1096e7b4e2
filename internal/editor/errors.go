package editor

import "errors"

// Session-level errors. Every failure path leaves buffer, match, and
// history state internally consistent; none is fatal.
var (
	// ErrInvalidFile rejects an upload with a bad extension or MIME
	// type. The buffer is not mutated.
	ErrInvalidFile = errors.New("invalid file")

	// ErrRead wraps a failure reading an uploaded file.
	ErrRead = errors.New("read error")

	// ErrEmptyDocument is returned by export and copy when there is
	// nothing to act on.
	ErrEmptyDocument = errors.New("document is empty")

	// ErrClipboard wraps a clipboard write failure.
	ErrClipboard = errors.New("clipboard write failed")

	// ErrConfirmPending rejects a destructive action while another
	// confirmation dialog is still open.
	ErrConfirmPending = errors.New("confirmation already in flight")
)
