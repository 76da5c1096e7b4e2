package editor

// Clipboard writes exported text to the system clipboard. Injected so
// tests and headless runs can substitute their own.
type Clipboard interface {
	WriteText(text string) error
}

// Confirmer presents a blocking yes/no confirmation to the user before
// a destructive operation proceeds. Only one confirmation may be in
// flight at a time; the session enforces this with an explicit guard.
type Confirmer interface {
	Confirm(title, message string) bool
}

// ConfirmFunc adapts a function to the Confirmer interface.
type ConfirmFunc func(title, message string) bool

// Confirm calls f.
func (f ConfirmFunc) Confirm(title, message string) bool { return f(title, message) }
