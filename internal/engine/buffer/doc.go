// Package buffer provides the flat text buffer underlying the editor.
// It holds the full document content as a string together with the
// current selection range, and is the substrate every other engine
// component reads and writes.
//
// The buffer package provides:
//
//   - Thread-safe read/write access via sync.RWMutex
//   - Splice-style editing (insert, delete, replace by byte range)
//   - A selection range clamped to the content on every mutation
//   - Revision tracking for change management
//
// Basic usage:
//
//	buf := buffer.NewBufferFromString("Hello, World!")
//	buf.Replace(7, 12, "Go")   // "Hello, Go!"
//	buf.SetSelection(buffer.Range{Start: 0, End: 5})
//
// Offsets are byte offsets into the content. After any mutation that
// changes the content length, structures derived from offsets (search
// matches, selection anchors) must be recomputed by their owners; the
// buffer only guarantees its own selection stays in bounds.
package buffer
