// Package preview renders document content to HTML for the live
// preview pane and computes the word-count footer statistics.
package preview

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// ErrRender wraps a panic recovered from the markdown renderer.
var ErrRender = errors.New("markdown render failed")

const (
	// PlaceholderHTML fills the pane for a blank document.
	PlaceholderHTML = `<div class="preview-placeholder"><p>Your formatted markdown will appear here...</p></div>`

	// ErrorHTML fills the pane when rendering fails. A render failure
	// never interrupts editing.
	ErrorHTML = `<div class="preview-placeholder"><p class="preview-error">Error parsing markdown</p></div>`
)

// Render produces the preview pane HTML for the given content. Blank
// content yields the placeholder and a failed render yields the error
// placeholder; neither is reported as a fault.
func Render(content string) string {
	if strings.TrimSpace(content) == "" {
		return PlaceholderHTML
	}

	out, err := RenderHTML(content)
	if err != nil {
		return ErrorHTML
	}
	return out
}

// RenderHTML converts markdown to HTML. A parser or renderer panic is
// recovered and returned as an ErrRender-wrapped error.
//
// Parser instances are single-use, so each call builds a fresh one.
func RenderHTML(content string) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrRender, r)
		}
	}()

	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	r := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})

	return string(markdown.ToHTML([]byte(content), p, r)), nil
}
