// Package format provides the stateless text transforms behind the
// formatting toolbar: inline markup wrapping, block prefixes, and the
// prettify normalization pipeline.
package format

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFormat is returned for an unrecognized format tag.
var ErrUnknownFormat = errors.New("unknown format")

// Format tags the markup transform to apply.
type Format string

const (
	FormatBold      Format = "bold"
	FormatItalic    Format = "italic"
	FormatStrike    Format = "strike"
	FormatHighlight Format = "highlight"
	FormatCode      Format = "code"
	FormatLink      Format = "link"
	FormatImage     Format = "image"
	FormatH1        Format = "h1"
	FormatH2        Format = "h2"
	FormatH3        Format = "h3"
	FormatH4        Format = "h4"
	FormatH5        Format = "h5"
	FormatQuote     Format = "quote"
	FormatUL        Format = "ul"
	FormatOL        Format = "ol"
	FormatTask      Format = "task"
	FormatFootnote  Format = "footnote"
	FormatCodeBlock Format = "codeblock"
	FormatTable     Format = "table"
	FormatHR        Format = "hr"
	FormatDetails   Format = "details"
)

// Edit is the outcome of a formatting operation: the text that replaces
// the selection and the caret offset relative to the selection start.
//
// The cursor placement is a fixed per-format table, not a single rule:
// wrapping formats place the caret after the markup when text was
// selected but inside the markers when the placeholder was inserted,
// so the user can type over the placeholder immediately.
type Edit struct {
	Replacement string
	Cursor      int
}

const tableSkeleton = "| Column 1 | Column 2 | Column 3 |\n" +
	"|----------|----------|----------|\n" +
	"| Cell 1   | Cell 2   | Cell 3   |\n" +
	"| Cell 4   | Cell 5   | Cell 6   |"

// Apply builds the replacement for the selected text under the given
// format. An empty selection substitutes a placeholder.
func Apply(f Format, selected string) (Edit, error) {
	switch f {
	case FormatBold:
		return wrap(selected, "**", "**", "bold text", 2), nil
	case FormatItalic:
		return wrap(selected, "*", "*", "italic text", 1), nil
	case FormatStrike:
		return wrap(selected, "~~", "~~", "strikethrough text", 2), nil
	case FormatHighlight:
		return wrap(selected, "==", "==", "highlight", 2), nil
	case FormatCode:
		return wrap(selected, "`", "`", "code", 1), nil

	case FormatLink:
		text := placeholder(selected, "link text")
		r := fmt.Sprintf("[%s](url)", text)
		if selected != "" {
			// Caret lands on "url" so the destination is typed next.
			return Edit{Replacement: r, Cursor: len(r) - 4}, nil
		}
		return Edit{Replacement: r, Cursor: 1}, nil
	case FormatImage:
		text := placeholder(selected, "alt text")
		r := fmt.Sprintf("![%s](url)", text)
		if selected != "" {
			return Edit{Replacement: r, Cursor: len(r) - 4}, nil
		}
		return Edit{Replacement: r, Cursor: 2}, nil

	case FormatH1, FormatH2, FormatH3, FormatH4, FormatH5:
		level := int(f[1] - '0')
		text := placeholder(selected, fmt.Sprintf("Heading %d", level))
		r := strings.Repeat("#", level) + " " + text
		return Edit{Replacement: r, Cursor: len(r)}, nil

	case FormatQuote:
		r := "> " + placeholder(selected, "Quote text")
		return Edit{Replacement: r, Cursor: len(r)}, nil

	case FormatUL:
		return linePrefix(selected, func(int) string { return "- " },
			"- List item 1\n- List item 2\n- List item 3"), nil
	case FormatOL:
		return linePrefix(selected, func(i int) string { return fmt.Sprintf("%d. ", i+1) },
			"1. List item 1\n2. List item 2\n3. List item 3"), nil
	case FormatTask:
		return linePrefix(selected, func(int) string { return "- [ ] " },
			"- [ ] Task 1\n- [ ] Task 2\n- [ ] Task 3"), nil

	case FormatFootnote:
		r := selected + "[^1]"
		return Edit{Replacement: r, Cursor: len(r)}, nil

	case FormatCodeBlock:
		body := placeholder(selected, "// Code here")
		r := "```javascript\n" + body + "\n```"
		if selected != "" {
			return Edit{Replacement: r, Cursor: len(r) - 4}, nil
		}
		return Edit{Replacement: r, Cursor: 13}, nil

	case FormatTable:
		return Edit{Replacement: tableSkeleton, Cursor: len(tableSkeleton)}, nil

	case FormatHR:
		return Edit{Replacement: "---", Cursor: 3}, nil

	case FormatDetails:
		summary := placeholder(selected, "Click to expand")
		r := "<details>\n<summary>" + summary + "</summary>\n\nContent here\n\n</details>"
		return Edit{Replacement: r, Cursor: strings.Index(r, "Content here")}, nil
	}

	return Edit{}, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// wrap surrounds the selection (or placeholder) with markers. With a
// real selection the caret lands after the closing marker; with the
// placeholder it lands just inside the opening marker.
func wrap(selected, open, close, fallback string, inside int) Edit {
	r := open + placeholder(selected, fallback) + close
	if selected != "" {
		return Edit{Replacement: r, Cursor: len(r)}
	}
	return Edit{Replacement: r, Cursor: inside}
}

// linePrefix applies a per-line prefix to every line of a multi-line
// selection independently, or inserts the placeholder list.
func linePrefix(selected string, prefix func(i int) string, fallback string) Edit {
	if selected == "" {
		return Edit{Replacement: fallback, Cursor: len(fallback)}
	}

	lines := strings.Split(selected, "\n")
	for i, line := range lines {
		lines[i] = prefix(i) + line
	}
	r := strings.Join(lines, "\n")
	return Edit{Replacement: r, Cursor: len(r)}
}

func placeholder(selected, fallback string) string {
	if selected != "" {
		return selected
	}
	return fallback
}
