package lint

import (
	"regexp"
	"strings"
)

var (
	bareHeadingRe   = regexp.MustCompile(`^#{1,6}`)
	spacedHeadingRe = regexp.MustCompile(`^#{1,6}\s`)
	listMarkerRe    = regexp.MustCompile(`^[ \t]*[*+-]`)
	orderedRe       = regexp.MustCompile(`^[ \t]*\d+\.`)
	blockquoteRe    = regexp.MustCompile(`^[ \t]*>`)
	spacedQuoteRe   = regexp.MustCompile(`^[ \t]*>\s`)
	taskBoxRe       = regexp.MustCompile(`^[ \t]*-\s\[[ xX]\]`)
	spacedTaskRe    = regexp.MustCompile(`^[ \t]*-\s\[[ xX]\]\s`)
	leadingTabsRe   = regexp.MustCompile(`^\t+`)
	trailingWSRe    = regexp.MustCompile(`[ \t]+$`)
	emptyLinkRe     = regexp.MustCompile(`\[[^\]]+\]\(\s*\)`)
)

// Validate runs the always-on formatting checks: marker spacing,
// leading tabs, heavy trailing whitespace, empty link destinations, and
// unclosed code fences. These are style nits rather than toggleable
// rules; every issue is tagged RuleStyle.
func Validate(content string) []Issue {
	lines := strings.Split(content, "\n")
	var issues []Issue
	var fences fenceState

	add := func(line int, message string) {
		issues = append(issues, Issue{Rule: RuleStyle, Line: line, Message: message})
	}

	for i, line := range lines {
		lineNumber := i + 1
		if fences.consume(line, lineNumber) {
			continue
		}

		normalized := strings.TrimLeft(line, " \t")

		if bareHeadingRe.MatchString(normalized) && !spacedHeadingRe.MatchString(normalized) {
			add(lineNumber, "Add a space after the # characters in headings.")
		}

		if m := listMarkerRe.FindString(line); m != "" && !isRepeatedMarker(line, m) {
			remainder := line[len(m):]
			if strings.TrimSpace(remainder) != "" && !startsWithSpace(remainder) {
				add(lineNumber, "List markers (-, *, +) need a space before the text.")
			}
		}

		if m := orderedRe.FindString(line); m != "" {
			remainder := line[len(m):]
			if strings.TrimSpace(remainder) != "" && !startsWithSpace(remainder) {
				add(lineNumber, "Numbered lists need a space after the period.")
			}
		}

		if blockquoteRe.MatchString(normalized) && !spacedQuoteRe.MatchString(normalized) {
			add(lineNumber, "Add a space after the blockquote (>) marker.")
		}

		if taskBoxRe.MatchString(line) && !spacedTaskRe.MatchString(line) {
			add(lineNumber, "Add a space after task list checkboxes.")
		}

		if leadingTabsRe.MatchString(line) {
			add(lineNumber, "Replace leading tabs with spaces for consistent rendering.")
		}

		if ws := trailingWSRe.FindString(line); len(ws) > 2 {
			add(lineNumber, "Remove trailing spaces at the end of the line.")
		}

		if emptyLinkRe.MatchString(line) {
			add(lineNumber, "Links should contain a destination URL.")
		}
	}

	if fences.backtick {
		add(fences.backtickLine, "Code fence opened with ``` is not closed.")
	}
	if fences.tilde {
		add(fences.tildeLine, "Code fence opened with ~~~ is not closed.")
	}

	return issues
}

// isRepeatedMarker reports whether the matched list marker is actually
// a doubled punctuation run (**, ++, --) such as a bold marker or
// horizontal rule, which is not a list item.
func isRepeatedMarker(line, match string) bool {
	marker := match[len(match)-1]
	return len(line) > len(match) && line[len(match)] == marker
}

func startsWithSpace(s string) bool {
	return s != "" && (s[0] == ' ' || s[0] == '\t' || s[0] == '\n' || s[0] == '\r')
}
