// Package lint evaluates structural rules over a markdown document.
// Rule evaluation is stateless: each run scans the full content line by
// line, skipping text inside fenced code blocks, and produces a fresh
// issue list. Nothing is persisted between runs.
package lint

import (
	"fmt"
	"regexp"
	"strings"
)

// Rule identifies a lint rule.
type Rule string

// Toggleable rules, named after their markdownlint equivalents.
const (
	RuleMD001 Rule = "MD001" // heading levels increment by one
	RuleMD013 Rule = "MD013" // line length
	RuleMD022 Rule = "MD022" // headings surrounded by blank lines
	RuleMD041 Rule = "MD041" // first line is a top-level heading
	RuleMD047 Rule = "MD047" // file ends with a single newline

	// RuleStyle tags the always-on formatting checks from Validate.
	RuleStyle Rule = "style"
)

// DefaultMaxLineLength is the MD013 threshold when none is configured.
const DefaultMaxLineLength = 120

// Issue is a single finding: the rule that fired, the 1-based line, and
// a human-readable message. Multiple issues may share a line.
type Issue struct {
	Rule    Rule
	Line    int
	Message string
}

// Config selects which rules run and tunes their thresholds.
type Config struct {
	Enabled       map[Rule]bool
	MaxLineLength int
}

// DefaultConfig enables every rule at the default line length.
func DefaultConfig() Config {
	return Config{
		Enabled: map[Rule]bool{
			RuleMD001: true,
			RuleMD013: true,
			RuleMD022: true,
			RuleMD041: true,
			RuleMD047: true,
		},
		MaxLineLength: DefaultMaxLineLength,
	}
}

func (c Config) enabled(r Rule) bool {
	return c.Enabled[r]
}

func (c Config) maxLineLength() int {
	if c.MaxLineLength > 0 {
		return c.MaxLineLength
	}
	return DefaultMaxLineLength
}

// fenceState tracks open code fences while scanning. The two fence
// kinds are mutually exclusive: while one kind is open, lines of the
// other kind are ordinary fenced content.
type fenceState struct {
	backtick     bool
	tilde        bool
	backtickLine int
	tildeLine    int
}

// consume feeds one line through the fence tracker and reports whether
// the line was a fence delimiter or fenced content (both skipped by
// rule checks).
func (f *fenceState) consume(line string, lineNumber int) bool {
	trimmed := strings.TrimSpace(line)

	if strings.HasPrefix(trimmed, "```") && !f.tilde {
		if f.backtick {
			f.backtick = false
		} else {
			f.backtick = true
			f.backtickLine = lineNumber
		}
		return true
	}

	if strings.HasPrefix(trimmed, "~~~") && !f.backtick {
		if f.tilde {
			f.tilde = false
		} else {
			f.tilde = true
			f.tildeLine = lineNumber
		}
		return true
	}

	return f.backtick || f.tilde
}

var (
	headingRe      = regexp.MustCompile(`^(#{1,6})\s+`)
	firstHeadingRe = regexp.MustCompile(`^#\s+`)
)

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// Lint runs the enabled rules over content and returns the issues in
// document order per rule pass.
func Lint(content string, cfg Config) []Issue {
	lines := strings.Split(content, "\n")
	var issues []Issue

	if cfg.enabled(RuleMD041) {
		issues = append(issues, checkFirstHeading(lines)...)
	}

	var fences fenceState
	previousHeadingLevel := 0

	for i, line := range lines {
		lineNumber := i + 1
		if fences.consume(line, lineNumber) {
			continue
		}

		normalized := strings.TrimLeft(line, " \t")
		if m := headingRe.FindStringSubmatch(normalized); m != nil {
			level := len(m[1])

			if cfg.enabled(RuleMD001) && previousHeadingLevel != 0 && level > previousHeadingLevel+1 {
				issues = append(issues, Issue{
					Rule: RuleMD001,
					Line: lineNumber,
					Message: fmt.Sprintf(
						"Heading levels should only increment by one level at a time (found H%d after H%d).",
						level, previousHeadingLevel),
				})
			}
			previousHeadingLevel = level

			if cfg.enabled(RuleMD022) {
				if i > 0 && !isBlank(lines[i-1]) {
					issues = append(issues, Issue{
						Rule:    RuleMD022,
						Line:    lineNumber,
						Message: "Headings should be preceded by a blank line.",
					})
				}
				if i < len(lines)-1 && !isBlank(lines[i+1]) {
					issues = append(issues, Issue{
						Rule:    RuleMD022,
						Line:    lineNumber,
						Message: "Headings should be followed by a blank line.",
					})
				}
			}
		}

		if cfg.enabled(RuleMD013) && len(line) > cfg.maxLineLength() {
			issues = append(issues, Issue{
				Rule: RuleMD013,
				Line: lineNumber,
				Message: fmt.Sprintf("Line length (%d) exceeds maximum of %d.",
					len(line), cfg.maxLineLength()),
			})
		}
	}

	if cfg.enabled(RuleMD047) && len(content) > 0 && !strings.HasSuffix(content, "\n") {
		issues = append(issues, Issue{
			Rule:    RuleMD047,
			Line:    len(lines),
			Message: "File should end with a single newline.",
		})
	}

	return issues
}

// checkFirstHeading implements MD041: the first non-blank line must be
// a top-level heading.
func checkFirstHeading(lines []string) []Issue {
	for i, line := range lines {
		if isBlank(line) {
			continue
		}
		if !firstHeadingRe.MatchString(line) {
			return []Issue{{
				Rule:    RuleMD041,
				Line:    i + 1,
				Message: "First line should be a top-level heading (# ...).",
			}}
		}
		return nil
	}
	return nil
}
