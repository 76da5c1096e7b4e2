package search

import (
	"errors"
	"fmt"
	"regexp"
)

// Common errors.
var (
	ErrInvalidPattern = errors.New("invalid regex pattern")
	ErrEmptyQuery     = errors.New("empty search query")
	ErrNoMatch        = errors.New("no matches found")
	ErrNoSelection    = errors.New("no match selected")
)

// Config describes a search: the query text and the matching modes.
// WholeWord and UseRegex are mutually exclusive; enabling regex mode
// forces whole-word matching off.
type Config struct {
	Query         string
	CaseSensitive bool
	WholeWord     bool
	UseRegex      bool
	SelectionOnly bool
}

// normalized returns the config with the mutual-exclusion rule applied.
func (c Config) normalized() Config {
	if c.UseRegex {
		c.WholeWord = false
	}
	return c
}

// Compile compiles the config into a regex pattern. Pattern compilation
// is total: malformed regex syntax is returned as an error wrapping
// ErrInvalidPattern, never a fault.
func Compile(cfg Config) (*regexp.Regexp, error) {
	cfg = cfg.normalized()
	pattern := cfg.Query

	// Escape regex special characters if not using regex mode
	if !cfg.UseRegex {
		pattern = regexp.QuoteMeta(pattern)
	}

	// Add word boundaries if whole word matching
	if cfg.WholeWord {
		pattern = `\b` + pattern + `\b`
	}

	// Add case-insensitive flag if not case-sensitive
	if !cfg.CaseSensitive {
		pattern = "(?i)" + pattern
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}

	return re, nil
}
