package preview

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Stats is the word-count footer: whitespace-separated words, visible
// characters (grapheme clusters, so emoji and combining sequences
// count once), and physical lines.
type Stats struct {
	Words int
	Chars int
	Lines int
}

// Count computes document statistics. An empty document still has one
// line.
func Count(content string) Stats {
	words := 0
	if trimmed := strings.TrimSpace(content); trimmed != "" {
		words = len(strings.Fields(trimmed))
	}

	return Stats{
		Words: words,
		Chars: uniseg.GraphemeClusterCount(content),
		Lines: strings.Count(content, "\n") + 1,
	}
}
