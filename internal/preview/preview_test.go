package preview

import (
	"strings"
	"testing"
)

func TestRenderBlankContent(t *testing.T) {
	if got := Render("   \n\n  "); got != PlaceholderHTML {
		t.Errorf("blank content should render the placeholder, got %q", got)
	}
}

func TestRenderHeading(t *testing.T) {
	out := Render("# Title\n\nbody text\n")

	if !strings.Contains(out, "<h1") || !strings.Contains(out, "Title") {
		t.Errorf("expected an h1, got %q", out)
	}
	if !strings.Contains(out, "<p>body text</p>") {
		t.Errorf("expected a paragraph, got %q", out)
	}
}

func TestRenderCodeFence(t *testing.T) {
	out := Render("```go\nx := 1\n```\n")
	if !strings.Contains(out, "<code") {
		t.Errorf("expected a code block, got %q", out)
	}
}

func TestRenderHTMLNoError(t *testing.T) {
	out, err := RenderHTML("plain text")
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(out, "plain text") {
		t.Errorf("got %q", out)
	}
}

func TestCountStats(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Stats
	}{
		{"empty", "", Stats{Words: 0, Chars: 0, Lines: 1}},
		{"whitespace only", "  \n ", Stats{Words: 0, Chars: 4, Lines: 2}},
		{"simple", "one two three", Stats{Words: 3, Chars: 13, Lines: 1}},
		{"multiline", "a b\nc\n", Stats{Words: 3, Chars: 6, Lines: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Count(tt.content); got != tt.want {
				t.Errorf("Count(%q) = %+v, want %+v", tt.content, got, tt.want)
			}
		})
	}
}

func TestCountGraphemes(t *testing.T) {
	// The flag emoji is one visible character across several runes.
	s := "hi \U0001F1EB\U0001F1F7"
	got := Count(s)
	if got.Chars != 4 {
		t.Errorf("expected 4 grapheme clusters, got %d", got.Chars)
	}
	if got.Words != 2 {
		t.Errorf("expected 2 words, got %d", got.Words)
	}
}
