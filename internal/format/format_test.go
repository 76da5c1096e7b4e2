package format

import (
	"errors"
	"strings"
	"testing"
)

func TestApplyBoldWithSelection(t *testing.T) {
	edit, err := Apply(FormatBold, "word")
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	if edit.Replacement != "**word**" {
		t.Errorf("expected '**word**', got %q", edit.Replacement)
	}
	if edit.Cursor != len("**word**") {
		t.Errorf("caret should land after closing markers, got %d", edit.Cursor)
	}
}

func TestApplyBoldPlaceholder(t *testing.T) {
	edit, err := Apply(FormatBold, "")
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	if edit.Replacement != "**bold text**" {
		t.Errorf("expected placeholder, got %q", edit.Replacement)
	}
	if edit.Cursor != 2 {
		t.Errorf("caret should land inside the markers, got %d", edit.Cursor)
	}
}

func TestApplyWrapFormats(t *testing.T) {
	tests := []struct {
		format      Format
		selected    string
		replacement string
		cursor      int
	}{
		{FormatItalic, "x", "*x*", 3},
		{FormatItalic, "", "*italic text*", 1},
		{FormatStrike, "x", "~~x~~", 5},
		{FormatHighlight, "", "==highlight==", 2},
		{FormatCode, "run()", "`run()`", 7},
		{FormatCode, "", "`code`", 1},
	}

	for _, tt := range tests {
		edit, err := Apply(tt.format, tt.selected)
		if err != nil {
			t.Fatalf("%s: %v", tt.format, err)
		}
		if edit.Replacement != tt.replacement {
			t.Errorf("%s: got %q, want %q", tt.format, edit.Replacement, tt.replacement)
		}
		if edit.Cursor != tt.cursor {
			t.Errorf("%s: cursor %d, want %d", tt.format, edit.Cursor, tt.cursor)
		}
	}
}

func TestApplyLink(t *testing.T) {
	edit, err := Apply(FormatLink, "docs")
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	if edit.Replacement != "[docs](url)" {
		t.Errorf("got %q", edit.Replacement)
	}
	// Caret on "url" so the destination can be typed immediately.
	if edit.Cursor != len("[docs](url)")-4 {
		t.Errorf("cursor %d, want %d", edit.Cursor, len("[docs](url)")-4)
	}
}

func TestApplyImagePlaceholder(t *testing.T) {
	edit, err := Apply(FormatImage, "")
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if edit.Replacement != "![alt text](url)" {
		t.Errorf("got %q", edit.Replacement)
	}
	if edit.Cursor != 2 {
		t.Errorf("cursor %d, want 2", edit.Cursor)
	}
}

func TestApplyHeadings(t *testing.T) {
	for level, f := range map[int]Format{1: FormatH1, 2: FormatH2, 3: FormatH3, 4: FormatH4, 5: FormatH5} {
		edit, err := Apply(f, "Title")
		if err != nil {
			t.Fatalf("%s: %v", f, err)
		}
		want := strings.Repeat("#", level) + " Title"
		if edit.Replacement != want {
			t.Errorf("%s: got %q, want %q", f, edit.Replacement, want)
		}
	}
}

func TestApplyListFormatsMultiline(t *testing.T) {
	edit, err := Apply(FormatUL, "one\ntwo\nthree")
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if edit.Replacement != "- one\n- two\n- three" {
		t.Errorf("got %q", edit.Replacement)
	}

	edit, err = Apply(FormatOL, "one\ntwo")
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if edit.Replacement != "1. one\n2. two" {
		t.Errorf("got %q", edit.Replacement)
	}

	edit, err = Apply(FormatTask, "a\nb")
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if edit.Replacement != "- [ ] a\n- [ ] b" {
		t.Errorf("got %q", edit.Replacement)
	}
}

func TestApplyFootnote(t *testing.T) {
	edit, err := Apply(FormatFootnote, "claim")
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if edit.Replacement != "claim[^1]" {
		t.Errorf("got %q", edit.Replacement)
	}

	edit, err = Apply(FormatFootnote, "")
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if edit.Replacement != "[^1]" {
		t.Errorf("got %q", edit.Replacement)
	}
}

func TestApplyCodeBlock(t *testing.T) {
	edit, err := Apply(FormatCodeBlock, "")
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if edit.Cursor != 13 {
		t.Errorf("placeholder caret should sit on the code line, got %d", edit.Cursor)
	}

	edit, err = Apply(FormatCodeBlock, "x := 1")
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if edit.Replacement != "```javascript\nx := 1\n```" {
		t.Errorf("got %q", edit.Replacement)
	}
}

func TestApplyDetailsCursorOnContent(t *testing.T) {
	edit, err := Apply(FormatDetails, "")
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if edit.Replacement[edit.Cursor:edit.Cursor+len("Content here")] != "Content here" {
		t.Errorf("caret should sit on the content placeholder, got %d", edit.Cursor)
	}
}

func TestApplyUnknownFormat(t *testing.T) {
	if _, err := Apply(Format("wiggle"), "x"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
}
