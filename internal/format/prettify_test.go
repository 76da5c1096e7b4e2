package format

import "testing"

func TestPrettifyHeadingSpacing(t *testing.T) {
	got := Prettify("intro\n## Section\nbody\n")
	want := "intro\n\n## Section\n\nbody\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPrettifyBulletMarkers(t *testing.T) {
	got := Prettify("* one\n+ two\n- three\n")
	want := "- one\n- two\n- three\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPrettifyOrderedListSpacing(t *testing.T) {
	got := Prettify("  1. one\n\t2. two\n")
	want := "1. one\n2. two\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPrettifyTrailingWhitespace(t *testing.T) {
	got := Prettify("line   \nnext\t\n")
	want := "line\nnext\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPrettifyBlankRunCollapse(t *testing.T) {
	got := Prettify("a\n\n\n\n\nb\n")
	want := "a\n\nb\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPrettifyExactlyOneTrailingNewline(t *testing.T) {
	if got := Prettify("text"); got != "text\n" {
		t.Errorf("missing newline should be added, got %q", got)
	}
	if got := Prettify("text\n\n\n"); got != "text\n" {
		t.Errorf("extra newlines should collapse, got %q", got)
	}
}

func TestPrettifyCRLFNormalized(t *testing.T) {
	got := Prettify("a\r\nb\r\n")
	want := "a\nb\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPrettifyIdempotent(t *testing.T) {
	inputs := []string{
		"intro\n## Section\nbody\n* item\n1.  x\n\n\n\nend   \n",
		"# Title\n\ntext\n",
		"* a\n* b\ntext\n#### Deep\nmore\n\n\n",
	}

	for _, in := range inputs {
		once := Prettify(in)
		twice := Prettify(once)
		if once != twice {
			t.Errorf("second prettify changed output:\nonce:  %q\ntwice: %q", once, twice)
		}
	}
}

func TestPrettifierRoundTrip(t *testing.T) {
	original := "messy   \n\n\n\n* list\n## Heading\nbody"

	var p Prettifier
	pretty, ok := p.Prettify(original)
	if !ok {
		t.Fatal("prettify should apply to non-blank content")
	}
	if pretty == original {
		t.Fatal("content should have changed")
	}

	restored, ok := p.Undo()
	if !ok {
		t.Fatal("undo should be available after prettify")
	}
	if restored != original {
		t.Errorf("round trip mismatch: got %q, want %q", restored, original)
	}

	if p.CanUndo() {
		t.Error("undo slot should be cleared after use")
	}
	if _, ok := p.Undo(); ok {
		t.Error("second undo should report nothing held")
	}
}

func TestPrettifierBlankContentNoOp(t *testing.T) {
	var p Prettifier

	got, ok := p.Prettify("   \n\n  ")
	if ok {
		t.Error("blank content should not prettify")
	}
	if got != "   \n\n  " {
		t.Errorf("blank content should be returned unchanged, got %q", got)
	}
	if p.CanUndo() {
		t.Error("blank prettify should not record a snapshot")
	}
}

func TestPrettifierSecondPrettifyOverwritesSlot(t *testing.T) {
	var p Prettifier

	first, _ := p.Prettify("a   \nb")
	second, _ := p.Prettify(first + "extra   ")

	restored, ok := p.Undo()
	if !ok {
		t.Fatal("undo should be available")
	}
	if restored != first+"extra   " {
		t.Errorf("slot should hold the most recent input, got %q", restored)
	}
	_ = second
}
