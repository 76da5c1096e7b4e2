package search

import "testing"

func TestReplacePreviewSamples(t *testing.T) {
	e := newEngine(t, "alpha cat beta cat gamma cat delta", Config{Query: "cat"})

	samples, total := e.ReplacePreview("dog", 2)
	if total != 3 {
		t.Fatalf("total = %d, want 3", total)
	}
	if len(samples) != 2 {
		t.Fatalf("len(samples) = %d, want limit 2", len(samples))
	}

	first := samples[0]
	if first.Match != "cat" || first.Replace != "dog" {
		t.Errorf("sample = %+v", first)
	}
	if first.Before != "alpha " {
		t.Errorf("before context = %q", first.Before)
	}
	if first.After != " beta cat gamma ca" {
		t.Errorf("after context should span the radius, got %q", first.After)
	}
}

func TestReplacePreviewContextClampedAtEdges(t *testing.T) {
	e := newEngine(t, "cat", Config{Query: "cat"})

	samples, total := e.ReplacePreview("dog", 4)
	if total != 1 || len(samples) != 1 {
		t.Fatalf("samples = %v, total = %d", samples, total)
	}
	if samples[0].Before != "" || samples[0].After != "" {
		t.Errorf("context at document edges should be empty, got %+v", samples[0])
	}
}

func TestReplacePreviewRegexBackreference(t *testing.T) {
	e := newEngine(t, "id=42 id=7", Config{Query: `id=(\d+)`, UseRegex: true})

	samples, total := e.ReplacePreview("num:$1", 4)
	if total != 2 {
		t.Fatalf("total = %d", total)
	}
	if samples[0].Replace != "num:42" {
		t.Errorf("backreference should expand, got %q", samples[0].Replace)
	}
	if samples[1].Replace != "num:7" {
		t.Errorf("got %q", samples[1].Replace)
	}
}

func TestReplacePreviewNoMatches(t *testing.T) {
	e := newEngine(t, "nothing here", Config{Query: "zzz"})

	samples, total := e.ReplacePreview("x", 4)
	if total != 0 || samples != nil {
		t.Errorf("samples = %v, total = %d", samples, total)
	}
}
