package template

import (
	"errors"
	"strings"
	"testing"
	"time"
)

var testNow = time.Date(2026, 3, 14, 15, 9, 0, 0, time.UTC)

func TestCatalogCoversOrder(t *testing.T) {
	if len(Order) != 16 {
		t.Fatalf("expected 16 catalog sections, got %d", len(Order))
	}
	for _, s := range Order {
		body, err := Body(s)
		if err != nil {
			t.Errorf("%s: %v", s, err)
		}
		if body == "" {
			t.Errorf("%s: empty body", s)
		}
	}
}

func TestBodyUnknownSection(t *testing.T) {
	if _, err := Body(Section("nope")); !errors.Is(err, ErrUnknownSection) {
		t.Errorf("expected ErrUnknownSection, got %v", err)
	}
}

func TestRenderSubstitutesFields(t *testing.T) {
	got := Render("by {{username}} on {{date}}", map[string]string{"username": "ada"}, testNow)
	want := "by ada on 2026-03-14"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderFallsBackToDefaults(t *testing.T) {
	got := Render("{{licenseType}}", nil, testNow)
	if got != "MIT" {
		t.Errorf("empty field should use default, got %q", got)
	}
}

func TestRenderVerbatimNoEscaping(t *testing.T) {
	fields := map[string]string{"projectDesc": "uses <b>html</b> & *markdown*"}
	got := Render("{{projectDesc}}", fields, testNow)
	if got != "uses <b>html</b> & *markdown*" {
		t.Errorf("substitution must be verbatim, got %q", got)
	}
}

func TestRenderLeavesUnknownTokens(t *testing.T) {
	got := Render("{{mystery}}", nil, testNow)
	if got != "{{mystery}}" {
		t.Errorf("unknown token should survive, got %q", got)
	}
}

func TestRenderedCatalogHasNoLeftoverTokens(t *testing.T) {
	for _, s := range Order {
		body, _ := Body(s)
		rendered := Render(body, nil, testNow)
		if strings.Contains(rendered, "{{") {
			t.Errorf("%s: unresolved token in %q", s, rendered)
		}
	}
}

func TestAnalyzeDetectsHeadings(t *testing.T) {
	content := "# My Project\n\n## Installation\n\nsteps\n\n## License\n\nMIT\n"
	found := Analyze(content)

	if !found[SectionInstallation] {
		t.Error("installation heading should be detected")
	}
	if !found[SectionLicense] {
		t.Error("license heading should be detected")
	}
	if found[SectionDeployment] {
		t.Error("deployment should not be detected")
	}
}

func TestAnalyzeHeadingVariants(t *testing.T) {
	found := Analyze("## Getting Started\n\n## Requirements\n")
	if !found[SectionQuickstart] {
		t.Error("'Getting Started' should count as quickstart")
	}
	if !found[SectionPrerequisites] {
		t.Error("'Requirements' should count as prerequisites")
	}
}

func TestAnalyzeContentSignatures(t *testing.T) {
	content := "# X\n\n![Build Status](https://img.shields.io/badge/build-passing-brightgreen)\n"
	if !Analyze(content)[SectionBadges] {
		t.Error("shields.io image should count as badges")
	}
}

func TestAnalyzeIgnoresDeepHeadings(t *testing.T) {
	if Analyze("### Install\n")[SectionInstallation] {
		t.Error("an H3 heading should not count as a top-level section")
	}
}

func TestInsertionPointBeforeLaterSection(t *testing.T) {
	content := "## Description\n\ntext\n\n## License\n\nMIT\n"
	pos := InsertionPoint(content, SectionUsage)

	if content[pos:pos+10] != "## License" {
		t.Errorf("usage should land before license, got offset %d (%q)", pos, content[pos:])
	}
}

func TestInsertionPointAfterEarlierSection(t *testing.T) {
	content := "## Description\n\ntext\n"
	pos := InsertionPoint(content, SectionLicense)

	if pos != len(content) {
		t.Errorf("no later section: should append at end, got %d", pos)
	}
}

func TestInsertionPointNoNeighbors(t *testing.T) {
	content := "just prose with no sections\n"
	if pos := InsertionPoint(content, SectionUsage); pos != len(content) {
		t.Errorf("expected end of document, got %d", pos)
	}
}

func TestInsertIntoEmptyDocument(t *testing.T) {
	out, caret, err := Insert("", SectionLicense, nil, testNow)
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if !strings.HasPrefix(out, "## License") {
		t.Errorf("got %q", out)
	}
	if caret != 0 {
		t.Errorf("caret should be 0 in an empty document, got %d", caret)
	}
}

func TestInsertKeepsCanonicalOrder(t *testing.T) {
	content := "## Description\n\nA tool.\n\n## License\n\nMIT License.\n"
	out, caret, err := Insert(content, SectionUsage, nil, testNow)
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	desc := strings.Index(out, "## Description")
	usage := strings.Index(out, "## Usage")
	lic := strings.Index(out, "## License")
	if !(desc < usage && usage < lic) {
		t.Errorf("sections out of order: desc=%d usage=%d license=%d\n%s", desc, usage, lic, out)
	}
	if out[caret:caret+8] != "## Usage" {
		t.Errorf("caret should sit at inserted section start, got %d", caret)
	}
}

func TestInsertRejectsDuplicate(t *testing.T) {
	content := "## Usage\n\nexample\n"
	_, _, err := Insert(content, SectionUsage, nil, testNow)
	if !errors.Is(err, ErrSectionExists) {
		t.Errorf("expected ErrSectionExists, got %v", err)
	}
}

func TestInsertBlankLinePadding(t *testing.T) {
	// Appending after content without a trailing newline needs a
	// blank-line prefix; content already ending in newline does not.
	out, _, err := Insert("## Description\n\ntext", SectionLicense, nil, testNow)
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if !strings.Contains(out, "text\n\n## License") {
		t.Errorf("expected blank-line padding before section, got %q", out)
	}

	out2, _, err := Insert("## Description\n\ntext\n", SectionLicense, nil, testNow)
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if strings.Contains(out2, "text\n\n\n") {
		t.Errorf("should not double-pad after existing newline, got %q", out2)
	}
}

func TestInsertAtExplicitCursor(t *testing.T) {
	content := "alpha\nomega\n"
	out, caret, err := InsertAt(content, SectionPrerequisites, 6, nil, testNow)
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if out[caret:caret+16] != "## Prerequisites" {
		t.Errorf("section should start at caret, got %q", out[caret:])
	}
	if !strings.HasPrefix(out, "alpha\n## Prerequisites") {
		t.Errorf("got %q", out)
	}
}

func TestInsertAtClampsPosition(t *testing.T) {
	out, _, err := InsertAt("abc", SectionPrerequisites, 99, nil, testNow)
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if !strings.HasPrefix(out, "abc\n\n## Prerequisites") {
		t.Errorf("out-of-range position should clamp to end, got %q", out)
	}
}

func TestInsertFillsFields(t *testing.T) {
	fields := map[string]string{"contactEmail": "sec@markwright.dev"}
	out, _, err := Insert("", SectionSecurity, fields, testNow)
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if !strings.Contains(out, "sec@markwright.dev") {
		t.Errorf("field value should be substituted, got %q", out)
	}
}
