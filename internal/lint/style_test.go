package lint

import (
	"strings"
	"testing"
)

func messagesContain(issues []Issue, fragment string) bool {
	for _, is := range issues {
		if strings.Contains(is.Message, fragment) {
			return true
		}
	}
	return false
}

func TestValidateHeadingSpace(t *testing.T) {
	issues := Validate("#NoSpace\n")
	if !messagesContain(issues, "space after the #") {
		t.Errorf("expected heading-space issue, got %v", issues)
	}

	if issues := Validate("# Fine\n"); messagesContain(issues, "space after the #") {
		t.Errorf("well-formed heading should pass, got %v", issues)
	}
}

func TestValidateListMarkerSpace(t *testing.T) {
	issues := Validate("-item\n")
	if !messagesContain(issues, "List markers") {
		t.Errorf("expected list-marker issue, got %v", issues)
	}

	if issues := Validate("- item\n"); messagesContain(issues, "List markers") {
		t.Errorf("spaced list marker should pass, got %v", issues)
	}
}

func TestValidateBoldNotFlaggedAsList(t *testing.T) {
	if issues := Validate("**bold** text\n"); messagesContain(issues, "List markers") {
		t.Errorf("doubled asterisk is not a list marker, got %v", issues)
	}
	if issues := Validate("--dashes\n"); messagesContain(issues, "List markers") {
		t.Errorf("doubled dash is not a list marker, got %v", issues)
	}
}

func TestValidateOrderedListSpace(t *testing.T) {
	issues := Validate("1.item\n")
	if !messagesContain(issues, "Numbered lists") {
		t.Errorf("expected numbered-list issue, got %v", issues)
	}
}

func TestValidateBlockquoteSpace(t *testing.T) {
	issues := Validate(">quote\n")
	if !messagesContain(issues, "blockquote") {
		t.Errorf("expected blockquote issue, got %v", issues)
	}
}

func TestValidateTaskCheckboxSpace(t *testing.T) {
	issues := Validate("- [ ]task\n")
	if !messagesContain(issues, "task list checkboxes") {
		t.Errorf("expected task-checkbox issue, got %v", issues)
	}

	if issues := Validate("- [x] done\n"); messagesContain(issues, "task list checkboxes") {
		t.Errorf("spaced checkbox should pass, got %v", issues)
	}
}

func TestValidateLeadingTabs(t *testing.T) {
	issues := Validate("\tindented\n")
	if !messagesContain(issues, "leading tabs") {
		t.Errorf("expected leading-tab issue, got %v", issues)
	}
}

func TestValidateTrailingWhitespace(t *testing.T) {
	// Up to two trailing spaces are a markdown hard break; more flags.
	if issues := Validate("line  \n"); messagesContain(issues, "trailing spaces") {
		t.Errorf("two trailing spaces are allowed, got %v", issues)
	}

	issues := Validate("line    \n")
	if !messagesContain(issues, "trailing spaces") {
		t.Errorf("expected trailing-space issue, got %v", issues)
	}
}

func TestValidateEmptyLink(t *testing.T) {
	issues := Validate("[text]()\n")
	if !messagesContain(issues, "destination URL") {
		t.Errorf("expected empty-link issue, got %v", issues)
	}
}

func TestValidateUnclosedFence(t *testing.T) {
	issues := Validate("intro\n```\ncode\n")
	if !messagesContain(issues, "``` is not closed") {
		t.Errorf("expected unclosed-fence issue, got %v", issues)
	}

	for _, is := range issues {
		if strings.Contains(is.Message, "not closed") && is.Line != 2 {
			t.Errorf("fence issue should point at the opening line, got %d", is.Line)
		}
	}
}

func TestValidateSkipsFencedContent(t *testing.T) {
	content := "```\n#nospace\n-item\n```\n"
	if issues := Validate(content); len(issues) != 0 {
		t.Errorf("fenced content should be exempt, got %v", issues)
	}
}
