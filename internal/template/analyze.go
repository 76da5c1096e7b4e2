package template

import (
	"regexp"
	"strings"
)

// headerPatterns match a section's heading line. Only H1/H2 headings
// count; deeper headings belong to a parent section.
var headerPatterns = map[Section]*regexp.Regexp{
	SectionQuickPR:         regexp.MustCompile(`(?i)^##?\s*(pr:|pr\b|technical changes)`),
	SectionBadges:          regexp.MustCompile(`(?i)^!\[.*?\]\(https://img\.shields\.io`),
	SectionDescription:     regexp.MustCompile(`(?i)^##?\s*(description|about|overview|what is)`),
	SectionQuickstart:      regexp.MustCompile(`(?i)^##?\s*(quick ?start|getting started)`),
	SectionPrerequisites:   regexp.MustCompile(`(?i)^##?\s*(prerequisites|requirements|dependencies)`),
	SectionInstallation:    regexp.MustCompile(`(?i)^##?\s*(installation|install|setup)`),
	SectionConfiguration:   regexp.MustCompile(`(?i)^##?\s*(configuration|config|environment)`),
	SectionUsage:           regexp.MustCompile(`(?i)^##?\s*(usage|how to use|examples)`),
	SectionTesting:         regexp.MustCompile(`(?i)^##?\s*test`),
	SectionAPI:             regexp.MustCompile(`(?i)^##?\s*(api|endpoints|reference)`),
	SectionTroubleshooting: regexp.MustCompile(`(?i)^##?\s*(troubleshoot|faq|common issues)`),
	SectionDeployment:      regexp.MustCompile(`(?i)^##?\s*(deploy|production)`),
	SectionContributing:    regexp.MustCompile(`(?i)^##?\s*contribut`),
	SectionSecurity:        regexp.MustCompile(`(?i)^##?\s*(security|vulnerab)`),
	SectionLicense:         regexp.MustCompile(`(?i)^##?\s*license`),
	SectionChangelog:       regexp.MustCompile(`(?i)^##?\s*(changelog|releases|history)`),
}

// signaturePatterns detect a section by content rather than heading,
// e.g. a shields.io badge URL anywhere in the document.
var signaturePatterns = map[Section][]*regexp.Regexp{
	SectionBadges: {
		regexp.MustCompile(`!\[.*?\]\(https://img\.shields\.io`),
		regexp.MustCompile(`badge`),
		regexp.MustCompile(`build.*status`),
		regexp.MustCompile(`coverage`),
	},
	SectionConfiguration: {regexp.MustCompile(`\.env`)},
	SectionTesting: {
		regexp.MustCompile(`npm test`),
		regexp.MustCompile(`jest`),
		regexp.MustCompile(`mocha`),
	},
	SectionLicense: {
		regexp.MustCompile(`mit license`),
		regexp.MustCompile(`apache`),
	},
	SectionQuickPR: {regexp.MustCompile(`key changes`)},
}

// Analyze reports, per catalog section, whether the section already
// appears in the document. Heading patterns are checked per line;
// content signatures are checked against the whole lowercased content.
func Analyze(content string) map[Section]bool {
	lowered := strings.ToLower(content)
	lines := strings.Split(content, "\n")

	found := make(map[Section]bool, len(Order))
	for _, s := range Order {
		found[s] = sectionPresent(s, lowered, lines)
	}
	return found
}

func sectionPresent(s Section, lowered string, lines []string) bool {
	if re, ok := headerPatterns[s]; ok {
		for _, line := range lines {
			if re.MatchString(line) {
				return true
			}
		}
	}
	for _, re := range signaturePatterns[s] {
		if re.MatchString(lowered) {
			return true
		}
	}
	return false
}
