package template

import (
	"fmt"
	"strings"
	"time"
)

type occurrence struct {
	section Section
	offset  int
}

// headerOccurrences scans the document for section heading lines and
// returns them in document order with their line-start byte offsets.
func headerOccurrences(content string) []occurrence {
	var occ []occurrence

	offset := 0
	for _, line := range strings.Split(content, "\n") {
		for _, s := range Order {
			if headerPatterns[s].MatchString(line) {
				occ = append(occ, occurrence{section: s, offset: offset})
				break
			}
		}
		offset += len(line) + 1
	}
	return occ
}

// InsertionPoint finds the byte offset that keeps the catalog's
// canonical section order: after the last occurrence of any section
// ordered before the target and before the first occurrence of any
// section ordered after it. With both neighbors present the tighter
// bound wins. No ordering neighbor means end of document.
func InsertionPoint(content string, target Section) int {
	idx := orderIndex(target)
	if idx < 0 {
		return len(content)
	}

	occ := headerOccurrences(content)

	// Upper bound: start of the first later-ordered section.
	upper := -1
	for _, o := range occ {
		if orderIndex(o.section) > idx {
			upper = o.offset
			break
		}
	}

	// Lower bound: end of the last earlier-ordered section's block,
	// which runs to the next detected heading or end of document.
	lower := -1
	for i, o := range occ {
		if orderIndex(o.section) >= idx {
			continue
		}
		lower = len(content)
		if i+1 < len(occ) {
			lower = occ[i+1].offset
		}
	}

	switch {
	case upper < 0 && lower < 0:
		return len(content)
	case upper < 0:
		return lower
	case lower > upper:
		return lower
	default:
		return upper
	}
}

func orderIndex(s Section) int {
	for i, o := range Order {
		if o == s {
			return i
		}
	}
	return -1
}

// Insert renders a section and splices it into the document at the
// smart insertion point, padding with blank lines only where the
// adjacent character is not already a newline. It returns the new
// content and the caret offset at the start of the inserted section.
func Insert(content string, s Section, fields map[string]string, now time.Time) (string, int, error) {
	body, err := Body(s)
	if err != nil {
		return content, 0, err
	}
	if Analyze(content)[s] {
		return content, 0, fmt.Errorf("%w: %s", ErrSectionExists, s)
	}

	rendered := Render(body, fields, now)
	if strings.TrimSpace(content) == "" {
		return rendered, 0, nil
	}

	return splice(content, rendered, InsertionPoint(content, s))
}

// InsertAt splices a rendered section at an explicit caret position,
// bypassing the ordering heuristic. Used when the caller knows where
// the user wants the section.
func InsertAt(content string, s Section, pos int, fields map[string]string, now time.Time) (string, int, error) {
	body, err := Body(s)
	if err != nil {
		return content, 0, err
	}
	if pos < 0 {
		pos = 0
	}
	if pos > len(content) {
		pos = len(content)
	}
	return splice(content, Render(body, fields, now), pos)
}

func splice(content, rendered string, pos int) (string, int, error) {
	prefix, suffix := "", ""
	if pos > 0 && content[pos-1] != '\n' {
		prefix = "\n\n"
	}
	if pos < len(content) && content[pos] != '\n' {
		suffix = "\n\n"
	}

	out := content[:pos] + prefix + rendered + suffix + content[pos:]
	return out, pos + len(prefix), nil
}
