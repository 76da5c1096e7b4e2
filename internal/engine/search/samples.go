package search

// contextRadius is how many bytes of surrounding text a replacement
// sample shows on each side of the match.
const contextRadius = 18

// Sample is one before/after preview of a pending replacement.
type Sample struct {
	Before  string // context preceding the match
	Match   string // the matched text
	After   string // context following the match
	Replace string // what the match becomes
}

// ReplacePreview builds up to limit replacement samples for the current
// match set and returns them with the total match count. It performs no
// mutation; the engine should be refreshed before calling.
func (e *Engine) ReplacePreview(replacement string, limit int) ([]Sample, int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	total := len(e.matches)
	if total == 0 || limit <= 0 {
		return nil, total
	}

	re, err := Compile(e.cfg)
	if err != nil {
		return nil, total
	}

	content := e.buf.Text()
	n := limit
	if n > total {
		n = total
	}

	samples := make([]Sample, 0, n)
	for _, m := range e.matches[:n] {
		before := m.Index - contextRadius
		if before < 0 {
			before = 0
		}
		after := m.Index + m.Length + contextRadius
		if after > len(content) {
			after = len(content)
		}

		matchText := content[m.Index : m.Index+m.Length]
		samples = append(samples, Sample{
			Before:  content[before:m.Index],
			Match:   matchText,
			After:   content[m.Index+m.Length : after],
			Replace: expandReplacement(re, matchText, replacement, e.cfg.UseRegex),
		})
	}

	return samples, total
}
