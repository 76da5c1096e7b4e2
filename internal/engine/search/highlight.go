package search

// Span is one segment of the highlight overlay: a literal run of text
// that is either plain, a match, or the currently selected match.
// Spans returned by HighlightSpans cover the scanned content exactly
// once, in order, with no gaps or overlaps, so a renderer can lay marks
// over the buffer without reflowing it.
type Span struct {
	Text    string
	Match   bool
	Current bool
}

// HighlightSpans renders the current match set over the full buffer
// content as an ordered span sequence.
func (e *Engine) HighlightSpans() []Span {
	e.mu.Lock()
	defer e.mu.Unlock()

	content := e.buf.Text()
	if len(e.matches) == 0 {
		if content == "" {
			return nil
		}
		return []Span{{Text: content}}
	}

	var spans []Span
	cursor := 0

	for i, m := range e.matches {
		if m.Index < cursor {
			continue
		}
		end := m.Index + m.Length
		if end > len(content) {
			break
		}
		if m.Index > cursor {
			spans = append(spans, Span{Text: content[cursor:m.Index]})
		}
		spans = append(spans, Span{
			Text:    content[m.Index:end],
			Match:   true,
			Current: i == e.current,
		})
		cursor = end
	}

	if cursor < len(content) {
		spans = append(spans, Span{Text: content[cursor:]})
	}

	return spans
}
