package editor

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/dshills/markwright/internal/template"
)

var validExtensions = []string{".md", ".txt", ".markdown"}

var validMIMETypes = map[string]bool{
	"":              true,
	"text/markdown": true,
	"text/plain":    true,
}

// ValidateUpload checks an upload's file name and declared MIME type.
// Both checks gate acceptance independently; an empty MIME type is
// accepted.
func ValidateUpload(name, mimeType string) error {
	lower := strings.ToLower(name)

	ok := false
	for _, ext := range validExtensions {
		if strings.HasSuffix(lower, ext) {
			ok = true
			break
		}
	}
	if !ok {
		return fmt.Errorf("%w: %s: extension must be .md, .txt, or .markdown", ErrInvalidFile, name)
	}

	if !validMIMETypes[mimeType] {
		return fmt.Errorf("%w: %s: unsupported type %q", ErrInvalidFile, name, mimeType)
	}
	return nil
}

// LoadFile validates and reads an uploaded file into the buffer, takes
// a history checkpoint, and returns a status message summarizing how
// many known document sections the upload already contains.
func (s *Session) LoadFile(name, mimeType string, r io.Reader) (string, error) {
	if err := ValidateUpload(name, mimeType); err != nil {
		return "", err
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRead, err)
	}

	content := string(data)
	s.buf.SetText(content)
	s.history.Checkpoint(content)
	s.contentChanged()

	found := 0
	analysis := template.Analyze(content)
	for _, present := range analysis {
		if present {
			found++
		}
	}

	s.log.Info("loaded %s (%d bytes, %d/%d sections)", name, len(data), found, len(analysis))

	if found > 0 {
		return fmt.Sprintf("Document loaded! Found %d/%d sections.", found, len(analysis)), nil
	}
	return "Document loaded! Use Templates to add standard sections.", nil
}

var firstH1Re = regexp.MustCompile(`(?m)^#\s+(.+)$`)

var (
	slugStripRe    = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugSpaceRe    = regexp.MustCompile(`\s+`)
	slugCollapseRe = regexp.MustCompile(`-+`)
)

// ExportFilename derives the download name from the first top-level
// heading, slugified; without one it falls back to a timestamp name.
func ExportFilename(content string, now time.Time) string {
	if m := firstH1Re.FindStringSubmatch(content); m != nil {
		slug := strings.ToLower(m[1])
		slug = slugStripRe.ReplaceAllString(slug, "")
		slug = slugSpaceRe.ReplaceAllString(slug, "-")
		slug = slugCollapseRe.ReplaceAllString(slug, "-")
		slug = strings.Trim(slug, "-")
		if slug != "" {
			return slug + ".md"
		}
	}
	return now.Format("markdown-20060102-1504") + ".md"
}

// Export returns the download filename and document content. An empty
// or whitespace-only document cannot be exported.
func (s *Session) Export() (string, string, error) {
	content := s.buf.Text()
	if strings.TrimSpace(content) == "" {
		return "", "", ErrEmptyDocument
	}
	return ExportFilename(content, s.now()), content, nil
}

// CopyToClipboard writes the whole document to the clipboard. Failure
// is reported, not fatal.
func (s *Session) CopyToClipboard() error {
	content := s.buf.Text()
	if strings.TrimSpace(content) == "" {
		return ErrEmptyDocument
	}
	if s.clipboard == nil {
		return fmt.Errorf("%w: no clipboard available", ErrClipboard)
	}
	if err := s.clipboard.WriteText(content); err != nil {
		s.log.Warn("clipboard write failed: %v", err)
		return fmt.Errorf("%w: %v", ErrClipboard, err)
	}
	return nil
}
