// Package source pulls prose paragraphs out of documents so they can be
// turned into a TextOM tree.
package source

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Format is a document format Extract understands.
type Format string

const (
	Text     Format = "text"
	HTML     Format = "html"
	Markdown Format = "markdown"
	DOCX     Format = "docx"
	PDF      Format = "pdf"
)

// ErrUnknownFormat is the cause of errors for formats Extract cannot read.
var ErrUnknownFormat = errors.New("unknown format")

// ParseFormat maps a format name, as given on the command line, to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "text", "txt", "plain":
		return Text, nil
	case "html", "htm":
		return HTML, nil
	case "markdown", "md":
		return Markdown, nil
	case "docx":
		return DOCX, nil
	case "pdf":
		return PDF, nil
	}
	return "", errors.Wrapf(ErrUnknownFormat, "%q", name)
}

// FormatFromFilename guesses a format from a file extension, falling back
// to Text.
func FormatFromFilename(path string) Format {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if f, err := ParseFormat(ext); err == nil {
		return f
	}
	return Text
}

// Extract reads r as format and returns its paragraphs in document order.
// Paragraphs are trimmed and never empty.
func Extract(format Format, r io.Reader) ([]string, error) {
	switch format {
	case Text:
		return extractText(r)
	case HTML:
		return extractHTML(r)
	case Markdown:
		return extractMarkdown(r)
	case DOCX:
		return extractDOCX(r)
	case PDF:
		return extractPDF(r)
	}
	return nil, errors.Wrapf(ErrUnknownFormat, "%q", format)
}

func extractText(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "could not read text")
	}
	return SplitParagraphs(string(data)), nil
}

// SplitParagraphs splits s on blank lines. Lines within a paragraph are
// kept, joined by "\n".
func SplitParagraphs(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")

	var (
		paragraphs []string
		current    []string
	)
	flush := func() {
		if len(current) > 0 {
			paragraphs = append(paragraphs, strings.Join(current, "\n"))
			current = nil
		}
	}
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()
	return paragraphs
}

func appendParagraph(paragraphs []string, s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return paragraphs
	}
	return append(paragraphs, s)
}
