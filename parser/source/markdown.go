package source

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func extractMarkdown(r io.Reader) ([]string, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "could not read markdown")
	}

	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	var paragraphs []string
	err = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.(type) {
		case *ast.Paragraph, *ast.Heading, *ast.TextBlock:
			var b strings.Builder
			inlineText(n, src, &b)
			paragraphs = appendParagraph(paragraphs, b.String())
			return ast.WalkSkipChildren, nil
		case *ast.FencedCodeBlock, *ast.CodeBlock, *ast.HTMLBlock:
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not walk markdown")
	}
	return paragraphs, nil
}

// inlineText writes the prose of n's inline children. Link destinations are
// written after their label so they show up in the prose.
func inlineText(n ast.Node, src []byte, b *strings.Builder) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch c := c.(type) {
		case *ast.Text:
			b.Write(c.Segment.Value(src))
			if c.SoftLineBreak() || c.HardLineBreak() {
				b.WriteByte('\n')
			}
		case *ast.String:
			b.Write(c.Value)
		case *ast.AutoLink:
			b.Write(c.URL(src))
		case *ast.Link:
			writeWithDestination(c, string(c.Destination), src, b)
		case *ast.Image:
			writeWithDestination(c, string(c.Destination), src, b)
		case *ast.RawHTML:
		default:
			inlineText(c, src, b)
		}
	}
}

func writeWithDestination(n ast.Node, destination string, src []byte, b *strings.Builder) {
	var label strings.Builder
	inlineText(n, src, &label)
	b.WriteString(label.String())
	if destination == "" || destination == label.String() {
		return
	}
	if label.Len() > 0 {
		b.WriteByte(' ')
	}
	b.WriteString("(" + destination + ")")
}
