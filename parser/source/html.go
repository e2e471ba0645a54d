package source

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkg/errors"
)

const blockSelector = "p, li, td, th, blockquote, pre, h1, h2, h3, h4, h5, h6, dt, dd, figcaption"

func extractHTML(r io.Reader) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "could not parse html")
	}
	doc.Find("script, style, nav, noscript, template").Remove()

	var paragraphs []string
	doc.Find(blockSelector).Each(func(_ int, s *goquery.Selection) {
		// Nested blocks are visited on their own.
		if s.Find(blockSelector).Length() > 0 {
			s = s.Clone()
			s.Find(blockSelector).Remove()
		}
		paragraphs = appendParagraph(paragraphs, collapseSpace(s.Text()))
	})

	// Documents without block markup still have prose in the body.
	if len(paragraphs) == 0 {
		paragraphs = appendParagraph(paragraphs, collapseSpace(doc.Find("body").Text()))
	}
	return paragraphs, nil
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
