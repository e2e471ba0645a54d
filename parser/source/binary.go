package source

import (
	"io"
	"os"
	"strings"

	"github.com/fumiama/go-docx"
	pdflib "github.com/ledongthuc/pdf"
	"github.com/pkg/errors"
)

// spool copies r to a temporary file, since both the docx and the pdf
// readers need random access and a size.
func spool(r io.Reader, pattern string) (*os.File, int64, error) {
	tmp, err := os.CreateTemp("", pattern)
	if err != nil {
		return nil, 0, errors.Wrap(err, "could not create temp file")
	}
	size, err := io.Copy(tmp, r)
	if err == nil {
		_, err = tmp.Seek(0, io.SeekStart)
	}
	if err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return nil, 0, errors.Wrap(err, "could not write temp file")
	}
	return tmp, size, nil
}

func extractDOCX(r io.Reader) ([]string, error) {
	tmp, size, err := spool(r, "textom-*.docx")
	if err != nil {
		return nil, err
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	doc, err := docx.Parse(tmp, size)
	if err != nil {
		return nil, errors.Wrap(err, "could not parse docx")
	}

	var paragraphs []string
	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		var b strings.Builder
		for _, child := range para.Children {
			run, ok := child.(*docx.Run)
			if !ok {
				continue
			}
			for _, rc := range run.Children {
				if t, ok := rc.(*docx.Text); ok {
					b.WriteString(t.Text)
				}
			}
		}
		paragraphs = appendParagraph(paragraphs, b.String())
	}
	return paragraphs, nil
}

func extractPDF(r io.Reader) ([]string, error) {
	tmp, size, err := spool(r, "textom-*.pdf")
	if err != nil {
		return nil, err
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	reader, err := pdflib.NewReader(tmp, size)
	if err != nil {
		return nil, errors.Wrap(err, "could not open pdf")
	}

	var paragraphs []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, errors.Wrapf(err, "could not read pdf page %d", i)
		}
		paragraphs = append(paragraphs, SplitParagraphs(text)...)
	}
	return paragraphs, nil
}
