package parser

import (
	"io"

	"github.com/pkg/errors"

	"github.com/wooorm/textom-link-node/parser/linknode"
	"github.com/wooorm/textom-link-node/parser/source"
	"github.com/wooorm/textom-link-node/parser/textom"
)

// Parser turns prose into a TextOM tree in which URL-like words are link
// nodes.
type Parser struct {
	Model           *textom.Model
	Tokenizer       *Tokenizer
	TreeConstructor *TreeConstructor
}

// NewParser attaches the link node type to m and returns a parser building
// trees on it.
func NewParser(m *textom.Model) (*Parser, error) {
	if err := linknode.Attach(m); err != nil {
		return nil, errors.Wrap(err, "could not create parser")
	}
	return &Parser{
		Model:           m,
		Tokenizer:       NewTokenizer(),
		TreeConstructor: NewTreeConstructor(m),
	}, nil
}

// Parse builds a root with one paragraph per entry of paragraphs.
func (p *Parser) Parse(paragraphs []string) (*textom.Parent, error) {
	tokens := make([][]*Token, 0, len(paragraphs))
	for _, paragraph := range paragraphs {
		tokens = append(tokens, p.Tokenizer.Tokenize(paragraph))
	}
	return p.TreeConstructor.Construct(tokens)
}

// ParseString parses plain text, with paragraphs separated by blank lines.
func (p *Parser) ParseString(s string) (*textom.Parent, error) {
	return p.Parse(source.SplitParagraphs(s))
}

// ParseDocument extracts the prose of a document in format and parses it.
func (p *Parser) ParseDocument(format source.Format, r io.Reader) (*textom.Parent, error) {
	paragraphs, err := source.Extract(format, r)
	if err != nil {
		return nil, errors.Wrapf(err, "could not extract %s", format)
	}
	return p.Parse(paragraphs)
}

// Links returns every link node below n, in document order.
func Links(n textom.Node) []*linknode.LinkNode {
	var links []*linknode.LinkNode
	var find func(textom.Node)
	find = func(n textom.Node) {
		switch n := n.(type) {
		case *linknode.LinkNode:
			links = append(links, n)
		case *textom.Parent:
			for _, child := range n.Children() {
				find(child)
			}
		}
	}
	find(n)
	return links
}
