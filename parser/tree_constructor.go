package parser

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/wooorm/textom-link-node/parser/linknode"
	"github.com/wooorm/textom-link-node/parser/textom"
)

// paragraphSeparator sits between paragraphs in the root.
const paragraphSeparator = "\n\n"

// TreeConstructor turns tokenized paragraphs into a TextOM tree.
type TreeConstructor struct {
	model *textom.Model
}

func NewTreeConstructor(m *textom.Model) *TreeConstructor {
	return &TreeConstructor{model: m}
}

// treeState tracks where the next token goes while one paragraph is built.
type treeState struct {
	paragraph *textom.Parent
	sentence  *textom.Parent
	// pendingEnd is set after terminal punctuation: the open sentence ends
	// if white space or the end of the paragraph follows.
	pendingEnd bool
}

// Construct builds a root holding one paragraph per entry of paragraphs.
func (c *TreeConstructor) Construct(paragraphs [][]*Token) (*textom.Parent, error) {
	root := c.model.NewRoot()
	for i, tokens := range paragraphs {
		if len(tokens) == 0 {
			continue
		}
		if root.Length() > 0 {
			if err := root.Append(c.model.NewWhiteSpace(paragraphSeparator)); err != nil {
				return nil, err
			}
		}
		paragraph, err := c.constructParagraph(tokens)
		if err != nil {
			return nil, errors.Wrapf(err, "paragraph %d", i+1)
		}
		if err := root.Append(paragraph); err != nil {
			return nil, err
		}
	}

	c.model.Logger().WithFields(logrus.Fields{
		"paragraphs": len(paragraphs),
		"children":   root.Length(),
	}).Debug("[TREE]: constructed")
	return root, nil
}

func (c *TreeConstructor) constructParagraph(tokens []*Token) (*textom.Parent, error) {
	s := &treeState{paragraph: c.model.NewParagraph()}
	for _, t := range tokens {
		if err := c.processToken(s, t); err != nil {
			return nil, errors.Wrapf(err, "token %s", t)
		}
	}
	return s.paragraph, nil
}

func (c *TreeConstructor) processToken(s *treeState, t *Token) error {
	switch t.TokenType {
	case whiteSpaceToken:
		ws := c.model.NewWhiteSpace(t.Data)
		if s.pendingEnd {
			s.sentence, s.pendingEnd = nil, false
		}
		if s.sentence == nil {
			return s.paragraph.Append(ws)
		}
		return s.sentence.Append(ws)

	case wordToken:
		sentence, err := c.openSentence(s)
		if err != nil {
			return err
		}
		word := c.model.NewWord()
		if err := word.Append(c.model.NewText(t.Data)); err != nil {
			return err
		}
		s.pendingEnd = false
		return sentence.Append(word)

	case punctuationToken:
		sentence, err := c.openSentence(s)
		if err != nil {
			return err
		}
		s.pendingEnd = isTerminal(t.Data)
		return sentence.Append(c.model.NewPunctuation(t.Data))

	case linkToken:
		sentence, err := c.openSentence(s)
		if err != nil {
			return err
		}
		link, err := linknode.New(c.model, t.Data)
		if err != nil {
			return err
		}
		s.pendingEnd = false
		return sentence.Append(link)
	}
	return errors.Errorf("unexpected token type %s", t.TokenType)
}

func (c *TreeConstructor) openSentence(s *treeState) (*textom.Parent, error) {
	if s.pendingEnd {
		// Terminal punctuation followed directly by more text, as in
		// "e.g" or "3.14", does not end the sentence.
		s.pendingEnd = false
	}
	if s.sentence != nil {
		return s.sentence, nil
	}
	s.sentence = c.model.NewSentence()
	if err := s.paragraph.Append(s.sentence); err != nil {
		return nil, err
	}
	return s.sentence, nil
}

func isTerminal(punctuation string) bool {
	return strings.ContainsAny(punctuation, ".!?")
}
