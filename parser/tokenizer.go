package parser

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	linkOpeners = "([{<\"'"
	linkClosers = ".,;:!?)]}>\"'"
)

// Tokenizer splits a paragraph into word, white space, punctuation and link
// tokens.
type Tokenizer struct{}

func NewTokenizer() *Tokenizer {
	return &Tokenizer{}
}

// Tokenize returns the tokens of paragraph. Joining their Data gives the
// paragraph back.
func (t *Tokenizer) Tokenize(paragraph string) []*Token {
	var tokens []*Token
	for len(paragraph) > 0 {
		r, _ := utf8.DecodeRuneInString(paragraph)
		var end int
		if unicode.IsSpace(r) {
			end = spanOf(paragraph, unicode.IsSpace)
			tokens = append(tokens, &Token{TokenType: whiteSpaceToken, Data: paragraph[:end]})
		} else {
			end = spanOf(paragraph, func(r rune) bool { return !unicode.IsSpace(r) })
			tokens = append(tokens, t.tokenizeChunk(paragraph[:end])...)
		}
		paragraph = paragraph[end:]
	}
	return tokens
}

// tokenizeChunk handles a run without white space: either a link wrapped in
// punctuation, or words and punctuation.
func (t *Tokenizer) tokenizeChunk(chunk string) []*Token {
	lead, core, trail := trimLink(chunk)
	if isLink(core) {
		var tokens []*Token
		if lead != "" {
			tokens = append(tokens, &Token{TokenType: punctuationToken, Data: lead})
		}
		tokens = append(tokens, &Token{TokenType: linkToken, Data: core})
		if trail != "" {
			tokens = append(tokens, &Token{TokenType: punctuationToken, Data: trail})
		}
		return tokens
	}

	var tokens []*Token
	for len(chunk) > 0 {
		r, _ := utf8.DecodeRuneInString(chunk)
		var (
			end int
			tt  tokenType
		)
		if isWordRune(r) {
			end, tt = spanOf(chunk, isWordRune), wordToken
		} else {
			end, tt = spanOf(chunk, func(r rune) bool { return !isWordRune(r) }), punctuationToken
		}
		tokens = append(tokens, &Token{TokenType: tt, Data: chunk[:end]})
		chunk = chunk[end:]
	}
	return tokens
}

// trimLink splits wrapping punctuation off a chunk. A closing parenthesis
// is kept when it balances one inside the link.
func trimLink(chunk string) (lead, core, trail string) {
	core = strings.TrimLeft(chunk, linkOpeners)
	lead = chunk[:len(chunk)-len(core)]

	end := len(core)
	for end > 0 {
		r, size := utf8.DecodeLastRuneInString(core[:end])
		if !strings.ContainsRune(linkClosers, r) {
			break
		}
		if r == ')' && strings.Count(core[:end], "(") >= strings.Count(core[:end], ")") {
			break
		}
		end -= size
	}
	return lead, core[:end], core[end:]
}

func isLink(s string) bool {
	lower := strings.ToLower(s)
	switch {
	case strings.Contains(s, "://"):
		return len(s) > len("://")
	case strings.HasPrefix(s, "//"):
		return len(s) > len("//")
	case strings.HasPrefix(lower, "www."):
		return len(s) > len("www.")
	case strings.HasPrefix(lower, "mailto:"):
		return len(s) > len("mailto:")
	}
	return false
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}

func spanOf(s string, f func(rune) bool) int {
	for i, r := range s {
		if !f(r) {
			return i
		}
	}
	return len(s)
}
