package parser

import "fmt"

type tokenType uint

const (
	wordToken tokenType = iota
	whiteSpaceToken
	punctuationToken
	linkToken
)

func (t tokenType) String() string {
	switch t {
	case wordToken:
		return "word"
	case whiteSpaceToken:
		return "white-space"
	case punctuationToken:
		return "punctuation"
	case linkToken:
		return "link"
	}
	return fmt.Sprintf("tokenType(%d)", uint(t))
}

// Token is a run of prose of a single kind.
type Token struct {
	TokenType tokenType
	Data      string
}

func (t *Token) String() string {
	return fmt.Sprintf("%s(%q)", t.TokenType, t.Data)
}
