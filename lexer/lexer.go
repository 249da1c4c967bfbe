package lexer

import (
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// ErrNoMoreTokens is returned by Next once the content is exhausted
var ErrNoMoreTokens = errors.New("no more tokens")

type Lexer struct {
	content []rune
}

// NewLexer creates a new Lexer
func NewLexer(content string) *Lexer {
	return &Lexer{[]rune(content)}
}

// IsWordChar reports whether r belongs to a token: an ASCII letter, an ASCII
// digit or an underscore. Everything else separates tokens.
func IsWordChar(r rune) bool {
	return r == '_' ||
		('a' <= r && r <= 'z') ||
		('A' <= r && r <= 'Z') ||
		('0' <= r && r <= '9')
}

func isSeparator(r rune) bool {
	return !IsWordChar(r)
}

// TrimLeft trims separators from the left of the content
func (l *Lexer) TrimLeft() {
	l.ChopWhile(isSeparator)
}

// Chop chops the content by n and returns the chopped content
func (l *Lexer) Chop(n int) (token []rune) {
	token = l.content[:n]
	l.content = l.content[n:]
	return token
}

// ChopWhile chops the content while the predicate f returns true
func (l *Lexer) ChopWhile(f func(rune) bool) (token []rune) {
	n := 0
	for n < len(l.content) && f(l.content[n]) {
		n += 1
	}
	return l.Chop(n)
}

// NextToken returns the next maximal run of word characters, or nil when the
// content holds no more tokens
func (l *Lexer) NextToken() []rune {
	l.TrimLeft()

	if len(l.content) == 0 {
		return nil
	}
	return l.ChopWhile(IsWordChar)
}

// Next returns the next token as a string
func (l *Lexer) Next() (string, error) {
	token := l.NextToken()
	if token == nil {
		return "", ErrNoMoreTokens
	}
	return string(token), nil
}

// Tokenize splits a line on runs of non-word characters and returns the
// tokens in order. Leading and trailing separators never yield empty tokens.
func Tokenize(line string) []string {
	tokens := []string{}
	l := NewLexer(line)
	for {
		token, err := l.Next()
		if err != nil {
			return tokens
		}
		tokens = append(tokens, token)
	}
}

// ParseHtmlTextContent parses an html document and returns its text content,
// one text node per line. Text inside script and style elements is dropped.
func ParseHtmlTextContent(r io.Reader) (string, error) {
	var content strings.Builder
	skip := 0

	d := html.NewTokenizer(r)
	for {
		tt := d.Next()
		switch tt {
		case html.ErrorToken:
			if err := d.Err(); err != io.EOF {
				return "", err
			}
			return content.String(), nil
		case html.StartTagToken:
			if isRawTextElement(d) {
				skip++
			}
		case html.EndTagToken:
			if skip > 0 && isRawTextElement(d) {
				skip--
			}
		case html.TextToken:
			if skip == 0 {
				if content.Len() > 0 {
					content.WriteByte('\n')
				}
				content.Write(d.Text())
			}
		}
	}
}

func isRawTextElement(d *html.Tokenizer) bool {
	name, _ := d.TagName()
	switch string(name) {
	case "script", "style":
		return true
	}
	return false
}
