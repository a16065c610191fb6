package lexer

import (
	"fmt"
	"strings"

	"github.com/KromDaniel/lexgen/token"
)

const (
	// snippetLength bounds the unmatched text quoted in error messages.
	snippetLength = 30
	// contextLength bounds each side of the caret view in Detail.
	contextLength = 45
)

// UnrecognizedTokenError reports input that no definition matched.
type UnrecognizedTokenError struct {
	token.Position

	// Snippet is the start of the unmatched remainder.
	Snippet string

	// Before and After surround the offset in the caret view.
	Before string
	After  string
}

func newUnrecognizedTokenError(input string, offset int) *UnrecognizedTokenError {
	return &UnrecognizedTokenError{
		Position: token.PositionOf(input, offset),
		Snippet:  head(sanitize(input[offset:]), snippetLength),
		Before:   tail(sanitize(input[:offset]), contextLength),
		After:    head(sanitize(input[offset:]), contextLength),
	}
}

func (e *UnrecognizedTokenError) Error() string {
	return fmt.Sprintf("unknown token (line: %d, column: %d) (%q)", e.Line, e.Column, e.Snippet)
}

// Detail renders the error with the surrounding input and a caret under the offset.
func (e *UnrecognizedTokenError) Detail() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Syntax error: unknown token (line: %d, column: %d)\n", e.Line, e.Column)
	b.WriteString(e.Before)
	b.WriteString(e.After)
	b.WriteByte('\n')
	b.WriteString(strings.Repeat(" ", len([]rune(e.Before))))
	b.WriteByte('^')
	return b.String()
}

// ConsistencyError reports a definition whose validation pattern accepted
// input that its primary pattern then rejected. The definition is broken.
type ConsistencyError struct {
	Type   string
	Offset int
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("%s: passed validation expression, but not a base expression (offset %d)", e.Type, e.Offset)
}

var whitespaceReplacer = strings.NewReplacer("\n", " ", "\t", " ", "\r", " ")

// sanitize flattens line breaks and tabs so snippets stay on one line.
func sanitize(s string) string {
	return whitespaceReplacer.Replace(s)
}

// head returns at most n runes from the start of s.
func head(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

// tail returns at most n runes from the end of s.
func tail(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[len(runes)-n:])
}
