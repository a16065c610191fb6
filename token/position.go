package token

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Position locates an offset in the input.
type Position struct {
	Offset int `json:"offset"` // byte offset, starting at 0
	Line   int `json:"line"`   // line number, starting at 1
	Column int `json:"column"` // rune count since the last newline, starting at 1
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// PositionOf computes the line and column of offset by counting newlines in
// the consumed prefix input[:offset].
func PositionOf(input string, offset int) Position {
	if offset > len(input) {
		offset = len(input)
	}
	before := input[:offset]
	lineStart := strings.LastIndexByte(before, '\n') + 1
	return Position{
		Offset: offset,
		Line:   strings.Count(before, "\n") + 1,
		Column: utf8.RuneCountInString(before[lineStart:]) + 1,
	}
}
