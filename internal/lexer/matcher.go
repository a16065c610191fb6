// Package lexer runs analyzed definitions over input.
//
// Two drivers share the matchers in this file: the interpreted Lexer, which
// walks definitions in declared order through a restartable Processor cursor,
// and Program, which dispatches on the byte at the current offset.
package lexer

import (
	"strings"

	"github.com/KromDaniel/lexgen/internal/definition"
	"github.com/KromDaniel/lexgen/token"
)

// Match is the result of a successful definition match at an offset.
type Match struct {
	Length int
	Data   map[string]string
}

// match tries d at input[offset:].
// err is a *ConsistencyError when a validated definition passes its
// validation pattern but not its primary pattern.
func match(d *definition.Analyzed, input string, offset int) (m Match, ok bool, err error) {
	rest := input[offset:]

	switch d.Strategy {
	case definition.Character:
		if len(d.Literal) == 1 {
			if rest[0] != d.Literal[0] {
				return Match{}, false, nil
			}
		} else if !strings.HasPrefix(rest, d.Literal) {
			return Match{}, false, nil
		}
		return Match{Length: len(d.Literal), Data: token.Value(d.Literal)}, true, nil

	case definition.Text:
		if !strings.HasPrefix(rest, d.Literal) {
			return Match{}, false, nil
		}
		return Match{Length: len(d.Literal), Data: token.Value(d.Literal)}, true, nil

	case definition.Regex:
		m, ok = matchRegex(d, input, offset)
		return m, ok, nil

	case definition.ValidatedRegex:
		if !d.Valid.Regexp.MatchString(rest) {
			return Match{}, false, nil
		}
		m, ok = matchRegex(d, input, offset)
		if !ok {
			return Match{}, false, &ConsistencyError{Type: d.Type, Offset: offset}
		}
		return m, true, nil
	}

	return Match{}, false, nil
}

// matchRegex runs the primary pattern at offset.
// Empty matches are rejected so every token advances the offset.
func matchRegex(d *definition.Analyzed, input string, offset int) (Match, bool) {
	rest := input[offset:]

	if !d.HasNames() {
		loc := d.Primary.Regexp.FindStringIndex(rest)
		if loc == nil || loc[1] == 0 {
			return Match{}, false
		}
		return Match{Length: loc[1], Data: token.Value(rest[:loc[1]])}, true
	}

	loc := d.Primary.Regexp.FindStringSubmatchIndex(rest)
	if loc == nil || loc[1] == 0 {
		return Match{}, false
	}

	data := make(map[string]string, len(d.Primary.Names))
	for name, index := range d.Primary.Names {
		data[name] = token.Capture(input, offset, loc, index)
	}
	return Match{Length: loc[1], Data: data}, true
}
