// Package pattern compiles token patterns and analyzes how they can start.
package pattern

import (
	"errors"
	"fmt"
	"regexp"
	"regexp/syntax"
	"strings"
)

// Error reports a pattern that could not be compiled.
type Error struct {
	Source string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid pattern %q: %v", e.Source, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Compiled is a pattern with its named groups replaced by positional ones.
type Compiled struct {
	Source   string         // pattern as written by the caller
	Flags    string         // flags as written by the caller
	Stripped string         // Source without group names
	Anchored string         // text handed to regexp, anchored at the start of the input
	AST      *syntax.Regexp // parse tree of Source with flags applied
	Names    map[string]int // group name -> 1-based positional index
	Regexp   *regexp.Regexp
}

// Compile parses source, records the positional index of every named group
// and compiles the name-free pattern anchored at the beginning of its input.
//
// The compiled pattern is meant to be run against input[offset:], which is
// how callers express "match at offset" without mutating shared state.
func Compile(source, flags string) (*Compiled, error) {
	prefix, err := inlineFlags(flags)
	if err != nil {
		return nil, &Error{Source: source, Err: err}
	}

	ast, err := syntax.Parse(prefix+source, syntax.Perl)
	if err != nil {
		return nil, &Error{Source: source, Err: err}
	}

	stripped := stripNames(source)
	strippedAST, err := syntax.Parse(prefix+stripped, syntax.Perl)
	if err != nil {
		return nil, &Error{Source: source, Err: fmt.Errorf("failed to parse pattern without names: %w", err)}
	}
	if strippedAST.MaxCap() != ast.MaxCap() {
		return nil, &Error{Source: source, Err: errors.New("group numbering changed while removing names")}
	}

	anchored := prefix + `\A(?:` + stripped + `)`
	re, err := regexp.Compile(anchored)
	if err != nil {
		return nil, &Error{Source: source, Err: err}
	}

	return &Compiled{
		Source:   source,
		Flags:    flags,
		Stripped: stripped,
		Anchored: anchored,
		AST:      ast,
		Names:    extractCaptureNames(ast),
		Regexp:   re,
	}, nil
}

// HasNames reports whether the pattern declares named groups.
func (c *Compiled) HasNames() bool {
	return len(c.Names) > 0
}

// extractCaptureNames maps each named group to its index. Unnamed groups are skipped.
func extractCaptureNames(re *syntax.Regexp) map[string]int {
	names := make(map[string]int)

	var walk func(*syntax.Regexp)
	walk = func(r *syntax.Regexp) {
		if r.Op == syntax.OpCapture && r.Name != "" {
			names[r.Name] = r.Cap
		}
		for _, sub := range r.Sub {
			walk(sub)
		}
	}

	walk(re)
	return names
}

// stripNames rewrites (?P<name>...) and (?<name>...) into plain groups.
// Escapes, \Q...\E quoting and bracket classes are copied untouched.
func stripNames(src string) string {
	var b strings.Builder
	b.Grow(len(src))

	inClass := false
	for i := 0; i < len(src); i++ {
		c := src[i]
		switch {
		case c == '\\':
			if strings.HasPrefix(src[i:], `\Q`) {
				end := strings.Index(src[i+2:], `\E`)
				if end < 0 {
					b.WriteString(src[i:])
					return b.String()
				}
				next := i + 2 + end + 2
				b.WriteString(src[i:next])
				i = next - 1
				continue
			}
			b.WriteByte(c)
			if i+1 < len(src) {
				i++
				b.WriteByte(src[i])
			}

		case inClass:
			if strings.HasPrefix(src[i:], "[:") {
				if end := strings.Index(src[i+2:], ":]"); end >= 0 {
					next := i + 2 + end + 2
					b.WriteString(src[i:next])
					i = next - 1
					continue
				}
			}
			if c == ']' {
				inClass = false
			}
			b.WriteByte(c)

		case c == '[':
			inClass = true
			b.WriteByte(c)
			// A ']' right after '[' or '[^' is a literal.
			j := i + 1
			if j < len(src) && src[j] == '^' {
				b.WriteByte('^')
				j++
			}
			if j < len(src) && src[j] == ']' {
				b.WriteByte(']')
				j++
			}
			i = j - 1

		case c == '(':
			if start, ok := namedGroupStart(src[i:]); ok {
				end := strings.IndexByte(src[i+start:], '>')
				if end < 0 {
					// Let the parser report the broken group.
					b.WriteString(src[i:])
					return b.String()
				}
				b.WriteByte('(')
				i += start + end
				continue
			}
			b.WriteByte(c)

		default:
			b.WriteByte(c)
		}
	}

	return b.String()
}

// namedGroupStart returns the length of a named group opener ("(?P<" or "(?<")
// at the beginning of s.
func namedGroupStart(s string) (int, bool) {
	if strings.HasPrefix(s, "(?P<") {
		return len("(?P<"), true
	}
	if strings.HasPrefix(s, "(?<") && !strings.HasPrefix(s, "(?<=") && !strings.HasPrefix(s, "(?<!") {
		return len("(?<"), true
	}
	return 0, false
}
