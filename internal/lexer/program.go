package lexer

import (
	"github.com/KromDaniel/lexgen/internal/definition"
	"github.com/KromDaniel/lexgen/token"
)

// Program is a compiled tokenizer: definitions are pre-sorted into one
// candidate list per leading byte, keeping declared order inside each list.
// A Program is immutable and safe for concurrent use.
type Program struct {
	defs  []*definition.Analyzed
	table [256][]*definition.Analyzed
}

// NewProgram builds the dispatch table for defs.
func NewProgram(defs []*definition.Analyzed) *Program {
	p := &Program{defs: defs}
	for c := 0; c < 256; c++ {
		for _, d := range defs {
			if d.Accepts(byte(c)) {
				p.table[c] = append(p.table[c], d)
			}
		}
	}
	return p
}

// Candidates returns the definitions attempted when the input byte is c.
func (p *Program) Candidates(c byte) []*definition.Analyzed {
	return p.table[c]
}

// Tokenize runs the program over input. Unrecognized input is reported in
// the returned Result, never as an error. A validated definition whose
// primary pattern rejects the input simply does not match.
func (p *Program) Tokenize(input string, process token.Processor) token.Result {
	tokens := make([]token.Token, 0, len(input)/4+1)
	offset := 0

scan:
	for offset < len(input) {
		for _, d := range p.table[input[offset]] {
			m, ok, _ := match(d, input, offset)
			if !ok {
				continue
			}
			start := offset
			offset += m.Length
			tokens = append(tokens, token.New(d.Type, m.Data, input, start, offset, process))
			continue scan
		}
		return token.Result{Failure: token.Unrecognized(input, offset)}
	}

	return token.Result{Tokens: tokens}
}
