package lexer

import (
	"io"

	"github.com/KromDaniel/lexgen/token"
)

// Processor is a cursor producing tokens from one input.
// It is not safe for concurrent use; create one per goroutine.
type Processor struct {
	lexer  *Lexer
	input  string
	offset int
}

// Next returns the token at the cursor and advances past it.
// It returns io.EOF once the input is consumed, until Reset is called.
func (p *Processor) Next() (token.Token, error) {
	if p.offset >= len(p.input) {
		return token.Token{}, io.EOF
	}

	chr := p.input[p.offset]
	for _, d := range p.lexer.defs {
		if !d.Accepts(chr) {
			continue
		}

		m, ok, err := match(d, p.input, p.offset)
		if err != nil {
			return token.Token{}, err
		}
		if !ok {
			continue
		}

		start := p.offset
		p.offset += m.Length
		return token.New(d.Type, m.Data, p.input, start, p.offset, p.lexer.processors[d.Type]), nil
	}

	return token.Token{}, newUnrecognizedTokenError(p.input, p.offset)
}

// Process drains the cursor. Any error discards the tokens read so far.
func (p *Processor) Process() ([]token.Token, error) {
	tokens := make([]token.Token, 0, len(p.input)/4+1)
	for {
		t, err := p.Next()
		if err == io.EOF {
			return tokens, nil
		}
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, t)
	}
}

// Reset moves the cursor back to the start of the input.
func (p *Processor) Reset() {
	p.offset = 0
}

// Offset returns the byte offset of the cursor.
func (p *Processor) Offset() int {
	return p.offset
}

// Clone returns an independent cursor over the same input, at its start.
func (p *Processor) Clone() *Processor {
	return p.lexer.For(p.input)
}
