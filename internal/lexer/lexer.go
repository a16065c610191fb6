package lexer

import (
	"fmt"

	"github.com/KromDaniel/lexgen/internal/definition"
	"github.com/KromDaniel/lexgen/token"
)

// Lexer is an interpreted tokenizer over a fixed list of analyzed definitions.
// Register processors before sharing a Lexer between goroutines.
type Lexer struct {
	defs       []*definition.Analyzed
	processors map[string]token.Processor
}

// New creates a Lexer. defs are matched in order; the first match wins.
func New(defs []*definition.Analyzed) *Lexer {
	return &Lexer{
		defs:       defs,
		processors: make(map[string]token.Processor),
	}
}

// AddProcessor registers p to rewrite the data of tokens of type typ.
func (l *Lexer) AddProcessor(typ string, p token.Processor) error {
	if _, ok := l.processors[typ]; ok {
		return fmt.Errorf("processor for token %q is already registered", typ)
	}
	l.processors[typ] = p
	return nil
}

// For creates a cursor over input.
func (l *Lexer) For(input string) *Processor {
	return &Processor{lexer: l, input: input}
}

// Clone returns a Lexer with the same definitions and a copy of the processors.
func (l *Lexer) Clone() *Lexer {
	c := New(l.defs)
	for typ, p := range l.processors {
		c.processors[typ] = p
	}
	return c
}

// Definitions returns the analyzed definitions in declared order.
func (l *Lexer) Definitions() []*definition.Analyzed {
	return l.defs
}
