// Package token holds the runtime types shared by every lexgen execution mode.
//
// Interpreted lexers, compiled tokenizers and generated code all produce the
// same Token values, so results from one mode can be compared with another.
// Generated tokenizers import this package and nothing else from lexgen.
package token

import "encoding/json"

// ValueKey is the data key used for the matched text when a definition has no
// named capture groups.
const ValueKey = "value"

// UnrecognizedMessage is the error text of a Failure.
const UnrecognizedMessage = "Unrecognized token"

// Token is a typed, positioned unit of input.
// It covers input[Start:End).
type Token struct {
	Type  string            `json:"type"`
	Data  map[string]string `json:"data"`
	Start int               `json:"start"`
	End   int               `json:"end"`
	Raw   string            `json:"-"`
}

// Processor rewrites the data of a matched token.
// captures is the data built from named groups (or {"value": raw}), raw is the
// full matched text.
type Processor func(captures map[string]string, raw string) map[string]string

// Failure describes input that no definition recognized.
type Failure struct {
	Error  string `json:"error"`
	Index  int    `json:"index"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

// Result is the outcome of a compiled or generated tokenizer run.
// Exactly one of Tokens and Failure is meaningful.
type Result struct {
	Tokens  []Token  `json:"tokens"`
	Failure *Failure `json:"failure,omitempty"`
}

// OK reports whether the run recognized the whole input.
func (r Result) OK() bool {
	return r.Failure == nil
}

// MarshalJSON encodes a success as {"tokens": [...]}, with an empty list for
// empty input, and a failure as {"failure": {...}}.
func (r Result) MarshalJSON() ([]byte, error) {
	if r.Failure != nil {
		return json.Marshal(struct {
			Failure *Failure `json:"failure"`
		}{r.Failure})
	}

	tokens := r.Tokens
	if tokens == nil {
		tokens = []Token{}
	}
	return json.Marshal(struct {
		Tokens []Token `json:"tokens"`
	}{tokens})
}

// New builds a token covering input[start:end) and applies process to its data.
func New(typ string, data map[string]string, input string, start, end int, process Processor) Token {
	raw := input[start:end]
	if process != nil {
		data = process(data, raw)
	}
	return Token{
		Type:  typ,
		Data:  data,
		Start: start,
		End:   end,
		Raw:   raw,
	}
}

// Value returns the data of a token without named groups.
func Value(raw string) map[string]string {
	return map[string]string{ValueKey: raw}
}

// Capture returns the text of group i from a submatch index slice produced by
// matching input[offset:]. Groups that did not participate yield "".
func Capture(input string, offset int, loc []int, i int) string {
	if 2*i+1 >= len(loc) || loc[2*i] < 0 {
		return ""
	}
	return input[offset+loc[2*i] : offset+loc[2*i+1]]
}

// Unrecognized builds the Failure for input that stopped matching at offset.
func Unrecognized(input string, offset int) *Failure {
	pos := PositionOf(input, offset)
	return &Failure{
		Error:  UnrecognizedMessage,
		Index:  pos.Offset,
		Line:   pos.Line,
		Column: pos.Column,
	}
}

// DebugPosition is the span of a token in a debug view.
type DebugPosition struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Debug is the shape consumed by token stream visualizers.
type Debug struct {
	Type     string            `json:"type"`
	Code     string            `json:"code"`
	Data     map[string]string `json:"data"`
	Position DebugPosition     `json:"position"`
}

// Debug converts the token into its visualizer shape.
func (t Token) Debug() Debug {
	return Debug{
		Type:     t.Type,
		Code:     t.Raw,
		Data:     t.Data,
		Position: DebugPosition{Start: t.Start, End: t.End},
	}
}
