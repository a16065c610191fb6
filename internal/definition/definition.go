// Package definition validates token definitions and picks a matching strategy for each.
package definition

import (
	"fmt"
	"unicode/utf8"

	"github.com/KromDaniel/lexgen/internal/pattern"
)

// Definition is a caller rule describing one token type.
// Exactly one of Value and Regex must be set; Valid is only allowed with Regex.
type Definition struct {
	Type       string `json:"type"`
	Value      string `json:"value,omitempty"`
	Regex      string `json:"regex,omitempty"`
	RegexFlags string `json:"regexFlags,omitempty"`
	Valid      string `json:"valid,omitempty"`
	ValidFlags string `json:"validFlags,omitempty"`
}

// Strategy is the matching algorithm chosen for a definition.
type Strategy int

const (
	Character Strategy = iota
	Text
	Regex
	ValidatedRegex
)

func (s Strategy) String() string {
	switch s {
	case Character:
		return "character"
	case Text:
		return "text"
	case Regex:
		return "regex"
	case ValidatedRegex:
		return "validatedRegex"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ValidationError reports a malformed definition.
type ValidationError struct {
	Type   string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Type == "" {
		return e.Reason
	}
	return fmt.Sprintf("definition %q: %s", e.Type, e.Reason)
}

// Analyzed is an immutable, validated definition ready for matching.
// It is safe to share between goroutines.
type Analyzed struct {
	SequenceID int
	Type       string
	Strategy   Strategy

	// Literal is the value of Character and Text definitions.
	Literal string

	// Primary and Valid are set for Regex and ValidatedRegex definitions.
	Primary *pattern.Compiled
	Valid   *pattern.Compiled

	// Leading lists the runes a match can start with, sorted. It is empty
	// when Generic is set.
	Leading      []rune
	Generic      bool
	LeadingBytes pattern.ByteSet
}

// Analyze validates def and derives its strategy and leading characters.
// sequenceID only names identifiers in generated code.
func Analyze(def Definition, sequenceID int) (*Analyzed, error) {
	if def.Type == "" {
		return nil, &ValidationError{Reason: "missing definition type"}
	}
	if def.Regex == "" && def.Value == "" {
		return nil, &ValidationError{Type: def.Type, Reason: "needs to have either 'regex' or a non-empty 'value'"}
	}
	if def.Regex != "" && def.Value != "" {
		return nil, &ValidationError{Type: def.Type, Reason: "can have only one of 'regex' or 'value'"}
	}
	if def.Value != "" && def.Valid != "" {
		return nil, &ValidationError{Type: def.Type, Reason: "'valid' is only allowed together with 'regex'"}
	}

	if def.Value != "" {
		return analyzeValue(def, sequenceID), nil
	}
	return analyzeRegex(def, sequenceID)
}

// AnalyzeAll analyzes defs in declared order, using the index as sequence ID.
func AnalyzeAll(defs []Definition) ([]*Analyzed, error) {
	analyzed := make([]*Analyzed, 0, len(defs))
	for i, def := range defs {
		a, err := Analyze(def, i)
		if err != nil {
			return nil, fmt.Errorf("definition %d: %w", i, err)
		}
		analyzed = append(analyzed, a)
	}
	return analyzed, nil
}

func analyzeValue(def Definition, sequenceID int) *Analyzed {
	strategy := Text
	if utf8.RuneCountInString(def.Value) == 1 {
		strategy = Character
	}

	first, _ := utf8.DecodeRuneInString(def.Value)
	a := &Analyzed{
		SequenceID: sequenceID,
		Type:       def.Type,
		Strategy:   strategy,
		Literal:    def.Value,
		Leading:    []rune{first},
	}
	a.LeadingBytes.Add(def.Value[0])
	return a
}

func analyzeRegex(def Definition, sequenceID int) (*Analyzed, error) {
	primary, err := pattern.Compile(def.Regex, def.RegexFlags)
	if err != nil {
		return nil, fmt.Errorf("definition %q: %w", def.Type, err)
	}

	a := &Analyzed{
		SequenceID: sequenceID,
		Type:       def.Type,
		Strategy:   Regex,
		Primary:    primary,
	}

	source := primary
	if def.Valid != "" {
		valid, err := pattern.Compile(def.Valid, def.ValidFlags)
		if err != nil {
			return nil, fmt.Errorf("definition %q: validation: %w", def.Type, err)
		}
		a.Strategy = ValidatedRegex
		a.Valid = valid
		source = valid
	}

	leading, ok := pattern.LeadingCharacters(source.AST, pattern.LeadingBound)
	if !ok || containsRuneError(leading) {
		a.Generic = true
		return a, nil
	}

	a.Leading = leading
	a.LeadingBytes = pattern.LeadingBytes(leading)
	return a, nil
}

// containsRuneError reports whether runes contains U+FFFD, which also
// matches invalid UTF-8 starting with any byte.
func containsRuneError(runes []rune) bool {
	for _, r := range runes {
		if r == utf8.RuneError {
			return true
		}
	}
	return false
}

// Accepts reports whether a match could start with byte b.
func (a *Analyzed) Accepts(b byte) bool {
	return a.Generic || a.LeadingBytes.Has(b)
}

// HasNames reports whether matches carry named captures instead of {"value": text}.
func (a *Analyzed) HasNames() bool {
	return a.Primary != nil && a.Primary.HasNames()
}

// IsRegex reports whether the definition is pattern-based.
func (a *Analyzed) IsRegex() bool {
	return a.Strategy == Regex || a.Strategy == ValidatedRegex
}
