package lexgen

import (
	"errors"
	"fmt"
	"os"

	"sigs.k8s.io/yaml"
)

// File is the layout of a definitions file. YAML and JSON are both accepted.
//
//	Tokens:
//	  - type: WS
//	    regex: "[ \t]+"
//	  - type: ID
//	    regex: "(?<name>[a-z]+)"
//	    regexFlags: i
type File struct {
	Tokens []Definition `json:"Tokens"`
}

// ErrMissingTokens is returned for definition files without a Tokens list.
var ErrMissingTokens = errors.New(`definitions file should contain a "Tokens" list`)

// ParseDefinitions decodes a YAML or JSON definitions file.
func ParseDefinitions(data []byte) ([]Definition, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse definitions: %w", err)
	}
	if _, ok := raw["Tokens"].([]any); !ok {
		return nil, ErrMissingTokens
	}

	var f File
	if err := yaml.UnmarshalStrict(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse definitions: %w", err)
	}
	return f.Tokens, nil
}

// LoadDefinitions reads and decodes the definitions file at path.
func LoadDefinitions(path string) ([]Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definitions: %w", err)
	}
	defs, err := ParseDefinitions(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return defs, nil
}

// FromFile builds an interpreted lexer from the definitions file at path.
func FromFile(path string) (*Lexer, error) {
	defs, err := LoadDefinitions(path)
	if err != nil {
		return nil, err
	}
	return New(defs)
}

// CompileFile builds a compiled tokenizer from the definitions file at path.
func CompileFile(path string) (Tokenizer, error) {
	defs, err := LoadDefinitions(path)
	if err != nil {
		return nil, err
	}
	return Compile(defs)
}
