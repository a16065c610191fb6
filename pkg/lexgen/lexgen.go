// Package lexgen builds tokenizers from declarative token definitions.
//
// A definition list can be run three ways:
//   - New returns an interpreted Lexer whose cursor raises errors,
//   - Compile returns a Tokenizer backed by a per-leading-byte dispatch table,
//   - Generate writes Go source for a specialized tokenizer type.
//
// Compiled and generated tokenizers report unrecognized input inside the
// returned Result instead of as an error.
package lexgen

import (
	"fmt"

	"github.com/KromDaniel/lexgen/internal/compiler"
	"github.com/KromDaniel/lexgen/internal/definition"
	"github.com/KromDaniel/lexgen/internal/lexer"
	"github.com/KromDaniel/lexgen/internal/pattern"
	"github.com/KromDaniel/lexgen/token"
)

type (
	// Definition describes how to recognize one token type.
	Definition = definition.Definition

	// Lexer is an interpreted tokenizer. Use For to get a cursor over an input.
	Lexer = lexer.Lexer

	// Processor is a cursor over one input, created by Lexer.For.
	Processor = lexer.Processor

	// ValidationError reports a malformed definition.
	ValidationError = definition.ValidationError

	// PatternError reports a regex or flag string that does not compile.
	PatternError = pattern.Error

	// UnrecognizedTokenError is returned by interpreted lexers for input no definition matches.
	UnrecognizedTokenError = lexer.UnrecognizedTokenError

	// ConsistencyError is returned by interpreted lexers when a validation
	// pattern accepts input its primary pattern rejects.
	ConsistencyError = lexer.ConsistencyError
)

// Tokenizer runs a compiled definition list over input.
// process may be nil. It is safe for concurrent use.
type Tokenizer func(input string, process token.Processor) token.Result

// New analyzes defs and returns an interpreted lexer.
func New(defs []Definition) (*Lexer, error) {
	analyzed, err := definition.AnalyzeAll(defs)
	if err != nil {
		return nil, err
	}
	return lexer.New(analyzed), nil
}

// Compile analyzes defs and returns a tokenizer driven by a dispatch table.
// Analysis errors are returned; building the table never fails.
func Compile(defs []Definition) (Tokenizer, error) {
	analyzed, err := definition.AnalyzeAll(defs)
	if err != nil {
		return nil, err
	}
	return lexer.NewProgram(analyzed).Tokenize, nil
}

// Options configures code generation.
type Options struct {
	// Definitions are the token definitions, in match order
	Definitions []Definition

	// Name is the generated type (e.g., "Lexer" generates "Lexer" and "CompiledLexer")
	Name string

	// Package is the Go package name for the generated code
	Package string

	// OutputFile is the path where generated code will be written
	OutputFile string

	// Verbose logs per-definition decisions to stderr
	Verbose bool
}

// Validate checks if the options are valid.
func (o Options) Validate() error {
	if o.Name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if o.Package == "" {
		return fmt.Errorf("package cannot be empty")
	}
	return nil
}

// Generate writes the Go source of a tokenizer for opts.Definitions to opts.OutputFile.
func Generate(opts Options) error {
	if opts.OutputFile == "" {
		return fmt.Errorf("invalid options: output file cannot be empty")
	}

	c, err := newCompiler(opts)
	if err != nil {
		return err
	}

	if err := c.Generate(); err != nil {
		return fmt.Errorf("failed to generate code: %w", err)
	}
	return nil
}

// GenerateSource returns the Go source of a tokenizer for opts.Definitions.
// OutputFile is ignored.
func GenerateSource(opts Options) ([]byte, error) {
	c, err := newCompiler(opts)
	if err != nil {
		return nil, err
	}

	src, err := c.Source()
	if err != nil {
		return nil, fmt.Errorf("failed to generate code: %w", err)
	}
	return src, nil
}

func newCompiler(opts Options) (*compiler.Compiler, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	analyzed, err := definition.AnalyzeAll(opts.Definitions)
	if err != nil {
		return nil, err
	}

	return compiler.New(compiler.Config{
		Name:        opts.Name,
		Package:     opts.Package,
		OutputFile:  opts.OutputFile,
		Definitions: analyzed,
		Verbose:     opts.Verbose,
	}), nil
}
