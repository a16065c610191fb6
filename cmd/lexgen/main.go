// Command lexgen generates, runs and inspects tokenizers built from a
// definitions file.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/KromDaniel/lexgen/pkg/lexgen"
	"github.com/KromDaniel/lexgen/token"
	"github.com/alecthomas/kong"
)

type cli struct {
	Generate generateCmd `cmd:"" help:"Generate Go source for a tokenizer"`
	Tokenize tokenizeCmd `cmd:"" help:"Tokenize a file (or stdin) and print the tokens as JSON"`
	Analyze  analyzeCmd  `cmd:"" help:"Print the strategy and guard chosen for each definition"`
}

// streams are the standard streams commands read from and write to.
type streams struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

type generateCmd struct {
	Definitions string `help:"Definitions file (YAML or JSON)" short:"d" required:"" type:"existingfile"`
	Name        string `help:"Generated type name" short:"n" default:"Lexer"`
	Package     string `help:"Package of the generated file" short:"p" default:"main"`
	Output      string `help:"Output file" short:"o" required:""`
	Verbose     bool   `help:"Log per-definition decisions to stderr" short:"v"`
}

func (c *generateCmd) Run(s *streams) error {
	defs, err := lexgen.LoadDefinitions(c.Definitions)
	if err != nil {
		return err
	}

	err = lexgen.Generate(lexgen.Options{
		Definitions: defs,
		Name:        c.Name,
		Package:     c.Package,
		OutputFile:  c.Output,
		Verbose:     c.Verbose,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(s.stderr, "Generated %s (%d definitions)\n", c.Output, len(defs))
	return nil
}

type tokenizeCmd struct {
	Definitions string `help:"Definitions file (YAML or JSON)" short:"d" required:"" type:"existingfile"`
	Compiled    bool   `help:"Use the compiled tokenizer instead of the interpreted lexer"`
	Debug       bool   `help:"Print tokens in the debug view shape"`
	Input       string `arg:"" optional:"" help:"Input file; stdin when omitted"`
}

func (c *tokenizeCmd) Run(s *streams) error {
	input, err := c.read(s.stdin)
	if err != nil {
		return err
	}

	var tokens []token.Token
	if c.Compiled {
		tokenize, err := lexgen.CompileFile(c.Definitions)
		if err != nil {
			return err
		}
		result := tokenize(input, nil)
		if !result.OK() {
			f := result.Failure
			return fmt.Errorf("%s (line: %d, column: %d)", f.Error, f.Line, f.Column)
		}
		tokens = result.Tokens
	} else {
		l, err := lexgen.FromFile(c.Definitions)
		if err != nil {
			return err
		}
		tokens, err = l.For(input).Process()
		if err != nil {
			return err
		}
	}

	enc := json.NewEncoder(s.stdout)
	enc.SetIndent("", "  ")
	if !c.Debug {
		return enc.Encode(tokens)
	}

	views := make([]token.Debug, len(tokens))
	for i, t := range tokens {
		views[i] = t.Debug()
	}
	return enc.Encode(views)
}

func (c *tokenizeCmd) read(stdin io.Reader) (string, error) {
	if c.Input == "" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(c.Input)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return string(data), nil
}

type analyzeCmd struct {
	Definitions string `help:"Definitions file (YAML or JSON)" short:"d" required:"" type:"existingfile"`
}

func (c *analyzeCmd) Run(s *streams) error {
	defs, err := lexgen.LoadDefinitions(c.Definitions)
	if err != nil {
		return err
	}
	result, err := lexgen.Analyze(defs)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(s.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func newParser(c *cli, s *streams, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name("lexgen"),
		kong.Description("Build tokenizers from declarative token definitions."),
		kong.UsageOnError(),
		kong.Writers(s.stdout, s.stderr),
		kong.Bind(s),
	}, options...)
	return kong.New(c, options...)
}

func main() {
	s := &streams{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr}

	var c cli
	parser, err := newParser(&c, s)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)
	parser.FatalIfErrorf(ctx.Run())
}
