// Package compiler generates Go source for a tokenizer from analyzed definitions.
package compiler

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"sort"

	"github.com/KromDaniel/lexgen/internal/codegen"
	"github.com/KromDaniel/lexgen/internal/definition"
	"github.com/dave/jennifer/jen"
)

// Config holds the configuration for code generation.
type Config struct {
	Name        string                 // Generated type name
	Package     string                 // Package clause of the generated file
	OutputFile  string                 // Destination used by Generate
	Definitions []*definition.Analyzed // Definitions in match order
	Verbose     bool                   // Enable verbose logging of per-definition decisions
}

// Compiler generates a tokenizer from analyzed definitions.
type Compiler struct {
	config Config
	file   *jen.File
	logger *Logger

	usesChar bool // True if any definition is guarded by the byte at the offset
}

// New creates a new compiler instance.
func New(config Config) *Compiler {
	c := &Compiler{
		config: config,
		logger: NewLogger(config.Verbose),
	}

	for _, d := range config.Definitions {
		if !d.Generic {
			c.usesChar = true
			break
		}
	}

	return c
}

// SetOutputFile sets the output file path.
func (c *Compiler) SetOutputFile(path string) {
	c.config.OutputFile = path
}

// Logger returns the verbose logger of the compiler.
func (c *Compiler) Logger() *Logger {
	return c.logger
}

// Source renders the generated file and returns it formatted.
func (c *Compiler) Source() ([]byte, error) {
	if err := c.build(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := c.file.Render(&buf); err != nil {
		return nil, fmt.Errorf("failed to render file: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to format source: %w", err)
	}
	return formatted, nil
}

// Generate generates the Go code and writes it to the output file.
func (c *Compiler) Generate() error {
	if err := c.build(); err != nil {
		return err
	}

	// Save to file
	if err := c.file.Save(c.config.OutputFile); err != nil {
		return fmt.Errorf("failed to save file: %w", err)
	}

	// Format the generated file
	if err := formatFile(c.config.OutputFile); err != nil {
		return fmt.Errorf("failed to format file: %w", err)
	}

	c.logger.Log("Wrote %s", c.config.OutputFile)
	return nil
}

// build creates a fresh jen file so Source and Generate can be called repeatedly.
func (c *Compiler) build() error {
	if c.config.Name == "" {
		return fmt.Errorf("type name is required")
	}
	if c.config.Package == "" {
		return fmt.Errorf("package name is required")
	}

	c.file = jen.NewFile(c.config.Package)
	c.file.HeaderComment("Code generated by lexgen. DO NOT EDIT.")

	c.logger.Section("Definitions")
	for _, d := range c.config.Definitions {
		c.logger.Definition(d)
	}

	c.generatePatterns()

	// Generate the main struct type
	c.file.Comment(fmt.Sprintf("%s tokenizes input using %d definitions.", c.config.Name, len(c.config.Definitions)))
	c.file.Type().Id(c.config.Name).Struct()
	c.file.Line()

	// Generate convenience variable for direct usage
	c.file.Var().Id("Compiled" + codegen.UpperFirst(c.config.Name)).Op("=").Id(c.config.Name).Values()
	c.file.Line()

	c.generateTokenize()
	return nil
}

// method returns a jen.Statement for declaring a method on the generated struct.
func (c *Compiler) method(name string) *jen.Statement {
	return c.file.Func().
		Params(jen.Id(c.config.Name)).
		Id(name)
}

// patternVar names the package-level pattern variable of d, prefixed with the
// generated type name.
func (c *Compiler) patternVar(prefix string, d *definition.Analyzed) string {
	return codegen.PackageVariableName(c.config.Name, prefix, d.SequenceID)
}

// generatePatterns declares one compiled pattern per regex definition.
func (c *Compiler) generatePatterns() {
	var vars []jen.Code
	for _, d := range c.config.Definitions {
		if !d.IsRegex() {
			continue
		}
		if d.Valid != nil {
			vars = append(vars, jen.Id(c.patternVar(codegen.ValidationPrefix, d)).
				Op("=").Qual("regexp", "MustCompile").Call(jen.Lit(d.Valid.Anchored)))
		}
		vars = append(vars, jen.Id(c.patternVar(codegen.PatternPrefix, d)).
			Op("=").Qual("regexp", "MustCompile").Call(jen.Lit(d.Primary.Anchored)))
	}

	if len(vars) == 0 {
		return
	}
	c.file.Var().Defs(vars...)
	c.file.Line()
}

// generateTokenize emits the Tokenize method: one scan loop trying each
// definition in order at the current offset.
func (c *Compiler) generateTokenize() {
	input := jen.Id(codegen.InputName)
	offset := jen.Id(codegen.OffsetName)

	body := []jen.Code{
		jen.Id(codegen.TokensName).Op(":=").Make(
			jen.Index().Qual(codegen.RuntimePackage, "Token"),
			jen.Lit(0),
			jen.Len(input.Clone()).Op("/").Lit(4).Op("+").Lit(1),
		),
		offset.Clone().Op(":=").Lit(0),
	}

	var loop []jen.Code
	if c.usesChar {
		loop = append(loop, jen.Id(codegen.CharName).Op(":=").Add(input.Clone()).Index(offset.Clone()))
		loop = append(loop, jen.Line())
	}
	for _, d := range c.config.Definitions {
		loop = append(loop, jen.Comment(fmt.Sprintf("%q: %s", d.Type, d.Strategy)))
		loop = append(loop, c.generateDefinition(d))
		loop = append(loop, jen.Line())
	}
	loop = append(loop, jen.Return(jen.Qual(codegen.RuntimePackage, "Result").Values(jen.Dict{
		jen.Id("Failure"): jen.Qual(codegen.RuntimePackage, "Unrecognized").Call(input.Clone(), offset.Clone()),
	})))

	body = append(body,
		jen.For(offset.Clone().Op("<").Len(input.Clone())).Block(loop...),
		jen.Line(),
		jen.Return(jen.Qual(codegen.RuntimePackage, "Result").Values(jen.Dict{
			jen.Id("Tokens"): jen.Id(codegen.TokensName),
		})),
	)

	c.file.Comment("Tokenize splits input into tokens. Definitions are tried in order at every")
	c.file.Comment("offset and the first match wins. Unrecognized input is reported in the result.")
	c.method("Tokenize").
		Params(
			jen.Id(codegen.InputName).String(),
			jen.Id(codegen.ProcessName).Qual(codegen.RuntimePackage, "Processor"),
		).
		Qual(codegen.RuntimePackage, "Result").
		Block(body...)
}

// generateDefinition emits the guarded match step for one definition.
func (c *Compiler) generateDefinition(d *definition.Analyzed) jen.Code {
	switch d.Strategy {
	case definition.Character, definition.Text:
		return c.generateValue(d)
	case definition.Regex:
		return c.guard(d, c.generateRegex(d)...)
	case definition.ValidatedRegex:
		valid := jen.Id(c.patternVar(codegen.ValidationPrefix, d)).
			Dot("MatchString").Call(jen.Id(codegen.InputName).Index(jen.Id(codegen.OffsetName), jen.Empty()))
		return c.guard(d, jen.If(valid).Block(c.generateRegex(d)...))
	}
	return jen.Null()
}

// guard wraps code in the leading-byte condition of d.
// Generic definitions are attempted unconditionally.
func (c *Compiler) guard(d *definition.Analyzed, code ...jen.Code) jen.Code {
	if d.Generic {
		return jen.Block(code...)
	}
	return jen.If(charactersCondition(&d.LeadingBytes)).Block(code...)
}

// generateValue emits a fixed-length literal comparison.
// The guard already compares the first byte, so a one byte literal needs nothing more.
func (c *Compiler) generateValue(d *definition.Analyzed) jen.Code {
	input := jen.Id(codegen.InputName)
	offset := jen.Id(codegen.OffsetName)

	cond := charactersCondition(&d.LeadingBytes)
	if len(d.Literal) > 1 {
		cond = cond.Op("&&").Qual("strings", "HasPrefix").Call(
			input.Clone().Index(offset.Clone(), jen.Empty()),
			jen.Lit(d.Literal),
		)
	}

	return jen.If(cond).Block(
		jen.Id(codegen.TokensName).Op("=").Append(
			jen.Id(codegen.TokensName),
			jen.Qual(codegen.RuntimePackage, "New").Call(
				jen.Lit(d.Type),
				jen.Qual(codegen.RuntimePackage, "Value").Call(jen.Lit(d.Literal)),
				input.Clone(),
				offset.Clone(),
				offset.Clone().Op("+").Lit(len(d.Literal)),
				jen.Id(codegen.ProcessName),
			),
		),
		offset.Clone().Op("+=").Lit(len(d.Literal)),
		jen.Continue(),
	)
}

// generateRegex emits an anchored match of the primary pattern at the offset.
// Empty matches are rejected so the offset always advances.
func (c *Compiler) generateRegex(d *definition.Analyzed) []jen.Code {
	input := jen.Id(codegen.InputName)
	offset := jen.Id(codegen.OffsetName)
	start := jen.Id(codegen.StartName)
	re := jen.Id(c.patternVar(codegen.PatternPrefix, d))
	m := jen.Id(codegen.VariableName(codegen.MatchPrefix, d.SequenceID))

	find := "FindStringIndex"
	data := jen.Qual(codegen.RuntimePackage, "Value").Call(input.Clone().Index(start.Clone(), offset.Clone()))
	if d.HasNames() {
		find = "FindStringSubmatchIndex"
		dict := jen.Dict{}
		for _, name := range captureNames(d) {
			dict[jen.Lit(name)] = jen.Qual(codegen.RuntimePackage, "Capture").Call(
				input.Clone(), start.Clone(), m.Clone(), jen.Lit(d.Primary.Names[name]),
			)
		}
		data = jen.Map(jen.String()).String().Values(dict)
	}

	return []jen.Code{
		jen.If(
			m.Clone().Op(":=").Add(re).Dot(find).Call(input.Clone().Index(offset.Clone(), jen.Empty())),
			m.Clone().Op("!=").Nil().Op("&&").Add(m.Clone()).Index(jen.Lit(1)).Op(">").Lit(0),
		).Block(
			start.Clone().Op(":=").Add(offset.Clone()),
			offset.Clone().Op("+=").Add(m.Clone()).Index(jen.Lit(1)),
			jen.Id(codegen.TokensName).Op("=").Append(
				jen.Id(codegen.TokensName),
				jen.Qual(codegen.RuntimePackage, "New").Call(
					jen.Lit(d.Type),
					data,
					input.Clone(),
					start.Clone(),
					offset.Clone(),
					jen.Id(codegen.ProcessName),
				),
			),
			jen.Continue(),
		),
	}
}

// captureNames returns the named groups of d ordered by group index.
func captureNames(d *definition.Analyzed) []string {
	names := make([]string, 0, len(d.Primary.Names))
	for name := range d.Primary.Names {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return d.Primary.Names[names[i]] < d.Primary.Names[names[j]]
	})
	return names
}

// formatFile reads a file, formats it with go/format, and writes it back.
func formatFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	formatted, err := format.Source(src)
	if err != nil {
		return err
	}
	return os.WriteFile(path, formatted, 0644)
}
