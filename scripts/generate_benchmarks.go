//go:build ignore

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"

	"github.com/KromDaniel/lexgen/pkg/lexgen"
)

// TestCase is a tokenizer to generate together with the inputs its
// benchmark file runs on.
type TestCase struct {
	Name        string
	Definitions []lexgen.Definition
	Input       []string
}

var testCases = []TestCase{
	{
		Name: "JSON",
		Definitions: []lexgen.Definition{
			{Type: "LBRACE", Value: "{"},
			{Type: "RBRACE", Value: "}"},
			{Type: "LBRACKET", Value: "["},
			{Type: "RBRACKET", Value: "]"},
			{Type: "COLON", Value: ":"},
			{Type: "COMMA", Value: ","},
			{Type: "STRING", Regex: `"(?<content>(?:[^"\\]|\\.)*)"`},
			{Type: "NUMBER", Regex: `-?(?:0|[1-9][0-9]*)(?:\.[0-9]+)?(?:[eE][-+]?[0-9]+)?`},
			{Type: "KEYWORD", Regex: `true|false|null`},
			{Type: "WS", Regex: `\s+`},
		},
		Input: []string{
			`{"name": "lexgen", "version": 1.5, "tags": ["lexer", "codegen"], "stable": true}`,
			strings.Repeat(`{"id": 12345, "score": -0.25e-3, "ok": false, "note": "escaped \"quote\""}, `, 20),
		},
	},
}

const testTemplate = `// Code generated by scripts/generate_benchmarks.go. DO NOT EDIT.

package generated

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/KromDaniel/lexgen/pkg/lexgen"
)

var {{.Var}}Definitions = []lexgen.Definition{
{{- range .Definitions}}
	{ {{- .}} },
{{- end}}
}

var {{.Var}}Inputs = []string{
{{- range .Inputs}}
	{{.}},
{{- end}}
}

func Test{{.Name}}Tokenize(t *testing.T) {
	tokenize, err := lexgen.Compile({{.Var}}Definitions)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	for i, input := range {{.Var}}Inputs {
		want := tokenize(input, nil)
		got := {{.Name}}{}.Tokenize(input, nil)
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("input %d: generated %+v, compiled %+v", i, got, want)
		}
	}
}

func Benchmark{{.Name}}Tokenize(b *testing.B) {
	l, err := lexgen.New({{.Var}}Definitions)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	tokenize, err := lexgen.Compile({{.Var}}Definitions)
	if err != nil {
		b.Fatalf("Compile failed: %v", err)
	}

	for i, input := range {{.Var}}Inputs {
		b.Run(fmt.Sprintf("interpreted %d", i), func(b *testing.B) {
			b.ReportAllocs()
			for n := 0; n < b.N; n++ {
				l.For(input).Process()
			}
		})

		b.Run(fmt.Sprintf("compiled %d", i), func(b *testing.B) {
			b.ReportAllocs()
			for n := 0; n < b.N; n++ {
				tokenize(input, nil)
			}
		})

		b.Run(fmt.Sprintf("generated %d", i), func(b *testing.B) {
			b.ReportAllocs()
			for n := 0; n < b.N; n++ {
				{{.Name}}{}.Tokenize(input, nil)
			}
		})
	}
}
`

type templateData struct {
	Name        string
	Var         string
	Definitions []string
	Inputs      []string
}

// definitionLiteral renders the non-empty fields of d as Go struct literal fields.
func definitionLiteral(d lexgen.Definition) string {
	fields := []string{"Type: " + strconv.Quote(d.Type)}
	add := func(name, value string) {
		if value != "" {
			fields = append(fields, name+": "+strconv.Quote(value))
		}
	}
	add("Value", d.Value)
	add("Regex", d.Regex)
	add("RegexFlags", d.RegexFlags)
	add("Valid", d.Valid)
	add("ValidFlags", d.ValidFlags)
	return strings.Join(fields, ", ")
}

func main() {
	outDir := filepath.Join("benchmarks", "generated")
	tmpl := template.Must(template.New("test").Parse(testTemplate))

	for _, tc := range testCases {
		err := lexgen.Generate(lexgen.Options{
			Definitions: tc.Definitions,
			Name:        tc.Name,
			Package:     "generated",
			OutputFile:  filepath.Join(outDir, strings.ToLower(tc.Name)+".go"),
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", tc.Name, err)
			os.Exit(1)
		}

		data := templateData{
			Name: tc.Name,
			Var:  strings.ToLower(tc.Name),
		}
		for _, d := range tc.Definitions {
			data.Definitions = append(data.Definitions, definitionLiteral(d))
		}
		for _, in := range tc.Input {
			data.Inputs = append(data.Inputs, strconv.Quote(in))
		}

		f, err := os.Create(filepath.Join(outDir, strings.ToLower(tc.Name)+"_test.go"))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if err := tmpl.Execute(f, data); err != nil {
			f.Close()
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		f.Close()

		fmt.Printf("Generated %s\n", tc.Name)
	}
}
