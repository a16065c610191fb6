package integration

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/KromDaniel/lexgen/pkg/lexgen"
)

// runGenerated writes a generated tokenizer next to program and runs it.
func runGenerated(t *testing.T, opts lexgen.Options, program string) string {
	t.Helper()
	return runGeneratedAll(t, []lexgen.Options{opts}, program)
}

// runGeneratedAll writes every generated tokenizer into one main package
// together with program and runs it.
func runGeneratedAll(t *testing.T, all []lexgen.Options, program string) string {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping go run integration test in short mode")
	}

	tmpDir := t.TempDir()
	for _, opts := range all {
		opts.OutputFile = filepath.Join(tmpDir, strings.ToLower(opts.Name)+".go")
		opts.Package = "main"

		if err := lexgen.Generate(opts); err != nil {
			t.Fatalf("generation of %s failed: %v", opts.Name, err)
		}
	}

	if err := os.WriteFile(filepath.Join(tmpDir, "main.go"), []byte(program), 0644); err != nil {
		t.Fatalf("failed to write test program: %v", err)
	}

	// Get the project root directory
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	// Working dir is tests/integration, so go up two levels
	projectRoot := filepath.Join(wd, "..", "..")

	// Create go.mod
	goMod := `module test

go 1.24

require github.com/KromDaniel/lexgen v0.0.0

replace github.com/KromDaniel/lexgen => ` + projectRoot + `
`
	if err := os.WriteFile(filepath.Join(tmpDir, "go.mod"), []byte(goMod), 0644); err != nil {
		t.Fatalf("failed to write go.mod: %v", err)
	}

	// Run go mod tidy and then the program
	cmd := exec.Command("go", "mod", "tidy")
	cmd.Dir = tmpDir
	if output, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("go mod tidy failed: %v\n%s", err, output)
	}

	cmd = exec.Command("go", "run", ".")
	cmd.Dir = tmpDir
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("test program failed: %v\n%s", err, output)
	}
	return string(output)
}

func TestGeneratedValidation(t *testing.T) {
	opts := lexgen.Options{
		Name: "Words",
		Definitions: []lexgen.Definition{
			{Type: "WS", Regex: "[ ]+"},
			{Type: "FN", Regex: "@fn", Valid: "@fn( |$)"},
			{Type: "WORD", Regex: "[^ ]*"},
		},
	}

	program := `package main

import "fmt"

func main() {
	for _, input := range []string{"  @fnx ", "@fn x", ""} {
		result := CompiledWords.Tokenize(input, nil)
		fmt.Printf("%q:", input)
		for _, t := range result.Tokens {
			fmt.Printf(" %s[%d,%d)%q", t.Type, t.Start, t.End, t.Data["value"])
		}
		fmt.Println()
	}
}
`

	output := runGenerated(t, opts, program)

	expected := []string{
		`"  @fnx ": WS[0,2)"  " WORD[2,6)"@fnx" WS[6,7)" "`,
		`"@fn x": FN[0,3)"@fn" WS[3,4)" " WORD[4,5)"x"`,
		`"":`,
	}
	for _, want := range expected {
		if !containsLine(output, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, output)
		}
	}
}

func TestGeneratedProcessorAndFailure(t *testing.T) {
	opts := lexgen.Options{
		Name: "Idents",
		Definitions: []lexgen.Definition{
			{Type: "WS", Value: " "},
			{Type: "NL", Value: "\n"},
			{Type: "LT", Regex: "(?<first>[a-z])(?<later>[a-z]*)", RegexFlags: "i"},
		},
	}

	program := `package main

import (
	"fmt"
	"strings"
)

func upper(captures map[string]string, raw string) map[string]string {
	return map[string]string{"first": strings.ToUpper(captures["first"]), "raw": raw}
}

func main() {
	ok := CompiledIdents.Tokenize("Sth else", upper)
	for _, t := range ok.Tokens {
		fmt.Printf("Token: %s %s %s\n", t.Type, t.Data["first"], t.Data["raw"])
	}

	bad := CompiledIdents.Tokenize("ab\ncd 42", nil)
	fmt.Printf("Failure: %s index=%d line=%d column=%d tokens=%d\n",
		bad.Failure.Error, bad.Failure.Index, bad.Failure.Line, bad.Failure.Column, len(bad.Tokens))
}
`

	output := runGenerated(t, opts, program)

	expected := []string{
		"Token: LT S Sth",
		"Token: WS   ",
		"Token: LT E else",
		"Failure: Unrecognized token index=6 line=2 column=4 tokens=0",
	}
	for _, want := range expected {
		if !containsLine(output, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, output)
		}
	}
}

func TestGeneratedTokenizersSharePackage(t *testing.T) {
	ws := lexgen.Definition{Type: "WS", Regex: "[ ]+"}
	all := []lexgen.Options{
		{
			Name:        "Alpha",
			Definitions: []lexgen.Definition{ws, {Type: "A", Regex: "a+"}},
		},
		{
			Name:        "Beta",
			Definitions: []lexgen.Definition{ws, {Type: "B", Regex: "b+", Valid: "b+( |$)"}},
		},
	}

	program := `package main

import "fmt"

func main() {
	for _, r := range []struct {
		name   string
		tokens int
		ok     bool
	}{
		{"alpha", len(CompiledAlpha.Tokenize("aa a", nil).Tokens), CompiledAlpha.Tokenize("aa a", nil).OK()},
		{"beta", len(CompiledBeta.Tokenize("bb b", nil).Tokens), CompiledBeta.Tokenize("bb b", nil).OK()},
		{"cross", 0, CompiledAlpha.Tokenize("bb", nil).OK()},
	} {
		fmt.Printf("%s %d %v\n", r.name, r.tokens, r.ok)
	}
}
`

	output := runGeneratedAll(t, all, program)

	for _, want := range []string{"alpha 3 true", "beta 3 true", "cross 0 false"} {
		if !containsLine(output, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, output)
		}
	}
}

func containsLine(output, want string) bool {
	for _, line := range strings.Split(output, "\n") {
		if line == want {
			return true
		}
	}
	return false
}
