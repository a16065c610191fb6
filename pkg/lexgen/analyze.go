package lexgen

import (
	"github.com/KromDaniel/lexgen/internal/compiler"
	"github.com/KromDaniel/lexgen/internal/definition"
)

// DefinitionReport describes how one definition is matched.
type DefinitionReport = compiler.DefinitionReport

// AnalysisResult contains the analysis of a definition list without code generation.
type AnalysisResult struct {
	Definitions []DefinitionReport `json:"definitions"`
}

// Analyze validates defs and reports the strategy, leading characters and
// guard chosen for each, without generating code.
//
// Example:
//
//	result, err := lexgen.Analyze([]lexgen.Definition{
//	    {Type: "WS", Value: " "},
//	    {Type: "ID", Regex: "(?<name>[a-z]+)"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Definitions[1].Generic)  // true: 26 leading characters exceed the bound
func Analyze(defs []Definition) (*AnalysisResult, error) {
	analyzed, err := definition.AnalyzeAll(defs)
	if err != nil {
		return nil, err
	}
	return &AnalysisResult{Definitions: compiler.AnalyzeDefinitions(analyzed)}, nil
}
