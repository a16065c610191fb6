package compiler

import (
	"regexp/syntax"
	"sort"
	"strings"

	"github.com/KromDaniel/lexgen/internal/definition"
)

// DefinitionReport describes how one definition will be matched, without generating code.
type DefinitionReport struct {
	Type     string `json:"type"`
	Strategy string `json:"strategy"`

	// Generic definitions are attempted at every offset.
	Generic bool `json:"generic"`

	// Leading lists the characters the definition can start with (empty when generic).
	Leading string `json:"leading,omitempty"`

	// Guard is the kind of leading byte check emitted for the definition.
	Guard string `json:"guard"`

	// Captures lists named groups ordered by group index.
	Captures []string `json:"captures,omitempty"`

	// FeatureLabels are derived from pattern structure (sorted alphabetically)
	FeatureLabels []string `json:"feature_labels"`
}

// AnalyzeDefinitions reports the matching decisions taken for defs.
func AnalyzeDefinitions(defs []*definition.Analyzed) []DefinitionReport {
	reports := make([]DefinitionReport, 0, len(defs))
	for _, d := range defs {
		reports = append(reports, analyzeDefinition(d))
	}
	return reports
}

func analyzeDefinition(d *definition.Analyzed) DefinitionReport {
	report := DefinitionReport{
		Type:          d.Type,
		Strategy:      d.Strategy.String(),
		Generic:       d.Generic,
		FeatureLabels: deriveFeatureLabels(d),
	}

	if d.Generic {
		report.Guard = "none"
	} else {
		report.Leading = string(d.Leading)
		report.Guard = guardKind(&d.LeadingBytes)
	}

	if d.IsRegex() && d.HasNames() {
		report.Captures = captureNames(d)
	}

	return report
}

// deriveFeatureLabels extracts feature labels from the definition.
// Labels are sorted alphabetically.
func deriveFeatureLabels(d *definition.Analyzed) []string {
	var labels []string

	if !d.IsRegex() {
		if hasMultibyte(d.Literal) {
			labels = append(labels, "Multibyte")
		}
		if len(labels) == 0 {
			labels = append(labels, "Simple")
		}
		return labels
	}

	ast := d.Primary.AST

	// Validated: a cheaper pattern runs first
	if d.Valid != nil {
		labels = append(labels, "Validated")
	}

	// Anchored: pattern uses ^, $, \A or \z
	if hasLineAnchor(ast) {
		labels = append(labels, "Anchored")
	}

	// Alternation: pattern contains | (check AST for OpAlternate)
	if hasOp(ast, syntax.OpAlternate) {
		labels = append(labels, "Alternation")
	}

	// Captures: pattern has named capture groups
	if d.HasNames() {
		labels = append(labels, "Captures")
	}

	// RepeatingCaptures: a named group only keeps its last iteration
	if d.HasNames() && hasRepeatingCaptures(ast) {
		labels = append(labels, "RepeatingCaptures")
	}

	// CaseInsensitive: the i flag is set
	if strings.Contains(d.Primary.Flags, "i") {
		labels = append(labels, "CaseInsensitive")
	}

	// CharClass: pattern contains [...] or \d, \w, \s, etc.
	if hasOp(ast, syntax.OpCharClass, syntax.OpAnyCharNotNL, syntax.OpAnyChar) {
		labels = append(labels, "CharClass")
	}

	// Multibyte: pattern contains non-ASCII characters
	if hasMultibyte(d.Primary.Source) {
		labels = append(labels, "Multibyte")
	}

	// NonCapturing: pattern contains (?:...)
	if strings.Contains(d.Primary.Source, "(?:") {
		labels = append(labels, "NonCapturing")
	}

	// Quantifiers: pattern uses +, *, ?, {n,m}
	if hasOp(ast, syntax.OpStar, syntax.OpPlus, syntax.OpQuest, syntax.OpRepeat) {
		labels = append(labels, "Quantifiers")
	}

	// WordBoundary: pattern uses \b or \B
	if hasWordBoundary(ast) {
		labels = append(labels, "WordBoundary")
	}

	// Simple: no special features
	if len(labels) == 0 {
		labels = append(labels, "Simple")
	}

	sort.Strings(labels)
	return labels
}

// hasMultibyte checks if s contains non-ASCII characters.
func hasMultibyte(s string) bool {
	for _, r := range s {
		if r > 127 {
			return true
		}
	}
	return false
}
