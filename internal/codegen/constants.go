// Package codegen provides code generation helpers and constants.
package codegen

import "fmt"

// RuntimePackage is the import path of the package generated tokenizers use
// for their token and result types.
const RuntimePackage = "github.com/KromDaniel/lexgen/token"

// Variable names used in generated code
const (
	InputName   = "input"
	OffsetName  = "offset"
	CharName    = "chr"
	TokensName  = "tokens"
	ProcessName = "process"
	StartName   = "start"
)

// Prefixes of per-definition identifiers, suffixed with the sequence ID.
const (
	PatternPrefix    = "Re"
	ValidationPrefix = "Valid"
	MatchPrefix      = "m"
)

// VariableName returns the identifier for the definition with the given sequence ID.
func VariableName(prefix string, sequenceID int) string {
	return fmt.Sprintf("%s%d", prefix, sequenceID)
}

// PackageVariableName returns the package-level identifier of a definition
// of the tokenizer typeName, e.g. ("Lexer", "Re", 3) -> "lexerRe3".
func PackageVariableName(typeName, prefix string, sequenceID int) string {
	return VariableName(LowerFirst(typeName)+prefix, sequenceID)
}

// LowerFirst converts the first character of a string to lowercase.
func LowerFirst(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]|0x20) + s[1:]
}

// UpperFirst converts the first character of a string to uppercase.
func UpperFirst(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]&^0x20) + s[1:]
}
