package compiler

import (
	"github.com/KromDaniel/lexgen/internal/codegen"
	"github.com/KromDaniel/lexgen/internal/pattern"
	"github.com/dave/jennifer/jen"
)

// smallSetLimit is the largest leading byte set rendered as a disjunction of
// equalities. Larger sets use an inline bitmap.
const smallSetLimit = 8

// Guard kinds, as reported by guardKind.
const (
	GuardTrue        = "true"
	GuardEquality    = "equality"
	GuardDisjunction = "disjunction"
	GuardBitmap      = "bitmap"
)

// guardKind names the condition charactersCondition renders for set.
func guardKind(set *pattern.ByteSet) string {
	switch n := set.Len(); {
	case n == 0:
		return GuardTrue
	case n == 1:
		return GuardEquality
	case n <= smallSetLimit:
		return GuardDisjunction
	default:
		return GuardBitmap
	}
}

// charactersCondition generates the condition that holds when the byte at
// the offset is in set.
func charactersCondition(set *pattern.ByteSet) *jen.Statement {
	ch := jen.Id(codegen.CharName)

	switch guardKind(set) {
	case GuardTrue:
		return jen.True()
	case GuardEquality:
		return ch.Op("==").Lit(int(set.Bytes()[0]))
	case GuardDisjunction:
		return jen.Parens(generateSmallSetCheck(set.Bytes()))
	}
	return generateBitmapCheck(set)
}

// generateSmallSetCheck generates OR-ed equalities for a small byte set.
func generateSmallSetCheck(bytes []byte) *jen.Statement {
	ch := jen.Id(codegen.CharName)

	var stmt *jen.Statement
	for _, b := range bytes {
		condition := ch.Clone().Op("==").Lit(int(b))
		if stmt == nil {
			stmt = condition
		} else {
			stmt = stmt.Op("||").Add(condition)
		}
	}

	return stmt
}

// generateBitmapCheck generates a bitmap lookup for larger byte sets.
// The condition holds when the byte IS in the set.
func generateBitmapCheck(set *pattern.ByteSet) *jen.Statement {
	var values []jen.Code
	for _, b := range *set {
		values = append(values, jen.Lit(int(b)))
	}

	// We define the bitmap inline. Go compiler handles this efficiently.
	// if [32]byte{...}[chr/8] & (1 << (chr%8)) != 0
	ch := jen.Id(codegen.CharName)
	return jen.Index(jen.Lit(32)).Byte().Values(values...).Index(
		ch.Clone().Op("/").Lit(8),
	).Op("&").Parens(
		jen.Lit(1).Op("<<").Parens(ch.Clone().Op("%").Lit(8)),
	).Op("!=").Lit(0)
}
