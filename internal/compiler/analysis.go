package compiler

import "regexp/syntax"

// hasRepeatingCaptures checks if the regex has any capture groups in repeating context.
// Repeating contexts include *, +, ?, and {n,m} quantifiers.
// Note: Go's regexp captures only the LAST match from repeating groups.
// For example, (?<c>\w)+ matching "abc" yields {c: "c"}, not every letter.
func hasRepeatingCaptures(re *syntax.Regexp) bool {
	return walkCheckRepeating(re, false)
}

// walkCheckRepeating recursively walks the AST to detect captures in repeating context.
func walkCheckRepeating(re *syntax.Regexp, inRepeat bool) bool {
	// If this is a capture and we're in a repeating context
	if re.Op == syntax.OpCapture && inRepeat {
		return true
	}

	// Check if this node introduces repetition
	isRepeating := false
	switch re.Op {
	case syntax.OpStar, syntax.OpPlus, syntax.OpQuest, syntax.OpRepeat:
		isRepeating = true
	}

	// Recursively check children
	for _, sub := range re.Sub {
		if walkCheckRepeating(sub, inRepeat || isRepeating) {
			return true
		}
	}

	return false
}

// hasOp checks if the AST contains any of ops.
func hasOp(re *syntax.Regexp, ops ...syntax.Op) bool {
	if re == nil {
		return false
	}
	for _, op := range ops {
		if re.Op == op {
			return true
		}
	}
	for _, sub := range re.Sub {
		if hasOp(sub, ops...) {
			return true
		}
	}
	return false
}

// hasLineAnchor checks if the regex uses ^, $, \A or \z.
// Patterns are matched against the input from the current offset, so these
// assertions see the offset as the start of text.
func hasLineAnchor(re *syntax.Regexp) bool {
	return hasOp(re, syntax.OpBeginLine, syntax.OpEndLine, syntax.OpBeginText, syntax.OpEndText)
}

// hasWordBoundary checks if the regex uses \b or \B.
// At the current offset a word boundary cannot see the preceding character.
func hasWordBoundary(re *syntax.Regexp) bool {
	return hasOp(re, syntax.OpWordBoundary, syntax.OpNoWordBoundary)
}
