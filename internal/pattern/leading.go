package pattern

import (
	"regexp/syntax"
	"sort"
	"unicode"
)

// LeadingBound is the largest leading set worth a per-character guard.
const LeadingBound = 25

// LeadingCharacters derives the characters a match of re can start with.
//
// ok is false when the set is unbounded (any-char, more than bound runes),
// empty, or when re can match the empty string. Such patterns are generic and
// must be attempted at every offset.
func LeadingCharacters(re *syntax.Regexp, bound int) (runes []rune, ok bool) {
	w := &leadingWalker{
		bound: bound,
		set:   make(map[rune]struct{}),
	}

	nullable, ok := w.first(re)
	if !ok || nullable || len(w.set) == 0 {
		return nil, false
	}

	runes = make([]rune, 0, len(w.set))
	for r := range w.set {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
	return runes, true
}

type leadingWalker struct {
	bound int
	set   map[rune]struct{}
}

// first adds FIRST(re) to the walker's set and reports whether re can match
// the empty string. ok is false once the set is known to be unbounded.
func (w *leadingWalker) first(re *syntax.Regexp) (nullable bool, ok bool) {
	switch re.Op {
	case syntax.OpNoMatch:
		return false, true

	case syntax.OpEmptyMatch,
		syntax.OpBeginLine, syntax.OpEndLine,
		syntax.OpBeginText, syntax.OpEndText,
		syntax.OpWordBoundary, syntax.OpNoWordBoundary:
		// Zero-width: whatever follows decides the first character.
		return true, true

	case syntax.OpLiteral:
		if len(re.Rune) == 0 {
			return true, true
		}
		return false, w.addRune(re.Rune[0], re.Flags&syntax.FoldCase != 0)

	case syntax.OpCharClass:
		for i := 0; i+1 < len(re.Rune); i += 2 {
			lo, hi := re.Rune[i], re.Rune[i+1]
			if int(hi)-int(lo) >= w.bound {
				return false, false
			}
			for r := lo; r <= hi; r++ {
				if !w.add(r) {
					return false, false
				}
			}
		}
		return false, true

	case syntax.OpAnyChar, syntax.OpAnyCharNotNL:
		return false, false

	case syntax.OpCapture, syntax.OpPlus:
		return w.first(re.Sub[0])

	case syntax.OpStar, syntax.OpQuest:
		_, ok := w.first(re.Sub[0])
		return true, ok

	case syntax.OpRepeat:
		if re.Max == 0 {
			return true, true
		}
		nullable, ok := w.first(re.Sub[0])
		return nullable || re.Min == 0, ok

	case syntax.OpConcat:
		for _, sub := range re.Sub {
			nullable, ok := w.first(sub)
			if !ok {
				return false, false
			}
			if !nullable {
				return false, true
			}
		}
		return true, true

	case syntax.OpAlternate:
		anyNullable := false
		for _, sub := range re.Sub {
			nullable, ok := w.first(sub)
			if !ok {
				return false, false
			}
			anyNullable = anyNullable || nullable
		}
		return anyNullable, true
	}

	return false, false
}

// addRune adds r and, when fold is set, every rune in its case-folding orbit.
func (w *leadingWalker) addRune(r rune, fold bool) bool {
	if !w.add(r) {
		return false
	}
	if !fold {
		return true
	}
	for f := unicode.SimpleFold(r); f != r; f = unicode.SimpleFold(f) {
		if !w.add(f) {
			return false
		}
	}
	return true
}

func (w *leadingWalker) add(r rune) bool {
	w.set[r] = struct{}{}
	return len(w.set) <= w.bound
}
