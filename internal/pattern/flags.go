package pattern

import (
	"fmt"
	"strings"
)

// inlineFlags translates definition flags into a Go inline flag group.
//
//	i  case-insensitive
//	m  ^ and $ match at line boundaries
//	s  . matches \n
//	U  ungreedy
//
// g, y and u are accepted and ignored: patterns are always matched at an
// explicit offset and Go patterns are always Unicode-aware.
func inlineFlags(flags string) (string, error) {
	var inline strings.Builder
	for _, f := range flags {
		switch f {
		case 'i', 'm', 's', 'U':
			if !strings.ContainsRune(inline.String(), f) {
				inline.WriteRune(f)
			}
		case 'g', 'y', 'u':
		default:
			return "", fmt.Errorf("unsupported flag %q", f)
		}
	}

	if inline.Len() == 0 {
		return "", nil
	}
	return "(?" + inline.String() + ")", nil
}
