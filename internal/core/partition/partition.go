// Package partition splits mixed Chinese/English text into its script classes.
//
// A partition keeps the Chinese portion as a plain concatenation of all CJK
// ideograph runs and the English portion as the space-joined sequence of all
// ASCII letter runs, both in input order. Every other character acts only as
// a run boundary and is dropped.
package partition

import (
	"strings"
)

// CJK Unified Ideographs block.
const (
	cjkLo = '一'
	cjkHi = '鿿'
)

func isCJK(r rune) bool {
	return r >= cjkLo && r <= cjkHi
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// Split partitions text into its Chinese and English subsequences.
//
// The Chinese result concatenates all maximal CJK ideograph runs with no
// separators. The English result joins all maximal ASCII letter runs with
// single spaces. Both preserve input order; neither deduplicates. Split is a
// pure function and never fails, returning empty strings for inputs with no
// matching characters.
func Split(text string) (chinese, english string) {
	var chi, eng strings.Builder
	inEngRun := false
	for _, r := range text {
		switch {
		case isCJK(r):
			chi.WriteRune(r)
			inEngRun = false
		case isASCIILetter(r):
			if !inEngRun && eng.Len() > 0 {
				eng.WriteByte(' ')
			}
			eng.WriteRune(r)
			inEngRun = true
		default:
			inEngRun = false
		}
	}
	return chi.String(), eng.String()
}
