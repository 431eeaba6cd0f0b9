package typeset

import (
	"unicode/utf8"

	"github.com/go-text/typesetting/segmenter"
	"golang.org/x/text/unicode/norm"
)

// Normalize returns s in Unicode NFC so that composed and decomposed input
// measure, wrap and delete the same way.
func Normalize(s string) string {
	return norm.NFC.String(s)
}

// Boundaries returns the byte offsets of the grapheme cluster boundaries of
// s, including 0 and len(s).
func Boundaries(s string) []int {
	if s == "" {
		return []int{0}
	}

	// Decode by hand so an invalid byte keeps its width of one.
	runes := make([]rune, 0, len(s))
	byteAt := make([]int, 0, len(s)+1)
	for off := 0; off < len(s); {
		r, size := utf8.DecodeRuneInString(s[off:])
		runes = append(runes, r)
		byteAt = append(byteAt, off)
		off += size
	}
	byteAt = append(byteAt, len(s))

	var seg segmenter.Segmenter
	seg.Init(runes)

	bounds := []int{0}
	it := seg.GraphemeIterator()
	for it.Next() {
		g := it.Grapheme()
		end := g.Offset + len(g.Text)
		if end > 0 && end <= len(runes) {
			bounds = append(bounds, byteAt[end])
		}
	}
	if bounds[len(bounds)-1] != len(s) {
		bounds = append(bounds, len(s))
	}
	return bounds
}

// PrevBoundary returns the grapheme boundary before byte offset pos, or 0.
func PrevBoundary(s string, pos int) int {
	prev := 0
	for _, b := range Boundaries(s) {
		if b >= pos {
			break
		}
		prev = b
	}
	return prev
}

// NextBoundary returns the grapheme boundary after byte offset pos, or len(s).
func NextBoundary(s string, pos int) int {
	for _, b := range Boundaries(s) {
		if b > pos {
			return b
		}
	}
	return len(s)
}
