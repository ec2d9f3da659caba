package dokuwiki

import "strings"

// Header depth policy shared by the translator (document titles) and the
// assembler (object headers). DokuWiki headers are 2 to 6 '=' characters,
// longer meaning a higher level.
const (
	minHeaderLen = 2
	maxHeaderLen = 6

	// documentTitleLen marks a title directly below the document root.
	documentTitleLen = 5
	// subtitleLen marks a document subtitle.
	subtitleLen = 2
	// sectionTitleMax caps section titles so they sit below the document title.
	sectionTitleMax = 4
)

func clampHeader(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// titleMarkerLen is the marker length of a section title at the given
// section depth: 5-(sectionLevel+initialLevel-1), kept within [2,4].
func titleMarkerLen(sectionLevel, initialLevel int) int {
	return clampHeader(documentTitleLen-(sectionLevel+initialLevel-1), minHeaderLen, sectionTitleMax)
}

// objectMarkerLen is the marker length of an assembled object at the given
// nesting level. Lengths that fall below a valid header collapse to zero,
// which renders the header line without markers.
func objectMarkerLen(level int) int {
	n := maxHeaderLen - level
	if n < minHeaderLen {
		return 0
	}
	return n
}

func marker(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat("=", n)
}
