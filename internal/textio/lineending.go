package textio

import "golang.org/x/text/transform"

// LineEnding specifies the line ending style of a file on disk. Text in a
// rope always uses '\n'.
type LineEnding uint8

// Line ending styles.
const (
	LineEndingLF   LineEnding = iota // Unix: \n
	LineEndingCRLF                   // Windows: \r\n
	LineEndingCR                     // Old Mac: \r
)

// String returns the name of the line ending.
func (le LineEnding) String() string {
	switch le {
	case LineEndingLF:
		return "LF"
	case LineEndingCRLF:
		return "CRLF"
	case LineEndingCR:
		return "CR"
	default:
		return "unknown"
	}
}

// Sequence returns the bytes written for one line ending.
func (le LineEnding) Sequence() string {
	switch le {
	case LineEndingCRLF:
		return "\r\n"
	case LineEndingCR:
		return "\r"
	default:
		return "\n"
	}
}

// DetectLineEnding returns the most common line ending in text, or
// LineEndingLF if there are none.
func DetectLineEnding(text []byte) LineEnding {
	var c endingCounts
	for i := 0; i < len(text); i++ {
		switch {
		case text[i] == '\r' && i+1 < len(text) && text[i+1] == '\n':
			c.crlf++
			i++
		case text[i] == '\r':
			c.cr++
		case text[i] == '\n':
			c.lf++
		}
	}
	return c.majority()
}

type endingCounts struct {
	lf, crlf, cr int
}

// majority prefers CRLF, then CR, on ties; LF when nothing was counted.
func (c endingCounts) majority() LineEnding {
	if c.crlf > 0 && c.crlf >= c.lf && c.crlf >= c.cr {
		return LineEndingCRLF
	}
	if c.cr > 0 && c.cr >= c.lf && c.cr >= c.crlf {
		return LineEndingCR
	}
	return LineEndingLF
}

// normalizer rewrites "\r\n" and lone '\r' to '\n' while counting each
// style it sees.
type normalizer struct {
	transform.NopResetter
	counts endingCounts
}

func (n *normalizer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		c := src[nSrc]
		if c == '\r' && nSrc+1 == len(src) && !atEOF {
			// Might be the first half of "\r\n".
			return nDst, nSrc, transform.ErrShortSrc
		}
		if nDst >= len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		switch {
		case c == '\r' && nSrc+1 < len(src) && src[nSrc+1] == '\n':
			n.counts.crlf++
			dst[nDst] = '\n'
			nSrc += 2
		case c == '\r':
			n.counts.cr++
			dst[nDst] = '\n'
			nSrc++
		default:
			if c == '\n' {
				n.counts.lf++
			}
			dst[nDst] = c
			nSrc++
		}
		nDst++
	}
	return nDst, nSrc, nil
}
