package scanner

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// displayString replaces each maximal invalid subpart of s with one U+FFFD:
// an invalid lead byte together with the continuation bytes that could
// still have completed its sequence.
func displayString(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 8)
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			b.WriteRune(utf8.RuneError)
			i += invalidPrefixLen(s[i:])
			continue
		}
		b.WriteString(s[i : i+size])
		i += size
	}
	return b.String()
}

// invalidPrefixLen returns the length of the maximal subpart at the start of
// s, which does not begin with a complete UTF-8 sequence.
func invalidPrefixLen(s string) int {
	lead := s[0]
	var need int
	lo, hi := byte(0x80), byte(0xBF) // range of the second byte
	switch {
	case lead >= 0xC2 && lead <= 0xDF:
		need = 1
	case lead == 0xE0:
		need, lo = 2, 0xA0
	case lead == 0xED:
		need, hi = 2, 0x9F
	case lead >= 0xE1 && lead <= 0xEF:
		need = 2
	case lead == 0xF0:
		need, lo = 3, 0x90
	case lead == 0xF4:
		need, hi = 3, 0x8F
	case lead >= 0xF1 && lead <= 0xF3:
		need = 3
	default:
		return 1
	}

	n := 1
	for ; n <= need && n < len(s); n++ {
		c := s[n]
		if n == 1 && (c < lo || c > hi) {
			break
		}
		if n > 1 && (c < 0x80 || c > 0xBF) {
			break
		}
	}
	return n
}

func isSeparator(r rune) bool {
	return r < utf8.RuneSelf && os.IsPathSeparator(uint8(r))
}

// rootName returns the final segment of root, ignoring trailing separators
// and "." segments. A root without such a segment ("/", "", ".", "..", a bare
// volume) is its own name.
func rootName(root string) string {
	p := root[len(filepath.VolumeName(root)):]
	for {
		p = strings.TrimRightFunc(p, isSeparator)
		i := strings.LastIndexFunc(p, isSeparator)
		last := p[i+1:]
		if last == "." && i >= 0 {
			p = p[:i]
			continue
		}
		if last == "" || last == "." || last == ".." {
			return root
		}
		return displayString(last)
	}
}

// joinPath appends name to dir without cleaning dir, so the caller's
// spelling of the root survives in every descendant path.
func joinPath(dir, name string) string {
	if dir == "" {
		return name
	}
	if os.IsPathSeparator(dir[len(dir)-1]) {
		return dir + name
	}
	return dir + string(os.PathSeparator) + name
}
