package stringx

import (
	"io"
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

const ellipsis = "..."

// IsBlank reports whether s is empty or made only of Unicode white space.
func IsBlank(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return !unicode.IsSpace(r) }) < 0
}

// ValueOrDefault returns s, or def when s is blank.
func ValueOrDefault(s, def string) string {
	if IsBlank(s) {
		return def
	}
	return s
}

// SubstringAfter returns the part of s after the first case-insensitive
// occurrence of sep, or "" when sep does not occur. Matching uses full
// Unicode case folding on the NFC forms of s and sep, so "STRASSE" matches
// "straße"; the returned text is taken from the NFC form of s.
func SubstringAfter(s, sep string) string {
	s = norm.NFC.String(s)
	_, end := indexFold(s, norm.NFC.String(sep))
	if end < 0 {
		return ""
	}
	return s[end:]
}

// SubstringAfterExact is SubstringAfter with byte-for-byte matching.
func SubstringAfterExact(s, sep string) string {
	_, after, found := strings.Cut(s, sep)
	if !found {
		return ""
	}
	return after
}

// SubstringAfterRune returns the part of s after the first r, or "".
func SubstringAfterRune(s string, r rune) string {
	i := strings.IndexRune(s, r)
	if i < 0 {
		return ""
	}
	return s[i+utf8.RuneLen(r):]
}

// SubstringBefore returns the part of s before the first occurrence of sep,
// or "" when sep does not occur.
func SubstringBefore(s, sep string) string {
	before, _, found := strings.Cut(s, sep)
	if !found {
		return ""
	}
	return before
}

// SubstringBeforeRune returns the part of s before the first r, or "".
func SubstringBeforeRune(s string, r rune) string {
	i := strings.IndexRune(s, r)
	if i < 0 {
		return ""
	}
	return s[:i]
}

// indexFold finds the first case-folded occurrence of sep in s and returns
// its byte span in s, or (-1, -1).
func indexFold(s, sep string) (start, end int) {
	if sep == "" {
		return 0, 0
	}
	folder := cases.Fold()
	target := folder.String(sep)

	for i := 0; i < len(s); {
		for j := i; j < len(s); {
			_, w := utf8.DecodeRuneInString(s[j:])
			j += w
			got := folder.String(s[i:j])
			if got == target {
				return i, j
			}
			if len(got) >= len(target) || !strings.HasPrefix(target, got) {
				break
			}
		}
		_, w := utf8.DecodeRuneInString(s[i:])
		i += w
	}
	return -1, -1
}

// LimitLength returns s cut to at most limit runes.
func LimitLength(s string, limit int) string {
	return limitRunes(s, limit, false)
}

// LimitLengthEllipsis is LimitLength that ends a cut string with "...",
// keeping the result within limit runes. Limits of 4 or less cut without an
// ellipsis since it would leave almost nothing of s.
func LimitLengthEllipsis(s string, limit int) string {
	return limitRunes(s, limit, true)
}

func limitRunes(s string, limit int, withEllipsis bool) string {
	if limit <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	if limit <= 4 {
		withEllipsis = false
	}
	keep := limit
	if withEllipsis {
		keep -= len(ellipsis)
	}
	n := 0
	for i := range s {
		if n == keep {
			if withEllipsis {
				return s[:i] + ellipsis
			}
			return s[:i]
		}
		n++
	}
	return s
}

// LimitWidth cuts s to fit within cols terminal columns, accounting for wide
// East Asian characters, and marks a cut with "..." when cols leaves room.
func LimitWidth(s string, cols int) string {
	if cols <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= cols {
		return s
	}
	if cols <= 4 {
		return runewidth.Truncate(s, cols, "")
	}
	return runewidth.Truncate(s, cols, ellipsis)
}

// JoinTo writes values to w separated by sep and returns the number of bytes
// written.
func JoinTo(w io.StringWriter, values iter.Seq[string], sep string) (int, error) {
	total := 0
	first := true
	for v := range values {
		if !first {
			n, err := w.WriteString(sep)
			total += n
			if err != nil {
				return total, err
			}
		}
		first = false
		n, err := w.WriteString(v)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
