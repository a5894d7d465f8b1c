package ident

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// letters that do not decompose into an ASCII base letter plus marks
var foldReplacer = strings.NewReplacer(
	"ß", "ss", "ẞ", "SS",
	"æ", "ae", "Æ", "AE",
	"œ", "oe", "Œ", "OE",
	"ø", "o", "Ø", "O",
	"ł", "l", "Ł", "L",
	"đ", "d", "Đ", "D",
	"ð", "d", "Ð", "D",
	"þ", "th", "Þ", "Th",
	"ı", "i",
)

// Transliterate folds s to its closest ASCII spelling where one exists.
// Characters without an ASCII equivalent are left in place.
func Transliterate(s string) string {
	s = foldReplacer.Replace(s)
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Sanitize turns any string into a valid VHDL basic identifier: ASCII
// letters, digits and single underscores, starting with a letter and not
// ending with an underscore. It never fails and Sanitize(Sanitize(x)) ==
// Sanitize(x).
func Sanitize(raw string) string {
	var b strings.Builder
	gap := false
	for _, r := range Transliterate(raw) {
		if r < utf8.RuneSelf && isAlnum(byte(r)) {
			// Runs of anything else collapse to one underscore; leading and
			// trailing runs are dropped.
			if gap && b.Len() > 0 {
				b.WriteByte('_')
			}
			gap = false
			b.WriteRune(r)
			continue
		}
		gap = true
	}

	out := b.String()
	if out == "" || (out[0] >= '0' && out[0] <= '9') {
		out = "x" + out
	}
	return out
}

// Valid reports whether s is already a sanitized identifier.
func Valid(s string) bool {
	return s != "" && Sanitize(s) == s
}

func isAlnum(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
