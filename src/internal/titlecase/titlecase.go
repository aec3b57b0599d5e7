package titlecase

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// minor words stay lowercase unless first, last, or opening a new
// sentence or subtitle.
var minor = map[string]bool{
	"a": true, "an": true, "and": true, "as": true, "at": true,
	"but": true, "by": true, "en": true, "for": true, "if": true,
	"in": true, "of": true, "on": true, "or": true, "the": true,
	"to": true, "v": true, "v.": true, "via": true, "vs": true,
	"vs.": true,
}

// String converts s to English title case. Minor words are lowercased
// except in first, last, or sentence-initial position. Words that
// already carry capitals beyond the first letter, digits, braces, or
// backslashes pass through untouched, so acronyms, LaTeX markup, and
// brace-protected text survive. Hyphenated compounds are cased per
// part. Applying String to its own output changes nothing.
func String(s string) string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return s
	}
	caser := cases.Title(language.English)
	sentenceStart := true
	for i, w := range words {
		switch {
		case preserved(w):
			words[i] = w
		case !sentenceStart && i != len(words)-1 && minor[strings.ToLower(strings.TrimRight(w, ",;"))]:
			words[i] = strings.ToLower(w)
		default:
			words[i] = capitalize(caser, w)
		}
		sentenceStart = endsSentence(w)
	}
	return strings.Join(words, " ")
}

// preserved reports words the caser must not touch: anything with
// braces, backslashes, or digits, and anything already mixed case
// beyond a leading capital.
func preserved(w string) bool {
	if strings.ContainsAny(w, "{}\\") {
		return true
	}
	seenLetter := false
	for _, r := range w {
		if unicode.IsDigit(r) {
			return true
		}
		if unicode.IsUpper(r) && seenLetter {
			return true
		}
		if unicode.IsLetter(r) {
			seenLetter = true
		}
	}
	return false
}

func capitalize(caser cases.Caser, w string) string {
	if !strings.Contains(w, "-") {
		return caser.String(w)
	}
	parts := strings.Split(w, "-")
	for i, p := range parts {
		if p == "" {
			continue
		}
		if i > 0 && minor[strings.ToLower(p)] {
			parts[i] = strings.ToLower(p)
		} else {
			parts[i] = caser.String(p)
		}
	}
	return strings.Join(parts, "-")
}

func endsSentence(w string) bool {
	switch {
	case strings.HasSuffix(w, ":"), strings.HasSuffix(w, "."),
		strings.HasSuffix(w, "?"), strings.HasSuffix(w, "!"):
		return true
	}
	return false
}
