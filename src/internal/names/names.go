package names

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SplitList splits a multi-name biblatex field on " and " separators.
// Separators inside braces are part of a protected name ("{Barnes and
// Noble}") and do not split.
func SplitList(field string) []string {
	var out []string
	depth, start := 0, 0
	for i := 0; i < len(field); i++ {
		switch field[i] {
		case '{':
			depth++
		case '}':
			if depth > 0 {
				depth--
			}
		case ' ':
			if depth == 0 && strings.HasPrefix(field[i:], " and ") {
				if p := strings.TrimSpace(field[start:i]); p != "" {
					out = append(out, p)
				}
				start = i + 5
				i += 4
			}
		}
	}
	if p := strings.TrimSpace(field[start:]); p != "" {
		out = append(out, p)
	}
	return out
}

// JoinList joins names with the biblatex " and " separator.
func JoinList(list []string) string {
	return strings.Join(list, " and ")
}

// Reorder converts "Given Family" to "Family, Given" taking the last
// whitespace-separated token as the family name. Names already in
// comma form, single tokens, and brace-protected names pass through.
// Multi-word family names need the comma form or braces; the heuristic
// cannot see them.
func Reorder(name string) string {
	name = strings.TrimSpace(name)
	if name == "" || strings.Contains(name, ",") || strings.ContainsAny(name, "{}") {
		return name
	}
	parts := strings.Fields(name)
	if len(parts) < 2 {
		return name
	}
	family := parts[len(parts)-1]
	given := strings.Join(parts[:len(parts)-1], " ")
	return family + ", " + given
}

// TitleCaseTokens repairs capitalization token by token: all-lower and
// all-upper tokens are title cased, anything carrying a capital after
// its first letter is already deliberate and passes through. The
// biblatex separator token "and" and brace-protected tokens are never
// touched.
func TitleCaseTokens(name string) string {
	toks := strings.Fields(name)
	if len(toks) == 0 {
		return name
	}
	caser := cases.Title(language.English)
	depth := 0
	for i, tok := range toks {
		if depth == 0 {
			toks[i] = caseToken(caser, tok)
		}
		depth += strings.Count(tok, "{") - strings.Count(tok, "}")
		if depth < 0 {
			depth = 0
		}
	}
	return strings.Join(toks, " ")
}

func caseToken(caser cases.Caser, tok string) string {
	if tok == "and" || strings.ContainsAny(tok, "{}\\") {
		return tok
	}
	if hasLateUpper(tok) && !allUpper(tok) {
		return tok
	}
	return caser.String(tok)
}

// hasLateUpper reports an uppercase letter after the first letter of
// the token, e.g. "McDonald" or "dell'Acqua".
func hasLateUpper(s string) bool {
	seenLetter := false
	for _, r := range s {
		isLower := r >= 'a' && r <= 'z'
		isUpper := r >= 'A' && r <= 'Z'
		if isUpper && seenLetter {
			return true
		}
		if isLower || isUpper {
			seenLetter = true
		}
	}
	return false
}

func allUpper(s string) bool {
	has := false
	for _, r := range s {
		if r >= 'a' && r <= 'z' {
			return false
		}
		if r >= 'A' && r <= 'Z' {
			has = true
		}
	}
	return has
}
