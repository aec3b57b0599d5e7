package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"bibtools/src/internal/names"
	"bibtools/src/internal/schema"
	"bibtools/src/internal/titlecase"
)

// pageDashes enumerates the dash spellings recognized inside page
// ranges: ASCII hyphen, unicode hyphens, en and em dashes, and the en
// dash bytes as mangled by a cp1252 round trip. Add new spellings
// here; the pattern is built from the list.
var pageDashes = []string{
	"-",
	"‐",   // hyphen
	"‑",   // non-breaking hyphen
	"–",   // en dash
	"—",   // em dash
	"â€“", // en dash after a utf-8/cp1252 round trip
}

var pageRange = regexp.MustCompile(`(\d+)\s*(?:` + dashAlternation(pageDashes) + `){1,2}\s*(\d+)`)

func dashAlternation(dashes []string) string {
	quoted := make([]string, len(dashes))
	for i, d := range dashes {
		quoted[i] = regexp.QuoteMeta(d)
	}
	return strings.Join(quoted, "|")
}

// A dot or space must follow the p's so words like "paperback" keep
// their head.
var ppPrefix = regexp.MustCompile(`^[Pp]{1,2}[.\s]\s*`)

// fixPages strips a leading "p."/"pp." marker and rewrites page ranges
// to the biblatex double hyphen. Runs of three or more dashes and page
// values with no digits on both sides stay as they are.
func fixPages(r *schema.Record) {
	v, ok := r.Fields["pages"]
	if !ok {
		return
	}
	v = ppPrefix.ReplaceAllString(strings.TrimSpace(v), "")
	r.Fields["pages"] = pageRange.ReplaceAllString(v, "$1--$2")
}

// fixAuthors puts each author into "Family, Given" order and repairs
// all-lower or all-upper casing. Editor lists keep their given order
// and only get the casing repair.
func fixAuthors(r *schema.Record) {
	if v, ok := r.Fields["author"]; ok {
		list := names.SplitList(v)
		for i, n := range list {
			list[i] = names.TitleCaseTokens(names.Reorder(n))
		}
		r.Fields["author"] = names.JoinList(list)
	}
	if v, ok := r.Fields["editor"]; ok {
		r.Fields["editor"] = names.TitleCaseTokens(v)
	}
}

// fixTitles title-cases title, subtitle, and booktitle.
func fixTitles(r *schema.Record) {
	for _, f := range []string{"title", "subtitle", "booktitle"} {
		if v, ok := r.Fields[f]; ok {
			r.Fields[f] = titlecase.String(v)
		}
	}
}

// renameJournal moves journal to the biblatex journaltitle field on
// articles. An existing journaltitle wins.
func renameJournal(r *schema.Record) {
	if r.Type != "article" {
		return
	}
	v, ok := r.Fields["journal"]
	if !ok {
		return
	}
	if _, exists := r.Fields["journaltitle"]; !exists {
		r.Fields["journaltitle"] = v
	}
	delete(r.Fields, "journal")
}

var publisherAnd = regexp.MustCompile(`\band\b`)

// protectPublisher wraps publishers containing the word "and" in
// braces so the value is never mistaken for a name list.
func protectPublisher(r *schema.Record) {
	v, ok := r.Fields["publisher"]
	if !ok || !publisherAnd.MatchString(v) {
		return
	}
	if !strings.HasPrefix(v, "{") {
		v = "{" + v
	}
	if !strings.HasSuffix(v, "}") {
		v += "}"
	}
	r.Fields["publisher"] = v
}

var wordEditions = map[string]string{
	"first": "1", "second": "2", "third": "3", "fourth": "4",
	"fifth": "5", "sixth": "6", "seventh": "7", "eighth": "8",
	"ninth": "9", "tenth": "10",
}

var ordinalEdition = regexp.MustCompile(`^(\d+)(?:st|nd|rd|th)$`)

// fixEdition turns word and ordinal editions into bare numerals.
// Anything else ("Revised", "2010") is left alone.
func fixEdition(r *schema.Record) {
	v, ok := r.Fields["edition"]
	if !ok {
		return
	}
	key := strings.ToLower(strings.TrimSpace(v))
	if n, ok := wordEditions[key]; ok {
		r.Fields["edition"] = n
		return
	}
	if m := ordinalEdition.FindStringSubmatch(key); m != nil {
		r.Fields["edition"] = m[1]
	}
}

// fixDashes rewrites unicode dashes in every field to their TeX
// spellings: en dash to --, em dash to ---.
func fixDashes(r *schema.Record) {
	for f, v := range r.Fields {
		v = strings.ReplaceAll(v, "–", "--")
		v = strings.ReplaceAll(v, "—", "---")
		r.Fields[f] = v
	}
}

var hyphenRun = regexp.MustCompile(`-+`)

// fixRanges normalizes hyphen runs in volume, number, and issue to a
// double hyphen. Pages are handled by the pages rule.
func fixRanges(r *schema.Record) {
	for _, f := range []string{"volume", "number", "issue"} {
		if v, ok := r.Fields[f]; ok {
			r.Fields[f] = hyphenRun.ReplaceAllString(v, "--")
		}
	}
}

// replaceAmpersand swaps an escaped ampersand for the word "and" in
// title-like fields.
func replaceAmpersand(r *schema.Record) {
	for _, f := range []string{"title", "subtitle", "booktitle", "journaltitle"} {
		if v, ok := r.Fields[f]; ok {
			r.Fields[f] = strings.ReplaceAll(v, `\&`, "and")
		}
	}
}

// escapeReserved backslash-escapes &, %, and _ wherever they are not
// escaped already.
func escapeReserved(r *schema.Record) {
	for f, v := range r.Fields {
		r.Fields[f] = escapeValue(v)
	}
}

func escapeValue(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	escaped := false
	for _, r := range s {
		switch {
		case escaped:
			escaped = false
		case r == '\\':
			escaped = true
		case r == '&' || r == '%' || r == '_':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// protectCaps braces capitalized words after the first in title-like
// fields so BibTeX styles keep their case.
func protectCaps(r *schema.Record) {
	for _, f := range []string{"title", "subtitle", "booktitle"} {
		if v, ok := r.Fields[f]; ok {
			r.Fields[f] = braceCapitalized(v)
		}
	}
}

func braceCapitalized(s string) string {
	words := strings.Fields(s)
	if len(words) < 2 {
		return s
	}
	for i, w := range words[1:] {
		if strings.ContainsAny(w, "{}") {
			continue
		}
		if first := []rune(w)[0]; unicode.IsUpper(first) {
			words[i+1] = "{" + w + "}"
		}
	}
	return strings.Join(words, " ")
}

// promoteMultivolume moves books and collections carrying a volume
// field to their multivolume entry types.
func promoteMultivolume(r *schema.Record) {
	if _, ok := r.Fields["volume"]; !ok {
		return
	}
	switch r.Type {
	case "book":
		r.Type = "mvbook"
	case "collection":
		r.Type = "mvcollection"
	}
}

// doiResolvers lists resolver prefixes stripped from doi fields, which
// should hold the bare identifier.
var doiResolvers = []string{
	"https://doi.org/",
	"http://doi.org/",
	"https://dx.doi.org/",
	"http://dx.doi.org/",
}

func stripDOIResolver(r *schema.Record) {
	v, ok := r.Fields["doi"]
	if !ok {
		return
	}
	for _, p := range doiResolvers {
		if rest, found := strings.CutPrefix(v, p); found {
			r.Fields["doi"] = rest
			return
		}
	}
}

// copyBooktitle mirrors a book's title into booktitle, which some
// styles want present on @book.
func copyBooktitle(r *schema.Record) {
	if r.Type != "book" {
		return
	}
	if v, ok := r.Fields["title"]; ok {
		if _, exists := r.Fields["booktitle"]; !exists {
			r.Fields["booktitle"] = v
		}
	}
}

// importNoise lists fields dropped by the prune rule: reference
// manager exports carry them, curated biblatex files do not want them.
var importNoise = []string{
	"abstract", "copyright", "isbn", "issn", "language", "link",
	"jstor_articletype", "jstor_formatteddate", "jstor_issuetitle",
}

func pruneImportNoise(r *schema.Record) {
	for _, f := range importNoise {
		delete(r.Fields, f)
	}
}
