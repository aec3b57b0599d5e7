package store

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"bibtools/src/internal/schema"
)

// fieldOrder is the canonical order for rendered fields. Fields not
// listed here come after, sorted by name.
var fieldOrder = []string{
	"author", "editor", "title", "subtitle", "booktitle", "booksubtitle",
	"journaltitle", "journal", "crossref", "volume", "number", "issue",
	"chapter", "pages", "edition", "series", "publisher", "address",
	"location", "year", "date", "doi", "isbn", "issn", "url", "urldate",
	"note", "abstract", "keywords",
}

// Render serializes the store deterministically. Each entry is
// preceded by a blank line, fields are indented two spaces and brace
// delimited, and the last field carries no trailing comma.
func Render(set *schema.Store) string {
	var buf bytes.Buffer
	for _, r := range set.Records() {
		buf.WriteString(renderRecord(r))
	}
	return buf.String()
}

func renderRecord(r *schema.Record) string {
	lines := []string{fmt.Sprintf("@%s{%s", r.Type, r.Key)}
	add := func(name, value string) {
		lines = append(lines, fmt.Sprintf("  %s = {%s}", name, value))
	}
	seen := map[string]bool{}
	for _, name := range fieldOrder {
		if v, ok := r.Fields[name]; ok && strings.TrimSpace(v) != "" {
			add(name, v)
			seen[name] = true
		}
	}
	extras := make([]string, 0, len(r.Fields))
	for name := range r.Fields {
		if !seen[name] {
			extras = append(extras, name)
		}
	}
	sort.Strings(extras)
	for _, name := range extras {
		if v := r.Fields[name]; strings.TrimSpace(v) != "" {
			add(name, v)
		}
	}
	return "\n" + strings.Join(lines, ",\n") + "\n}\n"
}
