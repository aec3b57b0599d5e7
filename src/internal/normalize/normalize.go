package normalize

import (
	"fmt"
	"strings"

	"bibtools/src/internal/schema"
)

// Rule is one named, total rewrite of a single record. Rules never
// fail: input a rule does not recognize passes through unchanged, so a
// pipeline always runs to completion.
type Rule struct {
	Name string
	Fn   func(*schema.Record)
}

// Apply runs the rules in order over every record in the store.
func Apply(set *schema.Store, rules []Rule) {
	for _, rec := range set.Records() {
		for _, rule := range rules {
			rule.Fn(rec)
		}
	}
}

// Default returns the standard pipeline in application order.
func Default() []Rule {
	return []Rule{
		{Name: "authors", Fn: fixAuthors},
		{Name: "titles", Fn: fixTitles},
		{Name: "journaltitle", Fn: renameJournal},
		{Name: "pages", Fn: fixPages},
		{Name: "publisher", Fn: protectPublisher},
		{Name: "edition", Fn: fixEdition},
	}
}

// All returns every known rule, the defaults first. Rules past the
// defaults only run when asked for by name.
func All() []Rule {
	return append(Default(), []Rule{
		{Name: "dashes", Fn: fixDashes},
		{Name: "ranges", Fn: fixRanges},
		{Name: "ampersand", Fn: replaceAmpersand},
		{Name: "escape", Fn: escapeReserved},
		{Name: "protect", Fn: protectCaps},
		{Name: "multivolume", Fn: promoteMultivolume},
		{Name: "doi", Fn: stripDOIResolver},
		{Name: "booktitle", Fn: copyBooktitle},
		{Name: "prune", Fn: pruneImportNoise},
	}...)
}

// ByNames resolves rule names from a flag or config file, preserving
// the requested order. Unknown names are an error, not a skip.
func ByNames(requested []string) ([]Rule, error) {
	all := All()
	byName := make(map[string]Rule, len(all))
	for _, r := range all {
		byName[r.Name] = r
	}
	out := make([]Rule, 0, len(requested))
	for _, n := range requested {
		n = strings.ToLower(strings.TrimSpace(n))
		if n == "" {
			continue
		}
		r, ok := byName[n]
		if !ok {
			return nil, fmt.Errorf("unknown format rule %q", n)
		}
		out = append(out, r)
	}
	return out, nil
}
