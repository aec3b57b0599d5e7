package refs

import (
	"regexp"
	"sort"
	"strings"

	"bibtools/src/internal/report"
	"bibtools/src/internal/schema"
)

// DefaultPattern matches pandoc author-year citation keys such as
// @hodgson2020 or @hodgson2020a. Bracketed citations carry the same
// token, so one pattern covers both marker forms. Group 1 is the key.
var DefaultPattern = regexp.MustCompile(`@([A-Za-z]+[0-9]{4}[A-Za-z]*)`)

// Scan extracts the distinct citation keys in a document. When the
// pattern captures a group the key is group 1, otherwise the whole
// match with any leading @ stripped. Text matching nothing is simply
// not a citation; scanning never fails.
func Scan(text string, pattern *regexp.Regexp) map[string]bool {
	keys := map[string]bool{}
	for _, m := range pattern.FindAllStringSubmatch(text, -1) {
		key := m[0]
		if len(m) > 1 && m[1] != "" {
			key = m[1]
		}
		key = strings.TrimPrefix(key, "@")
		if key != "" {
			keys[key] = true
		}
	}
	return keys
}

// Missing reports the keys cited in the document but absent from the
// bibliography, sorted by key.
func Missing(cited map[string]bool, set *schema.Store) report.List {
	var list report.List
	for _, key := range sortedKeys(cited) {
		if !set.Has(key) {
			list = append(list, report.Newf(report.UndefinedReference, key,
				"%s is cited but not in the bibliography", key))
		}
	}
	return list
}

// Unused reports the bibliography entries never cited in the document,
// sorted by key. Informational: an unused entry is clutter, not an
// error.
func Unused(cited map[string]bool, set *schema.Store) report.List {
	keys := set.Keys()
	sort.Strings(keys)
	var list report.List
	for _, key := range keys {
		if !cited[key] {
			list = append(list, report.Newf(report.UnusedEntry, key,
				"%s is in the bibliography but never cited", key))
		}
	}
	return list
}

func sortedKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
