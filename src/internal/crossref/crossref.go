package crossref

import (
	"sort"

	"bibtools/src/internal/report"
	"bibtools/src/internal/schema"
)

// expandRename maps target field names to the name they take on the
// dependent: a collection's title is the chapter's booktitle.
var expandRename = map[string]string{
	"title":    "booktitle",
	"subtitle": "booksubtitle",
}

// expandSkip lists target fields never copied into dependents. The
// crossref edge itself, identifiers of the container, and reference
// manager bookkeeping stay where they are.
var expandSkip = map[string]bool{
	"crossref":      true,
	"doi":           true,
	"read":          true,
	"bdsk-file-1":   true,
	"date-added":    true,
	"date-modified": true,
}

// Check validates every crossref edge in the store. Three things can
// be wrong: the target key is absent, the target's entry type is not
// one the dependent's type may reference, or the dependent's type is
// not expected to carry a crossref at all. Every violation in the file
// is reported; one bad edge never hides another.
func Check(set *schema.Store) report.List {
	var findings report.List
	for _, rec := range set.Records() {
		target, ok := rec.Fields["crossref"]
		if !ok {
			continue
		}
		allowed, known := schema.CrossrefTargets[rec.Type]
		if tgt, found := set.Lookup(target); !found {
			findings = append(findings, report.Newf(report.DanglingCrossref, rec.Key,
				"%s referenced by %s was not found", target, rec.Key))
		} else if known && !contains(allowed, tgt.Type) {
			findings = append(findings, report.Newf(report.IncompatibleCrossrefType, rec.Key,
				"the type of %s referenced by %s is %s; it should probably be %s",
				target, rec.Key, tgt.Type, report.OneOf(allowed, "or")))
		}
		if !known {
			findings = append(findings, report.Newf(report.UnknownEntryType, rec.Key,
				"%s has type %s; the types expected to carry a crossref are %s",
				rec.Key, rec.Type, report.OneOf(schema.CrossrefTypes(), "or")))
		}
	}
	return findings
}

// Expand copies fields from each crossref target into its dependents.
// Title fields are renamed per expandRename, fields in expandSkip are
// skipped, and a field the dependent already has is never overwritten,
// so expanding twice is the same as expanding once. Both the crossref
// fields and the target entries survive. Expand assumes a store Check
// found clean. The distinct target keys come back sorted.
func Expand(set *schema.Store) []string {
	targets := map[string]bool{}
	for _, rec := range set.Records() {
		key, ok := rec.Fields["crossref"]
		if !ok {
			continue
		}
		tgt, found := set.Lookup(key)
		if !found {
			continue
		}
		targets[tgt.Key] = true
		for _, name := range sortedFieldNames(tgt) {
			if expandSkip[name] {
				continue
			}
			dst := name
			if mapped, ok := expandRename[name]; ok {
				dst = mapped
			}
			if _, exists := rec.Fields[dst]; exists {
				continue
			}
			rec.Fields[dst] = tgt.Fields[name]
		}
	}
	out := make([]string, 0, len(targets))
	for k := range targets {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// sortedFieldNames keeps the copy order stable when two source fields
// land on the same destination, e.g. a target carrying both title and
// booktitle.
func sortedFieldNames(r *schema.Record) []string {
	out := make([]string, 0, len(r.Fields))
	for name := range r.Fields {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
