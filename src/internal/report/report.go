package report

import (
	"errors"
	"fmt"
	"strings"
)

// Code identifies a kind of finding.
type Code string

const (
	// DanglingCrossref marks a crossref naming a key absent from the
	// bibliography.
	DanglingCrossref Code = "dangling-crossref"
	// IncompatibleCrossrefType marks a crossref target whose entry type
	// is not allowed for the dependent's type.
	IncompatibleCrossrefType Code = "incompatible-crossref-type"
	// UnknownEntryType marks a crossref on an entry type not expected
	// to carry one.
	UnknownEntryType Code = "unknown-entry-type"
	// UndefinedReference marks a citation key used in a document but
	// missing from the bibliography.
	UndefinedReference Code = "undefined-reference"
	// UnusedEntry marks a bibliography entry never cited in the
	// document. Informational.
	UnusedEntry Code = "unused-entry"
	// MalformedEntry marks input the parser could not read. Fatal: no
	// analysis runs on a partial store.
	MalformedEntry Code = "malformed-entry"
)

// Finding is a single validation result tied to a citation key.
type Finding struct {
	Code Code
	Key  string
	Msg  string
}

// Newf builds a Finding with a formatted message.
func Newf(code Code, key, format string, args ...any) Finding {
	return Finding{Code: code, Key: key, Msg: fmt.Sprintf(format, args...)}
}

// Error formats the finding as "[code] message".
func (f Finding) Error() string {
	return fmt.Sprintf("[%s] %s", f.Code, f.Msg)
}

// List aggregates findings. Checks collect every violation before
// reporting; a List returned as error carries all of them.
type List []Finding

// Error summarizes the list as its first finding plus a count of the
// rest.
func (l List) Error() string {
	switch len(l) {
	case 0:
		return "no findings"
	case 1:
		return l[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more)", l[0].Error(), len(l)-1)
	}
}

// AsList extracts a List from an error chain.
func AsList(err error) (List, bool) {
	if err == nil {
		return nil, false
	}
	var l List
	if errors.As(err, &l) {
		return l, true
	}
	return nil, false
}

// OneOf renders alternatives for a message: "a", "a or b",
// "a, b, or c".
func OneOf(items []string, conj string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " " + conj + " " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", " + conj + " " + items[len(items)-1]
	}
}
