package schema

import (
	"fmt"
	"sort"
	"strings"
)

// Record is a single biblatex entry: a citation key, an entry type, and
// the entry's fields. Entry types and field names are lowercased when
// records come out of the parser.
type Record struct {
	Key    string
	Type   string
	Fields map[string]string
}

// NewRecord returns a Record with an initialized field map.
func NewRecord(key, typ string) *Record {
	return &Record{
		Key:    key,
		Type:   strings.ToLower(strings.TrimSpace(typ)),
		Fields: map[string]string{},
	}
}

// Store is an ordered collection of records keyed by citation key.
// Iteration follows the order records were added, i.e. file order.
type Store struct {
	keys  []string
	byKey map[string]*Record
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{byKey: map[string]*Record{}}
}

// Add appends a record. Citation keys are unique within a store;
// adding a duplicate or empty key is an error.
func (s *Store) Add(r *Record) error {
	key := strings.TrimSpace(r.Key)
	if key == "" {
		return fmt.Errorf("record of type %s has no citation key", r.Type)
	}
	if _, ok := s.byKey[key]; ok {
		return fmt.Errorf("duplicate citation key %q", key)
	}
	r.Key = key
	s.keys = append(s.keys, key)
	s.byKey[key] = r
	return nil
}

// Lookup returns the record for a citation key.
func (s *Store) Lookup(key string) (*Record, bool) {
	r, ok := s.byKey[key]
	return r, ok
}

// Has reports whether a citation key is present.
func (s *Store) Has(key string) bool {
	_, ok := s.byKey[key]
	return ok
}

// Keys returns the citation keys in file order.
func (s *Store) Keys() []string {
	return append([]string(nil), s.keys...)
}

// Records returns the records in file order.
func (s *Store) Records() []*Record {
	out := make([]*Record, 0, len(s.keys))
	for _, k := range s.keys {
		out = append(out, s.byKey[k])
	}
	return out
}

// Len returns the number of records in the store.
func (s *Store) Len() int { return len(s.keys) }

// CrossrefTargets maps the entry types expected to carry a crossref
// field to the entry types their targets may have.
var CrossrefTargets = map[string][]string{
	"inbook":        {"book", "mvbook"},
	"incollection":  {"collection", "mvcollection"},
	"inproceedings": {"proceedings"},
}

// CrossrefTypes returns, sorted, the entry types expected to carry a
// crossref field.
func CrossrefTypes() []string {
	out := make([]string, 0, len(CrossrefTargets))
	for t := range CrossrefTargets {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
