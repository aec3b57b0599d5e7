package store

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/nickng/bibtex"

	"bibtools/src/internal/report"
	"bibtools/src/internal/schema"
)

// BackupSuffix is appended to a bibliography path to hold the previous
// contents before a rewrite.
const BackupSuffix = ".backup"

// Load reads and parses a biblatex file. Any parse failure is fatal;
// analysis never runs on a partial store.
func Load(path string) (*schema.Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	set, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}

// Parse decodes biblatex source into a store. Entry types and field
// names are lowercased; field values are collapsed to a single line.
// Parse errors and duplicate citation keys come back as malformed-entry
// findings.
func Parse(r io.Reader) (*schema.Store, error) {
	bib, err := bibtex.Parse(r)
	if err != nil {
		return nil, report.Newf(report.MalformedEntry, "", "parse biblatex: %v", err)
	}
	set := schema.NewStore()
	for _, e := range bib.Entries {
		rec := schema.NewRecord(strings.TrimSpace(e.CiteName), e.Type)
		for name, val := range e.Fields {
			rec.Fields[strings.ToLower(strings.TrimSpace(name))] = cleanValue(val.String())
		}
		if err := set.Add(rec); err != nil {
			return nil, report.Newf(report.MalformedEntry, rec.Key, "%v", err)
		}
	}
	return set, nil
}

// cleanValue collapses whitespace runs so multi-line field values
// render on one line.
func cleanValue(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Save rewrites path with the rendered store. The previous contents
// are copied to path+BackupSuffix first; the backup path is returned,
// empty when path did not exist yet.
func Save(path string, set *schema.Store) (string, error) {
	backup := ""
	prev, err := os.ReadFile(path)
	switch {
	case err == nil:
		backup = path + BackupSuffix
		if err := os.WriteFile(backup, prev, 0o644); err != nil {
			return "", fmt.Errorf("write backup: %w", err)
		}
	case !errors.Is(err, fs.ErrNotExist):
		return "", err
	}
	if err := os.WriteFile(path, []byte(Render(set)), 0o644); err != nil {
		return backup, err
	}
	return backup, nil
}
