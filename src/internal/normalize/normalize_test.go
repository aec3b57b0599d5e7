package normalize

import (
	"testing"

	"bibtools/src/internal/schema"
)

func record(typ string, fields map[string]string) *schema.Record {
	r := schema.NewRecord("test2000", typ)
	for k, v := range fields {
		r.Fields[k] = v
	}
	return r
}

func TestDefaultRuleNames(t *testing.T) {
	want := []string{"authors", "titles", "journaltitle", "pages", "publisher", "edition"}
	got := Default()
	if len(got) != len(want) {
		t.Fatalf("defaults: %d rules, want %d", len(got), len(want))
	}
	for i, r := range got {
		if r.Name != want[i] {
			t.Fatalf("defaults[%d]=%q want %q", i, r.Name, want[i])
		}
	}
}

func TestOptionalRulesNotInDefaults(t *testing.T) {
	defaults := map[string]bool{}
	for _, r := range Default() {
		defaults[r.Name] = true
	}
	for _, name := range []string{"dashes", "ranges", "ampersand", "escape", "protect", "multivolume", "doi", "booktitle", "prune"} {
		if defaults[name] {
			t.Fatalf("optional rule %q in defaults", name)
		}
	}
	all := map[string]bool{}
	for _, r := range All() {
		if all[r.Name] {
			t.Fatalf("duplicate rule name %q", r.Name)
		}
		all[r.Name] = true
	}
}

func TestByNames(t *testing.T) {
	rules, err := ByNames([]string{"pages", " edition "})
	if err != nil {
		t.Fatalf("ByNames: %v", err)
	}
	if len(rules) != 2 || rules[0].Name != "pages" || rules[1].Name != "edition" {
		t.Fatalf("rules: %+v", rules)
	}
	if _, err := ByNames([]string{"nope"}); err == nil {
		t.Fatalf("expected error for unknown rule")
	}
}

func TestFixPages(t *testing.T) {
	cases := []struct{ in, want string }{
		{"12-15", "12--15"},
		{"pp. 12-15", "12--15"},
		{"p.12–15", "12--15"},
		{"12--15", "12--15"},
		{"12 - 15", "12--15"},
		{"12", "12"},
		{"12---15", "12---15"},
		{"xii-xv", "xii-xv"},
		{"12-15, 20-25", "12--15, 20--25"},
	}
	for _, c := range cases {
		r := record("article", map[string]string{"pages": c.in})
		fixPages(r)
		if got := r.Fields["pages"]; got != c.want {
			t.Fatalf("pages %q -> %q want %q", c.in, got, c.want)
		}
	}
}

func TestFixPagesIdempotent(t *testing.T) {
	for _, in := range []string{"pp. 12-15", "p.12–15", "1-2, 3-4"} {
		r := record("article", map[string]string{"pages": in})
		fixPages(r)
		once := r.Fields["pages"]
		fixPages(r)
		if r.Fields["pages"] != once {
			t.Fatalf("pages not idempotent: %q -> %q -> %q", in, once, r.Fields["pages"])
		}
	}
}

func TestFixAuthors(t *testing.T) {
	r := record("book", map[string]string{
		"author": "thomas hodgson and JANE DOE and {Oxford University Press}",
		"editor": "smith, alex",
	})
	fixAuthors(r)
	if got, want := r.Fields["author"], "Hodgson, Thomas and Doe, Jane and {Oxford University Press}"; got != want {
		t.Fatalf("author=%q want %q", got, want)
	}
	if got, want := r.Fields["editor"], "Smith, Alex"; got != want {
		t.Fatalf("editor=%q want %q", got, want)
	}
}

func TestFixTitles(t *testing.T) {
	r := record("book", map[string]string{
		"title":    "the problems of philosophy",
		"subtitle": "an essay on method",
	})
	fixTitles(r)
	if got := r.Fields["title"]; got != "The Problems of Philosophy" {
		t.Fatalf("title=%q", got)
	}
	if got := r.Fields["subtitle"]; got != "An Essay on Method" {
		t.Fatalf("subtitle=%q", got)
	}
}

func TestRenameJournal(t *testing.T) {
	r := record("article", map[string]string{"journal": "Mind"})
	renameJournal(r)
	if _, ok := r.Fields["journal"]; ok {
		t.Fatalf("journal survived")
	}
	if got := r.Fields["journaltitle"]; got != "Mind" {
		t.Fatalf("journaltitle=%q", got)
	}

	// Not an article: untouched.
	b := record("book", map[string]string{"journal": "Mind"})
	renameJournal(b)
	if got := b.Fields["journal"]; got != "Mind" {
		t.Fatalf("book journal=%q", got)
	}

	// Existing journaltitle wins.
	a := record("article", map[string]string{"journal": "Mind", "journaltitle": "Noûs"})
	renameJournal(a)
	if got := a.Fields["journaltitle"]; got != "Noûs" {
		t.Fatalf("journaltitle=%q", got)
	}
}

func TestProtectPublisher(t *testing.T) {
	r := record("book", map[string]string{"publisher": "Taylor and Francis"})
	protectPublisher(r)
	if got := r.Fields["publisher"]; got != "{Taylor and Francis}" {
		t.Fatalf("publisher=%q", got)
	}
	protectPublisher(r)
	if got := r.Fields["publisher"]; got != "{Taylor and Francis}" {
		t.Fatalf("publisher not idempotent: %q", got)
	}

	for _, plain := range []string{"Routledge", "Randomhouse", "Sandpiper Press"} {
		p := record("book", map[string]string{"publisher": plain})
		protectPublisher(p)
		if got := p.Fields["publisher"]; got != plain {
			t.Fatalf("publisher %q -> %q", plain, got)
		}
	}
}

func TestFixEdition(t *testing.T) {
	cases := []struct{ in, want string }{
		{"first", "1"},
		{"Second", "2"},
		{"tenth", "10"},
		{"2nd", "2"},
		{"11th", "11"},
		{"3", "3"},
		{"Revised", "Revised"},
	}
	for _, c := range cases {
		r := record("book", map[string]string{"edition": c.in})
		fixEdition(r)
		if got := r.Fields["edition"]; got != c.want {
			t.Fatalf("edition %q -> %q want %q", c.in, got, c.want)
		}
	}
}

func TestOptionalRules(t *testing.T) {
	r := record("book", map[string]string{
		"title": "proofs – and refutations — again",
	})
	fixDashes(r)
	if got := r.Fields["title"]; got != "proofs -- and refutations --- again" {
		t.Fatalf("dashes: %q", got)
	}

	r = record("article", map[string]string{"volume": "1-2", "number": "3–4"})
	fixDashes(r)
	fixRanges(r)
	if r.Fields["volume"] != "1--2" || r.Fields["number"] != "3--4" {
		t.Fatalf("ranges: %q %q", r.Fields["volume"], r.Fields["number"])
	}

	r = record("article", map[string]string{"title": `Mind \& World`})
	replaceAmpersand(r)
	if got := r.Fields["title"]; got != "Mind and World" {
		t.Fatalf("ampersand: %q", got)
	}

	r = record("article", map[string]string{"note": `50% of A_1 & B`})
	escapeReserved(r)
	if got := r.Fields["note"]; got != `50\% of A\_1 \& B` {
		t.Fatalf("escape: %q", got)
	}
	escapeReserved(r)
	if got := r.Fields["note"]; got != `50\% of A\_1 \& B` {
		t.Fatalf("escape not idempotent: %q", got)
	}

	r = record("book", map[string]string{"title": "A History of Greek Philosophy"})
	protectCaps(r)
	if got := r.Fields["title"]; got != "A {History} of {Greek} {Philosophy}" {
		t.Fatalf("protect: %q", got)
	}

	r = record("book", map[string]string{"volume": "2", "title": "Collected Works"})
	promoteMultivolume(r)
	if r.Type != "mvbook" {
		t.Fatalf("multivolume: %q", r.Type)
	}

	r = record("article", map[string]string{"doi": "https://doi.org/10.1000/182"})
	stripDOIResolver(r)
	if got := r.Fields["doi"]; got != "10.1000/182" {
		t.Fatalf("doi: %q", got)
	}

	r = record("book", map[string]string{"title": "Word and Object"})
	copyBooktitle(r)
	if got := r.Fields["booktitle"]; got != "Word and Object" {
		t.Fatalf("booktitle: %q", got)
	}

	r = record("article", map[string]string{"abstract": "x", "issn": "1234-5678", "copyright": "y", "title": "Kept"})
	pruneImportNoise(r)
	for _, f := range []string{"abstract", "issn", "copyright"} {
		if _, ok := r.Fields[f]; ok {
			t.Fatalf("%s survived prune", f)
		}
	}
	if r.Fields["title"] != "Kept" {
		t.Fatalf("title lost in prune")
	}
}

func TestApplyRunsDefaultsOverStore(t *testing.T) {
	set := schema.NewStore()
	r := schema.NewRecord("hodgson2020", "article")
	r.Fields["author"] = "thomas hodgson"
	r.Fields["title"] = "a paper about reference"
	r.Fields["journal"] = "mind"
	r.Fields["pages"] = "pp. 12-15"
	r.Fields["edition"] = "second"
	if err := set.Add(r); err != nil {
		t.Fatalf("add: %v", err)
	}
	Apply(set, Default())
	if got := r.Fields["author"]; got != "Hodgson, Thomas" {
		t.Fatalf("author=%q", got)
	}
	if got := r.Fields["title"]; got != "A Paper About Reference" {
		t.Fatalf("title=%q", got)
	}
	if got := r.Fields["journaltitle"]; got != "mind" {
		t.Fatalf("journaltitle=%q", got)
	}
	if got := r.Fields["pages"]; got != "12--15" {
		t.Fatalf("pages=%q", got)
	}
	if got := r.Fields["edition"]; got != "2" {
		t.Fatalf("edition=%q", got)
	}

	// Defaults leave optional-rule territory alone.
	if _, ok := r.Fields["booktitle"]; ok {
		t.Fatalf("booktitle appeared under defaults")
	}
}

func TestApplyDefaultsIdempotent(t *testing.T) {
	set := schema.NewStore()
	r := schema.NewRecord("doe1999", "article")
	r.Fields["author"] = "jane doe and {Barnes and Noble}"
	r.Fields["title"] = "on the very idea of a scheme"
	r.Fields["journal"] = "Analysis"
	r.Fields["pages"] = "p. 1-10"
	if err := set.Add(r); err != nil {
		t.Fatalf("add: %v", err)
	}
	Apply(set, Default())
	snapshot := map[string]string{}
	for k, v := range r.Fields {
		snapshot[k] = v
	}
	Apply(set, Default())
	for k, v := range snapshot {
		if r.Fields[k] != v {
			t.Fatalf("field %s drifted: %q -> %q", k, v, r.Fields[k])
		}
	}
	if len(r.Fields) != len(snapshot) {
		t.Fatalf("field count drifted")
	}
}
