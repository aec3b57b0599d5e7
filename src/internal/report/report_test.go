package report

import (
	"fmt"
	"testing"
)

func TestFindingError(t *testing.T) {
	f := Newf(DanglingCrossref, "a2000", "%s was not found", "b1999")
	if got, want := f.Error(), "[dangling-crossref] b1999 was not found"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestListError(t *testing.T) {
	var l List
	if got := l.Error(); got != "no findings" {
		t.Fatalf("empty list: %q", got)
	}
	l = append(l, Newf(UndefinedReference, "a2000", "a2000 is missing"))
	if got, want := l.Error(), "[undefined-reference] a2000 is missing"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
	l = append(l, Newf(UndefinedReference, "b2001", "b2001 is missing"))
	l = append(l, Newf(UndefinedReference, "c2002", "c2002 is missing"))
	if got, want := l.Error(), "[undefined-reference] a2000 is missing (and 2 more)"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestAsList(t *testing.T) {
	l := List{Newf(UnusedEntry, "k1990", "k1990 never cited")}
	wrapped := fmt.Errorf("checking refs: %w", l)
	got, ok := AsList(wrapped)
	if !ok || len(got) != 1 || got[0].Code != UnusedEntry {
		t.Fatalf("AsList failed: %v %v", got, ok)
	}
	if _, ok := AsList(nil); ok {
		t.Fatalf("AsList(nil) should miss")
	}
	if _, ok := AsList(fmt.Errorf("plain")); ok {
		t.Fatalf("plain error should miss")
	}
}

func TestOneOf(t *testing.T) {
	cases := []struct {
		in   []string
		want string
	}{
		{nil, ""},
		{[]string{"foo"}, "foo"},
		{[]string{"foo", "bar"}, "foo or bar"},
		{[]string{"foo", "bar", "zip"}, "foo, bar, or zip"},
	}
	for _, c := range cases {
		if got := OneOf(c.in, "or"); got != c.want {
			t.Fatalf("OneOf(%v)=%q want %q", c.in, got, c.want)
		}
	}
	if got := OneOf([]string{"a", "b"}, "and"); got != "a and b" {
		t.Fatalf("got %q", got)
	}
}
