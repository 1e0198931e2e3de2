package fstree

import "testing"

func TestInsertLookup(t *testing.T) {
	tree := New[string]()
	if err := tree.Insert(NewQuery("a/b/c"), "file-c"); err != nil {
		t.Fatalf("insert c: %v", err)
	}
	if err := tree.Insert(NewQuery("a/b/d"), "file-d"); err != nil {
		t.Fatalf("insert d: %v", err)
	}
	if err := tree.Insert(NewQuery("a/e"), "file-e"); err != nil {
		t.Fatalf("insert e: %v", err)
	}

	got, err := tree.Lookup(NewQuery("a/b/c"), false)
	if err != nil || got == nil || *got != "file-c" {
		t.Fatalf("lookup c = %v, %v", got, err)
	}
}

func TestInsertDuplicate(t *testing.T) {
	tree := New[string]()
	tree.Insert(NewQuery("a/b"), "first")
	if err := tree.Insert(NewQuery("a/b"), "second"); err != ErrDuplicate {
		t.Fatalf("err = %v, want ErrDuplicate", err)
	}
}

func TestLookupNotFound(t *testing.T) {
	tree := New[string]()
	if _, err := tree.Lookup(NewQuery("missing"), false); err != ErrNotFound {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	got, err := tree.Lookup(NewQuery("missing"), true)
	if err != nil || got != nil {
		t.Fatalf("suppressed lookup = %v, %v, want nil, nil", got, err)
	}
}

func TestSearchDepthFirstInsertionOrder(t *testing.T) {
	tree := New[string]()
	tree.Insert(NewQuery("a/b/c"), "file-c")
	tree.Insert(NewQuery("a/b/d"), "file-d")
	tree.Insert(NewQuery("a/e"), "file-e")

	results, err := tree.Search(MassQuery{})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	want := []string{"a/b/c", "a/b/d", "a/e"}
	if len(results) != len(want) {
		t.Fatalf("got %d results, want %d: %+v", len(results), len(want), results)
	}
	for i, r := range results {
		if r.Path != want[i] {
			t.Fatalf("result[%d].Path = %q, want %q", i, r.Path, want[i])
		}
	}
}

func TestSearchExcludeTakesPrecedence(t *testing.T) {
	tree := New[string]()
	tree.Insert(NewQuery("a.blk"), "a")
	tree.Insert(NewQuery("b.blk"), "b")

	results, err := tree.Search(MassQuery{
		Exclude: []Matcher{Substring("a")},
		Include: []Matcher{Substring(".blk")},
	})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 1 || results[0].Path != "b.blk" {
		t.Fatalf("results = %+v, want just b.blk", results)
	}
}

func TestSearchGlob(t *testing.T) {
	tree := New[string]()
	tree.Insert(NewQuery("gameData/units/tank.blk"), "tank")
	tree.Insert(NewQuery("gameData/units/plane.txt"), "plane")

	results, err := tree.Search(MassQuery{Include: []Matcher{Glob("*.blk")}})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 1 || results[0].Path != "gameData/units/tank.blk" {
		t.Fatalf("results = %+v", results)
	}
}
