package fstree

import (
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Matcher decides whether a file name matches a filter used by Search.
type Matcher interface {
	Match(name string) bool
}

// Substring matches names containing it as a literal substring.
type Substring string

func (s Substring) Match(name string) bool { return strings.Contains(name, string(s)) }

// Regexp matches names against a compiled regular expression.
type Regexp struct{ *regexp.Regexp }

func (r Regexp) Match(name string) bool { return r.MatchString(name) }

// Glob matches names against a doublestar pattern (supports "**").
type Glob string

func (g Glob) Match(name string) bool { return doublestar.MatchUnvalidated(string(g), name) }

// MassQuery selects a subtree to search and the filters to apply to every
// file name encountered in it.
type MassQuery struct {
	Dirs    []string // subtree to start from; empty means the whole tree
	Exclude []Matcher
	Include []Matcher
}

// Result is one hit from Search.
type Result[F any] struct {
	Path string
	File F
}

// Search performs a depth-first walk of q.Dirs (or the whole tree),
// filtering each directory's files by Exclude (any match drops the name)
// and then Include (at least one match required; an empty Include list
// keeps everything that survived Exclude). Iteration order within a
// directory is insertion order.
func (d *Directory[F]) Search(q MassQuery) ([]Result[F], error) {
	at := d
	for _, c := range q.Dirs {
		next, ok := at.children[c]
		if !ok || next.dir == nil {
			return nil, ErrNotFound
		}
		at = next.dir
	}

	var out []Result[F]
	at.walk(q, &out)
	return out, nil
}

func (d *Directory[F]) walk(q MassQuery, out *[]Result[F]) {
	for _, name := range d.order {
		e := d.children[name]
		switch {
		case e.dir != nil:
			e.dir.walk(q, out)
		case e.file != nil:
			if keep(name, q) {
				*out = append(*out, Result[F]{Path: joinPath(d, name), File: *e.file})
			}
		}
	}
}

func keep(name string, q MassQuery) bool {
	for _, m := range q.Exclude {
		if m.Match(name) {
			return false
		}
	}
	if len(q.Include) == 0 {
		return true
	}
	for _, m := range q.Include {
		if m.Match(name) {
			return true
		}
	}
	return false
}

func joinPath[F any](parent *Directory[F], name string) string {
	p := parent.Path()
	if p == "." || p == "" {
		return name
	}
	return p + "/" + name
}
