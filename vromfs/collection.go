package vromfs

import "fmt"

// Collection layers several VROMFS archives, resolving a path against
// each in the order they were added and returning the first match. This
// models a base archive plus patch archives shipped alongside it; see
// SPEC_FULL.md's supplemented-features section.
type Collection struct {
	readers []*Reader
}

// NewCollection returns an empty Collection.
func NewCollection() *Collection { return &Collection{} }

// Add parses and appends the archive at path.
func (col *Collection) Add(path string) error {
	r, err := Open(path)
	if err != nil {
		return fmt.Errorf("vromfs: collection add %q: %w", path, err)
	}
	col.readers = append(col.readers, r)
	return nil
}

// Readers returns the archives in resolution order.
func (col *Collection) Readers() []*Reader { return col.readers }

// Find looks up path in every archive in order and returns the first hit.
func (col *Collection) Find(path string) (*File, *Reader, bool) {
	for _, r := range col.readers {
		for _, f := range r.files {
			if f.Path() == path {
				return f, r, true
			}
		}
	}
	return nil, nil, false
}
