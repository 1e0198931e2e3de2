package fstree

import "errors"

// ErrDuplicate is returned by Insert when a file already exists at the
// query's terminal path.
var ErrDuplicate = errors.New("fstree: duplicate entry")

// ErrNotFound is returned by Lookup when an intermediate directory or the
// terminal file does not exist, unless suppression was requested.
var ErrNotFound = errors.New("fstree: not found")
