package blk

import "errors"

var (
	// ErrMissingDict is returned when a payload requires a ZSTD
	// dictionary that was not supplied.
	ErrMissingDict = errors.New("blk: missing zstd dictionary")
	// ErrMissingNameMap is returned when a slim payload requires an
	// archive-level name map that was not supplied.
	ErrMissingNameMap = errors.New("blk: missing name map")
	// ErrUnknownParamType is returned when a parameter record's type tag
	// is not one of the known codecs.
	ErrUnknownParamType = errors.New("blk: unknown parameter type")
)
