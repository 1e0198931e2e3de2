package vromfs

import "errors"

var (
	// ErrBadMagic is returned when the outer header tag is neither VRFS
	// nor VRFX.
	ErrBadMagic = errors.New("vromfs: bad magic")
	// ErrBadInnerHeader is returned when the inner directory's first byte
	// is neither 0x20 nor 0x30.
	ErrBadInnerHeader = errors.New("vromfs: bad inner header")
	// ErrDigestMismatch is returned when the decompressed inner image does
	// not match its stored MD5 digest.
	ErrDigestMismatch = errors.New("vromfs: digest mismatch")
	// ErrBadNameMap is returned when the packed name map's declared size
	// disagrees with its actual content.
	ErrBadNameMap = errors.New("vromfs: bad name map")
)
