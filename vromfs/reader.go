// Package vromfs parses the VROMFS archive container: outer header,
// keyed obfuscation, ZSTD decompression, MD5 digest verification, and the
// inner directory table of files, name map and dictionary it wraps.
package vromfs

import (
	"fmt"
	"os"

	"github.com/dgryski/go-tinylfu"
	"github.com/wtassets/vromfs/blk"
	"github.com/wtassets/vromfs/cursor"
)

// Reader holds one parsed VROMFS container. It owns the decompressed
// inner image for its lifetime; every File it produced references a byte
// range inside that image and must not outlive the Reader.
//
// A Reader is not safe for concurrent use by multiple goroutines; distinct
// Readers over distinct containers require no coordination.
type Reader struct {
	innerImage []byte

	files   []*File
	nameMap [][]byte
	dict    []byte
	version *File

	blkCache *tinylfu.T[uint32, any]
}

// Open reads and fully parses the VROMFS archive at path.
func Open(path string) (*Reader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return NewReader(data)
}

// NewReader parses a VROMFS archive already held in memory.
func NewReader(data []byte) (*Reader, error) {
	c := cursor.NewByte(data)
	hdr, err := parseOuterHeader(c)
	if err != nil {
		return nil, fmt.Errorf("vromfs: outer header: %w", err)
	}

	inner, err := hdr.payload(c)
	if err != nil {
		return nil, fmt.Errorf("vromfs: payload: %w", err)
	}

	r := &Reader{innerImage: inner, blkCache: newBlkDecodeCache()}

	dir, err := parseInnerDirectory(inner, r)
	if err != nil {
		return nil, fmt.Errorf("vromfs: inner directory: %w", err)
	}
	r.files = dir.Files
	r.version = dir.Version

	if dir.NameMapBlob != nil {
		names, err := decodeNameMap(dir.NameMapBlob)
		if err != nil {
			return nil, fmt.Errorf("vromfs: name map: %w", err)
		}
		r.nameMap = names
	}
	if dir.DictBlob != nil {
		r.dict = dir.DictBlob
	}

	return r, nil
}

// Files returns the archive's user-visible files (special records are
// stripped, per spec §9).
func (r *Reader) Files() []*File { return r.files }

// NameMap returns the archive-wide name table used by slim BLK payloads,
// or nil if the archive carries none.
func (r *Reader) NameMap() [][]byte { return r.nameMap }

// Dict returns the archive's ZSTD dictionary used by slim+dict BLK
// payloads, or nil if the archive carries none.
func (r *Reader) Dict() []byte { return r.dict }

// Version returns the archive's version record, or nil.
func (r *Reader) Version() *File { return r.version }

// OpenBLK reads f and decodes it as a BLK payload, using this Reader's
// name map and ZSTD dictionary. Decoded trees are kept in a bounded cache
// keyed by file offset, so a recently opened file is not decoded again;
// older entries may be evicted and are then decoded afresh.
func (r *Reader) OpenBLK(f *File) (*blk.Block, error) {
	if cached, ok := r.blkCache.Get(f.Offset); ok {
		return cached.(*blk.Block), nil
	}

	raw, err := f.Bytes()
	if err != nil {
		return nil, err
	}
	tree, err := blk.Decode(raw, r.nameMap, r.dict)
	if err != nil {
		return nil, fmt.Errorf("vromfs: decode %q: %w", f.Path(), err)
	}
	r.blkCache.Add(f.Offset, tree)
	return tree, nil
}
