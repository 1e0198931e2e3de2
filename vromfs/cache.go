package vromfs

import (
	"github.com/cespare/xxhash/v2"
	"github.com/dgryski/go-tinylfu"
)

// The cache built by newBlkDecodeCache remembers the decoded tree for recently opened BLK files
// within one Reader's lifetime, so re-opening the same file (a common
// access pattern when a caller re-walks the tree) doesn't redo ZSTD
// inflation. Keyed by the file's offset in the inner image, which is
// unique per Reader.
const blkCacheSize = 256

func newBlkDecodeCache() *tinylfu.T[uint32, any] {
	return tinylfu.New[uint32, any](blkCacheSize, blkCacheSize*10, blkCacheHash)
}

func blkCacheHash(k uint32) uint64 {
	return xxhash.Sum64(uint32Bytes(k))
}

func uint32Bytes(v uint32) []byte {
	return []byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
}
