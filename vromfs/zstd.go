package vromfs

import "github.com/wtassets/vromfs/internal/zstdutil"

func decompressInnerImage(obfuscated []byte) ([]byte, error) {
	return zstdutil.Decompress(obfuscated, nil)
}
