package vromfs

import (
	"bytes"
	"fmt"

	"github.com/wtassets/vromfs/cursor"
	"github.com/wtassets/vromfs/internal/zstdutil"
)

// decodeNameMap turns a "\xff?nm" special record's raw payload into the
// ordered list of names it carries. See spec §3: the payload is
// names_digest[8] | dict_digest[32] | zstd_bytes, and the decompressed
// zstd_bytes are names_count (ULEB128) | names_data_size (ULEB128) |
// NUL-joined names.
//
// names_digest and dict_digest are read but, matching the source, never
// validated (see DESIGN.md).
func decodeNameMap(blob []byte) ([][]byte, error) {
	if len(blob) < 40 {
		return nil, fmt.Errorf("%w: short name map blob", ErrBadNameMap)
	}
	zstdBytes := blob[40:]

	raw, err := zstdutil.Decompress(zstdBytes, nil)
	if err != nil {
		return nil, err
	}

	c := cursor.NewByte(raw)
	namesCount, err := c.ULEB128()
	if err != nil {
		return nil, err
	}
	namesDataSize, err := c.ULEB128()
	if err != nil {
		return nil, err
	}
	data, err := c.Fetch(int(namesDataSize))
	if err != nil {
		return nil, fmt.Errorf("%w: names_data_size %d exceeds payload: %v", ErrBadNameMap, namesDataSize, err)
	}

	names := bytes.Split(data, []byte{0})
	names = names[:len(names)-1] // trailing split artifact after the final NUL
	if uint64(len(names)) != namesCount {
		return nil, fmt.Errorf("%w: header says %d names, got %d", ErrBadNameMap, namesCount, len(names))
	}
	return names, nil
}
