// Package zstdutil wraps the decompression primitive (klauspost/compress/zstd)
// that VROMFS and BLK both treat as a black box: bytes in, optional
// dictionary, bytes out.
package zstdutil

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

// ErrDecompressionFailed wraps a ZSTD error that survived both the
// single-shot and streaming-frame fallback attempts.
var ErrDecompressionFailed = errors.New("zstdutil: decompression failed")

// Decompress inflates data, optionally using dict as a pre-trained ZSTD
// dictionary. It first tries a single-shot decode; VROMFS payloads are
// occasionally raw streaming frames rather than sized frames, so on a
// format error it retries with a streaming reader.
func Decompress(data, dict []byte) ([]byte, error) {
	var opts []zstd.DOption
	if len(dict) > 0 {
		opts = append(opts, zstd.WithDecoderDicts(dict))
	}

	dec, err := zstd.NewReader(nil, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecompressionFailed, err)
	}
	defer dec.Close()

	if out, err := dec.DecodeAll(data, nil); err == nil {
		return out, nil
	}

	stream, err := zstd.NewReader(bytes.NewReader(data), opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecompressionFailed, err)
	}
	defer stream.Close()

	out, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecompressionFailed, err)
	}
	return out, nil
}
