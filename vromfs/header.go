package vromfs

import (
	"bytes"
	"crypto/md5"
	"fmt"

	"github.com/wtassets/vromfs/cursor"
)

// HeaderKind distinguishes the two outer container magics.
type HeaderKind uint8

const (
	VRFS HeaderKind = iota
	VRFX
)

// Scheme is the packing scheme carried in the top 6 bits of pack_raw. The
// bit layout mirrors the inner directory's own 0x20/0x30 "no digest / has
// digest" header tag (see DESIGN.md): bit 5 selects ZSTD_OBFUSCATED over
// PLAIN, bit 4 selects whether a trailing MD5 digest follows the payload.
type Scheme uint8

const (
	schemeZstdBit   Scheme = 0x20
	schemeDigestBit Scheme = 0x10
)

// Plain reports whether s is the uncompressed packing scheme.
func (s Scheme) Plain() bool { return s&schemeZstdBit == 0 }

// ZstdObfuscated reports whether s is the XOR-scrambled, ZSTD-compressed
// packing scheme.
func (s Scheme) ZstdObfuscated() bool { return s&schemeZstdBit != 0 }

// HasDigest reports whether a trailing MD5 digest follows the payload.
func (s Scheme) HasDigest() bool { return s&schemeDigestBit != 0 }

// Packing is the outer header's compression descriptor.
type Packing struct {
	Scheme   Scheme
	PackSize uint32 // low 26 bits of pack_raw
}

// outerHeader is the parsed, fixed-size prologue of a VROMFS file.
type outerHeader struct {
	Kind             HeaderKind
	Platform         uint32
	UncompressedSize uint32
	Packing          Packing
	Version          uint32 // VRFX only; not used downstream
}

func parseOuterHeader(c *cursor.Byte) (outerHeader, error) {
	magic, err := c.Fetch(4)
	if err != nil {
		return outerHeader{}, err
	}

	var hdr outerHeader
	switch string(magic) {
	case "VRFS":
		hdr.Kind = VRFS
	case "VRFX":
		hdr.Kind = VRFX
	default:
		return outerHeader{}, fmt.Errorf("%w: %q", ErrBadMagic, magic)
	}

	platform, err := c.U32LE()
	if err != nil {
		return outerHeader{}, err
	}
	hdr.Platform = platform

	uncompressedSize, err := c.U32LE()
	if err != nil {
		return outerHeader{}, err
	}
	hdr.UncompressedSize = uncompressedSize

	packRaw, err := c.U32LE()
	if err != nil {
		return outerHeader{}, err
	}
	hdr.Packing = Packing{
		Scheme:   Scheme(packRaw >> 26),
		PackSize: packRaw & 0x03FFFFFF,
	}

	if hdr.Kind == VRFX {
		if err := c.Advance(4); err != nil {
			return outerHeader{}, err
		}
		version, err := c.U32LE() // version tag, stored but unused downstream
		if err != nil {
			return outerHeader{}, err
		}
		hdr.Version = version
	}

	return hdr, nil
}

// payload reads the raw (possibly still obfuscated/compressed) payload
// window and, for ZSTD_OBFUSCATED archives, fully decodes it into the
// inner image.
func (h outerHeader) payload(c *cursor.Byte) ([]byte, error) {
	var raw []byte
	var err error
	if h.Packing.Scheme.ZstdObfuscated() {
		raw, err = c.Fetch(int(h.Packing.PackSize))
	} else {
		raw, err = c.Fetch(int(h.UncompressedSize))
	}
	if err != nil {
		return nil, err
	}
	if !h.Packing.Scheme.ZstdObfuscated() {
		return raw, nil
	}
	return h.decodeObfuscated(raw, c)
}

func (h outerHeader) decodeObfuscated(raw []byte, c *cursor.Byte) ([]byte, error) {
	inner, err := decompressInnerImage(deobfuscate(raw))
	if err != nil {
		return nil, err
	}
	if h.Packing.Scheme.HasDigest() {
		digest, err := c.Fetch(16)
		if err != nil {
			return nil, err
		}
		sum := md5.Sum(inner)
		if !bytes.Equal(sum[:], digest) {
			return nil, fmt.Errorf("%w: got %x want %x", ErrDigestMismatch, sum, digest)
		}
	}
	return inner, nil
}
