package vromfs

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/wtassets/vromfs/cursor"
)

// File is one user-visible entry from a VROMFS inner directory: a path
// inside the archive and the byte range it occupies in the owning
// Reader's decoded inner image.
type File struct {
	PathComponents []string
	Offset, Size   uint32

	reader *Reader
}

// Path joins PathComponents with "/", matching the archive's own separator.
func (f *File) Path() string { return strings.Join(f.PathComponents, "/") }

// Bytes returns the file's raw (still possibly BLK-encoded) content.
func (f *File) Bytes() ([]byte, error) {
	img := f.reader.innerImage
	if int64(f.Offset)+int64(f.Size) > int64(len(img)) {
		return nil, fmt.Errorf("vromfs: file %q span exceeds inner image", f.Path())
	}
	return img[f.Offset : f.Offset+f.Size], nil
}

// innerDirectory is the raw result of walking the inner image's index:
// ordinary files plus the three special records the format singles out.
type innerDirectory struct {
	Files       []*File
	NameMapBlob []byte // names_digest[8] | dict_digest[32] | zstd_bytes, or nil
	DictBlob    []byte // raw ZSTD dictionary bytes, or nil
	Version     *File
}

const (
	innerHeaderNoDigest = 0x20
	innerHeaderDigest   = 0x30
)

var (
	specialNameMap = []byte("\xff?nm")
	specialVersion = []byte("version")
)

func parseInnerDirectory(img []byte, r *Reader) (innerDirectory, error) {
	c := cursor.NewByte(img)

	namesHeader, err := c.Fetch(4)
	if err != nil {
		return innerDirectory{}, err
	}
	if namesHeader[0] != innerHeaderNoDigest && namesHeader[0] != innerHeaderDigest {
		return innerDirectory{}, fmt.Errorf("%w: first byte %#x", ErrBadInnerHeader, namesHeader[0])
	}
	namesOffset := leUint32(namesHeader)

	namesCount, err := c.U32LE()
	if err != nil {
		return innerDirectory{}, err
	}
	if err := c.Advance(8); err != nil {
		return innerDirectory{}, err
	}

	dataOffset, err := c.U32LE()
	if err != nil {
		return innerDirectory{}, err
	}
	dataCount, err := c.U32LE()
	if err != nil {
		return innerDirectory{}, err
	}
	if err := c.Advance(8); err != nil {
		return innerDirectory{}, err
	}

	names, err := readNames(img, int(namesOffset), int(namesCount))
	if err != nil {
		return innerDirectory{}, err
	}

	var out innerDirectory
	recordsBase := int(dataOffset)
	for i := 0; i < int(dataCount) && i < len(names); i++ {
		rec := img[recordsBase+i*16:]
		offset := leUint32(rec[0:4])
		size := leUint32(rec[4:8])
		name := names[i]

		switch {
		case bytes.Equal(name, specialNameMap):
			out.NameMapBlob = sliceSpan(img, offset, size)
		case bytes.HasSuffix(name, []byte("dict")):
			out.DictBlob = sliceSpan(img, offset, size)
		case bytes.Equal(name, specialVersion):
			out.Version = &File{PathComponents: []string{string(name)}, Offset: offset, Size: size, reader: r}
		default:
			out.Files = append(out.Files, &File{
				PathComponents: strings.Split(string(name), "/"),
				Offset:         offset,
				Size:           size,
				reader:         r,
			})
		}
	}

	return out, nil
}

func sliceSpan(img []byte, offset, size uint32) []byte {
	end := int64(offset) + int64(size)
	if end > int64(len(img)) {
		return nil
	}
	return img[offset:end]
}

func readNames(img []byte, offset, count int) ([][]byte, error) {
	c := cursor.NewByte(img[offset:])
	names := make([][]byte, count)
	offsets := make([]uint32, count)
	for i := 0; i < count; i++ {
		off, err := c.U64LE()
		if err != nil {
			return nil, err
		}
		offsets[i] = uint32(off)
	}
	for i, off := range offsets {
		nc := cursor.NewByte(img[off:])
		name, err := nc.ReadCString()
		if err != nil {
			return nil, err
		}
		names[i] = name
	}
	return names, nil
}

func leUint32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}
