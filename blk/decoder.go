package blk

import (
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/wtassets/vromfs/cursor"
	"github.com/wtassets/vromfs/internal/zstdutil"
)

// Tag classes for the leading byte of a raw BLK payload. The spec gives
// these names but not numeric values; 0x01 is fixed by the synthesis
// example in its seed scenarios (a non-slim, non-zstd payload with a
// leading 0x01 byte), and the remaining three are assigned the next
// distinct bytes in a consistent order (see DESIGN.md).
const (
	tagPlain    byte = 0x01 // fat, inline name table, uncompressed
	tagZstd     byte = 0x02 // fat, self-compressed zstd, no external dict
	tagSlim     byte = 0x03 // slim, uncompressed, external name map
	tagZstdDict byte = 0x04 // slim, zstd-compressed with an external dict
)

func isZstd(t byte) bool    { return t == tagZstd || t == tagZstdDict }
func needsDict(t byte) bool { return t == tagZstdDict }
func isSlim(t byte) bool    { return t == tagSlim || t == tagZstdDict }

const badNameMarker = "BADBADBAD"

// Decode parses a raw BLK payload into its block hierarchy. nameMap and dict
// come from the owning VROMFS container; either may be nil when the
// payload's tag class doesn't require it.
func Decode(raw []byte, nameMap [][]byte, dict []byte) (*Block, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("blk: empty payload")
	}
	t := raw[0]
	body := raw[1:]

	if needsDict(t) && dict == nil {
		return nil, ErrMissingDict
	}
	if isSlim(t) && nameMap == nil {
		return nil, ErrMissingNameMap
	}

	if isZstd(t) {
		d := dict
		if !needsDict(t) {
			d = nil
		}
		decoded, err := zstdutil.Decompress(body, d)
		if err != nil {
			return nil, err
		}
		body = decoded
	}

	c := cursor.NewByte(body)

	namesInNameMap, err := c.ULEB128()
	if err != nil {
		return nil, fmt.Errorf("blk: names_in_name_map: %w", err)
	}

	var names []string
	if isSlim(t) {
		names = resolveSlimNames(nameMap, int(namesInNameMap))
	} else {
		names, err = readInlineNames(c, int(namesInNameMap))
		if err != nil {
			return nil, err
		}
	}

	numBlocks, err := c.ULEB128()
	if err != nil {
		return nil, fmt.Errorf("blk: num_blocks: %w", err)
	}
	numParams, err := c.ULEB128()
	if err != nil {
		return nil, fmt.Errorf("blk: num_params: %w", err)
	}
	paramsDataSize, err := c.ULEB128()
	if err != nil {
		return nil, fmt.Errorf("blk: params_data_size: %w", err)
	}
	paramsData, err := c.Fetch(int(paramsDataSize))
	if err != nil {
		return nil, fmt.Errorf("blk: params_data: %w", err)
	}

	params, err := readParamRecords(c, int(numParams), names, paramsData)
	if err != nil {
		return nil, err
	}

	flat, err := readBlockHeaders(c, int(numBlocks), names, params)
	if err != nil {
		return nil, err
	}
	if len(flat) == 0 {
		return &Block{Name: "root"}, nil
	}
	return liftChildren(flat, 0), nil
}

// resolveSlimNames decodes name indices against an archive-level name map,
// lossily recovering malformed UTF-8 rather than failing the whole decode.
func resolveSlimNames(nameMap [][]byte, count int) []string {
	names := make([]string, 0, count)
	for i := 0; i < count && i < len(nameMap); i++ {
		raw := nameMap[i]
		if utf8.Valid(raw) {
			names = append(names, string(raw))
		} else {
			names = append(names, badNameMarker+string(raw))
		}
	}
	return names
}

func readInlineNames(c *cursor.Byte, namesInNameMap int) ([]string, error) {
	nameMapSize, err := c.ULEB128()
	if err != nil {
		return nil, fmt.Errorf("blk: name_map_size: %w", err)
	}
	if nameMapSize == 0 {
		return nil, nil
	}
	blob, err := c.Fetch(int(nameMapSize) - 1)
	if err != nil {
		return nil, fmt.Errorf("blk: name table: %w", err)
	}
	if err := c.Advance(1); err != nil { // trailing NUL
		return nil, err
	}
	names := strings.Split(string(blob), "\x00")
	if n := len(names); n > 0 && names[n-1] == "" {
		// Each name (including the last) is NUL-terminated, so splitting
		// on NUL leaves one trailing empty element to discard.
		names = names[:n-1]
	}
	if len(names) != namesInNameMap {
		slog.Warn("blk: name table length mismatch", "got", len(names), "want", namesInNameMap)
	}
	return names, nil
}

func readParamRecords(c *cursor.Byte, numParams int, names []string, paramsData []byte) ([]Param, error) {
	params := make([]Param, numParams)
	for i := 0; i < numParams; i++ {
		word1, err := c.U32LE()
		if err != nil {
			return nil, fmt.Errorf("blk: param record %d: %w", i, err)
		}
		payload, err := c.U32LE()
		if err != nil {
			return nil, fmt.Errorf("blk: param record %d: %w", i, err)
		}
		nameID := word1 & 0x00FFFFFF
		tag := uint8(word1 >> 24)

		name := ""
		if int(nameID) < len(names) {
			name = names[nameID]
		}
		val, err := decodeParamValue(tag, payload, paramsData)
		if err != nil {
			return nil, fmt.Errorf("blk: param %q: %w", name, err)
		}
		params[i] = Param{Name: name, Value: val}
	}
	return params, nil
}

// readBlockHeaders reads the num_blocks block headers, assigns each its
// slice of the already-decoded parameter sequence, and returns the flat,
// range-addressed block list ready for liftChildren.
func readBlockHeaders(c *cursor.Byte, numBlocks int, names []string, params []Param) ([]flatBlock, error) {
	flat := make([]flatBlock, numBlocks)
	paramCursor := 0

	for i := 0; i < numBlocks; i++ {
		nameID, err := c.ULEB128()
		if err != nil {
			return nil, fmt.Errorf("blk: block %d name_id: %w", i, err)
		}
		paramCount, err := c.ULEB128()
		if err != nil {
			return nil, fmt.Errorf("blk: block %d param_count: %w", i, err)
		}
		blockCount, err := c.ULEB128()
		if err != nil {
			return nil, fmt.Errorf("blk: block %d block_count: %w", i, err)
		}
		firstBlockID := -1
		if blockCount > 0 {
			v, err := c.ULEB128()
			if err != nil {
				return nil, fmt.Errorf("blk: block %d first_block_id: %w", i, err)
			}
			firstBlockID = int(v)
		}

		name := "root"
		if i != 0 {
			idx := int(nameID) - 1
			if idx >= 0 && idx < len(names) {
				name = names[idx]
			}
		}

		if paramCursor+int(paramCount) > len(params) {
			return nil, fmt.Errorf("blk: block %d claims more params than available", i)
		}
		blockParams := params[paramCursor : paramCursor+int(paramCount)]
		paramCursor += int(paramCount)

		flat[i] = flatBlock{
			name:          name,
			params:        blockParams,
			firstChildIdx: firstBlockID,
			childCount:    int(blockCount),
		}
	}
	return flat, nil
}
