package blk

import (
	"encoding/binary"
	"fmt"
)

const (
	paramTagStr     = 0x01
	paramTagInt32   = 0x02
	paramTagFloat32 = 0x03
	paramTagVec2    = 0x04
	paramTagVec3    = 0x05
	paramTagVec4    = 0x06
	paramTagInt2    = 0x07
	paramTagInt3    = 0x08
	paramTagBool    = 0x09
	paramTagColor   = 0x0A
	paramTagM4x3    = 0x0B
	paramTagInt64   = 0x0C
	paramTagUInt64  = 0x10
)

// decodeParamValue resolves the payload word of a single parameter record
// against its type tag, reading through paramsData for every offset-carrying
// type.
func decodeParamValue(tag uint8, payload uint32, paramsData []byte) (Value, error) {
	switch tag {
	case paramTagStr:
		s, err := readCString(paramsData, int(payload))
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindStr, Str: s}, nil

	case paramTagInt32:
		return Value{Kind: KindInt32, Int32: int32(payload)}, nil

	case paramTagFloat32:
		return Value{Kind: KindFloat32, Float32: float32FromBits(payload)}, nil

	case paramTagVec2:
		fs, err := readFloats(paramsData, int(payload), 2)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindVec2, Vec2: [2]float32{fs[0], fs[1]}}, nil

	case paramTagVec3:
		fs, err := readFloats(paramsData, int(payload), 3)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindVec3, Vec3: [3]float32{fs[0], fs[1], fs[2]}}, nil

	case paramTagVec4:
		fs, err := readFloats(paramsData, int(payload), 4)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindVec4, Vec4: [4]float32{fs[0], fs[1], fs[2], fs[3]}}, nil

	case paramTagInt2:
		is, err := readInt32s(paramsData, int(payload), 2)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindInt2, Int2: [2]int32{is[0], is[1]}}, nil

	case paramTagInt3:
		is, err := readInt32s(paramsData, int(payload), 3)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindInt3, Int3: [3]int32{is[0], is[1], is[2]}}, nil

	case paramTagBool:
		return Value{Kind: KindBool, Bool: payload&1 != 0}, nil

	case paramTagColor:
		b := make([]byte, 4)
		binary.LittleEndian.PutUint32(b, payload)
		return Value{Kind: KindColor, Color: Color{B: b[0], G: b[1], R: b[2], A: b[3]}}, nil

	case paramTagM4x3:
		fs, err := readFloats(paramsData, int(payload), 12)
		if err != nil {
			return Value{}, err
		}
		var m M4x3
		copy(m[:], fs)
		return Value{Kind: KindM4x3, M4x3: m}, nil

	case paramTagInt64:
		u, err := readUint64(paramsData, int(payload))
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindInt64, Int64: int64(u)}, nil

	case paramTagUInt64:
		u, err := readUint64(paramsData, int(payload))
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindUInt64, UInt64: u}, nil

	default:
		return Value{}, fmt.Errorf("%w: %#x", ErrUnknownParamType, tag)
	}
}

func readCString(data []byte, off int) (string, error) {
	if off < 0 || off > len(data) {
		return "", fmt.Errorf("blk: string offset %d out of range", off)
	}
	end := off
	for end < len(data) && data[end] != 0 {
		end++
	}
	return string(data[off:end]), nil
}

func readFloats(data []byte, off, n int) ([]float32, error) {
	need := off + n*4
	if off < 0 || need > len(data) {
		return nil, fmt.Errorf("blk: float array at %d (n=%d) out of range", off, n)
	}
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		out[i] = float32FromBits(binary.LittleEndian.Uint32(data[off+i*4:]))
	}
	return out, nil
}

func readInt32s(data []byte, off, n int) ([]int32, error) {
	need := off + n*4
	if off < 0 || need > len(data) {
		return nil, fmt.Errorf("blk: int32 array at %d (n=%d) out of range", off, n)
	}
	out := make([]int32, n)
	for i := 0; i < n; i++ {
		out[i] = int32(binary.LittleEndian.Uint32(data[off+i*4:]))
	}
	return out, nil
}

func readUint64(data []byte, off int) (uint64, error) {
	if off < 0 || off+8 > len(data) {
		return 0, fmt.Errorf("blk: u64 at %d out of range", off)
	}
	return binary.LittleEndian.Uint64(data[off:]), nil
}
