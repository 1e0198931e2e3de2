package blk

import "fmt"

// Kind identifies the concrete type held by a Value.
type Kind uint8

const (
	KindStr Kind = iota
	KindInt32
	KindFloat32
	KindVec2
	KindVec3
	KindVec4
	KindInt2
	KindInt3
	KindBool
	KindColor
	KindM4x3
	KindInt64
	// KindUInt64 covers both the "UInt64" and "Time" wire variants; the
	// two share a single type tag and are bit-for-bit identical on the
	// wire, so there is no way to tell them apart without external
	// schema knowledge.
	KindUInt64
)

func (k Kind) String() string {
	switch k {
	case KindStr:
		return "Str"
	case KindInt32:
		return "Int32"
	case KindFloat32:
		return "Float32"
	case KindVec2:
		return "Vec2"
	case KindVec3:
		return "Vec3"
	case KindVec4:
		return "Vec4"
	case KindInt2:
		return "Int2"
	case KindInt3:
		return "Int3"
	case KindBool:
		return "Bool"
	case KindColor:
		return "Color"
	case KindM4x3:
		return "M4x3"
	case KindInt64:
		return "Int64"
	case KindUInt64:
		return "UInt64"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Color is a packed BGRA byte quad, matching how the wire format stores it.
type Color struct{ B, G, R, A uint8 }

// M4x3 is a 4x3 row-major matrix of float32s.
type M4x3 [12]float32

// Value is a tagged union over every parameter payload shape BLK defines.
type Value struct {
	Kind Kind

	Str     string
	Int32   int32
	Float32 float32
	Vec2    [2]float32
	Vec3    [3]float32
	Vec4    [4]float32
	Int2    [2]int32
	Int3    [3]int32
	Bool    bool
	Color   Color
	M4x3    M4x3
	Int64   int64
	UInt64  uint64
}
