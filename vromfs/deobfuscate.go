package vromfs

import "encoding/binary"

// key is the fixed 16-byte (four little-endian u32 words) XOR key applied
// to the head of a ZSTD_OBFUSCATED payload; keyRev is the same words in
// reverse order, applied to the middle window.
var (
	key    = [4]uint32{0xAA55AA55, 0xF00FF00F, 0xAA55AA55, 0x12481248}
	keyRev = [4]uint32{0x12481248, 0xAA55AA55, 0xF00FF00F, 0xAA55AA55}
)

// deobfuscate reverses the fixed-key XOR scrambling applied to
// ZSTD_OBFUSCATED payloads after they were compressed. It is its own
// inverse: calling it twice on the same input (for len(data) <= 32, or for
// len(data) > 32 when the two XOR windows it touches don't overlap, which
// the format guarantees) reproduces the original bytes.
func deobfuscate(data []byte) []byte {
	n := len(data)
	if n < 16 {
		out := make([]byte, n)
		copy(out, data)
		return out
	}

	out := make([]byte, n)
	copy(out, xor16(data[:16], key))

	if n <= 32 {
		copy(out[16:], data[16:])
		return out
	}

	mid := int(uint32(n)&0x03FFFFFC) - 16
	copy(out[16:mid], data[16:mid])
	copy(out[mid:mid+16], xor16(data[mid:mid+16], keyRev))
	copy(out[mid+16:], data[mid+16:])
	return out
}

// xor16 XORs a 16-byte window, word, treating it as four little-endian
// uint32 words XORed pairwise against k and re-serialized little-endian.
func xor16(src []byte, k [4]uint32) []byte {
	out := make([]byte, 16)
	for i := 0; i < 4; i++ {
		w := binary.LittleEndian.Uint32(src[i*4:]) ^ k[i]
		binary.LittleEndian.PutUint32(out[i*4:], w)
	}
	return out
}
