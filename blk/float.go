package blk

import "math"

func float32FromBits(bits uint32) float32 { return math.Float32frombits(bits) }
