package pixelformat

import "math"

// float16ToFloat32 and float32ToFloat16 convert IEEE 754 binary16 to
// and from binary32. No library in the reference corpus covers half
// floats, so this is implemented directly against the standard bit
// layout (1 sign / 5 exponent / 10 mantissa bits) — a self-contained
// numeric conversion, not a design concern any example library
// targets.
func float16ToFloat32(h uint16) float64 {
	sign := uint32(h>>15) & 0x1
	exp := uint32(h>>10) & 0x1F
	mant := uint32(h) & 0x3FF

	var f32 uint32
	switch {
	case exp == 0 && mant == 0:
		f32 = sign << 31
	case exp == 0: // subnormal
		// Normalize the subnormal half value.
		e := -1
		m := mant
		for m&0x400 == 0 {
			m <<= 1
			e--
		}
		m &= 0x3FF
		exp32 := uint32(int32(e) + 127 - 15 + 1)
		f32 = (sign << 31) | (exp32 << 23) | (m << 13)
	case exp == 0x1F: // inf/nan
		f32 = (sign << 31) | (0xFF << 23) | (mant << 13)
	default:
		exp32 := exp - 15 + 127
		f32 = (sign << 31) | (exp32 << 23) | (mant << 13)
	}
	return float64(math.Float32frombits(f32))
}

func float32ToFloat16(f float32) uint16 {
	bits := math.Float32bits(f)
	sign := uint16((bits >> 16) & 0x8000)
	exp := int32((bits>>23)&0xFF) - 127 + 15
	mant := bits & 0x7FFFFF

	switch {
	case exp <= 0:
		// Too small for normalized half; flush to signed zero.
		return sign
	case exp >= 0x1F:
		// Overflow to infinity, preserving sign.
		return sign | 0x7C00
	default:
		return sign | uint16(exp)<<10 | uint16(mant>>13)
	}
}
