package pixelformat

import "math"

// GenerateNext2D downsamples one level of src (w×h, format) into dst
// using a classic 2×2 box filter: each destination texel averages the
// four source texels at (2x,2y),(2x+1,2y),(2x,2y+1),(2x+1,2y+1),
// integer-divided by 4 for integer formats and scaled by 0.25 for
// float formats. Reports false on any invariant
// violation: invalid format, nil buffers, w<=1||h<=1, or a dst length
// that doesn't match the exact expected w/2*h/2*bpp.
func GenerateNext2D(src []byte, w, h int, format Format, dst []byte) bool {
	if !Valid(format) || src == nil || dst == nil {
		return false
	}
	if w <= 1 || h <= 1 {
		return false
	}
	info := table[format]
	dw, dh := w/2, h/2
	expected := dw * dh * info.bpp
	if len(dst) != expected || len(src) != w*h*info.bpp {
		return false
	}

	if info.kind == kindPacked1010102 {
		downsamplePacked1010102(src, w, h, dst, dw, dh, info.isFloat)
		return true
	}

	for y := 0; y < dh; y++ {
		for x := 0; x < dw; x++ {
			dstTexel := dst[(y*dw+x)*info.bpp : (y*dw+x+1)*info.bpp]
			for c := 0; c < info.channels; c++ {
				s00 := texelChannel(src, w, 2*x, 2*y, c, info)
				s10 := texelChannel(src, w, 2*x+1, 2*y, c, info)
				s01 := texelChannel(src, w, 2*x, 2*y+1, c, info)
				s11 := texelChannel(src, w, 2*x+1, 2*y+1, c, info)
				writeChannel(dstTexel, c, info, averageChannel(s00, s10, s01, s11, info))
			}
		}
	}
	return true
}

// channelValue carries either an integer or float sample, decoded
// uniformly so averageChannel need not branch per element kind beyond
// the integer/float split.
type channelValue struct {
	i uint64
	f float64
}

func texelChannel(buf []byte, stride, x, y, channel int, info formatInfo) channelValue {
	off := (y*stride+x)*info.bpp + channel*info.elemSize
	switch info.kind {
	case kindUint8:
		return channelValue{i: uint64(buf[off])}
	case kindUint16:
		return channelValue{i: uint64(buf[off]) | uint64(buf[off+1])<<8}
	case kindFloat16:
		bits16 := uint16(buf[off]) | uint16(buf[off+1])<<8
		return channelValue{f: float16ToFloat32(bits16)}
	case kindFloat32:
		bits32 := uint32(buf[off]) | uint32(buf[off+1])<<8 | uint32(buf[off+2])<<16 | uint32(buf[off+3])<<24
		return channelValue{f: float64(math.Float32frombits(bits32))}
	}
	return channelValue{}
}

func writeChannel(dstTexel []byte, channel int, info formatInfo, v channelValue) {
	off := channel * info.elemSize
	switch info.kind {
	case kindUint8:
		dstTexel[off] = byte(v.i)
	case kindUint16:
		dstTexel[off] = byte(v.i)
		dstTexel[off+1] = byte(v.i >> 8)
	case kindFloat16:
		bits16 := float32ToFloat16(float32(v.f))
		dstTexel[off] = byte(bits16)
		dstTexel[off+1] = byte(bits16 >> 8)
	case kindFloat32:
		bits32 := math.Float32bits(float32(v.f))
		dstTexel[off] = byte(bits32)
		dstTexel[off+1] = byte(bits32 >> 8)
		dstTexel[off+2] = byte(bits32 >> 16)
		dstTexel[off+3] = byte(bits32 >> 24)
	}
}

func averageChannel(a, b, c, d channelValue, info formatInfo) channelValue {
	if info.isFloat {
		return channelValue{f: (a.f + b.f + c.f + d.f) * 0.25}
	}
	return channelValue{i: (a.i + b.i + c.i + d.i) / 4}
}

// downsamplePacked1010102 unpacks each 32-bit packed texel into
// 10-bit R/G/B and 2-bit A, averages.A, and repacks
// with the {0x3FF,0x3FF,0x3FF,0x3} bitmask.
func downsamplePacked1010102(src []byte, w, h int, dst []byte, dw, dh int, isFloat bool) {
	unpack := func(word uint32) (r, g, b, a uint32) {
		return word & 0x3FF, (word >> 10) & 0x3FF, (word >> 20) & 0x3FF, (word >> 30) & 0x3
	}
	pack := func(r, g, b, a uint32) uint32 {
		return (r & 0x3FF) | ((g & 0x3FF) << 10) | ((b & 0x3FF) << 20) | ((a & 0x3) << 30)
	}
	readWord := func(x, y int) uint32 {
		off := (y*w + x) * 4
		return uint32(src[off]) | uint32(src[off+1])<<8 | uint32(src[off+2])<<16 | uint32(src[off+3])<<24
	}

	for y := 0; y < dh; y++ {
		for x := 0; x < dw; x++ {
			w00 := readWord(2*x, 2*y)
			w10 := readWord(2*x+1, 2*y)
			w01 := readWord(2*x, 2*y+1)
			w11 := readWord(2*x+1, 2*y+1)
			r0, g0, b0, a0 := unpack(w00)
			r1, g1, b1, a1 := unpack(w10)
			r2, g2, b2, a2 := unpack(w01)
			r3, g3, b3, a3 := unpack(w11)
			var r, g, b, a uint32
			if isFloat {
				r = uint32((float64(r0) + float64(r1) + float64(r2) + float64(r3)) * 0.25)
				g = uint32((float64(g0) + float64(g1) + float64(g2) + float64(g3)) * 0.25)
				b = uint32((float64(b0) + float64(b1) + float64(b2) + float64(b3)) * 0.25)
				a = uint32((float64(a0) + float64(a1) + float64(a2) + float64(a3)) * 0.25)
			} else {
				r = (r0 + r1 + r2 + r3) / 4
				g = (g0 + g1 + g2 + g3) / 4
				b = (b0 + b1 + b2 + b3) / 4
				a = (a0 + a1 + a2 + a3) / 4
			}
			word := pack(r, g, b, a)
			off := (y*dw + x) * 4
			dst[off] = byte(word)
			dst[off+1] = byte(word >> 8)
			dst[off+2] = byte(word >> 16)
			dst[off+3] = byte(word >> 24)
		}
	}
}

// GenerateChain2D copies level 0 verbatim, then iteratively halves
// using the previous destination level as the next source, advancing
// dst by each produced level's size. The chain depth is always the full
// LevelCount2D(w,h). Fails if src is not exactly one w×h level, or if
// dst is not exactly BufferSize2D(w,h,LevelCount2D(w,h),format) bytes.
func GenerateChain2D(src []byte, w, h int, format Format, dst []byte) bool {
	if !Valid(format) || src == nil || dst == nil {
		return false
	}
	levels := LevelCount2D(w, h)
	total := BufferSize2D(w, h, levels, format)
	if total == 0 || len(dst) != total || len(src) != w*h*BPP(format) {
		return false
	}

	bpp := BPP(format)
	level0Size := w * h * bpp
	copy(dst[:level0Size], src[:level0Size])

	mipSrc := dst[:level0Size]
	dstOff := level0Size
	lw, lh := w, h
	for i := uint16(1); i < levels; i++ {
		if lw <= 1 || lh <= 1 {
			return false
		}
		nw, nh := lw/2, lh/2
		size := nw * nh * bpp
		mipDst := dst[dstOff : dstOff+size]
		if !GenerateNext2D(mipSrc, lw, lh, format, mipDst) {
			return false
		}
		mipSrc = mipDst
		dstOff += size
		lw, lh = nw, nh
	}
	return true
}

// GenerateNext2DAlloc and GenerateChain2DAlloc are allocating variants
// that size and return the destination buffer themselves; the caller
// owns it.
func GenerateNext2DAlloc(src []byte, w, h int, format Format) ([]byte, int) {
	if w <= 1 || h <= 1 || !Valid(format) {
		return nil, 0
	}
	size := (w / 2) * (h / 2) * BPP(format)
	dst := make([]byte, size)
	if !GenerateNext2D(src, w, h, format, dst) {
		return nil, 0
	}
	return dst, size
}

func GenerateChain2DAlloc(src []byte, w, h int, format Format) ([]byte, int) {
	levels := LevelCount2D(w, h)
	size := BufferSize2D(w, h, levels, format)
	if size == 0 {
		return nil, 0
	}
	dst := make([]byte, size)
	if !GenerateChain2D(src, w, h, format, dst) {
		return nil, 0
	}
	return dst, size
}
