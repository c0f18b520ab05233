// Copyright 2026 The mantaforge Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package pixelformat enumerates the engine's color formats and
// implements the mip-chain engine: level counting, chain sizing, and
// deterministic box-filter downsampling for ten-and-more pixel
// layouts. It is the leaf component the texture pipeline builds on.
package pixelformat

// Format is one of the engine's fixed set of GPU color formats. NONE
// is the zero value and carries bpp 0; any operation here that
// requires a real format rejects NONE.
type Format int

const (
	NONE Format = iota
	R8_UNORM
	R8_UINT
	R8G8_UNORM
	R8G8_UINT
	R8G8B8A8_UNORM
	R8G8B8A8_UINT
	R8G8B8A8_SRGB
	R16_FLOAT
	R16G16_FLOAT
	R16G16B16A16_FLOAT
	R16G16B16A16_UINT
	R32_FLOAT
	R32G32B32A32_FLOAT
	R10G10B10A2_UNORM
	R10G10B10A2_FLOAT

	formatCount
)

// elemKind is the per-channel storage kind used to pick the correct
// box-filter arithmetic (integer division by 4 vs float *0.25, plus
// the packed 10/10/10/2 special case).
type elemKind int

const (
	kindUint8 elemKind = iota
	kindFloat16
	kindUint16
	kindFloat32
	kindPacked1010102
)

type formatInfo struct {
	bpp      int
	channels int
	elemSize int
	kind     elemKind
	isFloat  bool
}

var table = [formatCount]formatInfo{
	NONE:               {bpp: 0},
	R8_UNORM:           {bpp: 1, channels: 1, elemSize: 1, kind: kindUint8},
	R8_UINT:            {bpp: 1, channels: 1, elemSize: 1, kind: kindUint8},
	R8G8_UNORM:         {bpp: 2, channels: 2, elemSize: 1, kind: kindUint8},
	R8G8_UINT:          {bpp: 2, channels: 2, elemSize: 1, kind: kindUint8},
	R8G8B8A8_UNORM:     {bpp: 4, channels: 4, elemSize: 1, kind: kindUint8},
	R8G8B8A8_UINT:      {bpp: 4, channels: 4, elemSize: 1, kind: kindUint8},
	R8G8B8A8_SRGB:      {bpp: 4, channels: 4, elemSize: 1, kind: kindUint8},
	R16_FLOAT:          {bpp: 2, channels: 1, elemSize: 2, kind: kindFloat16, isFloat: true},
	R16G16_FLOAT:       {bpp: 4, channels: 2, elemSize: 2, kind: kindFloat16, isFloat: true},
	R16G16B16A16_FLOAT: {bpp: 8, channels: 4, elemSize: 2, kind: kindFloat16, isFloat: true},
	R16G16B16A16_UINT:  {bpp: 8, channels: 4, elemSize: 2, kind: kindUint16},
	R32_FLOAT:          {bpp: 4, channels: 1, elemSize: 4, kind: kindFloat32, isFloat: true},
	R32G32B32A32_FLOAT: {bpp: 16, channels: 4, elemSize: 4, kind: kindFloat32, isFloat: true},
	R10G10B10A2_UNORM:  {bpp: 4, channels: 4, kind: kindPacked1010102},
	R10G10B10A2_FLOAT:  {bpp: 4, channels: 4, kind: kindPacked1010102, isFloat: true},
}

// Valid reports whether f is a recognized, non-NONE format.
func Valid(f Format) bool {
	return f > NONE && f < formatCount
}

// BPP returns the bytes-per-pixel of f, looked up from the fixed
// constant table. BPP(NONE) is 0.
func BPP(f Format) int {
	if f < NONE || f >= formatCount {
		return 0
	}
	return table[f].bpp
}

// IsFloat reports whether f's channels are floating point, selecting
// the *0.25 averaging path in the mip downsampler rather than integer
// division by 4.
func IsFloat(f Format) bool {
	if !Valid(f) {
		return false
	}
	return table[f].isFloat
}
