// Copyright 2026 The mantaforge Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package atlas implements a guillotine bin-packer: glyphs are
// sorted largest-first and placed into the smallest free rectangle
// that fits them, growing the atlas by powers of two when nothing
// fits.
package atlas

import "sort"

// MinSize and MaxSize bound the atlas's power-of-two growth.
const (
	MinSize = 32
	MaxSize = 4096

	// DefaultPadding is the one-texel padding applied on each side of
	// a placed rectangle unless the caller configures otherwise.
	DefaultPadding = 1
)

// Rect is a placeable glyph-sized rectangle: only its dimensions
// matter for packing. Index lets callers recover which input glyph a
// placement corresponds to after the largest-first sort reorders them.
type Rect struct {
	Index int
	W, H  int
}

// Placement is the packer's result for one glyph: its unpadded atlas
// rectangle. The caller derives UV coordinates from this and the
// final atlas Size.
type Placement struct {
	Index  int
	X1, Y1 int
	X2, Y2 int
}

// space is a free guillotine rectangle available for placement.
type space struct {
	x, y, w, h int
}

// Packer implements the guillotine bin-packer. Pack is the only entry
// point; a Packer is not reused between independent glyph sets —
// identical input must produce byte-identical output, and each call
// starts from the same fixed size-32 seed space.
type Packer struct {
	Padding int
}

// New returns a Packer using the default one-texel padding.
func New() *Packer { return &Packer{Padding: DefaultPadding} }

// Pack places every rect and returns the chosen atlas size (a power of
// two in [MinSize,MaxSize]) and one Placement per input rect, in the
// same order as rects. Returns ok=false if even the maximum atlas size
// cannot fit every rect.
//
// Algorithm:
//  1. sort glyphs by w+h descending;
//  2. seed spaces with the whole size×size square;
//  3. for each glyph, scan spaces from the end (smallest considered
//     first) and take the first that fits with padding on both sides;
//  4. if nothing fits, double size and restart from (2);
//  5. on fit, remove the chosen space (swap-remove) and push up to two
//     guillotine children, larger-area first.
func (p *Packer) Pack(rects []Rect) (size int, placements []Placement, ok bool) {
	pad := p.Padding
	if pad < 0 {
		pad = 0
	}

	sorted := make([]Rect, len(rects))
	copy(sorted, rects)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].W+sorted[i].H > sorted[j].W+sorted[j].H
	})

	for size = MinSize; size <= MaxSize; size *= 2 {
		if placed, result := p.tryPack(sorted, size, pad); placed {
			return size, result, true
		}
	}
	return 0, nil, false
}

// tryPack attempts to place every rect into a single size×size atlas.
func (p *Packer) tryPack(sorted []Rect, size, pad int) (bool, []Placement) {
	spaces := []space{{x: 0, y: 0, w: size, h: size}}
	out := make([]Placement, len(sorted))

	for i, r := range sorted {
		gw, gh := r.W+2*pad, r.H+2*pad

		idx := -1
		for s := len(spaces) - 1; s >= 0; s-- {
			if spaces[s].w >= gw && spaces[s].h >= gh {
				idx = s
				break
			}
		}
		if idx == -1 {
			return false, nil
		}

		chosen := spaces[idx]
		spaces[idx] = spaces[len(spaces)-1]
		spaces = spaces[:len(spaces)-1]

		x1, y1 := chosen.x+pad, chosen.y+pad
		out[i] = Placement{Index: r.Index, X1: x1, Y1: y1, X2: x1 + r.W, Y2: y1 + r.H}

		hSplit := space{x: chosen.x, y: chosen.y + gh, w: chosen.w, h: chosen.h - gh}
		vSplit := space{x: chosen.x + gw, y: chosen.y, w: chosen.w - gw, h: gh}
		spaces = pushChildren(spaces, hSplit, vSplit)
	}
	return true, out
}

// pushChildren inserts the non-empty guillotine children into spaces,
// ordering the larger-area one first so it is considered last on
// subsequent scans (scan proceeds from the end, smallest-first).
func pushChildren(spaces []space, a, b space) []space {
	if area(a) == 0 && area(b) == 0 {
		return spaces
	}
	if area(a) == 0 {
		return append(spaces, b)
	}
	if area(b) == 0 {
		return append(spaces, a)
	}
	if area(a) >= area(b) {
		return append(spaces, a, b)
	}
	return append(spaces, b, a)
}

func area(s space) int { return s.w * s.h }

// UV16 converts an atlas-space coordinate into u16 fixed point
// (65535 == 1.0): floor(coord/size * 65536), saturating at 65535
// rather than wrapping when coord == size. A wrapped UV of 0 would
// sample the atlas origin instead of this glyph's own edge texel.
func UV16(coord, size int) uint16 {
	if size <= 0 {
		return 0
	}
	v := (coord * 65536) / size
	if v > 65535 {
		return 65535
	}
	if v < 0 {
		return 0
	}
	return uint16(v)
}
