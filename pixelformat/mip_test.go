// Copyright 2026 The mantaforge Authors
// SPDX-License-Identifier: BSD-3-Clause

package pixelformat

import "testing"

func TestLevelCount2D(t *testing.T) {
	cases := []struct {
		w, h int
		want uint16
	}{
		{1, 1, 1},
		{1, 8, 1},
		{8, 1, 1},
		{4, 4, 3},
		{64, 64, 7},
		{5, 5, 3},
	}
	for _, c := range cases {
		if got := LevelCount2D(c.w, c.h); got != c.want {
			t.Errorf("LevelCount2D(%d,%d) = %d, want %d", c.w, c.h, got, c.want)
		}
	}
}

func TestLevelValidate2D(t *testing.T) {
	if !LevelValidate2D(4, 4, 3) {
		t.Fatal("3 levels should be valid for a 4x4 base")
	}
	if LevelValidate2D(4, 4, 4) {
		t.Fatal("4 levels should exceed LevelCount2D(4,4)=3")
	}
	if LevelValidate2D(4, 4, 0) {
		t.Fatal("0 levels should be invalid")
	}
	if LevelValidate2D(1<<20, 1<<20, MIPDepthMax+1) {
		t.Fatal("levels beyond MIPDepthMax should be invalid regardless of size")
	}
}

// TestMipChain4x4RGBA8UINT: a 4x4
// R8G8B8A8_UINT image filled with (100,100,100,100) mip-chains down
// to a 3-level, 84-byte chain whose non-level-0 levels are the same
// uniform color (the box average of four identical texels).
func TestMipChain4x4RGBA8UINT(t *testing.T) {
	const w, h = 4, 4
	src := make([]byte, w*h*4)
	for i := range src {
		src[i] = 100
	}

	if got := BufferSize2D(w, h, 3, R8G8B8A8_UINT); got != 84 {
		t.Fatalf("BufferSize2D(4,4,3,RGBA8_UINT) = %d, want 84", got)
	}

	dst, size := GenerateChain2DAlloc(src, w, h, R8G8B8A8_UINT)
	if dst == nil {
		t.Fatal("GenerateChain2DAlloc failed")
	}
	if size != 84 {
		t.Fatalf("chain size = %d, want 84", size)
	}

	levels := Levels(w, h, 3, R8G8B8A8_UINT)
	level0 := dst[levels[0].Offset : levels[0].Offset+levels[0].W*levels[0].H*4]
	for i, b := range level0 {
		if b != 100 {
			t.Fatalf("level 0 byte %d = %d, want 100", i, b)
		}
	}

	level1 := dst[levels[1].Offset : levels[1].Offset+levels[1].W*levels[1].H*4]
	if levels[1].W != 2 || levels[1].H != 2 {
		t.Fatalf("level 1 dims = %dx%d, want 2x2", levels[1].W, levels[1].H)
	}
	for i, b := range level1 {
		if b != 100 {
			t.Fatalf("level 1 byte %d = %d, want 100 (average of identical values)", i, b)
		}
	}

	level2 := dst[levels[2].Offset : levels[2].Offset+levels[2].W*levels[2].H*4]
	if levels[2].W != 1 || levels[2].H != 1 {
		t.Fatalf("level 2 dims = %dx%d, want 1x1", levels[2].W, levels[2].H)
	}
	for i, b := range level2 {
		if b != 100 {
			t.Fatalf("level 2 byte %d = %d, want 100", i, b)
		}
	}
}

func TestGenerateNext2DAveragesDistinctValues(t *testing.T) {
	// 2x2 source, one R8_UNORM texel per pixel: 0, 4, 8, 12 -> average 6.
	src := []byte{0, 4, 8, 12}
	dst := make([]byte, 1)
	if !GenerateNext2D(src, 2, 2, R8_UNORM, dst) {
		t.Fatal("GenerateNext2D failed")
	}
	if dst[0] != 6 {
		t.Fatalf("averaged texel = %d, want 6", dst[0])
	}
}

func TestGenerateNext2DRejectsInvalidInputs(t *testing.T) {
	if GenerateNext2D(nil, 4, 4, R8_UNORM, make([]byte, 4)) {
		t.Fatal("nil src should fail")
	}
	if GenerateNext2D(make([]byte, 16), 4, 4, R8_UNORM, nil) {
		t.Fatal("nil dst should fail")
	}
	if GenerateNext2D(make([]byte, 4), 1, 1, R8_UNORM, make([]byte, 1)) {
		t.Fatal("w<=1 && h<=1 should fail")
	}
	if GenerateNext2D(make([]byte, 16), 4, 4, NONE, make([]byte, 4)) {
		t.Fatal("NONE format should fail")
	}
	if GenerateNext2D(make([]byte, 16), 4, 4, R8_UNORM, make([]byte, 999)) {
		t.Fatal("mismatched dst size should fail")
	}
}

func TestBufferSize2DRejectsInvalid(t *testing.T) {
	if got := BufferSize2D(4, 4, 3, NONE); got != 0 {
		t.Fatalf("BufferSize2D with NONE format = %d, want 0", got)
	}
	if got := BufferSize2D(4, 4, 99, R8_UNORM); got != 0 {
		t.Fatalf("BufferSize2D with over-deep levels = %d, want 0", got)
	}
}

func TestGenerateChain2DFailsWhenLevelsExceedDims(t *testing.T) {
	src := make([]byte, 4)
	dst := make([]byte, 100)
	if GenerateChain2D(src, 1, 1, R8_UNORM, dst) {
		t.Fatal("a 1x1 base cannot produce more than one level")
	}
}
