package atlas

import "testing"

func TestPackSmoke(t *testing.T) {
	p := New()
	size, placements, ok := p.Pack([]Rect{
		{Index: 0, W: 20, H: 20},
		{Index: 1, W: 8, H: 8},
		{Index: 2, W: 8, H: 8},
	})
	if !ok {
		t.Fatal("expected a fit")
	}
	if size != 32 {
		t.Fatalf("size = %d, want 32", size)
	}
	byIndex := make(map[int]Placement, len(placements))
	for _, pl := range placements {
		byIndex[pl.Index] = pl
	}
	first := byIndex[0]
	if first.X1 != 1 || first.Y1 != 1 {
		t.Fatalf("glyph 0 placed at (%d,%d), want (1,1)", first.X1, first.Y1)
	}
	for _, pl := range placements {
		if pl.X1 < 0 || pl.Y1 < 0 || pl.X2 > size || pl.Y2 > size {
			t.Fatalf("placement %+v escapes [0,%d]^2", pl, size)
		}
	}
}

func TestPackGrowth(t *testing.T) {
	p := New()
	rects := make([]Rect, 4)
	for i := range rects {
		rects[i] = Rect{Index: i, W: 30, H: 30}
	}
	size, placements, ok := p.Pack(rects)
	if !ok {
		t.Fatal("expected a fit")
	}
	if size != 64 {
		t.Fatalf("size = %d, want 64 (size 32 cannot fit more than one padded 30x30 glyph)", size)
	}
	if len(placements) != 4 {
		t.Fatalf("got %d placements, want 4", len(placements))
	}
}

func TestPackDisjoint(t *testing.T) {
	p := New()
	rects := []Rect{
		{Index: 0, W: 15, H: 9}, {Index: 1, W: 8, H: 22}, {Index: 2, W: 12, H: 12},
		{Index: 3, W: 5, H: 5}, {Index: 4, W: 18, H: 3}, {Index: 5, W: 7, H: 7},
	}
	size, placements, ok := p.Pack(rects)
	if !ok {
		t.Fatal("expected a fit")
	}
	// Rectangles expanded by padding must be pairwise disjoint.
	expanded := make([][4]int, len(placements))
	for i, pl := range placements {
		expanded[i] = [4]int{pl.X1 - p.Padding, pl.Y1 - p.Padding, pl.X2 + p.Padding, pl.Y2 + p.Padding}
	}
	for i := 0; i < len(expanded); i++ {
		for j := i + 1; j < len(expanded); j++ {
			a, b := expanded[i], expanded[j]
			overlapX := a[0] < b[2] && b[0] < a[2]
			overlapY := a[1] < b[3] && b[1] < a[3]
			if overlapX && overlapY {
				t.Fatalf("placements %d and %d overlap: %v vs %v", i, j, a, b)
			}
		}
	}
	// Expanded rectangles must also lie inside [0,size]².
	for i, e := range expanded {
		if e[0] < 0 || e[1] < 0 || e[2] > size || e[3] > size {
			t.Fatalf("placement %d expanded %v lies outside [0,%d]", i, e, size)
		}
	}
}

func TestPackTooLarge(t *testing.T) {
	p := New()
	_, _, ok := p.Pack([]Rect{{Index: 0, W: 5000, H: 5000}})
	if ok {
		t.Fatal("expected failure for a glyph larger than MaxSize")
	}
}

func TestUV16Clamp(t *testing.T) {
	if got := UV16(64, 64); got != 65535 {
		t.Fatalf("UV16(64,64) = %d, want 65535 (clamped)", got)
	}
	if got := UV16(0, 64); got != 0 {
		t.Fatalf("UV16(0,64) = %d, want 0", got)
	}
	if got := UV16(32, 64); got != 32768 {
		t.Fatalf("UV16(32,64) = %d, want 32768", got)
	}
}
