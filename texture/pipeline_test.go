package texture

import (
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mantaforge/buildtool/assetcache"
	"github.com/mantaforge/buildtool/buffer"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{100, 100, 100, 100})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func writeDefinition(t *testing.T, path string, def Definition) {
	t.Helper()
	data, err := json.Marshal(def)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestPipelineStandaloneWithMips(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "brick.png"), 4, 4)
	writeDefinition(t, filepath.Join(dir, "brick.texture"), Definition{Path: "brick.png", Mips: true})

	p := &Pipeline{Cache: assetcache.New(), Blob: buffer.New(0), AssetsRoot: dir}
	textures, err := p.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(textures) != 1 {
		t.Fatalf("got %d textures, want 1", len(textures))
	}
	tex := textures[0]
	if tex.Name != "brick" {
		t.Fatalf("name = %q", tex.Name)
	}
	if tex.AtlasTexture {
		t.Fatal("expected a standalone texture")
	}
	if !tex.Validate() {
		t.Fatal("Validate() failed for a standalone texture")
	}
	if tex.Levels != 3 {
		t.Fatalf("levels = %d, want 3 for a 4x4 source", tex.Levels)
	}
	if tex.Size != 84 {
		t.Fatalf("size = %d, want 84 (4*(16+4+1))", tex.Size)
	}
}

func TestPipelineAtlasGrouping(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "a.png"), 30, 30)
	writePNG(t, filepath.Join(dir, "b.png"), 20, 20)
	writeDefinition(t, filepath.Join(dir, "a.texture"), Definition{Path: "a.png", Atlas: "ui"})
	writeDefinition(t, filepath.Join(dir, "b.texture"), Definition{Path: "b.png", Atlas: "ui"})

	p := &Pipeline{Cache: assetcache.New(), Blob: buffer.New(0), AssetsRoot: dir}
	textures, err := p.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(textures) != 1 {
		t.Fatalf("got %d textures, want 1 shared atlas", len(textures))
	}
	tex := textures[0]
	if !tex.AtlasTexture {
		t.Fatal("expected an atlas texture")
	}
	if len(tex.Glyphs) != 2 {
		t.Fatalf("got %d glyphs, want 2", len(tex.Glyphs))
	}
	if !tex.Validate() {
		t.Fatal("Validate() failed for an atlas texture")
	}
}

func TestGenerateHeaderDeterministic(t *testing.T) {
	textures := []*Texture{{Name: "a", Width: 4, Height: 4, Levels: 1}, {Name: "b", Width: 8, Height: 8, Levels: 1}}
	h1 := GenerateHeader(textures)
	h2 := GenerateHeader(textures)
	if h1 != h2 {
		t.Fatal("GenerateHeader is not deterministic")
	}
	for _, want := range []string{"enum class Texture", "a,", "b,", "TEXTURE_COUNT"} {
		if !strings.Contains(h1, want) {
			t.Fatalf("header missing %q:\n%s", want, h1)
		}
	}
}
