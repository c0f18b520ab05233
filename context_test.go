package buildtool

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writeTestPNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{200, 100, 50, 255})
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

// TestRunEndToEnd exercises the whole driver over one texture, one
// object, and one shader file and checks every generated output lands
// on disk's list of build outputs.
func TestRunEndToEnd(t *testing.T) {
	assets := t.TempDir()
	out := t.TempDir()

	writeTestPNG(t, filepath.Join(assets, "brick.png"), 4, 4)
	if err := os.WriteFile(filepath.Join(assets, "brick.texture"), []byte(`{"path":"brick.png"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(assets, "a.object"), []byte(`OBJECT(A) PARENT(DEFAULT) PUBLIC int x;`), 0o644); err != nil {
		t.Fatal(err)
	}
	shaderSrc := `
vertex_input VSInput {
	position_in float3 pos;
	float2 uv;
}
vertex_output VSOutput {
	position_out float4 clipPos;
	float2 uv;
}
void vertex_main(VSInput v, VSOutput o) {
	o.uv = v.uv;
}
`
	if err := os.WriteFile(filepath.Join(assets, "tri.shader"), []byte(shaderSrc), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx := NewContext(Options{AssetsRoot: assets, OutputRoot: out})
	if err := ctx.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if ctx.ExitCode() != 0 {
		t.Fatalf("ExitCode() = %d, want 0 (sink: %v)", ctx.ExitCode(), ctx.Sink.First())
	}

	for _, name := range []string{
		"assets.cache",
		"assets.bin",
		"textures.generated.hpp",
		"textures.generated.cpp",
		"objects.system.generated.hpp",
		"objects.generated.hpp",
		"objects.generated.cpp",
		"objects.generated.intellisense",
		"shaders.generated.hlsl",
		"shaders.generated.layout.hpp",
		"shaders.generated.reflection.hpp",
	} {
		if fi, err := os.Stat(filepath.Join(out, name)); err != nil || fi.Size() == 0 {
			t.Errorf("expected non-empty %s, stat err=%v", name, err)
		}
	}
}

// TestRunReportsFirstError covers the "first error wins" driver
// contract: a malformed .object file must stop the
// build before the shader pass (which runs after objects) can run.
func TestRunReportsFirstError(t *testing.T) {
	assets := t.TempDir()
	out := t.TempDir()

	if err := os.WriteFile(filepath.Join(assets, "bad.object"), []byte(`OBJECT(A) PARENT(NOSUCHTHING)`), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx := NewContext(Options{AssetsRoot: assets, OutputRoot: out})
	if err := ctx.Run(); err == nil {
		t.Fatal("expected Run to fail on an unresolvable PARENT")
	}
	if ctx.ExitCode() != 1 {
		t.Fatalf("ExitCode() = %d, want 1", ctx.ExitCode())
	}
	if _, err := os.Stat(filepath.Join(out, "shaders.generated.hlsl")); err == nil {
		t.Fatal("shader pass must not run after the object compiler failed")
	}
}
