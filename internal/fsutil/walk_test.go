package fsutil

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestDirectoryIterateNonRecursive(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.texture"), "{}")
	writeFile(t, filepath.Join(dir, "b.object"), "OBJECT(B)")
	writeFile(t, filepath.Join(dir, "sub", "c.texture"), "{}")

	got, err := DirectoryIterate(dir, "texture", false)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Path != "a.texture" {
		t.Fatalf("expected only a.texture, got %+v", got)
	}
}

func TestDirectoryIterateRecursive(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.texture"), "{}")
	writeFile(t, filepath.Join(dir, "sub", "c.texture"), "{}")

	got, err := DirectoryIterate(dir, ".texture", true)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 files, got %d: %+v", len(got), got)
	}
	if got[0].Path != "a.texture" || got[1].Path != "sub/c.texture" {
		t.Fatalf("unexpected ordering: %+v", got)
	}
}

func TestDirectoryIterateDeterministicOrder(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"z.object", "a.object", "m.object"} {
		writeFile(t, filepath.Join(dir, n), "OBJECT(X)")
	}
	got, err := DirectoryIterate(dir, "object", false)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"a.object", "m.object", "z.object"}
	for i, w := range want {
		if got[i].Path != w {
			t.Fatalf("index %d: want %s, got %s", i, w, got[i].Path)
		}
	}
}
