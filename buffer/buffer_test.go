package buffer

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteAppendsAndReturnsOffset(t *testing.T) {
	b := New(0)
	off1 := b.Write([]byte("hello"))
	off2 := b.Write([]byte("world"))
	if off1 != 0 || off2 != 5 {
		t.Fatalf("want offsets 0,5 got %d,%d", off1, off2)
	}
	if string(b.Bytes()) != "helloworld" {
		t.Fatalf("unexpected contents %q", b.Bytes())
	}
}

func TestWriteNilFails(t *testing.T) {
	b := New(0)
	if off := b.Write(nil); off != FailedOffset {
		t.Fatalf("want FailedOffset, got %d", off)
	}
}

func TestWriteFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.bin")
	if err := os.WriteFile(path, []byte("0123456789"), 0o644); err != nil {
		t.Fatal(err)
	}

	b := New(0)
	off := b.WriteFromFile(path, 3, 4)
	if off != 0 {
		t.Fatalf("want offset 0, got %d", off)
	}
	if string(b.Bytes()) != "3456" {
		t.Fatalf("want %q got %q", "3456", b.Bytes())
	}
}

func TestWriteFromFileMissing(t *testing.T) {
	b := New(0)
	if off := b.WriteFromFile("/nonexistent/path", 0, 4); off != FailedOffset {
		t.Fatalf("want FailedOffset, got %d", off)
	}
}

func TestReset(t *testing.T) {
	b := New(0)
	b.Write([]byte("data"))
	b.Reset()
	if b.Len() != 0 {
		t.Fatalf("want empty after reset, got len %d", b.Len())
	}
}
