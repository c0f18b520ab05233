package assetcache

import (
	"path/filepath"
	"testing"
)

type textureRecord struct {
	Width, Height, Channels, Levels int
	Offset, Size                    uint64
}

func TestFetchStoreRoundTrip(t *testing.T) {
	c := New()
	want := textureRecord{Width: 4, Height: 4, Channels: 4, Levels: 3, Offset: 0, Size: 84}

	if err := Store(c, Key(0xABCD), 111, want); err != nil {
		t.Fatalf("Store: %v", err)
	}

	var got textureRecord
	if !Fetch(c, Key(0xABCD), 111, &got) {
		t.Fatal("expected a hit")
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestFetchMissOnFingerprintChange(t *testing.T) {
	c := New()
	rec := textureRecord{Width: 1, Height: 1, Channels: 1, Levels: 1}
	if err := Store(c, Key(1), 100, rec); err != nil {
		t.Fatal(err)
	}

	var out textureRecord
	if Fetch(c, Key(1), 200, &out) {
		t.Fatal("expected a miss when the fingerprint changed")
	}
	if Fetch(c, Key(2), 100, &out) {
		t.Fatal("expected a miss for an absent key")
	}
}

func TestReadWriteRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "assets.cache")

	c := New()
	if err := Store(c, Key(7), 42, textureRecord{Width: 2, Height: 2, Channels: 4, Levels: 2, Size: 32}); err != nil {
		t.Fatal(err)
	}
	if err := c.Write(path); err != nil {
		t.Fatalf("Write: %v", err)
	}

	c2 := New()
	if err := c2.Read(path); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if c2.Dirty() {
		t.Fatal("expected a freshly-read cache to be clean")
	}

	var got textureRecord
	if !Fetch(c2, Key(7), 42, &got) {
		t.Fatal("expected the persisted entry to survive the round trip")
	}
}

func TestReadMissingFileIsDirty(t *testing.T) {
	c := New()
	if err := c.Read(filepath.Join(t.TempDir(), "missing.cache")); err != nil {
		t.Fatalf("Read of a missing file should not error: %v", err)
	}
	if !c.Dirty() {
		t.Fatal("expected Dirty() after reading a nonexistent cache file")
	}
}
