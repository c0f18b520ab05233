package hashutil

import "testing"

func TestXCRC32Deterministic(t *testing.T) {
	a := XCRC32([]byte("hello world"))
	b := XCRC32([]byte("hello world"))
	if a != b {
		t.Fatalf("XCRC32 not deterministic: %d != %d", a, b)
	}
	if a != XCRC32String("hello world") {
		t.Fatalf("XCRC32 and XCRC32String disagree")
	}
}

func TestMix64OrderSensitive(t *testing.T) {
	ab := Mix64(1, 2)
	ba := Mix64(2, 1)
	if ab == ba {
		t.Fatalf("Mix64 should be order-sensitive, got equal results %d", ab)
	}
}

func TestMix64Deterministic(t *testing.T) {
	if Mix64(42, 7) != Mix64(42, 7) {
		t.Fatal("Mix64 not deterministic")
	}
}

func TestHashString64NonZeroForEmpty(t *testing.T) {
	// Even an empty string should produce a stable, reproducible hash.
	h1 := HashString64("")
	h2 := HashString64("")
	if h1 != h2 {
		t.Fatal("HashString64 not deterministic for empty string")
	}
	if h1 == 0 {
		t.Fatal("HashString64 returned zero for empty string")
	}
}
