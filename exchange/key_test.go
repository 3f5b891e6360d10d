package exchange

import (
	"math/rand/v2"
	"strings"
	"testing"
)

func TestGenerateKey(t *testing.T) {
	r := rand.New(rand.NewPCG(42, 7))
	key := GenerateKey(r, 256)

	if len(key) != 256 {
		t.Fatalf("len = %d, want 256", len(key))
	}
	for i := 0; i < len(key); i++ {
		if strings.IndexByte(KeyAlphabet, key[i]) < 0 {
			t.Fatalf("byte %q at %d is outside the alphabet", key[i], i)
		}
	}

	again := GenerateKey(rand.New(rand.NewPCG(42, 7)), 256)
	if again != key {
		t.Error("same seed produced a different key")
	}
}

func TestGenerateKeyCoversAlphabet(t *testing.T) {
	key := GenerateKey(rand.New(rand.NewPCG(3, 3)), 20000)
	seen := make(map[byte]int)
	for i := 0; i < len(key); i++ {
		seen[key[i]]++
	}
	if len(seen) != len(KeyAlphabet) {
		t.Errorf("saw %d distinct characters, want %d", len(seen), len(KeyAlphabet))
	}
}

func TestPartial(t *testing.T) {
	key := strings.Repeat("a", 32) + strings.Repeat("m", 192) + strings.Repeat("z", 32)
	got := Partial(key, 32)
	want := strings.Repeat("a", 32) + "..." + strings.Repeat("z", 32)
	if got != want {
		t.Errorf("Partial() = %q, want %q", got, want)
	}

	if Partial("short", 32) != "short" {
		t.Error("short keys should be returned unchanged")
	}
}

func TestMask(t *testing.T) {
	if got := Mask(3); got != "• • •" {
		t.Errorf("Mask(3) = %q", got)
	}
}
