package exchange

import (
	"math/rand/v2"
	"strings"
)

// KeyAlphabet is the character set of generated display keys.
const KeyAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// ReceiveKeyLength is the length of the receiving key.
const ReceiveKeyLength = 64

// GenerateKey draws n characters uniformly from KeyAlphabet. The result is a
// display string only and must not be used as key material.
func GenerateKey(r *rand.Rand, n int) string {
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(KeyAlphabet[r.IntN(len(KeyAlphabet))])
	}
	return b.String()
}

// Partial abbreviates a key to its first and last n characters.
func Partial(key string, n int) string {
	if len(key) <= 2*n {
		return key
	}
	return key[:n] + "..." + key[len(key)-n:]
}

// Mask returns the placeholder shown while the key is hidden.
func Mask(dots int) string {
	return strings.TrimSpace(strings.Repeat("• ", dots))
}
