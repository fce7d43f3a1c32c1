// Package invitecode generates the 6-character book invite codes.
// The generator is injected into services so tests can supply deterministic
// sequences instead of relying on process-wide randomness.
package invitecode

import (
	"crypto/rand"
	"io"
)

const (
	// Charset is the invite-code alphabet: uppercase letters and digits.
	Charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// Length is the fixed invite-code length.
	Length = 6
)

// Generator produces invite codes matching ^[A-Z0-9]{6}$.
type Generator interface {
	Generate() string
}

type randomGenerator struct {
	src io.Reader
}

// New returns a Generator backed by crypto/rand.
func New() Generator {
	return &randomGenerator{src: rand.Reader}
}

// NewWithSource returns a Generator drawing bytes from src.
// Intended for tests that need reproducible codes.
func NewWithSource(src io.Reader) Generator {
	return &randomGenerator{src: src}
}

// Generate draws each character uniformly from Charset.
// Bytes >= 252 are discarded: 256 is not a multiple of 36, so taking them
// modulo 36 would skew the distribution.
func (g *randomGenerator) Generate() string {
	const limit = byte(len(Charset) * (256 / len(Charset))) // 252

	code := make([]byte, Length)
	buf := make([]byte, 1)
	for i := 0; i < Length; {
		if _, err := io.ReadFull(g.src, buf); err != nil {
			// An injected source that runs dry pads with the first charset
			// character; crypto/rand itself does not fail.
			code[i] = Charset[0]
			i++
			continue
		}
		if buf[0] >= limit {
			continue
		}
		code[i] = Charset[int(buf[0])%len(Charset)]
		i++
	}
	return string(code)
}
