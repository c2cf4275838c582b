// Package rng provides random byte sources for the mpi engine: the
// system entropy pool, arbitrary readers, and a deterministic ChaCha20
// stream for reproducible generation.
package rng

import (
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20"
)

// ReaderSource draws single bytes from an io.Reader.
type ReaderSource struct {
	r io.Reader
}

func (s *ReaderSource) Byte() (byte, error) {
	var b [1]byte
	if _, err := io.ReadFull(s.r, b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

// New returns a source that draws bytes from r.
func New(r io.Reader) *ReaderSource {
	return &ReaderSource{r: r}
}

// System returns a source backed by the operating system's entropy pool.
func System() *ReaderSource {
	return &ReaderSource{r: rand.Reader}
}

// ChaCha20Source is a deterministic random source: the ChaCha20 keystream
// for a fixed key and nonce. Two sources built from the same seed yield
// the same byte sequence, which makes prime-generation tests repeatable.
type ChaCha20Source struct {
	c *chacha20.Cipher
}

// NewChaCha20 returns a deterministic source seeded with the given
// 32-byte key and 12-byte nonce. Seed(chacha20.KeySize) produces a
// suitable fresh key.
func NewChaCha20(key, nonce []byte) (*ChaCha20Source, error) {
	c, err := chacha20.NewUnauthenticatedCipher(key, nonce)
	if err != nil {
		return nil, fmt.Errorf("rng: bad chacha20 seed: %w", err)
	}
	return &ChaCha20Source{c: c}, nil
}

func (s *ChaCha20Source) Byte() (byte, error) {
	var b [1]byte
	s.c.XORKeyStream(b[:], b[:])
	return b[0], nil
}

// Seed generates a random seed of the given size in bytes, typically
// used to key a ChaCha20 source.
func Seed(size int) ([]byte, error) {
	if size < 16 || size > 64 {
		return nil, fmt.Errorf("seed size must be between 16 and 64 bytes, but got %d", size)
	}
	seed := make([]byte, size)
	if _, err := rand.Read(seed); err != nil {
		return nil, fmt.Errorf("failed to generate random seed: %w", err)
	}
	return seed, nil
}
