package rng

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(t *testing.T, s interface{ Byte() (byte, error) }, n int) []byte {
	t.Helper()
	out := make([]byte, n)
	for i := range out {
		b, err := s.Byte()
		require.NoError(t, err)
		out[i] = b
	}
	return out
}

func TestReaderSource(t *testing.T) {
	src := New(bytes.NewReader([]byte{1, 2, 3}))
	assert.Equal(t, []byte{1, 2, 3}, drain(t, src, 3))

	_, err := src.Byte()
	assert.ErrorIs(t, err, io.EOF, "an exhausted reader surfaces its error")
}

func TestSystemSource(t *testing.T) {
	src := System()
	_, err := src.Byte()
	assert.NoError(t, err)
}

func TestChaCha20Deterministic(t *testing.T) {
	key := bytes.Repeat([]byte{0x42}, 32)
	nonce := bytes.Repeat([]byte{0x01}, 12)

	a, err := NewChaCha20(key, nonce)
	require.NoError(t, err)
	b, err := NewChaCha20(key, nonce)
	require.NoError(t, err)
	assert.Equal(t, drain(t, a, 64), drain(t, b, 64), "same seed, same stream")

	other, err := NewChaCha20(key, bytes.Repeat([]byte{0x02}, 12))
	require.NoError(t, err)
	c, err := NewChaCha20(key, nonce)
	require.NoError(t, err)
	assert.NotEqual(t, drain(t, c, 64), drain(t, other, 64), "a different nonce diverges")
}

func TestChaCha20BadSeed(t *testing.T) {
	_, err := NewChaCha20(make([]byte, 16), make([]byte, 12))
	assert.Error(t, err, "key must be 32 bytes")
	_, err = NewChaCha20(make([]byte, 32), make([]byte, 8))
	assert.Error(t, err, "nonce must be 12 bytes")
}

func TestSeed(t *testing.T) {
	seed, err := Seed(32)
	require.NoError(t, err)
	assert.Len(t, seed, 32)

	// a fresh seed keys a ChaCha20 source directly
	src, err := NewChaCha20(seed, make([]byte, 12))
	require.NoError(t, err)
	_, err = src.Byte()
	assert.NoError(t, err)

	again, err := Seed(32)
	require.NoError(t, err)
	assert.NotEqual(t, seed, again)

	_, err = Seed(15)
	assert.Error(t, err)
	_, err = Seed(65)
	assert.Error(t, err)
}
