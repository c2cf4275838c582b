// Package sha4 exposes the library's 512-bit hash primitive: SHA-512 and
// its truncated SHA-384 variant, selected by a mode flag, with one-shot,
// incremental and keyed-MAC forms. The mpi engine does not depend on it;
// it sits beside the arithmetic at the library boundary.
package sha4

import (
	"crypto/hmac"
	"crypto/sha512"
	"hash"
)

// Size is the output length of the SHA-512 variant in bytes. SHA-384
// digests occupy the first Size384 bytes.
const (
	Size    = sha512.Size
	Size384 = sha512.Size384
)

// New returns an incremental hash context: SHA-384 when is384 is set,
// SHA-512 otherwise.
func New(is384 bool) hash.Hash {
	if is384 {
		return sha512.New384()
	}
	return sha512.New()
}

// Sum computes the one-shot digest of input.
func Sum(input []byte, is384 bool) []byte {
	h := New(is384)
	h.Write(input)
	return h.Sum(nil)
}

// NewHMAC returns an incremental keyed-MAC context built by the standard
// inner/outer padding over the selected variant.
func NewHMAC(key []byte, is384 bool) hash.Hash {
	return hmac.New(func() hash.Hash { return New(is384) }, key)
}

// HMAC computes the one-shot keyed MAC of input under key.
func HMAC(key, input []byte, is384 bool) []byte {
	h := NewHMAC(key, is384)
	h.Write(input)
	return h.Sum(nil)
}
