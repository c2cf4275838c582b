// Package mpi implements multi-precision integer arithmetic for RSA and
// Diffie-Hellman: sign-magnitude integers of unbounded (but capped) size,
// with addition, subtraction, multiplication, division, modular
// exponentiation, GCD, modular inversion and probabilistic prime handling.
package mpi

import (
	"errors"
	"math/bits"
)

const (
	// MaxLimbs is the maximum number of limbs a value may grow to.
	MaxLimbs = 10000

	biL = bits.UintSize // bits per limb
	ciL = biL / 8       // bytes per limb
)

var (
	// ErrMallocFailed reports that a value would grow past MaxLimbs.
	ErrMallocFailed = errors.New("mpi: memory allocation failed")
	// ErrBufferTooSmall reports an output buffer shorter than required;
	// the accompanying size return carries the required length.
	ErrBufferTooSmall = errors.New("mpi: buffer too small")
	// ErrNegativeValue reports an unsigned subtraction with minuend
	// smaller than subtrahend, or a negative modulus.
	ErrNegativeValue = errors.New("mpi: negative value")
	// ErrDivisionByZero reports division or reduction by zero.
	ErrDivisionByZero = errors.New("mpi: division by zero")
	// ErrNotAcceptable reports a missing modular inverse or a composite
	// primality candidate.
	ErrNotAcceptable = errors.New("mpi: value not acceptable")
	// ErrBadInputData reports an invalid radix, digit, modulus or bit size.
	ErrBadInputData = errors.New("mpi: bad input data")
)

// Int is a signed multi-precision integer in sign-magnitude form. The
// magnitude is stored least-significant limb first; limbs above the most
// significant non-zero one are spare capacity and always hold zero. The
// zero value is ready to use and represents 0.
//
// An Int owns its limb storage exclusively: Copy duplicates the magnitude
// and Swap exchanges storage explicitly. Values must not be mutated
// concurrently, but distinct values are independent.
type Int struct {
	s     int    // +1 or -1; zero keeps +1
	limbs []uint // magnitude, little-endian limb order
}

// sign returns the stored sign, treating the zero value's 0 as +1.
func (x *Int) sign() int {
	if x.s < 0 {
		return -1
	}
	return 1
}

// used returns the number of significant limbs.
func (x *Int) used() int {
	for i := len(x.limbs); i > 0; i-- {
		if x.limbs[i-1] != 0 {
			return i
		}
	}
	return 0
}

// limb returns limb i of the magnitude, or 0 above the stored length.
func (x *Int) limb(i int) uint {
	if i < 0 || i >= len(x.limbs) {
		return 0
	}
	return x.limbs[i]
}

// odd reports whether the magnitude is odd.
func (x *Int) odd() bool {
	return len(x.limbs) > 0 && x.limbs[0]&1 == 1
}

// normalize restores the zero-is-positive invariant after a signed operation.
func (x *Int) normalize() {
	if x.used() == 0 {
		x.s = 1
	}
}

// Sign returns -1, 0 or +1 depending on the sign of x.
func (x *Int) Sign() int {
	if x.used() == 0 {
		return 0
	}
	return x.sign()
}

// Grow enlarges x to hold at least nblimbs limbs, preserving its value.
// Growth past MaxLimbs fails with ErrMallocFailed and leaves x untouched.
func (x *Int) Grow(nblimbs int) error {
	if nblimbs > MaxLimbs {
		return ErrMallocFailed
	}
	if len(x.limbs) >= nblimbs {
		return nil
	}
	p := make([]uint, nblimbs)
	copy(p, x.limbs)
	wipe(x.limbs)
	x.limbs = p
	return nil
}

// Copy sets x to a deep copy of y.
func (x *Int) Copy(y *Int) error {
	if x == y {
		return nil
	}
	n := y.used()
	if err := x.Grow(n); err != nil {
		return err
	}
	x.s = y.sign()
	copy(x.limbs[:n], y.limbs[:n])
	for i := n; i < len(x.limbs); i++ {
		x.limbs[i] = 0
	}
	x.normalize()
	return nil
}

// Swap exchanges the values of x and y without copying limb storage.
func (x *Int) Swap(y *Int) {
	x.s, y.s = y.sign(), x.sign()
	x.limbs, y.limbs = y.limbs, x.limbs
}

// SetInt sets x to the machine integer z.
func (x *Int) SetInt(z int) error {
	if err := x.Grow(1); err != nil {
		return err
	}
	for i := range x.limbs {
		x.limbs[i] = 0
	}
	x.s = 1
	u := uint(z)
	if z < 0 {
		x.s = -1
		u = -u
	}
	x.limbs[0] = u
	x.normalize()
	return nil
}

// Clear zeroes the limb storage and resets x to 0. Use it to scrub values
// that held key material before letting them go out of scope.
func (x *Int) Clear() {
	wipe(x.limbs)
	x.limbs = nil
	x.s = 1
}

// Lsb returns the index of the least significant set bit, or 0 if x is zero.
func (x *Int) Lsb() int {
	for i, l := range x.limbs {
		if l != 0 {
			return i*biL + bits.TrailingZeros(l)
		}
	}
	return 0
}

// BitLen returns the position just past the most significant set bit,
// i.e. the magnitude's length in bits. It is 0 for zero.
func (x *Int) BitLen() int {
	n := x.used()
	if n == 0 {
		return 0
	}
	return (n-1)*biL + bits.Len(x.limbs[n-1])
}

// Bit returns bit i of the magnitude.
func (x *Int) Bit(i int) uint {
	return (x.limb(i/biL) >> (i % biL)) & 1
}

// Size returns the minimal number of bytes needed to hold the magnitude.
func (x *Int) Size() int {
	return (x.BitLen() + 7) / 8
}

func wipe(p []uint) {
	for i := range p {
		p[i] = 0
	}
}
