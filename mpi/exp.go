package mpi

// montInit computes mm = -N^-1 mod 2^biL for odd N, by Newton iteration
// on the low limb.
func montInit(n *Int) uint {
	m0 := n.limb(0)
	x := m0
	x += ((m0 + 2) & 4) << 1
	for i := biL; i >= 8; i /= 2 {
		x *= 2 - m0*x
	}
	return -x
}

// montMul computes a = a * b * R^-1 mod N in place, where R = 2^(biL*n)
// for n the limb count of N. a must hold n+1 limbs and t at least 2*(n+1);
// a and b must already be reduced below N.
func montMul(a, b, n *Int, mm uint, t *Int) {
	nn := n.used()
	m := b.used()
	if m > nn {
		m = nn
	}
	wipe(t.limbs)

	d := t.limbs
	b0 := b.limb(0)
	for i := 0; i < nn; i++ {
		// d = (d + u0*B + u1*N) / 2^biL
		u0 := a.limb(i)
		u1 := (d[0] + u0*b0) * mm
		mulAddHlp(d, b.limbs[:m], u0)
		mulAddHlp(d, n.limbs[:nn], u1)
		d = d[1:]
	}
	copy(a.limbs[:nn+1], d[:nn+1])
	a.s = 1

	if a.CmpAbs(n) >= 0 {
		subHlp(a.limbs[:nn+1], n.limbs[:nn])
	} else {
		// dummy subtraction to balance the branch
		subHlp(t.limbs[:nn+1], a.limbs[:nn])
	}
}

// montRed converts a out of Montgomery form: a = a * R^-1 mod N.
func montRed(a, n *Int, mm uint, t *Int) {
	var one Int
	var limb [1]uint
	limb[0] = 1
	one.s = 1
	one.limbs = limb[:]
	montMul(a, &one, n, mm, t)
}

// window thresholds: larger exponents afford a bigger precomputed table.
func windowSize(ebits int) int {
	switch {
	case ebits > 671:
		return 6
	case ebits > 239:
		return 5
	case ebits > 79:
		return 4
	case ebits > 23:
		return 3
	default:
		return 1
	}
}

// ExpMod computes x = a^e mod n using sliding-window exponentiation with
// Montgomery multiplication. n must be positive and odd, and e must not
// be negative (ErrBadInputData otherwise).
//
// rr may carry the Montgomery constant R^2 mod n between calls against
// the same modulus: pass a zero Int the first time and the same value on
// later calls to skip the setup division. Pass nil to recompute each time.
//
// The window pattern of multiplications depends on the exponent's bits;
// this matches the historical behavior and is not constant-time.
func (x *Int) ExpMod(a, e, n, rr *Int) error {
	if n.Sign() <= 0 || !n.odd() {
		return ErrBadInputData
	}
	if e.Sign() < 0 {
		return ErrBadInputData
	}

	// keep stable views of operands x may alias
	e0, n0 := e, n
	if x == e {
		e0 = new(Int)
		if err := e0.Copy(e); err != nil {
			return err
		}
	}
	if x == n {
		n0 = new(Int)
		if err := n0.Copy(n); err != nil {
			return err
		}
	}

	mm := montInit(n0)
	nn := n0.used()
	wsize := windowSize(e0.BitLen())

	var t, ratio Int
	if err := t.Grow(2 * (nn + 1)); err != nil {
		return err
	}

	// R^2 mod N, possibly cached by the caller
	if rr != nil && rr != x && rr.used() != 0 {
		if err := ratio.Copy(rr); err != nil {
			return err
		}
	} else {
		if err := ratio.SetInt(1); err != nil {
			return err
		}
		if err := ratio.ShiftL(nn * 2 * biL); err != nil {
			return err
		}
		if err := ratio.Mod(&ratio, n0); err != nil {
			return err
		}
		if rr != nil && rr != x {
			if err := rr.Copy(&ratio); err != nil {
				return err
			}
		}
	}

	// w[1] = A mod N, in Montgomery form
	var w [1 << 6]Int
	w1 := &w[1]
	if a.Sign() < 0 || a.Cmp(n0) >= 0 {
		if err := w1.Mod(a, n0); err != nil {
			return err
		}
	} else {
		if err := w1.Copy(a); err != nil {
			return err
		}
	}
	if err := w1.Grow(nn + 1); err != nil {
		return err
	}
	montMul(w1, &ratio, n0, mm, &t)

	// x = R mod N, the Montgomery form of 1
	if err := x.Copy(&ratio); err != nil {
		return err
	}
	if err := x.Grow(nn + 1); err != nil {
		return err
	}
	montRed(x, n0, mm, &t)

	if wsize > 1 {
		// precompute the odd powers w[2^(wsize-1)] .. w[2^wsize - 1]
		j := 1 << (wsize - 1)
		if err := w[j].Copy(w1); err != nil {
			return err
		}
		if err := w[j].Grow(nn + 1); err != nil {
			return err
		}
		for i := 0; i < wsize-1; i++ {
			montMul(&w[j], &w[j], n0, mm, &t)
		}
		for i := j + 1; i < 1<<wsize; i++ {
			if err := w[i].Copy(&w[i-1]); err != nil {
				return err
			}
			if err := w[i].Grow(nn + 1); err != nil {
				return err
			}
			montMul(&w[i], w1, n0, mm, &t)
		}
	}

	nblimbs := e0.used()
	bufsize := 0
	nbits := 0
	wbits := uint(0)
	state := 0 // 0: skipping leading zeros, 1: squaring, 2: filling a window

	for {
		if bufsize == 0 {
			if nblimbs == 0 {
				break
			}
			nblimbs--
			bufsize = biL
		}
		bufsize--
		ei := (e0.limbs[nblimbs] >> bufsize) & 1

		if ei == 0 && state == 0 {
			continue
		}
		if ei == 0 && state == 1 {
			montMul(x, x, n0, mm, &t)
			continue
		}

		state = 2
		nbits++
		wbits |= ei << (wsize - nbits)

		if nbits == wsize {
			for i := 0; i < wsize; i++ {
				montMul(x, x, n0, mm, &t)
			}
			montMul(x, &w[wbits], n0, mm, &t)
			state = 1
			nbits = 0
			wbits = 0
		}
	}

	// flush a partially filled last window
	for i := 0; i < nbits; i++ {
		montMul(x, x, n0, mm, &t)
		wbits <<= 1
		if wbits&(1<<wsize) != 0 {
			montMul(x, w1, n0, mm, &t)
		}
	}

	montRed(x, n0, mm, &t)
	x.s = 1
	x.normalize()
	return nil
}
