package mpi

import "math/bits"

// mulAddHlp computes d += s * b, propagating the final carry into the
// limbs of d above s. d must be long enough to absorb the carry.
func mulAddHlp(d, s []uint, b uint) {
	var c uint
	for i := 0; i < len(s); i++ {
		hi, lo := bits.Mul(s[i], b)
		var cc uint
		lo, cc = bits.Add(lo, c, 0)
		hi += cc
		lo, cc = bits.Add(lo, d[i], 0)
		hi += cc
		d[i] = lo
		c = hi
	}
	for i := len(s); c != 0; i++ {
		d[i], c = bits.Add(d[i], c, 0)
	}
}

// mulLimb computes x = |a| * b for a single unsigned limb b.
func (x *Int) mulLimb(a *Int, b uint) error {
	n := a.used()
	var ta Int
	if x == a {
		if err := ta.Copy(a); err != nil {
			return err
		}
		a = &ta
	}
	if err := x.Grow(n + 1); err != nil {
		return err
	}
	wipe(x.limbs)
	x.s = 1
	mulAddHlp(x.limbs, a.limbs[:n], b)
	return nil
}

// Mul computes the baseline (schoolbook) product x = a * b.
func (x *Int) Mul(a, b *Int) error {
	var ta, tb Int
	if x == a {
		if err := ta.Copy(a); err != nil {
			return err
		}
		a = &ta
	}
	if x == b {
		if err := tb.Copy(b); err != nil {
			return err
		}
		b = &tb
	}

	i, j := a.used(), b.used()
	if err := x.Grow(i + j); err != nil {
		return err
	}
	wipe(x.limbs)
	for k := 0; k < j; k++ {
		mulAddHlp(x.limbs[k:], a.limbs[:i], b.limbs[k])
	}
	x.s = a.sign() * b.sign()
	x.normalize()
	return nil
}

// MulInt computes x = a * b for a machine integer b.
func (x *Int) MulInt(a *Int, b int) error {
	var t Int
	setIntFixed(&t, b)
	return x.Mul(a, &t)
}

// Div computes q and r such that a = q*b + r, with |r| < |b| and the
// truncating sign convention: q rounds toward zero and r takes the sign
// of the dividend. Either q or r may be nil when unwanted. Division by
// zero fails with ErrDivisionByZero.
//
// The divisor is normalized so its top limb has its high bit set, each
// quotient limb is estimated from the two leading dividend limbs against
// the leading divisor limb and corrected downward, and the remainder is
// denormalized at the end.
func Div(q, r *Int, a, b *Int) error {
	if b.used() == 0 {
		return ErrDivisionByZero
	}

	// capture now: q or r may alias a or b
	qs := a.sign() * b.sign()
	rs := a.sign()

	if a.CmpAbs(b) < 0 {
		// remainder first: q may alias a
		if r != nil {
			if err := r.Copy(a); err != nil {
				return err
			}
		}
		if q != nil {
			if err := q.SetInt(0); err != nil {
				return err
			}
		}
		return nil
	}

	var x, y, z, t1, t2 Int
	if err := x.Copy(a); err != nil {
		return err
	}
	if err := y.Copy(b); err != nil {
		return err
	}
	x.s, y.s = 1, 1

	if err := z.Grow(x.used() + 2); err != nil {
		return err
	}
	if err := t1.Grow(2); err != nil {
		return err
	}
	if err := t2.Grow(3); err != nil {
		return err
	}

	// normalize so the divisor's top limb has its high bit set
	k := y.BitLen() % biL
	if k < biL-1 {
		k = biL - 1 - k
		if err := x.ShiftL(k); err != nil {
			return err
		}
		if err := y.ShiftL(k); err != nil {
			return err
		}
	} else {
		k = 0
	}

	n := x.used() - 1
	t := y.used() - 1
	if err := y.ShiftL(biL * (n - t)); err != nil {
		return err
	}
	for x.Cmp(&y) >= 0 {
		z.limbs[n-t]++
		if err := x.Sub(&x, &y); err != nil {
			return err
		}
	}
	if err := y.ShiftR(biL * (n - t)); err != nil {
		return err
	}

	for i := n; i > t; i-- {
		var qhat uint
		if x.limb(i) >= y.limb(t) {
			qhat = ^uint(0)
		} else {
			qhat, _ = bits.Div(x.limb(i), x.limb(i-1), y.limb(t))
		}

		// correct the estimate against the top three dividend limbs
		qhat++
		for {
			qhat--
			wipe(t1.limbs)
			t1.limbs[0] = y.limb(t - 1)
			t1.limbs[1] = y.limb(t)
			if err := t1.mulLimb(&t1, qhat); err != nil {
				return err
			}
			wipe(t2.limbs)
			t2.limbs[0] = x.limb(i - 2)
			t2.limbs[1] = x.limb(i - 1)
			t2.limbs[2] = x.limb(i)
			if t1.Cmp(&t2) <= 0 {
				break
			}
		}
		z.limbs[i-t-1] = qhat

		if err := t1.mulLimb(&y, qhat); err != nil {
			return err
		}
		if err := t1.ShiftL(biL * (i - t - 1)); err != nil {
			return err
		}
		if err := x.Sub(&x, &t1); err != nil {
			return err
		}

		if x.CmpInt(0) < 0 {
			if err := t1.Copy(&y); err != nil {
				return err
			}
			if err := t1.ShiftL(biL * (i - t - 1)); err != nil {
				return err
			}
			if err := x.Add(&x, &t1); err != nil {
				return err
			}
			z.limbs[i-t-1]--
		}
	}

	if q != nil {
		if err := q.Copy(&z); err != nil {
			return err
		}
		q.s = qs
		q.normalize()
	}
	if r != nil {
		if err := x.ShiftR(k); err != nil {
			return err
		}
		if err := r.Copy(&x); err != nil {
			return err
		}
		r.s = rs
		r.normalize()
	}
	return nil
}

// DivInt computes q and r such that a = q*b + r for a machine integer
// divisor, with the same conventions as Div.
func DivInt(q, r *Int, a *Int, b int) error {
	var t Int
	setIntFixed(&t, b)
	return Div(q, r, a, &t)
}

// Mod computes r = a mod b as a true (non-negative) modulo: the result
// lies in [0, |b|). It is distinct from Div's truncated remainder for
// negative dividends. A negative modulus fails with ErrNegativeValue.
func (r *Int) Mod(a, b *Int) error {
	if b.Sign() < 0 {
		return ErrNegativeValue
	}
	if r == b {
		var tb Int
		if err := tb.Copy(b); err != nil {
			return err
		}
		b = &tb
	}
	if err := Div(nil, r, a, b); err != nil {
		return err
	}
	for r.CmpInt(0) < 0 {
		if err := r.Add(r, b); err != nil {
			return err
		}
	}
	for r.Cmp(b) >= 0 {
		if err := r.Sub(r, b); err != nil {
			return err
		}
	}
	return nil
}

// ModInt computes a mod b for a machine integer modulus, returning the
// non-negative residue in [0, b).
func ModInt(a *Int, b int) (int, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	if b < 0 {
		return 0, ErrNegativeValue
	}
	if b == 1 {
		return 0, nil
	}
	ub := uint(b)
	var y uint
	for i := a.used(); i > 0; i-- {
		y = bits.Rem(y, a.limbs[i-1], ub)
	}
	if a.Sign() < 0 && y != 0 {
		y = ub - y
	}
	return int(y), nil
}
