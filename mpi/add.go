package mpi

import "math/bits"

// AddAbs computes x = |a| + |b|.
func (x *Int) AddAbs(a, b *Int) error {
	if x == b {
		a, b = b, a
	}
	if x != a {
		if err := x.Copy(a); err != nil {
			return err
		}
	}
	x.s = 1

	n := b.used()
	if err := x.Grow(n + 1); err != nil {
		return err
	}
	var c uint
	for i := 0; i < n; i++ {
		x.limbs[i], c = bits.Add(x.limbs[i], b.limbs[i], c)
	}
	for i := n; c != 0; i++ {
		if i >= len(x.limbs) {
			if err := x.Grow(i + 1); err != nil {
				return err
			}
		}
		x.limbs[i], c = bits.Add(x.limbs[i], 0, c)
	}
	return nil
}

// subHlp computes d -= s over the limbs of s, propagating the borrow into
// the higher limbs of d. The caller guarantees the difference fits.
func subHlp(d, s []uint) {
	var c uint
	for i := 0; i < len(s); i++ {
		d[i], c = bits.Sub(d[i], s[i], c)
	}
	for i := len(s); c != 0 && i < len(d); i++ {
		d[i], c = bits.Sub(d[i], 0, c)
	}
}

// SubAbs computes x = |a| - |b|. It fails with ErrNegativeValue when
// |a| < |b|; callers wanting signed subtraction use Sub.
func (x *Int) SubAbs(a, b *Int) error {
	if a.CmpAbs(b) < 0 {
		return ErrNegativeValue
	}
	var tb Int
	if x == b {
		if err := tb.Copy(b); err != nil {
			return err
		}
		b = &tb
	}
	if x != a {
		if err := x.Copy(a); err != nil {
			return err
		}
	}
	x.s = 1
	subHlp(x.limbs, b.limbs[:b.used()])
	return nil
}

// Add computes the signed sum x = a + b.
func (x *Int) Add(a, b *Int) error {
	s := a.sign()
	if a.sign()*b.sign() < 0 {
		if a.CmpAbs(b) >= 0 {
			if err := x.SubAbs(a, b); err != nil {
				return err
			}
			x.s = s
		} else {
			if err := x.SubAbs(b, a); err != nil {
				return err
			}
			x.s = -s
		}
	} else {
		if err := x.AddAbs(a, b); err != nil {
			return err
		}
		x.s = s
	}
	x.normalize()
	return nil
}

// Sub computes the signed difference x = a - b.
func (x *Int) Sub(a, b *Int) error {
	s := a.sign()
	if a.sign()*b.sign() > 0 {
		if a.CmpAbs(b) >= 0 {
			if err := x.SubAbs(a, b); err != nil {
				return err
			}
			x.s = s
		} else {
			if err := x.SubAbs(b, a); err != nil {
				return err
			}
			x.s = -s
		}
	} else {
		if err := x.AddAbs(a, b); err != nil {
			return err
		}
		x.s = s
	}
	x.normalize()
	return nil
}

// AddInt computes x = a + b for a machine integer b.
func (x *Int) AddInt(a *Int, b int) error {
	var t Int
	setIntFixed(&t, b)
	return x.Add(a, &t)
}

// SubInt computes x = a - b for a machine integer b.
func (x *Int) SubInt(a *Int, b int) error {
	var t Int
	setIntFixed(&t, b)
	return x.Sub(a, &t)
}

// setIntFixed loads z into t without heap growth; t must be fresh.
func setIntFixed(t *Int, z int) {
	t.s = 1
	u := uint(z)
	if z < 0 {
		t.s = -1
		u = -u
	}
	t.limbs = []uint{u}
}
