package mpi

// Gcd computes g = gcd(|a|, |b|) by the binary GCD algorithm: common
// factors of two come off with shifts, then the Euclidean subtract-and-
// halve loop runs on the odd parts. The result is never negative, and
// gcd(a, 0) is |a|.
func (g *Int) Gcd(a, b *Int) error {
	var ta, tb Int
	if err := ta.Copy(a); err != nil {
		return err
	}
	if err := tb.Copy(b); err != nil {
		return err
	}
	ta.s, tb.s = 1, 1

	// a zero operand would drain the loop into gcd 0
	if tb.used() == 0 {
		return g.Copy(&ta)
	}
	if ta.used() == 0 {
		return g.Copy(&tb)
	}

	lz := ta.Lsb()
	if l := tb.Lsb(); l < lz {
		lz = l
	}
	if err := ta.ShiftR(lz); err != nil {
		return err
	}
	if err := tb.ShiftR(lz); err != nil {
		return err
	}

	for ta.CmpInt(0) != 0 {
		if err := ta.ShiftR(ta.Lsb()); err != nil {
			return err
		}
		if err := tb.ShiftR(tb.Lsb()); err != nil {
			return err
		}
		if ta.Cmp(&tb) >= 0 {
			if err := ta.SubAbs(&ta, &tb); err != nil {
				return err
			}
			if err := ta.ShiftR(1); err != nil {
				return err
			}
		} else {
			if err := tb.SubAbs(&tb, &ta); err != nil {
				return err
			}
			if err := tb.ShiftR(1); err != nil {
				return err
			}
		}
	}

	if err := tb.ShiftL(lz); err != nil {
		return err
	}
	return g.Copy(&tb)
}

// InvMod computes x = a^-1 mod n, the value with a*x == 1 (mod n),
// normalized into [0, n). n must be greater than 1 (ErrBadInputData);
// when gcd(a, n) != 1 no inverse exists and the call fails with
// ErrNotAcceptable.
//
// The computation is the extended binary Euclidean algorithm, tracking
// Bezout coefficients alongside the GCD reduction.
func (x *Int) InvMod(a, n *Int) error {
	if n.CmpInt(1) <= 0 {
		return ErrBadInputData
	}

	var g Int
	if err := g.Gcd(a, n); err != nil {
		return err
	}
	if g.CmpInt(1) != 0 {
		return ErrNotAcceptable
	}

	var ta, tu, tb, tv, u1, u2, v1, v2 Int
	if err := ta.Mod(a, n); err != nil {
		return err
	}
	if err := tu.Copy(&ta); err != nil {
		return err
	}
	if err := tb.Copy(n); err != nil {
		return err
	}
	if err := tv.Copy(n); err != nil {
		return err
	}
	if err := u1.SetInt(1); err != nil {
		return err
	}
	if err := u2.SetInt(0); err != nil {
		return err
	}
	if err := v1.SetInt(0); err != nil {
		return err
	}
	if err := v2.SetInt(1); err != nil {
		return err
	}

	for {
		for !tu.odd() && tu.used() > 0 {
			if err := tu.ShiftR(1); err != nil {
				return err
			}
			if u1.odd() || u2.odd() {
				if err := u1.Add(&u1, &tb); err != nil {
					return err
				}
				if err := u2.Sub(&u2, &ta); err != nil {
					return err
				}
			}
			if err := u1.ShiftR(1); err != nil {
				return err
			}
			if err := u2.ShiftR(1); err != nil {
				return err
			}
		}

		for !tv.odd() && tv.used() > 0 {
			if err := tv.ShiftR(1); err != nil {
				return err
			}
			if v1.odd() || v2.odd() {
				if err := v1.Add(&v1, &tb); err != nil {
					return err
				}
				if err := v2.Sub(&v2, &ta); err != nil {
					return err
				}
			}
			if err := v1.ShiftR(1); err != nil {
				return err
			}
			if err := v2.ShiftR(1); err != nil {
				return err
			}
		}

		if tu.Cmp(&tv) >= 0 {
			if err := tu.Sub(&tu, &tv); err != nil {
				return err
			}
			if err := u1.Sub(&u1, &v1); err != nil {
				return err
			}
			if err := u2.Sub(&u2, &v2); err != nil {
				return err
			}
		} else {
			if err := tv.Sub(&tv, &tu); err != nil {
				return err
			}
			if err := v1.Sub(&v1, &u1); err != nil {
				return err
			}
			if err := v2.Sub(&v2, &u2); err != nil {
				return err
			}
		}

		if tu.CmpInt(0) == 0 {
			break
		}
	}

	for v1.CmpInt(0) < 0 {
		if err := v1.Add(&v1, n); err != nil {
			return err
		}
	}
	for v1.Cmp(n) >= 0 {
		if err := v1.Sub(&v1, n); err != nil {
			return err
		}
	}

	return x.Copy(&v1)
}
