package mpi

// smallPrimes holds the odd primes below 1000, used for cheap trial
// division before Miller-Rabin.
var smallPrimes = [...]int{
	3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61, 67,
	71, 73, 79, 83, 89, 97, 101, 103, 107, 109, 113, 127, 131, 137, 139,
	149, 151, 157, 163, 167, 173, 179, 181, 191, 193, 197, 199, 211, 223,
	227, 229, 233, 239, 241, 251, 257, 263, 269, 271, 277, 281, 283, 293,
	307, 311, 313, 317, 331, 337, 347, 349, 353, 359, 367, 373, 379, 383,
	389, 397, 401, 409, 419, 421, 431, 433, 439, 443, 449, 457, 461, 463,
	467, 479, 487, 491, 499, 503, 509, 521, 523, 541, 547, 557, 563, 569,
	571, 577, 587, 593, 599, 601, 607, 613, 617, 619, 631, 641, 643, 647,
	653, 659, 661, 673, 677, 683, 691, 701, 709, 719, 727, 733, 739, 743,
	751, 757, 761, 769, 773, 787, 797, 809, 811, 821, 823, 827, 829, 839,
	853, 857, 859, 863, 877, 881, 883, 887, 907, 911, 919, 929, 937, 941,
	947, 953, 967, 971, 977, 983, 991, 997,
}

// mrRounds picks the Miller-Rabin round count for a candidate of the
// given bit length; larger candidates need fewer rounds for the same
// error bound.
func mrRounds(nbits int) int {
	switch {
	case nbits >= 1300:
		return 2
	case nbits >= 850:
		return 3
	case nbits >= 650:
		return 4
	case nbits >= 350:
		return 8
	case nbits >= 250:
		return 12
	case nbits >= 150:
		return 18
	default:
		return 27
	}
}

// IsPrime tests |x| for primality: trial division against the small
// prime table, then Miller-Rabin with bases drawn from rng. It returns
// nil when x is (probably) prime and ErrNotAcceptable when it is
// composite. Values below 2, and even values above 2, are composite.
func (x *Int) IsPrime(rng Source) error {
	var xx Int
	if err := xx.Copy(x); err != nil {
		return err
	}
	xx.s = 1

	if xx.CmpInt(0) == 0 || xx.CmpInt(1) == 0 {
		return ErrNotAcceptable
	}
	if xx.CmpInt(2) == 0 {
		return nil
	}
	if !xx.odd() {
		return ErrNotAcceptable
	}

	for _, p := range smallPrimes {
		if xx.CmpInt(p) == 0 {
			return nil
		}
		r, err := ModInt(&xx, p)
		if err != nil {
			return err
		}
		if r == 0 {
			return ErrNotAcceptable
		}
	}

	return xx.millerRabin(rng)
}

// millerRabin runs the witness rounds on the odd value xx > 1, writing
// xx - 1 as r * 2^s and checking each random base's squaring chain.
func (xx *Int) millerRabin(rng Source) error {
	var w, r, t, a, rr Int
	if err := w.SubInt(xx, 1); err != nil {
		return err
	}
	s := w.Lsb()
	if err := r.Copy(&w); err != nil {
		return err
	}
	if err := r.ShiftR(s); err != nil {
		return err
	}

	rounds := mrRounds(xx.BitLen())
	for i := 0; i < rounds; i++ {
		// draw a base in (1, |x|-1)
		if err := a.FillRandom(xx.used()*ciL, rng); err != nil {
			return err
		}
		if a.Cmp(&w) >= 0 {
			j := a.BitLen() - w.BitLen()
			if err := a.ShiftR(j + 1); err != nil {
				return err
			}
		}
		a.limbs[0] |= 3

		// a = a^r mod x
		if err := a.ExpMod(&a, &r, xx, &rr); err != nil {
			return err
		}
		if a.Cmp(&w) == 0 || a.CmpInt(1) == 0 {
			continue
		}

		// square up to s-1 times looking for -1
		j := 1
		for j < s && a.Cmp(&w) != 0 {
			if err := t.Mul(&a, &a); err != nil {
				return err
			}
			if err := a.Mod(&t, xx); err != nil {
				return err
			}
			if a.CmpInt(1) == 0 {
				break
			}
			j++
		}

		// composite if the chain never hit -1, or hit 1 early
		if a.Cmp(&w) != 0 || a.CmpInt(1) == 0 {
			return ErrNotAcceptable
		}
	}
	return nil
}

// GenPrime sets x to a random prime of exactly nbits bits. The top bit is
// forced to pin the bit length and the low bits force an odd candidate;
// composites are stepped over incrementally, and the candidate is redrawn
// whenever the walk would leave the requested bit length. With safe set,
// (x-1)/2 is prime as well, as needed for Diffie-Hellman groups. nbits
// below 3 fails with ErrBadInputData.
func (x *Int) GenPrime(nbits int, safe bool, rng Source) error {
	if nbits < 3 {
		return ErrBadInputData
	}
	n := (nbits + biL - 1) / biL

	for {
		if err := x.FillRandom(n*ciL, rng); err != nil {
			return err
		}
		k := x.BitLen()
		if k == 0 {
			continue
		}
		if k < nbits {
			if err := x.ShiftL(nbits - k); err != nil {
				return err
			}
		}
		if k > nbits {
			if err := x.ShiftR(k - nbits); err != nil {
				return err
			}
		}
		x.limbs[0] |= 3

		if !safe {
			for x.BitLen() == nbits {
				err := x.IsPrime(rng)
				if err == nil {
					return nil
				}
				if err != ErrNotAcceptable {
					return err
				}
				if err := x.AddInt(x, 2); err != nil {
					return err
				}
			}
			continue
		}

		// keep x == 3 (mod 4) and x == 2 (mod 3), so both x and
		// (x-1)/2 dodge the factors 2 and 3 while stepping by 12.
		// The mod-3 sieve assumes (x-1)/2 > 3, so it is skipped for
		// nbits == 3 where 7 is the only reachable candidate.
		if nbits > 3 {
			r, err := ModInt(x, 3)
			if err != nil {
				return err
			}
			if r == 0 {
				if err := x.AddInt(x, 8); err != nil {
					return err
				}
			} else if r == 1 {
				if err := x.AddInt(x, 4); err != nil {
					return err
				}
			}
		}

		var y Int
		if err := y.Copy(x); err != nil {
			return err
		}
		if err := y.ShiftR(1); err != nil {
			return err
		}

		for x.BitLen() == nbits {
			errX := x.IsPrime(rng)
			if errX == nil {
				errY := y.IsPrime(rng)
				if errY == nil {
					return nil
				}
				if errY != ErrNotAcceptable {
					return errY
				}
			} else if errX != ErrNotAcceptable {
				return errX
			}
			if err := x.AddInt(x, 12); err != nil {
				return err
			}
			if err := y.AddInt(&y, 6); err != nil {
				return err
			}
		}
	}
}
