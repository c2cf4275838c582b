package mpi

// CmpAbs compares the magnitudes of x and y, ignoring signs. It returns
// +1 if |x| > |y|, -1 if |x| < |y| and 0 if they are equal.
func (x *Int) CmpAbs(y *Int) int {
	i, j := x.used(), y.used()
	if i == 0 && j == 0 {
		return 0
	}
	if i > j {
		return 1
	}
	if j > i {
		return -1
	}
	for ; i > 0; i-- {
		if x.limbs[i-1] > y.limbs[i-1] {
			return 1
		}
		if x.limbs[i-1] < y.limbs[i-1] {
			return -1
		}
	}
	return 0
}

// Cmp compares x and y as signed values, returning +1, -1 or 0. A negative
// value is always less than any non-negative one.
func (x *Int) Cmp(y *Int) int {
	i, j := x.used(), y.used()
	if i == 0 && j == 0 {
		return 0
	}
	xs, ys := x.sign(), y.sign()
	if i == 0 {
		xs = 1
	}
	if j == 0 {
		ys = 1
	}
	if xs > 0 && ys < 0 {
		return 1
	}
	if ys > 0 && xs < 0 {
		return -1
	}
	if c := x.CmpAbs(y); c != 0 {
		if xs > 0 {
			return c
		}
		return -c
	}
	return 0
}

// CmpInt compares x against the machine integer z.
func (x *Int) CmpInt(z int) int {
	var y Int
	var limb [1]uint
	y.limbs = limb[:]
	y.s = 1
	u := uint(z)
	if z < 0 {
		y.s = -1
		u = -u
	}
	y.limbs[0] = u
	return x.Cmp(&y)
}
