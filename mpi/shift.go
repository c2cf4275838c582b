package mpi

// ShiftL shifts the magnitude left by count bits: |x| <<= count.
func (x *Int) ShiftL(count int) error {
	i := x.BitLen() + count
	if len(x.limbs)*biL < i {
		if err := x.Grow((i + biL - 1) / biL); err != nil {
			return err
		}
	}
	v0 := count / biL
	t1 := count % biL

	// shift by count / biL limbs
	if v0 > 0 {
		for i := len(x.limbs); i > v0; i-- {
			x.limbs[i-1] = x.limbs[i-1-v0]
		}
		for i := v0; i > 0; i-- {
			x.limbs[i-1] = 0
		}
	}

	// shift by count % biL bits
	if t1 > 0 {
		var r0 uint
		for i := v0; i < len(x.limbs); i++ {
			r1 := x.limbs[i] >> (biL - t1)
			x.limbs[i] = x.limbs[i]<<t1 | r0
			r0 = r1
		}
	}
	return nil
}

// ShiftR shifts the magnitude right by count bits: |x| >>= count.
func (x *Int) ShiftR(count int) error {
	v0 := count / biL
	v1 := count % biL

	if v0 >= len(x.limbs) {
		return x.SetInt(0)
	}

	if v0 > 0 {
		for i := 0; i < len(x.limbs)-v0; i++ {
			x.limbs[i] = x.limbs[i+v0]
		}
		for i := len(x.limbs) - v0; i < len(x.limbs); i++ {
			x.limbs[i] = 0
		}
	}

	if v1 > 0 {
		var r0 uint
		for i := len(x.limbs); i > 0; i-- {
			r1 := x.limbs[i-1] << (biL - v1)
			x.limbs[i-1] = x.limbs[i-1]>>v1 | r0
			r0 = r1
		}
	}
	x.normalize()
	return nil
}
