package mpi

// A Source supplies random bytes to prime generation and primality
// testing, one byte per call. Its statistical quality is the caller's
// responsibility; the engine treats it as a black box and propagates any
// error it returns unchanged.
type Source interface {
	Byte() (byte, error)
}

// FillRandom sets x to a non-negative value built from size random bytes
// drawn from rng.
func (x *Int) FillRandom(size int, rng Source) error {
	if err := x.Grow((size + ciL - 1) / ciL); err != nil {
		return err
	}
	wipe(x.limbs)
	x.s = 1
	for i := 0; i < size; i++ {
		b, err := rng.Byte()
		if err != nil {
			return err
		}
		x.limbs[i/ciL] |= uint(b) << ((i % ciL) * 8)
	}
	return nil
}
