package mpi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fromHex(t *testing.T, s string) *Int {
	t.Helper()
	var x Int
	require.NoError(t, x.ReadString(16, s))
	return &x
}

func fromInt(t *testing.T, z int) *Int {
	t.Helper()
	var x Int
	require.NoError(t, x.SetInt(z))
	return &x
}

func TestZeroValue(t *testing.T) {
	var x Int
	assert.Equal(t, 0, x.Sign())
	assert.Equal(t, 0, x.BitLen())
	assert.Equal(t, 0, x.Lsb())
	assert.Equal(t, 0, x.Size())
	assert.Equal(t, 0, x.CmpInt(0), "zero value should compare equal to 0")
	assert.Equal(t, "0", x.String())
}

func TestSetInt(t *testing.T) {
	x := fromInt(t, 42)
	assert.Equal(t, 0, x.CmpInt(42))
	assert.Equal(t, 1, x.Sign())
	assert.Equal(t, 6, x.BitLen())
	assert.Equal(t, 1, x.Lsb())

	require.NoError(t, x.SetInt(-42))
	assert.Equal(t, 0, x.CmpInt(-42))
	assert.Equal(t, -1, x.Sign())

	require.NoError(t, x.SetInt(0))
	assert.Equal(t, 0, x.Sign(), "zero must not keep a negative sign")
}

func TestGrowCap(t *testing.T) {
	var x Int
	require.NoError(t, x.Grow(MaxLimbs))
	assert.ErrorIs(t, x.Grow(MaxLimbs+1), ErrMallocFailed)
}

func TestCopyIndependence(t *testing.T) {
	a := fromHex(t, "123456789ABCDEF0123456789ABCDEF0")
	var b Int
	require.NoError(t, b.Copy(a))
	assert.Equal(t, 0, a.Cmp(&b))

	// mutating the copy must not touch the original
	require.NoError(t, b.AddInt(&b, 1))
	assert.Equal(t, 1, b.Cmp(a))
	assert.Equal(t, "123456789ABCDEF0123456789ABCDEF0", a.String())
}

func TestSwap(t *testing.T) {
	a := fromInt(t, 7)
	b := fromInt(t, -11)
	a.Swap(b)
	assert.Equal(t, 0, a.CmpInt(-11))
	assert.Equal(t, 0, b.CmpInt(7))
}

func TestBitLenLsb(t *testing.T) {
	cases := []struct {
		hex      string
		bits     int
		lsb      int
		sizeByte int
	}{
		{"1", 1, 0, 1},
		{"2", 2, 1, 1},
		{"80", 8, 7, 1},
		{"100", 9, 8, 2},
		{"8000000000000000", 64, 63, 8},
		{"10000000000000000", 65, 64, 9},
		{"F000000000000000000000000000000000000000", 160, 156, 20},
	}
	for _, c := range cases {
		x := fromHex(t, c.hex)
		assert.Equal(t, c.bits, x.BitLen(), "BitLen of %s", c.hex)
		assert.Equal(t, c.lsb, x.Lsb(), "Lsb of %s", c.hex)
		assert.Equal(t, c.sizeByte, x.Size(), "Size of %s", c.hex)
	}
}

func TestBit(t *testing.T) {
	x := fromHex(t, "A0") // 1010 0000
	assert.Equal(t, uint(0), x.Bit(0))
	assert.Equal(t, uint(1), x.Bit(5))
	assert.Equal(t, uint(1), x.Bit(7))
	assert.Equal(t, uint(0), x.Bit(200), "bits above the magnitude read as 0")
}

func TestClear(t *testing.T) {
	x := fromHex(t, "DEADBEEF")
	p := x.limbs
	x.Clear()
	assert.Equal(t, 0, x.Sign())
	for i := range p {
		assert.Zero(t, p[i], "released limb storage must be scrubbed")
	}
}

func TestShift(t *testing.T) {
	x := fromHex(t, "1")
	require.NoError(t, x.ShiftL(129))
	assert.Equal(t, 130, x.BitLen())
	require.NoError(t, x.ShiftR(100))
	assert.Equal(t, 30, x.BitLen())
	require.NoError(t, x.ShiftR(64))
	assert.Equal(t, 0, x.CmpInt(0), "shifting everything out yields zero")

	y := fromHex(t, "FEDCBA9876543210")
	require.NoError(t, y.ShiftL(68))
	require.NoError(t, y.ShiftR(68))
	assert.Equal(t, "FEDCBA9876543210", y.String())
}

func TestCmp(t *testing.T) {
	a := fromInt(t, 5)
	b := fromInt(t, -5)
	c := fromInt(t, 12)

	assert.Equal(t, 0, a.CmpAbs(b), "magnitudes of 5 and -5 are equal")
	assert.Equal(t, 1, a.Cmp(b))
	assert.Equal(t, -1, b.Cmp(a), "negative is less than non-negative")
	assert.Equal(t, -1, a.Cmp(c))
	assert.Equal(t, -1, c.CmpAbs(fromHex(t, "10000000000000000")))

	big := fromHex(t, "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF")
	assert.Equal(t, 0, big.Cmp(big))
	assert.Equal(t, 0, big.CmpAbs(big))

	neg := fromHex(t, "-FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF")
	assert.Equal(t, -1, neg.CmpInt(0))
	assert.Equal(t, 1, big.CmpInt(1))
}
