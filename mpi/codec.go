package mpi

const digits = "0123456789ABCDEF"

func digitVal(c byte, radix int) (uint, error) {
	var d uint
	switch {
	case c >= '0' && c <= '9':
		d = uint(c - '0')
	case c >= 'a' && c <= 'f':
		d = uint(c-'a') + 10
	case c >= 'A' && c <= 'F':
		d = uint(c-'A') + 10
	default:
		return 0, ErrBadInputData
	}
	if d >= uint(radix) {
		return 0, ErrBadInputData
	}
	return d, nil
}

// ReadString sets x from the ASCII numeral s in the given radix (2 to
// 16). A leading '-' marks a negative value; any other non-digit fails
// with ErrBadInputData.
func (x *Int) ReadString(radix int, s string) error {
	if radix < 2 || radix > 16 {
		return ErrBadInputData
	}

	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}

	if err := x.SetInt(0); err != nil {
		return err
	}
	for i := 0; i < len(s); i++ {
		d, err := digitVal(s[i], radix)
		if err != nil {
			return err
		}
		if err := x.MulInt(x, radix); err != nil {
			return err
		}
		if err := x.AddInt(x, int(d)); err != nil {
			return err
		}
	}
	if neg && x.used() > 0 {
		x.s = -1
	}
	return nil
}

// text renders the magnitude (with sign) as ASCII digits.
func (x *Int) text(radix int) ([]byte, error) {
	if x.used() == 0 {
		return []byte{'0'}, nil
	}

	var out []byte
	if radix == 16 {
		// emit straight from the limbs
		for i := x.used(); i > 0; i-- {
			l := x.limbs[i-1]
			for j := ciL * 2; j > 0; j-- {
				out = append(out, digits[(l>>((j-1)*4))&0xF])
			}
		}
		i := 0
		for out[i] == '0' {
			i++
		}
		out = out[i:]
	} else {
		var t Int
		if err := t.Copy(x); err != nil {
			return nil, err
		}
		t.s = 1
		for t.used() > 0 {
			d, err := ModInt(&t, radix)
			if err != nil {
				return nil, err
			}
			if err := DivInt(&t, nil, &t, radix); err != nil {
				return nil, err
			}
			out = append(out, digits[d])
		}
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}

	if x.sign() < 0 {
		out = append([]byte{'-'}, out...)
	}
	return out, nil
}

// WriteString renders x in the given radix into buf and returns the
// number of bytes required. When buf is too short (a zero-length buffer
// being the conventional size query) nothing is written and the call
// fails with ErrBufferTooSmall; re-invoke with a buffer of the returned
// size.
func (x *Int) WriteString(radix int, buf []byte) (int, error) {
	if radix < 2 || radix > 16 {
		return 0, ErrBadInputData
	}
	out, err := x.text(radix)
	if err != nil {
		return 0, err
	}
	if len(buf) < len(out) {
		return len(out), ErrBufferTooSmall
	}
	copy(buf, out)
	return len(out), nil
}

// Text returns x rendered in the given radix (2 to 16).
func (x *Int) Text(radix int) (string, error) {
	if radix < 2 || radix > 16 {
		return "", ErrBadInputData
	}
	out, err := x.text(radix)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// String renders x in hexadecimal, for diagnostics.
func (x *Int) String() string {
	s, err := x.Text(16)
	if err != nil {
		return "<mpi>"
	}
	return s
}

// ReadBinary sets x from big-endian unsigned bytes. The sign is always
// positive; an empty buffer yields zero.
func (x *Int) ReadBinary(buf []byte) error {
	i := 0
	for i < len(buf) && buf[i] == 0 {
		i++
	}
	n := len(buf) - i
	if err := x.Grow((n + ciL - 1) / ciL); err != nil {
		return err
	}
	wipe(x.limbs)
	x.s = 1
	for j := 0; j < n; j++ {
		b := buf[len(buf)-1-j]
		x.limbs[j/ciL] |= uint(b) << ((j % ciL) * 8)
	}
	return nil
}

// WriteBinary writes the magnitude of x into buf as big-endian unsigned
// bytes, left-padded with zeros, and returns the minimal byte length of
// the magnitude. When buf is too short (a zero-length buffer being the
// conventional size query) nothing is written and the call fails with
// ErrBufferTooSmall.
func (x *Int) WriteBinary(buf []byte) (int, error) {
	n := x.Size()
	if len(buf) < n {
		return n, ErrBufferTooSmall
	}
	for i := range buf {
		buf[i] = 0
	}
	for j := 0; j < n; j++ {
		buf[len(buf)-1-j] = byte(x.limbs[j/ciL] >> ((j % ciL) * 8))
	}
	return n, nil
}
