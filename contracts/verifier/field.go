package verifier

// Arithmetic in the prime field of P-256 curve. Field elements are kept in
// eight 32-bit little-endian words, so every intermediate value fits into VM
// integer which is limited to 256 bits including sign.

const wordMask = 0xffffffff

// Field prime.
const (
	p0 = 0xffffffff
	p1 = 0xffffffff
	p2 = 0xffffffff
	p3 = 0
	p4 = 0
	p5 = 0
	p6 = 1
	p7 = 0xffffffff
)

// Curve coefficient b.
const (
	cb0 = 0x27d2604b
	cb1 = 0x3bce3c3e
	cb2 = 0xcc53b0f6
	cb3 = 0x651d06b0
	cb4 = 0x769886bc
	cb5 = 0xb3ebbd55
	cb6 = 0xaa3a93e7
	cb7 = 0x5ac635d8
)

// feFromBytes reads field element encoded in 32 big-endian bytes starting
// at off.
func feFromBytes(b []byte, off int) (int, int, int, int, int, int, int, int) {
	return word(b, off+28), word(b, off+24), word(b, off+20), word(b, off+16),
		word(b, off+12), word(b, off+8), word(b, off+4), word(b, off)
}

func word(b []byte, off int) int {
	return int(b[off])<<24 | int(b[off+1])<<16 | int(b[off+2])<<8 | int(b[off+3])
}

// feLessP checks that the words encode a number less than the field prime.
func feLessP(x0, x1, x2, x3, x4, x5, x6, x7 int) bool {
	if x7 != p7 {
		return x7 < p7
	}
	if x6 != p6 {
		return x6 < p6
	}
	if x5 != p5 {
		return x5 < p5
	}
	if x4 != p4 {
		return x4 < p4
	}
	if x3 != p3 {
		return x3 < p3
	}
	if x2 != p2 {
		return x2 < p2
	}
	if x1 != p1 {
		return x1 < p1
	}
	return x0 < p0
}

// feNormalize reduces a number given in signed words of any small magnitude
// to the field element. 2^256 is congruent to 2^224 - 2^192 - 2^96 + 1, so
// carry out of the top word is folded back this way.
func feNormalize(r0, r1, r2, r3, r4, r5, r6, r7 int) (int, int, int, int, int, int, int, int) {
	for {
		r1 += r0 >> 32
		r0 = r0 & wordMask
		r2 += r1 >> 32
		r1 = r1 & wordMask
		r3 += r2 >> 32
		r2 = r2 & wordMask
		r4 += r3 >> 32
		r3 = r3 & wordMask
		r5 += r4 >> 32
		r4 = r4 & wordMask
		r6 += r5 >> 32
		r5 = r5 & wordMask
		r7 += r6 >> 32
		r6 = r6 & wordMask
		t := r7 >> 32
		r7 = r7 & wordMask

		if t != 0 {
			r0 += t
			r3 -= t
			r6 -= t
			r7 += t
			continue
		}

		if feLessP(r0, r1, r2, r3, r4, r5, r6, r7) {
			return r0, r1, r2, r3, r4, r5, r6, r7
		}

		// less than 2p, single subtraction is enough
		r0 -= p0
		r1 -= p1
		r2 -= p2
		r3 -= p3
		r4 -= p4
		r5 -= p5
		r6 -= p6
		r7 -= p7
	}
}

// feMul returns a * b.
func feMul(a0, a1, a2, a3, a4, a5, a6, a7, b0, b1, b2, b3, b4, b5, b6, b7 int) (int, int, int, int, int, int, int, int) {
	t := a0 * b0
	c0 := t & wordMask
	t = t>>32 + a0*b1 + a1*b0
	c1 := t & wordMask
	t = t>>32 + a0*b2 + a1*b1 + a2*b0
	c2 := t & wordMask
	t = t>>32 + a0*b3 + a1*b2 + a2*b1 + a3*b0
	c3 := t & wordMask
	t = t>>32 + a0*b4 + a1*b3 + a2*b2 + a3*b1 + a4*b0
	c4 := t & wordMask
	t = t>>32 + a0*b5 + a1*b4 + a2*b3 + a3*b2 + a4*b1 + a5*b0
	c5 := t & wordMask
	t = t>>32 + a0*b6 + a1*b5 + a2*b4 + a3*b3 + a4*b2 + a5*b1 + a6*b0
	c6 := t & wordMask
	t = t>>32 + a0*b7 + a1*b6 + a2*b5 + a3*b4 + a4*b3 + a5*b2 + a6*b1 + a7*b0
	c7 := t & wordMask
	t = t>>32 + a1*b7 + a2*b6 + a3*b5 + a4*b4 + a5*b3 + a6*b2 + a7*b1
	c8 := t & wordMask
	t = t>>32 + a2*b7 + a3*b6 + a4*b5 + a5*b4 + a6*b3 + a7*b2
	c9 := t & wordMask
	t = t>>32 + a3*b7 + a4*b6 + a5*b5 + a6*b4 + a7*b3
	c10 := t & wordMask
	t = t>>32 + a4*b7 + a5*b6 + a6*b5 + a7*b4
	c11 := t & wordMask
	t = t>>32 + a5*b7 + a6*b6 + a7*b5
	c12 := t & wordMask
	t = t>>32 + a6*b7 + a7*b6
	c13 := t & wordMask
	t = t>>32 + a7*b7
	c14 := t & wordMask
	c15 := t >> 32

	// fast reduction of NIST P-256 (FIPS 186-4, D.2.3)
	return feNormalize(
		c0 + c8 + c9 - c11 - c12 - c13 - c14,
		c1 + c9 + c10 - c12 - c13 - c14 - c15,
		c2 + c10 + c11 - c13 - c14 - c15,
		c3 + 2*c11 + 2*c12 + c13 - c15 - c8 - c9,
		c4 + 2*c12 + 2*c13 + c14 - c9 - c10,
		c5 + 2*c13 + 2*c14 + c15 - c10 - c11,
		c6 + 3*c14 + 2*c15 + c13 - c8 - c9,
		c7 + 3*c15 + c8 - c10 - c11 - c12 - c13,
	)
}

// feCurve returns x^3 - 3x + b, the right side of the curve equation.
func feCurve(x0, x1, x2, x3, x4, x5, x6, x7 int) (int, int, int, int, int, int, int, int) {
	r0, r1, r2, r3, r4, r5, r6, r7 := feMul(x0, x1, x2, x3, x4, x5, x6, x7, x0, x1, x2, x3, x4, x5, x6, x7)
	r0, r1, r2, r3, r4, r5, r6, r7 = feMul(r0, r1, r2, r3, r4, r5, r6, r7, x0, x1, x2, x3, x4, x5, x6, x7)

	return feNormalize(r0-3*x0+cb0, r1-3*x1+cb1, r2-3*x2+cb2, r3-3*x3+cb3,
		r4-3*x4+cb4, r5-3*x5+cb5, r6-3*x6+cb6, r7-3*x7+cb7)
}

// feIsSquare checks that x has a square root in the field using Euler's
// criterion: x^((p-1)/2) is 1 for non-zero squares.
func feIsSquare(x0, x1, x2, x3, x4, x5, x6, x7 int) bool {
	if x0|x1|x2|x3|x4|x5|x6|x7 == 0 {
		return true
	}

	// (p-1)/2, most significant word first
	exp := []int{0x7fffffff, 0x80000000, 0x80000000, 0, 0, 0x7fffffff, 0xffffffff, 0xffffffff}

	r0, r1, r2, r3, r4, r5, r6, r7 := 1, 0, 0, 0, 0, 0, 0, 0

	for i := range exp {
		for j := 31; j >= 0; j-- {
			r0, r1, r2, r3, r4, r5, r6, r7 = feMul(r0, r1, r2, r3, r4, r5, r6, r7, r0, r1, r2, r3, r4, r5, r6, r7)
			if (exp[i]>>j)&1 == 1 {
				r0, r1, r2, r3, r4, r5, r6, r7 = feMul(r0, r1, r2, r3, r4, r5, r6, r7, x0, x1, x2, x3, x4, x5, x6, x7)
			}
		}
	}

	return r0 == 1 && r1|r2|r3|r4|r5|r6|r7 == 0
}
