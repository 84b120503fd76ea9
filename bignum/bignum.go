/*
 * BigNum - Arbitrary precision signed integers.
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

// Package bignum implements signed integers of unbounded magnitude.
//
// An Integer is a value type: every operation returns a new value and
// never modifies its operands. The zero value is a usable 0.
package bignum

// Integer is a signed number of unbounded magnitude. Negative zero does
// not exist, zero always carries a positive sign.
type Integer struct {
	negative bool
	limbs    []int32
}

// New returns the Integer with the value of x.
func New(x int64) Integer {
	if x == 0 {
		return zero()
	}
	num := Integer{negative: x < 0}
	mag := uint64(x)
	if x < 0 {
		mag = -mag
	}
	for mag > 0 {
		num.limbs = append(num.limbs, int32(mag%limbBase))
		mag /= limbBase
	}
	return num
}

// Canonical zero.
func zero() Integer {
	return Integer{limbs: []int32{0}}
}

// Build an Integer from a raw magnitude, normalizing and forcing a
// positive sign on zero.
func makeInt(negative bool, limbs []int32) Integer {
	limbs = normalize(limbs)
	if magZero(limbs) {
		negative = false
	}
	return Integer{negative: negative, limbs: limbs}
}

// Map the zero value of Integer onto canonical zero so that a
// default constructed value behaves like New(0).
func (a Integer) canon() Integer {
	if len(a.limbs) == 0 {
		return zero()
	}
	return a
}

// IsZero reports whether a is zero.
func (a Integer) IsZero() bool {
	return len(a.limbs) == 0 || magZero(a.limbs)
}

// Sign returns -1 if a is negative, 0 if zero and 1 if positive.
func (a Integer) Sign() int {
	if a.IsZero() {
		return 0
	}
	if a.negative {
		return -1
	}
	return 1
}

// Neg returns -a. Negating zero keeps the positive sign.
func (a Integer) Neg() Integer {
	a = a.canon()
	limbs := make([]int32, len(a.limbs))
	copy(limbs, a.limbs)
	return makeInt(!a.negative, limbs)
}

// Abs returns the absolute value of a.
func (a Integer) Abs() Integer {
	a = a.canon()
	limbs := make([]int32, len(a.limbs))
	copy(limbs, a.limbs)
	return makeInt(false, limbs)
}

// Add returns a + b.
func (a Integer) Add(b Integer) Integer {
	a = a.canon()
	b = b.canon()

	// Same sign, magnitudes add.
	if a.negative == b.negative {
		return makeInt(a.negative, magAdd(a.limbs, b.limbs))
	}

	// Opposite signs, smaller magnitude comes off the larger and the
	// larger operand decides the sign.
	switch magCmp(a.limbs, b.limbs) {
	case 0:
		return zero()
	case 1:
		return makeInt(a.negative, magSub(a.limbs, b.limbs))
	default:
		return makeInt(b.negative, magSub(b.limbs, a.limbs))
	}
}

// Sub returns a - b.
func (a Integer) Sub(b Integer) Integer {
	return a.Add(b.Neg())
}

// Cmp compares a and b. Returns -1 if a < b, 0 if equal and 1 if a > b.
func (a Integer) Cmp(b Integer) int {
	a = a.canon()
	b = b.canon()
	if a.negative != b.negative {
		if a.negative {
			return -1
		}
		return 1
	}
	cmp := magCmp(a.limbs, b.limbs)
	if a.negative {
		return -cmp
	}
	return cmp
}

// Equal reports whether a == b.
func (a Integer) Equal(b Integer) bool {
	return a.Cmp(b) == 0
}

// Less reports whether a < b.
func (a Integer) Less(b Integer) bool {
	return a.Cmp(b) < 0
}

// LessEqual reports whether a <= b.
func (a Integer) LessEqual(b Integer) bool {
	return a.Cmp(b) <= 0
}

// Greater reports whether a > b.
func (a Integer) Greater(b Integer) bool {
	return a.Cmp(b) > 0
}

// GreaterEqual reports whether a >= b.
func (a Integer) GreaterEqual(b Integer) bool {
	return a.Cmp(b) >= 0
}

// AddAssign sets *z to *z + x.
func (z *Integer) AddAssign(x Integer) {
	*z = z.Add(x)
}

// SubAssign sets *z to *z - x.
func (z *Integer) SubAssign(x Integer) {
	*z = z.Sub(x)
}

// MulAssign sets *z to *z * x.
func (z *Integer) MulAssign(x Integer) {
	*z = z.Mul(x)
}

// DivAssign sets *z to the floor quotient *z / x.
func (z *Integer) DivAssign(x Integer) error {
	quot, err := z.Div(x)
	if err != nil {
		return err
	}
	*z = quot
	return nil
}

// ModAssign sets *z to the floor remainder *z % x.
func (z *Integer) ModAssign(x Integer) error {
	rem, err := z.Mod(x)
	if err != nil {
		return err
	}
	*z = rem
	return nil
}
