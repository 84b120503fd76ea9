/*
 * BigNum - Floor division and remainder.
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

package bignum

import "errors"

// ErrDivideByZero is returned by Div and Mod for a zero divisor.
var ErrDivideByZero = errors.New("division by zero")

// Div returns the floor quotient a / b, rounding toward negative
// infinity. Together with Mod it satisfies a == q*b + r with r carrying
// the sign of b.
func (a Integer) Div(b Integer) (Integer, error) {
	a = a.canon()
	b = b.canon()
	if b.IsZero() {
		return zero(), ErrDivideByZero
	}
	if a.IsZero() {
		return zero(), nil
	}

	negative := a.negative != b.negative

	// Magnitude smaller than the divisor. The quotient is zero, or -1
	// when the exact ratio is a negative fraction above -1.
	if magCmp(a.limbs, b.limbs) < 0 {
		if negative {
			return New(-1), nil
		}
		return zero(), nil
	}

	quot, rem := magDivMod(a.limbs, b.limbs)

	// Floor adjustment. A negative quotient with a remainder truncated
	// toward zero, push it one further down.
	if negative && !magZero(rem) {
		quot = magAdd(quot, []int32{1})
	}
	return makeInt(negative, quot), nil
}

// Mod returns the floor remainder a % b, which is zero or has the sign
// of b.
func (a Integer) Mod(b Integer) (Integer, error) {
	quot, err := a.Div(b)
	if err != nil {
		return zero(), err
	}
	return a.Sub(quot.Mul(b)), nil
}

// Schoolbook long division on magnitudes, most significant limb first.
// Returns the truncated quotient and the remainder. Each round shifts
// the next dividend limb into the running prefix, then binary searches
// [0, 9999] for the largest digit whose product still fits under it.
func magDivMod(a []int32, b []int32) ([]int32, []int32) {
	quot := make([]int32, len(a))
	var current []int32

	for i := len(a) - 1; i >= 0; i-- {
		current = append(current, 0)
		copy(current[1:], current)
		current[0] = a[i]
		current = normalize(current)

		digit := int32(0)
		if magCmp(current, b) >= 0 {
			low, high := int32(0), int32(limbBase-1)
			for low <= high {
				mid := (low + high) / 2
				if magCmp(magMulLimb(b, mid), current) <= 0 {
					digit = mid
					low = mid + 1
				} else {
					high = mid - 1
				}
			}
			current = magSub(current, magMulLimb(b, digit))
		}
		quot[i] = digit
	}
	return normalize(quot), current
}
