/*
 * BigNum - Limb arithmetic kernels.
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

// Numbers are held as little endian limbs in base 10000, four decimal
// digits per limb. All kernels below work on bare magnitudes, sign is
// handled by the callers.
const (
	limbBase   = 10000
	limbDigits = 4
)

// Remove leading zero limbs, always keeping at least one limb.
func normalize(v []int32) []int32 {
	n := len(v)
	for n > 1 && v[n-1] == 0 {
		n--
	}
	return v[:n]
}

// True if the magnitude is zero.
func magZero(v []int32) bool {
	return len(v) == 1 && v[0] == 0
}

// Compare two magnitudes. Returns -1, 0 or 1.
// More limbs wins, otherwise scan down from the most significant limb.
func magCmp(a []int32, b []int32) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Add two magnitudes.
func magAdd(a []int32, b []int32) []int32 {
	length := len(a)
	if len(b) > length {
		length = len(b)
	}
	sum := make([]int32, 0, length+1)

	carry := int32(0)
	for i := 0; i < length || carry != 0; i++ {
		acc := carry
		if i < len(a) {
			acc += a[i]
		}
		if i < len(b) {
			acc += b[i]
		}
		sum = append(sum, acc%limbBase)
		carry = acc / limbBase
	}
	return normalize(sum)
}

// Subtract magnitude b from a. Caller must ensure a >= b, the
// precondition guarantees no borrow out of the top limb.
func magSub(a []int32, b []int32) []int32 {
	diff := make([]int32, 0, len(a))

	borrow := int32(0)
	for i := 0; i < len(a); i++ {
		acc := a[i] - borrow
		if i < len(b) {
			acc -= b[i]
		}
		if acc < 0 {
			acc += limbBase
			borrow = 1
		} else {
			borrow = 0
		}
		diff = append(diff, acc)
	}
	return normalize(diff)
}

// Multiply a magnitude by one limb value in [0, 9999].
func magMulLimb(a []int32, m int32) []int32 {
	prod := make([]int32, 0, len(a)+1)

	carry := int64(0)
	for i := 0; i < len(a) || carry != 0; i++ {
		acc := carry
		if i < len(a) {
			acc += int64(a[i]) * int64(m)
		}
		prod = append(prod, int32(acc%limbBase))
		carry = acc / limbBase
	}
	return normalize(prod)
}
