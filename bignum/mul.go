/*
 * BigNum - Multiplication.
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

// Operands below this limb count multiply by the schoolbook loop, at or
// above it the FFT convolution wins.
const mulThreshold = 100

// Mul returns a * b.
func (a Integer) Mul(b Integer) Integer {
	a = a.canon()
	b = b.canon()

	var prod []int32
	if len(a.limbs) < mulThreshold && len(b.limbs) < mulThreshold {
		prod = mulSmall(a.limbs, b.limbs)
	} else {
		prod = mulFFT(a.limbs, b.limbs)
	}
	return makeInt(a.negative != b.negative, prod)
}

// Schoolbook convolution. The largest intermediate is
// 9999*9999 + 9999 + carry which fits an int64 with room to spare.
func mulSmall(a []int32, b []int32) []int32 {
	out := make([]int32, len(a)+len(b))

	for i := 0; i < len(a); i++ {
		carry := int64(0)
		for j := 0; j < len(b) || carry != 0; j++ {
			acc := int64(out[i+j]) + carry
			if j < len(b) {
				acc += int64(a[i]) * int64(b[j])
			}
			out[i+j] = int32(acc % limbBase)
			carry = acc / limbBase
		}
	}
	return normalize(out)
}
