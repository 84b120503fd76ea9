/*
 * BigNum - FFT convolution multiply.
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

import "math"

// Each coefficient of the limb convolution is at most 9999 * 9999 * n.
// For a padded length up to 1 << 20 that stays inside the 53 bit
// mantissa of a float64, so rounding the inverse transform recovers the
// exact integer. Larger products drop back to the schoolbook loop.
const fftMaxLen = 1 << 20

// In place iterative radix-2 transform. Bit reversal permutation
// followed by Cooley-Tukey butterflies. The inverse transform negates
// the twiddle angle and scales by 1/n at the end.
func fft(a []complex128, invert bool) {
	n := len(a)
	if n == 1 {
		return
	}

	for i, j := 1, 0; i < n; i++ {
		bit := n >> 1
		for ; j&bit != 0; bit >>= 1 {
			j ^= bit
		}
		j ^= bit
		if i < j {
			a[i], a[j] = a[j], a[i]
		}
	}

	for length := 2; length <= n; length <<= 1 {
		ang := 2 * math.Pi / float64(length)
		if invert {
			ang = -ang
		}
		wlen := complex(math.Cos(ang), math.Sin(ang))
		for i := 0; i < n; i += length {
			w := complex(1, 0)
			for j := 0; j < length/2; j++ {
				u := a[i+j]
				v := a[i+j+length/2] * w
				a[i+j] = u + v
				a[i+j+length/2] = u - v
				w *= wlen
			}
		}
	}

	if invert {
		scale := complex(1/float64(n), 0)
		for i := range a {
			a[i] *= scale
		}
	}
}

// Multiply two magnitudes by convolution in the complex domain. The
// transforms are taken over the limb sequences padded to the next power
// of two, multiplied pointwise and inverted, then the rounded
// coefficients have their carries propagated back into limb range.
func mulFFT(a []int32, b []int32) []int32 {
	n := 1
	for n < len(a)+len(b) {
		n <<= 1
	}
	if n > fftMaxLen {
		return mulSmall(a, b)
	}

	fa := make([]complex128, n)
	for i, d := range a {
		fa[i] = complex(float64(d), 0)
	}
	fb := make([]complex128, n)
	for i, d := range b {
		fb[i] = complex(float64(d), 0)
	}

	fft(fa, false)
	fft(fb, false)
	for i := range fa {
		fa[i] *= fb[i]
	}
	fft(fa, true)

	out := make([]int32, 0, n+1)
	carry := int64(0)
	for i := 0; i < n; i++ {
		acc := int64(math.Round(real(fa[i]))) + carry
		out = append(out, int32(acc%limbBase))
		carry = acc / limbBase
	}
	for carry != 0 {
		out = append(out, int32(carry%limbBase))
		carry /= limbBase
	}
	return normalize(out)
}
