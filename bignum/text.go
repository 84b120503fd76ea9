/*
 * BigNum - Decimal text conversion.
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

import (
	"errors"
	"io"
	"strings"
)

// ErrSyntax is returned when parsing text that is not an optionally
// signed run of decimal digits.
var ErrSyntax = errors.New("invalid number syntax")

// Parse converts a decimal string of the form [+-]?[0-9]+ into an
// Integer. "-0" parses to canonical zero.
func Parse(s string) (Integer, error) {
	start := 0
	negative := false
	if len(s) > 0 {
		switch s[0] {
		case '-':
			negative = true
			start = 1
		case '+':
			start = 1
		}
	}
	if start >= len(s) {
		return zero(), ErrSyntax
	}
	for i := start; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return zero(), ErrSyntax
		}
	}

	// Group digits from the right, four per limb.
	limbs := make([]int32, 0, (len(s)-start+limbDigits-1)/limbDigits)
	for i := len(s); i > start; i -= limbDigits {
		first := i - limbDigits
		if first < start {
			first = start
		}
		val := int32(0)
		for j := first; j < i; j++ {
			val = val*10 + int32(s[j]-'0')
		}
		limbs = append(limbs, val)
	}
	return makeInt(negative, limbs), nil
}

// String formats a in decimal. The most significant limb prints without
// padding, the rest as four digit groups.
func (a Integer) String() string {
	a = a.canon()
	var str strings.Builder
	str.Grow(len(a.limbs)*limbDigits + 1)

	if a.negative {
		str.WriteByte('-')
	}
	top := len(a.limbs) - 1
	writeLimb(&str, a.limbs[top], false)
	for i := top - 1; i >= 0; i-- {
		writeLimb(&str, a.limbs[i], true)
	}
	return str.String()
}

// Emit one limb as decimal digits, zero padded to four places for all
// but the leading limb.
func writeLimb(str *strings.Builder, limb int32, pad bool) {
	digits := [limbDigits]byte{}
	for i := limbDigits - 1; i >= 0; i-- {
		digits[i] = byte('0' + limb%10)
		limb /= 10
	}
	first := 0
	if !pad {
		for first < limbDigits-1 && digits[first] == '0' {
			first++
		}
	}
	str.Write(digits[first:])
}

// Write writes the decimal form of a to w.
func (a Integer) Write(w io.Writer) error {
	_, err := io.WriteString(w, a.String())
	return err
}

// Read consumes one whitespace delimited token from r and parses it.
// Returns io.EOF when the stream holds no further token.
func Read(r io.ByteScanner) (Integer, error) {
	by, err := r.ReadByte()
	for err == nil && isSpace(by) {
		by, err = r.ReadByte()
	}
	if err != nil {
		return zero(), err
	}

	var token []byte
	for err == nil && !isSpace(by) {
		token = append(token, by)
		by, err = r.ReadByte()
	}
	if err == nil {
		// Leave the delimiter for the next reader.
		if err = r.UnreadByte(); err != nil {
			return zero(), err
		}
	} else if err != io.EOF {
		return zero(), err
	}
	return Parse(string(token))
}

func isSpace(by byte) bool {
	return by == ' ' || by == '\t' || by == '\n' || by == '\r'
}
