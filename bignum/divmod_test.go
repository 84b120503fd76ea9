/*
 * BigNum - Division test cases.
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
	"math/rand"
	"testing"
)

// Floor division on int64 for reference results.
func floorDiv(a int64, b int64) (int64, int64) {
	quot := a / b
	rem := a % b
	if rem != 0 && (rem < 0) != (b < 0) {
		quot--
		rem += b
	}
	return quot, rem
}

func TestDivFloorSigns(t *testing.T) {
	cases := []struct {
		a, b      string
		quot, rem string
	}{
		{"10", "3", "3", "1"},
		{"-10", "3", "-4", "2"},
		{"10", "-3", "-4", "-2"},
		{"-10", "-3", "3", "-1"},
		{"9", "3", "3", "0"},
		{"-9", "3", "-3", "0"},
		{"9", "-3", "-3", "0"},
		{"-9", "-3", "3", "0"},
		{"1", "2", "0", "1"},
		{"-1", "2", "-1", "1"},
		{"1", "-2", "-1", "-1"},
		{"-1", "-2", "0", "-1"},
		{"0", "7", "0", "0"},
		{"0", "-7", "0", "0"},
	}

	for _, c := range cases {
		a := number(t, c.a)
		b := number(t, c.b)

		quot, err := a.Div(b)
		if err != nil {
			t.Errorf("Div %s / %s error: %v", c.a, c.b, err)
			continue
		}
		checkCanonical(t, "Div", quot)
		if quot.String() != c.quot {
			t.Errorf("Div %s / %s got: %s wanted: %s", c.a, c.b, quot.String(), c.quot)
		}

		rem, err := a.Mod(b)
		if err != nil {
			t.Errorf("Mod %s %% %s error: %v", c.a, c.b, err)
			continue
		}
		checkCanonical(t, "Mod", rem)
		if rem.String() != c.rem {
			t.Errorf("Mod %s %% %s got: %s wanted: %s", c.a, c.b, rem.String(), c.rem)
		}
	}
}

func TestDivByZero(t *testing.T) {
	_, err := New(10).Div(New(0))
	if !errors.Is(err, ErrDivideByZero) {
		t.Errorf("Div by zero got: %v wanted: %v", err, ErrDivideByZero)
	}
	_, err = New(10).Mod(New(0))
	if !errors.Is(err, ErrDivideByZero) {
		t.Errorf("Mod by zero got: %v wanted: %v", err, ErrDivideByZero)
	}
	_, err = New(0).Div(New(0))
	if !errors.Is(err, ErrDivideByZero) {
		t.Errorf("Zero div by zero got: %v wanted: %v", err, ErrDivideByZero)
	}
}

func TestDivRandom(t *testing.T) {
	for range testRounds {
		a := rand.Int63n(2_000_000_000_000) - 1_000_000_000_000
		b := rand.Int63n(2_000_000) - 1_000_000
		if b == 0 {
			b = 17
		}
		wantQuot, wantRem := floorDiv(a, b)

		quot, err := New(a).Div(New(b))
		if err != nil {
			t.Errorf("Div %d / %d error: %v", a, b, err)
			continue
		}
		if !quot.Equal(New(wantQuot)) {
			t.Errorf("Div %d / %d got: %s wanted: %d", a, b, quot.String(), wantQuot)
		}

		rem, err := New(a).Mod(New(b))
		if err != nil {
			t.Errorf("Mod %d %% %d error: %v", a, b, err)
			continue
		}
		if !rem.Equal(New(wantRem)) {
			t.Errorf("Mod %d %% %d got: %s wanted: %d", a, b, rem.String(), wantRem)
		}
	}
}

// a == (a/b)*b + (a%b), with the remainder zero or signed like b and
// smaller than |b|.
func TestDivIdentity(t *testing.T) {
	literals := []struct {
		a, b string
	}{
		{"123456789012345678901234567890", "9973"},
		{"-123456789012345678901234567890", "9973"},
		{"123456789012345678901234567890", "-9973"},
		{"-123456789012345678901234567890", "-9973"},
		{"99999999999999999999999999999999999999", "123456789123456789"},
		{"-1", "100000000000000000000"},
		{"10000000000000000000000000000", "10000000000000"},
	}

	for _, c := range literals {
		a := number(t, c.a)
		b := number(t, c.b)

		quot, err := a.Div(b)
		if err != nil {
			t.Errorf("Div %s / %s error: %v", c.a, c.b, err)
			continue
		}
		rem, err := a.Mod(b)
		if err != nil {
			t.Errorf("Mod %s %% %s error: %v", c.a, c.b, err)
			continue
		}

		back := quot.Mul(b).Add(rem)
		if !back.Equal(a) {
			t.Errorf("Identity %s != %s*%s + %s", c.a, quot.String(), c.b, rem.String())
		}

		// Remainder range check.
		if !rem.IsZero() {
			if rem.Sign() != b.Sign() {
				t.Errorf("Remainder %s has wrong sign for divisor %s", rem.String(), c.b)
			}
			if rem.Abs().GreaterEqual(b.Abs()) {
				t.Errorf("Remainder %s not smaller than divisor %s", rem.String(), c.b)
			}
		}
	}
}

func TestDivSmallDividend(t *testing.T) {
	// Dividend magnitude below the divisor.
	quot, err := number(t, "5").Div(number(t, "100000000000000000000"))
	if err != nil || quot.String() != "0" {
		t.Errorf("Small positive quotient got: %s wanted: %s", quot.String(), "0")
	}

	quot, err = number(t, "-5").Div(number(t, "100000000000000000000"))
	if err != nil || quot.String() != "-1" {
		t.Errorf("Small negative quotient got: %s wanted: %s", quot.String(), "-1")
	}
}

func TestDivExactLarge(t *testing.T) {
	a := number(t, randomDigits(220))
	b := number(t, randomDigits(95))
	prod := a.Mul(b)

	quot, err := prod.Div(b)
	if err != nil {
		t.Errorf("Div error: %v", err)
		return
	}
	if !quot.Equal(a) {
		t.Errorf("Exact division got: %s wanted: %s", quot.String(), a.String())
	}

	rem, err := prod.Mod(b)
	if err != nil {
		t.Errorf("Mod error: %v", err)
		return
	}
	if !rem.IsZero() {
		t.Errorf("Exact division remainder got: %s wanted: 0", rem.String())
	}
}

func TestDivLargeIdentity(t *testing.T) {
	for range 10 {
		a, _ := Parse("-" + randomDigits(180))
		b, _ := Parse(randomDigits(70))

		quot, err := a.Div(b)
		if err != nil {
			t.Errorf("Div error: %v", err)
			continue
		}
		rem, err := a.Mod(b)
		if err != nil {
			t.Errorf("Mod error: %v", err)
			continue
		}
		if !quot.Mul(b).Add(rem).Equal(a) {
			t.Error("Large identity does not hold")
		}
		if rem.Sign() < 0 || rem.Abs().GreaterEqual(b.Abs()) {
			t.Errorf("Large remainder out of range: %s", rem.String())
		}
	}
}
