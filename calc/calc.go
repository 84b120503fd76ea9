/*
 * BigNum - Expression calculator.
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

// Package calc evaluates integer expressions of unbounded magnitude.
//
// Grammar, loosest binding first:
//
//	line   := name '=' expr | expr
//	expr   := term (('+' | '-') term)*
//	term   := factor (('*' | '/' | '%') factor)*
//	factor := ['+'|'-'] (number | '(' expr ')' | name)
//
// Division and remainder floor toward negative infinity. The last
// result of every line is kept under the name "_".
package calc

import (
	"errors"
	"sort"
	"unicode"

	"github.com/rcornwell/bignum/bignum"
)

// Name the last result is stored under.
const lastResult = "_"

// Calculator holds named results between evaluated lines.
type Calculator struct {
	vars map[string]bignum.Integer
}

func New() *Calculator {
	return &Calculator{vars: map[string]bignum.Integer{}}
}

// Eval evaluates one input line, an expression or an assignment of one.
func (c *Calculator) Eval(line string) (bignum.Integer, error) {
	target := lastResult

	// Assignment when a leading name is followed by '='.
	if name, rest := getName(line); name != "" {
		if next, after := getNext(rest); next == '=' {
			target = name
			line = after
		}
	}

	value, rest, err := c.evalExpr(line)
	if err != nil {
		return bignum.Integer{}, err
	}
	if next, _ := getNext(rest); next != 0 {
		return bignum.Integer{}, errors.New("unexpected character " + string(next))
	}

	c.vars[target] = value
	c.vars[lastResult] = value
	return value, nil
}

// Names returns the defined variable names in sorted order.
func (c *Calculator) Names() []string {
	names := make([]string, 0, len(c.vars))
	for name := range c.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the value bound to name.
func (c *Calculator) Lookup(name string) (bignum.Integer, bool) {
	value, ok := c.vars[name]
	return value, ok
}

// Sum level, '+' and '-'.
func (c *Calculator) evalExpr(str string) (bignum.Integer, string, error) {
	value, rest, err := c.evalTerm(str)
	if err != nil {
		return value, rest, err
	}
	for {
		next, after := getNext(rest)
		switch next {
		case '+':
			rhs, r, err := c.evalTerm(after)
			if err != nil {
				return value, r, err
			}
			value = value.Add(rhs)
			rest = r
		case '-':
			rhs, r, err := c.evalTerm(after)
			if err != nil {
				return value, r, err
			}
			value = value.Sub(rhs)
			rest = r
		default:
			return value, rest, nil
		}
	}
}

// Product level, '*', '/' and '%'.
func (c *Calculator) evalTerm(str string) (bignum.Integer, string, error) {
	value, rest, err := c.evalFactor(str)
	if err != nil {
		return value, rest, err
	}
	for {
		next, after := getNext(rest)
		switch next {
		case '*':
			rhs, r, err := c.evalFactor(after)
			if err != nil {
				return value, r, err
			}
			value = value.Mul(rhs)
			rest = r
		case '/':
			rhs, r, err := c.evalFactor(after)
			if err != nil {
				return value, r, err
			}
			value, err = value.Div(rhs)
			if err != nil {
				return value, r, err
			}
			rest = r
		case '%':
			rhs, r, err := c.evalFactor(after)
			if err != nil {
				return value, r, err
			}
			value, err = value.Mod(rhs)
			if err != nil {
				return value, r, err
			}
			rest = r
		default:
			return value, rest, nil
		}
	}
}

// Factor level, unary signs, literals, parens and names.
func (c *Calculator) evalFactor(str string) (bignum.Integer, string, error) {
	str = skipSpace(str)
	if str == "" {
		return bignum.Integer{}, "", errors.New("missing operand")
	}

	switch {
	case str[0] == '+':
		return c.evalFactor(str[1:])

	case str[0] == '-':
		value, rest, err := c.evalFactor(str[1:])
		return value.Neg(), rest, err

	case str[0] == '(':
		value, rest, err := c.evalExpr(str[1:])
		if err != nil {
			return value, rest, err
		}
		next, rest := getNext(rest)
		if next != ')' {
			return value, rest, errors.New("missing closing parenthesis")
		}
		return value, rest, nil

	case unicode.IsDigit(rune(str[0])):
		length := 0
		for length < len(str) && str[length] >= '0' && str[length] <= '9' {
			length++
		}
		value, err := bignum.Parse(str[:length])
		return value, str[length:], err

	default:
		name, rest := getName(str)
		if name == "" {
			return bignum.Integer{}, str, errors.New("unexpected character " + string(str[0]))
		}
		value, ok := c.vars[name]
		if !ok {
			return bignum.Integer{}, rest, errors.New("undefined variable " + name)
		}
		return value, rest, nil
	}
}

// Skip leading whitespace.
func skipSpace(str string) string {
	for i := range str {
		if !unicode.IsSpace(rune(str[i])) {
			return str[i:]
		}
	}
	return ""
}

// Get next name. Names start with a letter or underscore and continue
// with letters, digits and underscores.
func getName(str string) (string, string) {
	str = skipSpace(str)
	length := 0
	for length < len(str) && isNameByte(str[length], length > 0) {
		length++
	}
	return str[:length], str[length:]
}

// Get next non blank character, consumed. Zero if nothing is left.
func getNext(str string) (byte, string) {
	str = skipSpace(str)
	if str == "" {
		return 0, ""
	}
	return str[0], str[1:]
}

func isNameByte(by byte, interior bool) bool {
	if by == '_' || unicode.IsLetter(rune(by)) {
		return true
	}
	return interior && unicode.IsDigit(rune(by))
}
