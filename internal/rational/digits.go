/*
Copyright (C) 2023  Carl-Philip Hänsch

	This program is free software: you can redistribute it and/or modify
	it under the terms of the GNU General Public License as published by
	the Free Software Foundation, either version 3 of the License, or
	(at your option) any later version.

	This program is distributed in the hope that it will be useful,
	but WITHOUT ANY WARRANTY; without even the implied warranty of
	MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
	GNU General Public License for more details.

	You should have received a copy of the GNU General Public License
	along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package rational

// Unsigned arbitrary-precision decimal-digit string arithmetic. Every
// function here treats its string arguments as normalized (no leading
// zeros except the single digit "0") and returns a normalized result.
// This is the grade-school layer the Rational type is built on.

func stripZeros(s string) string {
	i := 0
	for i < len(s)-1 && s[i] == '0' {
		i++
	}
	return s[i:]
}

func isZeroDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '0' {
			return false
		}
	}
	return true
}

// cmpDigits returns -1, 0, 1 as a<b, a==b, a>b.
func cmpDigits(a, b string) int {
	a, b = stripZeros(a), stripZeros(b)
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// addDigits computes a+b for non-negative decimal strings.
func addDigits(a, b string) string {
	if len(a) < len(b) {
		a, b = b, a
	}
	out := make([]byte, len(a)+1)
	carry := byte(0)
	ai := len(a) - 1
	bi := len(b) - 1
	oi := len(out) - 1
	for ai >= 0 {
		da := a[ai] - '0'
		db := byte(0)
		if bi >= 0 {
			db = b[bi] - '0'
		}
		sum := da + db + carry
		if sum >= 10 {
			sum -= 10
			carry = 1
		} else {
			carry = 0
		}
		out[oi] = sum + '0'
		ai--
		bi--
		oi--
	}
	if carry > 0 {
		out[oi] = carry + '0'
		oi--
	}
	return stripZeros(string(out[oi+1:]))
}

// subDigits computes a-b for non-negative decimal strings, requires a>=b.
func subDigits(a, b string) string {
	out := make([]byte, len(a))
	borrow := int8(0)
	ai := len(a) - 1
	bi := len(b) - 1
	oi := len(out) - 1
	for ai >= 0 {
		da := int8(a[ai] - '0')
		db := int8(0)
		if bi >= 0 {
			db = int8(b[bi] - '0')
		}
		d := da - db - borrow
		if d < 0 {
			d += 10
			borrow = 1
		} else {
			borrow = 0
		}
		out[oi] = byte(d) + '0'
		ai--
		bi--
		oi--
	}
	return stripZeros(string(out))
}

// mulDigits computes a*b for non-negative decimal strings, grade-school long multiplication.
func mulDigits(a, b string) string {
	if isZeroDigits(a) || isZeroDigits(b) {
		return "0"
	}
	result := make([]int, len(a)+len(b))
	for i := len(a) - 1; i >= 0; i-- {
		da := int(a[i] - '0')
		for j := len(b) - 1; j >= 0; j-- {
			db := int(b[j] - '0')
			pos := i + j + 1
			result[pos] += da * db
		}
	}
	for i := len(result) - 1; i > 0; i-- {
		result[i-1] += result[i] / 10
		result[i] %= 10
	}
	out := make([]byte, len(result))
	for i, d := range result {
		out[i] = byte(d) + '0'
	}
	return stripZeros(string(out))
}

// divmodDigits computes a/b and a%b for non-negative decimal strings via
// schoolbook long division. b must not be "0".
func divmodDigits(a, b string) (quotient, remainder string) {
	if isZeroDigits(a) {
		return "0", "0"
	}
	var q []byte
	rem := "0"
	for i := 0; i < len(a); i++ {
		rem = stripZeros(rem + string(a[i]))
		digit := 0
		for digit < 9 && cmpDigits(mulDigits(b, itoaDigit(digit+1)), rem) <= 0 {
			digit++
		}
		q = append(q, byte(digit)+'0')
		rem = subDigits(rem, mulDigits(b, itoaDigit(digit)))
	}
	return stripZeros(string(q)), rem
}

func itoaDigit(d int) string {
	return string([]byte{byte(d) + '0'})
}

// gcdDigits computes the greatest common divisor of two non-negative
// decimal strings via the Euclidean algorithm.
func gcdDigits(a, b string) string {
	a, b = stripZeros(a), stripZeros(b)
	for !isZeroDigits(b) {
		_, r := divmodDigits(a, b)
		a, b = b, r
	}
	if isZeroDigits(a) {
		return "1"
	}
	return a
}
