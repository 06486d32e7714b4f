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
package value

import "strings"

// Print renders v in the concrete textual grammar of §6: lists as
// "(x y z)" or "(x . y)" for improper tails, strings quoted, booleans
// as #t/#f, nil as (), symbols bare, functions as #<builtin:NAME> or
// #<lambda PARAMS>, errors as "Error: MSG".
func Print(v Value) string {
	var b strings.Builder
	print1(&b, v)
	return b.String()
}

func print1(b *strings.Builder, v Value) {
	switch t := v.(type) {
	case Nil:
		b.WriteString("()")
	case Bool:
		if t {
			b.WriteString("#t")
		} else {
			b.WriteString("#f")
		}
	case Num:
		b.WriteString(t.R.String())
	case Str:
		b.WriteByte('"')
		b.WriteString(string(t))
		b.WriteByte('"')
	case Sym:
		b.WriteString(string(t))
	case Err:
		b.WriteString("Error: ")
		b.WriteString(string(t))
	case Pair:
		printPair(b, t)
	case Builtin:
		b.WriteString("#<builtin:")
		b.WriteString(t.Name)
		b.WriteByte('>')
	case Closure:
		b.WriteString("#<lambda ")
		print1(b, t.Params)
		b.WriteByte('>')
	default:
		b.WriteString("#<unknown>")
	}
}

func printPair(b *strings.Builder, p Pair) {
	b.WriteByte('(')
	print1(b, p.Car)
	cur := p.Cdr
	for {
		switch t := cur.(type) {
		case Nil:
			b.WriteByte(')')
			return
		case Pair:
			b.WriteByte(' ')
			print1(b, t.Car)
			cur = t.Cdr
		default:
			b.WriteString(" . ")
			print1(b, cur)
			b.WriteByte(')')
			return
		}
	}
}
