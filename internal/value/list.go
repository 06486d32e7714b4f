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

// Cons constructs a Pair owning independent copies of car and cdr.
func Cons(car, cdr Value) Value {
	return Pair{Car: DeepCopy(car), Cdr: DeepCopy(cdr)}
}

// Car returns the head of a pair, or (Nil, false) if v is not a pair.
func Car(v Value) (Value, bool) {
	p, ok := v.(Pair)
	if !ok {
		return Nil{}, false
	}
	return p.Car, true
}

// Cdr returns the tail of a pair, or (Nil, false) if v is not a pair.
func Cdr(v Value) (Value, bool) {
	p, ok := v.(Pair)
	if !ok {
		return Nil{}, false
	}
	return p.Cdr, true
}

// FromSlice builds a proper list (right-nested Pairs terminated by
// Nil) from a Go slice, in order.
func FromSlice(items []Value) Value {
	var out Value = Nil{}
	for i := len(items) - 1; i >= 0; i-- {
		out = Pair{Car: items[i], Cdr: out}
	}
	return out
}

// ToSlice walks a proper-list prefix of v into a Go slice. A dotted
// tail is dropped: the walk simply stops at the first non-Pair,
// non-Nil cdr, mirroring Reverse's behavior.
func ToSlice(v Value) []Value {
	var out []Value
	for {
		switch t := v.(type) {
		case Nil:
			return out
		case Pair:
			out = append(out, t.Car)
			v = t.Cdr
		default:
			return out
		}
	}
}

// Reverse walks a proper-list prefix only; a dotted tail is dropped.
func Reverse(v Value) Value {
	items := ToSlice(v)
	var out Value = Nil{}
	for _, it := range items {
		out = Pair{Car: DeepCopy(it), Cdr: out}
	}
	return out
}

// Length counts the elements of a proper-list prefix (dotted tails stop the count).
func Length(v Value) int {
	n := 0
	for {
		switch t := v.(type) {
		case Nil:
			return n
		case Pair:
			n++
			v = t.Cdr
		default:
			return n
		}
	}
}
