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

import "reflect"

// DeepCopy produces a value with no structural sharing to v: mutating
// the result (via a future cons/set-car!-like operation on a Pair
// chain) can never affect v. Str, Sym, Num, Bool, Nil and Err are
// already immutable Go values, so copying them is a plain assignment;
// Pair is the only variant that needs recursive work. Closure.Params
// and Closure.Body are copied too (they are program text, never
// mutated in place, but the copy discipline stays uniform); the
// captured Environment is shared by design (see internal/env).
func DeepCopy(v Value) Value {
	switch t := v.(type) {
	case Pair:
		return Pair{Car: DeepCopy(t.Car), Cdr: DeepCopy(t.Cdr)}
	case Closure:
		return Closure{Params: DeepCopy(t.Params), Body: DeepCopy(t.Body), Env: t.Env}
	default:
		return v
	}
}

// Eq is shallow identity. nada is a by-value language with no object
// identity: pairs and functions always compare eq? false (the original
// source's eq? never yielded true for a heap-allocated cons). Atoms
// compare eq? the same way equal? does.
func Eq(a, b Value) bool {
	switch a.(type) {
	case Pair, Builtin, Closure:
		return false
	}
	return Equal(a, b)
}

// Equal is structural, recursive equality.
func Equal(a, b Value) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case Nil:
		return true
	case Bool:
		bv := b.(Bool)
		return av == bv
	case Num:
		bv := b.(Num)
		return av.R.Equal(bv.R)
	case Str:
		bv := b.(Str)
		return av == bv
	case Sym:
		bv := b.(Sym)
		return av == bv
	case Err:
		bv := b.(Err)
		return av == bv
	case Pair:
		bv := b.(Pair)
		return Equal(av.Car, bv.Car) && Equal(av.Cdr, bv.Cdr)
	case Builtin:
		bv, ok := b.(Builtin)
		return ok && reflect.ValueOf(av.Fn).Pointer() == reflect.ValueOf(bv.Fn).Pointer()
	case Closure:
		bv, ok := b.(Closure)
		return ok && Equal(av.Params, bv.Params) && Equal(av.Body, bv.Body)
	default:
		return false
	}
}
