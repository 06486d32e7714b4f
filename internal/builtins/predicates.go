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
package builtins

import (
	"github.com/launix-de/nada/internal/env"
	"github.com/launix-de/nada/internal/errs"
	"github.com/launix-de/nada/internal/value"
)

func pred(name, desc string, fn func(value.Value) bool) *Declaration {
	return &Declaration{name, desc, 1, 1, func(a []value.Value, _ value.Environment, _ *errs.Context) value.Value {
		return value.Bool(fn(a[0]))
	}}
}

func registerPredicates(g *env.Env, reg *Registry) {
	reg.declare(g, pred("null?", "true for the empty list", value.IsNil))
	reg.declare(g, pred("integer?", "true for an integral number", func(v value.Value) bool {
		n, ok := v.(value.Num)
		return ok && n.R.IsInteger()
	}))
	reg.declare(g, pred("number?", "true for any number", func(v value.Value) bool {
		_, ok := v.(value.Num)
		return ok
	}))
	reg.declare(g, pred("string?", "true for a string", func(v value.Value) bool {
		_, ok := v.(value.Str)
		return ok
	}))
	reg.declare(g, pred("symbol?", "true for a symbol", func(v value.Value) bool {
		_, ok := v.(value.Sym)
		return ok
	}))
	reg.declare(g, pred("boolean?", "true for #t or #f", func(v value.Value) bool {
		_, ok := v.(value.Bool)
		return ok
	}))
	reg.declare(g, pred("pair?", "true for a cons cell", value.IsPair))
	reg.declare(g, pred("function?", "true for a builtin or a closure", func(v value.Value) bool {
		return v.Kind() == value.KindFunc
	}))
	reg.declare(g, pred("procedure?", "alias of function?", func(v value.Value) bool {
		return v.Kind() == value.KindFunc
	}))
	reg.declare(g, pred("list?", "true for a proper list, including ()", value.IsProperList))
	reg.declare(g, pred("atom?", "true for anything that is not a pair", func(v value.Value) bool {
		return !value.IsPair(v)
	}))
	reg.declare(g, pred("builtin?", "true for a Go-implemented primitive", func(v value.Value) bool {
		_, ok := v.(value.Builtin)
		return ok
	}))
	reg.declare(g, pred("error?", "true for a first-class Err value", func(v value.Value) bool {
		_, ok := v.(value.Err)
		return ok
	}))

	// defined? needs the calling frame, so it cannot share the simple
	// `pred` shape above. It uses the frame's non-reporting Lookup
	// rather than the error channel's silent-lookup flag.
	reg.declare(g, &Declaration{"defined?", "true if SYM is a bound symbol, without reporting undefined-symbol", 1, 1, func(a []value.Value, e value.Environment, ctx *errs.Context) value.Value {
		name, ok := a[0].(value.Sym)
		if !ok {
			return value.Bool(false)
		}
		_, found := e.Lookup(string(name))
		return value.Bool(found)
	}})
}
