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

// chainCmp checks op(args[i], args[i+1]) for every adjacent pair, per
// the usual Scheme "<" chaining (e.g. (< 1 2 3)).
func chainCmp(who string, op func(int) bool) func([]value.Value, value.Environment, *errs.Context) value.Value {
	return func(a []value.Value, _ value.Environment, ctx *errs.Context) value.Value {
		for i := 0; i < len(a)-1; i++ {
			x, ok1 := asNum(ctx, who, a[i])
			y, ok2 := asNum(ctx, who, a[i+1])
			if !ok1 || !ok2 {
				return value.Nil{}
			}
			if !op(x.Cmp(y)) {
				return value.Bool(false)
			}
		}
		return value.Bool(true)
	}
}

func registerComparison(g *env.Env, reg *Registry) {
	reg.declare(g, &Declaration{"<", "strictly increasing", 2, -1, chainCmp("<", func(c int) bool { return c < 0 })})
	reg.declare(g, &Declaration{"<=", "non-decreasing", 2, -1, chainCmp("<=", func(c int) bool { return c <= 0 })})
	reg.declare(g, &Declaration{">", "strictly decreasing", 2, -1, chainCmp(">", func(c int) bool { return c > 0 })})
	reg.declare(g, &Declaration{">=", "non-increasing", 2, -1, chainCmp(">=", func(c int) bool { return c >= 0 })})
	reg.declare(g, &Declaration{"=", "numeric equality", 2, -1, chainCmp("=", func(c int) bool { return c == 0 })})

	reg.declare(g, &Declaration{"eq?", "identity equality (pairs and functions are never eq?)", 2, 2, func(a []value.Value, _ value.Environment, _ *errs.Context) value.Value {
		return value.Bool(value.Eq(a[0], a[1]))
	}})
	reg.declare(g, &Declaration{"equal?", "structural equality", 2, 2, func(a []value.Value, _ value.Environment, _ *errs.Context) value.Value {
		return value.Bool(value.Equal(a[0], a[1]))
	}})

	// string-prefixed aliases, per NadaBuiltinCompare.c's string<?/string<=?/
	// string>?/string>=?/string=? (no string-prefixed eq?/equal? alias
	// exists in the original; none is fabricated here either).
	reg.declare(g, &Declaration{"string<?", "alias of <", 2, -1, chainCmp("string<?", func(c int) bool { return c < 0 })})
	reg.declare(g, &Declaration{"string<=?", "alias of <=", 2, -1, chainCmp("string<=?", func(c int) bool { return c <= 0 })})
	reg.declare(g, &Declaration{"string>?", "alias of >", 2, -1, chainCmp("string>?", func(c int) bool { return c > 0 })})
	reg.declare(g, &Declaration{"string>=?", "alias of >=", 2, -1, chainCmp("string>=?", func(c int) bool { return c >= 0 })})
	reg.declare(g, &Declaration{"string=?", "alias of =", 2, -1, chainCmp("string=?", func(c int) bool { return c == 0 })})
}
