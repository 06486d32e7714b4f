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
	"github.com/launix-de/nada/internal/eval"
	"github.com/launix-de/nada/internal/value"
)

func registerList(g *env.Env, reg *Registry) {
	reg.declare(g, &Declaration{"car", "head of a pair", 1, 1, func(a []value.Value, _ value.Environment, ctx *errs.Context) value.Value {
		v, ok := value.Car(a[0])
		if !ok {
			return typeErr(ctx, "car", "expected a pair, got "+value.TypeName(a[0]))
		}
		return v
	}})
	reg.declare(g, &Declaration{"cdr", "tail of a pair", 1, 1, func(a []value.Value, _ value.Environment, ctx *errs.Context) value.Value {
		v, ok := value.Cdr(a[0])
		if !ok {
			return typeErr(ctx, "cdr", "expected a pair, got "+value.TypeName(a[0]))
		}
		return v
	}})
	reg.declare(g, &Declaration{"cadr", "(car (cdr x))", 1, 1, func(a []value.Value, _ value.Environment, ctx *errs.Context) value.Value {
		return carCdrChain(ctx, "cadr", a[0], "ad")
	}})
	reg.declare(g, &Declaration{"caddr", "(car (cdr (cdr x)))", 1, 1, func(a []value.Value, _ value.Environment, ctx *errs.Context) value.Value {
		return carCdrChain(ctx, "caddr", a[0], "add")
	}})
	reg.declare(g, &Declaration{"cons", "prepend car to cdr, producing a new pair", 2, 2, func(a []value.Value, _ value.Environment, _ *errs.Context) value.Value {
		return value.Cons(a[0], a[1])
	}})
	reg.declare(g, &Declaration{"list", "build a proper list from its arguments", 0, -1, func(a []value.Value, _ value.Environment, _ *errs.Context) value.Value {
		return value.FromSlice(a)
	}})
	reg.declare(g, &Declaration{"length", "number of elements in a proper list; an improper list is a type error", 1, 1, func(a []value.Value, _ value.Environment, ctx *errs.Context) value.Value {
		if !value.IsProperList(a[0]) && !value.IsNil(a[0]) {
			return typeErr(ctx, "length", "expected a list")
		}
		return value.NewInt(int64(value.Length(a[0])))
	}})
	reg.declare(g, &Declaration{"sublist", "slice [start, end) of a list", 3, 3, func(a []value.Value, _ value.Environment, ctx *errs.Context) value.Value {
		items := value.ToSlice(a[0])
		start, ok1 := asInt(ctx, "sublist", a[1])
		end, ok2 := asInt(ctx, "sublist", a[2])
		if !ok1 || !ok2 {
			return value.Nil{}
		}
		if start < 0 || end > int64(len(items)) || start > end {
			return invalidArg(ctx, "sublist", "index out of range")
		}
		return value.FromSlice(items[start:end])
	}})
	reg.declare(g, &Declaration{"list-ref", "nth element of a list, zero-based", 2, 2, func(a []value.Value, _ value.Environment, ctx *errs.Context) value.Value {
		items := value.ToSlice(a[0])
		idx, ok := asInt(ctx, "list-ref", a[1])
		if !ok {
			return value.Nil{}
		}
		if idx < 0 || idx >= int64(len(items)) {
			return invalidArg(ctx, "list-ref", "index out of range")
		}
		return items[idx]
	}})
	reg.declare(g, &Declaration{"map", "apply F to each element of L, collecting results in order", 2, 2, func(a []value.Value, _ value.Environment, ctx *errs.Context) value.Value {
		fn := a[0]
		items := value.ToSlice(a[1])
		out := make([]value.Value, len(items))
		for i, it := range items {
			out[i] = eval.Apply(fn, []value.Value{it}, ctx)
		}
		return value.FromSlice(out)
	}})
	reg.declare(g, &Declaration{"for-each", "apply F to each element of one or more lists for side effects, stopping at the shortest", 2, -1, func(a []value.Value, _ value.Environment, ctx *errs.Context) value.Value {
		fn := a[0]
		lists := make([][]value.Value, len(a)-1)
		shortest := -1
		for i, l := range a[1:] {
			lists[i] = value.ToSlice(l)
			if shortest < 0 || len(lists[i]) < shortest {
				shortest = len(lists[i])
			}
		}
		for i := 0; i < shortest; i++ {
			args := make([]value.Value, len(lists))
			for j := range lists {
				args[j] = lists[j][i]
			}
			eval.Apply(fn, args, ctx)
		}
		return value.Nil{}
	}})
}

// carCdrChain applies car/cdr steps right-to-left as encoded in ops
// ('d' for cdr, 'a' for car), reporting TypeError with who on failure.
func carCdrChain(ctx *errs.Context, who string, v value.Value, ops string) value.Value {
	cur := v
	for i := len(ops) - 1; i >= 0; i-- {
		var ok bool
		if ops[i] == 'a' {
			cur, ok = value.Car(cur)
		} else {
			cur, ok = value.Cdr(cur)
		}
		if !ok {
			return typeErr(ctx, who, "expected a pair, got "+value.TypeName(v))
		}
	}
	return cur
}
