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
	"strings"

	"github.com/launix-de/nada/internal/env"
	"github.com/launix-de/nada/internal/errs"
	"github.com/launix-de/nada/internal/eval"
	"github.com/launix-de/nada/internal/value"
)

func registerMeta(g *env.Env, reg *Registry) {
	reg.declare(g, &Declaration{"eval", "evaluate a value as an expression; 3-arg form catches undefined-symbol/error via ON-ERR/ON-OK", 1, 3, func(a []value.Value, e value.Environment, ctx *errs.Context) value.Value {
		frame, ok := e.(*env.Env)
		if !ok {
			return invalidArg(ctx, "eval", "no environment to evaluate in")
		}
		if len(a) == 1 {
			return eval.Eval(a[0], frame, ctx)
		}
		onErr, onOk := a[1], a[2]
		var result value.Value
		failed := false
		if sym, isSym := a[0].(value.Sym); isSym {
			if _, found := frame.Lookup(string(sym)); !found {
				failed = true
			}
		}
		if !failed {
			ctx.WithSilentLookup(func() {
				result = eval.Eval(a[0], frame, ctx)
			})
			if _, _, hadErr := ctx.CheckAndConsume(); hadErr {
				failed = true
			}
		}
		if failed {
			return eval.Apply(onErr, nil, ctx)
		}
		return eval.Apply(onOk, []value.Value{result}, ctx)
	}})
	reg.declare(g, &Declaration{"apply", "invoke FN with LIST's elements as pre-evaluated arguments", 2, 2, func(a []value.Value, _ value.Environment, ctx *errs.Context) value.Value {
		args := value.ToSlice(a[1])
		return eval.Apply(a[0], args, ctx)
	}})
	reg.declare(g, &Declaration{"env-symbols", "every name bound directly in the current frame, sorted", 0, 0, func(a []value.Value, e value.Environment, ctx *errs.Context) value.Value {
		frame, ok := e.(*env.Env)
		if !ok {
			return invalidArg(ctx, "env-symbols", "no environment")
		}
		names := frame.Names()
		out := make([]value.Value, len(names))
		for i, n := range names {
			out[i] = value.Sym(n)
		}
		return value.FromSlice(out)
	}})
	reg.declare(g, &Declaration{"env-describe", "return a builtin's one-line summary, or a \"NAME: summary\" line for every builtin if called with no arguments", 0, 1, func(a []value.Value, _ value.Environment, ctx *errs.Context) value.Value {
		if len(a) == 0 {
			var b strings.Builder
			for _, d := range reg.Declarations() {
				b.WriteString(d.Name)
				b.WriteString(": ")
				b.WriteString(d.Desc)
				b.WriteByte('\n')
			}
			return value.Str(b.String())
		}
		name, ok := asSym(ctx, "env-describe", a[0])
		if !ok {
			return value.Nil{}
		}
		d, found := reg.Lookup(name)
		if !found {
			return invalidArg(ctx, "env-describe", "no such builtin: "+name)
		}
		return value.Str(d.Desc)
	}})
	reg.declare(g, &Declaration{"error", "report a user-raised error on the channel and return it as a first-class Err", 1, 1, func(a []value.Value, _ value.Environment, ctx *errs.Context) value.Value {
		msg := value.Print(a[0])
		if s, ok := a[0].(value.Str); ok {
			msg = string(s)
		}
		if ctx != nil {
			ctx.Report(errs.InvalidArgument, msg)
		}
		return value.Err(msg)
	}})
}
